//go:build !windows

package fs

// isHidden reports dot files.
func isHidden(_ string, name string) bool {
	return len(name) > 0 && name[0] == '.'
}
