//go:build windows

package fs

import "golang.org/x/sys/windows"

// isHidden reports entries carrying the hidden attribute, and dot files
// whose attributes cannot be read.
func isHidden(fullPath string, name string) bool {
	ptr, err := windows.UTF16PtrFromString(fullPath)
	if err != nil {
		return len(name) > 0 && name[0] == '.'
	}
	attrs, err := windows.GetFileAttributes(ptr)
	if err != nil {
		return len(name) > 0 && name[0] == '.'
	}
	return attrs&windows.FILE_ATTRIBUTE_HIDDEN != 0
}
