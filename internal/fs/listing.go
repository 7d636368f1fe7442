package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/unicode/norm"
)

// ErrUnreadable is matched by every ListError.
var ErrUnreadable = errors.New("directory unreadable")

// ListError reports a directory that could not be opened for listing.
type ListError struct {
	Path string
	Err  error
}

func (e *ListError) Error() string {
	return fmt.Sprintf("cannot read directory %s: %v", e.Path, e.Err)
}

func (e *ListError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrUnreadable) match any ListError.
func (e *ListError) Is(target error) bool {
	return target == ErrUnreadable
}

// Lister produces directory listings.
type Lister interface {
	List(path string) (Listing, error)
}

// OSLister lists directories straight from the filesystem. Every call
// performs a fresh read; nothing is cached between calls.
//
// Entries come back in os.ReadDir order, i.e. sorted by file name. No other
// grouping (directories first, hidden last, ...) is applied.
type OSLister struct {
	// readDir and stat are swapped out in tests.
	readDir func(string) ([]os.DirEntry, error)
	stat    func(string) (os.FileInfo, error)
}

// NewOSLister returns a lister backed by the os package.
func NewOSLister() *OSLister {
	return &OSLister{readDir: os.ReadDir, stat: os.Stat}
}

// List reads path and returns its entries.
func (l *OSLister) List(path string) (Listing, error) {
	readDir := l.readDir
	if readDir == nil {
		readDir = os.ReadDir
	}
	stat := l.stat
	if stat == nil {
		stat = os.Stat
	}

	dirPath := filepath.Clean(path)
	info, err := stat(dirPath)
	if err != nil {
		return Listing{}, &ListError{Path: dirPath, Err: err}
	}
	if !info.IsDir() {
		return Listing{}, &ListError{Path: dirPath, Err: errors.New("not a directory")}
	}

	dirEntries, err := readDir(dirPath)
	if err != nil {
		return Listing{}, &ListError{Path: dirPath, Err: err}
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		rawName := de.Name()
		fullPath := filepath.Join(dirPath, rawName)

		isSymlink := de.Type()&os.ModeSymlink != 0
		isDir := de.IsDir()
		if isSymlink {
			// Follow the link; a dangling link is listed as a plain entry.
			target, err := stat(fullPath)
			isDir = err == nil && target.IsDir()
		}

		entries = append(entries, Entry{
			Name:      norm.NFC.String(rawName),
			FullPath:  fullPath,
			IsDir:     isDir,
			IsSymlink: isSymlink,
			IsHidden:  isHidden(fullPath, rawName),
		})
	}

	return Listing{Path: dirPath, Entries: entries}, nil
}

// Parent returns the parent directory of path. It reports false at the
// filesystem root, where there is nothing to ascend to.
func Parent(path string) (string, bool) {
	cleaned := filepath.Clean(path)
	parent := filepath.Dir(cleaned)
	if parent == "" || parent == cleaned {
		return cleaned, false
	}
	return parent, true
}
