package fs

// Entry represents a single file or directory on disk as seen by one listing.
// It is a snapshot: nothing about it is refreshed after the listing is taken.
type Entry struct {
	Name      string
	FullPath  string
	IsDir     bool
	IsSymlink bool
	IsHidden  bool // dot file, or hidden attribute on Windows
}

// DisplayName returns the row label for the entry. Directories get a trailing
// slash so they stand out without relying on color.
func (e Entry) DisplayName() string {
	if e.IsDir {
		return e.Name + "/"
	}
	return e.Name
}

// Listing is the ordered content of one directory.
type Listing struct {
	Path    string
	Entries []Entry
}

// Len returns the number of entries.
func (l Listing) Len() int {
	return len(l.Entries)
}

// At returns the entry at idx, or false when idx is out of range.
func (l Listing) At(idx int) (Entry, bool) {
	if idx < 0 || idx >= len(l.Entries) {
		return Entry{}, false
	}
	return l.Entries[idx], true
}

// Find returns the index of the entry with the given full path, or -1.
func (l Listing) Find(fullPath string) int {
	for i, e := range l.Entries {
		if e.FullPath == fullPath {
			return i
		}
	}
	return -1
}
