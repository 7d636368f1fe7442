package state

import (
	"errors"
	"path/filepath"
	"testing"

	fsutil "github.com/kk-code-lab/dirhop/internal/fs"
	searchpkg "github.com/kk-code-lab/dirhop/internal/search"
)

// fakeLister serves listings from memory so tests can mutate the "disk"
// between commands.
type fakeLister struct {
	dirs  map[string][]FileEntry
	calls []string
}

func newFakeLister() *fakeLister {
	return &fakeLister{dirs: make(map[string][]FileEntry)}
}

func (f *fakeLister) addDir(path string, children ...string) {
	path = filepath.Clean(path)
	entries := make([]FileEntry, 0, len(children))
	for _, child := range children {
		isDir := false
		if n := len(child); n > 0 && child[n-1] == '/' {
			child = child[:n-1]
			isDir = true
		}
		full := filepath.Join(path, child)
		entries = append(entries, FileEntry{Name: child, FullPath: full, IsDir: isDir})
		if isDir {
			if _, ok := f.dirs[full]; !ok {
				f.dirs[full] = []FileEntry{}
			}
		}
	}
	f.dirs[path] = entries
}

func (f *fakeLister) remove(path string) {
	delete(f.dirs, filepath.Clean(path))
}

func (f *fakeLister) List(path string) (fsutil.Listing, error) {
	path = filepath.Clean(path)
	f.calls = append(f.calls, path)
	entries, ok := f.dirs[path]
	if !ok {
		return fsutil.Listing{}, &fsutil.ListError{Path: path, Err: errors.New("no such directory")}
	}
	out := make([]FileEntry, len(entries))
	copy(out, entries)
	return fsutil.Listing{Path: path, Entries: out}, nil
}

func newTestReducer(lister *fakeLister) *StateReducer {
	return NewStateReducer(lister, searchpkg.NewResolver(searchpkg.MatchPrefix))
}

func loadState(t *testing.T, r *StateReducer, path string) *AppState {
	t.Helper()
	state := &AppState{RowsPerPage: DefaultRowsPerPage}
	if err := r.LoadDirectory(state, path); err != nil {
		t.Fatalf("failed to load %s: %v", path, err)
	}
	return state
}

func mustReduce(t *testing.T, r *StateReducer, state *AppState, action Action) {
	t.Helper()
	if _, err := r.Reduce(state, action); err != nil {
		t.Fatalf("%T failed: %v", action, err)
	}
	assertSelectionInRange(t, state)
}

func assertSelectionInRange(t *testing.T, state *AppState) {
	t.Helper()
	n := len(state.Entries)
	if n == 0 {
		if state.SelectedIndex != 0 {
			t.Fatalf("empty listing must keep selection at 0, got %d", state.SelectedIndex)
		}
		return
	}
	if state.SelectedIndex < 0 || state.SelectedIndex >= n {
		t.Fatalf("selection %d out of range [0,%d)", state.SelectedIndex, n)
	}
}
