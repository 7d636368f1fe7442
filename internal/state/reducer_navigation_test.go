package state

import (
	"errors"
	"path/filepath"
	"testing"

	fsutil "github.com/kk-code-lab/dirhop/internal/fs"
)

// ===== NAVIGATION TESTS =====

func TestMoveDownWrapsToFirst(t *testing.T) {
	lister := newFakeLister()
	lister.addDir("/test", "file1.txt", "file2.txt", "file3.txt")
	reducer := newTestReducer(lister)
	state := loadState(t, reducer, "/test")

	mustReduce(t, reducer, state, MoveDownAction{})
	if state.SelectedIndex != 1 {
		t.Fatalf("expected selected=1, got %d", state.SelectedIndex)
	}

	state.SelectedIndex = 2
	mustReduce(t, reducer, state, MoveDownAction{})
	if state.SelectedIndex != 0 {
		t.Fatalf("expected wrap to 0, got %d", state.SelectedIndex)
	}
}

func TestMoveUpWrapsToLast(t *testing.T) {
	lister := newFakeLister()
	lister.addDir("/test", "file1.txt", "file2.txt", "file3.txt")
	reducer := newTestReducer(lister)
	state := loadState(t, reducer, "/test")

	mustReduce(t, reducer, state, MoveUpAction{})
	if state.SelectedIndex != 2 {
		t.Fatalf("expected wrap to last entry, got %d", state.SelectedIndex)
	}

	mustReduce(t, reducer, state, MoveUpAction{})
	if state.SelectedIndex != 1 {
		t.Fatalf("expected selected=1, got %d", state.SelectedIndex)
	}
}

func TestEmptyDirectoryCommandsAreNoOps(t *testing.T) {
	lister := newFakeLister()
	lister.addDir("/empty")
	reducer := newTestReducer(lister)
	state := loadState(t, reducer, "/empty")

	if state.EntryCount() != 0 {
		t.Fatalf("expected no entries, got %d", state.EntryCount())
	}

	for _, action := range []Action{MoveUpAction{}, MoveDownAction{}, EnterAction{}} {
		mustReduce(t, reducer, state, action)
		if state.CurrentPath != "/empty" || state.SelectedIndex != 0 {
			t.Fatalf("%T changed state: path=%s selected=%d", action, state.CurrentPath, state.SelectedIndex)
		}
	}

	entries, highlighted := state.VisibleEntries()
	if len(entries) != 0 || highlighted != -1 {
		t.Fatalf("expected empty window, got %d entries highlighted=%d", len(entries), highlighted)
	}
}

func TestBrowseScenario(t *testing.T) {
	lister := newFakeLister()
	lister.addDir("/a", "b/", "c/", "d.txt")
	lister.addDir("/a/b", "inner.txt")
	reducer := newTestReducer(lister)
	state := loadState(t, reducer, "/a")

	if state.SelectedIndex != 0 {
		t.Fatalf("initial selection should be 0, got %d", state.SelectedIndex)
	}

	mustReduce(t, reducer, state, MoveDownAction{})
	mustReduce(t, reducer, state, MoveDownAction{})
	if state.SelectedIndex != 2 {
		t.Fatalf("expected selection on d.txt, got %d", state.SelectedIndex)
	}

	mustReduce(t, reducer, state, EnterAction{})
	if state.CurrentPath != "/a" || state.SelectedIndex != 2 {
		t.Fatalf("enter on a file must be a no-op, got path=%s selected=%d", state.CurrentPath, state.SelectedIndex)
	}

	mustReduce(t, reducer, state, MoveDownAction{})
	if state.SelectedIndex != 0 {
		t.Fatalf("expected wrap to b, got %d", state.SelectedIndex)
	}

	lister.calls = nil
	mustReduce(t, reducer, state, EnterAction{})
	if state.CurrentPath != filepath.Clean("/a/b") {
		t.Fatalf("expected /a/b, got %s", state.CurrentPath)
	}
	if state.SelectedIndex != 0 {
		t.Fatalf("selection must reset on enter, got %d", state.SelectedIndex)
	}
	if len(state.Entries) != 1 || state.Entries[0].Name != "inner.txt" {
		t.Fatalf("expected fresh listing of /a/b, got %+v", state.Entries)
	}
	if len(lister.calls) != 2 || lister.calls[0] != "/a" || lister.calls[1] != filepath.Clean("/a/b") {
		t.Fatalf("expected re-list of /a then listing of /a/b, got %v", lister.calls)
	}
}

func TestEnterRereadsDirectoryAtCommandTime(t *testing.T) {
	lister := newFakeLister()
	lister.addDir("/a", "b/", "c/")
	reducer := newTestReducer(lister)
	state := loadState(t, reducer, "/a")

	// b is deleted after the frame that displayed it.
	lister.addDir("/a", "c/")
	lister.remove("/a/b")

	mustReduce(t, reducer, state, EnterAction{})
	if state.CurrentPath != "/a" {
		t.Fatalf("enter on a vanished entry must not change directory, got %s", state.CurrentPath)
	}
	if len(state.Entries) != 1 {
		t.Fatalf("expected fresh listing to be adopted, got %d entries", len(state.Entries))
	}
}

func TestEnterFollowsEntryThatMoved(t *testing.T) {
	lister := newFakeLister()
	lister.addDir("/a", "b/", "c/")
	reducer := newTestReducer(lister)
	state := loadState(t, reducer, "/a")
	state.SelectedIndex = 1 // c

	lister.addDir("/a", "a0/", "b/", "c/")

	mustReduce(t, reducer, state, EnterAction{})
	if state.CurrentPath != filepath.Clean("/a/c") {
		t.Fatalf("expected to enter the displayed entry c, got %s", state.CurrentPath)
	}
}

func TestEnterWithStaleIndex(t *testing.T) {
	lister := newFakeLister()
	lister.addDir("/a", "b/")
	reducer := newTestReducer(lister)
	state := loadState(t, reducer, "/a")
	state.SelectedIndex = 7

	mustReduce(t, reducer, state, EnterAction{})
	if state.CurrentPath != "/a" {
		t.Fatalf("stale index must not navigate, got %s", state.CurrentPath)
	}
}

func TestEnterFailsWhenCurrentDirectoryVanishes(t *testing.T) {
	lister := newFakeLister()
	lister.addDir("/a", "b/")
	reducer := newTestReducer(lister)
	state := loadState(t, reducer, "/a")
	lister.remove("/a")

	_, err := reducer.Reduce(state, EnterAction{})
	if !errors.Is(err, fsutil.ErrUnreadable) {
		t.Fatalf("expected unreadable error, got %v", err)
	}
	if state.CurrentPath != "/a" || state.SelectedIndex != 0 {
		t.Fatalf("failed enter must leave state untouched")
	}
}

func TestEnterUnreadableSubdirectoryKeepsState(t *testing.T) {
	lister := newFakeLister()
	lister.addDir("/a", "b/", "c/")
	reducer := newTestReducer(lister)
	state := loadState(t, reducer, "/a")
	state.SelectedIndex = 1
	lister.remove("/a/c") // still listed in /a, but cannot be opened

	_, err := reducer.Reduce(state, EnterAction{})
	if err == nil {
		t.Fatalf("expected error entering unreadable directory")
	}
	if state.CurrentPath != "/a" || state.SelectedIndex != 1 {
		t.Fatalf("expected state unchanged, got path=%s selected=%d", state.CurrentPath, state.SelectedIndex)
	}
}

func TestAscendResetsSelection(t *testing.T) {
	lister := newFakeLister()
	lister.addDir("/a", "b/", "c/")
	lister.addDir("/a/c", "x", "y", "z")
	reducer := newTestReducer(lister)
	state := loadState(t, reducer, "/a/c")
	state.SelectedIndex = 2

	mustReduce(t, reducer, state, AscendAction{})
	if state.CurrentPath != "/a" {
		t.Fatalf("expected /a, got %s", state.CurrentPath)
	}
	if state.SelectedIndex != 0 {
		t.Fatalf("selection must reset on ascend, got %d", state.SelectedIndex)
	}
}

func TestAscendAtRootIsNoOp(t *testing.T) {
	lister := newFakeLister()
	lister.addDir("/", "bin/", "etc/")
	reducer := newTestReducer(lister)
	state := loadState(t, reducer, "/")
	state.SelectedIndex = 1

	lister.calls = nil
	mustReduce(t, reducer, state, AscendAction{})
	if state.CurrentPath != "/" || state.SelectedIndex != 1 {
		t.Fatalf("ascend at root changed state: path=%s selected=%d", state.CurrentPath, state.SelectedIndex)
	}
	if len(lister.calls) != 0 {
		t.Fatalf("ascend at root should not list anything, got %v", lister.calls)
	}
}

func TestAscendIntoUnreadableParent(t *testing.T) {
	lister := newFakeLister()
	lister.addDir("/locked/inner", "file")
	reducer := newTestReducer(lister)
	state := loadState(t, reducer, "/locked/inner")

	if _, err := reducer.Reduce(state, AscendAction{}); err == nil {
		t.Fatalf("expected error ascending into unreadable parent")
	}
	if state.CurrentPath != filepath.Clean("/locked/inner") {
		t.Fatalf("expected to stay in place, got %s", state.CurrentPath)
	}
}
