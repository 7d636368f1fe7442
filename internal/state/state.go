package state

import (
	fsutil "github.com/kk-code-lab/dirhop/internal/fs"
)

// FileEntry mirrors fs.Entry so UI/state code can rely on a stable type.
type FileEntry = fsutil.Entry

// DefaultRowsPerPage is the scroll threshold used when none is configured.
const DefaultRowsPerPage = 10

// MessageKind classifies the one-line status message.
type MessageKind int

const (
	MessageInfo MessageKind = iota
	MessageError
)

// Message is shown once on the frame after the command that produced it.
type Message struct {
	Text string
	Kind MessageKind
}

// ===== STATE DEFINITIONS =====

// AppState is the single source of truth
type AppState struct {
	// Navigation & filesystem
	CurrentPath string
	Entries     []FileEntry

	// Selection & viewport
	SelectedIndex int
	RowsPerPage   int
	Scroll        ScrollPolicy

	// Jump prompt
	PromptActive bool
	PromptQuery  string

	// Status line
	Message            Message
	ClipboardAvailable bool
}

// ===== HELPER METHODS =====

// EntryCount returns the number of entries in the current listing.
func (s *AppState) EntryCount() int {
	return len(s.Entries)
}

// CurrentEntry returns the selected entry. It reports false when the listing
// is empty or the selection is stale.
func (s *AppState) CurrentEntry() (FileEntry, bool) {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Entries) {
		return FileEntry{}, false
	}
	return s.Entries[s.SelectedIndex], true
}

// Window returns the visible range for the current selection.
func (s *AppState) Window() Window {
	return ComputeWindow(s.SelectedIndex, len(s.Entries), s.rowsPerPage(), s.Scroll)
}

// VisibleEntries returns the entries inside the window and the position of
// the selected entry within that slice (-1 when nothing is selected).
func (s *AppState) VisibleEntries() ([]FileEntry, int) {
	win := s.Window()
	if win.Count == 0 {
		return nil, -1
	}
	visible := s.Entries[win.First:win.End()]
	highlighted := s.SelectedIndex - win.First
	if highlighted < 0 || highlighted >= len(visible) {
		highlighted = -1
	}
	return visible, highlighted
}

// SetMessage records a status message for the next render.
func (s *AppState) SetMessage(kind MessageKind, text string) {
	s.Message = Message{Text: text, Kind: kind}
}

// SetError records err as the status message. A nil error clears it.
func (s *AppState) SetError(err error) {
	if err == nil {
		s.ClearMessage()
		return
	}
	s.SetMessage(MessageError, err.Error())
}

// ClearMessage drops the status message.
func (s *AppState) ClearMessage() {
	s.Message = Message{}
}

func (s *AppState) rowsPerPage() int {
	if s.RowsPerPage <= 0 {
		return DefaultRowsPerPage
	}
	return s.RowsPerPage
}

// enterListing replaces the current directory with listing and resets the
// selection; the previous index means nothing in a different directory.
func (s *AppState) enterListing(listing fsutil.Listing) {
	s.CurrentPath = listing.Path
	s.Entries = listing.Entries
	s.SelectedIndex = 0
}

// adoptListing swaps in a fresh listing of the same directory and keeps the
// selection on the same entry when it still exists.
func (s *AppState) adoptListing(listing fsutil.Listing) {
	selectedPath := ""
	if cur, ok := s.CurrentEntry(); ok {
		selectedPath = cur.FullPath
	}

	s.CurrentPath = listing.Path
	s.Entries = listing.Entries

	if selectedPath != "" {
		if idx := listing.Find(selectedPath); idx >= 0 {
			s.SelectedIndex = idx
			return
		}
	}
	s.clampSelection()
}

func (s *AppState) clampSelection() {
	switch {
	case len(s.Entries) == 0, s.SelectedIndex < 0:
		s.SelectedIndex = 0
	case s.SelectedIndex >= len(s.Entries):
		s.SelectedIndex = len(s.Entries) - 1
	}
}
