package state

import (
	"fmt"
	"unicode/utf8"

	fsutil "github.com/kk-code-lab/dirhop/internal/fs"
	searchpkg "github.com/kk-code-lab/dirhop/internal/search"
	"go.uber.org/zap"
)

// ===== REDUCER =====

// StateReducer applies actions to state. Every directory change goes
// through a fresh listing; the reducer keeps no cache between calls.
type StateReducer struct {
	lister   fsutil.Lister
	resolver *searchpkg.Resolver
	logger   *zap.Logger
}

// NewStateReducer creates a new reducer
func NewStateReducer(lister fsutil.Lister, resolver *searchpkg.Resolver) *StateReducer {
	if resolver == nil {
		resolver = searchpkg.NewResolver(searchpkg.MatchPrefix)
	}
	return &StateReducer{
		lister:   lister,
		resolver: resolver,
		logger:   zap.NewNop(),
	}
}

// SetLogger replaces the reducer's logger.
func (r *StateReducer) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r.logger = logger
}

// LoadDirectory lists path and makes it the current directory.
func (r *StateReducer) LoadDirectory(state *AppState, path string) error {
	return r.changeDirectory(state, path)
}

// Reduce applies action to state. A returned error leaves the navigation
// fields exactly as they were before the call.
func (r *StateReducer) Reduce(state *AppState, action Action) (*AppState, error) {
	switch a := action.(type) {
	case MoveDownAction:
		n := len(state.Entries)
		if n == 0 {
			state.SelectedIndex = 0
			return state, nil
		}
		state.clampSelection()
		state.SelectedIndex = (state.SelectedIndex + 1) % n
		return state, nil

	case MoveUpAction:
		n := len(state.Entries)
		if n == 0 {
			state.SelectedIndex = 0
			return state, nil
		}
		state.clampSelection()
		state.SelectedIndex = (state.SelectedIndex + n - 1) % n
		return state, nil

	case EnterAction:
		return state, r.enterSelected(state)

	case AscendAction:
		parent, ok := fsutil.Parent(state.CurrentPath)
		if !ok {
			return state, nil // Already at root
		}
		return state, r.changeDirectory(state, parent)

	case JumpAction:
		return state, r.jump(state, a.Term)

	case RefreshAction:
		return state, r.refresh(state)

	case PromptStartAction:
		state.PromptActive = true
		state.PromptQuery = ""
		return state, nil

	case PromptCharAction:
		if state.PromptActive {
			state.PromptQuery += string(a.Char)
		}
		return state, nil

	case PromptBackspaceAction:
		if state.PromptActive && state.PromptQuery != "" {
			_, size := utf8.DecodeLastRuneInString(state.PromptQuery)
			state.PromptQuery = state.PromptQuery[:len(state.PromptQuery)-size]
		}
		return state, nil

	case PromptCancelAction:
		state.PromptActive = false
		state.PromptQuery = ""
		return state, nil

	case PromptSubmitAction:
		if !state.PromptActive {
			return state, nil
		}
		term := state.PromptQuery
		state.PromptActive = false
		state.PromptQuery = ""
		return state, r.jump(state, term)
	}

	return state, nil
}

// enterSelected re-reads the current directory at the time of the command
// and only descends when the selected entry is still there and still a
// directory.
func (r *StateReducer) enterSelected(state *AppState) error {
	selected, ok := state.CurrentEntry()
	if !ok {
		state.clampSelection()
		return nil
	}

	listing, err := r.lister.List(state.CurrentPath)
	if err != nil {
		return err
	}

	idx := listing.Find(selected.FullPath)
	fresh, found := listing.At(idx)
	if !found || !fresh.IsDir {
		state.adoptListing(listing)
		return nil
	}

	return r.changeDirectory(state, fresh.FullPath)
}

func (r *StateReducer) jump(state *AppState, term string) error {
	listing, err := r.lister.List(state.CurrentPath)
	if err != nil {
		return err
	}

	match, ok, err := r.resolver.Resolve(listing.Entries, term)
	if err != nil {
		state.adoptListing(listing)
		return err
	}
	if !ok {
		state.adoptListing(listing)
		if term != "" {
			state.SetMessage(MessageInfo, fmt.Sprintf("no directory matching %q", term))
		}
		return nil
	}

	return r.changeDirectory(state, match.FullPath)
}

// refresh re-lists the current directory. When it has become unreadable the
// state falls back to the nearest ancestor that still lists.
func (r *StateReducer) refresh(state *AppState) error {
	listing, err := r.lister.List(state.CurrentPath)
	if err == nil {
		state.adoptListing(listing)
		return nil
	}

	r.logger.Warn("current directory unreadable", zap.String("path", state.CurrentPath), zap.Error(err))

	path := state.CurrentPath
	for {
		parent, ok := fsutil.Parent(path)
		if !ok {
			return err
		}
		path = parent
		fallback, listErr := r.lister.List(path)
		if listErr != nil {
			continue
		}
		state.enterListing(fallback)
		state.SetMessage(MessageError, fmt.Sprintf("%v; moved to %s", err, fallback.Path))
		r.logger.Info("fell back to ancestor", zap.String("path", fallback.Path))
		return nil
	}
}

func (r *StateReducer) changeDirectory(state *AppState, path string) error {
	listing, err := r.lister.List(path)
	if err != nil {
		r.logger.Debug("directory change failed", zap.String("path", path), zap.Error(err))
		return err
	}

	r.logger.Debug("directory changed",
		zap.String("from", state.CurrentPath),
		zap.String("to", listing.Path),
		zap.Int("entries", listing.Len()),
	)
	state.enterListing(listing)
	return nil
}
