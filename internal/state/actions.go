package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== NAVIGATION ACTIONS =====

type MoveUpAction struct{}
type MoveDownAction struct{}
type EnterAction struct{}
type AscendAction struct{}
type RefreshAction struct{}

// JumpAction changes into the first subdirectory matching Term.
type JumpAction struct {
	Term string
}

// ===== PROMPT ACTIONS =====

type PromptStartAction struct{}
type PromptCharAction struct {
	Char rune
}
type PromptBackspaceAction struct{}
type PromptCancelAction struct{}
type PromptSubmitAction struct{}

// ===== APPLICATION ACTIONS =====
// Handled by the application layer; the reducer leaves state untouched.

type CopyPathAction struct{}
type SuspendAction struct{}
type QuitAction struct{}          // q - exit in place
type QuitAndChangeAction struct{} // x - exit and hand the directory to the shell
