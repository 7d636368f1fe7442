package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/dirhop/internal/state"
)

// keyActions is the static navigation keymap used outside the prompt.
var keyActions = map[tcell.Key]func() statepkg.Action{
	tcell.KeyUp:         func() statepkg.Action { return statepkg.MoveUpAction{} },
	tcell.KeyDown:       func() statepkg.Action { return statepkg.MoveDownAction{} },
	tcell.KeyRight:      func() statepkg.Action { return statepkg.EnterAction{} },
	tcell.KeyEnter:      func() statepkg.Action { return statepkg.EnterAction{} },
	tcell.KeyLeft:       func() statepkg.Action { return statepkg.AscendAction{} },
	tcell.KeyBackspace:  func() statepkg.Action { return statepkg.AscendAction{} },
	tcell.KeyBackspace2: func() statepkg.Action { return statepkg.AscendAction{} },
	tcell.KeyCtrlC:      func() statepkg.Action { return statepkg.QuitAction{} },
	tcell.KeyCtrlZ:      func() statepkg.Action { return statepkg.SuspendAction{} },
}

// runeActions covers letter commands. w/d/e/a/s/q form the home-row layout;
// the vi keys sit alongside them.
var runeActions = map[rune]func() statepkg.Action{
	'w': func() statepkg.Action { return statepkg.MoveUpAction{} },
	'k': func() statepkg.Action { return statepkg.MoveUpAction{} },
	'd': func() statepkg.Action { return statepkg.MoveDownAction{} },
	'j': func() statepkg.Action { return statepkg.MoveDownAction{} },
	'e': func() statepkg.Action { return statepkg.EnterAction{} },
	'l': func() statepkg.Action { return statepkg.EnterAction{} },
	'a': func() statepkg.Action { return statepkg.AscendAction{} },
	'h': func() statepkg.Action { return statepkg.AscendAction{} },
	's': func() statepkg.Action { return statepkg.PromptStartAction{} },
	'/': func() statepkg.Action { return statepkg.PromptStartAction{} },
	'y': func() statepkg.Action { return statepkg.CopyPathAction{} },
	'r': func() statepkg.Action { return statepkg.RefreshAction{} },
	'q': func() statepkg.Action { return statepkg.QuitAction{} },
	'x': func() statepkg.Action { return statepkg.QuitAndChangeAction{} },
}

// InputHandler converts tcell events to Actions
type InputHandler struct {
	state *statepkg.AppState // Reference to current state for mode checking
}

// NewInputHandler creates a new input handler
func NewInputHandler() *InputHandler {
	return &InputHandler{}
}

// SetState sets the state reference for mode checking
func (ih *InputHandler) SetState(state *statepkg.AppState) {
	ih.state = state
}

// Translate converts one event into an Action. It returns nil for events
// that carry no command; unknown keys are ignored rather than reported.
func (ih *InputHandler) Translate(ev tcell.Event) statepkg.Action {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return nil
	}
	if ih.state != nil && ih.state.PromptActive {
		return ih.translatePromptKey(key)
	}
	return translateNavigationKey(key)
}

func translateNavigationKey(ev *tcell.EventKey) statepkg.Action {
	if ev.Key() == tcell.KeyRune {
		if ev.Modifiers()&(tcell.ModAlt|tcell.ModCtrl) != 0 {
			return nil
		}
		if build, ok := runeActions[ev.Rune()]; ok {
			return build()
		}
		return nil
	}
	if build, ok := keyActions[ev.Key()]; ok {
		return build()
	}
	return nil
}

// translatePromptKey handles the line-buffered jump prompt.
func (ih *InputHandler) translatePromptKey(ev *tcell.EventKey) statepkg.Action {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return statepkg.QuitAction{}
	case tcell.KeyEscape:
		return statepkg.PromptCancelAction{}
	case tcell.KeyEnter:
		return statepkg.PromptSubmitAction{}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return statepkg.PromptBackspaceAction{}
	case tcell.KeyRune:
		r := ev.Rune()
		if unicode.IsPrint(r) {
			return statepkg.PromptCharAction{Char: r}
		}
	}
	return nil
}
