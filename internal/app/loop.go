package app

import (
	"errors"

	"github.com/gdamore/tcell/v2"
	fsutil "github.com/kk-code-lab/dirhop/internal/fs"
	statepkg "github.com/kk-code-lab/dirhop/internal/state"
	"go.uber.org/zap"
)

// Run executes the turn loop until a quit command: re-list the current
// directory, render, wait for one event, apply it. Errors raised while
// applying a command are shown on the next frame and never end the loop.
func (app *Application) Run() {
	for !app.shouldQuit {
		app.refresh()
		app.renderer.Render(app.state)

		ev := app.screen.PollEvent()
		if ev == nil {
			// Screen finalized underneath us.
			return
		}
		app.handleEvent(ev)
	}
}

func (app *Application) refresh() {
	if _, err := app.reducer.Reduce(app.state, statepkg.RefreshAction{}); err != nil {
		app.reportError("refresh failed", err)
	}
}

func (app *Application) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		// The next frame reads the new size from the screen.
		app.screen.Sync()
	case *tcell.EventKey:
		action := app.input.Translate(ev)
		if action == nil {
			return
		}
		app.state.ClearMessage()
		app.handleAction(action)
	}
}

func (app *Application) handleAction(action statepkg.Action) {
	switch action.(type) {
	case statepkg.QuitAction:
		app.shouldQuit = true
		return
	case statepkg.QuitAndChangeAction:
		app.chosenPath = app.state.CurrentPath
		app.shouldQuit = true
		return
	case statepkg.SuspendAction:
		app.suspendToShell()
		return
	case statepkg.CopyPathAction:
		app.copyCurrentPath()
		return
	}

	if _, err := app.reducer.Reduce(app.state, action); err != nil {
		app.reportError("command failed", err)
	}
}

func (app *Application) reportError(msg string, err error) {
	fields := []zap.Field{zap.Error(err), zap.String("dir", app.state.CurrentPath)}
	if errors.Is(err, fsutil.ErrUnreadable) {
		app.logger.Warn(msg, fields...)
	} else {
		app.logger.Error(msg, fields...)
	}
	app.state.SetError(err)
}
