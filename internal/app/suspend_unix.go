//go:build !windows

package app

import (
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

// suspendToShell hands the terminal back and stops the process until the
// shell continues it.
func (app *Application) suspendToShell() {
	cont := make(chan os.Signal, 1)
	signal.Notify(cont, syscall.SIGCONT)
	defer signal.Stop(cont)

	if err := app.screen.Suspend(); err != nil {
		app.logger.Warn("suspend failed", zap.Error(err))
		return
	}
	app.logger.Debug("suspended")

	// Stop only this process; signalling the group would also stop a
	// wrapper shell function and break `fg`.
	if err := syscall.Kill(syscall.Getpid(), syscall.SIGTSTP); err != nil {
		app.logger.Warn("stop failed", zap.Error(err))
	} else {
		<-cont
	}

	app.resumeAfterStop()
}

func (app *Application) resumeAfterStop() {
	if err := app.screen.Resume(); err != nil {
		app.logger.Error("resume failed", zap.Error(err))
		app.state.SetError(err)
		return
	}
	app.screen.Sync()
	app.logger.Debug("resumed")
}
