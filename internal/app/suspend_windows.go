//go:build windows

package app

// No job control on Windows; Ctrl-Z is ignored.
func (app *Application) suspendToShell() {
}
