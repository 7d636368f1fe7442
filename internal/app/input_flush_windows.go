//go:build windows

package app

import "golang.org/x/sys/windows"

// flushPendingInput drops keystrokes still queued in the console so they do
// not reach the shell after exit.
func flushPendingInput() {
	handle, err := windows.GetStdHandle(windows.STD_INPUT_HANDLE)
	if err != nil {
		return
	}
	_ = windows.FlushConsoleInputBuffer(handle)
}
