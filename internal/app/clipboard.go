package app

import (
	"bytes"
	"fmt"
	"os/exec"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
	statepkg "github.com/kk-code-lab/dirhop/internal/state"
	"go.uber.org/zap"
)

var commandBuilder = exec.Command

// Clipboard receives the copied directory path.
type Clipboard interface {
	Copy(text string) error
}

// commandClipboard pipes text into a clipboard tool found on PATH.
type commandClipboard struct {
	args []string
}

func (c commandClipboard) Copy(text string) error {
	cmd := commandBuilder(c.args[0], c.args[1:]...)
	cmd.Stdin = strings.NewReader(text)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %w: %s", c.args[0], err, msg)
		}
		return fmt.Errorf("%s: %w", c.args[0], err)
	}
	return nil
}

// systemClipboard goes through github.com/atotto/clipboard, which talks to
// the Windows clipboard API directly and covers termux on Android.
type systemClipboard struct{}

func (systemClipboard) Copy(text string) error {
	return clipboard.WriteAll(text)
}

func detectClipboard() Clipboard {
	if args, ok := detectClipboardInternal(runtime.GOOS, exec.LookPath); ok {
		return commandClipboard{args: args}
	}
	if !clipboard.Unsupported {
		return systemClipboard{}
	}
	return nil
}

func detectClipboardInternal(goos string, lookPath func(string) (string, error)) ([]string, bool) {
	find := func(name string) (string, bool) {
		resolved, err := lookPath(name)
		return resolved, err == nil && resolved != ""
	}

	if strings.EqualFold(goos, "windows") {
		for _, name := range []string{"clip.exe", "clip"} {
			if resolved, ok := find(name); ok {
				return []string{resolved}, true
			}
		}
		for _, ps := range []string{"powershell", "powershell.exe", "pwsh"} {
			if resolved, ok := find(ps); ok {
				return []string{resolved, "-NoLogo", "-NoProfile", "-Command", "Set-Clipboard"}, true
			}
		}
		return nil, false
	}

	candidates := [][]string{
		{"pbcopy"},
		{"wl-copy"},
		{"xclip", "-selection", "clipboard"},
		{"xsel", "--clipboard", "--input"},
	}
	for _, candidate := range candidates {
		if resolved, ok := find(candidate[0]); ok {
			return append([]string{resolved}, candidate[1:]...), true
		}
	}
	return nil, false
}

func normalizeClipboardPath(inputPath string, goos string) string {
	if strings.EqualFold(goos, "windows") {
		cleaned := filepath.Clean(inputPath)
		return strings.ReplaceAll(cleaned, "/", `\`)
	}
	return path.Clean(filepath.ToSlash(inputPath))
}

// copyCurrentPath copies the current directory. Failure leaves a message and
// nothing else.
func (app *Application) copyCurrentPath() {
	if app.clipboard == nil {
		app.state.SetMessage(statepkg.MessageError, "no clipboard available")
		return
	}

	text := normalizeClipboardPath(app.state.CurrentPath, runtime.GOOS)
	if err := app.clipboard.Copy(text); err != nil {
		app.logger.Warn("clipboard copy failed", zap.Error(err))
		app.state.SetError(fmt.Errorf("copy failed: %w", err))
		return
	}
	app.logger.Debug("copied path", zap.String("path", text))
	app.state.SetMessage(statepkg.MessageInfo, "copied "+text)
}
