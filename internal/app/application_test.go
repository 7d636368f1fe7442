package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	fsutil "github.com/kk-code-lab/dirhop/internal/fs"
	searchpkg "github.com/kk-code-lab/dirhop/internal/search"
	statepkg "github.com/kk-code-lab/dirhop/internal/state"
	"go.uber.org/zap"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "zero value", cfg: Config{}},
		{name: "all options", cfg: Config{RowsPerPage: 5, Scroll: "centered", Match: "glob", LogLevel: "debug"}},
		{name: "negative rows", cfg: Config{RowsPerPage: -1}, wantErr: true},
		{name: "bad scroll", cfg: Config{Scroll: "sideways"}, wantErr: true},
		{name: "bad match", cfg: Config{Match: "regex"}, wantErr: true},
		{name: "bad level", cfg: Config{LogLevel: "chatty"}, wantErr: true},
		{name: "console log", cfg: Config{LogFormat: "console"}},
		{name: "bad log format", cfg: Config{LogFormat: "xml"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewApplicationListsStartDir(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, "b/", "c/", "d.txt")

	app := newTestApplication(t, Config{StartDir: root, Scroll: "centered", Match: "substring"}, nil)

	assertPath(t, app, root)
	assertSelected(t, app, 0)
	if got := app.state.EntryCount(); got != 3 {
		t.Fatalf("expected 3 entries, got %d", got)
	}
	if app.state.RowsPerPage != statepkg.DefaultRowsPerPage {
		t.Fatalf("rows per page = %d, want default", app.state.RowsPerPage)
	}
	if app.state.Scroll != statepkg.ScrollCentered {
		t.Fatalf("scroll policy = %v, want centered", app.state.Scroll)
	}
	if app.state.ClipboardAvailable {
		t.Fatalf("clipboard must be unavailable without a backend")
	}
	if _, ok := app.ChosenPath(); ok {
		t.Fatalf("no path should be chosen before quitting")
	}
}

func TestNewApplicationUsesWorkingDirectoryByDefault(t *testing.T) {
	root := t.TempDir()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(root); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWD) })

	app := newTestApplication(t, Config{}, nil)

	wd, _ := filepath.Abs(".")
	assertPath(t, app, wd)
}

func TestNewApplicationFailsOnUnreadableStartDir(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	_, err := newApplication(newTestScreen(t), Config{StartDir: missing}, fsutil.NewOSLister(), nil, zap.NewNop())
	if err == nil {
		t.Fatalf("expected start-up failure for %s", missing)
	}
	if !errors.Is(err, fsutil.ErrUnreadable) {
		t.Fatalf("expected ErrUnreadable, got %v", err)
	}
	if !strings.Contains(err.Error(), "open start directory") {
		t.Fatalf("error should name the failing step, got %q", err)
	}
}

func TestNewApplicationRejectsInvalidConfig(t *testing.T) {
	_, err := newApplication(newTestScreen(t), Config{Match: "fuzzy"}, fsutil.NewOSLister(), nil, nil)
	if err == nil {
		t.Fatalf("expected invalid match mode to fail")
	}
}

func TestNewApplicationAppliesMatchMode(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, "alpha/", "beta/")

	app := newTestApplication(t, Config{StartDir: root, Match: searchpkg.MatchSubstring.String()}, nil)

	pressRune(app, '/')
	pressRune(app, 'e')
	pressRune(app, 't')
	pressKey(app, tcell.KeyEnter)

	assertPath(t, app, filepath.Join(root, "beta"))
}
