package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kk-code-lab/dirhop/internal/logging"
	searchpkg "github.com/kk-code-lab/dirhop/internal/search"
	statepkg "github.com/kk-code-lab/dirhop/internal/state"
)

// Config is populated from command-line flags.
type Config struct {
	StartDir    string
	RowsPerPage int
	Scroll      string
	Match       string
	LogFile     string
	LogLevel    string
	LogFormat   string
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	_, _, err := c.policies()
	if err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		return err
	}
	return nil
}

func (c Config) policies() (statepkg.ScrollPolicy, searchpkg.MatchMode, error) {
	if c.RowsPerPage < 0 {
		return 0, 0, fmt.Errorf("rows must not be negative, got %d", c.RowsPerPage)
	}
	scroll, err := statepkg.ParseScrollPolicy(c.Scroll)
	if err != nil {
		return 0, 0, err
	}
	match, err := searchpkg.ParseMatchMode(c.Match)
	if err != nil {
		return 0, 0, err
	}
	return scroll, match, nil
}

func (c Config) rowsPerPage() int {
	if c.RowsPerPage == 0 {
		return statepkg.DefaultRowsPerPage
	}
	return c.RowsPerPage
}

// startDir resolves the directory to open, defaulting to the working
// directory.
func (c Config) startDir() (string, error) {
	if c.StartDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("determine working directory: %w", err)
		}
		return cwd, nil
	}
	abs, err := filepath.Abs(c.StartDir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", c.StartDir, err)
	}
	return abs, nil
}
