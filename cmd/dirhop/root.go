package main

import (
	"errors"
	"fmt"
	"os"

	apppkg "github.com/kk-code-lab/dirhop/internal/app"
	"github.com/kk-code-lab/dirhop/internal/shellsetup"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errNotTerminal = errors.New("dirhop needs an interactive terminal")

// isTerminal and runBrowser are replaced in tests.
var (
	isTerminal = func() bool {
		return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	}
	runBrowser          = runApplication
	parentShellDetector = shellsetup.DetectParentShellName
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var cfg apppkg.Config

	rootCmd := &cobra.Command{
		Use:   "dirhop [DIR]",
		Short: "Browse directories in the terminal and hop between them",
		Long: `dirhop shows a directory as a list you can move through with the keyboard.

Keys: w/d or arrows move, e or Enter opens a directory, a or Backspace goes
up, s or / jumps to a subdirectory by name, y copies the current path,
r re-reads the directory, q quits and x quits into the current directory
(see "dirhop setup").`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if cfg.StartDir != "" {
					return errors.New("give the start directory either as argument or with --dir")
				}
				cfg.StartDir = args[0]
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if !isTerminal() {
				return errNotTerminal
			}

			dir, ok, err := runBrowser(cfg)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			if _, err := shellsetup.WriteResult(dir); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
			}
			return nil
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&cfg.StartDir, "dir", "", "directory to open (default: working directory)")
	flags.IntVar(&cfg.RowsPerPage, "rows", 0, "rows above the selection before the list scrolls (default 10)")
	flags.StringVar(&cfg.Scroll, "scroll", "trailing", "scroll policy: trailing or centered")
	flags.StringVar(&cfg.Match, "match", "prefix", "jump match mode: prefix, substring or glob")
	flags.StringVar(&cfg.LogFile, "log-file", "", "write a debug log to this file")
	flags.StringVar(&cfg.LogLevel, "log-level", "info", "log level: debug, info, warn or error")
	flags.StringVar(&cfg.LogFormat, "log-format", "json", "log encoding: json or console")

	rootCmd.AddCommand(newSetupCmd())
	return rootCmd
}

func newSetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup [SHELL]",
		Short: "Print the shell function that cds into the directory chosen with x",
		Long: `Print a shell function named dirhop. Add it to your shell startup file;
after quitting with x the shell changes into the directory you were in.

Supported shells: bash, zsh, sh, fish and PowerShell. Without SHELL the
current shell is detected.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"bash", "zsh", "sh", "fish", "pwsh", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := ""
			if len(args) == 1 {
				shell = args[0]
			}
			return shellsetup.WriteSetup(cmd.OutOrStdout(), shell, shellsetup.Config{DetectParent: parentShellDetector})
		},
	}
}

func runApplication(cfg apppkg.Config) (string, bool, error) {
	app, err := apppkg.NewApplication(cfg)
	if err != nil {
		return "", false, err
	}
	defer func() {
		_ = app.Close()
	}()

	app.Run()
	dir, ok := app.ChosenPath()
	return dir, ok, nil
}
