// Package shellsetup prints the shell function that runs dirhop and changes
// into the directory it reports on exit, and writes that report.
package shellsetup

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// ResultFilePrefix names the per-process result file read by the wrapper.
const ResultFilePrefix = "dirhop_result_"

type ParentShellFunc func() string

type Config struct {
	DetectParent ParentShellFunc
	// Executable overrides the binary path embedded in the snippet.
	Executable string
}

// ResultPath returns the file the shell wrapper reads for process pid.
func ResultPath(pid int) string {
	return filepath.Join(os.TempDir(), fmt.Sprintf("%s%d.txt", ResultFilePrefix, pid))
}

// WriteResult records dir for the wrapper of the current process. The file
// is readable by the owner only.
func WriteResult(dir string) (string, error) {
	file := ResultPath(os.Getpid())
	if err := os.WriteFile(file, []byte(dir), 0o600); err != nil {
		return "", fmt.Errorf("write result file: %w", err)
	}
	return file, nil
}

// WriteSetup writes the snippet for shellOverride, or for the detected shell
// when the override is empty.
func WriteSetup(w io.Writer, shellOverride string, cfg Config) error {
	parent := cfg.DetectParent
	if parent == nil {
		parent = DetectParentShellName
	}

	shell := canonicalShellName(normalizeShellName(shellOverride))
	if shell == "" {
		shell = detectShell(parent)
	}

	exe := cfg.Executable
	if exe == "" {
		var err error
		if exe, err = os.Executable(); err != nil {
			exe = "dirhop"
		}
	}
	quoted := strconv.Quote(exe)

	var snippet string
	switch shell {
	case "fish":
		snippet = fmt.Sprintf(fishSnippet, quoted, ResultFilePrefix)
	case "pwsh":
		snippet = fmt.Sprintf(pwshSnippet, quoted, ResultFilePrefix)
	default:
		snippet = fmt.Sprintf(posixSnippet, quoted, ResultFilePrefix)
	}
	_, err := io.WriteString(w, snippet)
	return err
}

// Snippets take the quoted executable and the result file prefix.
const posixSnippet = `dirhop() {
    if [ "$#" -gt 0 ]; then
        command %[1]s "$@"
        return $?
    fi

    command %[1]s &
    dirhop_pid=$!
    wait $dirhop_pid

    result_file="${TMPDIR:-/tmp}/%[2]s$dirhop_pid.txt"
    if [ -f "$result_file" ] && [ ! -L "$result_file" ] && [ -O "$result_file" ]; then
        dest=$(cat "$result_file" 2>/dev/null)
        rm -f "$result_file"
        if [ -d "$dest" ] 2>/dev/null; then
            cd "$dest"
        fi
    else
        rm -f "$result_file" 2>/dev/null
    fi
}
`

const fishSnippet = `function dirhop
    if test (count $argv) -gt 0
        command %[1]s $argv
        return $status
    end

    command %[1]s &
    set dirhop_pid $last_pid
    wait $dirhop_pid

    set tmp_dir $TMPDIR
    test -n "$tmp_dir"; or set tmp_dir /tmp
    set result_file "$tmp_dir/%[2]s$dirhop_pid.txt"
    if test -f "$result_file" -a ! -L "$result_file" -a -O "$result_file"
        set dest (cat "$result_file" 2>/dev/null)
        if test -d "$dest" 2>/dev/null
            builtin cd "$dest"
        end
    end
    rm -f "$result_file" 2>/dev/null
end
`

const pwshSnippet = `function dirhop {
    param([Parameter(ValueFromRemainingArguments=$true)][string[]]$Args)
    if ($Args.Count -gt 0) {
        & %[1]s @Args
        return
    }

    $process = Start-Process -FilePath %[1]s -NoNewWindow -PassThru
    $process.WaitForExit()

    $resultFile = Join-Path ([System.IO.Path]::GetTempPath()) "%[2]s$($process.Id).txt"
    try {
        if (Test-Path $resultFile -PathType Leaf) {
            $dest = Get-Content $resultFile -Raw -ErrorAction SilentlyContinue | ForEach-Object { $_.Trim() }
            if (-not [string]::IsNullOrEmpty($dest) -and (Test-Path $dest -PathType Container)) {
                Set-Location $dest
            }
        }
    } finally {
        Remove-Item $resultFile -ErrorAction SilentlyContinue
    }
}
`

func detectShell(parent ParentShellFunc) string {
	return detectShellInternal(runtime.GOOS, os.Getenv, parent)
}

func detectShellInternal(goos string, getenv func(string) string, parent ParentShellFunc) string {
	if shell := canonicalShellName(normalizeShellName(getenv("SHELL"))); shell != "" {
		return shell
	}

	if parent != nil {
		if shell := canonicalShellName(normalizeShellName(parent())); shell != "" {
			return shell
		}
	}

	if strings.EqualFold(goos, "windows") {
		return "pwsh"
	}
	return "bash"
}

// canonicalShellName folds shell names onto the three snippet families.
func canonicalShellName(name string) string {
	switch name {
	case "":
		return ""
	case "powershell", "pwsh":
		return "pwsh"
	case "fish":
		return "fish"
	case "bash", "zsh", "sh", "ksh", "dash":
		return name
	default:
		return "sh"
	}
}

func normalizeShellName(value string) string {
	value = extractExecutable(strings.TrimSpace(value))
	if value == "" {
		return ""
	}

	value = strings.Trim(value, `"'`)
	value = strings.ReplaceAll(value, "\\", "/")
	base := strings.ToLower(path.Base(value))
	base = strings.TrimSuffix(base, ".exe")
	return strings.TrimPrefix(strings.TrimSpace(base), "-")
}

func extractExecutable(value string) string {
	if value == "" {
		return ""
	}

	for _, quote := range []string{`"`, "'"} {
		if strings.HasPrefix(value, quote) {
			value = value[1:]
			if idx := strings.Index(value, quote); idx >= 0 {
				return value[:idx]
			}
			return value
		}
	}

	if idx := strings.IndexAny(value, " \t"); idx >= 0 {
		return value[:idx]
	}
	return value
}
