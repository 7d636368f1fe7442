package search

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gobwas/glob"
	fsutil "github.com/kk-code-lab/dirhop/internal/fs"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// MatchMode selects how a typed term is compared against directory names.
type MatchMode int

const (
	// MatchPrefix matches names that start with the term.
	MatchPrefix MatchMode = iota
	// MatchSubstring matches names that contain the term anywhere.
	MatchSubstring
	// MatchGlob treats the term as a glob pattern over the whole name.
	MatchGlob
)

func (m MatchMode) String() string {
	switch m {
	case MatchPrefix:
		return "prefix"
	case MatchSubstring:
		return "substring"
	case MatchGlob:
		return "glob"
	default:
		return fmt.Sprintf("MatchMode(%d)", int(m))
	}
}

// ParseMatchMode converts a flag value into a MatchMode.
func ParseMatchMode(s string) (MatchMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "prefix":
		return MatchPrefix, nil
	case "substring", "contains":
		return MatchSubstring, nil
	case "glob":
		return MatchGlob, nil
	default:
		return MatchPrefix, fmt.Errorf("unknown match mode %q (want prefix, substring or glob)", s)
	}
}

// Resolver picks the directory a jump command should land on.
type Resolver struct {
	Mode MatchMode
}

// NewResolver returns a resolver using mode.
func NewResolver(mode MatchMode) *Resolver {
	return &Resolver{Mode: mode}
}

// Resolve returns the first directory entry, in listing order, whose name
// matches term. Files are never candidates. An empty term matches nothing.
//
// Matching is smart-case: a term without upper-case letters is compared
// case-insensitively. Glob patterns are always case-sensitive.
func (r *Resolver) Resolve(entries []fsutil.Entry, term string) (fsutil.Entry, bool, error) {
	if strings.TrimSpace(term) == "" {
		return fsutil.Entry{}, false, nil
	}
	// Listed names are NFC; a decomposed term must compare equal to them.
	term = norm.NFC.String(term)

	match, err := r.matcher(term)
	if err != nil {
		return fsutil.Entry{}, false, err
	}

	for _, entry := range entries {
		if !entry.IsDir {
			continue
		}
		if match(entry.Name) {
			return entry, true, nil
		}
	}
	return fsutil.Entry{}, false, nil
}

func (r *Resolver) matcher(term string) (func(string) bool, error) {
	if r.Mode == MatchGlob {
		g, err := glob.Compile(term)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", term, err)
		}
		return g.Match, nil
	}

	fold := func(s string) string { return s }
	if !hasUppercase(term) {
		folder := cases.Fold()
		fold = folder.String
	}
	needle := fold(term)

	if r.Mode == MatchSubstring {
		return func(name string) bool {
			return strings.Contains(fold(name), needle)
		}, nil
	}
	return func(name string) bool {
		return strings.HasPrefix(fold(name), needle)
	}, nil
}

func hasUppercase(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}
