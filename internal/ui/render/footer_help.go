package render

import (
	"strings"

	statepkg "github.com/kk-code-lab/dirhop/internal/state"
)

// buildFooterHelpText returns the contextual footer hint string with leading/trailing padding.
func buildFooterHelpText(state *statepkg.AppState) string {
	parts := buildFooterHelpSegments(state)
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, "  ") + " "
}

// buildFooterHelpSegments assembles context-aware help hints for the footer.
func buildFooterHelpSegments(state *statepkg.AppState) []string {
	if state == nil {
		return nil
	}

	if state.PromptActive {
		return []string{
			"type: directory name",
			"↵: jump",
			"Esc: cancel",
		}
	}

	segments := []string{
		"w/d ↑↓: move",
		"e →: enter",
		"a ←: up",
		"s /: jump",
		"r: refresh",
	}
	if state.ClipboardAvailable {
		segments = append(segments, "y: copy path")
	}
	return append(segments, "q/x: quit/cd")
}
