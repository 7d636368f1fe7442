package render

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/dirhop/internal/state"
	textutil "github.com/kk-code-lab/dirhop/internal/textutil"
)

const (
	// listTop is the first entry row: title on row 0, a blank row after it.
	listTop = 2
	// footerRows are the status and help rows at the bottom.
	footerRows = 2

	promptLabel = "jump: "
	emptyLabel  = "(empty directory)"
)

// Renderer handles all UI rendering
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// Render clears the screen and draws one full frame for state.
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()
	w, h := r.screen.Size()
	if state == nil || w <= 0 || h <= 0 {
		r.screen.Show()
		return
	}

	r.drawHeader(state, w)
	r.drawEntries(state, w, h)
	r.drawStatusLine(state, w, h)
	r.drawFooter(state, w, h)

	r.screen.Show()
}

// drawHeader renders the current directory as the title.
func (r *Renderer) drawHeader(state *statepkg.AppState, w int) {
	style := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg).Bold(true)
	title := textutil.SanitizeTerminalText(state.CurrentPath)
	title = textutil.TruncateLeft(title, w)
	endX := r.drawTextLine(0, 0, w, title, style)
	r.fillLine(endX, 0, w, style)
}

// drawEntries renders the visible window of entries. The model decides the
// window; this only clips it to the rows the terminal actually has, keeping
// the selected row on screen.
func (r *Renderer) drawEntries(state *statepkg.AppState, w, h int) {
	rows := h - listTop - footerRows
	if rows <= 0 {
		return
	}

	visible, highlighted := state.VisibleEntries()
	if len(visible) == 0 {
		style := tcell.StyleDefault.Foreground(r.theme.EmptyFg)
		r.drawTextLine(1, listTop, w-1, emptyLabel, style)
		return
	}

	offset := 0
	if highlighted >= rows {
		offset = highlighted - rows + 1
	}

	for i := 0; i < rows && offset+i < len(visible); i++ {
		idx := offset + i
		entry := visible[idx]
		y := listTop + i

		style := r.entryStyle(entry)
		if idx == highlighted {
			style = tcell.StyleDefault.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg).Bold(true)
		}

		name := textutil.SanitizeTerminalText(entry.DisplayName())
		name = textutil.Truncate(name, w-1)

		r.screen.SetContent(0, y, ' ', nil, style)
		endX := r.drawTextLine(1, y, w-1, name, style)
		if idx == highlighted {
			r.fillLine(endX, y, w, style)
		}
	}
}

func (r *Renderer) entryStyle(entry statepkg.FileEntry) tcell.Style {
	base := tcell.StyleDefault
	switch {
	case entry.IsSymlink:
		return base.Foreground(r.theme.SymlinkFg)
	case entry.IsDir:
		style := base.Foreground(r.theme.DirectoryFg)
		if entry.IsHidden {
			style = style.Dim(true)
		}
		return style
	case entry.IsHidden:
		return base.Foreground(r.theme.HiddenFg)
	default:
		return base.Foreground(r.theme.FileFg)
	}
}

// drawStatusLine shows the jump prompt while it is open, otherwise the
// message left by the previous command.
func (r *Renderer) drawStatusLine(state *statepkg.AppState, w, h int) {
	y := h - footerRows
	if y < listTop-1 {
		return
	}
	style := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)

	if state.PromptActive {
		query := textutil.SanitizeTerminalText(state.PromptQuery)
		endX := r.drawTextLine(0, y, w, promptLabel, style.Bold(true))
		endX = r.drawTextLine(endX, y, w-endX, textutil.TruncateLeft(query, w-endX-1), style)
		r.fillLine(endX, y, w, style)
		if endX < w {
			r.screen.ShowCursor(endX, y)
		}
		return
	}
	r.screen.HideCursor()

	msg := state.Message
	if msg.Text == "" {
		r.fillLine(0, y, w, style)
		return
	}
	msgStyle := style.Foreground(r.theme.InfoFg)
	if msg.Kind == statepkg.MessageError {
		msgStyle = style.Foreground(r.theme.ErrorFg)
	}
	text := textutil.Truncate(textutil.SanitizeTerminalText(msg.Text), w)
	endX := r.drawTextLine(0, y, w, text, msgStyle)
	r.fillLine(endX, y, w, style)
}

func (r *Renderer) drawFooter(state *statepkg.AppState, w, h int) {
	y := h - 1
	if y < listTop {
		return
	}
	style := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg).Dim(true)
	help := textutil.Truncate(buildFooterHelpText(state), w)
	endX := r.drawTextLine(0, y, w, help, style)
	r.fillLine(endX, y, w, style)
}
