package state

import "fmt"

// ScrollPolicy decides where the visible window starts.
type ScrollPolicy int

const (
	// ScrollTrailing starts the window RowsPerPage entries behind the
	// selection and runs to the end of the listing. The window only moves
	// once the selection passes the page threshold and never re-centers.
	ScrollTrailing ScrollPolicy = iota
	// ScrollCentered keeps the selection mid-page and clamps the window to
	// exactly RowsPerPage entries inside the listing.
	ScrollCentered
)

func (p ScrollPolicy) String() string {
	switch p {
	case ScrollTrailing:
		return "trailing"
	case ScrollCentered:
		return "centered"
	default:
		return fmt.Sprintf("ScrollPolicy(%d)", int(p))
	}
}

// ParseScrollPolicy converts a flag value into a ScrollPolicy.
func ParseScrollPolicy(s string) (ScrollPolicy, error) {
	switch s {
	case "", "trailing":
		return ScrollTrailing, nil
	case "centered", "center":
		return ScrollCentered, nil
	default:
		return ScrollTrailing, fmt.Errorf("unknown scroll policy %q (want trailing or centered)", s)
	}
}

// Window is the contiguous range of entries to draw.
type Window struct {
	First int
	Count int
}

// End returns the exclusive upper bound of the window.
func (w Window) End() int {
	return w.First + w.Count
}

// Contains reports whether idx is drawn.
func (w Window) Contains(idx int) bool {
	return idx >= w.First && idx < w.End()
}

// ComputeWindow derives the visible range from the selection. It is a pure
// function of its inputs and is recomputed on every render.
func ComputeWindow(selected, count, rows int, policy ScrollPolicy) Window {
	if count <= 0 {
		return Window{}
	}
	if rows <= 0 {
		rows = DefaultRowsPerPage
	}
	if selected < 0 {
		selected = 0
	}
	if selected >= count {
		selected = count - 1
	}

	if policy == ScrollCentered {
		maxFirst := count - rows
		if maxFirst < 0 {
			maxFirst = 0
		}
		first := selected - rows/2
		if first > maxFirst {
			first = maxFirst
		}
		if first < 0 {
			first = 0
		}
		visible := count - first
		if visible > rows {
			visible = rows
		}
		return Window{First: first, Count: visible}
	}

	first := selected - rows
	if first < 0 {
		first = 0
	}
	return Window{First: first, Count: count - first}
}
