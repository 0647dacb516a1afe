// Package view provides view composition helpers for the TUI.
package view

const (
	loadingText  = "Loading..."
	tooSmallText = "Terminal too small"
)

// ViewState describes the terminal and how to draw into it. Body is only
// called once the terminal is known to fit MinWidth x MinHeight.
type ViewState struct {
	Width     int
	Height    int
	MinWidth  int
	MinHeight int
	Body      func() string
}

// Render returns a placeholder until the first resize, a warning when the
// terminal is too small, and the body otherwise.
func Render(state ViewState) string {
	switch {
	case state.Width <= 0 || state.Height <= 0 || state.Body == nil:
		return loadingText
	case state.Width < state.MinWidth || state.Height < state.MinHeight:
		return tooSmallText
	}
	return state.Body()
}
