package engine

// Action is the user gesture that flips the toggle. Its default side effect
// (following a link, submitting a form) is cancelled before the flip.
type Action interface {
	PreventDefault()
}

// Toggle returns the opposite state. The flip is unconditional; a nil
// action is allowed for programmatic flips.
func (s ViewState) Toggle(action Action) ViewState {
	if action != nil {
		action.PreventDefault()
	}
	return ViewState{Collapsed: !s.Collapsed}
}

// ToggleLabel is the link text for the given state.
func ToggleLabel(s ViewState) string {
	if s.Collapsed {
		return "ver más"
	}
	return "ver menos"
}
