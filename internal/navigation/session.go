package navigation

// Session owns the navigation state of one interactive run. It is not safe
// for concurrent use; each session is driven by a single user.
type Session struct {
	state State
	view  View
}

func NewSession() *Session {
	s := &Session{}
	s.view, _ = Resolve(s.state)
	return s
}

func (s *Session) State() State {
	return s.state
}

// View returns the screen resolved after the last dispatch.
func (s *Session) View() View {
	return s.view
}

// Dispatch applies an action and re-resolves the view from the new state.
// Rejected actions leave the session untouched. An access-denied resolution
// still replaces the state, since the guard resets navigation to home.
func (s *Session) Dispatch(action Action) (View, error) {
	next, err := Reduce(s.state, action)
	if err != nil {
		return s.view, err
	}
	return s.apply(next)
}

// Restore replaces the state wholesale, for example from a saved snapshot,
// and resolves it through the same guard as Dispatch.
func (s *Session) Restore(state State) (View, error) {
	return s.apply(state)
}

func (s *Session) apply(state State) (View, error) {
	view, err := Resolve(state)
	s.state = view.State
	s.view = view
	return view, err
}
