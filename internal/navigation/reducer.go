package navigation

import (
	"errors"
	"fmt"
)

var (
	// ErrAccessDenied is reported when the dashboard is requested without an
	// accepted review. The session is sent back home.
	ErrAccessDenied = errors.New("dashboard access denied")
	// ErrInvalidTransition is reported for actions that the current screen
	// does not offer. The state is left unchanged.
	ErrInvalidTransition = errors.New("invalid navigation transition")
)

type ActionKind int

const (
	ActionGoHome ActionKind = iota
	ActionSelectMenu
	ActionSelectProfileOption
	ActionSelectPostType
	ActionDecide
	ActionBack
)

func (k ActionKind) String() string {
	switch k {
	case ActionGoHome:
		return "go_home"
	case ActionSelectMenu:
		return "select_menu"
	case ActionSelectProfileOption:
		return "select_profile_option"
	case ActionSelectPostType:
		return "select_post_type"
	case ActionDecide:
		return "decide"
	case ActionBack:
		return "back"
	}
	return fmt.Sprintf("action(%d)", int(k))
}

// Action is a user selection event. Build one with the constructors below.
type Action struct {
	Kind          ActionKind
	Menu          Menu
	ProfileOption ProfileOption
	PostType      PostType
	Permission    Permission
}

func GoHome() Action { return Action{Kind: ActionGoHome} }

func SelectMenu(menu Menu) Action { return Action{Kind: ActionSelectMenu, Menu: menu} }

func SelectProfileOption(option ProfileOption) Action {
	return Action{Kind: ActionSelectProfileOption, ProfileOption: option}
}

func SelectPostType(postType PostType) Action {
	return Action{Kind: ActionSelectPostType, PostType: postType}
}

func Decide(permission Permission) Action {
	return Action{Kind: ActionDecide, Permission: permission}
}

func Back() Action { return Action{Kind: ActionBack} }

// Reduce applies an action to a state. Each level of the tuple owns its
// descendants: setting a field always clears every field below it.
func Reduce(state State, action Action) (State, error) {
	switch action.Kind {
	case ActionGoHome:
		return State{}, nil

	case ActionSelectMenu:
		if !action.Menu.IsSelectable() {
			return state, fmt.Errorf("%w: menu %q is not selectable", ErrInvalidTransition, action.Menu)
		}
		return withMenu(action.Menu), nil

	case ActionSelectProfileOption:
		if state.Screen() != ScreenProfile {
			return state, fmt.Errorf("%w: profile options are not offered on %s", ErrInvalidTransition, state.Screen())
		}
		if !action.ProfileOption.IsValid() {
			return state, fmt.Errorf("%w: unknown profile option %q", ErrInvalidTransition, action.ProfileOption)
		}
		return withProfileOption(state, action.ProfileOption), nil

	case ActionSelectPostType:
		if state.Screen() != ScreenMyPosts {
			return state, fmt.Errorf("%w: post types are not offered on %s", ErrInvalidTransition, state.Screen())
		}
		if !action.PostType.IsValid() {
			return state, fmt.Errorf("%w: unknown post type %q", ErrInvalidTransition, action.PostType)
		}
		return withPostType(state, action.PostType), nil

	case ActionDecide:
		screen := state.Screen()
		if screen != ScreenPublicPost && screen != ScreenPrivatePost {
			return state, fmt.Errorf("%w: review decisions are not offered on %s", ErrInvalidTransition, screen)
		}
		if !action.Permission.IsValid() {
			return state, fmt.Errorf("%w: unknown permission %q", ErrInvalidTransition, action.Permission)
		}
		next := state
		next.Permission = action.Permission
		if action.Permission == PermissionAccepted {
			next.Menu = MenuDashboard
		}
		return next, nil

	case ActionBack:
		return back(state), nil
	}

	return state, fmt.Errorf("%w: unknown action %s", ErrInvalidTransition, action.Kind)
}

func withMenu(menu Menu) State {
	return State{Menu: menu}
}

func withProfileOption(state State, option ProfileOption) State {
	next := withMenu(state.Menu)
	next.ProfileOption = option
	return next
}

func withPostType(state State, postType PostType) State {
	next := withProfileOption(state, state.ProfileOption)
	next.PostType = postType
	return next
}

// back pops the deepest selection of a profile path, or returns home from
// any other screen.
func back(state State) State {
	if state.Menu == MenuProfile {
		switch {
		case state.PostType != PostTypeNone:
			return withProfileOption(state, state.ProfileOption)
		case state.ProfileOption != ProfileOptionNone:
			return withMenu(MenuProfile)
		}
	}
	return State{}
}

// View is the outcome of resolving a state for rendering.
type View struct {
	Screen  Screen
	State   State
	Notices []Notice
}

// Resolve decides which screen renders for a state. The dashboard guard is
// applied here: a dashboard state without an accepted review resolves to the
// home screen with a reset state and ErrAccessDenied.
func Resolve(state State) (View, error) {
	if state.Menu == MenuDashboard && state.Permission != PermissionAccepted {
		return View{
			Screen:  ScreenHome,
			State:   State{},
			Notices: []Notice{{Level: NoticeError, Text: AccessDeniedNotice}},
		}, ErrAccessDenied
	}

	view := View{Screen: state.Screen(), State: state}
	switch state.Permission {
	case PermissionDenied:
		view.Notices = append(view.Notices, Notice{Level: NoticeError, Text: PermissionDeniedNotice})
	case PermissionAccepted:
		view.Notices = append(view.Notices, Notice{Level: NoticeSuccess, Text: PermissionGrantedNotice})
	}
	return view, nil
}
