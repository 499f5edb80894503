package navigation

// Menu is a top-level sidebar destination. The zero value is the home screen.
type Menu string

type ProfileOption string
type PostType string
type Permission string

const (
	MenuHome      Menu = ""
	MenuProfile   Menu = "Profile"
	MenuPosts     Menu = "Posts"
	MenuSettings  Menu = "Settings"
	MenuHelp      Menu = "Help"
	MenuDashboard Menu = "Dashboard"

	ProfileOptionNone             ProfileOption = ""
	ProfileOptionMyPosts          ProfileOption = "My Posts"
	ProfileOptionRegisteredEvents ProfileOption = "Registered Events"
	ProfileOptionLikedPosts       ProfileOption = "Liked Posts"

	PostTypeNone    PostType = ""
	PostTypePublic  PostType = "Public"
	PostTypePrivate PostType = "Private"

	PermissionNone     Permission = ""
	PermissionAccepted Permission = "Accepted"
	PermissionDenied   Permission = "Denied"
)

// SidebarMenus lists the menus a user may select directly. Dashboard is
// only entered by accepting a post review.
var SidebarMenus = []Menu{MenuProfile, MenuPosts, MenuSettings, MenuHelp}

// State is the navigation tuple for one session. It is a value type: every
// transition returns a new State and leaves the old one untouched.
type State struct {
	Menu          Menu          `json:"menu,omitempty"`
	ProfileOption ProfileOption `json:"profile_option,omitempty"`
	PostType      PostType      `json:"post_type,omitempty"`
	Permission    Permission    `json:"permission,omitempty"`
}

func (m Menu) IsSelectable() bool {
	for _, menu := range SidebarMenus {
		if m == menu {
			return true
		}
	}
	return false
}

func (o ProfileOption) IsValid() bool {
	switch o {
	case ProfileOptionMyPosts, ProfileOptionRegisteredEvents, ProfileOptionLikedPosts:
		return true
	}
	return false
}

func (t PostType) IsValid() bool {
	return t == PostTypePublic || t == PostTypePrivate
}

func (p Permission) IsValid() bool {
	return p == PermissionAccepted || p == PermissionDenied
}

// Screen reports which page the state maps to, without applying the
// dashboard guard. Use Resolve to get the screen that should actually render.
func (s State) Screen() Screen {
	switch s.Menu {
	case MenuHome:
		return ScreenHome
	case MenuProfile:
		switch s.ProfileOption {
		case ProfileOptionMyPosts:
			switch s.PostType {
			case PostTypePublic:
				return ScreenPublicPost
			case PostTypePrivate:
				return ScreenPrivatePost
			}
			return ScreenMyPosts
		case ProfileOptionRegisteredEvents:
			return ScreenRegisteredEvents
		case ProfileOptionLikedPosts:
			return ScreenLikedPosts
		}
		return ScreenProfile
	case MenuPosts:
		return ScreenPosts
	case MenuSettings:
		return ScreenSettings
	case MenuHelp:
		return ScreenHelp
	case MenuDashboard:
		return ScreenDashboard
	}
	return ScreenHome
}

// Path renders the state as a dotted path such as "Profile.My Posts.Public".
func (s State) Path() string {
	if s.Menu == MenuHome {
		return "Home"
	}
	path := string(s.Menu)
	if s.ProfileOption != ProfileOptionNone {
		path += "." + string(s.ProfileOption)
	}
	if s.PostType != PostTypeNone {
		path += "." + string(s.PostType)
	}
	if s.Permission != PermissionNone {
		path += "." + string(s.Permission)
	}
	return path
}
