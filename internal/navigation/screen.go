package navigation

// Screen identifies a rendered page.
type Screen string

const (
	ScreenHome             Screen = "home"
	ScreenProfile          Screen = "profile"
	ScreenMyPosts          Screen = "my_posts"
	ScreenPublicPost       Screen = "public_post"
	ScreenPrivatePost      Screen = "private_post"
	ScreenRegisteredEvents Screen = "registered_events"
	ScreenLikedPosts       Screen = "liked_posts"
	ScreenPosts            Screen = "posts"
	ScreenSettings         Screen = "settings"
	ScreenHelp             Screen = "help"
	ScreenDashboard        Screen = "dashboard"
)

type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeInfo    NoticeLevel = "info"
	NoticeError   NoticeLevel = "error"
)

type Notice struct {
	Level NoticeLevel
	Text  string
}

const (
	AccessDeniedNotice      = "Access denied. Please follow the proper flow to access the Dashboard."
	PermissionDeniedNotice  = "Permission Denied - Please review and resubmit."
	PermissionGrantedNotice = "Permission Accepted"
)

// Page is the static content of a screen.
type Page struct {
	Title       string
	Description string
}

var pages = map[Screen]Page{
	ScreenHome: {
		Title:       "Community Volunteering App",
		Description: "Welcome to the Helpize Community Volunteering App. Open the menu to explore Profile, Posts, Settings, and Help.",
	},
	ScreenProfile: {
		Title:       "Profile",
		Description: "Manage your personal volunteering activities and preferences.",
	},
	ScreenMyPosts: {
		Title:       "My Posts",
		Description: "View and manage your posted events.",
	},
	ScreenPublicPost: {
		Title:       "Public Event",
		Description: "Review this public event post for community guidelines compliance.",
	},
	ScreenPrivatePost: {
		Title:       "Private Event",
		Description: "Review this private event post for community guidelines compliance.",
	},
	ScreenRegisteredEvents: {
		Title:       "Registered Events",
		Description: "Here is a list of events you have joined.",
	},
	ScreenLikedPosts: {
		Title:       "Liked Posts",
		Description: "Posts you have favorited.",
	},
	ScreenPosts: {
		Title:       "Posts",
		Description: "Global feed of all volunteer opportunities.",
	},
	ScreenSettings: {
		Title:       "Settings",
		Description: "Manage your account and notifications.",
	},
	ScreenHelp: {
		Title:       "Help",
		Description: "Frequently Asked Questions and Support.",
	},
	ScreenDashboard: {
		Title:       "Volunteer Dashboard",
		Description: "Manage your activities and events here.",
	},
}

func PageFor(screen Screen) Page {
	return pages[screen]
}

// Option is a choice offered on a screen together with the action it fires.
type Option struct {
	Label  string
	Action Action
}

// Options returns the in-page choices for a screen, in display order.
// Sidebar menu selections are available everywhere and are not listed.
func Options(screen Screen) []Option {
	switch screen {
	case ScreenProfile:
		return []Option{
			{Label: string(ProfileOptionMyPosts), Action: SelectProfileOption(ProfileOptionMyPosts)},
			{Label: string(ProfileOptionRegisteredEvents), Action: SelectProfileOption(ProfileOptionRegisteredEvents)},
			{Label: string(ProfileOptionLikedPosts), Action: SelectProfileOption(ProfileOptionLikedPosts)},
		}
	case ScreenMyPosts:
		return []Option{
			{Label: string(PostTypePublic), Action: SelectPostType(PostTypePublic)},
			{Label: string(PostTypePrivate), Action: SelectPostType(PostTypePrivate)},
		}
	case ScreenPublicPost, ScreenPrivatePost:
		return []Option{
			{Label: string(PermissionAccepted), Action: Decide(PermissionAccepted)},
			{Label: string(PermissionDenied), Action: Decide(PermissionDenied)},
		}
	}
	return nil
}
