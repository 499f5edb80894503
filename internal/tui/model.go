package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"helpize/internal/models"
	"helpize/internal/navigation"
	"helpize/internal/services"
	"helpize/internal/utils"
	"helpize/internal/validators"
	"helpize/pkg/logger"
)

const (
	activitySubmittedNotice = "Activity submitted successfully!"
	missingFieldsNotice     = "Please fill all required fields marked with *."
	noActivitiesNotice      = "No activities yet. Submit one on the Submit Activity tab to get started!"
	unavailableNotice       = "That option is not available on this screen."
)

type dashboardTab int

const (
	tabSubmit dashboardTab = iota
	tabView
)

var tabTitles = []string{"Submit Activity", "View Activities"}

// sidebarKeys maps the always-available menu shortcuts.
var sidebarKeys = map[string]navigation.Menu{
	"p": navigation.MenuProfile,
	"o": navigation.MenuPosts,
	"s": navigation.MenuSettings,
	"?": navigation.MenuHelp,
}

type Config struct {
	Dark     bool
	Logger   *logger.Logger
	Now      func() time.Time
	Location *time.Location
}

// Model is the bubbletea model for one volunteer session. It owns the
// session's navigation state and activity log.
type Model struct {
	session    *navigation.Session
	activities services.ActivityLog
	logger     *logger.Logger
	location   *time.Location

	dark   bool
	styles Styles

	tab     dashboardTab
	form    activityForm
	editing bool

	// status is a one-line result of the last key press, shown under the
	// screen's own notices.
	status navigation.Notice

	width int
}

func New(cfg Config) Model {
	log := cfg.Logger
	if log == nil {
		log = logger.NewNop()
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}
	clock := cfg.Now
	if clock == nil {
		clock = time.Now
	}
	// "Today" must be the calendar day in the same zone the form parses dates in.
	now := func() time.Time { return clock().In(loc) }

	return Model{
		session:    navigation.NewSession(),
		activities: services.NewActivityLog(now, log),
		logger:     log,
		location:   loc,
		dark:       cfg.Dark,
		styles:     stylesFor(cfg.Dark),
		form:       newActivityForm(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.editing {
			return m.updateForm(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "q":
		return m, tea.Quit
	case "h":
		return m.dispatch(navigation.GoHome()), nil
	case "esc":
		return m.dispatch(navigation.Back()), nil
	case "d":
		m.dark = !m.dark
		m.styles = stylesFor(m.dark)
		return m, nil
	}

	if menu, ok := sidebarKeys[key]; ok {
		return m.dispatch(navigation.SelectMenu(menu)), nil
	}

	if m.onDashboard() {
		switch key {
		case "tab", "right", "left", "shift+tab":
			m.tab = (m.tab + 1) % dashboardTab(len(tabTitles))
			return m, nil
		case "enter", "i":
			if m.tab == tabSubmit {
				m.editing = true
				m.status = navigation.Notice{}
				return m, m.form.focus(m.form.focused)
			}
		}
	}

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		options := navigation.Options(m.session.View().Screen)
		index := int(key[0] - '1')
		if index >= len(options) {
			m.status = navigation.Notice{Level: navigation.NoticeInfo, Text: unavailableNotice}
			return m, nil
		}
		return m.dispatch(options[index].Action), nil
	}

	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.form.blur()
		return m, nil
	case "tab", "down":
		return m, m.form.next()
	case "shift+tab", "up":
		return m, m.form.prev()
	case "ctrl+s":
		return m.submit(), nil
	case "enter":
		if m.form.isLast() {
			return m.submit(), nil
		}
		return m, m.form.next()
	}

	cmd := m.form.update(msg)
	return m, cmd
}

// submit appends the form to the activity log. On failure every input keeps
// its value; on success the form is cleared.
func (m Model) submit() Model {
	req, parseErrs := m.form.request(m.location)
	if parseErrs != nil {
		m.form.errors = parseErrs
		m.status = navigation.Notice{Level: navigation.NoticeError, Text: missingFieldsNotice}
		return m
	}

	if _, err := m.activities.Submit(req); err != nil {
		var validationErrs validators.ValidationErrors
		if errors.As(err, &validationErrs) {
			m.form.errors = validationErrs
		}
		m.status = navigation.Notice{Level: navigation.NoticeError, Text: missingFieldsNotice}
		return m
	}

	m.form.reset()
	m.form.blur()
	m.form.focused = fieldRegistrationLink
	m.editing = false
	m.status = navigation.Notice{Level: navigation.NoticeSuccess, Text: activitySubmittedNotice}
	return m
}

func (m Model) dispatch(action navigation.Action) Model {
	from := m.session.State().Path()
	view, err := m.session.Dispatch(action)

	m.status = navigation.Notice{}
	switch {
	case errors.Is(err, navigation.ErrAccessDenied):
		m.logger.LogSecurityEvent("dashboard_access_denied", "low", map[string]interface{}{
			"from": from,
		})
	case errors.Is(err, navigation.ErrInvalidTransition):
		m.status = navigation.Notice{Level: navigation.NoticeInfo, Text: unavailableNotice}
		return m
	case err != nil:
		m.status = navigation.Notice{Level: navigation.NoticeError, Text: err.Error()}
		return m
	}

	m.logger.LogNavigation(from, view.State.Path(), action.Kind.String())

	if view.Screen != navigation.ScreenDashboard {
		m.editing = false
		m.form.blur()
		m.tab = tabSubmit
	}
	return m
}

func (m Model) onDashboard() bool {
	return m.session.View().Screen == navigation.ScreenDashboard
}

// Session exposes the navigation session, mainly for tests and snapshots.
func (m Model) Session() *navigation.Session {
	return m.session
}

func (m Model) Activities() services.ActivityLog {
	return m.activities
}

func (m Model) Dark() bool {
	return m.dark
}

func (m Model) View() string {
	sidebar := m.renderSidebar()
	content := m.renderContent()
	app := m.styles.App
	if m.width > 0 {
		app = app.Width(m.width)
	}
	return app.Render(lipgloss.JoinHorizontal(lipgloss.Top, sidebar, m.styles.Content.Render(content)))
}

func (m Model) renderSidebar() string {
	current := m.session.State().Menu
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Menu") + "\n")

	items := []struct {
		key  string
		menu navigation.Menu
		name string
	}{
		{"h", navigation.MenuHome, "Home"},
		{"p", navigation.MenuProfile, string(navigation.MenuProfile)},
		{"o", navigation.MenuPosts, string(navigation.MenuPosts)},
		{"s", navigation.MenuSettings, string(navigation.MenuSettings)},
		{"?", navigation.MenuHelp, string(navigation.MenuHelp)},
	}
	for _, item := range items {
		line := fmt.Sprintf("[%s] %s", item.key, item.name)
		if item.menu == current {
			b.WriteString(m.styles.ActiveItem.Render(line) + "\n")
			continue
		}
		b.WriteString(m.styles.SidebarItem.Render(line) + "\n")
	}

	b.WriteString("\n" + m.styles.Muted.Render("esc back · q quit"))
	return m.styles.Sidebar.Render(b.String())
}

func (m Model) renderContent() string {
	view := m.session.View()
	page := navigation.PageFor(view.Screen)

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(page.Title) + "\n")
	b.WriteString(m.styles.Body.Render(page.Description) + "\n\n")

	for _, notice := range view.Notices {
		b.WriteString(m.renderNotice(notice) + "\n")
	}

	if view.Screen == navigation.ScreenDashboard {
		b.WriteString(m.renderDashboard())
	} else {
		for i, option := range navigation.Options(view.Screen) {
			b.WriteString(m.styles.Option.Render(fmt.Sprintf("%d. %s", i+1, option.Label)) + "\n")
		}
	}

	if m.status.Text != "" {
		b.WriteString("\n" + m.renderNotice(m.status) + "\n")
	}
	return b.String()
}

func (m Model) renderNotice(notice navigation.Notice) string {
	switch notice.Level {
	case navigation.NoticeSuccess:
		return m.styles.Success.Render(notice.Text)
	case navigation.NoticeError:
		return m.styles.Error.Render(notice.Text)
	}
	return m.styles.Info.Render(notice.Text)
}

func (m Model) renderDashboard() string {
	var b strings.Builder

	mode := "light"
	if m.dark {
		mode = "dark"
	}
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("[d] toggle dark mode (%s)", mode)) + "\n\n")

	tabs := make([]string, len(tabTitles))
	for i, title := range tabTitles {
		if dashboardTab(i) == m.tab {
			tabs[i] = m.styles.ActiveTab.Render(title)
		} else {
			tabs[i] = m.styles.Tab.Render(title)
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n\n")

	if m.tab == tabView {
		b.WriteString(m.renderActivities())
		return b.String()
	}

	if !m.editing {
		b.WriteString(m.styles.Muted.Render("enter to edit · tab switches tabs") + "\n")
	} else {
		b.WriteString(m.styles.Muted.Render("tab next field · ←/→ cause · ctrl+s submit · esc done") + "\n")
	}
	b.WriteString(m.form.view(m.styles, m.editing))
	return b.String()
}

func (m Model) renderActivities() string {
	if m.activities.Len() == 0 {
		return m.styles.Info.Render(noActivitiesNotice) + "\n"
	}

	var b strings.Builder
	b.WriteString(m.styles.Label.Render("Recent Activities") + "\n")
	i := 0
	for activity := range m.activities.All() {
		i++
		b.WriteString(m.styles.Card.Render(renderActivity(i, activity)) + "\n")
	}
	return b.String()
}

func renderActivity(n int, activity models.Activity) string {
	lines := []string{
		fmt.Sprintf("Activity %d: %s", n, activity.Description),
		"Date: " + utils.FormatDate(activity.Date),
		"Place: " + activity.Place,
		"Cause: " + string(activity.Cause),
		"Registration Link: " + activity.RegistrationLink,
		"Poster: " + activity.Poster,
	}
	if activity.AttachedFile != "" {
		lines = append(lines, "File: "+activity.AttachedFile)
	}
	return strings.Join(lines, "\n")
}
