package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpize/internal/models"
	"helpize/internal/navigation"
)

var today = time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)

func newTestModel() Model {
	return New(Config{
		Now:      func() time.Time { return today },
		Location: time.UTC,
	})
}

func keys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m = send(t, m, keys(string(r)))
	}
	return m
}

// reachDashboard walks Profile → My Posts → Public → Accepted.
func reachDashboard(t *testing.T, m Model) Model {
	t.Helper()
	m = send(t, m, keys("p"), keys("1"), keys("1"), keys("1"))
	require.Equal(t, navigation.ScreenDashboard, m.Session().View().Screen)
	return m
}

func TestModel_StartsHome(t *testing.T) {
	m := newTestModel()
	assert.Equal(t, navigation.ScreenHome, m.Session().View().Screen)
	assert.Contains(t, m.View(), "Community Volunteering App")
}

func TestModel_SidebarKeys(t *testing.T) {
	m := newTestModel()

	m = send(t, m, keys("o"))
	assert.Equal(t, navigation.ScreenPosts, m.Session().View().Screen)

	m = send(t, m, keys("s"))
	assert.Equal(t, navigation.ScreenSettings, m.Session().View().Screen)

	m = send(t, m, keys("?"))
	assert.Equal(t, navigation.ScreenHelp, m.Session().View().Screen)

	m = send(t, m, keys("h"))
	assert.Equal(t, navigation.ScreenHome, m.Session().View().Screen)
}

func TestModel_DeniedReviewStaysOnPost(t *testing.T) {
	m := newTestModel()

	m = send(t, m, keys("p"), keys("1"), keys("1"), keys("2"))

	view := m.Session().View()
	assert.Equal(t, navigation.ScreenPublicPost, view.Screen)
	assert.Equal(t, navigation.State{
		Menu:          navigation.MenuProfile,
		ProfileOption: navigation.ProfileOptionMyPosts,
		PostType:      navigation.PostTypePublic,
		Permission:    navigation.PermissionDenied,
	}, view.State)
	assert.Contains(t, m.View(), navigation.PermissionDeniedNotice)
}

func TestModel_OptionNotOffered(t *testing.T) {
	m := newTestModel()

	m = send(t, m, keys("p"), keys("9"))
	assert.Equal(t, navigation.ScreenProfile, m.Session().View().Screen)
	assert.Contains(t, m.View(), unavailableNotice)
}

func TestModel_EscGoesBack(t *testing.T) {
	m := newTestModel()
	m = send(t, m, keys("p"), keys("1"), keys("2"))
	require.Equal(t, navigation.ScreenPrivatePost, m.Session().View().Screen)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, navigation.ScreenMyPosts, m.Session().View().Screen)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, navigation.ScreenProfile, m.Session().View().Screen)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, navigation.ScreenHome, m.Session().View().Screen)
}

func TestModel_DashboardTabsAndDarkMode(t *testing.T) {
	m := reachDashboard(t, newTestModel())
	assert.Contains(t, m.View(), navigation.PermissionGrantedNotice)
	assert.False(t, m.Dark())

	m = send(t, m, keys("d"))
	assert.True(t, m.Dark())
	assert.Contains(t, m.View(), "dark mode (dark)")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Contains(t, m.View(), noActivitiesNotice)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Contains(t, m.View(), "Registration Link")
}

func fillForm(t *testing.T, m Model, link, date, place, about string, causeSteps int, poster string) Model {
	t.Helper()
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.editing)

	m = typeText(t, m, link)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, date)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, place)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, about)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	for i := 0; i < causeSteps; i++ {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	return typeText(t, m, poster)
}

func TestModel_SubmitActivity(t *testing.T) {
	m := reachDashboard(t, newTestModel())

	m = fillForm(t, m, "https://x.org", "2026-03-14", "Hall", "desc", 4, "p.jpg")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.Equal(t, 1, m.Activities().Len())
	for activity := range m.Activities().All() {
		assert.Equal(t, "https://x.org", activity.RegistrationLink)
		assert.Equal(t, "Hall", activity.Place)
		assert.Equal(t, "desc", activity.Description)
		assert.Equal(t, models.CauseHealth, activity.Cause)
		assert.Equal(t, "p.jpg", activity.Poster)
		assert.Empty(t, activity.AttachedFile)
		assert.Equal(t, "2026-03-14", activity.Date.Format("2006-01-02"))
	}

	assert.False(t, m.editing)
	assert.Empty(t, m.form.value(fieldPlace))
	assert.Contains(t, m.View(), activitySubmittedNotice)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Contains(t, m.View(), "Activity 1: desc")
}

func TestModel_IncompleteActivityKeepsInputs(t *testing.T) {
	m := reachDashboard(t, newTestModel())

	m = fillForm(t, m, "https://x.org", "2026-03-14", "Hall", "desc", 0, "p.jpg")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Equal(t, 0, m.Activities().Len())
	assert.True(t, m.editing)
	assert.Equal(t, "Hall", m.form.value(fieldPlace))
	assert.True(t, m.form.errors.Has("cause"))
	assert.Contains(t, m.View(), missingFieldsNotice)
}

func TestModel_PastDateRejected(t *testing.T) {
	m := reachDashboard(t, newTestModel())

	m = fillForm(t, m, "https://x.org", "2026-03-13", "Hall", "desc", 1, "p.jpg")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Equal(t, 0, m.Activities().Len())
	assert.True(t, m.form.errors.Has("date"))
}

func TestModel_TodayFollowsFormLocation(t *testing.T) {
	// 05:00 UTC on the 14th is still the 13th in Honolulu.
	m := New(Config{
		Now:      func() time.Time { return time.Date(2026, time.March, 14, 5, 0, 0, 0, time.UTC) },
		Location: time.FixedZone("HST", -10*60*60),
	})
	m = reachDashboard(t, m)

	m = fillForm(t, m, "https://x.org", "2026-03-13", "Hall", "desc", 1, "p.jpg")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	require.Equal(t, 1, m.Activities().Len())
	assert.False(t, m.form.errors.Has("date"))
}

func TestModel_UnparseableDate(t *testing.T) {
	m := reachDashboard(t, newTestModel())

	m = fillForm(t, m, "https://x.org", "14/03/2026", "Hall", "desc", 1, "p.jpg")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Equal(t, 0, m.Activities().Len())
	assert.True(t, m.form.errors.Has("date"))
}

func TestModel_EditingCapturesSidebarKeys(t *testing.T) {
	m := reachDashboard(t, newTestModel())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = typeText(t, m, "hops")

	assert.Equal(t, navigation.ScreenDashboard, m.Session().View().Screen)
	assert.Equal(t, "hops", m.form.value(fieldRegistrationLink))

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc}, keys("h"))
	assert.Equal(t, navigation.ScreenHome, m.Session().View().Screen)
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel()

	_, cmd := m.Update(keys("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
