package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"helpize/internal/models"
	"helpize/internal/utils"
	"helpize/internal/validators"
)

type formField int

const (
	fieldRegistrationLink formField = iota
	fieldActivityFile
	fieldDate
	fieldPlace
	fieldAbout
	fieldCause
	fieldPoster
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldRegistrationLink: "Registration Link *",
	fieldActivityFile:     "Activity File (pdf, doc, docx)",
	fieldDate:             "Date * (YYYY-MM-DD)",
	fieldPlace:            "Place *",
	fieldAbout:            "About the Event *",
	fieldCause:            "Cause *",
	fieldPoster:           "Poster * (jpg, jpeg, png)",
}

// fieldKeys maps each input to the validation field name it reports under.
var fieldKeys = [fieldCount]string{
	fieldRegistrationLink: "registration_link",
	fieldActivityFile:     "activity_file",
	fieldDate:             "date",
	fieldPlace:            "place",
	fieldAbout:            "about_event",
	fieldCause:            "cause",
	fieldPoster:           "poster",
}

// activityForm is the Submit Activity tab. Cause is a picker cycled with
// left/right; every other field is a text input. cause == -1 means
// nothing has been chosen yet.
type activityForm struct {
	inputs  [fieldCount]textinput.Model
	cause   int
	focused formField
	errors  validators.ValidationErrors
}

func newActivityForm() activityForm {
	f := activityForm{cause: -1}

	placeholders := [fieldCount]string{
		fieldRegistrationLink: "https://example.com",
		fieldActivityFile:     "brief.pdf",
		fieldDate:             time.Now().Format(utils.DateLayout),
		fieldPlace:            "e.g., City Hall",
		fieldAbout:            "Describe the event...",
		fieldPoster:           "poster.jpg",
	}

	for i := range f.inputs {
		if formField(i) == fieldCause {
			continue
		}
		input := textinput.New()
		input.Placeholder = placeholders[i]
		input.Prompt = "> "
		input.CharLimit = 256
		input.Width = 48
		f.inputs[i] = input
	}
	return f
}

func (f *activityForm) focus(field formField) tea.Cmd {
	if f.focused != fieldCause {
		f.inputs[f.focused].Blur()
	}
	f.focused = field
	if field == fieldCause {
		return nil
	}
	return f.inputs[field].Focus()
}

func (f *activityForm) blur() {
	if f.focused != fieldCause {
		f.inputs[f.focused].Blur()
	}
}

func (f *activityForm) next() tea.Cmd {
	return f.focus((f.focused + 1) % fieldCount)
}

func (f *activityForm) prev() tea.Cmd {
	return f.focus((f.focused + fieldCount - 1) % fieldCount)
}

func (f *activityForm) isLast() bool {
	return f.focused == fieldCount-1
}

func (f *activityForm) update(msg tea.KeyMsg) tea.Cmd {
	if f.focused == fieldCause {
		switch msg.String() {
		case "left", "h":
			f.cause--
			if f.cause < -1 {
				f.cause = len(models.Causes) - 1
			}
		case "right", "l", " ":
			f.cause++
			if f.cause >= len(models.Causes) {
				f.cause = -1
			}
		}
		return nil
	}

	var cmd tea.Cmd
	f.inputs[f.focused], cmd = f.inputs[f.focused].Update(msg)
	return cmd
}

func (f *activityForm) selectedCause() models.Cause {
	if f.cause < 0 || f.cause >= len(models.Causes) {
		return models.CausePlaceholder
	}
	return models.Causes[f.cause]
}

func (f *activityForm) value(field formField) string {
	return f.inputs[field].Value()
}

// request builds the submission from the fields as typed. A date that cannot
// be parsed is reported the same way as any other invalid field.
func (f *activityForm) request(loc *time.Location) (*validators.ActivityRequest, validators.ValidationErrors) {
	req := &validators.ActivityRequest{
		RegistrationLink: f.value(fieldRegistrationLink),
		AttachedFile:     f.value(fieldActivityFile),
		Place:            f.value(fieldPlace),
		Description:      f.value(fieldAbout),
		Cause:            string(f.selectedCause()),
		Poster:           f.value(fieldPoster),
	}

	if raw := strings.TrimSpace(f.value(fieldDate)); raw != "" {
		date, err := utils.ParseDate(raw, loc)
		if err != nil {
			return nil, validators.ValidationErrors{{
				Field:   "date",
				Tag:     "date",
				Value:   raw,
				Message: err.Error(),
			}}
		}
		req.Date = &date
	}

	return req, nil
}

func (f *activityForm) reset() {
	for i := range f.inputs {
		if formField(i) != fieldCause {
			f.inputs[i].Reset()
		}
	}
	f.cause = -1
	f.errors = nil
}

func (f *activityForm) view(styles Styles, editing bool) string {
	var b strings.Builder
	fields := f.errors.Fields()

	for i := formField(0); i < fieldCount; i++ {
		label := styles.Label.Render(fieldLabels[i])
		if editing && i == f.focused {
			label = styles.ActiveItem.Render("› " + fieldLabels[i])
		}
		b.WriteString(label + "\n")

		if i == fieldCause {
			b.WriteString(styles.Body.Render("  ‹ " + string(f.selectedCause()) + " ›"))
		} else {
			b.WriteString(f.inputs[i].View())
		}
		b.WriteString("\n")

		if msg, ok := fields[fieldKeys[i]]; ok {
			b.WriteString(styles.Error.Render("  "+msg) + "\n")
		}
	}

	return b.String()
}
