package models

import "time"

type Cause string

const (
	// CausePlaceholder is the unselected value of the cause picker.
	CausePlaceholder    Cause = "Select Cause"
	CauseDisasterRelief Cause = "Disaster Relief"
	CauseCommunityHelp  Cause = "Community Help"
	CauseEnvironmental  Cause = "Environmental"
	CauseHealth         Cause = "Health"
	CauseEducation      Cause = "Education"
	CauseOther          Cause = "Other"
)

// Causes lists the selectable causes in picker order.
var Causes = []Cause{
	CauseDisasterRelief,
	CauseCommunityHelp,
	CauseEnvironmental,
	CauseHealth,
	CauseEducation,
	CauseOther,
}

func (c Cause) IsValid() bool {
	for _, cause := range Causes {
		if c == cause {
			return true
		}
	}
	return false
}

// Activity is a submitted volunteering activity. Uploaded files are kept as
// filename references only.
type Activity struct {
	RegistrationLink string    `json:"registration_link"`
	AttachedFile     string    `json:"activity_file,omitempty"`
	Date             time.Time `json:"date"`
	Place            string    `json:"place"`
	Description      string    `json:"about_event"`
	Cause            Cause     `json:"cause"`
	Poster           string    `json:"poster"`
	SubmittedAt      time.Time `json:"submitted_at"`
}
