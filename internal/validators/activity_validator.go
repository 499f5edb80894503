package validators

import (
	"strings"
	"time"

	"helpize/internal/utils"
)

// ActivityRequest is the volunteering activity form. Files are referenced by
// name only; the form never carries their contents.
type ActivityRequest struct {
	RegistrationLink string     `form:"registration_link" validate:"required,url"`
	AttachedFile     string     `form:"activity_file" validate:"omitempty,document_file"`
	Date             *time.Time `form:"date" validate:"required"`
	Place            string     `form:"place" validate:"required"`
	Description      string     `form:"about_event" validate:"required"`
	Cause            string     `form:"cause" validate:"required,cause"`
	Poster           string     `form:"poster" validate:"required,image_file"`
}

// ValidateActivity checks that every required field is present and that the
// event date is not earlier than today. The request is not modified; a
// whitespace-only place or description counts as missing.
func ValidateActivity(req *ActivityRequest, today time.Time) ValidationErrors {
	check := *req
	check.Place = strings.TrimSpace(req.Place)
	check.Description = strings.TrimSpace(req.Description)

	errors := ValidateStruct(&check)

	if req.Date != nil && utils.StartOfDay(*req.Date).Before(utils.StartOfDay(today)) {
		errors = append(errors, ValidationError{
			Field:   "date",
			Tag:     "not_before_today",
			Value:   utils.FormatDate(*req.Date),
			Message: "Date cannot be in the past",
		})
	}

	return errors
}
