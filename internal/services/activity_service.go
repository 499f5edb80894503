package services

import (
	"iter"
	"time"

	"helpize/internal/models"
	"helpize/internal/utils"
	"helpize/internal/validators"
	"helpize/pkg/logger"
)

// ActivityLog is one session's append-only list of submitted activities.
// It is owned by a single session and not safe for concurrent use.
type ActivityLog interface {
	// Submit validates req and appends it. On failure the log is unchanged
	// and the error is a validators.ValidationErrors.
	Submit(req *validators.ActivityRequest) (models.Activity, error)
	// All yields records in submission order. Ranging does not mutate the log.
	All() iter.Seq[models.Activity]
	Len() int
}

type activityLog struct {
	records []models.Activity
	now     func() time.Time
	logger  *logger.Logger
}

// NewActivityLog returns an empty log. now supplies "today" for the date
// check; nil means time.Now.
func NewActivityLog(now func() time.Time, log *logger.Logger) ActivityLog {
	if now == nil {
		now = time.Now
	}
	return &activityLog{now: now, logger: log}
}

func (l *activityLog) Submit(req *validators.ActivityRequest) (models.Activity, error) {
	now := l.now()

	if errs := validators.ValidateActivity(req, now); len(errs) > 0 {
		l.logger.WithField("fields", errs.Fields()).Debug("Activity rejected")
		return models.Activity{}, errs
	}

	record := models.Activity{
		RegistrationLink: req.RegistrationLink,
		AttachedFile:     req.AttachedFile,
		Date:             *req.Date,
		Place:            req.Place,
		Description:      req.Description,
		Cause:            models.Cause(req.Cause),
		Poster:           req.Poster,
		SubmittedAt:      now,
	}
	l.records = append(l.records, record)

	l.logger.LogActivityEvent(utils.EventActivitySubmitted, map[string]interface{}{
		"cause": record.Cause,
		"place": record.Place,
		"date":  utils.FormatDate(record.Date),
	})

	return record, nil
}

func (l *activityLog) All() iter.Seq[models.Activity] {
	return func(yield func(models.Activity) bool) {
		for _, record := range l.records {
			if !yield(record) {
				return
			}
		}
	}
}

func (l *activityLog) Len() int {
	return len(l.records)
}
