package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"helpize/internal/models"
	"helpize/internal/repositories/interfaces"
	"helpize/internal/utils"
	"helpize/pkg/logger"
	"helpize/pkg/sms"
	"helpize/pkg/websocket"
)

type AlertService interface {
	// Create records an SOS alert. reporter is nil for anonymous alerts.
	Create(ctx context.Context, location, message string, reporter *string) (*models.Alert, error)
	List(ctx context.Context) ([]*models.Alert, error)
	ListByUser(ctx context.Context, email string) ([]*models.Alert, error)
}

// AlertNotifier is told about every stored alert. Failures are logged and
// never fail the alert.
type AlertNotifier interface {
	NotifyAlert(ctx context.Context, alert *models.Alert) error
}

type alertService struct {
	alertRepo interfaces.AlertRepository
	notifiers []AlertNotifier
	logger    *logger.Logger
}

func NewAlertService(alertRepo interfaces.AlertRepository, log *logger.Logger, notifiers ...AlertNotifier) AlertService {
	return &alertService{
		alertRepo: alertRepo,
		notifiers: notifiers,
		logger:    log,
	}
}

func (s *alertService) Create(ctx context.Context, location, message string, reporter *string) (*models.Alert, error) {
	alert := &models.Alert{
		Location: strings.TrimSpace(location),
		Message:  strings.TrimSpace(message),
		User:     reporter,
	}

	if err := s.alertRepo.Create(ctx, alert); err != nil {
		return nil, fmt.Errorf("failed to store alert: %w", err)
	}

	s.logger.WithContext(ctx).LogAlertEvent(alert.ID.Hex(), utils.EventAlertCreated, map[string]interface{}{
		"location":  alert.Location,
		"anonymous": reporter == nil,
	})

	for _, notifier := range s.notifiers {
		if err := notifier.NotifyAlert(ctx, alert); err != nil {
			s.logger.WithContext(ctx).WithError(err).WithField("alert_id", alert.ID.Hex()).
				Warn("Alert notification failed")
		}
	}

	return alert, nil
}

func (s *alertService) List(ctx context.Context) ([]*models.Alert, error) {
	alerts, err := s.alertRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	return alerts, nil
}

func (s *alertService) ListByUser(ctx context.Context, email string) ([]*models.Alert, error) {
	alerts, err := s.alertRepo.ListByUser(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts for user: %w", err)
	}
	return alerts, nil
}

// LiveFeedNotifier pushes new alerts to WebSocket subscribers.
type LiveFeedNotifier struct {
	hub *websocket.Hub
}

func NewLiveFeedNotifier(hub *websocket.Hub) *LiveFeedNotifier {
	return &LiveFeedNotifier{hub: hub}
}

func (n *LiveFeedNotifier) NotifyAlert(ctx context.Context, alert *models.Alert) error {
	return n.hub.Broadcast(ctx, websocket.Message{
		Type:      websocket.MessageTypeAlert,
		Timestamp: alert.CreatedAt.Unix(),
		Data:      alert,
	})
}

// SMSNotifier texts each alert to a fixed responder number.
type SMSNotifier struct {
	provider sms.SMSProvider
	to       string
	timeout  time.Duration
}

func NewSMSNotifier(provider sms.SMSProvider, to string) *SMSNotifier {
	return &SMSNotifier{provider: provider, to: to, timeout: 10 * time.Second}
}

func (n *SMSNotifier) NotifyAlert(ctx context.Context, alert *models.Alert) error {
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	_, err := n.provider.SendSMS(ctx, &sms.SMSRequest{
		To:      n.to,
		Message: FormatSOSMessage(alert),
		Type:    "transactional",
	})
	return err
}

// FormatSOSMessage renders an alert as a single SMS body.
func FormatSOSMessage(alert *models.Alert) string {
	reporter := "anonymous"
	if alert.User != nil {
		reporter = *alert.User
	}
	text := fmt.Sprintf("SOS at %s from %s: %s", utils.CoalesceString(alert.Location, "unknown location"), reporter, alert.Message)
	return utils.TruncateString(text, 160)
}
