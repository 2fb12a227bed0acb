package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Rashi006/aws-capstone-blood-bridge/internal/config"
	"github.com/Rashi006/aws-capstone-blood-bridge/internal/events"
	"github.com/Rashi006/aws-capstone-blood-bridge/internal/notify"
)

// NotificationService turns domain events into outbound alerts. Delivery is
// best-effort: failures are logged and swallowed, never returned to the
// operation that emitted the event.
type NotificationService struct {
	dispatcher events.Dispatcher
	alerter    notify.Alerter
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, alerter notify.Alerter, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		alerter:    alerter,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventRequestSubmitted, n.handleRequestSubmitted)
	n.dispatcher.Subscribe(events.EventInventoryAdjusted, n.handleInventoryAdjusted)
	n.dispatcher.Subscribe(events.EventUserRegistered, n.handleUserRegistered)
}

func (n *NotificationService) handleRequestSubmitted(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.RequestSubmittedPayload)
	if !ok {
		n.logger.Warn("unexpected payload type", zap.String("event", string(event.Type)))
		return nil
	}

	subject := fmt.Sprintf("EMERGENCY: %s Blood Request", payload.Urgency)
	body := fmt.Sprintf(
		"Urgent Request Details:\n\nType: %s\nQuantity: %d units\nHospital/User: %s\nUrgency: %s\nTime: %s",
		payload.BloodType,
		payload.Quantity,
		payload.RequestedBy,
		payload.Urgency,
		payload.SubmittedAt.Format(time.DateTime),
	)

	if n.alerter != nil {
		if err := n.alerter.Publish(ctx, subject, body); err != nil {
			n.logger.Error("alert publish failed", zap.String("request_id", payload.RequestID), zap.Error(err))
			return nil
		}
	}
	n.logger.Info("emergency alert dispatched",
		zap.String("request_id", payload.RequestID),
		zap.String("urgency", string(payload.Urgency)))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleInventoryAdjusted(ctx context.Context, event events.Event) error {
	n.logger.Info("InventoryAdjusted", zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleUserRegistered(_ context.Context, event events.Event) error {
	n.logger.Info("UserRegistered", zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("event_type", string(event.Type)))
}
