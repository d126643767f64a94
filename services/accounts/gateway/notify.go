package gateway

import (
	"context"

	"github.com/gasline/gasline/internal/pkg/constants"
	"github.com/gasline/gasline/internal/pkg/errs"
	"github.com/gasline/gasline/internal/pkg/logger"
	"github.com/gasline/gasline/internal/pkg/models"
)

// PublishSMS emits an SMS notification event to the bus.
func (g *AccountGW) PublishSMS(ctx context.Context, event *models.NotificationEvent) error {
	return g.publish(constants.TopicSMSNotification, event)
}

// PublishEmail emits an email notification event to the bus.
func (g *AccountGW) PublishEmail(ctx context.Context, event *models.NotificationEvent) error {
	return g.publish(constants.TopicEmailNotification, event)
}

func (g *AccountGW) publish(topic string, event *models.NotificationEvent) error {
	if event.ServiceName == "" {
		event.ServiceName = g.cfg.App.Name
	}

	if err := g.producer.Publish(topic, event); err != nil {
		return errs.Operation("failed to publish notification", err)
	}

	logger.Debug("published notification event",
		logger.String("topic", topic),
		logger.String("subtype", event.Meta.Subtype),
	)
	return nil
}
