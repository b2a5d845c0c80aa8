package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/dto"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/model"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/pkg/logger"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/repository/memory"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/pkg/events"
)

// NotificationDelivery defines how to push real-time updates.
// Typically implemented by the WebSocket Hub.
type NotificationDelivery interface {
	Send(sessionID string, notification model.Notification)
	Broadcast(notification model.Notification)
}

type INotificationService interface {
	List(ctx context.Context, sessionID string) ([]model.Notification, error)
	Add(ctx context.Context, sessionID string, req *dto.AddNotificationRequest) (*model.Notification, error)
	Dismiss(ctx context.Context, sessionID string, id uuid.UUID) error
	Start(ctx context.Context) error
}

type notificationService struct {
	visitors  *memory.VisitorRepository
	pubSub    *gochannel.GoChannel
	topicName string
	delivery  NotificationDelivery
	logger    logger.ILogger
}

func NewNotificationService(
	visitors *memory.VisitorRepository,
	pubSub *gochannel.GoChannel,
	topicName string,
	delivery NotificationDelivery,
	log logger.ILogger,
) INotificationService {
	return &notificationService{
		visitors:  visitors,
		pubSub:    pubSub,
		topicName: topicName,
		delivery:  delivery,
		logger:    log,
	}
}

func (s *notificationService) List(ctx context.Context, sessionID string) ([]model.Notification, error) {
	visitor := s.visitors.GetOrCreate(ctx, sessionID)
	return visitor.App.Notifications(), nil
}

func (s *notificationService) Add(ctx context.Context, sessionID string, req *dto.AddNotificationRequest) (*model.Notification, error) {
	visitor := s.visitors.GetOrCreate(ctx, sessionID)

	notification := visitor.App.AddNotification(req.Kind, req.Title, req.Body)

	if s.delivery != nil {
		s.delivery.Send(sessionID, notification)
	}
	return &notification, nil
}

func (s *notificationService) Dismiss(ctx context.Context, sessionID string, id uuid.UUID) error {
	visitor, ok := s.visitors.Get(sessionID)
	if !ok {
		return nil
	}
	visitor.App.RemoveNotification(id)
	return nil
}

// Start begins consuming bus events and turning them into visitor
// notifications pushed over the hub.
func (s *notificationService) Start(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(msg)
		}
	}()

	s.logger.Info("NotificationService", "Notification worker started", map[string]interface{}{"topic": s.topicName})
	return nil
}

func (s *notificationService) processMessage(msg *message.Message) {
	defer msg.Ack()

	var env busEnvelope
	if err := json.Unmarshal(msg.Payload, &env); err != nil {
		s.logger.Warn("NotificationService", "Failed to unmarshal bus message", map[string]interface{}{"error": err.Error()})
		return
	}
	if env.SessionID == "" {
		return
	}

	visitor, ok := s.visitors.Get(env.SessionID)
	if !ok {
		// Session evicted between emit and delivery.
		return
	}

	var notification model.Notification
	switch env.Type {
	case events.TypeSearchCompleted:
		count, _ := env.Data["count"].(float64)
		notification = visitor.App.AddNotification(
			model.NotificationSuccess,
			"Search complete",
			fmt.Sprintf("Found %d flights for your trip", int(count)),
		)
	case events.TypeSearchFailed:
		notification = visitor.App.AddNotification(
			model.NotificationError,
			"Search failed",
			"We could not complete your flight search",
		)
	case events.TypeCheckoutRequested:
		orderID, _ := env.Data["order_id"].(string)
		notification = visitor.App.AddNotification(
			model.NotificationInfo,
			"Checkout started",
			fmt.Sprintf("Order %s is awaiting payment", orderID),
		)
	default:
		return
	}

	if s.delivery != nil {
		s.delivery.Send(env.SessionID, notification)
	}
	s.logger.Debug("NotificationService", "Notification delivered", map[string]interface{}{
		"session_id": env.SessionID,
		"type":       env.Type,
		"at":         time.Now(),
	})
}
