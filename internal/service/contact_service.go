package service

import (
	"context"
	"time"

	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/dto"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/model"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/pkg/logger"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/pkg/mailer"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/repository"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/pkg/events"
)

type IContactService interface {
	Submit(ctx context.Context, req *dto.ContactRequest) (*dto.ContactResponse, error)
}

type contactService struct {
	repo         repository.ContactRepository
	emailService mailer.IEmailService
	publisher    IPublisherService
	logger       logger.ILogger
}

func NewContactService(
	repo repository.ContactRepository,
	emailService mailer.IEmailService,
	publisher IPublisherService,
	log logger.ILogger,
) IContactService {
	return &contactService{
		repo:         repo,
		emailService: emailService,
		publisher:    publisher,
		logger:       log,
	}
}

// Submit stores the message first, then delivers it by mail off the request
// path. A mail failure leaves the row undelivered for a later retry.
func (s *contactService) Submit(ctx context.Context, req *dto.ContactRequest) (*dto.ContactResponse, error) {
	msg := &model.ContactMessage{
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Body:      req.Body,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}

	go s.deliver(msg)

	if s.publisher != nil {
		evt := events.NewBaseEvent(events.TypeContactSubmitted, map[string]interface{}{
			"message_id":  msg.ID.String(),
			"email":       msg.Email,
			"occurred_at": time.Now(),
		})
		if err := s.publisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("ContactService", "Bus publish failed", map[string]interface{}{"error": err.Error()})
		}
	}

	return &dto.ContactResponse{ID: msg.ID, CreatedAt: msg.CreatedAt}, nil
}

func (s *contactService) deliver(msg *model.ContactMessage) {
	if err := s.emailService.SendContactMessage(msg); err != nil {
		s.logger.Error("ContactService", "Contact mail delivery failed", map[string]interface{}{
			"message_id": msg.ID.String(),
			"error":      err.Error(),
		})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.repo.MarkDelivered(ctx, msg.ID); err != nil {
		s.logger.Warn("ContactService", "Failed to mark contact message delivered", map[string]interface{}{
			"message_id": msg.ID.String(),
			"error":      err.Error(),
		})
	}
}
