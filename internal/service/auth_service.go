package service

import (
	"context"
	"errors"
	"time"

	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/client"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/dto"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/model"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/pkg/logger"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/repository/memory"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/state"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/pkg/events"
	pktNats "github.com/Awinteck-Solutions/melcom-travels-web-sub000/pkg/nats"
)

var ErrNotAuthenticated = errors.New("not authenticated")

// ProfileGateway is the slice of the upstream auth API the service needs.
type ProfileGateway interface {
	Login(ctx context.Context, creds client.Credentials) (*model.User, string, error)
	UpdateProfile(ctx context.Context, patch model.UserPatch, token string) (*model.User, error)
}

type IAuthService interface {
	Login(ctx context.Context, sessionID string, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, sessionID string) error
	UpdateProfile(ctx context.Context, sessionID string, req *dto.UpdateProfileRequest) (*model.User, error)
}

type authService struct {
	visitors       *memory.VisitorRepository
	gateway        ProfileGateway
	publisher      IPublisherService
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewAuthService(
	visitors *memory.VisitorRepository,
	gateway ProfileGateway,
	publisher IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IAuthService {
	return &authService{
		visitors:       visitors,
		gateway:        gateway,
		publisher:      publisher,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *authService) Login(ctx context.Context, sessionID string, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	visitor := s.visitors.GetOrCreate(ctx, sessionID)

	visitor.App.SetLoading(true)
	defer visitor.App.SetLoading(false)

	user, token, err := s.gateway.Login(ctx, client.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		visitor.App.SetError(err.Error())
		s.logger.Warn("AuthService", "Login failed", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		return nil, err
	}

	visitor.App.Login(*user, token)

	s.emit(ctx, events.TypeVisitorLogin, map[string]interface{}{
		"session_id": sessionID,
		"user_id":    user.ID,
		"email":      user.Email,
	})

	return &dto.LoginResponse{User: *user, Authenticated: true}, nil
}

func (s *authService) Logout(ctx context.Context, sessionID string) error {
	visitor, ok := s.visitors.Get(sessionID)
	if !ok {
		return nil
	}

	visitor.App.Logout()

	s.emit(ctx, events.TypeVisitorLogout, map[string]interface{}{
		"session_id": sessionID,
	})
	return nil
}

func (s *authService) UpdateProfile(ctx context.Context, sessionID string, req *dto.UpdateProfileRequest) (*model.User, error) {
	visitor := s.visitors.GetOrCreate(ctx, sessionID)

	token := visitor.App.Token()
	if !visitor.App.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	patch := req.ToPatch()

	// The upstream API is the source of truth; push the patch there first,
	// then merge the same patch into the local store.
	updated, err := s.gateway.UpdateProfile(ctx, patch, token)
	if err != nil {
		visitor.App.SetError(err.Error())
		return nil, err
	}

	if err := visitor.App.UpdateUser(patch); err != nil {
		if errors.Is(err, state.ErrNoActiveSession) {
			// Session expired between the gateway call and the merge.
			return nil, ErrNotAuthenticated
		}
		return nil, err
	}

	return updated, nil
}

func (s *authService) emit(ctx context.Context, eventType string, data map[string]interface{}) {
	data["occurred_at"] = time.Now()
	evt := events.NewBaseEvent(eventType, data)

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("AuthService", "Bus publish failed", map[string]interface{}{"type": eventType, "error": err.Error()})
		}
	}
	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("AuthService", "NATS publish failed", map[string]interface{}{"type": eventType, "error": err.Error()})
		}
	}
}
