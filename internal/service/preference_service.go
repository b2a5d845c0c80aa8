package service

import (
	"context"

	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/dto"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/repository/memory"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/state"
)

type IPreferenceService interface {
	Get(ctx context.Context, sessionID string) (*dto.StateResponse, error)
	Update(ctx context.Context, sessionID string, req *dto.PreferenceRequest) (*state.AppSnapshot, error)
}

type preferenceService struct {
	visitors *memory.VisitorRepository
}

func NewPreferenceService(visitors *memory.VisitorRepository) IPreferenceService {
	return &preferenceService{visitors: visitors}
}

// Get returns the combined app and search snapshot for hydration.
func (s *preferenceService) Get(ctx context.Context, sessionID string) (*dto.StateResponse, error) {
	visitor := s.visitors.GetOrCreate(ctx, sessionID)
	return &dto.StateResponse{
		App:    visitor.App.Snapshot(),
		Search: visitor.Search.Snapshot(),
	}, nil
}

func (s *preferenceService) Update(ctx context.Context, sessionID string, req *dto.PreferenceRequest) (*state.AppSnapshot, error) {
	visitor := s.visitors.GetOrCreate(ctx, sessionID)

	if req.Theme != "" {
		visitor.App.SetTheme(req.Theme)
	}
	if req.Language != "" {
		visitor.App.SetLanguage(req.Language)
	}

	snap := visitor.App.Snapshot()
	return &snap, nil
}
