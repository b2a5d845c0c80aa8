package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/dto"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/model"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/pkg/logger"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/repository/memory"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/pkg/events"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/pkg/flights"
)

var (
	ErrMissingRoute      = errors.New("origin, destination and departure date are required")
	ErrMissingReturnDate = errors.New("return date is required for round trips")
	ErrTooFewSegments    = errors.New("multi-city trips need at least two segments")
)

// FlightSearcher is the slice of the upstream flights API the service needs.
type FlightSearcher interface {
	SearchFlights(ctx context.Context, query model.SearchQuery) ([]model.Flight, error)
}

type ISearchService interface {
	StartSearch(ctx context.Context, sessionID string, req *dto.SearchRequest) (*dto.SearchStartedResponse, error)
	ClearSearch(ctx context.Context, sessionID string) error
	GetState(ctx context.Context, sessionID string) (*dto.SearchStateResponse, error)
	SaveDraft(ctx context.Context, sessionID string, req *dto.DraftRequest) error
	FlushDraft(ctx context.Context, sessionID string) error
	ClearDraft(ctx context.Context, sessionID string) error
	SetFilters(ctx context.Context, sessionID string, req *dto.FilterRequest) (*dto.SearchStateResponse, error)
	ClearFilters(ctx context.Context, sessionID string) (*dto.SearchStateResponse, error)
}

type searchService struct {
	visitors  *memory.VisitorRepository
	searcher  FlightSearcher
	validate  *validator.Validate
	publisher IPublisherService
	timeout   time.Duration
	logger    logger.ILogger
}

func NewSearchService(
	visitors *memory.VisitorRepository,
	searcher FlightSearcher,
	validate *validator.Validate,
	publisher IPublisherService,
	timeout time.Duration,
	log logger.ILogger,
) ISearchService {
	return &searchService{
		visitors:  visitors,
		searcher:  searcher,
		validate:  validate,
		publisher: publisher,
		timeout:   timeout,
		logger:    log,
	}
}

// validateQuery adds trip-type rules on top of the struct tags.
func (s *searchService) validateQuery(query model.SearchQuery) error {
	if err := s.validate.Struct(query); err != nil {
		return err
	}

	switch query.TripType {
	case model.TripOneWay:
		if query.Origin == "" || query.Destination == "" || query.DepartureDate == "" {
			return ErrMissingRoute
		}
	case model.TripRoundTrip:
		if query.Origin == "" || query.Destination == "" || query.DepartureDate == "" {
			return ErrMissingRoute
		}
		if query.ReturnDate == "" {
			return ErrMissingReturnDate
		}
	case model.TripMultiCity:
		if len(query.Segments) < 2 {
			return ErrTooFewSegments
		}
	}
	return nil
}

func (s *searchService) StartSearch(ctx context.Context, sessionID string, req *dto.SearchRequest) (*dto.SearchStartedResponse, error) {
	if err := s.validateQuery(req.SearchQuery); err != nil {
		return nil, err
	}

	visitor := s.visitors.GetOrCreate(ctx, sessionID)

	visitor.Search.SetSearchData(req.SearchQuery)
	gen := visitor.Search.BeginSearch()

	s.emit(ctx, events.TypeSearchStarted, map[string]interface{}{
		"session_id": sessionID,
		"generation": gen,
		"trip_type":  req.TripType,
	})

	// The upstream call outlives the HTTP request that triggered it.
	go s.runSearch(sessionID, visitor, gen, req.SearchQuery)

	return &dto.SearchStartedResponse{Generation: gen, Query: req.SearchQuery}, nil
}

func (s *searchService) runSearch(sessionID string, visitor *memory.Visitor, gen uint64, query model.SearchQuery) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	results, err := s.searcher.SearchFlights(ctx, query)
	if err != nil {
		if visitor.Search.ApplyError(gen, err.Error()) {
			s.emit(ctx, events.TypeSearchFailed, map[string]interface{}{
				"session_id": sessionID,
				"generation": gen,
				"error":      err.Error(),
			})
		}
		return
	}

	if visitor.Search.ApplyResults(gen, results) {
		s.emit(ctx, events.TypeSearchCompleted, map[string]interface{}{
			"session_id": sessionID,
			"generation": gen,
			"count":      len(results),
		})
	}
}

func (s *searchService) ClearSearch(ctx context.Context, sessionID string) error {
	visitor, ok := s.visitors.Get(sessionID)
	if !ok {
		return nil
	}
	visitor.Search.ClearSearchData()
	return nil
}

func (s *searchService) GetState(ctx context.Context, sessionID string) (*dto.SearchStateResponse, error) {
	visitor := s.visitors.GetOrCreate(ctx, sessionID)
	return s.stateResponse(visitor), nil
}

func (s *searchService) stateResponse(visitor *memory.Visitor) *dto.SearchStateResponse {
	snap := visitor.Search.Snapshot()
	return &dto.SearchStateResponse{
		Query:      snap.Query,
		Results:    snap.Results,
		Filtered:   flights.ApplyFilters(snap.Results, snap.Filters),
		Loading:    snap.Loading,
		Error:      snap.Error,
		Draft:      snap.Draft,
		Filters:    snap.Filters,
		Generation: visitor.Search.Generation(),
	}
}

func (s *searchService) SaveDraft(ctx context.Context, sessionID string, req *dto.DraftRequest) error {
	visitor := s.visitors.GetOrCreate(ctx, sessionID)
	visitor.Drafts.Update(req.SearchDraft)
	return nil
}

func (s *searchService) FlushDraft(ctx context.Context, sessionID string) error {
	visitor, ok := s.visitors.Get(sessionID)
	if !ok {
		return nil
	}
	visitor.Drafts.Flush()
	return nil
}

func (s *searchService) ClearDraft(ctx context.Context, sessionID string) error {
	visitor, ok := s.visitors.Get(sessionID)
	if !ok {
		return nil
	}
	visitor.Search.ClearFormData()
	return nil
}

func (s *searchService) SetFilters(ctx context.Context, sessionID string, req *dto.FilterRequest) (*dto.SearchStateResponse, error) {
	visitor := s.visitors.GetOrCreate(ctx, sessionID)
	visitor.Search.SetFilters(req.FilterSet)
	return s.stateResponse(visitor), nil
}

func (s *searchService) ClearFilters(ctx context.Context, sessionID string) (*dto.SearchStateResponse, error) {
	visitor := s.visitors.GetOrCreate(ctx, sessionID)
	visitor.Search.ClearFilters()
	return s.stateResponse(visitor), nil
}

func (s *searchService) emit(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.publisher == nil {
		return
	}
	data["occurred_at"] = time.Now()
	if err := s.publisher.Publish(ctx, events.NewBaseEvent(eventType, data)); err != nil {
		s.logger.Warn("SearchService", "Bus publish failed", map[string]interface{}{"type": eventType, "error": err.Error()})
	}
}
