package shows

import (
	"context"
	"errors"
	"math"
	"strings"

	"comedyslots/internal/shared/apperrors"
	"comedyslots/internal/shared/constants"
	"comedyslots/internal/users"
	"comedyslots/pkg/cache"
	"comedyslots/pkg/logger"

	"github.com/google/uuid"
)

type Service interface {
	SetCacheService(cacheService cache.Service)
	CreateShow(ctx context.Context, actor users.Identity, req CreateShowRequest) (*ShowResponse, error)
	GetShow(ctx context.Context, id uuid.UUID) (*ShowResponse, error)
	ListShows(ctx context.Context, query ListQuery) (*PaginatedShows, error)
	ListPromoterShows(ctx context.Context, actor users.Identity, query ListQuery) (*PaginatedShows, error)
	// InvalidateListings drops cached listings after anything that changes slot counts.
	InvalidateListings(ctx context.Context) error
}

type service struct {
	repo         Repository
	cacheService cache.Service
	log          *logger.Logger
}

func NewService(repo Repository, log *logger.Logger) Service {
	return &service{
		repo: repo,
		log:  log,
	}
}

// SetCacheService injects the cache service dependency
func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func canPublishShows(role users.Role) bool {
	switch role {
	case users.RolePromoter:
		return true
	case users.RoleComedian:
		return false
	default:
		return false
	}
}

func (s *service) CreateShow(ctx context.Context, actor users.Identity, req CreateShowRequest) (*ShowResponse, error) {
	if !canPublishShows(actor.Role) {
		return nil, apperrors.Forbidden("Only promoters can create shows")
	}

	show := &Show{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Venue:       strings.TrimSpace(req.Venue),
		StartTime:   req.StartTime.UTC(),
		EndTime:     req.EndTime.UTC(),
		MaxSlots:    req.MaxSlots,
		PromoterID:  actor.ID,
	}
	if problems := show.Validate(); problems != nil {
		return nil, apperrors.Validation("Invalid show", problems)
	}

	if err := s.repo.Create(ctx, show); err != nil {
		return nil, apperrors.Dependency("failed to create show", err)
	}

	if err := s.InvalidateListings(ctx); err != nil {
		s.log.Warn("failed to invalidate show listings", "error", err)
	}

	s.log.LogShowCreated(ctx, show.ID.String(), actor.ID.String(), show.MaxSlots)

	created, err := s.repo.GetByID(ctx, show.ID)
	if err != nil {
		return nil, apperrors.Dependency("failed to load created show", err)
	}
	resp := created.ToResponse(SlotUsage{})
	return &resp, nil
}

func (s *service) GetShow(ctx context.Context, id uuid.UUID) (*ShowResponse, error) {
	show, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrShowNotFound) {
			return nil, apperrors.ShowNotFound()
		}
		return nil, apperrors.Dependency("failed to load show", err)
	}

	usage, err := s.repo.SlotUsage(ctx, []uuid.UUID{show.ID})
	if err != nil {
		return nil, apperrors.Dependency("failed to count bookings", err)
	}

	resp := show.ToResponse(usage[show.ID])
	return &resp, nil
}

func (s *service) ListShows(ctx context.Context, query ListQuery) (*PaginatedShows, error) {
	if err := query.normalize(); err != nil {
		return nil, apperrors.Validation("Invalid date filter", map[string]any{"date": err.Error()})
	}

	fetch := func() (interface{}, error) {
		shows, total, err := s.repo.List(ctx, query)
		if err != nil {
			return nil, err
		}
		return s.paginate(ctx, shows, total, query)
	}

	if s.cacheService == nil {
		result, err := fetch()
		if err != nil {
			return nil, apperrors.Dependency("failed to list shows", err)
		}
		return result.(*PaginatedShows), nil
	}

	key := constants.BuildShowListKey(query.Page, query.Limit, query.DateFrom, query.DateTo)
	var result PaginatedShows
	if err := s.cacheService.GetOrSet(ctx, key, constants.TTL_SHOW_LISTING, fetch, &result); err != nil {
		return nil, apperrors.Dependency("failed to list shows", err)
	}
	return &result, nil
}

// ListPromoterShows is never cached; promoters act on these counts.
func (s *service) ListPromoterShows(ctx context.Context, actor users.Identity, query ListQuery) (*PaginatedShows, error) {
	if !canPublishShows(actor.Role) {
		return nil, apperrors.Forbidden("Only promoters have shows")
	}
	if err := query.normalize(); err != nil {
		return nil, apperrors.Validation("Invalid date filter", map[string]any{"date": err.Error()})
	}

	shows, total, err := s.repo.ListByPromoter(ctx, actor.ID, query)
	if err != nil {
		return nil, apperrors.Dependency("failed to list shows", err)
	}

	result, err := s.paginate(ctx, shows, total, query)
	if err != nil {
		return nil, apperrors.Dependency("failed to count bookings", err)
	}
	return result, nil
}

func (s *service) InvalidateListings(ctx context.Context) error {
	if s.cacheService == nil {
		return nil
	}
	return s.cacheService.DeletePattern(ctx, constants.PATTERN_INVALIDATE_SHOWS_ALL)
}

func (s *service) paginate(ctx context.Context, shows []Show, total int64, query ListQuery) (*PaginatedShows, error) {
	ids := make([]uuid.UUID, len(shows))
	for i := range shows {
		ids[i] = shows[i].ID
	}

	usage, err := s.repo.SlotUsage(ctx, ids)
	if err != nil {
		return nil, err
	}

	responses := make([]ShowResponse, 0, len(shows))
	for i := range shows {
		responses = append(responses, shows[i].ToResponse(usage[shows[i].ID]))
	}

	return &PaginatedShows{
		Shows:      responses,
		TotalCount: total,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(query.Limit))),
	}, nil
}
