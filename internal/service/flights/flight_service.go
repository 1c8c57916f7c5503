package flights

import (
	"context"
	"math"

	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/Domenick1991/airreserve/internal/repository"
	"go.uber.org/zap"
)

type FlightUseCase interface {
	Search(ctx context.Context, req SearchRequest) (*SearchResult, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
}

type SearchCache interface {
	// GetSearch returns nil flights on a miss, plus the route version the
	// read saw. SetSearch skips the write if the route changed since.
	GetSearch(ctx context.Context, q domain.SearchQuery) ([]domain.Flight, int64, error)
	SetSearch(ctx context.Context, q domain.SearchQuery, version int64, flights []domain.Flight) error
}

// CouponResolver turns a coupon code into a price factor for the caller.
type CouponResolver interface {
	Resolve(ctx context.Context, couponText, email string) (float64, error)
}

type SearchRequest struct {
	Query  domain.SearchQuery
	Coupon string
	// Email of the caller, empty when anonymous. Scoped coupons need it.
	Email string
}

type PricedFlight struct {
	domain.Flight
	DiscountedPriceCents int64
}

type SearchResult struct {
	Flights  []PricedFlight
	Discount float64
}

type FlightService struct {
	repo    repository.FlightRepository
	cache   SearchCache
	coupons CouponResolver
	logger  *zap.Logger
}

type FlightServiceOption func(*FlightService)

func WithCache(cache SearchCache) FlightServiceOption {
	return func(s *FlightService) {
		s.cache = cache
	}
}

func WithLogger(logger *zap.Logger) FlightServiceOption {
	return func(s *FlightService) {
		s.logger = logger
	}
}

func NewFlightService(repo repository.FlightRepository, coupons CouponResolver, opts ...FlightServiceOption) *FlightService {
	service := &FlightService{repo: repo, coupons: coupons, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *FlightService) Search(ctx context.Context, req SearchRequest) (*SearchResult, error) {
	if err := req.Query.Validate(); err != nil {
		return nil, err
	}

	list, err := s.find(ctx, req.Query)
	if err != nil {
		return nil, err
	}

	discount := domain.NoDiscount
	if req.Coupon != "" && s.coupons != nil {
		discount, err = s.coupons.Resolve(ctx, req.Coupon, req.Email)
		if err != nil {
			return nil, err
		}
	}

	result := &SearchResult{
		Flights:  make([]PricedFlight, 0, len(list)),
		Discount: discount,
	}
	for _, f := range list {
		result.Flights = append(result.Flights, PricedFlight{
			Flight:               f,
			DiscountedPriceCents: ApplyDiscount(f.PriceCents, discount),
		})
	}
	return result, nil
}

// find reads through the cache. Cache errors are logged and bypassed; after
// a failed read the result is not cached since its version is unknown.
func (s *FlightService) find(ctx context.Context, q domain.SearchQuery) ([]domain.Flight, error) {
	cacheable := false
	var version int64
	if s.cache != nil {
		cached, v, err := s.cache.GetSearch(ctx, q)
		switch {
		case err != nil:
			s.logger.Warn("search cache read failed", zap.Stringer("route", q.Route()), zap.Error(err))
		case cached != nil:
			return cached, nil
		default:
			cacheable, version = true, v
		}
	}

	list, err := s.repo.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	if cacheable {
		if err := s.cache.SetSearch(ctx, q, version, list); err != nil {
			s.logger.Warn("search cache write failed", zap.Stringer("route", q.Route()), zap.Error(err))
		}
	}
	return list, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	if id <= 0 {
		return nil, domain.Validation("flight id must be positive")
	}
	return s.repo.GetByID(ctx, id)
}

// ApplyDiscount scales priceCents by factor, rounding half away from zero.
func ApplyDiscount(priceCents int64, factor float64) int64 {
	return int64(math.Round(float64(priceCents) * factor))
}

var _ FlightUseCase = (*FlightService)(nil)
