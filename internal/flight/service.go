package flight

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"skyfare/pkg/amadeus"
	"skyfare/pkg/cache"
	"skyfare/pkg/logger"
)

// SearchProvider is the external flight-offer search API as consumed by the
// service: it returns a complete offers+dictionaries result or fails
// atomically. Retry policy, if any, belongs behind this interface.
type SearchProvider interface {
	Search(ctx context.Context, p amadeus.SearchParams) (*amadeus.SearchResult, error)
	Locations(ctx context.Context, keyword string, limit int) ([]amadeus.Location, error)
}

type Service struct {
	provider SearchProvider
	cache    cache.Cache
	ttl      time.Duration
	logger   logger.Client
}

func NewService(provider SearchProvider, cache cache.Cache, ttlMinutes int, logger logger.Client) *Service {
	return &Service{
		provider: provider,
		cache:    cache,
		ttl:      time.Duration(ttlMinutes) * time.Minute,
		logger:   logger,
	}
}

// generateCacheKey creates a deterministic key from search parameters
func (s *Service) generateCacheKey(req SearchRequest) string {
	key := fmt.Sprintf("flight:%s:%s:%s:%s:%d:%d:%d:%d",
		req.Origin,
		req.Destination,
		req.DepartureDate,
		req.ReturnDate,
		req.Passengers.Adults,
		req.Passengers.Children,
		req.Passengers.InfantsInSeat,
		req.Passengers.InfantsOnLap,
	)

	hash := sha256.Sum256([]byte(key))
	return fmt.Sprintf("flight:search:%x", hash[:16])
}

// SearchFlights returns the normalized result set for a route and date,
// served from cache when possible. Facets and the price trend are derived
// from the full set every time it changes.
func (s *Service) SearchFlights(ctx context.Context, req SearchRequest) (*FlightSearchResponse, error) {
	cacheKey := s.generateCacheKey(req)

	cached, err := s.cache.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		s.logger.Info("Cache hit for search", logger.Field{Key: "cache_key", Value: cacheKey})

		var response FlightSearchResponse
		if err := json.Unmarshal([]byte(cached), &response); err == nil {
			response.Metadata.CacheHit = true
			response.Metadata.CacheKey = cacheKey
			return &response, nil
		}
		s.logger.Error("Failed to unmarshal cached data", logger.Field{Key: "err", Value: err})
	}

	// Cache miss - fetch from the provider
	s.logger.Info("Cache miss for search", logger.Field{Key: "cache_key", Value: cacheKey})

	startTime := time.Now()
	result, err := s.provider.Search(ctx, toSearchParams(req))
	if err != nil {
		return nil, &AppError{
			Status:  http.StatusBadGateway,
			Code:    ErrorCodeUpstreamFailure,
			Message: "flight search provider unavailable",
			Err:     err,
		}
	}
	searchTime := time.Since(startTime).Milliseconds()

	records := NormalizeOffers(result.Offers, result.Dictionaries.Carriers)
	if dropped := len(result.Offers) - len(records); dropped > 0 {
		s.logger.Debug("Dropped non-displayable offers", logger.Field{Key: "dropped", Value: dropped})
	}

	response := &FlightSearchResponse{
		SearchCriteria: req,
		Metadata: Metadata{
			TotalResults: len(records),
			SearchTimeMs: searchTime,
			CacheHit:     false,
			CacheKey:     cacheKey,
		},
		Flights: records,
		Facets:  DeriveFacets(records),
		Trend:   DerivePriceTrend(records),
	}

	responseBytes, err := json.Marshal(response)
	if err != nil {
		s.logger.Error("Failed to marshal response", logger.Field{Key: "err", Value: err})
		return response, nil // Return response even if caching fails
	}

	if err := s.cache.Set(ctx, cacheKey, string(responseBytes), s.ttl); err != nil {
		s.logger.Error("Failed to cache response", logger.Field{Key: "err", Value: err})
	}

	return response, nil
}

// FilterFlights narrows the result set for a search by the active criteria,
// refreshing from the provider when the cached set has expired. Facets stay
// derived from the unfiltered set so the controls keep their full ranges;
// the trend follows the filtered list the user actually sees.
func (s *Service) FilterFlights(ctx context.Context, req FilterRequest) (*FlightSearchResponse, error) {
	base, err := s.SearchFlights(ctx, req.SearchRequest)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh search results: %w", err)
	}

	filtered := base.Flights
	if req.Filters != nil {
		filtered = ApplyFilters(base.Flights, *req.Filters)
	}

	return &FlightSearchResponse{
		SearchCriteria: base.SearchCriteria,
		Metadata: Metadata{
			TotalResults: len(filtered),
			SearchTimeMs: base.Metadata.SearchTimeMs,
			CacheHit:     base.Metadata.CacheHit,
			CacheKey:     base.Metadata.CacheKey,
		},
		Flights: filtered,
		Facets:  base.Facets,
		Trend:   DerivePriceTrend(filtered),
	}, nil
}

// SearchLocations returns airport/city suggestions for a keyword. The data
// is advisory autocomplete input, so every failure degrades to an empty
// list instead of an error.
func (s *Service) SearchLocations(ctx context.Context, keyword string, limit int) []amadeus.Location {
	locations, err := s.provider.Locations(ctx, keyword, limit)
	if err != nil {
		s.logger.Warn("Location lookup failed",
			logger.Field{Key: "err", Value: err},
			logger.Field{Key: "keyword", Value: keyword},
		)
		return []amadeus.Location{}
	}
	return locations
}

// InvalidateCache manually invalidates cache for a specific route
func (s *Service) InvalidateCache(ctx context.Context, req SearchRequest) error {
	cacheKey := s.generateCacheKey(req)
	s.logger.Info("Invalidating cache", logger.Field{Key: "cache_key", Value: cacheKey})
	return s.cache.Del(ctx, cacheKey)
}

func toSearchParams(req SearchRequest) amadeus.SearchParams {
	return amadeus.SearchParams{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		Adults:        req.Passengers.Adults,
		Children:      req.Passengers.Children,
		// the offer search does not distinguish seated from lap infants
		Infants: req.Passengers.InfantsInSeat + req.Passengers.InfantsOnLap,
	}
}
