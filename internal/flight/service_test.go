package flight

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skyfare/pkg/amadeus"
	"skyfare/pkg/logger"
)

type fakeCache struct {
	mu      sync.Mutex
	entries map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]string)}
}

func (f *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[key] = value
	return nil
}

func (f *fakeCache) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if v, ok := f.entries[key]; ok {
		return v, nil
	}
	return "", errors.New("cache miss")
}

func (f *fakeCache) Del(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, key)
	return nil
}

type stubProvider struct {
	searchCalls  int
	result       *amadeus.SearchResult
	searchErr    error
	locations    []amadeus.Location
	locationsErr error
}

func (s *stubProvider) Search(_ context.Context, _ amadeus.SearchParams) (*amadeus.SearchResult, error) {
	s.searchCalls++
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	return s.result, nil
}

func (s *stubProvider) Locations(_ context.Context, _ string, _ int) ([]amadeus.Location, error) {
	if s.locationsErr != nil {
		return nil, s.locationsErr
	}
	return s.locations, nil
}

func providerOffer(id, carrier, departAt, total string, segments int) amadeus.Offer {
	segs := make([]amadeus.Segment, 0, segments)
	for i := 0; i < segments; i++ {
		segs = append(segs, amadeus.Segment{
			Departure:   amadeus.EndPoint{IataCode: "DEL", At: departAt},
			Arrival:     amadeus.EndPoint{IataCode: "BOM", At: "2026-03-10T08:45:00"},
			CarrierCode: carrier,
		})
	}
	return amadeus.Offer{
		ID:          id,
		Itineraries: []amadeus.Itinerary{{Duration: "PT2H15M", Segments: segs}},
		Price:       amadeus.Price{Total: total, Currency: "EUR"},
	}
}

func newTestService(provider SearchProvider, c *fakeCache) *Service {
	return NewService(provider, c, 5, logger.NewWithWriter("test", io.Discard))
}

func searchRequest() SearchRequest {
	return SearchRequest{
		Origin:        "DEL",
		Destination:   "BOM",
		DepartureDate: "2026-03-10",
		Passengers:    Passengers{Adults: 1},
	}
}

func TestService_SearchFlights(t *testing.T) {
	broken := providerOffer("bad", "XX", "2026-03-10T10:00:00", "50.00", 1)
	broken.Itineraries = nil

	provider := &stubProvider{
		result: &amadeus.SearchResult{
			Offers: []amadeus.Offer{
				providerOffer("1", "AI", "2026-03-10T06:30:00", "92.00", 1),
				providerOffer("2", "6E", "2026-03-10T09:10:00", "88.00", 2),
				broken,
			},
			Dictionaries: amadeus.Dictionaries{Carriers: map[string]string{"AI": "Air India", "6E": "IndiGo"}},
		},
	}
	svc := newTestService(provider, newFakeCache())

	response, err := svc.SearchFlights(context.Background(), searchRequest())
	require.NoError(t, err)

	// the broken offer is dropped silently, not rendered as a zero record
	require.Len(t, response.Flights, 2)
	assert.Equal(t, "Air India", response.Flights[0].Airline.Name)
	assert.True(t, response.Flights[0].IsNonstop)
	assert.False(t, response.Flights[1].IsNonstop)
	assert.Equal(t, 1, response.Flights[1].TotalStops)

	assert.Equal(t, 2, response.Metadata.TotalResults)
	assert.False(t, response.Metadata.CacheHit)
	assert.NotEmpty(t, response.Metadata.CacheKey)

	// facets and trend come from the same normalized set
	assert.Equal(t, "EUR", response.Facets.Currency)
	assert.Len(t, response.Facets.AirlineOptions, 2)
	assert.Len(t, response.Trend.Points, 2)
}

func TestService_SearchFlights_CacheHit(t *testing.T) {
	provider := &stubProvider{
		result: &amadeus.SearchResult{
			Offers: []amadeus.Offer{providerOffer("1", "AI", "2026-03-10T06:30:00", "92.00", 1)},
		},
	}
	svc := newTestService(provider, newFakeCache())

	first, err := svc.SearchFlights(context.Background(), searchRequest())
	require.NoError(t, err)
	assert.False(t, first.Metadata.CacheHit)

	second, err := svc.SearchFlights(context.Background(), searchRequest())
	require.NoError(t, err)
	assert.True(t, second.Metadata.CacheHit)
	assert.Equal(t, first.Flights, second.Flights)

	assert.Equal(t, 1, provider.searchCalls)
}

func TestService_SearchFlights_ProviderFailure(t *testing.T) {
	provider := &stubProvider{searchErr: errors.New("rate limited")}
	svc := newTestService(provider, newFakeCache())

	_, err := svc.SearchFlights(context.Background(), searchRequest())
	require.Error(t, err)

	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 502, appErr.Status)
	assert.Equal(t, ErrorCodeUpstreamFailure, appErr.Code)
}

func TestService_FilterFlights(t *testing.T) {
	provider := &stubProvider{
		result: &amadeus.SearchResult{
			Offers: []amadeus.Offer{
				providerOffer("1", "AI", "2026-03-10T06:30:00", "92.00", 1),
				providerOffer("2", "6E", "2026-03-10T09:10:00", "88.00", 2),
			},
			Dictionaries: amadeus.Dictionaries{Carriers: map[string]string{"AI": "Air India", "6E": "IndiGo"}},
		},
	}
	svc := newTestService(provider, newFakeCache())

	response, err := svc.FilterFlights(context.Background(), FilterRequest{
		SearchRequest: searchRequest(),
		Filters:       &FilterOptions{Stops: StopsNonstop},
	})
	require.NoError(t, err)

	require.Len(t, response.Flights, 1)
	assert.Equal(t, "1", response.Flights[0].ID)
	assert.Equal(t, 1, response.Metadata.TotalResults)

	// facets keep the full set so the controls keep their options
	assert.Len(t, response.Facets.AirlineOptions, 2)
	// the trend follows what the user actually sees
	assert.Len(t, response.Trend.Points, 1)
}

func TestService_FilterFlights_NilFiltersPassThrough(t *testing.T) {
	provider := &stubProvider{
		result: &amadeus.SearchResult{
			Offers: []amadeus.Offer{
				providerOffer("1", "AI", "2026-03-10T06:30:00", "92.00", 1),
				providerOffer("2", "6E", "2026-03-10T09:10:00", "88.00", 1),
			},
		},
	}
	svc := newTestService(provider, newFakeCache())

	response, err := svc.FilterFlights(context.Background(), FilterRequest{SearchRequest: searchRequest()})
	require.NoError(t, err)

	assert.Len(t, response.Flights, 2)
	assert.Equal(t, []string{"1", "2"}, []string{response.Flights[0].ID, response.Flights[1].ID})
}

func TestService_SearchLocations(t *testing.T) {
	provider := &stubProvider{
		locations: []amadeus.Location{{IataCode: "DEL", CityName: "NEW DELHI", CountryCode: "IN"}},
	}
	svc := newTestService(provider, newFakeCache())

	locations := svc.SearchLocations(context.Background(), "del", 5)
	require.Len(t, locations, 1)
	assert.Equal(t, "DEL", locations[0].IataCode)
}

func TestService_SearchLocations_EmptyOnFailure(t *testing.T) {
	provider := &stubProvider{locationsErr: errors.New("timeout")}
	svc := newTestService(provider, newFakeCache())

	locations := svc.SearchLocations(context.Background(), "del", 5)
	assert.NotNil(t, locations)
	assert.Empty(t, locations)
}

func TestService_InvalidateCache(t *testing.T) {
	provider := &stubProvider{
		result: &amadeus.SearchResult{
			Offers: []amadeus.Offer{providerOffer("1", "AI", "2026-03-10T06:30:00", "92.00", 1)},
		},
	}
	svc := newTestService(provider, newFakeCache())

	_, err := svc.SearchFlights(context.Background(), searchRequest())
	require.NoError(t, err)

	require.NoError(t, svc.InvalidateCache(context.Background(), searchRequest()))

	_, err = svc.SearchFlights(context.Background(), searchRequest())
	require.NoError(t, err)
	assert.Equal(t, 2, provider.searchCalls)
}
