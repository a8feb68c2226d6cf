package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"skyfare/pkg/logger"
)

const (
	offersPath    = "/v2/shopping/flight-offers"
	locationsPath = "/v1/reference-data/locations"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     *TokenManager
	logger     logger.Client
}

func NewClient(httpClient *http.Client, baseURL string, tokens *TokenManager, logger logger.Client) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		tokens:     tokens,
		logger:     logger,
	}
}

type SearchParams struct {
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string
	Adults        int
	Children      int
	Infants       int
}

// Search fetches priced offers for one route and date. The offers and the
// carrier dictionary come back together or not at all.
func (c *Client) Search(ctx context.Context, p SearchParams) (*SearchResult, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	adults := p.Adults
	if adults < 1 {
		adults = 1
	}

	q := url.Values{}
	q.Set("originLocationCode", strings.ToUpper(p.Origin))
	q.Set("destinationLocationCode", strings.ToUpper(p.Destination))
	q.Set("departureDate", p.DepartureDate)
	q.Set("adults", strconv.Itoa(adults))
	if p.Children > 0 {
		q.Set("children", strconv.Itoa(p.Children))
	}
	if p.Infants > 0 {
		q.Set("infants", strconv.Itoa(p.Infants))
	}
	if p.ReturnDate != "" {
		q.Set("returnDate", p.ReturnDate)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+offersPath+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("amadeus: failed to build search request: %w", err)
	}
	token.SetAuthHeader(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("amadeus: flight search failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("amadeus: flight search returned non-200 status: %d", resp.StatusCode)
	}

	var payload struct {
		Data         []Offer      `json:"data"`
		Dictionaries Dictionaries `json:"dictionaries"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("amadeus: failed to decode search response: %w", err)
	}

	c.logger.Debug("amadeus search completed",
		logger.Field{Key: "offers", Value: len(payload.Data)},
		logger.Field{Key: "route", Value: p.Origin + "->" + p.Destination},
	)

	return &SearchResult{
		Offers:       payload.Data,
		Dictionaries: payload.Dictionaries,
	}, nil
}

// Locations looks up airport and city suggestions for a keyword.
func (c *Client) Locations(ctx context.Context, keyword string, limit int) ([]Location, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	if limit < 1 {
		limit = 5
	}

	q := url.Values{}
	q.Set("subType", "AIRPORT,CITY")
	q.Set("keyword", keyword)
	q.Set("page[limit]", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+locationsPath+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("amadeus: failed to build locations request: %w", err)
	}
	token.SetAuthHeader(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("amadeus: locations lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("amadeus: locations lookup returned non-200 status: %d", resp.StatusCode)
	}

	var payload struct {
		Data []struct {
			IataCode string `json:"iataCode"`
			Name     string `json:"name"`
			Address  struct {
				CityName    string `json:"cityName"`
				CountryCode string `json:"countryCode"`
			} `json:"address"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("amadeus: failed to decode locations response: %w", err)
	}

	locations := make([]Location, 0, len(payload.Data))
	for _, d := range payload.Data {
		cityName := d.Address.CityName
		if cityName == "" {
			cityName = d.Name
		}
		locations = append(locations, Location{
			IataCode:    d.IataCode,
			CityName:    cityName,
			CountryCode: d.Address.CountryCode,
		})
	}

	return locations, nil
}
