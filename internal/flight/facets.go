package flight

import (
	"sort"
	"strings"
)

// Defaults keep the range controls renderable before a search has run, and
// the floors avoid a degenerate single-point slider when every record
// shares one value.
const (
	defaultPriceCeiling    = 10000
	minimumPriceCeiling    = 1000
	defaultDurationCeiling = 1440
	minimumDurationCeiling = 60
	defaultCurrency        = "USD"
)

// DeriveFacets scans a result set and computes the selectable filter
// options and bounds. It is deterministic: two calls on the same input
// produce identical output, including airline ordering.
func DeriveFacets(records []Flight) FacetBounds {
	if len(records) == 0 {
		return FacetBounds{
			AirlineOptions: []AirlineOption{},
			PriceMax:       defaultPriceCeiling,
			DurationMax:    defaultDurationCeiling,
			Currency:       defaultCurrency,
		}
	}

	seen := make(map[string]bool, len(records))
	options := make([]AirlineOption, 0, len(records))
	maxPrice := 0.0
	maxDuration := 0

	for _, r := range records {
		// first occurrence wins when duplicate codes carry different names
		if r.Airline.Code != "" && !seen[r.Airline.Code] {
			seen[r.Airline.Code] = true
			options = append(options, AirlineOption{Code: r.Airline.Code, Name: r.Airline.Name})
		}
		if r.Price.Amount > maxPrice {
			maxPrice = r.Price.Amount
		}
		if r.DurationMinutes > maxDuration {
			maxDuration = r.DurationMinutes
		}
	}

	sort.SliceStable(options, func(i, j int) bool {
		ni := strings.ToLower(options[i].Name)
		nj := strings.ToLower(options[j].Name)
		if ni != nj {
			return ni < nj
		}
		return options[i].Code < options[j].Code
	})

	priceCeiling := maxPrice
	if priceCeiling < minimumPriceCeiling {
		priceCeiling = minimumPriceCeiling
	}
	durationCeiling := maxDuration
	if durationCeiling < minimumDurationCeiling {
		durationCeiling = minimumDurationCeiling
	}

	return FacetBounds{
		AirlineOptions: options,
		PriceMin:       0,
		PriceMax:       priceCeiling,
		DurationMin:    0,
		DurationMax:    durationCeiling,
		Currency:       records[0].Price.Currency,
	}
}
