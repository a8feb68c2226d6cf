package flight

import "strings"

// ApplyFilters returns the records matching every active criterion,
// preserving input order. Neutral criteria (StopsAny, empty airline list,
// nil maximums) exclude nothing, so applying neutral criteria returns the
// input unchanged. Filtering is pure computation over normalized records;
// it cannot fail.
func ApplyFilters(records []Flight, criteria FilterOptions) []Flight {
	filtered := make([]Flight, 0, len(records))

	for _, r := range records {
		if !matchesStops(r, criteria.Stops) {
			continue
		}

		if len(criteria.Airlines) > 0 && !matchesAirline(r, criteria.Airlines) {
			continue
		}

		// records without a known price or duration are excluded while the
		// corresponding cap is active
		if criteria.PriceMax != nil && (r.Price.Amount <= 0 || r.Price.Amount > *criteria.PriceMax) {
			continue
		}

		if criteria.DurationMax != nil && (r.DurationMinutes <= 0 || r.DurationMinutes > *criteria.DurationMax) {
			continue
		}

		filtered = append(filtered, r)
	}

	return filtered
}

func matchesStops(r Flight, stops StopsFilter) bool {
	switch stops {
	case StopsNonstop:
		return r.TotalStops == 0
	case StopsAtMostOne:
		return r.TotalStops <= 1
	case StopsAtMostTwo:
		return r.TotalStops <= 2
	default:
		// empty, StopsAny, or an unknown value impose no constraint
		return true
	}
}

func matchesAirline(r Flight, codes []string) bool {
	for _, code := range codes {
		if strings.EqualFold(r.Airline.Code, code) {
			return true
		}
	}
	return false
}
