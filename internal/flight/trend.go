package flight

import (
	"math"
	"sort"
	"time"
)

const departureLayout = "2006-01-02T15:04:05"

// DerivePriceTrend buckets records by departure time of day and keeps the
// cheapest price per slot, producing the series behind the price graph.
// Labels use 24-hour HH:MM so chronological and lexicographic order agree.
func DerivePriceTrend(records []Flight) PriceTrend {
	cheapestBySlot := make(map[string]float64)

	for _, r := range records {
		label := timeOfDayLabel(r.DepartureTime)
		if label == "" || r.Price.Amount <= 0 {
			continue
		}
		if current, ok := cheapestBySlot[label]; !ok || r.Price.Amount < current {
			cheapestBySlot[label] = r.Price.Amount
		}
	}

	points := make([]TrendPoint, 0, len(cheapestBySlot))
	for label, price := range cheapestBySlot {
		points = append(points, TrendPoint{Label: label, Price: math.Round(price)})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Label < points[j].Label
	})

	if len(points) == 0 {
		return PriceTrend{Points: points}
	}

	cheapest := points[0].Price
	sum := 0.0
	for _, p := range points {
		if p.Price < cheapest {
			cheapest = p.Price
		}
		sum += p.Price
	}

	return PriceTrend{
		Points: points,
		Stats: &TrendStats{
			Cheapest: cheapest,
			Average:  math.Round(sum / float64(len(points))),
		},
	}
}

func timeOfDayLabel(at string) string {
	t, err := time.Parse(departureLayout, at)
	if err == nil {
		return t.Format("15:04")
	}
	// tolerate other layouts that still lead with YYYY-MM-DDTHH:MM
	if len(at) >= 16 && at[10] == 'T' {
		return at[11:16]
	}
	return ""
}
