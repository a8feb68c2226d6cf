package flight

import (
	"github.com/spf13/cast"

	"skyfare/pkg/amadeus"
)

// NormalizeOffer flattens one raw offer plus the carrier dictionary into a
// Flight. The first itinerary and its first segment stand in for the journey
// (one-way searches carry a single itinerary). Offers without an itinerary,
// without a segment, or without a usable price are not displayable and
// yield nil; callers drop them instead of rendering partial rows.
func NormalizeOffer(offer amadeus.Offer, carriers map[string]string) *Flight {
	if len(offer.Itineraries) == 0 {
		return nil
	}
	itinerary := offer.Itineraries[0]
	if len(itinerary.Segments) == 0 {
		return nil
	}
	segment := itinerary.Segments[0]

	amount, err := cast.ToFloat64E(offer.Price.Total)
	if err != nil {
		return nil
	}
	if amount < 0 {
		amount = 0
	}

	airlineName := carriers[segment.CarrierCode]
	if airlineName == "" {
		airlineName = segment.CarrierCode
	}

	totalMinutes := ParseDurationMinutes(itinerary.Duration)
	totalStops := len(itinerary.Segments) - 1

	return &Flight{
		ID: offer.ID,
		Airline: Airline{
			Name: airlineName,
			Code: segment.CarrierCode,
		},
		Origin:          segment.Departure.IataCode,
		Destination:     segment.Arrival.IataCode,
		DepartureTime:   segment.Departure.At,
		ArrivalTime:     segment.Arrival.At,
		DurationMinutes: totalMinutes,
		DurationLabel:   FormatDurationLabel(totalMinutes),
		Price: Price{
			Amount:   amount,
			Currency: offer.Price.Currency,
		},
		IsNonstop:  len(itinerary.Segments) == 1,
		TotalStops: totalStops,
		Terminals: Terminals{
			Departure: segment.Departure.Terminal,
			Arrival:   segment.Arrival.Terminal,
		},
		CO2: normalizeEmissions(segment, itinerary),
	}
}

// NormalizeOffers converts a full provider result, silently dropping offers
// that are not displayable.
func NormalizeOffers(offers []amadeus.Offer, carriers map[string]string) []Flight {
	records := make([]Flight, 0, len(offers))
	for _, offer := range offers {
		if record := NormalizeOffer(offer, carriers); record != nil {
			records = append(records, *record)
		}
	}
	return records
}

// segment-level emissions take precedence over itinerary-level ones
func normalizeEmissions(segment amadeus.Segment, itinerary amadeus.Itinerary) *CO2Emissions {
	emissions := segment.CO2Emissions
	if len(emissions) == 0 {
		emissions = itinerary.CO2Emissions
	}
	if len(emissions) == 0 {
		return nil
	}

	unit := emissions[0].WeightUnit
	if unit == "" {
		unit = "KG"
	}

	return &CO2Emissions{
		Weight:     emissions[0].Weight,
		WeightUnit: unit,
		Cabin:      emissions[0].Cabin,
	}
}
