package amadeus

// Wire shapes for the flight-offer search API. Field names follow the
// provider's JSON verbatim; only the parts this service reads are declared.

type SearchResult struct {
	Offers       []Offer      `json:"offers"`
	Dictionaries Dictionaries `json:"dictionaries"`
}

type Dictionaries struct {
	Carriers map[string]string `json:"carriers"`
}

type Offer struct {
	ID          string      `json:"id"`
	Itineraries []Itinerary `json:"itineraries"`
	Price       Price       `json:"price"`
}

type Itinerary struct {
	Duration     string        `json:"duration"`
	Segments     []Segment     `json:"segments"`
	CO2Emissions []CO2Emission `json:"co2Emissions,omitempty"`
}

type Segment struct {
	Departure     EndPoint      `json:"departure"`
	Arrival       EndPoint      `json:"arrival"`
	CarrierCode   string        `json:"carrierCode"`
	Number        string        `json:"number,omitempty"`
	NumberOfStops int           `json:"numberOfStops,omitempty"`
	CO2Emissions  []CO2Emission `json:"co2Emissions,omitempty"`
}

type EndPoint struct {
	IataCode string `json:"iataCode"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at"`
}

type Price struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
}

type CO2Emission struct {
	Weight     int    `json:"weight"`
	WeightUnit string `json:"weightUnit"`
	Cabin      string `json:"cabin"`
}

// Location is one airport or city suggestion from the reference-data lookup.
type Location struct {
	IataCode    string `json:"iataCode"`
	CityName    string `json:"cityName"`
	CountryCode string `json:"countryCode,omitempty"`
}
