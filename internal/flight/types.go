package flight

type Passengers struct {
	Adults        int `json:"adults"`
	Children      int `json:"children"`
	InfantsInSeat int `json:"infants_in_seat"`
	InfantsOnLap  int `json:"infants_on_lap"`
}

type SearchRequest struct {
	Origin        string     `json:"origin"`
	Destination   string     `json:"destination"`
	DepartureDate string     `json:"departure_date"`
	ReturnDate    string     `json:"return_date,omitempty"`
	Passengers    Passengers `json:"passengers"`
}

type Airline struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

type Price struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type Terminals struct {
	Departure string `json:"departure,omitempty"`
	Arrival   string `json:"arrival,omitempty"`
}

type CO2Emissions struct {
	Weight     int    `json:"weight"`
	WeightUnit string `json:"weight_unit"`
	Cabin      string `json:"cabin,omitempty"`
}

// Flight is one display-ready record, flattened from a raw provider offer.
// Departure and arrival times stay in the provider's timezone-naive local
// form; they are display values, not instants.
type Flight struct {
	ID              string        `json:"id"`
	Airline         Airline       `json:"airline"`
	Origin          string        `json:"origin"`
	Destination     string        `json:"destination"`
	DepartureTime   string        `json:"departure_time"`
	ArrivalTime     string        `json:"arrival_time"`
	DurationMinutes int           `json:"duration_minutes"`
	DurationLabel   string        `json:"duration_label"`
	Price           Price         `json:"price"`
	IsNonstop       bool          `json:"is_nonstop"`
	TotalStops      int           `json:"total_stops"`
	Terminals       Terminals     `json:"terminals"`
	CO2             *CO2Emissions `json:"co2_emissions,omitempty"`
}

type StopsFilter string

const (
	StopsAny       StopsFilter = "any"
	StopsNonstop   StopsFilter = "nonstop"
	StopsAtMostOne StopsFilter = "1"
	StopsAtMostTwo StopsFilter = "2"
)

// FilterOptions carries the active filter criteria. Every field has a
// neutral state that excludes nothing: StopsAny (or empty), an empty
// airline list, and nil maximums.
type FilterOptions struct {
	Stops       StopsFilter `json:"stops,omitempty"`
	Airlines    []string    `json:"airlines,omitempty"`
	PriceMax    *float64    `json:"price_max,omitempty"`
	DurationMax *int        `json:"duration_max,omitempty"`
}

type AirlineOption struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// FacetBounds parameterizes the filter controls for one result set.
// Currency is a display hint taken from the first record; individual
// records keep their own currency.
type FacetBounds struct {
	AirlineOptions []AirlineOption `json:"airline_options"`
	PriceMin       float64         `json:"price_min"`
	PriceMax       float64         `json:"price_max"`
	DurationMin    int             `json:"duration_min"`
	DurationMax    int             `json:"duration_max"`
	Currency       string          `json:"currency"`
}

type TrendPoint struct {
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

type TrendStats struct {
	Cheapest float64 `json:"cheapest"`
	Average  float64 `json:"average"`
}

type PriceTrend struct {
	Points []TrendPoint `json:"points"`
	Stats  *TrendStats  `json:"stats,omitempty"`
}

type Metadata struct {
	TotalResults int    `json:"total_results"`
	SearchTimeMs int64  `json:"search_time_ms,omitempty"`
	CacheHit     bool   `json:"cache_hit"`
	CacheKey     string `json:"cache_key,omitempty"`
}

type FlightSearchResponse struct {
	SearchCriteria SearchRequest `json:"search_criteria"`
	Metadata       Metadata      `json:"metadata"`
	Flights        []Flight      `json:"flights"`
	Facets         FacetBounds   `json:"facets"`
	Trend          PriceTrend    `json:"trend"`
}

type FilterRequest struct {
	SearchRequest
	Filters *FilterOptions `json:"filters,omitempty"`
}
