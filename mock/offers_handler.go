package main

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"time"
)

type OffersResponse struct {
	Data         []Offer      `json:"data"`
	Dictionaries Dictionaries `json:"dictionaries"`
}

type Dictionaries struct {
	Carriers map[string]string `json:"carriers"`
}

type Offer struct {
	ID          string      `json:"id"`
	Itineraries []Itinerary `json:"itineraries"`
	Price       OfferPrice  `json:"price"`
}

type Itinerary struct {
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

type Segment struct {
	Departure   EndPoint `json:"departure"`
	Arrival     EndPoint `json:"arrival"`
	CarrierCode string   `json:"carrierCode"`
	Number      string   `json:"number"`
}

type EndPoint struct {
	IataCode string `json:"iataCode"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at"`
}

type OfferPrice struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
}

// FlightOffersHandler serves canned priced offers filtered by the
// originLocationCode, destinationLocationCode and departureDate query
// parameters, the way the real offer search shapes its responses.
func FlightOffersHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
		http.Error(w, "Missing bearer token", http.StatusUnauthorized)
		return
	}

	// Read JSON file
	data, err := os.ReadFile("mock/files/flight_offers_response.json")
	if err != nil {
		http.Error(w, "Failed to read offer data: "+err.Error(), http.StatusInternalServerError)
		return
	}

	// Unmarshal to struct
	var fileResponse OffersResponse
	if err := json.Unmarshal(data, &fileResponse); err != nil {
		http.Error(w, "Failed to parse offer data: "+err.Error(), http.StatusInternalServerError)
		return
	}

	origin := r.URL.Query().Get("originLocationCode")
	destination := r.URL.Query().Get("destinationLocationCode")
	departureDate := r.URL.Query().Get("departureDate")

	// Apply filtering
	filtered := make([]Offer, 0)

	for _, o := range fileResponse.Data {
		if len(o.Itineraries) == 0 || len(o.Itineraries[0].Segments) == 0 {
			continue
		}
		segments := o.Itineraries[0].Segments
		first := segments[0]
		last := segments[len(segments)-1]

		if origin != "" && !strings.EqualFold(first.Departure.IataCode, origin) {
			continue
		}

		if destination != "" && !strings.EqualFold(last.Arrival.IataCode, destination) {
			continue
		}

		if departureDate != "" && !strings.HasPrefix(first.Departure.At, departureDate) {
			continue
		}

		filtered = append(filtered, o)
	}

	delay := 50 + rand.Intn(51) // 50 to 100ms
	time.Sleep(time.Duration(delay) * time.Millisecond)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(OffersResponse{Data: filtered, Dictionaries: fileResponse.Dictionaries})
}
