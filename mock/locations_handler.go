package main

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"strings"
)

type LocationsResponse struct {
	Data []LocationEntry `json:"data"`
}

type LocationEntry struct {
	IataCode string  `json:"iataCode"`
	Name     string  `json:"name"`
	SubType  string  `json:"subType"`
	Address  Address `json:"address"`
}

type Address struct {
	CityName    string `json:"cityName"`
	CountryCode string `json:"countryCode"`
}

// LocationsHandler serves canned airport/city suggestions matched by
// keyword prefix against the IATA code, airport name, or city name.
func LocationsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
		http.Error(w, "Missing bearer token", http.StatusUnauthorized)
		return
	}

	data, err := os.ReadFile("mock/files/locations_response.json")
	if err != nil {
		http.Error(w, "Failed to read location data: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var fileResponse LocationsResponse
	if err := json.Unmarshal(data, &fileResponse); err != nil {
		http.Error(w, "Failed to parse location data: "+err.Error(), http.StatusInternalServerError)
		return
	}

	keyword := strings.ToUpper(r.URL.Query().Get("keyword"))
	limit := 5
	if v, err := strconv.Atoi(r.URL.Query().Get("page[limit]")); err == nil && v > 0 {
		limit = v
	}

	filtered := make([]LocationEntry, 0)

	for _, l := range fileResponse.Data {
		if keyword != "" &&
			!strings.HasPrefix(l.IataCode, keyword) &&
			!strings.HasPrefix(strings.ToUpper(l.Name), keyword) &&
			!strings.HasPrefix(strings.ToUpper(l.Address.CityName), keyword) {
			continue
		}

		filtered = append(filtered, l)
		if len(filtered) >= limit {
			break
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(LocationsResponse{Data: filtered})
}
