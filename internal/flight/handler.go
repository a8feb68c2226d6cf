package flight

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"skyfare/pkg/chart"
)

type FlightHandler struct {
	service *Service
}

func NewFlightHandler(s *Service) *FlightHandler {
	return &FlightHandler{
		service: s,
	}
}

func (h *FlightHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/v1/flights/search", h.SearchFlightsHandler)
	router.POST("/v1/flights/filter", h.FilterFlightsHandler)
	router.GET("/v1/flights/trend/chart", h.TrendChartHandler)
	router.GET("/v1/locations", h.LocationsHandler)
}

// SearchFlightsHandler godoc
// @Summary      Search flight offers
// @Description  Search one route and date; returns normalized flights, filter facets, and the price trend
// @Tags         flights
// @Accept       json
// @Produce      json
// @Param        request body SearchRequest true "Search parameters"
// @Success      200 {object} FlightSearchResponse
// @Failure      400 {object} map[string]string
// @Router       /v1/flights/search [post]
func (h *FlightHandler) SearchFlightsHandler(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid JSON body",
			"code":  ErrorCodeValidation,
		})
		return
	}

	if err := validateSearchRequest(req); err != nil {
		sendError(c, err)
		return
	}

	response, err := h.service.SearchFlights(c.Request.Context(), req)
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// FilterFlightsHandler godoc
// @Summary      Filter flight results
// @Description  Apply stop, airline, price, and duration criteria to a search result set
// @Tags         flights
// @Accept       json
// @Produce      json
// @Param        request body FilterRequest true "Filter criteria"
// @Success      200 {object} FlightSearchResponse
// @Failure      400 {object} map[string]string
// @Router       /v1/flights/filter [post]
func (h *FlightHandler) FilterFlightsHandler(c *gin.Context) {
	var req FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Invalid request format: %v", err),
			"code":  ErrorCodeValidation,
		})
		return
	}

	if err := validateSearchRequest(req.SearchRequest); err != nil {
		sendError(c, err)
		return
	}

	response, err := h.service.FilterFlights(c.Request.Context(), req)
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// TrendChartHandler godoc
// @Summary      Price trend chart
// @Description  Renders the cheapest-price-by-departure-time chart as a standalone HTML page
// @Tags         flights
// @Produce      html
// @Param        origin query string true "Origin IATA code"
// @Param        destination query string true "Destination IATA code"
// @Param        departure_date query string true "Departure date (YYYY-MM-DD)"
// @Success      200 {string} string "HTML page"
// @Router       /v1/flights/trend/chart [get]
func (h *FlightHandler) TrendChartHandler(c *gin.Context) {
	req := SearchRequest{
		Origin:        c.Query("origin"),
		Destination:   c.Query("destination"),
		DepartureDate: c.Query("departure_date"),
	}

	if err := validateSearchRequest(req); err != nil {
		sendError(c, err)
		return
	}

	response, err := h.service.SearchFlights(c.Request.Context(), req)
	if err != nil {
		sendError(c, err)
		return
	}

	labels := make([]string, 0, len(response.Trend.Points))
	prices := make([]float64, 0, len(response.Trend.Points))
	for _, p := range response.Trend.Points {
		labels = append(labels, p.Label)
		prices = append(prices, p.Price)
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := chart.RenderPriceTrend(c.Writer, labels, prices, response.Facets.Currency); err != nil {
		sendError(c, err)
	}
}

// LocationsHandler godoc
// @Summary      Location autocomplete
// @Description  Airport/city suggestions for a keyword; always returns a list, empty on lookup failure
// @Tags         locations
// @Produce      json
// @Param        keyword query string true "Search keyword"
// @Param        limit query int false "Maximum suggestions" default(5)
// @Success      200 {object} map[string]interface{}
// @Router       /v1/locations [get]
func (h *FlightHandler) LocationsHandler(c *gin.Context) {
	keyword := c.Query("keyword")
	if keyword == "" {
		c.JSON(http.StatusOK, gin.H{"locations": []any{}})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	locations := h.service.SearchLocations(c.Request.Context(), keyword, limit)
	c.JSON(http.StatusOK, gin.H{"locations": locations})
}

func validateSearchRequest(req SearchRequest) error {
	if req.Origin == "" || req.Destination == "" || req.DepartureDate == "" {
		return &AppError{
			Status:  http.StatusBadRequest,
			Code:    ErrorCodeValidation,
			Message: "origin, destination, and departure_date are required",
		}
	}
	return nil
}

func sendError(c *gin.Context, err error) {
	var appErr *AppError

	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, gin.H{
			"error": appErr.Message,
			"code":  appErr.Code,
		})
		return
	}

	// Default to 500 for unknown errors
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Internal Server Error",
		"code":    ErrorCodeInternalFailure,
		"details": err.Error(),
	})
}
