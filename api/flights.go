package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/Domenick1991/skybooking/internal/service/flights"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

// searchFlightsRequest validates shape only; the departure date string is
// deliberately untyped — an unparseable date yields an empty result, not a
// validation error.
type searchFlightsRequest struct {
	From          string `json:"from" binding:"required"`
	To            string `json:"to" binding:"required"`
	DepartureDate string `json:"departureDate" binding:"required"`
	ReturnDate    string `json:"returnDate"`
	Passengers    int    `json:"passengers" binding:"required,min=1,max=9"`
	ClassType     string `json:"classType" binding:"required,oneof=economy premium business first"`
	TripType      string `json:"tripType" binding:"required,oneof=round-trip one-way multi-city"`
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.POST("/search", h.search)
	router.GET("/:id", h.get)
}

func (h *FlightHandler) search(c *gin.Context) {
	var req searchFlightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	results, err := h.service.Search(c.Request.Context(), flights.SearchInput{
		From:          req.From,
		To:            req.To,
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		Passengers:    req.Passengers,
		ClassType:     domain.CabinClass(req.ClassType),
		TripType:      req.TripType,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

func (h *FlightHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid flight id"})
		return
	}
	flight, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, flight)
}
