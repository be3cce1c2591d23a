package handlers

import (
	"net/http"
	"strconv"

	"rental-marketplace-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ReservationHandler handles HTTP requests for reservation operations
type ReservationHandler struct {
	bookingService service.BookingServiceInterface
}

// NewReservationHandler creates a new reservation handler
func NewReservationHandler(bookingService service.BookingServiceInterface) *ReservationHandler {
	return &ReservationHandler{
		bookingService: bookingService,
	}
}

// createReservationBody is the wire form of a reservation request; dates
// come in as YYYY-MM-DD strings
type createReservationBody struct {
	CustomerID  int64   `json:"customer_id"`
	ApartmentID int64   `json:"apartment_id"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	TotalPrice  float64 `json:"total_price"`
}

// CreateReservation handles POST /reservations
// @Summary Book an apartment
// @Description Reserve the apartment for [start_date, end_date); fails when the slot overlaps an existing reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Param reservation body createReservationBody true "Reservation data"
// @Success 201 {object} map[string]interface{} "Successfully created reservation"
// @Failure 400 {object} map[string]interface{} "Invalid request or slot occupied"
// @Failure 404 {object} map[string]interface{} "Customer or apartment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var body createReservationBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	startDate, err := parseDate(body.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date"})
		return
	}
	endDate, err := parseDate(body.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date"})
		return
	}

	req := service.CreateReservationRequest{
		CustomerID:  body.CustomerID,
		ApartmentID: body.ApartmentID,
		StartDate:   startDate,
		EndDate:     endDate,
		TotalPrice:  body.TotalPrice,
	}
	if err := h.bookingService.CreateReservation(&req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Reservation created successfully"})
}

// CancelReservation handles DELETE /reservations/:customerId/:apartmentId/:startDate
// @Summary Cancel a reservation
// @Description Remove the reservation identified by customer, apartment and start date
// @Tags reservations
// @Accept json
// @Produce json
// @Param customerId path int true "Customer ID"
// @Param apartmentId path int true "Apartment ID"
// @Param startDate path string true "Start date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Successfully cancelled reservation"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 404 {object} map[string]interface{} "Reservation not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /reservations/{customerId}/{apartmentId}/{startDate} [delete]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	customerID, err := strconv.ParseInt(c.Param("customerId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer ID"})
		return
	}
	apartmentID, err := strconv.ParseInt(c.Param("apartmentId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid apartment ID"})
		return
	}
	startDate, err := parseDate(c.Param("startDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start date"})
		return
	}

	if err := h.bookingService.CancelReservation(customerID, apartmentID, startDate); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reservation cancelled successfully"})
}
