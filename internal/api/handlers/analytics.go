package handlers

import (
	"net/http"
	"strconv"

	"rental-marketplace-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler handles HTTP requests for the analytical queries
type AnalyticsHandler struct {
	analyticsService service.AnalyticsServiceInterface
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService service.AnalyticsServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// GetTopCustomer handles GET /analytics/top-customer
// @Summary Get the top customer
// @Description Customer with the most reservations; ties break toward the lowest id
// @Tags analytics
// @Accept json
// @Produce json
// @Success 200 {object} service.CustomerResponse "Successfully retrieved customer"
// @Failure 404 {object} map[string]interface{} "No customers exist"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /analytics/top-customer [get]
func (h *AnalyticsHandler) GetTopCustomer(c *gin.Context) {
	customer, err := h.analyticsService.TopCustomer()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// GetReservationsPerOwner handles GET /analytics/reservations-per-owner
// @Summary Reservations per owner
// @Description Reservation count over each owner's apartments; ownerless reservations are not counted
// @Tags analytics
// @Accept json
// @Produce json
// @Success 200 {array} repository.OwnerReservationCount "Successfully retrieved counts"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /analytics/reservations-per-owner [get]
func (h *AnalyticsHandler) GetReservationsPerOwner(c *gin.Context) {
	counts, err := h.analyticsService.ReservationsPerOwner()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, counts)
}

// GetAllLocationOwners handles GET /analytics/all-location-owners
// @Summary Owners covering every location
// @Description Owners whose apartments span every distinct (city, country) pair on the platform
// @Tags analytics
// @Accept json
// @Produce json
// @Success 200 {array} service.OwnerResponse "Successfully retrieved owners"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /analytics/all-location-owners [get]
func (h *AnalyticsHandler) GetAllLocationOwners(c *gin.Context) {
	owners, err := h.analyticsService.AllLocationOwners()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, owners)
}

// GetBestValueForMoney handles GET /analytics/best-value
// @Summary Best value-for-money apartment
// @Description Apartment maximizing average rating over average nightly price; ties break toward the lowest id
// @Tags analytics
// @Accept json
// @Produce json
// @Success 200 {object} service.ApartmentResponse "Successfully retrieved apartment"
// @Failure 404 {object} map[string]interface{} "No apartments exist"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /analytics/best-value [get]
func (h *AnalyticsHandler) GetBestValueForMoney(c *gin.Context) {
	apartment, err := h.analyticsService.BestValueForMoney()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, apartment)
}

// GetProfitPerMonth handles GET /analytics/profit/:year
// @Summary Monthly marketplace profit
// @Description Profit share of reservation revenue by end-date month, twelve rows in month order
// @Tags analytics
// @Accept json
// @Produce json
// @Param year path int true "Year"
// @Success 200 {array} repository.MonthlyProfit "Successfully computed profit"
// @Failure 400 {object} map[string]interface{} "Invalid year"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /analytics/profit/{year} [get]
func (h *AnalyticsHandler) GetProfitPerMonth(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return
	}

	profits, err := h.analyticsService.ProfitPerMonth(year)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profits)
}
