package handlers

import (
	"net/http"

	"rental-marketplace-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ReviewHandler handles HTTP requests for review operations
type ReviewHandler struct {
	bookingService service.BookingServiceInterface
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(bookingService service.BookingServiceInterface) *ReviewHandler {
	return &ReviewHandler{
		bookingService: bookingService,
	}
}

// reviewBody is the wire form of a review; the date comes in as a
// YYYY-MM-DD string
type reviewBody struct {
	CustomerID  int64  `json:"customer_id"`
	ApartmentID int64  `json:"apartment_id"`
	Date        string `json:"date"`
	Rating      int    `json:"rating"`
	Text        string `json:"text"`
}

// CreateReview handles POST /reviews
// @Summary Review an apartment
// @Description Record a review; requires a reservation of the apartment ending on or before the review date
// @Tags reviews
// @Accept json
// @Produce json
// @Param review body reviewBody true "Review data"
// @Success 201 {object} map[string]interface{} "Successfully created review"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "No qualifying reservation"
// @Failure 409 {object} map[string]interface{} "Review already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /reviews [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var body reviewBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := parseDate(body.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	req := service.CreateReviewRequest{
		CustomerID:  body.CustomerID,
		ApartmentID: body.ApartmentID,
		Date:        date,
		Rating:      body.Rating,
		Text:        body.Text,
	}
	if err := h.bookingService.CreateReview(&req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Review created successfully"})
}

// UpdateReview handles PUT /reviews
// @Summary Update a review
// @Description Overwrite an existing review; the new date must be on or after the current one
// @Tags reviews
// @Accept json
// @Produce json
// @Param review body reviewBody true "Review data"
// @Success 200 {object} map[string]interface{} "Successfully updated review"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Review not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /reviews [put]
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	var body reviewBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := parseDate(body.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	req := service.UpdateReviewRequest{
		CustomerID:  body.CustomerID,
		ApartmentID: body.ApartmentID,
		Date:        date,
		Rating:      body.Rating,
		Text:        body.Text,
	}
	if err := h.bookingService.UpdateReview(&req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review updated successfully"})
}
