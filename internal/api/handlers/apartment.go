package handlers

import (
	"net/http"
	"strconv"

	"rental-marketplace-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ApartmentHandler handles HTTP requests for apartment operations
type ApartmentHandler struct {
	apartmentService service.ApartmentServiceInterface
	ownerService     service.OwnerServiceInterface
	ratingService    service.RatingServiceInterface
}

// NewApartmentHandler creates a new apartment handler
func NewApartmentHandler(apartmentService service.ApartmentServiceInterface, ownerService service.OwnerServiceInterface, ratingService service.RatingServiceInterface) *ApartmentHandler {
	return &ApartmentHandler{
		apartmentService: apartmentService,
		ownerService:     ownerService,
		ratingService:    ratingService,
	}
}

// CreateApartment handles POST /apartments
// @Summary Create a new apartment
// @Description Register an apartment; address, city and country must be unique together
// @Tags apartments
// @Accept json
// @Produce json
// @Param apartment body service.CreateApartmentRequest true "Apartment data"
// @Success 201 {object} service.ApartmentResponse "Successfully created apartment"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Apartment already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /apartments [post]
func (h *ApartmentHandler) CreateApartment(c *gin.Context) {
	var req service.CreateApartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	apartment, err := h.apartmentService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, apartment)
}

// GetApartment handles GET /apartments/:id
// @Summary Get apartment by ID
// @Description Get a specific apartment by its id
// @Tags apartments
// @Accept json
// @Produce json
// @Param id path int true "Apartment ID"
// @Success 200 {object} service.ApartmentResponse "Successfully retrieved apartment"
// @Failure 400 {object} map[string]interface{} "Invalid apartment ID"
// @Failure 404 {object} map[string]interface{} "Apartment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /apartments/{id} [get]
func (h *ApartmentHandler) GetApartment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid apartment ID"})
		return
	}

	apartment, err := h.apartmentService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, apartment)
}

// DeleteApartment handles DELETE /apartments/:id
// @Summary Delete apartment
// @Description Delete an apartment; its ownership link, reservations and reviews are removed with it
// @Tags apartments
// @Accept json
// @Produce json
// @Param id path int true "Apartment ID"
// @Success 200 {object} map[string]interface{} "Successfully deleted apartment"
// @Failure 400 {object} map[string]interface{} "Invalid apartment ID"
// @Failure 404 {object} map[string]interface{} "Apartment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /apartments/{id} [delete]
func (h *ApartmentHandler) DeleteApartment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid apartment ID"})
		return
	}

	if err := h.apartmentService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Apartment deleted successfully"})
}

// GetApartmentOwner handles GET /apartments/:id/owner
// @Summary Get apartment owner
// @Description Get the owner currently holding the apartment
// @Tags apartments
// @Accept json
// @Produce json
// @Param id path int true "Apartment ID"
// @Success 200 {object} service.OwnerResponse "Successfully retrieved owner"
// @Failure 400 {object} map[string]interface{} "Invalid apartment ID"
// @Failure 404 {object} map[string]interface{} "Apartment has no owner"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /apartments/{id}/owner [get]
func (h *ApartmentHandler) GetApartmentOwner(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid apartment ID"})
		return
	}

	owner, err := h.ownerService.GetApartmentOwner(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, owner)
}

// GetApartmentRating handles GET /apartments/:id/rating
// @Summary Get apartment rating
// @Description Average review rating of the apartment; 0 when unreviewed
// @Tags apartments
// @Accept json
// @Produce json
// @Param id path int true "Apartment ID"
// @Success 200 {object} map[string]interface{} "Successfully computed rating"
// @Failure 400 {object} map[string]interface{} "Invalid apartment ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /apartments/{id}/rating [get]
func (h *ApartmentHandler) GetApartmentRating(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid apartment ID"})
		return
	}

	rating, err := h.ratingService.ApartmentRating(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"apartment_id": id, "rating": rating})
}
