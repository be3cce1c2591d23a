package handlers

import (
	"net/http"
	"strconv"

	"rental-marketplace-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OwnerHandler handles HTTP requests for owner operations
type OwnerHandler struct {
	ownerService  service.OwnerServiceInterface
	ratingService service.RatingServiceInterface
}

// NewOwnerHandler creates a new owner handler
func NewOwnerHandler(ownerService service.OwnerServiceInterface, ratingService service.RatingServiceInterface) *OwnerHandler {
	return &OwnerHandler{
		ownerService:  ownerService,
		ratingService: ratingService,
	}
}

// CreateOwner handles POST /owners
// @Summary Create a new owner
// @Description Register an owner with a caller-chosen positive id
// @Tags owners
// @Accept json
// @Produce json
// @Param owner body service.CreateOwnerRequest true "Owner data"
// @Success 201 {object} service.OwnerResponse "Successfully created owner"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Owner already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /owners [post]
func (h *OwnerHandler) CreateOwner(c *gin.Context) {
	var req service.CreateOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	owner, err := h.ownerService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, owner)
}

// GetOwner handles GET /owners/:id
// @Summary Get owner by ID
// @Description Get a specific owner by its id
// @Tags owners
// @Accept json
// @Produce json
// @Param id path int true "Owner ID"
// @Success 200 {object} service.OwnerResponse "Successfully retrieved owner"
// @Failure 400 {object} map[string]interface{} "Invalid owner ID"
// @Failure 404 {object} map[string]interface{} "Owner not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /owners/{id} [get]
func (h *OwnerHandler) GetOwner(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid owner ID"})
		return
	}

	owner, err := h.ownerService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, owner)
}

// DeleteOwner handles DELETE /owners/:id
// @Summary Delete owner
// @Description Delete an owner; ownership links are removed with it
// @Tags owners
// @Accept json
// @Produce json
// @Param id path int true "Owner ID"
// @Success 200 {object} map[string]interface{} "Successfully deleted owner"
// @Failure 400 {object} map[string]interface{} "Invalid owner ID"
// @Failure 404 {object} map[string]interface{} "Owner not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /owners/{id} [delete]
func (h *OwnerHandler) DeleteOwner(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid owner ID"})
		return
	}

	if err := h.ownerService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Owner deleted successfully"})
}

// ClaimApartment handles POST /owners/:id/apartments/:apartmentId
// @Summary Claim an apartment
// @Description Record the owner as the apartment's owner; an apartment can have at most one owner
// @Tags owners
// @Accept json
// @Produce json
// @Param id path int true "Owner ID"
// @Param apartmentId path int true "Apartment ID"
// @Success 201 {object} map[string]interface{} "Successfully claimed apartment"
// @Failure 400 {object} map[string]interface{} "Invalid IDs"
// @Failure 404 {object} map[string]interface{} "Owner or apartment not found"
// @Failure 409 {object} map[string]interface{} "Apartment already owned"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /owners/{id}/apartments/{apartmentId} [post]
func (h *OwnerHandler) ClaimApartment(c *gin.Context) {
	ownerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid owner ID"})
		return
	}
	apartmentID, err := strconv.ParseInt(c.Param("apartmentId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid apartment ID"})
		return
	}

	if err := h.ownerService.ClaimApartment(ownerID, apartmentID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Apartment claimed successfully"})
}

// DropApartment handles DELETE /owners/:id/apartments/:apartmentId
// @Summary Drop an apartment
// @Description Remove the ownership link between the owner and the apartment
// @Tags owners
// @Accept json
// @Produce json
// @Param id path int true "Owner ID"
// @Param apartmentId path int true "Apartment ID"
// @Success 200 {object} map[string]interface{} "Successfully dropped apartment"
// @Failure 400 {object} map[string]interface{} "Invalid IDs"
// @Failure 404 {object} map[string]interface{} "Ownership not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /owners/{id}/apartments/{apartmentId} [delete]
func (h *OwnerHandler) DropApartment(c *gin.Context) {
	ownerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid owner ID"})
		return
	}
	apartmentID, err := strconv.ParseInt(c.Param("apartmentId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid apartment ID"})
		return
	}

	if err := h.ownerService.DropApartment(ownerID, apartmentID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Apartment dropped successfully"})
}

// GetOwnerApartments handles GET /owners/:id/apartments
// @Summary List owner apartments
// @Description Get all apartments owned by the owner; unknown owners yield an empty list
// @Tags owners
// @Accept json
// @Produce json
// @Param id path int true "Owner ID"
// @Success 200 {array} service.ApartmentResponse "Successfully retrieved apartments"
// @Failure 400 {object} map[string]interface{} "Invalid owner ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /owners/{id}/apartments [get]
func (h *OwnerHandler) GetOwnerApartments(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid owner ID"})
		return
	}

	apartments, err := h.ownerService.GetOwnerApartments(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, apartments)
}

// GetOwnerRating handles GET /owners/:id/rating
// @Summary Get owner rating
// @Description Average rating over the owner's reviewed apartments; 0 when nothing is reviewed
// @Tags owners
// @Accept json
// @Produce json
// @Param id path int true "Owner ID"
// @Success 200 {object} map[string]interface{} "Successfully computed rating"
// @Failure 400 {object} map[string]interface{} "Invalid owner ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /owners/{id}/rating [get]
func (h *OwnerHandler) GetOwnerRating(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid owner ID"})
		return
	}

	rating, err := h.ratingService.OwnerRating(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"owner_id": id, "rating": rating})
}
