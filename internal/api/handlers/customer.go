package handlers

import (
	"net/http"
	"strconv"

	"rental-marketplace-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CustomerHandler handles HTTP requests for customer operations
type CustomerHandler struct {
	customerService       service.CustomerServiceInterface
	recommendationService service.RecommendationServiceInterface
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService service.CustomerServiceInterface, recommendationService service.RecommendationServiceInterface) *CustomerHandler {
	return &CustomerHandler{
		customerService:       customerService,
		recommendationService: recommendationService,
	}
}

// CreateCustomer handles POST /customers
// @Summary Create a new customer
// @Description Register a customer with a caller-chosen positive id
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body service.CreateCustomerRequest true "Customer data"
// @Success 201 {object} service.CustomerResponse "Successfully created customer"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Customer already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req service.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer, err := h.customerService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// GetCustomer handles GET /customers/:id
// @Summary Get customer by ID
// @Description Get a specific customer by its id
// @Tags customers
// @Accept json
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} service.CustomerResponse "Successfully retrieved customer"
// @Failure 400 {object} map[string]interface{} "Invalid customer ID"
// @Failure 404 {object} map[string]interface{} "Customer not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer ID"})
		return
	}

	customer, err := h.customerService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer handles DELETE /customers/:id
// @Summary Delete customer
// @Description Delete a customer; its reservations and reviews are removed with it
// @Tags customers
// @Accept json
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} map[string]interface{} "Successfully deleted customer"
// @Failure 400 {object} map[string]interface{} "Invalid customer ID"
// @Failure 404 {object} map[string]interface{} "Customer not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer ID"})
		return
	}

	if err := h.customerService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}

// GetRecommendations handles GET /customers/:id/recommendations
// @Summary Recommend apartments
// @Description Score unreviewed apartments for the customer from taste-adjusted peer ratings
// @Tags customers
// @Accept json
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {array} repository.ApartmentScore "Successfully computed recommendations"
// @Failure 400 {object} map[string]interface{} "Invalid customer ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /customers/{id}/recommendations [get]
func (h *CustomerHandler) GetRecommendations(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer ID"})
		return
	}

	recommendations, err := h.recommendationService.Recommend(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, recommendations)
}
