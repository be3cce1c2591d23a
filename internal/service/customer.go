package service

import (
	"errors"
	"fmt"

	"rental-marketplace-backend/internal/database/models"
	apperrors "rental-marketplace-backend/internal/errors"
	"rental-marketplace-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// CustomerService handles business logic for customers
type CustomerService struct {
	repo      repository.CustomerRepositoryInterface
	validator *validator.Validate
}

// Ensure CustomerService implements CustomerServiceInterface
var _ CustomerServiceInterface = (*CustomerService)(nil)

// NewCustomerService creates a new CustomerService
func NewCustomerService(repo repository.CustomerRepositoryInterface, validator *validator.Validate) *CustomerService {
	return &CustomerService{
		repo:      repo,
		validator: validator,
	}
}

// CreateCustomerRequest represents the request to create a customer
type CreateCustomerRequest struct {
	ID   int64  `json:"id" validate:"required,gt=0"`
	Name string `json:"name" validate:"required"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Create creates a new customer
func (s *CustomerService) Create(req *CreateCustomerRequest) (*CustomerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	customer := &models.Customer{ID: req.ID, Name: req.Name}
	if err := s.repo.Create(customer); err != nil {
		return nil, err
	}

	return toCustomerResponse(customer), nil
}

// GetByID retrieves a customer by id
func (s *CustomerService) GetByID(id int64) (*CustomerResponse, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("id", "must be positive")
	}

	customer, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return toCustomerResponse(customer), nil
}

// Delete removes a customer; reservations and reviews are removed by cascade
func (s *CustomerService) Delete(id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("id", "must be positive")
	}

	rows, err := s.repo.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrCustomerNotFound
	}
	return nil
}

func toCustomerResponse(customer *models.Customer) *CustomerResponse {
	return &CustomerResponse{ID: customer.ID, Name: customer.Name}
}
