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

// ApartmentService handles business logic for apartments
type ApartmentService struct {
	repo      repository.ApartmentRepositoryInterface
	validator *validator.Validate
}

// Ensure ApartmentService implements ApartmentServiceInterface
var _ ApartmentServiceInterface = (*ApartmentService)(nil)

// NewApartmentService creates a new ApartmentService
func NewApartmentService(repo repository.ApartmentRepositoryInterface, validator *validator.Validate) *ApartmentService {
	return &ApartmentService{
		repo:      repo,
		validator: validator,
	}
}

// CreateApartmentRequest represents the request to create an apartment
type CreateApartmentRequest struct {
	ID      int64  `json:"id" validate:"required,gt=0"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	Country string `json:"country" validate:"required"`
	Size    int    `json:"size" validate:"required,gt=0"`
}

// ApartmentResponse represents an apartment in API responses
type ApartmentResponse struct {
	ID      int64  `json:"id"`
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
	Size    int    `json:"size"`
}

// Create creates a new apartment
func (s *ApartmentService) Create(req *CreateApartmentRequest) (*ApartmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	apartment := &models.Apartment{
		ID:      req.ID,
		Address: req.Address,
		City:    req.City,
		Country: req.Country,
		Size:    req.Size,
	}
	if err := s.repo.Create(apartment); err != nil {
		return nil, err
	}

	return toApartmentResponse(apartment), nil
}

// GetByID retrieves an apartment by id
func (s *ApartmentService) GetByID(id int64) (*ApartmentResponse, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("id", "must be positive")
	}

	apartment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrApartmentNotFound
		}
		return nil, fmt.Errorf("failed to get apartment: %w", err)
	}

	return toApartmentResponse(apartment), nil
}

// Delete removes an apartment; its ownership link, reservations and reviews
// are removed by cascade
func (s *ApartmentService) Delete(id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("id", "must be positive")
	}

	rows, err := s.repo.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete apartment: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrApartmentNotFound
	}
	return nil
}

func toApartmentResponse(apartment *models.Apartment) *ApartmentResponse {
	return &ApartmentResponse{
		ID:      apartment.ID,
		Address: apartment.Address,
		City:    apartment.City,
		Country: apartment.Country,
		Size:    apartment.Size,
	}
}
