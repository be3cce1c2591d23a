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

// OwnerService handles business logic for owners and apartment ownership
type OwnerService struct {
	repo          repository.OwnerRepositoryInterface
	ownershipRepo repository.OwnershipRepositoryInterface
	validator     *validator.Validate
}

// Ensure OwnerService implements OwnerServiceInterface
var _ OwnerServiceInterface = (*OwnerService)(nil)

// NewOwnerService creates a new OwnerService
func NewOwnerService(repo repository.OwnerRepositoryInterface, ownershipRepo repository.OwnershipRepositoryInterface, validator *validator.Validate) *OwnerService {
	return &OwnerService{
		repo:          repo,
		ownershipRepo: ownershipRepo,
		validator:     validator,
	}
}

// CreateOwnerRequest represents the request to create an owner
type CreateOwnerRequest struct {
	ID   int64  `json:"id" validate:"required,gt=0"`
	Name string `json:"name" validate:"required"`
}

// OwnerResponse represents an owner in API responses
type OwnerResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Create creates a new owner
func (s *OwnerService) Create(req *CreateOwnerRequest) (*OwnerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	owner := &models.Owner{ID: req.ID, Name: req.Name}
	if err := s.repo.Create(owner); err != nil {
		return nil, err
	}

	return toOwnerResponse(owner), nil
}

// GetByID retrieves an owner by id
func (s *OwnerService) GetByID(id int64) (*OwnerResponse, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("id", "must be positive")
	}

	owner, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOwnerNotFound
		}
		return nil, fmt.Errorf("failed to get owner: %w", err)
	}

	return toOwnerResponse(owner), nil
}

// Delete removes an owner; its ownership links are removed by cascade
func (s *OwnerService) Delete(id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("id", "must be positive")
	}

	rows, err := s.repo.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete owner: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrOwnerNotFound
	}
	return nil
}

// ClaimApartment records the owner as the apartment's owner. An apartment
// already claimed by any owner cannot be claimed again until dropped.
func (s *OwnerService) ClaimApartment(ownerID, apartmentID int64) error {
	if ownerID <= 0 {
		return apperrors.NewValidationError("owner_id", "must be positive")
	}
	if apartmentID <= 0 {
		return apperrors.NewValidationError("apartment_id", "must be positive")
	}

	return s.ownershipRepo.Claim(ownerID, apartmentID)
}

// DropApartment removes the exact ownership link between owner and apartment
func (s *OwnerService) DropApartment(ownerID, apartmentID int64) error {
	if ownerID <= 0 {
		return apperrors.NewValidationError("owner_id", "must be positive")
	}
	if apartmentID <= 0 {
		return apperrors.NewValidationError("apartment_id", "must be positive")
	}

	rows, err := s.ownershipRepo.Drop(ownerID, apartmentID)
	if err != nil {
		return fmt.Errorf("failed to drop apartment: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrOwnershipNotFound
	}
	return nil
}

// GetApartmentOwner retrieves the owner of an apartment
func (s *OwnerService) GetApartmentOwner(apartmentID int64) (*OwnerResponse, error) {
	if apartmentID <= 0 {
		return nil, apperrors.NewValidationError("apartment_id", "must be positive")
	}

	owner, err := s.repo.GetByApartmentID(apartmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOwnerNotFound
		}
		return nil, fmt.Errorf("failed to get apartment owner: %w", err)
	}

	return toOwnerResponse(owner), nil
}

// GetOwnerApartments retrieves all apartments owned by the owner. An invalid
// or unknown owner id yields an empty list rather than an error.
func (s *OwnerService) GetOwnerApartments(ownerID int64) ([]ApartmentResponse, error) {
	if ownerID <= 0 {
		return []ApartmentResponse{}, nil
	}

	apartments, err := s.repo.GetApartments(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get owner apartments: %w", err)
	}

	responses := make([]ApartmentResponse, len(apartments))
	for i, apartment := range apartments {
		responses[i] = *toApartmentResponse(&apartment)
	}
	return responses, nil
}

func toOwnerResponse(owner *models.Owner) *OwnerResponse {
	return &OwnerResponse{ID: owner.ID, Name: owner.Name}
}
