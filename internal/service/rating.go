package service

import (
	"fmt"

	"rental-marketplace-backend/internal/repository"
)

// RatingService aggregates review ratings into per-apartment and per-owner
// averages. Values are recomputed from storage on every call.
type RatingService struct {
	analyticsRepo repository.AnalyticsRepositoryInterface
}

// Ensure RatingService implements RatingServiceInterface
var _ RatingServiceInterface = (*RatingService)(nil)

// NewRatingService creates a new RatingService
func NewRatingService(analyticsRepo repository.AnalyticsRepositoryInterface) *RatingService {
	return &RatingService{analyticsRepo: analyticsRepo}
}

// ApartmentRating returns the mean rating of the apartment's reviews.
// An unknown, invalid or unreviewed apartment rates 0.
func (s *RatingService) ApartmentRating(apartmentID int64) (float64, error) {
	if apartmentID <= 0 {
		return 0, nil
	}

	rating, err := s.analyticsRepo.ApartmentRating(apartmentID)
	if err != nil {
		return 0, fmt.Errorf("failed to compute apartment rating: %w", err)
	}
	return rating, nil
}

// OwnerRating returns the mean of per-apartment mean ratings over the owner's
// reviewed apartments. Owners with no reviewed apartments rate 0.
func (s *RatingService) OwnerRating(ownerID int64) (float64, error) {
	if ownerID <= 0 {
		return 0, nil
	}

	rating, err := s.analyticsRepo.OwnerRating(ownerID)
	if err != nil {
		return 0, fmt.Errorf("failed to compute owner rating: %w", err)
	}
	return rating, nil
}
