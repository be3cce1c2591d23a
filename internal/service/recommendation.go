package service

import (
	"fmt"

	"rental-marketplace-backend/internal/repository"
)

// RecommendationService scores apartments a customer has not reviewed from
// peer reviews weighted by rating-behavior similarity. The pairwise rating
// ratios are a derived view recomputed per request, never persisted.
type RecommendationService struct {
	analyticsRepo repository.AnalyticsRepositoryInterface
}

// Ensure RecommendationService implements RecommendationServiceInterface
var _ RecommendationServiceInterface = (*RecommendationService)(nil)

// NewRecommendationService creates a new RecommendationService
func NewRecommendationService(analyticsRepo repository.AnalyticsRepositoryInterface) *RecommendationService {
	return &RecommendationService{analyticsRepo: analyticsRepo}
}

// Recommend returns unordered (apartment, score) pairs for every candidate
// apartment with at least one qualifying peer review. Customers with no
// review history have no peers and receive an empty result, as do invalid ids.
func (s *RecommendationService) Recommend(customerID int64) ([]repository.ApartmentScore, error) {
	if customerID <= 0 {
		return []repository.ApartmentScore{}, nil
	}

	scores, err := s.analyticsRepo.Recommendations(customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute recommendations: %w", err)
	}
	if scores == nil {
		scores = []repository.ApartmentScore{}
	}
	return scores, nil
}
