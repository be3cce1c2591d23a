package service

import (
	"errors"
	"fmt"

	apperrors "rental-marketplace-backend/internal/errors"
	"rental-marketplace-backend/internal/repository"

	"gorm.io/gorm"
)

// AnalyticsService serves the read-only marketplace reports
type AnalyticsService struct {
	analyticsRepo repository.AnalyticsRepositoryInterface
	profitMargin  float64
}

// Ensure AnalyticsService implements AnalyticsServiceInterface
var _ AnalyticsServiceInterface = (*AnalyticsService)(nil)

// NewAnalyticsService creates a new AnalyticsService. profitMargin is the
// share of reservation revenue booked as marketplace profit.
func NewAnalyticsService(analyticsRepo repository.AnalyticsRepositoryInterface, profitMargin float64) *AnalyticsService {
	return &AnalyticsService{
		analyticsRepo: analyticsRepo,
		profitMargin:  profitMargin,
	}
}

// TopCustomer returns the customer with the most reservations, lowest id on
// ties. With customers but no reservations, the lowest-id customer wins.
func (s *AnalyticsService) TopCustomer() (*CustomerResponse, error) {
	customer, err := s.analyticsRepo.TopCustomer()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get top customer: %w", err)
	}
	return toCustomerResponse(customer), nil
}

// ReservationsPerOwner reports every owner's name and total reservation count
// across owned apartments, keyed by owner identity
func (s *AnalyticsService) ReservationsPerOwner() ([]repository.OwnerReservationCount, error) {
	counts, err := s.analyticsRepo.ReservationsPerOwner()
	if err != nil {
		return nil, fmt.Errorf("failed to count reservations per owner: %w", err)
	}
	if counts == nil {
		counts = []repository.OwnerReservationCount{}
	}
	return counts, nil
}

// AllLocationOwners returns owners whose apartments cover every distinct
// (city, country) pair in the system
func (s *AnalyticsService) AllLocationOwners() ([]OwnerResponse, error) {
	owners, err := s.analyticsRepo.AllLocationOwners()
	if err != nil {
		return nil, fmt.Errorf("failed to get all-location owners: %w", err)
	}

	responses := make([]OwnerResponse, len(owners))
	for i, owner := range owners {
		responses[i] = *toOwnerResponse(&owner)
	}
	return responses, nil
}

// BestValueForMoney returns the apartment with the highest rating-to-nightly-
// cost ratio, lowest id on ties
func (s *AnalyticsService) BestValueForMoney() (*ApartmentResponse, error) {
	apartment, err := s.analyticsRepo.BestValueForMoney()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrApartmentNotFound
		}
		return nil, fmt.Errorf("failed to get best value apartment: %w", err)
	}
	return toApartmentResponse(apartment), nil
}

// ProfitPerMonth reports the margin share of reservation revenue per calendar
// month of the year, always twelve rows in month order
func (s *AnalyticsService) ProfitPerMonth(year int) ([]repository.MonthlyProfit, error) {
	if year <= 0 {
		return nil, apperrors.NewValidationError("year", "must be positive")
	}

	profits, err := s.analyticsRepo.ProfitPerMonth(year, s.profitMargin)
	if err != nil {
		return nil, fmt.Errorf("failed to compute monthly profit: %w", err)
	}
	return profits, nil
}
