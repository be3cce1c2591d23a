package service

import (
	"time"

	"rental-marketplace-backend/internal/repository"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OwnerServiceInterface defines the interface for owner service
type OwnerServiceInterface interface {
	Create(req *CreateOwnerRequest) (*OwnerResponse, error)
	GetByID(id int64) (*OwnerResponse, error)
	Delete(id int64) error
	ClaimApartment(ownerID, apartmentID int64) error
	DropApartment(ownerID, apartmentID int64) error
	GetApartmentOwner(apartmentID int64) (*OwnerResponse, error)
	GetOwnerApartments(ownerID int64) ([]ApartmentResponse, error)
}

// CustomerServiceInterface defines the interface for customer service
type CustomerServiceInterface interface {
	Create(req *CreateCustomerRequest) (*CustomerResponse, error)
	GetByID(id int64) (*CustomerResponse, error)
	Delete(id int64) error
}

// ApartmentServiceInterface defines the interface for apartment service
type ApartmentServiceInterface interface {
	Create(req *CreateApartmentRequest) (*ApartmentResponse, error)
	GetByID(id int64) (*ApartmentResponse, error)
	Delete(id int64) error
}

// BookingServiceInterface defines the interface for the booking rule engine
type BookingServiceInterface interface {
	CreateReservation(req *CreateReservationRequest) error
	CancelReservation(customerID, apartmentID int64, startDate time.Time) error
	CreateReview(req *CreateReviewRequest) error
	UpdateReview(req *UpdateReviewRequest) error
}

// RatingServiceInterface defines the interface for rating aggregation
type RatingServiceInterface interface {
	ApartmentRating(apartmentID int64) (float64, error)
	OwnerRating(ownerID int64) (float64, error)
}

// RecommendationServiceInterface defines the interface for personalized
// apartment recommendations
type RecommendationServiceInterface interface {
	Recommend(customerID int64) ([]repository.ApartmentScore, error)
}

// AnalyticsServiceInterface defines the interface for the analytical queries
type AnalyticsServiceInterface interface {
	TopCustomer() (*CustomerResponse, error)
	ReservationsPerOwner() ([]repository.OwnerReservationCount, error)
	AllLocationOwners() ([]OwnerResponse, error)
	BestValueForMoney() (*ApartmentResponse, error)
	ProfitPerMonth(year int) ([]repository.MonthlyProfit, error)
}
