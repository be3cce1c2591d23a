package repository

import (
	"time"

	"rental-marketplace-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OwnerRepositoryInterface defines the interface for owner repository operations
type OwnerRepositoryInterface interface {
	Create(owner *models.Owner) error
	GetByID(id int64) (*models.Owner, error)
	Delete(id int64) (int64, error)
	GetByApartmentID(apartmentID int64) (*models.Owner, error)
	GetApartments(ownerID int64) ([]models.Apartment, error)
}

// CustomerRepositoryInterface defines the interface for customer repository operations
type CustomerRepositoryInterface interface {
	Create(customer *models.Customer) error
	GetByID(id int64) (*models.Customer, error)
	Delete(id int64) (int64, error)
}

// ApartmentRepositoryInterface defines the interface for apartment repository operations
type ApartmentRepositoryInterface interface {
	Create(apartment *models.Apartment) error
	GetByID(id int64) (*models.Apartment, error)
	Delete(id int64) (int64, error)
}

// OwnershipRepositoryInterface defines the interface for ownership repository operations
type OwnershipRepositoryInterface interface {
	Claim(ownerID, apartmentID int64) error
	Drop(ownerID, apartmentID int64) (int64, error)
}

// ReservationRepositoryInterface defines the interface for reservation repository operations
type ReservationRepositoryInterface interface {
	// CreateIfAvailable inserts the reservation unless its interval overlaps an
	// existing one for the same apartment, as a single conditional statement.
	// Returns the number of rows inserted (0 means the slot was taken).
	CreateIfAvailable(reservation *models.Reservation) (int64, error)
	DeleteByKey(customerID, apartmentID int64, startDate time.Time) (int64, error)
}

// ReviewRepositoryInterface defines the interface for review repository operations
type ReviewRepositoryInterface interface {
	// CreateIfStayCompleted inserts the review only when the customer has a
	// reservation of the apartment ending on or before the review date.
	// Returns the number of rows inserted (0 means no qualifying stay).
	CreateIfStayCompleted(review *models.Review) (int64, error)
	// UpdateIfDateAdvanced overwrites the review in place when the existing
	// review's date is on or before the new one. Returns rows updated.
	UpdateIfDateAdvanced(customerID, apartmentID int64, date time.Time, rating int, text string) (int64, error)
}

// AnalyticsRepositoryInterface defines the read-only derived queries. Every
// call recomputes from current storage state; nothing is materialized.
type AnalyticsRepositoryInterface interface {
	ApartmentRating(apartmentID int64) (float64, error)
	OwnerRating(ownerID int64) (float64, error)
	TopCustomer() (*models.Customer, error)
	ReservationsPerOwner() ([]OwnerReservationCount, error)
	AllLocationOwners() ([]models.Owner, error)
	BestValueForMoney() (*models.Apartment, error)
	ProfitPerMonth(year int, margin float64) ([]MonthlyProfit, error)
	Recommendations(customerID int64) ([]ApartmentScore, error)
}
