package testutils

import (
	"fmt"
	"time"

	"rental-marketplace-backend/internal/database/models"
)

// OwnerFactory provides methods to create test Owner data
type OwnerFactory struct{}

// NewOwnerFactory creates a new OwnerFactory
func NewOwnerFactory() *OwnerFactory {
	return &OwnerFactory{}
}

// Create creates a test Owner with default values
func (f *OwnerFactory) Create(id int64) *models.Owner {
	return &models.Owner{
		ID:   id,
		Name: fmt.Sprintf("Owner %d", id),
	}
}

// WithName sets a custom name for the owner
func (f *OwnerFactory) WithName(id int64, name string) *models.Owner {
	owner := f.Create(id)
	owner.Name = name
	return owner
}

// CustomerFactory provides methods to create test Customer data
type CustomerFactory struct{}

// NewCustomerFactory creates a new CustomerFactory
func NewCustomerFactory() *CustomerFactory {
	return &CustomerFactory{}
}

// Create creates a test Customer with default values
func (f *CustomerFactory) Create(id int64) *models.Customer {
	return &models.Customer{
		ID:   id,
		Name: fmt.Sprintf("Customer %d", id),
	}
}

// WithName sets a custom name for the customer
func (f *CustomerFactory) WithName(id int64, name string) *models.Customer {
	customer := f.Create(id)
	customer.Name = name
	return customer
}

// ApartmentFactory provides methods to create test Apartment data
type ApartmentFactory struct{}

// NewApartmentFactory creates a new ApartmentFactory
func NewApartmentFactory() *ApartmentFactory {
	return &ApartmentFactory{}
}

// Create creates a test Apartment with default values. The address carries
// the id so every apartment lands on a distinct location.
func (f *ApartmentFactory) Create(id int64) *models.Apartment {
	return &models.Apartment{
		ID:      id,
		Address: fmt.Sprintf("%d Test Street", id),
		City:    "Haifa",
		Country: "Israel",
		Size:    50,
	}
}

// WithLocation sets a custom city and country for the apartment
func (f *ApartmentFactory) WithLocation(id int64, city, country string) *models.Apartment {
	apartment := f.Create(id)
	apartment.City = city
	apartment.Country = country
	return apartment
}

// WithSize sets a custom size for the apartment
func (f *ApartmentFactory) WithSize(id int64, size int) *models.Apartment {
	apartment := f.Create(id)
	apartment.Size = size
	return apartment
}

// ReservationFactory provides methods to create test Reservation data
type ReservationFactory struct{}

// NewReservationFactory creates a new ReservationFactory
func NewReservationFactory() *ReservationFactory {
	return &ReservationFactory{}
}

// Create creates a test Reservation over the given dates
func (f *ReservationFactory) Create(customerID, apartmentID int64, start, end string, price float64) *models.Reservation {
	return &models.Reservation{
		CustomerID:  customerID,
		ApartmentID: apartmentID,
		StartDate:   Date(start),
		EndDate:     Date(end),
		TotalPrice:  price,
	}
}

// ReviewFactory provides methods to create test Review data
type ReviewFactory struct{}

// NewReviewFactory creates a new ReviewFactory
func NewReviewFactory() *ReviewFactory {
	return &ReviewFactory{}
}

// Create creates a test Review with the given rating
func (f *ReviewFactory) Create(customerID, apartmentID int64, date string, rating int) *models.Review {
	return &models.Review{
		CustomerID:  customerID,
		ApartmentID: apartmentID,
		Date:        Date(date),
		Rating:      rating,
		Text:        "A test review",
	}
}

// Date parses a YYYY-MM-DD string; it panics on malformed input, which in
// tests means a typo in the fixture.
func Date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(fmt.Sprintf("bad test date %q: %v", value, err))
	}
	return t
}

// FactorySet provides access to all factories
type FactorySet struct {
	Owner       *OwnerFactory
	Customer    *CustomerFactory
	Apartment   *ApartmentFactory
	Reservation *ReservationFactory
	Review      *ReviewFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Owner:       NewOwnerFactory(),
		Customer:    NewCustomerFactory(),
		Apartment:   NewApartmentFactory(),
		Reservation: NewReservationFactory(),
		Review:      NewReviewFactory(),
	}
}
