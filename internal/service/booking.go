package service

import (
	"fmt"
	"time"

	"rental-marketplace-backend/internal/database/models"
	apperrors "rental-marketplace-backend/internal/errors"
	"rental-marketplace-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// BookingService enforces the booking rules: reservations of the same
// apartment never overlap, and a review requires a completed stay. The checks
// ride on the repository's conditional statements, so they hold under
// concurrent callers without extra locking.
type BookingService struct {
	reservationRepo repository.ReservationRepositoryInterface
	reviewRepo      repository.ReviewRepositoryInterface
	validator       *validator.Validate
}

// Ensure BookingService implements BookingServiceInterface
var _ BookingServiceInterface = (*BookingService)(nil)

// NewBookingService creates a new BookingService
func NewBookingService(reservationRepo repository.ReservationRepositoryInterface, reviewRepo repository.ReviewRepositoryInterface, validator *validator.Validate) *BookingService {
	return &BookingService{
		reservationRepo: reservationRepo,
		reviewRepo:      reviewRepo,
		validator:       validator,
	}
}

// CreateReservationRequest represents the request to book an apartment for
// the half-open interval [start_date, end_date)
type CreateReservationRequest struct {
	CustomerID  int64     `json:"customer_id" validate:"required,gt=0"`
	ApartmentID int64     `json:"apartment_id" validate:"required,gt=0"`
	StartDate   time.Time `json:"start_date" validate:"required"`
	EndDate     time.Time `json:"end_date" validate:"required,gtfield=StartDate"`
	TotalPrice  float64   `json:"total_price" validate:"required,gt=0"`
}

// CreateReviewRequest represents the request to review a stayed-in apartment
type CreateReviewRequest struct {
	CustomerID  int64     `json:"customer_id" validate:"required,gt=0"`
	ApartmentID int64     `json:"apartment_id" validate:"required,gt=0"`
	Date        time.Time `json:"date" validate:"required"`
	Rating      int       `json:"rating" validate:"required,gte=1,lte=10"`
	Text        string    `json:"text" validate:"required"`
}

// UpdateReviewRequest represents the request to overwrite an existing review.
// The new date must be on or after the existing review's date.
type UpdateReviewRequest struct {
	CustomerID  int64     `json:"customer_id" validate:"required,gt=0"`
	ApartmentID int64     `json:"apartment_id" validate:"required,gt=0"`
	Date        time.Time `json:"date" validate:"required"`
	Rating      int       `json:"rating" validate:"required,gte=1,lte=10"`
	Text        string    `json:"text" validate:"required"`
}

// CreateReservation books the apartment for the requested interval. An
// occupied slot fails as a validation error before any row is written; an
// unknown customer or apartment fails as not-found only when the slot itself
// is free, matching the single-statement evaluation order.
func (s *BookingService) CreateReservation(req *CreateReservationRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return apperrors.NewValidationError("", err.Error())
	}

	reservation := &models.Reservation{
		CustomerID:  req.CustomerID,
		ApartmentID: req.ApartmentID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		TotalPrice:  req.TotalPrice,
	}
	rows, err := s.reservationRepo.CreateIfAvailable(reservation)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.ErrApartmentUnavailable
	}
	return nil
}

// CancelReservation removes the reservation identified by customer, apartment
// and start date
func (s *BookingService) CancelReservation(customerID, apartmentID int64, startDate time.Time) error {
	if customerID <= 0 {
		return apperrors.NewValidationError("customer_id", "must be positive")
	}
	if apartmentID <= 0 {
		return apperrors.NewValidationError("apartment_id", "must be positive")
	}

	rows, err := s.reservationRepo.DeleteByKey(customerID, apartmentID, startDate)
	if err != nil {
		return fmt.Errorf("failed to cancel reservation: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrReservationNotFound
	}
	return nil
}

// CreateReview records the customer's review of an apartment they stayed in.
// It fails not-found without a reservation of the apartment ending on or
// before the review date, and already-exists when the pair is reviewed.
func (s *BookingService) CreateReview(req *CreateReviewRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return apperrors.NewValidationError("", err.Error())
	}

	review := &models.Review{
		CustomerID:  req.CustomerID,
		ApartmentID: req.ApartmentID,
		Date:        req.Date,
		Rating:      req.Rating,
		Text:        req.Text,
	}
	rows, err := s.reviewRepo.CreateIfStayCompleted(review)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.ErrNoQualifyingReservation
	}
	return nil
}

// UpdateReview overwrites the pair's review in place. A missing review and a
// new date earlier than the existing one are indistinguishable at the storage
// level; both fail not-found.
func (s *BookingService) UpdateReview(req *UpdateReviewRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return apperrors.NewValidationError("", err.Error())
	}

	rows, err := s.reviewRepo.UpdateIfDateAdvanced(req.CustomerID, req.ApartmentID, req.Date, req.Rating, req.Text)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.ErrReviewNotFound
	}
	return nil
}
