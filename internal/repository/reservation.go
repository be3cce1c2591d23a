package repository

import (
	"time"

	"rental-marketplace-backend/internal/database/models"
	apperrors "rental-marketplace-backend/internal/errors"

	"gorm.io/gorm"
)

// ReservationRepository handles database operations for reservations
type ReservationRepository struct {
	db *gorm.DB
}

// Ensure ReservationRepository implements ReservationRepositoryInterface
var _ ReservationRepositoryInterface = (*ReservationRepository)(nil)

// NewReservationRepository creates a new reservation repository
func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// CreateIfAvailable inserts the reservation unless the apartment already has a
// reservation whose [start, end) interval intersects the requested one. The
// availability check and the insert are one statement, so concurrent bookings
// of the same slot cannot both succeed. An exact duplicate key is caught by
// the overlap condition before the primary key is ever evaluated.
func (r *ReservationRepository) CreateIfAvailable(reservation *models.Reservation) (int64, error) {
	tx := r.db.Exec(`
		INSERT INTO reservations (customer_id, apartment_id, start_date, end_date, total_price)
		SELECT ?, ?, ?, ?, ?
		WHERE NOT EXISTS (
			SELECT 1 FROM reservations
			WHERE apartment_id = ? AND start_date < ? AND end_date > ?
		)`,
		reservation.CustomerID, reservation.ApartmentID, reservation.StartDate,
		reservation.EndDate, reservation.TotalPrice,
		reservation.ApartmentID, reservation.EndDate, reservation.StartDate,
	)
	if tx.Error != nil {
		return 0, translatePGError(tx.Error, apperrors.NewAlreadyExistsError("reservation", "for this customer, apartment and start date"))
	}
	return tx.RowsAffected, nil
}

// DeleteByKey removes the reservation matching the composite key exactly.
// Returns the number of rows deleted.
func (r *ReservationRepository) DeleteByKey(customerID, apartmentID int64, startDate time.Time) (int64, error) {
	tx := r.db.Delete(&models.Reservation{},
		"customer_id = ? AND apartment_id = ? AND start_date = ?",
		customerID, apartmentID, startDate)
	return tx.RowsAffected, tx.Error
}
