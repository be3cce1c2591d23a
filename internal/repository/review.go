package repository

import (
	"time"

	"rental-marketplace-backend/internal/database/models"
	apperrors "rental-marketplace-backend/internal/errors"

	"gorm.io/gorm"
)

// ReviewRepository handles database operations for reviews
type ReviewRepository struct {
	db *gorm.DB
}

// Ensure ReviewRepository implements ReviewRepositoryInterface
var _ ReviewRepositoryInterface = (*ReviewRepository)(nil)

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// CreateIfStayCompleted inserts the review only when the customer has a
// reservation of the apartment ending on or before the review date. The
// precondition and the insert are one statement; a duplicate (customer,
// apartment) pair fails on the primary key instead.
func (r *ReviewRepository) CreateIfStayCompleted(review *models.Review) (int64, error) {
	tx := r.db.Exec(`
		INSERT INTO reviews (customer_id, apartment_id, date, rating, review_text)
		SELECT ?, ?, ?, ?, ?
		WHERE EXISTS (
			SELECT 1 FROM reservations
			WHERE customer_id = ? AND apartment_id = ? AND end_date <= ?
		)`,
		review.CustomerID, review.ApartmentID, review.Date, review.Rating, review.Text,
		review.CustomerID, review.ApartmentID, review.Date,
	)
	if tx.Error != nil {
		return 0, translatePGError(tx.Error, apperrors.ErrReviewExists)
	}
	return tx.RowsAffected, nil
}

// UpdateIfDateAdvanced overwrites the review's date, rating and text when the
// existing review's date is on or before the new date. The date check rides
// on the UPDATE itself, so a stale update matches zero rows.
func (r *ReviewRepository) UpdateIfDateAdvanced(customerID, apartmentID int64, date time.Time, rating int, text string) (int64, error) {
	tx := r.db.Exec(`
		UPDATE reviews
		SET date = ?, rating = ?, review_text = ?
		WHERE customer_id = ? AND apartment_id = ? AND date <= ?`,
		date, rating, text,
		customerID, apartmentID, date,
	)
	if tx.Error != nil {
		return 0, translatePGError(tx.Error, apperrors.ErrReviewExists)
	}
	return tx.RowsAffected, nil
}
