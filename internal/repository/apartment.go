package repository

import (
	"rental-marketplace-backend/internal/database/models"
	apperrors "rental-marketplace-backend/internal/errors"

	"gorm.io/gorm"
)

// ApartmentRepository handles database operations for apartments
type ApartmentRepository struct {
	db *gorm.DB
}

// Ensure ApartmentRepository implements ApartmentRepositoryInterface
var _ ApartmentRepositoryInterface = (*ApartmentRepository)(nil)

// NewApartmentRepository creates a new apartment repository
func NewApartmentRepository(db *gorm.DB) *ApartmentRepository {
	return &ApartmentRepository{db: db}
}

// Create inserts a new apartment. A duplicate id or a duplicate
// (address, city, country) triple both surface as an exists error.
func (r *ApartmentRepository) Create(apartment *models.Apartment) error {
	return translatePGError(r.db.Create(apartment).Error, apperrors.ErrApartmentExists)
}

// GetByID retrieves an apartment by id
func (r *ApartmentRepository) GetByID(id int64) (*models.Apartment, error) {
	var apartment models.Apartment
	if err := r.db.First(&apartment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &apartment, nil
}

// Delete removes an apartment, cascading to its ownership link, reservations
// and reviews. Returns the number of rows deleted.
func (r *ApartmentRepository) Delete(id int64) (int64, error) {
	tx := r.db.Delete(&models.Apartment{}, "id = ?", id)
	return tx.RowsAffected, tx.Error
}
