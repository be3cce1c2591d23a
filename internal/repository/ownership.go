package repository

import (
	"rental-marketplace-backend/internal/database/models"
	apperrors "rental-marketplace-backend/internal/errors"

	"gorm.io/gorm"
)

// OwnershipRepository handles database operations for apartment ownership links
type OwnershipRepository struct {
	db *gorm.DB
}

// Ensure OwnershipRepository implements OwnershipRepositoryInterface
var _ OwnershipRepositoryInterface = (*OwnershipRepository)(nil)

// NewOwnershipRepository creates a new ownership repository
func NewOwnershipRepository(db *gorm.DB) *OwnershipRepository {
	return &OwnershipRepository{db: db}
}

// Claim records the owner as the apartment's owner. The apartment id is the
// primary key, so a claim on an already-owned apartment fails as a duplicate
// regardless of which owner holds it.
func (r *OwnershipRepository) Claim(ownerID, apartmentID int64) error {
	ownership := models.Ownership{ApartmentID: apartmentID, OwnerID: ownerID}
	return translatePGError(r.db.Create(&ownership).Error, apperrors.ErrOwnershipExists)
}

// Drop removes the ownership link matching both ids exactly.
// Returns the number of rows deleted.
func (r *OwnershipRepository) Drop(ownerID, apartmentID int64) (int64, error) {
	tx := r.db.Delete(&models.Ownership{}, "owner_id = ? AND apartment_id = ?", ownerID, apartmentID)
	return tx.RowsAffected, tx.Error
}
