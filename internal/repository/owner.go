package repository

import (
	"rental-marketplace-backend/internal/database/models"
	apperrors "rental-marketplace-backend/internal/errors"

	"gorm.io/gorm"
)

// OwnerRepository handles database operations for owners
type OwnerRepository struct {
	db *gorm.DB
}

// Ensure OwnerRepository implements OwnerRepositoryInterface
var _ OwnerRepositoryInterface = (*OwnerRepository)(nil)

// NewOwnerRepository creates a new owner repository
func NewOwnerRepository(db *gorm.DB) *OwnerRepository {
	return &OwnerRepository{db: db}
}

// Create inserts a new owner
func (r *OwnerRepository) Create(owner *models.Owner) error {
	return translatePGError(r.db.Create(owner).Error, apperrors.ErrOwnerExists)
}

// GetByID retrieves an owner by id
func (r *OwnerRepository) GetByID(id int64) (*models.Owner, error) {
	var owner models.Owner
	if err := r.db.First(&owner, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &owner, nil
}

// Delete removes an owner, cascading to its ownership links.
// Returns the number of rows deleted.
func (r *OwnerRepository) Delete(id int64) (int64, error) {
	tx := r.db.Delete(&models.Owner{}, "id = ?", id)
	return tx.RowsAffected, tx.Error
}

// GetByApartmentID retrieves the owner of an apartment through its ownership link
func (r *OwnerRepository) GetByApartmentID(apartmentID int64) (*models.Owner, error) {
	var owner models.Owner
	err := r.db.
		Joins("JOIN ownerships ON ownerships.owner_id = owners.id").
		Where("ownerships.apartment_id = ?", apartmentID).
		First(&owner).Error
	if err != nil {
		return nil, err
	}
	return &owner, nil
}

// GetApartments retrieves all apartments owned by the owner
func (r *OwnerRepository) GetApartments(ownerID int64) ([]models.Apartment, error) {
	var apartments []models.Apartment
	err := r.db.
		Joins("JOIN ownerships ON ownerships.apartment_id = apartments.id").
		Where("ownerships.owner_id = ?", ownerID).
		Order("apartments.id ASC").
		Find(&apartments).Error
	if err != nil {
		return nil, err
	}
	return apartments, nil
}
