package repository

import (
	"rental-marketplace-backend/internal/database/models"
	apperrors "rental-marketplace-backend/internal/errors"

	"gorm.io/gorm"
)

// CustomerRepository handles database operations for customers
type CustomerRepository struct {
	db *gorm.DB
}

// Ensure CustomerRepository implements CustomerRepositoryInterface
var _ CustomerRepositoryInterface = (*CustomerRepository)(nil)

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Create inserts a new customer
func (r *CustomerRepository) Create(customer *models.Customer) error {
	return translatePGError(r.db.Create(customer).Error, apperrors.ErrCustomerExists)
}

// GetByID retrieves a customer by id
func (r *CustomerRepository) GetByID(id int64) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.First(&customer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// Delete removes a customer, cascading to its reservations and reviews.
// Returns the number of rows deleted.
func (r *CustomerRepository) Delete(id int64) (int64, error) {
	tx := r.db.Delete(&models.Customer{}, "id = ?", id)
	return tx.RowsAffected, tx.Error
}
