package models

// Customer represents a customer who books and reviews apartments.
type Customer struct {
	ID   int64  `json:"id" gorm:"primaryKey;check:chk_customers_id,id > 0"`
	Name string `json:"name" gorm:"not null" validate:"required"`
}

// TableName returns the table name for Customer
func (Customer) TableName() string {
	return "customers"
}
