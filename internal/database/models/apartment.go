package models

// Apartment represents a rentable apartment. The (address, city, country)
// triple is unique across all apartments.
type Apartment struct {
	ID      int64  `json:"id" gorm:"primaryKey;check:chk_apartments_id,id > 0"`
	Address string `json:"address" gorm:"not null;uniqueIndex:uniq_apartment_location" validate:"required"`
	City    string `json:"city" gorm:"not null;uniqueIndex:uniq_apartment_location" validate:"required"`
	Country string `json:"country" gorm:"not null;uniqueIndex:uniq_apartment_location" validate:"required"`
	Size    int    `json:"size" gorm:"not null;check:chk_apartments_size,size > 0" validate:"required,gt=0"`
}

// TableName returns the table name for Apartment
func (Apartment) TableName() string {
	return "apartments"
}
