package models

import "time"

// Reservation is a booking of an apartment for the half-open interval
// [StartDate, EndDate). Identity is (customer, apartment, start date);
// intervals for the same apartment never overlap.
type Reservation struct {
	CustomerID  int64     `json:"customer_id" gorm:"primaryKey"`
	ApartmentID int64     `json:"apartment_id" gorm:"primaryKey"`
	StartDate   time.Time `json:"start_date" gorm:"primaryKey;type:date"`
	EndDate     time.Time `json:"end_date" gorm:"type:date;not null;check:chk_reservations_dates,start_date < end_date"`
	TotalPrice  float64   `json:"total_price" gorm:"not null;check:chk_reservations_price,total_price > 0"`

	Customer  Customer  `json:"-" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Apartment Apartment `json:"-" gorm:"foreignKey:ApartmentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Reservation
func (Reservation) TableName() string {
	return "reservations"
}

// Nights returns the booked length in nights.
func (r *Reservation) Nights() int {
	return int(r.EndDate.Sub(r.StartDate).Hours() / 24)
}
