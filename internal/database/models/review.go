package models

import "time"

// Review is a customer's rating of an apartment they previously stayed in.
// At most one review exists per (customer, apartment) pair; updates overwrite
// it in place and may only move the date forward.
type Review struct {
	CustomerID  int64     `json:"customer_id" gorm:"primaryKey"`
	ApartmentID int64     `json:"apartment_id" gorm:"primaryKey"`
	Date        time.Time `json:"date" gorm:"column:date;type:date;not null"`
	Rating      int       `json:"rating" gorm:"not null;check:chk_reviews_rating,rating >= 1 AND rating <= 10"`
	Text        string    `json:"text" gorm:"column:review_text;not null"`

	Customer  Customer  `json:"-" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Apartment Apartment `json:"-" gorm:"foreignKey:ApartmentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Review
func (Review) TableName() string {
	return "reviews"
}
