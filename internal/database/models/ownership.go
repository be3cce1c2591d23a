package models

// Ownership links an apartment to its owner. The apartment id is the primary
// key, so an apartment has at most one owner at a time. Deleting the owner or
// the apartment cascades to this row.
type Ownership struct {
	ApartmentID int64 `json:"apartment_id" gorm:"primaryKey"`
	OwnerID     int64 `json:"owner_id" gorm:"not null"`

	Apartment Apartment `json:"-" gorm:"foreignKey:ApartmentID;constraint:OnDelete:CASCADE"`
	Owner     Owner     `json:"-" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Ownership
func (Ownership) TableName() string {
	return "ownerships"
}
