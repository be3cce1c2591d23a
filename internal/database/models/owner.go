package models

// Owner represents an apartment owner. Identity is the caller-assigned positive id.
type Owner struct {
	ID   int64  `json:"id" gorm:"primaryKey;check:chk_owners_id,id > 0"`
	Name string `json:"name" gorm:"not null" validate:"required"`
}

// TableName returns the table name for Owner
func (Owner) TableName() string {
	return "owners"
}
