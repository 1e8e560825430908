package models

import "time"

// Product is an owning record for a block document: the rich description is
// persisted as a JSON-serialized block array in a single column and is only
// ever replaced wholesale, never partially patched. DescriptionVersion is an
// optimistic counter checked on every save.
type Product struct {
	ProductID          string `gorm:"type:char(36);primaryKey"`
	Name               string `gorm:"size:255;not null"`
	ShortDescription   string `gorm:"size:1024"`
	Description        JSON   `gorm:"type:json"`
	DescriptionVersion uint64 `gorm:"not null;default:0"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName overrides the table name for Product
func (Product) TableName() string {
	return "products"
}
