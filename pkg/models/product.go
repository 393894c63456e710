package models

import (
	"time"
)

// Product is a catalog item. Inactive products stay in the table but are
// hidden from the customer-facing listings.
type Product struct {
	ID       uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string    `gorm:"type:varchar(200);not null" json:"name"`
	Price    float64   `gorm:"type:decimal(10,2)" json:"price"`
	Comment  string    `gorm:"type:varchar(500)" json:"comment"`
	Category string    `gorm:"type:varchar(100);index" json:"category"`
	Unit     string    `gorm:"type:varchar(50)" json:"unit"`
	Active   bool      `json:"active"`
	Created  time.Time `gorm:"column:created" json:"created_at"`
	Updated  time.Time `gorm:"column:updated" json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}
