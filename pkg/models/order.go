package models

import (
	"time"
)

// Order is a checkout snapshot. Client data is denormalized text, not a
// foreign key, and Items is an opaque serialized line-item payload that is
// stored and returned verbatim. Total is caller-supplied and is never
// reconciled against Items.
type Order struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ClientName string    `gorm:"type:varchar(200);index" json:"client_name"`
	Phone      string    `gorm:"type:varchar(20)" json:"phone"`
	Address    string    `gorm:"type:varchar(300)" json:"address"`
	Locality   string    `gorm:"type:varchar(100);index" json:"locality"`
	Items      string    `gorm:"type:text" json:"items"` // JSON string
	Total      float64   `gorm:"type:decimal(10,2)" json:"total"`
	Location   string    `gorm:"type:varchar(300)" json:"location"`
	Created    time.Time `gorm:"column:created" json:"created_at"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem is the shape callers are expected to serialize into Items.
// The backend does not parse it.
type OrderItem struct {
	ProductID   uint64  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int32   `json:"quantity"`
	Price       float64 `json:"price"`
}
