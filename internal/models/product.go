package models

import "time"

// DefaultAvailability is the availability every new product starts with.
const DefaultAvailability = true

// Product represents a product in the catalog.
type Product struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string    `json:"name" gorm:"type:varchar(100);not null"`
	Price        float64   `json:"price" gorm:"type:decimal(10,2);not null"`
	Availability bool      `json:"availability" gorm:"not null;default:true"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TableName keeps the table name stable regardless of GORM's naming strategy.
func (Product) TableName() string {
	return "products"
}
