package models

type Rating struct {
	ID        uint    `gorm:"primaryKey" json:"rating_id"`
	ProductID uint    `json:"product_id"` // Foreign key to Product
	Value     float64 `json:"rating_value"`
}
