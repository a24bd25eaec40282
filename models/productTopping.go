package models

// ProductTopping is the join table between products and toppings.
type ProductTopping struct {
	ProductID uint `gorm:"primaryKey" json:"product_id"`
	ToppingID uint `gorm:"primaryKey" json:"topping_id"`
}
