package models

type Topping struct {
	ID      uint   `gorm:"primaryKey" json:"topping_id"`
	Name    string `gorm:"size:100" json:"topping_name"`
	GroupID uint   `json:"group_id"` // Foreign key to ToppingGroup
}
