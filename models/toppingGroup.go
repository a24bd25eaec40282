package models

type ToppingGroup struct {
	ID       uint      `gorm:"primaryKey" json:"group_id"`
	Name     string    `gorm:"size:100" json:"group_name"`
	Toppings []Topping `gorm:"foreignKey:GroupID" json:"toppings,omitempty"`
}
