package models

type Product struct {
	ID          uint      `gorm:"primaryKey" json:"product_id"`
	Name        string    `gorm:"size:255" json:"product_name"`
	Description string    `gorm:"size:255" json:"product_description"`
	Price       float64   `json:"product_price"`
	Category    string    `gorm:"size:100" json:"product_category"`
	Type        string    `gorm:"size:7" json:"product_type"`
	Ratings     []Rating  `gorm:"foreignKey:ProductID" json:"-"`
	Toppings    []Topping `gorm:"many2many:product_toppings" json:"-"`
}
