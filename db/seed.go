package db

import "menuapi/models"

// SeedToppings loads the topping lookup tables on first start. Products
// and ratings come in through the API or fixtures; topping groups and
// toppings have no write endpoint, so they are seeded here.
func SeedToppings() error {
	var count int64
	if err := DB.Model(&models.Topping{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	groups := []struct {
		name     string
		toppings []string
	}{
		{"Veg Toppings", []string{"Onion", "Tomato", "Capsicum", "Sweet Corn", "Paneer", "Mushroom", "Jalapeno", "Black Olives"}},
		{"Non-Veg Toppings", []string{"Chicken Tikka", "Pepper BBQ Chicken", "Chicken Sausage", "Grilled Chicken"}},
		{"Extras", []string{"Extra Cheese", "Cheese Burst"}},
	}

	for _, g := range groups {
		group := models.ToppingGroup{Name: g.name}
		if err := DB.Create(&group).Error; err != nil {
			return err
		}
		for _, name := range g.toppings {
			if err := DB.Create(&models.Topping{Name: name, GroupID: group.ID}).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
