package repository

import "fooddeliver/internal/domain"

// Стартовые данные каталога. В демо каталог read-only и задаётся здесь.

func seedPromos() map[string]domain.PromoCode {
	return map[string]domain.PromoCode{
		"WELCOME10": {Code: "WELCOME10", Discount: 10, Type: domain.PromoPercentage, MinOrder: 0},
		"SAVE20":    {Code: "SAVE20", Discount: 20, Type: domain.PromoPercentage, MinOrder: 50},
		"FREESHIP":  {Code: "FREESHIP", Discount: 5, Type: domain.PromoFixed, MinOrder: 25},
	}
}

func seedRestaurants() []domain.Restaurant {
	return []domain.Restaurant{
		{
			ID:           1,
			Name:         "Pizza Paradise",
			Description:  "Authentic Italian pizzas with the finest ingredients",
			Image:        "https://images.unsplash.com/photo-1513104890138-7c749659a591?w=800&h=600&fit=crop",
			Rating:       4.8,
			DeliveryTime: "25-30 min",
			MinOrder:     15,
			Cuisine:      "Italian",
			Address:      "123 Main St, Downtown",
			Phone:        "+1 234-567-8900",
			OpenTime:     "10:00",
			CloseTime:    "22:00",
			IsOpen:       true,
		},
		{
			ID:           2,
			Name:         "Burger Junction",
			Description:  "Gourmet burgers and American classics",
			Image:        "https://images.unsplash.com/photo-1571091718767-18b5b1457add?w=800&h=600&fit=crop",
			Rating:       4.6,
			DeliveryTime: "20-25 min",
			MinOrder:     12,
			Cuisine:      "American",
			Address:      "456 Oak Ave, Midtown",
			Phone:        "+1 234-567-8901",
			OpenTime:     "11:00",
			CloseTime:    "23:00",
			IsOpen:       true,
		},
		{
			ID:           3,
			Name:         "Asian Fusion",
			Description:  "Delicious Asian cuisine with modern twists",
			Image:        "https://images.unsplash.com/photo-1555939594-58d7cb561ad1?w=800&h=600&fit=crop",
			Rating:       4.9,
			DeliveryTime: "30-35 min",
			MinOrder:     18,
			Cuisine:      "Asian",
			Address:      "789 Pine Rd, Uptown",
			Phone:        "+1 234-567-8902",
			OpenTime:     "12:00",
			CloseTime:    "22:30",
			IsOpen:       true,
		},
		{
			ID:           4,
			Name:         "Sweet Treats Bakery",
			Description:  "Fresh desserts and baked goods daily",
			Image:        "https://images.unsplash.com/photo-1555507036-ab1f4038808a?w=800&h=600&fit=crop",
			Rating:       4.7,
			DeliveryTime: "15-20 min",
			MinOrder:     10,
			Cuisine:      "Desserts",
			Address:      "321 Elm St, Downtown",
			Phone:        "+1 234-567-8903",
			OpenTime:     "08:00",
			CloseTime:    "21:00",
			IsOpen:       true,
		},
	}
}

func seedMenu() []domain.MenuItem {
	return []domain.MenuItem{
		// Pizza Paradise
		{
			ID: 1, RestaurantID: 1,
			Name:        "Margherita Pizza",
			Description: "Classic delight with 100% real mozzarella cheese",
			Price:       8.99,
			Image:       "https://images.unsplash.com/photo-1574071318508-1cdbab80d002?w=600&h=400&fit=crop",
			Category:    "pizza",
			Dietary:     []string{"vegetarian"},
			IsAvailable: true,
			Toppings:    []string{"Extra Cheese", "Mushrooms", "Olives", "Peppers"},
		},
		{
			ID: 2, RestaurantID: 1,
			Name:        "Pepperoni Pizza",
			Description: "Classic pepperoni with mozzarella cheese",
			Price:       10.99,
			Image:       "https://images.unsplash.com/photo-1628840042765-356cda07504e?w=600&h=400&fit=crop",
			Category:    "pizza",
			Dietary:     []string{},
			IsAvailable: true,
			Toppings:    []string{"Extra Cheese", "Pepperoni", "Mushrooms"},
		},
		{
			ID: 3, RestaurantID: 1,
			Name:        "Pasta Carbonara",
			Description: "Creamy pasta with bacon and parmesan cheese",
			Price:       9.99,
			Image:       "https://images.unsplash.com/photo-1621996346565-e3dbc646d9a9?w=600&h=400&fit=crop",
			Category:    "pizza",
			Dietary:     []string{},
			IsAvailable: true,
			Toppings:    []string{"Extra Cheese", "Bacon", "Black Pepper"},
		},
		{
			ID: 4, RestaurantID: 1,
			Name:        "Caesar Salad",
			Description: "Fresh romaine lettuce with Caesar dressing",
			Price:       5.99,
			Image:       "https://images.unsplash.com/photo-1546793665-c74683f339c1?w=600&h=400&fit=crop",
			Category:    "salad",
			Dietary:     []string{},
			IsAvailable: true,
			Toppings:    []string{"Grilled Chicken", "Bacon Bits", "Croutons"},
		},
		// Burger Junction
		{
			ID: 5, RestaurantID: 2,
			Name:        "Veggie Burger",
			Description: "Loaded with fresh veggies and cheese",
			Price:       6.49,
			Image:       "https://images.unsplash.com/photo-1525059696034-4967a729002e?w=600&h=400&fit=crop",
			Category:    "burger",
			Dietary:     []string{"vegetarian"},
			IsAvailable: true,
			Toppings:    []string{"Lettuce", "Tomato", "Onions", "Pickles", "Jalapenos"},
		},
		{
			ID: 6, RestaurantID: 2,
			Name:        "Classic Cheeseburger",
			Description: "Juicy beef patty with cheese and special sauce",
			Price:       7.99,
			Image:       "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=600&h=400&fit=crop",
			Category:    "burger",
			Dietary:     []string{},
			IsAvailable: true,
			Toppings:    []string{"Lettuce", "Tomato", "Onions", "Pickles", "Cheese"},
		},
		{
			ID: 7, RestaurantID: 2,
			Name:        "Chicken Wings",
			Description: "Crispy buffalo wings with blue cheese dip",
			Price:       7.99,
			Image:       "https://images.unsplash.com/photo-1527477396000-e27163b481c2?w=600&h=400&fit=crop",
			Category:    "burger",
			Dietary:     []string{},
			IsAvailable: true,
			Toppings:    []string{"Extra Spicy", "Ranch Dressing", "Celery Sticks"},
		},
		{
			ID: 8, RestaurantID: 2,
			Name:        "BBQ Bacon Burger",
			Description: "Grilled beef with crispy bacon and BBQ sauce",
			Price:       9.49,
			Image:       "https://images.unsplash.com/photo-1550547660-d9450f859349?w=600&h=400&fit=crop",
			Category:    "burger",
			Dietary:     []string{},
			IsAvailable: true,
			Toppings:    []string{"Bacon", "Onion Rings", "BBQ Sauce", "Cheese"},
		},
		// Asian Fusion
		{
			ID: 9, RestaurantID: 3,
			Name:        "Chicken Biryani",
			Description: "Spiced basmati rice with tender chicken pieces",
			Price:       10.99,
			Image:       "https://images.unsplash.com/photo-1631452180519-c014fe946bc7?w=600&h=400&fit=crop",
			Category:    "asian",
			Dietary:     []string{},
			IsAvailable: true,
			Toppings:    []string{"Extra Chicken", "Boiled Egg", "Raita"},
		},
		{
			ID: 10, RestaurantID: 3,
			Name:        "Sushi Platter",
			Description: "Fresh salmon, tuna, and eel rolls with wasabi",
			Price:       14.99,
			Image:       "https://images.unsplash.com/photo-1579584425555-c3ce17fd4351?w=600&h=400&fit=crop",
			Category:    "asian",
			Dietary:     []string{},
			IsAvailable: true,
			Toppings:    []string{"Extra Wasabi", "Ginger", "Soy Sauce"},
		},
		{
			ID: 11, RestaurantID: 3,
			Name:        "Pad Thai",
			Description: "Stir-fried rice noodles with tamarind sauce",
			Price:       9.99,
			Image:       "https://images.unsplash.com/photo-1559314809-0d155014e29e?w=600&h=400&fit=crop",
			Category:    "asian",
			Dietary:     []string{},
			IsAvailable: true,
			Toppings:    []string{"Shrimp", "Tofu", "Peanuts", "Lime"},
		},
		{
			ID: 12, RestaurantID: 3,
			Name:        "Vegetable Fried Rice",
			Description: "Wok-fried rice with fresh vegetables",
			Price:       7.99,
			Image:       "https://images.unsplash.com/photo-1603133872878-684f208fb84b?w=600&h=400&fit=crop",
			Category:    "asian",
			Dietary:     []string{"vegetarian", "vegan"},
			IsAvailable: true,
			Toppings:    []string{"Extra Vegetables", "Soy Sauce"},
		},
		// Sweet Treats Bakery
		{
			ID: 13, RestaurantID: 4,
			Name:        "Chocolate Lava Cake",
			Description: "Warm chocolate cake with a molten center",
			Price:       4.99,
			Image:       "https://images.unsplash.com/photo-1606313564200-e75d5e30476c?w=600&h=400&fit=crop",
			Category:    "dessert",
			Dietary:     []string{"vegetarian"},
			IsAvailable: true,
			Toppings:    []string{"Vanilla Ice Cream", "Whipped Cream", "Strawberries"},
		},
		{
			ID: 14, RestaurantID: 4,
			Name:        "Tiramisu",
			Description: "Classic Italian dessert with coffee and mascarpone",
			Price:       5.99,
			Image:       "https://images.unsplash.com/photo-1571877227200-a0d98ea607e9?w=600&h=400&fit=crop",
			Category:    "dessert",
			Dietary:     []string{"vegetarian"},
			IsAvailable: true,
			Toppings:    []string{"Cocoa Powder", "Chocolate Shavings"},
		},
		{
			ID: 15, RestaurantID: 4,
			Name:        "New York Cheesecake",
			Description: "Creamy cheesecake with graham cracker crust",
			Price:       6.49,
			Image:       "https://images.unsplash.com/photo-1524351199678-941a58a3df50?w=600&h=400&fit=crop",
			Category:    "dessert",
			Dietary:     []string{"vegetarian"},
			IsAvailable: true,
			Toppings:    []string{"Berry Compote", "Whipped Cream"},
		},
		{
			ID: 16, RestaurantID: 4,
			Name:        "Ice Cream Sundae",
			Description: "Vanilla ice cream with chocolate sauce and toppings",
			Price:       4.49,
			Image:       "https://images.unsplash.com/photo-1563805042-7684c019e1cb?w=600&h=400&fit=crop",
			Category:    "dessert",
			Dietary:     []string{"vegetarian"},
			IsAvailable: true,
			Toppings:    []string{"Chocolate Sauce", "Caramel", "Nuts", "Cherry"},
		},
	}
}
