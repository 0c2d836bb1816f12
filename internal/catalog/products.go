package catalog

import "gearstore/internal/domain"

func defaultProducts() []domain.Product {
	return []domain.Product{
		{
			ID:                 1,
			Name:               "PowerPack Pro Sports Bag",
			PriceCents:         mustCents("89.99"),
			OriginalPriceCents: mustCents("119.99"),
			Image:              "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=600&h=400&fit=crop",
			Description:        "Built for Your Active Life. Designed to accommodate all your essentials, from workout clothes to sports equipment, with room to spare. Perfect for gym sessions, practice, or weekend tournaments.",
			Category:           "Bags",
			Rating:             4.8,
			Reviews:            124,
			Colors:             []string{"Blue", "Black", "Red"},
			Sizes:              []string{"Small", "Medium", "Large"},
		},
		{
			ID:                 2,
			Name:               "Elite Workout Companion",
			PriceCents:         mustCents("79.99"),
			OriginalPriceCents: mustCents("99.99"),
			Image:              "https://images.unsplash.com/photo-1544966503-7cc5ac882d5f?w=600&h=400&fit=crop",
			Description:        "Your Companion Workout. Engineered to be lightweight without compromising strength, making it easy to carry while withstanding heavy loads of gear.",
			Category:           "Bags",
			Rating:             4.6,
			Reviews:            89,
			Colors:             []string{"Green", "Black", "Navy"},
			Sizes:              []string{"Medium", "Large"},
		},
		{
			ID:                 3,
			Name:               "StyleFlex Performance Bag",
			PriceCents:         mustCents("94.99"),
			OriginalPriceCents: mustCents("129.99"),
			Image:              "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=600&h=400&fit=crop",
			Description:        "Performance and Style in One. Adjustable dividers and removable compartments let you organize your bag your way, whether you're carrying gym gear, sports equipment, or travel essentials.",
			Category:           "Bags",
			Rating:             4.9,
			Reviews:            156,
			Colors:             []string{"Pink", "Purple", "White"},
			Sizes:              []string{"Small", "Medium", "Large", "XL"},
		},
		{
			ID:                 4,
			Name:               "Pro Training Shoes",
			PriceCents:         mustCents("149.99"),
			OriginalPriceCents: mustCents("199.99"),
			Image:              "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=600&h=400&fit=crop",
			Description:        "High-performance training shoes designed for maximum comfort and durability during intense workouts.",
			Category:           "Footwear",
			Rating:             4.7,
			Reviews:            203,
			Colors:             []string{"Black", "White", "Red"},
			Sizes:              []string{"7", "8", "9", "10", "11", "12"},
		},
		{
			ID:                 5,
			Name:               "Athletic Performance Shirt",
			PriceCents:         mustCents("39.99"),
			OriginalPriceCents: mustCents("59.99"),
			Image:              "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=600&h=400&fit=crop",
			Description:        "Moisture-wicking performance shirt perfect for training and competition. Lightweight and breathable fabric.",
			Category:           "Apparel",
			Rating:             4.5,
			Reviews:            78,
			Colors:             []string{"Black", "Blue", "Red", "White"},
			Sizes:              []string{"XS", "S", "M", "L", "XL", "XXL"},
		},
		{
			ID:                 6,
			Name:               "Premium Yoga Mat",
			PriceCents:         mustCents("69.99"),
			OriginalPriceCents: mustCents("89.99"),
			Image:              "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=600&h=400&fit=crop",
			Description:        "Non-slip premium yoga mat with superior cushioning and grip. Perfect for yoga, pilates, and floor exercises.",
			Category:           "Equipment",
			Rating:             4.8,
			Reviews:            167,
			Colors:             []string{"Purple", "Blue", "Green", "Pink"},
			Sizes:              []string{"Standard", "Extra Long"},
		},
	}
}
