package product

func price(v float64) *float64 { return &v }

const pexels = "https://images.pexels.com/photos/"

// Seed returns the static storefront catalog.
func Seed() []Product {
	return []Product{
		{
			ID:            "1",
			Name:          "Premium Wireless Headphones",
			Price:         299.99,
			OriginalPrice: price(399.99),
			Description:   "Experience crystal-clear audio with our premium wireless headphones featuring active noise cancellation and 30-hour battery life.",
			Images: []string{
				pexels + "3394650/pexels-photo-3394650.jpeg?auto=compress&cs=tinysrgb&w=800",
				pexels + "1649771/pexels-photo-1649771.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Category:    "Electronics",
			Rating:      4.8,
			ReviewCount: 324,
			InStock:     true,
			StockCount:  45,
			Tags:        []string{"wireless", "bluetooth", "noise-cancelling"},
			Features:    []string{"Active Noise Cancellation", "30-hour Battery", "Quick Charge", "Premium Materials"},
		},
		{
			ID:          "2",
			Name:        "Smart Fitness Watch",
			Price:       249.99,
			Description: "Track your fitness goals with advanced health monitoring, GPS, and smart notifications in a sleek design.",
			Images: []string{
				pexels + "267394/pexels-photo-267394.jpeg?auto=compress&cs=tinysrgb&w=800",
				pexels + "393047/pexels-photo-393047.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Category:    "Wearables",
			Rating:      4.6,
			ReviewCount: 189,
			InStock:     true,
			StockCount:  32,
			Tags:        []string{"fitness", "health", "smartwatch"},
			Features:    []string{"Heart Rate Monitor", "GPS Tracking", "7-day Battery", "Water Resistant"},
		},
		{
			ID:            "3",
			Name:          "Professional Camera",
			Price:         899.99,
			OriginalPrice: price(1199.99),
			Description:   "Capture stunning photos and videos with this professional-grade camera featuring 4K recording and advanced autofocus.",
			Images: []string{
				pexels + "90946/pexels-photo-90946.jpeg?auto=compress&cs=tinysrgb&w=800",
				pexels + "51383/photo-camera-subject-photographer-51383.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Category:    "Photography",
			Rating:      4.9,
			ReviewCount: 156,
			InStock:     true,
			StockCount:  18,
			Tags:        []string{"camera", "4k", "professional"},
			Features:    []string{"4K Video Recording", "24MP Sensor", "Image Stabilization", "Weather Sealed"},
		},
		{
			ID:          "4",
			Name:        "Ergonomic Office Chair",
			Price:       449.99,
			Description: "Premium ergonomic office chair with lumbar support and breathable mesh back for all-day comfort.",
			Images: []string{
				pexels + "586024/pexels-photo-586024.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Category:    "Furniture",
			Rating:      4.7,
			ReviewCount: 203,
			InStock:     true,
			StockCount:  25,
			Tags:        []string{"ergonomic", "office", "furniture"},
			Features:    []string{"Lumbar Support", "Breathable Mesh", "Height Adjustable", "5-Year Warranty"},
		},
		{
			ID:          "5",
			Name:        "Wireless Charging Stand",
			Price:       79.99,
			Description: "Fast wireless charging stand compatible with all Qi-enabled devices. Sleek design fits any desk setup.",
			Images: []string{
				pexels + "4068314/pexels-photo-4068314.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Category:    "Accessories",
			Rating:      4.4,
			ReviewCount: 98,
			InStock:     true,
			StockCount:  67,
			Tags:        []string{"wireless", "charging", "qi"},
			Features:    []string{"Fast Charging", "Qi Compatible", "LED Indicator", "Non-slip Base"},
		},
		{
			ID:          "6",
			Name:        "Premium Coffee Maker",
			Price:       199.99,
			Description: "Programmable coffee maker with thermal carafe and precision brewing for the perfect cup every time.",
			Images: []string{
				pexels + "324028/pexels-photo-324028.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Category:    "Kitchen",
			Rating:      4.5,
			ReviewCount: 145,
			InStock:     true,
			StockCount:  41,
			Tags:        []string{"coffee", "kitchen", "appliance"},
			Features:    []string{"Programmable Timer", "Thermal Carafe", "Auto Shut-off", "12-Cup Capacity"},
		},
		{
			ID:            "7",
			Name:          "Bluetooth Speaker",
			Price:         89.99,
			OriginalPrice: price(129.99),
			Description:   "Portable Bluetooth speaker with 360-degree sound and waterproof design for any adventure.",
			Images: []string{
				pexels + "1193942/pexels-photo-1193942.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Category:    "Audio",
			Rating:      4.3,
			ReviewCount: 267,
			InStock:     true,
			StockCount:  89,
			Tags:        []string{"bluetooth", "speaker", "waterproof"},
			Features:    []string{"360° Sound", "Waterproof IPX7", "12-hour Battery", "Voice Assistant"},
		},
		{
			ID:          "8",
			Name:        "Gaming Mechanical Keyboard",
			Price:       159.99,
			Description: "RGB mechanical gaming keyboard with tactile switches and programmable keys for competitive gaming.",
			Images: []string{
				pexels + "1194713/pexels-photo-1194713.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Category:    "Gaming",
			Rating:      4.6,
			ReviewCount: 312,
			InStock:     true,
			StockCount:  54,
			Tags:        []string{"gaming", "mechanical", "rgb"},
			Features:    []string{"Mechanical Switches", "RGB Lighting", "Programmable Keys", "N-Key Rollover"},
		},
	}
}
