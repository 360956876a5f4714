package repository

import "github.com/Lixing-Zhang/room-scanner/backend/internal/models"

// Product categories used by the catalog
const (
	CategoryFurniture = "Furniture"
	CategoryLighting  = "Lighting"
	CategoryHomeDecor = "Home Decor"
)

func seedProducts() []models.Product {
	return []models.Product{
		// Storefront home page
		{
			ID: "1", Name: "Modern Minimalist Architecture Wall Art", Category: CategoryHomeDecor,
			Price: 11.99, Rating: 5, Image: "/images/wall-art.jpg", IsPrime: true,
			Dimensions: models.ProductDimensions{Width: 60, Height: 90, Depth: 3}, Material: "Recycled paper", EcoScore: 84,
		},
		{
			ID: "2", Name: "Minimalist Bedside Lamp with Fabric Shade", Category: CategoryLighting,
			Price: 239.00, Rating: 4, Image: "/images/bedside-lamp.jpg", IsPrime: true,
			Dimensions: models.ProductDimensions{Width: 25, Height: 45, Depth: 25}, Material: "Linen and oak", EcoScore: 81,
		},
		{
			ID: "3", Name: "Antique-Style Decorative Hanging Bulbs", Category: CategoryLighting,
			Price: 999.99, Rating: 3, Image: "/images/hanging-bulbs.jpg",
			Dimensions: models.ProductDimensions{Width: 40, Height: 120, Depth: 40}, Material: "Brass", EcoScore: 70,
		},
		{
			ID: "4", Name: "Heavy-Duty E27 Bulb Holder", Category: CategoryLighting,
			Price: 99.99, Rating: 5, Image: "/images/bulb-holder.jpg", IsPrime: true,
			Dimensions: models.ProductDimensions{Width: 5, Height: 8, Depth: 5}, Material: "Ceramic", EcoScore: 76,
		},
		{
			ID: "5", Name: "3-Seater Modern Fabric Sofa with Wooden Legs", Category: CategoryFurniture, Style: "modern",
			Price: 799.99, Rating: 4, Image: "/images/fabric-sofa.jpg", IsPrime: true,
			Dimensions: models.ProductDimensions{Width: 210, Height: 85, Depth: 90}, Material: "Recycled polyester", EcoScore: 79,
		},
		{
			ID: "6", Name: "Modern Accent Comfort Chair with Wooden Legs", Category: CategoryFurniture, Style: "modern",
			Price: 1299.99, Rating: 5, Image: "/images/accent-chair.jpg", IsPrime: true,
			Dimensions: models.ProductDimensions{Width: 75, Height: 90, Depth: 80}, Material: "Velvet and beech", EcoScore: 77,
		},

		// Room scanner picks by style
		{
			ID: "m1", Name: "Modern Minimalist Desk - White", Category: CategoryFurniture, Style: "modern",
			Price: 149.99, Rating: 4.5, Image: "/andrew-sharp-J90zM9OtBXY-unsplash.jpg", IsPrime: true,
			Dimensions: models.ProductDimensions{Width: 120, Height: 75, Depth: 60},
			Material:   "Sustainable bamboo", EcoScore: 92, CO2Savings: "18kg CO2 vs. average",
			SustainabilityFeatures: []string{"Renewable materials", "Low-VOC finishes", "Carbon-neutral shipping"},
		},
		{
			ID: "m2", Name: "Contemporary Office Chair - Black Mesh", Category: CategoryFurniture, Style: "modern",
			Price: 189.99, Rating: 4.2, Image: "/phillip-goldsberry-fZuleEfeA1Q-unsplash.jpg", IsPrime: true,
			Dimensions: models.ProductDimensions{Width: 60, Height: 110, Depth: 60},
			Material:   "Recycled polyester mesh", EcoScore: 88, CO2Savings: "12kg CO2 vs. average",
			SustainabilityFeatures: []string{"Recycled materials", "Modular design for repairs", "Plastic-free packaging"},
		},
		{
			ID: "m3", Name: "LED Floor Lamp with Remote Control", Category: CategoryLighting, Style: "modern",
			Price: 79.99, Rating: 4.7, Image: "/images/floor-lamp.jpg", IsPrime: true,
			Dimensions: models.ProductDimensions{Width: 30, Height: 180, Depth: 30},
			Material:   "Aluminium", EcoScore: 83, CO2Savings: "6kg CO2 vs. average",
			SustainabilityFeatures: []string{"Energy-efficient LED"},
		},
		{
			ID: "s1", Name: "Light Wood Desk with Storage", Category: CategoryFurniture, Style: "scandinavian",
			Price: 199.99, Rating: 4.7, Image: "/jean-philippe-delberghe-Ry9WBo3qmoc-unsplash.jpg", IsPrime: true,
			Dimensions: models.ProductDimensions{Width: 130, Height: 75, Depth: 65},
			Material:   "FSC-certified oak", EcoScore: 95, CO2Savings: "22kg CO2 vs. average",
			SustainabilityFeatures: []string{"Sustainably harvested wood", "Water-based finishes", "Plastic-free packaging"},
		},
		{
			ID: "s2", Name: "White Ergonomic Chair with Wood Legs", Category: CategoryFurniture, Style: "scandinavian",
			Price: 159.99, Rating: 4.4, Image: "/jon-tyson-py9sH2rThWs-unsplash.jpg", IsPrime: true,
			Dimensions: models.ProductDimensions{Width: 55, Height: 95, Depth: 55},
			Material:   "Organic cotton and birch", EcoScore: 90, CO2Savings: "15kg CO2 vs. average",
			SustainabilityFeatures: []string{"Organic textiles", "Biodegradable components", "Local manufacturing"},
		},
		{
			ID: "s3", Name: "Minimalist Pendant Light", Category: CategoryLighting, Style: "scandinavian",
			Price: 89.99, Rating: 4.6, Image: "/images/pendant-light.jpg", IsPrime: true,
			Dimensions: models.ProductDimensions{Width: 40, Height: 30, Depth: 40},
			Material:   "Birch veneer", EcoScore: 89,
			SustainabilityFeatures: []string{"Sustainably harvested wood"},
		},
		{
			ID: "i1", Name: "Metal and Wood Industrial Desk", Category: CategoryFurniture, Style: "industrial",
			Price: 229.99, Rating: 4.6, Image: "/javier-miranda-_qRw7eL5lNI-unsplash.jpg", IsPrime: true,
			Dimensions: models.ProductDimensions{Width: 140, Height: 80, Depth: 70},
			Material:   "Reclaimed wood and recycled steel", EcoScore: 87, CO2Savings: "25kg CO2 vs. average",
			SustainabilityFeatures: []string{"Upcycled materials", "Zero-waste manufacturing", "Lifetime warranty"},
		},
		{
			ID: "i2", Name: "Vintage-Style Leather Office Chair", Category: CategoryFurniture, Style: "industrial",
			Price: 249.99, Rating: 4.8, Image: "/suchit-poojari-ljRiZl00n18-unsplash.jpg", IsPrime: true,
			Dimensions: models.ProductDimensions{Width: 65, Height: 105, Depth: 65},
			Material:   "Plant-based leather alternative", EcoScore: 82, CO2Savings: "16kg CO2 vs. average",
			SustainabilityFeatures: []string{"Vegan materials", "Biodegradable components", "Ethical manufacturing"},
		},
		{
			ID: "mc1", Name: "Mid-Century Modern Coffee Table", Category: CategoryFurniture, Style: "mid-century",
			Price: 179.99, Rating: 4.9, Image: "/tiana-borcherding-1eVYwkNHqVU-unsplash.jpg", IsPrime: true,
			Dimensions: models.ProductDimensions{Width: 110, Height: 45, Depth: 60},
			Material:   "Sustainable walnut", EcoScore: 91, CO2Savings: "20kg CO2 vs. average",
			SustainabilityFeatures: []string{"Responsibly sourced wood", "Non-toxic finishes", "Handcrafted locally"},
		},
		{
			ID: "mc2", Name: "Retro Lounge Chair with Ottoman", Category: CategoryFurniture, Style: "mid-century",
			Price: 349.99, Rating: 4.7, Image: "/phillip-goldsberry-fZuleEfeA1Q-unsplash.jpg", IsPrime: true,
			Dimensions: models.ProductDimensions{Width: 75, Height: 85, Depth: 80},
			Material:   "Recycled wool and sustainable wood", EcoScore: 89, CO2Savings: "28kg CO2 vs. average",
			SustainabilityFeatures: []string{"Recycled textiles", "Modular design for repairs", "Carbon-offset shipping"},
		},
		{
			ID: "d1", Name: "Modern Desk with Drawers - Perfect for Home Office", Category: CategoryFurniture, Style: DefaultStyle,
			Price: 129.99, Rating: 4, Image: "/andrew-sharp-J90zM9OtBXY-unsplash.jpg", IsPrime: true,
			Dimensions: models.ProductDimensions{Width: 120, Height: 75, Depth: 60},
			EcoScore:   80, CO2Savings: "10kg CO2 vs. average",
			SustainabilityFeatures: []string{"Recycled materials", "Energy-efficient production"},
		},
		{
			ID: "d2", Name: "Ergonomic Office Chair with Lumbar Support", Category: CategoryFurniture, Style: DefaultStyle,
			Price: 199.99, Rating: 5, Image: "/phillip-goldsberry-fZuleEfeA1Q-unsplash.jpg", IsPrime: true,
			Dimensions: models.ProductDimensions{Width: 60, Height: 110, Depth: 60},
			EcoScore:   75, CO2Savings: "8kg CO2 vs. average",
			SustainabilityFeatures: []string{"Partially recycled materials", "Designed for disassembly"},
		},

		// Mock scan result recommendations
		{
			ID: "101", Name: "Minimalist Coffee Table", Category: CategoryFurniture, Style: "minimalist",
			Price: 149.99, Rating: 4.7, Image: "/images/andrew-sharp-J90zM9OtBXY-unsplash.jpg",
			Dimensions: models.ProductDimensions{Width: 120, Height: 45, Depth: 60},
			Material:   "Sustainable bamboo", EcoScore: 92, CO2Savings: "18kg CO2 vs. average",
			SustainabilityFeatures: []string{"Renewable materials", "Low-VOC finishes", "Carbon-neutral shipping"},
		},
		{
			ID: "203", Name: "Scandinavian Bookshelf", Category: CategoryFurniture, Style: "scandinavian",
			Price: 229.99, Rating: 4.5, Image: "/images/phillip-goldsberry-fZuleEfeA1Q-unsplash.jpg",
			Dimensions: models.ProductDimensions{Width: 80, Height: 180, Depth: 30},
			Material:   "FSC-certified oak", EcoScore: 88, CO2Savings: "15kg CO2 vs. average",
			SustainabilityFeatures: []string{"Sustainably harvested wood", "Water-based finishes", "Plastic-free packaging"},
		},
		{
			ID: "305", Name: "Industrial Desk Lamp", Category: CategoryLighting, Style: "industrial",
			Price: 79.99, Rating: 4.8, Image: "/images/jon-tyson-py9sH2rThWs-unsplash.jpg",
			Dimensions: models.ProductDimensions{Width: 15, Height: 45, Depth: 15},
			Material:   "Recycled aluminum", EcoScore: 95, CO2Savings: "5kg CO2 vs. average",
			SustainabilityFeatures: []string{"Energy-efficient LED", "Recycled materials", "Repairable design"},
		},
	}
}

// MockRecommendationIDs are the products served by the canned scan results
var MockRecommendationIDs = []string{"101", "203", "305"}
