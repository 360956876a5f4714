package models

// Product represents a furniture item available in the storefront catalog
// Dimensions are in centimeters, as printed on the product page
type Product struct {
	ID                     string            `json:"id"`
	Name                   string            `json:"name"`
	Category               string            `json:"category"`
	Style                  string            `json:"style"`
	Price                  float64           `json:"price"`
	Rating                 float64           `json:"rating"`
	Image                  string            `json:"image"`
	IsPrime                bool              `json:"isPrime"`
	Dimensions             ProductDimensions `json:"dimensions"`
	Material               string            `json:"material,omitempty"`
	EcoScore               int               `json:"ecoScore"`
	CO2Savings             string            `json:"co2Savings,omitempty"`
	SustainabilityFeatures []string          `json:"sustainabilityFeatures,omitempty"`
}

// ProductDimensions is the physical footprint of a product in centimeters
type ProductDimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}
