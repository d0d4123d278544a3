package models

import "strings"

type VehicleCategory string

const (
	CategoryEconomy  VehicleCategory = "Economy"
	CategorySUV      VehicleCategory = "SUV"
	CategoryLuxury   VehicleCategory = "Luxury"
	CategoryElectric VehicleCategory = "Electric"
)

type Transmission string

const (
	TransmissionAutomatic Transmission = "Automatic"
	TransmissionManual    Transmission = "Manual"
)

// Vehicle is the internal-convention shape served to clients. Rows in the
// vehicles table use the same field names minus casing; see rows.go.
type Vehicle struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     VehicleCategory `json:"type"`
	Image        string          `json:"image"`
	Price        float64         `json:"price"`
	Passengers   int             `json:"passengers"`
	Luggage      int             `json:"luggage"`
	Fuel         string          `json:"fuel"`
	Transmission Transmission    `json:"transmission"`
	Description  string          `json:"description"`
}

// VehicleInput is the admin create/edit payload. Create and edit share the
// same field set, so one struct covers both.
type VehicleInput struct {
	Name         string          `json:"name" validate:"required"`
	Category     VehicleCategory `json:"type" validate:"required,oneof=Economy SUV Luxury Electric"`
	Image        string          `json:"image" validate:"required"`
	Price        float64         `json:"price" validate:"gte=0"`
	Passengers   int             `json:"passengers" validate:"gte=1"`
	Luggage      int             `json:"luggage" validate:"gte=0"`
	Fuel         string          `json:"fuel" validate:"required"`
	Transmission Transmission    `json:"transmission" validate:"required,oneof=Automatic Manual"`
	Description  string          `json:"description"`
}

// NormalizeImagePath rewrites legacy local-development asset paths to the
// deployed public-asset layout. Applied at write time so rows never carry
// the development path; reads route legacy rows through it as well.
func NormalizeImagePath(image string) string {
	const devPrefix = "src/assets/"
	if idx := strings.Index(image, devPrefix); idx >= 0 {
		return "/vehicles/" + image[idx+len(devPrefix):]
	}
	return image
}

// CategoryInfo carries the marketing description for one vehicle category.
type CategoryInfo struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Features    []string        `json:"features"`
	PriceRange  string          `json:"priceRange"`
	Category    VehicleCategory `json:"vehicleType"`
}

var Categories = []CategoryInfo{
	{
		ID:          "economy",
		Name:        "Economy & Compact",
		Description: "Fuel-efficient and affordable vehicles perfect for city driving and daily commutes",
		Features:    []string{"Fuel Efficient", "Easy Parking", "Affordable", "City Friendly"},
		PriceRange:  "From $45/day",
		Category:    CategoryEconomy,
	},
	{
		ID:          "suv",
		Name:        "SUV & 4WD",
		Description: "Spacious and capable vehicles ideal for Tasmania's rugged terrain and family adventures",
		Features:    []string{"4WD Capable", "Spacious", "Off-Road Ready", "Family Friendly"},
		PriceRange:  "From $89/day",
		Category:    CategorySUV,
	},
	{
		ID:          "luxury",
		Name:        "Luxury & Premium",
		Description: "Premium vehicles offering superior comfort, style, and advanced features",
		Features:    []string{"Premium Comfort", "Advanced Tech", "Prestige", "Luxury Interior"},
		PriceRange:  "From $149/day",
		Category:    CategoryLuxury,
	},
	{
		ID:          "electric",
		Name:        "Electric & Hybrid",
		Description: "Eco-friendly vehicles with zero or low emissions and cutting-edge technology",
		Features:    []string{"Zero Emissions", "Eco-Friendly", "Quiet Ride", "Modern Tech"},
		PriceRange:  "From $79/day",
		Category:    CategoryElectric,
	},
}

func CategoryByType(category VehicleCategory) (CategoryInfo, bool) {
	for _, c := range Categories {
		if c.Category == category {
			return c, true
		}
	}
	return CategoryInfo{}, false
}
