package models

type Car struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Type        string   `json:"type"`
	Price       string   `json:"price"`
	Features    []string `json:"features"`
	Rating      float64  `json:"rating"`
	Description string   `json:"description"`
	Image       string   `json:"image,omitempty"`
	IsActive    bool     `json:"is_active"`
	CreatedAt   string   `json:"created_at,omitempty"`
	UpdatedAt   string   `json:"updated_at,omitempty"`
}

const (
	CarRatingMin = 1.0
	CarRatingMax = 5.0
)

var carCategories = map[string]bool{
	"Economy": true,
	"Sedan":   true,
	"SUV":     true,
	"Luxury":  true,
}

var carTypes = map[string]bool{
	"Hatchback": true,
	"Sedan":     true,
	"SUV":       true,
	"Van":       true,
	"Coach":     true,
}

func IsValidCarCategory(category string) bool {
	return carCategories[category]
}

func IsValidCarType(t string) bool {
	return carTypes[t]
}
