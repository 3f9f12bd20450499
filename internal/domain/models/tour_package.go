package models

// TourPackage keeps duration/destinations alongside the newer field set;
// both site generations render from the same shape.
type TourPackage struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Duration     string   `json:"duration"`
	Destinations string   `json:"destinations"`
	Price        string   `json:"price"`
	Image        string   `json:"image"`
	Highlights   []string `json:"highlights"`
	Inclusions   []string `json:"inclusions"`
	CreatedAt    string   `json:"createdAt,omitempty"`
	UpdatedAt    string   `json:"updatedAt,omitempty"`
}
