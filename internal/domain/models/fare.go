package models

// Fare is one row of the public price table. The API keeps the short
// "from"/"to" keys the site has always used; the store columns are
// from_location/to_location and the mapping lives in the fare repository.
type Fare struct {
	ID          string `json:"id"`
	From        string `json:"from"`
	To          string `json:"to"`
	VehicleType string `json:"vehicleType"`
	Price       string `json:"price"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}
