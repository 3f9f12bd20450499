package models

type Booking struct {
	ID                string `json:"id"`
	PickupLocation    string `json:"pickup_location"`
	DropLocation      string `json:"drop_location"`
	CustomerName      string `json:"customer_name"`
	MobileNumber      string `json:"mobile_number"`
	BookingDate       string `json:"booking_date"`
	BookingTime       string `json:"booking_time"`
	VehicleType       string `json:"vehicle_type"`
	TripType          string `json:"trip_type"`
	AdditionalMessage string `json:"additional_message,omitempty"`
	Status            string `json:"status"`
	CreatedAt         string `json:"created_at,omitempty"`
	UpdatedAt         string `json:"updated_at,omitempty"`
}

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"

	TripTypeOneWay    = "one-way"
	TripTypeRoundTrip = "round-trip"
)

func IsValidTripType(t string) bool {
	return t == TripTypeOneWay || t == TripTypeRoundTrip
}

func IsValidBookingStatus(s string) bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed || s == BookingStatusCancelled
}

// CanTransitionBookingStatus encodes the allowed status moves:
// pending may be confirmed or cancelled, confirmed may still be cancelled,
// cancelled is terminal.
func CanTransitionBookingStatus(from, to string) bool {
	switch from {
	case BookingStatusPending:
		return to == BookingStatusConfirmed || to == BookingStatusCancelled
	case BookingStatusConfirmed:
		return to == BookingStatusCancelled
	default:
		return false
	}
}
