package services

import (
	"github.com/Thakshinss/bds-nagercoil-ride/internal/domain"
	"github.com/Thakshinss/bds-nagercoil-ride/internal/domain/models"
	"github.com/Thakshinss/bds-nagercoil-ride/internal/email"
	"github.com/Thakshinss/bds-nagercoil-ride/internal/repositories"
	"github.com/Thakshinss/bds-nagercoil-ride/internal/utils"
)

// BookingService handles booking intake and admin status changes. The email
// notification is best effort: a failed send never fails the booking, it only
// flips the notified flag surfaced to the caller.
type BookingService struct {
	Repo      repositories.BookingRepository
	Notifier  email.Sender
	RequestID string
}

func (s BookingService) ListAll() ([]models.Booking, error) {
	return s.Repo.ListAll()
}

func validateBooking(b models.Booking) (models.Booking, error) {
	b.PickupLocation = utils.NormalizeSpace(b.PickupLocation)
	b.DropLocation = utils.NormalizeSpace(b.DropLocation)
	b.CustomerName = utils.NormalizeSpace(b.CustomerName)
	b.MobileNumber = utils.TrimOrEmpty(b.MobileNumber)
	b.BookingDate = utils.TrimOrEmpty(b.BookingDate)
	b.BookingTime = utils.TrimOrEmpty(b.BookingTime)
	b.VehicleType = utils.TrimOrEmpty(b.VehicleType)
	b.TripType = utils.TrimOrEmpty(b.TripType)
	b.AdditionalMessage = utils.TrimOrEmpty(b.AdditionalMessage)

	switch {
	case b.PickupLocation == "":
		return b, domain.ValidationError{Field: "pickup_location", Msg: "is required"}
	case b.DropLocation == "":
		return b, domain.ValidationError{Field: "drop_location", Msg: "is required"}
	case b.CustomerName == "":
		return b, domain.ValidationError{Field: "customer_name", Msg: "is required"}
	case len(b.MobileNumber) < 10:
		return b, domain.ValidationError{Field: "mobile_number", Msg: "must have at least 10 digits"}
	case b.VehicleType == "":
		return b, domain.ValidationError{Field: "vehicle_type", Msg: "is required"}
	case !models.IsValidTripType(b.TripType):
		return b, domain.ValidationError{Field: "trip_type", Msg: "must be one-way or round-trip"}
	}

	if _, err := utils.ParseDate(b.BookingDate); err != nil {
		return b, domain.ValidationError{Field: "booking_date", Msg: "must be YYYY-MM-DD", Err: err}
	}
	if _, err := utils.ParseClock(b.BookingTime); err != nil {
		return b, domain.ValidationError{Field: "booking_time", Msg: "must be HH:MM", Err: err}
	}
	return b, nil
}

// Create persists a pending booking and fires the notification email.
// The returned bool reports whether the email went out.
func (s BookingService) Create(b models.Booking) (models.Booking, bool, error) {
	b, err := validateBooking(b)
	if err != nil {
		return models.Booking{}, false, err
	}
	b.Status = models.BookingStatusPending

	created, err := s.Repo.Create(b)
	if err != nil {
		utils.LogEvent(s.RequestID, "booking", "create_error", err.Error())
		return models.Booking{}, false, err
	}
	utils.LogEvent(s.RequestID, "booking", "create", "id="+created.ID)

	notified := false
	if s.Notifier != nil {
		if err := s.Notifier.SendBookingNotification(created); err != nil {
			utils.LogEvent(s.RequestID, "booking", "notify_error", err.Error())
		} else {
			notified = true
		}
	}
	return created, notified, nil
}

// UpdateStatus enforces the transition rules before touching the row.
func (s BookingService) UpdateStatus(id, status string) (models.Booking, error) {
	status = utils.TrimOrEmpty(status)
	if !models.IsValidBookingStatus(status) {
		return models.Booking{}, domain.ValidationError{Field: "status", Msg: "must be pending, confirmed or cancelled"}
	}

	current, err := s.Repo.GetByID(id)
	if err != nil {
		return models.Booking{}, err
	}
	if !models.CanTransitionBookingStatus(current.Status, status) {
		return models.Booking{}, domain.ConflictError{
			Resource: "booking",
			Msg:      "cannot change status from " + current.Status + " to " + status,
		}
	}

	updated, err := s.Repo.UpdateStatus(id, status)
	if err != nil {
		utils.LogEvent(s.RequestID, "booking", "status_error", err.Error())
		return models.Booking{}, err
	}
	utils.LogEvent(s.RequestID, "booking", "status", "id="+id+" status="+status)
	return updated, nil
}

func (s BookingService) Delete(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		utils.LogEvent(s.RequestID, "booking", "delete_error", err.Error())
		return err
	}
	utils.LogEvent(s.RequestID, "booking", "delete", "id="+id)
	return nil
}
