package services

import (
	"errors"
	"testing"
	"time"

	"github.com/Thakshinss/bds-nagercoil-ride/internal/domain"
	"github.com/Thakshinss/bds-nagercoil-ride/internal/domain/models"
	"github.com/Thakshinss/bds-nagercoil-ride/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

type failingNotifier struct{}

func (failingNotifier) SendBookingNotification(models.Booking) error {
	return errors.New("email service down")
}

func bookingRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "pickup_location", "drop_location", "customer_name",
		"mobile_number", "booking_date", "booking_time", "vehicle_type", "trip_type",
		"additional_message", "status", "created_at", "updated_at"})
}

func validBookingInput() models.Booking {
	return models.Booking{
		PickupLocation: "Nagercoil",
		DropLocation:   "Trivandrum Airport",
		CustomerName:   "Arun Kumar",
		MobileNumber:   "9876543210",
		BookingDate:    "2026-09-15",
		BookingTime:    "06:30",
		VehicleType:    "Sedan",
		TripType:       models.TripTypeOneWay,
	}
}

func TestValidateBookingCollapsesLabelWhitespace(t *testing.T) {
	b := validBookingInput()
	b.PickupLocation = "  Nagercoil   Town "
	b.DropLocation = "Trivandrum \t Airport"
	b.CustomerName = "Arun   Kumar"

	got, err := validateBooking(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.PickupLocation != "Nagercoil Town" {
		t.Fatalf("pickup not collapsed: %q", got.PickupLocation)
	}
	if got.DropLocation != "Trivandrum Airport" {
		t.Fatalf("drop not collapsed: %q", got.DropLocation)
	}
	if got.CustomerName != "Arun Kumar" {
		t.Fatalf("name not collapsed: %q", got.CustomerName)
	}
}

func TestBookingCreateRejectsBadTripType(t *testing.T) {
	b := validBookingInput()
	b.TripType = "both-ways"

	svc := BookingService{}
	_, _, err := svc.Create(b)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestBookingCreateRejectsBadDate(t *testing.T) {
	b := validBookingInput()
	b.BookingDate = "15-09-2026"

	svc := BookingService{}
	_, _, err := svc.Create(b)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestBookingCreateSurvivesNotifierFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM bookings").
		WillReturnRows(bookingRows().AddRow("bk1", "Nagercoil", "Trivandrum Airport", "Arun Kumar",
			"9876543210", "2026-09-15", "06:30", "Sedan", "one-way", "", "pending", now, now))

	svc := BookingService{
		Repo:     repositories.BookingRepository{DB: db},
		Notifier: failingNotifier{},
	}
	created, notified, err := svc.Create(validBookingInput())
	if err != nil {
		t.Fatalf("booking should persist despite notifier failure, got %v", err)
	}
	if notified {
		t.Fatalf("notified should be false when the send fails")
	}
	if created.Status != models.BookingStatusPending {
		t.Fatalf("new booking should be pending, got %q", created.Status)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingStatusTransitionRules(t *testing.T) {
	cases := []struct {
		from, to string
		allowed  bool
	}{
		{models.BookingStatusPending, models.BookingStatusConfirmed, true},
		{models.BookingStatusPending, models.BookingStatusCancelled, true},
		{models.BookingStatusConfirmed, models.BookingStatusCancelled, true},
		{models.BookingStatusConfirmed, models.BookingStatusPending, false},
		{models.BookingStatusCancelled, models.BookingStatusConfirmed, false},
		{models.BookingStatusCancelled, models.BookingStatusPending, false},
	}
	for _, tc := range cases {
		if got := models.CanTransitionBookingStatus(tc.from, tc.to); got != tc.allowed {
			t.Fatalf("transition %s->%s: got %v want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}

func TestBookingUpdateStatusBlocksCancelledReopen(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("FROM bookings").WithArgs("bk1").
		WillReturnRows(bookingRows().AddRow("bk1", "A", "B", "C", "9876543210",
			"2026-09-15", "06:30", "Sedan", "one-way", "", "cancelled", now, now))

	svc := BookingService{Repo: repositories.BookingRepository{DB: db}}
	_, err = svc.UpdateStatus("bk1", models.BookingStatusConfirmed)
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
