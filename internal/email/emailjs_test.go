package email

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Thakshinss/bds-nagercoil-ride/internal/domain/models"
)

func sampleBooking() models.Booking {
	return models.Booking{
		PickupLocation: "Nagercoil",
		DropLocation:   "Kanyakumari",
		CustomerName:   "Priya",
		MobileNumber:   "9876543210",
		BookingDate:    "2026-09-20",
		BookingTime:    "09:00",
		VehicleType:    "SUV",
		TripType:       models.TripTypeRoundTrip,
	}
}

func TestSendBookingNotificationPostsTemplateParams(t *testing.T) {
	var got sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
			t.Errorf("unexpected content type %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(Config{
		Endpoint:   srv.URL,
		ServiceID:  "svc_1",
		TemplateID: "tpl_1",
		PublicKey:  "pk_1",
		ToEmail:    "owner@example.com",
	})
	if err := c.SendBookingNotification(sampleBooking()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.ServiceID != "svc_1" || got.TemplateID != "tpl_1" || got.UserID != "pk_1" {
		t.Fatalf("credentials not forwarded: %+v", got)
	}
	if got.TemplateParams["customer_name"] != "Priya" {
		t.Fatalf("customer_name missing: %v", got.TemplateParams)
	}
	if got.TemplateParams["to_email"] != "owner@example.com" {
		t.Fatalf("to_email missing: %v", got.TemplateParams)
	}
	if got.TemplateParams["trip_type"] != models.TripTypeRoundTrip {
		t.Fatalf("trip_type missing: %v", got.TemplateParams)
	}
}

func TestSendBookingNotificationRejectsNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid public key", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(Config{
		Endpoint:   srv.URL,
		ServiceID:  "svc_1",
		TemplateID: "tpl_1",
		PublicKey:  "bad",
	})
	err := c.SendBookingNotification(sampleBooking())
	if err == nil {
		t.Fatal("expected error for 403 response")
	}
	if !strings.Contains(err.Error(), "status=403") {
		t.Fatalf("error should carry the status: %v", err)
	}
}

func TestSendBookingNotificationRequiresCredentials(t *testing.T) {
	c := NewClient(Config{Endpoint: "http://localhost:1"})
	if c.Configured() {
		t.Fatal("empty credentials should not report configured")
	}
	if err := c.SendBookingNotification(sampleBooking()); err == nil {
		t.Fatal("expected error when credentials are missing")
	}
}
