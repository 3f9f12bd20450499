package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Thakshinss/bds-nagercoil-ride/internal/domain/models"
)

const requestTimeout = 15 * time.Second

// Sender notifies the operator about a new booking. Kept as an interface so
// the booking service can run without credentials in dev and tests.
type Sender interface {
	SendBookingNotification(b models.Booking) error
}

type Config struct {
	Endpoint   string
	ServiceID  string
	TemplateID string
	PublicKey  string
	ToEmail    string
}

// Client talks to the EmailJS templated-send HTTP API.
type Client struct {
	cfg    Config
	client *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		cfg: cfg,
		client: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// Configured reports whether the credentials needed for a send are present.
func (c *Client) Configured() bool {
	return c.cfg.ServiceID != "" && c.cfg.TemplateID != "" && c.cfg.PublicKey != ""
}

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// SendBookingNotification posts the booking fields as template parameters.
func (c *Client) SendBookingNotification(b models.Booking) error {
	if !c.Configured() {
		return fmt.Errorf("emailjs credentials not configured")
	}

	payload := sendRequest{
		ServiceID:  c.cfg.ServiceID,
		TemplateID: c.cfg.TemplateID,
		UserID:     c.cfg.PublicKey,
		TemplateParams: map[string]string{
			"to_email":           c.cfg.ToEmail,
			"customer_name":      b.CustomerName,
			"mobile_number":      b.MobileNumber,
			"pickup_location":    b.PickupLocation,
			"drop_location":      b.DropLocation,
			"booking_date":       b.BookingDate,
			"booking_time":       b.BookingTime,
			"vehicle_type":       b.VehicleType,
			"trip_type":          b.TripType,
			"additional_message": b.AdditionalMessage,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode email payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("email send failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("email send rejected: status=%d body=%s", resp.StatusCode, string(msg))
	}
	return nil
}
