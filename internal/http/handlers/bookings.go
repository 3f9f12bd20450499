package handlers

import (
	"net/http"

	"github.com/Thakshinss/bds-nagercoil-ride/internal/domain/models"
	"github.com/Thakshinss/bds-nagercoil-ride/internal/email"
	"github.com/Thakshinss/bds-nagercoil-ride/internal/http/middleware"
	"github.com/Thakshinss/bds-nagercoil-ride/internal/repositories"
	"github.com/Thakshinss/bds-nagercoil-ride/internal/services"

	"github.com/gin-gonic/gin"
)

var bookingNotifier email.Sender

// SetBookingNotifier wires the outbound email client at startup. A nil sender
// disables notifications (dev setups without EmailJS credentials).
func SetBookingNotifier(n email.Sender) {
	bookingNotifier = n
}

type bookingPayload struct {
	PickupLocation    string `json:"pickup_location" binding:"required"`
	DropLocation      string `json:"drop_location" binding:"required"`
	CustomerName      string `json:"customer_name" binding:"required"`
	MobileNumber      string `json:"mobile_number" binding:"required"`
	BookingDate       string `json:"booking_date" binding:"required"`
	BookingTime       string `json:"booking_time" binding:"required"`
	VehicleType       string `json:"vehicle_type" binding:"required"`
	TripType          string `json:"trip_type" binding:"required"`
	AdditionalMessage string `json:"additional_message"`
}

func (p bookingPayload) toModel() models.Booking {
	return models.Booking{
		PickupLocation:    p.PickupLocation,
		DropLocation:      p.DropLocation,
		CustomerName:      p.CustomerName,
		MobileNumber:      p.MobileNumber,
		BookingDate:       p.BookingDate,
		BookingTime:       p.BookingTime,
		VehicleType:       p.VehicleType,
		TripType:          p.TripType,
		AdditionalMessage: p.AdditionalMessage,
	}
}

func bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{
		Repo:      repositories.BookingRepository{},
		Notifier:  bookingNotifier,
		RequestID: middleware.GetRequestID(c),
	}
}

// POST /api/bookings — public intake form submit.
func CreateBooking(c *gin.Context) {
	var payload bookingPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	created, emailSent, err := bookingService(c).Create(payload.toModel())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"booking":    created,
		"email_sent": emailSent,
	})
}

// GET /api/admin_b_d_s/bookings
func AdminGetBookings(c *gin.Context) {
	list, err := bookingService(c).ListAll()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

type bookingStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

// PUT /api/admin_b_d_s/bookings/:id/status
func UpdateBookingStatus(c *gin.Context) {
	id := c.Param("id")
	var payload bookingStatusPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	updated, err := bookingService(c).UpdateStatus(id, payload.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /api/admin_b_d_s/bookings/:id
func DeleteBooking(c *gin.Context) {
	if err := bookingService(c).Delete(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking deleted"})
}

// GET /api/admin_b_d_s/bookings/:id/voucher — printable PDF.
func GetBookingVoucherPDF(c *gin.Context) {
	svc := services.DocsService{
		BookingRepo: repositories.BookingRepository{},
		RequestID:   middleware.GetRequestID(c),
	}

	pdf, filename, err := svc.GenerateVoucher(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
