package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/Thakshinss/bds-nagercoil-ride/internal/domain/models"
	"github.com/Thakshinss/bds-nagercoil-ride/internal/repositories"
	"github.com/Thakshinss/bds-nagercoil-ride/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the printable booking voucher the admin panel offers
// alongside each confirmed booking.
type DocsService struct {
	BookingRepo repositories.BookingRepository
	RequestID   string
	Loader      func(string) (models.Booking, error)
}

func (s DocsService) GenerateVoucher(bookingID string) ([]byte, string, error) {
	b, err := s.loadBooking(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_voucher", "booking_id="+bookingID)
	return buildVoucherPDF(b)
}

func (s DocsService) loadBooking(bookingID string) (models.Booking, error) {
	if s.Loader != nil {
		return s.Loader(bookingID)
	}
	return s.BookingRepo.GetByID(bookingID)
}

func buildVoucherPDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Voucher", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BDS NAGERCOIL RIDE - BOOKING VOUCHER")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Customer      : %s", safe(b.CustomerName, "-")),
		fmt.Sprintf("Mobile        : %s", safe(b.MobileNumber, "-")),
		fmt.Sprintf("Pickup        : %s", safe(b.PickupLocation, "-")),
		fmt.Sprintf("Drop          : %s", safe(b.DropLocation, "-")),
		fmt.Sprintf("Date / Time   : %s %s", safe(b.BookingDate, "-"), safe(b.BookingTime, "-")),
		fmt.Sprintf("Vehicle       : %s", safe(b.VehicleType, "-")),
		fmt.Sprintf("Trip          : %s", safe(b.TripType, "-")),
		fmt.Sprintf("Status        : %s", safe(b.Status, "-")),
		fmt.Sprintf("Booking Ref   : %s", safe(b.ID, "-")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	if strings.TrimSpace(b.AdditionalMessage) != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 11)
		pdf.MultiCell(0, 6, "Note: "+b.AdditionalMessage, "", "", false)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please keep this voucher handy. Our driver will contact you before pickup.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("voucher-%s.pdf", safeFilenamePart(b.ID))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "unknown"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		default:
			return '_'
		}
	}, s)
}
