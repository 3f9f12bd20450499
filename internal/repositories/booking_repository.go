package repositories

import (
	"database/sql"
	"errors"

	intconfig "github.com/Thakshinss/bds-nagercoil-ride/internal/config"
	intdb "github.com/Thakshinss/bds-nagercoil-ride/internal/db"
	"github.com/Thakshinss/bds-nagercoil-ride/internal/domain"
	"github.com/Thakshinss/bds-nagercoil-ride/internal/domain/models"
	"github.com/Thakshinss/bds-nagercoil-ride/internal/utils"

	"github.com/google/uuid"
)

// BookingRepository wraps DB access for booking intake rows.
type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const bookingSelect = `
	SELECT id, pickup_location, drop_location, customer_name, mobile_number,
	       booking_date, booking_time, vehicle_type, trip_type,
	       COALESCE(additional_message, ''), status, created_at, updated_at
	FROM bookings
`

func scanBooking(scan func(dest ...any) error) (models.Booking, error) {
	var b models.Booking
	var createdAt, updatedAt sql.NullTime
	err := scan(&b.ID, &b.PickupLocation, &b.DropLocation, &b.CustomerName,
		&b.MobileNumber, &b.BookingDate, &b.BookingTime, &b.VehicleType,
		&b.TripType, &b.AdditionalMessage, &b.Status, &createdAt, &updatedAt)
	if err != nil {
		return models.Booking{}, err
	}
	if createdAt.Valid {
		b.CreatedAt = utils.FormatDateTime(createdAt.Time)
	}
	if updatedAt.Valid {
		b.UpdatedAt = utils.FormatDateTime(updatedAt.Time)
	}
	return b, nil
}

// ListAll returns bookings newest first, matching the admin table ordering.
func (r BookingRepository) ListAll() ([]models.Booking, error) {
	rows, err := r.db().Query(bookingSelect + ` ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (r BookingRepository) GetByID(id string) (models.Booking, error) {
	b, err := scanBooking(r.db().QueryRow(bookingSelect+` WHERE id = ?`, id).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
	}
	return b, err
}

// Create inserts a booking in pending status and re-selects the row.
func (r BookingRepository) Create(b models.Booking) (models.Booking, error) {
	id := uuid.NewString()
	_, err := r.db().Exec(`
		INSERT INTO bookings
			(id, pickup_location, drop_location, customer_name, mobile_number,
			 booking_date, booking_time, vehicle_type, trip_type,
			 additional_message, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
	`, id, b.PickupLocation, b.DropLocation, b.CustomerName, b.MobileNumber,
		b.BookingDate, b.BookingTime, b.VehicleType, b.TripType,
		intdb.NullIfEmpty(b.AdditionalMessage), b.Status)
	if err != nil {
		return models.Booking{}, err
	}
	return r.GetByID(id)
}

// UpdateStatus changes only the status column.
func (r BookingRepository) UpdateStatus(id, status string) (models.Booking, error) {
	res, err := r.db().Exec(`
		UPDATE bookings SET status = ?, updated_at = NOW() WHERE id = ?
	`, status, id)
	if err != nil {
		return models.Booking{}, err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return models.Booking{}, domain.NotFoundError{Resource: "booking"}
	}
	return r.GetByID(id)
}

func (r BookingRepository) Delete(id string) error {
	res, err := r.db().Exec(`DELETE FROM bookings WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.NotFoundError{Resource: "booking"}
	}
	return nil
}
