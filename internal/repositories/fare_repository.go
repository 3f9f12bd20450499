package repositories

import (
	"database/sql"
	"errors"

	intconfig "github.com/Thakshinss/bds-nagercoil-ride/internal/config"
	"github.com/Thakshinss/bds-nagercoil-ride/internal/domain"
	"github.com/Thakshinss/bds-nagercoil-ride/internal/domain/models"
	"github.com/Thakshinss/bds-nagercoil-ride/internal/utils"

	"github.com/google/uuid"
)

// FareRepository wraps DB access for the fares table. The API speaks
// "from"/"to"; only this file knows the columns are from_location/to_location.
type FareRepository struct {
	DB *sql.DB
}

func (r FareRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const fareSelect = `
	SELECT id, from_location, to_location, vehicle_type, price, created_at, updated_at
	FROM fares
`

func scanFare(scan func(dest ...any) error) (models.Fare, error) {
	var f models.Fare
	var createdAt, updatedAt sql.NullTime
	if err := scan(&f.ID, &f.From, &f.To, &f.VehicleType, &f.Price, &createdAt, &updatedAt); err != nil {
		return models.Fare{}, err
	}
	if createdAt.Valid {
		f.CreatedAt = utils.FormatDateTime(createdAt.Time)
	}
	if updatedAt.Valid {
		f.UpdatedAt = utils.FormatDateTime(updatedAt.Time)
	}
	return f, nil
}

// ListAll returns every fare in creation order.
func (r FareRepository) ListAll() ([]models.Fare, error) {
	rows, err := r.db().Query(fareSelect + ` ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Fare{}
	for rows.Next() {
		f, err := scanFare(rows.Scan)
		if err != nil {
			return nil, err
		}
		list = append(list, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (r FareRepository) GetByID(id string) (models.Fare, error) {
	f, err := scanFare(r.db().QueryRow(fareSelect+` WHERE id = ?`, id).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Fare{}, domain.NotFoundError{Resource: "fare", Err: err}
	}
	return f, err
}

// Create inserts a fare and re-selects the row so the server-assigned id and
// timestamps round-trip to the caller.
func (r FareRepository) Create(f models.Fare) (models.Fare, error) {
	id := uuid.NewString()
	_, err := r.db().Exec(`
		INSERT INTO fares (id, from_location, to_location, vehicle_type, price, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, NOW(), NOW())
	`, id, f.From, f.To, f.VehicleType, f.Price)
	if err != nil {
		return models.Fare{}, err
	}
	return r.GetByID(id)
}

// Update replaces all mutable fields of the fare.
func (r FareRepository) Update(id string, f models.Fare) (models.Fare, error) {
	res, err := r.db().Exec(`
		UPDATE fares
		SET from_location = ?, to_location = ?, vehicle_type = ?, price = ?, updated_at = NOW()
		WHERE id = ?
	`, f.From, f.To, f.VehicleType, f.Price, id)
	if err != nil {
		return models.Fare{}, err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return models.Fare{}, domain.NotFoundError{Resource: "fare"}
	}
	return r.GetByID(id)
}

func (r FareRepository) Delete(id string) error {
	res, err := r.db().Exec(`DELETE FROM fares WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.NotFoundError{Resource: "fare"}
	}
	return nil
}
