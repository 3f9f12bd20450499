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

// CarRepository wraps DB access for the fleet listing. The active flag gates
// public visibility only; the admin list always sees every row.
type CarRepository struct {
	DB *sql.DB
}

func (r CarRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const carSelect = `
	SELECT id, name, category, type, price, features, rating, description,
	       COALESCE(image, ''), is_active, created_at, updated_at
	FROM cars
`

const carOrder = ` ORDER BY category ASC, name ASC`

func scanCar(scan func(dest ...any) error) (models.Car, error) {
	var c models.Car
	var features []byte
	var createdAt, updatedAt sql.NullTime
	err := scan(&c.ID, &c.Name, &c.Category, &c.Type, &c.Price, &features,
		&c.Rating, &c.Description, &c.Image, &c.IsActive, &createdAt, &updatedAt)
	if err != nil {
		return models.Car{}, err
	}
	c.Features = intdb.UnmarshalStringList(features)
	if createdAt.Valid {
		c.CreatedAt = utils.FormatDateTime(createdAt.Time)
	}
	if updatedAt.Valid {
		c.UpdatedAt = utils.FormatDateTime(updatedAt.Time)
	}
	return c, nil
}

func (r CarRepository) list(query string, args ...any) ([]models.Car, error) {
	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Car{}
	for rows.Next() {
		c, err := scanCar(rows.Scan)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

// ListAll returns active and inactive cars, sorted by category then name.
func (r CarRepository) ListAll() ([]models.Car, error) {
	return r.list(carSelect + carOrder)
}

// ListActive returns only the cars shown on the public fleet page.
func (r CarRepository) ListActive() ([]models.Car, error) {
	return r.list(carSelect+` WHERE is_active = ?`+carOrder, true)
}

func (r CarRepository) GetByID(id string) (models.Car, error) {
	c, err := scanCar(r.db().QueryRow(carSelect+` WHERE id = ?`, id).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Car{}, domain.NotFoundError{Resource: "car", Err: err}
	}
	return c, err
}

func (r CarRepository) Create(c models.Car) (models.Car, error) {
	id := uuid.NewString()
	_, err := r.db().Exec(`
		INSERT INTO cars
			(id, name, category, type, price, features, rating, description,
			 image, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
	`, id, c.Name, c.Category, c.Type, c.Price, intdb.MarshalStringList(c.Features),
		c.Rating, c.Description, intdb.NullIfEmpty(c.Image), c.IsActive)
	if err != nil {
		return models.Car{}, err
	}
	return r.GetByID(id)
}

func (r CarRepository) Update(id string, c models.Car) (models.Car, error) {
	res, err := r.db().Exec(`
		UPDATE cars
		SET name = ?, category = ?, type = ?, price = ?, features = ?, rating = ?,
		    description = ?, image = ?, is_active = ?, updated_at = NOW()
		WHERE id = ?
	`, c.Name, c.Category, c.Type, c.Price, intdb.MarshalStringList(c.Features),
		c.Rating, c.Description, intdb.NullIfEmpty(c.Image), c.IsActive, id)
	if err != nil {
		return models.Car{}, err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return models.Car{}, domain.NotFoundError{Resource: "car"}
	}
	return r.GetByID(id)
}

func (r CarRepository) Delete(id string) error {
	res, err := r.db().Exec(`DELETE FROM cars WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.NotFoundError{Resource: "car"}
	}
	return nil
}
