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

// TourPackageRepository wraps DB access for tour_packages. Highlights and
// inclusions persist as ordered JSON arrays.
type TourPackageRepository struct {
	DB *sql.DB
}

func (r TourPackageRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const tourPackageSelect = `
	SELECT id, title, description, duration, destinations, price, image,
	       highlights, inclusions, created_at, updated_at
	FROM tour_packages
`

func scanTourPackage(scan func(dest ...any) error) (models.TourPackage, error) {
	var p models.TourPackage
	var highlights, inclusions []byte
	var createdAt, updatedAt sql.NullTime
	err := scan(&p.ID, &p.Title, &p.Description, &p.Duration, &p.Destinations,
		&p.Price, &p.Image, &highlights, &inclusions, &createdAt, &updatedAt)
	if err != nil {
		return models.TourPackage{}, err
	}
	p.Highlights = intdb.UnmarshalStringList(highlights)
	p.Inclusions = intdb.UnmarshalStringList(inclusions)
	if createdAt.Valid {
		p.CreatedAt = utils.FormatDateTime(createdAt.Time)
	}
	if updatedAt.Valid {
		p.UpdatedAt = utils.FormatDateTime(updatedAt.Time)
	}
	return p, nil
}

// ListAll returns every tour package in creation order.
func (r TourPackageRepository) ListAll() ([]models.TourPackage, error) {
	rows, err := r.db().Query(tourPackageSelect + ` ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.TourPackage{}
	for rows.Next() {
		p, err := scanTourPackage(rows.Scan)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (r TourPackageRepository) GetByID(id string) (models.TourPackage, error) {
	p, err := scanTourPackage(r.db().QueryRow(tourPackageSelect+` WHERE id = ?`, id).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.TourPackage{}, domain.NotFoundError{Resource: "tour package", Err: err}
	}
	return p, err
}

func (r TourPackageRepository) Create(p models.TourPackage) (models.TourPackage, error) {
	id := uuid.NewString()
	_, err := r.db().Exec(`
		INSERT INTO tour_packages
			(id, title, description, duration, destinations, price, image,
			 highlights, inclusions, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
	`, id, p.Title, p.Description, p.Duration, p.Destinations, p.Price, p.Image,
		intdb.MarshalStringList(p.Highlights), intdb.MarshalStringList(p.Inclusions))
	if err != nil {
		return models.TourPackage{}, err
	}
	return r.GetByID(id)
}

func (r TourPackageRepository) Update(id string, p models.TourPackage) (models.TourPackage, error) {
	res, err := r.db().Exec(`
		UPDATE tour_packages
		SET title = ?, description = ?, duration = ?, destinations = ?, price = ?,
		    image = ?, highlights = ?, inclusions = ?, updated_at = NOW()
		WHERE id = ?
	`, p.Title, p.Description, p.Duration, p.Destinations, p.Price, p.Image,
		intdb.MarshalStringList(p.Highlights), intdb.MarshalStringList(p.Inclusions), id)
	if err != nil {
		return models.TourPackage{}, err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return models.TourPackage{}, domain.NotFoundError{Resource: "tour package"}
	}
	return r.GetByID(id)
}

func (r TourPackageRepository) Delete(id string) error {
	res, err := r.db().Exec(`DELETE FROM tour_packages WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.NotFoundError{Resource: "tour package"}
	}
	return nil
}
