package services

import (
	"github.com/Thakshinss/bds-nagercoil-ride/internal/domain"
	"github.com/Thakshinss/bds-nagercoil-ride/internal/domain/models"
	"github.com/Thakshinss/bds-nagercoil-ride/internal/repositories"
	"github.com/Thakshinss/bds-nagercoil-ride/internal/utils"
)

// FareService owns validation and persistence of price-table rows. Duplicate
// (from, to, vehicleType) rows are allowed; the fare table is an editorial
// surface, not a rate engine.
type FareService struct {
	Repo      repositories.FareRepository
	RequestID string
}

func (s FareService) ListAll() ([]models.Fare, error) {
	return s.Repo.ListAll()
}

func validateFare(f models.Fare) (models.Fare, error) {
	f.From = utils.NormalizeSpace(f.From)
	f.To = utils.NormalizeSpace(f.To)
	f.VehicleType = utils.TrimOrEmpty(f.VehicleType)
	f.Price = utils.TrimOrEmpty(f.Price)

	switch {
	case f.From == "":
		return f, domain.ValidationError{Field: "from", Msg: "is required"}
	case f.To == "":
		return f, domain.ValidationError{Field: "to", Msg: "is required"}
	case f.VehicleType == "":
		return f, domain.ValidationError{Field: "vehicleType", Msg: "is required"}
	case f.Price == "":
		return f, domain.ValidationError{Field: "price", Msg: "is required"}
	}
	return f, nil
}

func (s FareService) Create(f models.Fare) (models.Fare, error) {
	f, err := validateFare(f)
	if err != nil {
		return models.Fare{}, err
	}

	created, err := s.Repo.Create(f)
	if err != nil {
		utils.LogEvent(s.RequestID, "fare", "create_error", err.Error())
		return models.Fare{}, err
	}
	utils.LogEvent(s.RequestID, "fare", "create", "id="+created.ID)
	return created, nil
}

func (s FareService) Update(id string, f models.Fare) (models.Fare, error) {
	f, err := validateFare(f)
	if err != nil {
		return models.Fare{}, err
	}

	updated, err := s.Repo.Update(id, f)
	if err != nil {
		utils.LogEvent(s.RequestID, "fare", "update_error", err.Error())
		return models.Fare{}, err
	}
	utils.LogEvent(s.RequestID, "fare", "update", "id="+id)
	return updated, nil
}

func (s FareService) Delete(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		utils.LogEvent(s.RequestID, "fare", "delete_error", err.Error())
		return err
	}
	utils.LogEvent(s.RequestID, "fare", "delete", "id="+id)
	return nil
}
