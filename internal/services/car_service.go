package services

import (
	"fmt"

	"github.com/Thakshinss/bds-nagercoil-ride/internal/domain"
	"github.com/Thakshinss/bds-nagercoil-ride/internal/domain/models"
	"github.com/Thakshinss/bds-nagercoil-ride/internal/repositories"
	"github.com/Thakshinss/bds-nagercoil-ride/internal/utils"
)

// CarService validates and persists fleet entries.
type CarService struct {
	Repo      repositories.CarRepository
	RequestID string
}

func (s CarService) ListAll() ([]models.Car, error) {
	return s.Repo.ListAll()
}

func (s CarService) ListActive() ([]models.Car, error) {
	return s.Repo.ListActive()
}

func validateCar(c models.Car) (models.Car, error) {
	c.Name = utils.TrimOrEmpty(c.Name)
	c.Category = utils.TrimOrEmpty(c.Category)
	c.Type = utils.TrimOrEmpty(c.Type)
	c.Price = utils.TrimOrEmpty(c.Price)
	c.Description = utils.TrimOrEmpty(c.Description)
	c.Image = utils.TrimOrEmpty(c.Image)
	c.Features = utils.StripBlanks(c.Features)

	switch {
	case c.Name == "":
		return c, domain.ValidationError{Field: "name", Msg: "is required"}
	case !models.IsValidCarCategory(c.Category):
		return c, domain.ValidationError{Field: "category", Msg: "must be one of Economy, Sedan, SUV, Luxury"}
	case !models.IsValidCarType(c.Type):
		return c, domain.ValidationError{Field: "type", Msg: "must be one of Hatchback, Sedan, SUV, Van, Coach"}
	case c.Price == "":
		return c, domain.ValidationError{Field: "price", Msg: "is required"}
	case c.Rating < models.CarRatingMin || c.Rating > models.CarRatingMax:
		return c, domain.ValidationError{Field: "rating",
			Msg: fmt.Sprintf("must be between %.1f and %.1f", models.CarRatingMin, models.CarRatingMax)}
	}
	return c, nil
}

func (s CarService) Create(c models.Car) (models.Car, error) {
	c, err := validateCar(c)
	if err != nil {
		return models.Car{}, err
	}

	created, err := s.Repo.Create(c)
	if err != nil {
		utils.LogEvent(s.RequestID, "car", "create_error", err.Error())
		return models.Car{}, err
	}
	utils.LogEvent(s.RequestID, "car", "create", "id="+created.ID)
	return created, nil
}

func (s CarService) Update(id string, c models.Car) (models.Car, error) {
	c, err := validateCar(c)
	if err != nil {
		return models.Car{}, err
	}

	updated, err := s.Repo.Update(id, c)
	if err != nil {
		utils.LogEvent(s.RequestID, "car", "update_error", err.Error())
		return models.Car{}, err
	}
	utils.LogEvent(s.RequestID, "car", "update", "id="+id)
	return updated, nil
}

func (s CarService) Delete(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		utils.LogEvent(s.RequestID, "car", "delete_error", err.Error())
		return err
	}
	utils.LogEvent(s.RequestID, "car", "delete", "id="+id)
	return nil
}
