package services

import (
	"github.com/Thakshinss/bds-nagercoil-ride/internal/domain"
	"github.com/Thakshinss/bds-nagercoil-ride/internal/domain/models"
	"github.com/Thakshinss/bds-nagercoil-ride/internal/repositories"
	"github.com/Thakshinss/bds-nagercoil-ride/internal/utils"
)

// TourPackageService validates and persists tour packages. Blank highlight and
// inclusion rows submitted by the entry form are dropped before persistence.
type TourPackageService struct {
	Repo      repositories.TourPackageRepository
	RequestID string
}

func (s TourPackageService) ListAll() ([]models.TourPackage, error) {
	return s.Repo.ListAll()
}

func sanitizeTourPackage(p models.TourPackage) (models.TourPackage, error) {
	p.Title = utils.TrimOrEmpty(p.Title)
	p.Description = utils.TrimOrEmpty(p.Description)
	p.Duration = utils.TrimOrEmpty(p.Duration)
	p.Destinations = utils.TrimOrEmpty(p.Destinations)
	p.Price = utils.TrimOrEmpty(p.Price)
	p.Image = utils.TrimOrEmpty(p.Image)
	p.Highlights = utils.StripBlanks(p.Highlights)
	p.Inclusions = utils.StripBlanks(p.Inclusions)

	switch {
	case p.Title == "":
		return p, domain.ValidationError{Field: "title", Msg: "is required"}
	case p.Description == "":
		return p, domain.ValidationError{Field: "description", Msg: "is required"}
	case p.Price == "":
		return p, domain.ValidationError{Field: "price", Msg: "is required"}
	}
	return p, nil
}

func (s TourPackageService) Create(p models.TourPackage) (models.TourPackage, error) {
	p, err := sanitizeTourPackage(p)
	if err != nil {
		return models.TourPackage{}, err
	}

	created, err := s.Repo.Create(p)
	if err != nil {
		utils.LogEvent(s.RequestID, "tour_package", "create_error", err.Error())
		return models.TourPackage{}, err
	}
	utils.LogEvent(s.RequestID, "tour_package", "create", "id="+created.ID)
	return created, nil
}

func (s TourPackageService) Update(id string, p models.TourPackage) (models.TourPackage, error) {
	p, err := sanitizeTourPackage(p)
	if err != nil {
		return models.TourPackage{}, err
	}

	updated, err := s.Repo.Update(id, p)
	if err != nil {
		utils.LogEvent(s.RequestID, "tour_package", "update_error", err.Error())
		return models.TourPackage{}, err
	}
	utils.LogEvent(s.RequestID, "tour_package", "update", "id="+id)
	return updated, nil
}

func (s TourPackageService) Delete(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		utils.LogEvent(s.RequestID, "tour_package", "delete_error", err.Error())
		return err
	}
	utils.LogEvent(s.RequestID, "tour_package", "delete", "id="+id)
	return nil
}
