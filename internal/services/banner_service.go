package services

import (
	"github.com/Thakshinss/bds-nagercoil-ride/internal/domain"
	"github.com/Thakshinss/bds-nagercoil-ride/internal/domain/models"
	"github.com/Thakshinss/bds-nagercoil-ride/internal/repositories"
	"github.com/Thakshinss/bds-nagercoil-ride/internal/utils"
)

// BannerService manages the scrolling promo banner entries.
type BannerService struct {
	Repo      repositories.BannerRepository
	RequestID string
}

func (s BannerService) ListAll() ([]models.BannerContent, error) {
	return s.Repo.ListAll()
}

func (s BannerService) ListActive() ([]models.BannerContent, error) {
	return s.Repo.ListActive()
}

func (s BannerService) Create(b models.BannerContent) (models.BannerContent, error) {
	b.Text = utils.TrimOrEmpty(b.Text)
	if b.Text == "" {
		return models.BannerContent{}, domain.ValidationError{Field: "text", Msg: "is required"}
	}
	if b.DisplayOrder < 0 {
		return models.BannerContent{}, domain.ValidationError{Field: "display_order", Msg: "must not be negative"}
	}

	created, err := s.Repo.Create(b)
	if err != nil {
		utils.LogEvent(s.RequestID, "banner", "create_error", err.Error())
		return models.BannerContent{}, err
	}
	utils.LogEvent(s.RequestID, "banner", "create", "id="+created.ID)
	return created, nil
}

// UpdatePartial forwards the raw payload so key-presence semantics survive the
// trip through the handler.
func (s BannerService) UpdatePartial(id string, rawJSON []byte) (models.BannerContent, error) {
	if len(rawJSON) == 0 {
		return models.BannerContent{}, domain.ValidationError{Msg: "empty payload"}
	}

	updated, err := s.Repo.UpdatePartial(id, rawJSON)
	if err != nil {
		utils.LogEvent(s.RequestID, "banner", "update_error", err.Error())
		return models.BannerContent{}, err
	}
	utils.LogEvent(s.RequestID, "banner", "update", "id="+id)
	return updated, nil
}

func (s BannerService) Delete(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		utils.LogEvent(s.RequestID, "banner", "delete_error", err.Error())
		return err
	}
	utils.LogEvent(s.RequestID, "banner", "delete", "id="+id)
	return nil
}
