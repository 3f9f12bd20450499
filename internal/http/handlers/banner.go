package handlers

import (
	"io"
	"net/http"

	"github.com/Thakshinss/bds-nagercoil-ride/internal/domain/models"
	"github.com/Thakshinss/bds-nagercoil-ride/internal/http/middleware"
	"github.com/Thakshinss/bds-nagercoil-ride/internal/repositories"
	"github.com/Thakshinss/bds-nagercoil-ride/internal/services"
	"github.com/Thakshinss/bds-nagercoil-ride/internal/utils"

	"github.com/gin-gonic/gin"
)

// DefaultBannerText is shown when the store is unreachable so the public
// scroller never renders empty.
const DefaultBannerText = "Welcome to BDS Nagercoil Ride - Safe and reliable taxi service across Kanyakumari district"

type bannerPayload struct {
	Text         string `json:"text" binding:"required"`
	IsActive     *bool  `json:"is_active"`
	DisplayOrder int    `json:"display_order"`
}

func (p bannerPayload) toModel() models.BannerContent {
	active := true
	if p.IsActive != nil {
		active = *p.IsActive
	}
	return models.BannerContent{
		Text:         p.Text,
		IsActive:     active,
		DisplayOrder: p.DisplayOrder,
	}
}

func bannerService(c *gin.Context) services.BannerService {
	return services.BannerService{
		Repo:      repositories.BannerRepository{},
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/banner — public scroller: active entries in display order, with a
// hardcoded fallback entry when the fetch fails.
func GetActiveBanner(c *gin.Context) {
	list, err := bannerService(c).ListActive()
	if err != nil {
		utils.LogEvent(middleware.GetRequestID(c), "banner", "list_error", err.Error())
		c.JSON(http.StatusOK, []models.BannerContent{
			{Text: DefaultBannerText, IsActive: true, DisplayOrder: 0},
		})
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/admin_b_d_s/banner — all entries, inactive included.
func AdminGetBanner(c *gin.Context) {
	list, err := bannerService(c).ListAll()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /api/admin_b_d_s/banner
func CreateBanner(c *gin.Context) {
	var payload bannerPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	created, err := bannerService(c).Create(payload.toModel())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PATCH /api/admin_b_d_s/banner/:id — partial update by key presence, so the
// raw body goes through untouched.
func UpdateBanner(c *gin.Context) {
	id := c.Param("id")

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "failed to read body", err)
		return
	}

	updated, err := bannerService(c).UpdatePartial(id, raw)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /api/admin_b_d_s/banner/:id
func DeleteBanner(c *gin.Context) {
	if err := bannerService(c).Delete(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "banner content deleted"})
}
