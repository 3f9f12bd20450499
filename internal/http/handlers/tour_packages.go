package handlers

import (
	"net/http"

	"github.com/Thakshinss/bds-nagercoil-ride/internal/domain/models"
	"github.com/Thakshinss/bds-nagercoil-ride/internal/http/middleware"
	"github.com/Thakshinss/bds-nagercoil-ride/internal/repositories"
	"github.com/Thakshinss/bds-nagercoil-ride/internal/services"
	"github.com/Thakshinss/bds-nagercoil-ride/internal/utils"

	"github.com/gin-gonic/gin"
)

type tourPackagePayload struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Duration     string   `json:"duration"`
	Destinations string   `json:"destinations"`
	Price        string   `json:"price" binding:"required"`
	Image        string   `json:"image"`
	Highlights   []string `json:"highlights"`
	Inclusions   []string `json:"inclusions"`
}

func (p tourPackagePayload) toModel() models.TourPackage {
	return models.TourPackage{
		Title:        p.Title,
		Description:  p.Description,
		Duration:     p.Duration,
		Destinations: p.Destinations,
		Price:        p.Price,
		Image:        p.Image,
		Highlights:   p.Highlights,
		Inclusions:   p.Inclusions,
	}
}

func tourPackageService(c *gin.Context) services.TourPackageService {
	return services.TourPackageService{
		Repo:      repositories.TourPackageRepository{},
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/tour-packages — public gallery; failures degrade to an empty list.
func GetTourPackages(c *gin.Context) {
	list, err := tourPackageService(c).ListAll()
	if err != nil {
		utils.LogEvent(middleware.GetRequestID(c), "tour_package", "list_error", err.Error())
		c.JSON(http.StatusOK, []models.TourPackage{})
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/admin_b_d_s/tour-packages
func AdminGetTourPackages(c *gin.Context) {
	list, err := tourPackageService(c).ListAll()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /api/admin_b_d_s/tour-packages
func CreateTourPackage(c *gin.Context) {
	var payload tourPackagePayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	created, err := tourPackageService(c).Create(payload.toModel())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /api/admin_b_d_s/tour-packages/:id
func UpdateTourPackage(c *gin.Context) {
	id := c.Param("id")
	var payload tourPackagePayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	updated, err := tourPackageService(c).Update(id, payload.toModel())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /api/admin_b_d_s/tour-packages/:id
func DeleteTourPackage(c *gin.Context) {
	if err := tourPackageService(c).Delete(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tour package deleted"})
}
