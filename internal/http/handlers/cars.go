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

type carPayload struct {
	Name        string   `json:"name" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Type        string   `json:"type" binding:"required"`
	Price       string   `json:"price" binding:"required"`
	Features    []string `json:"features"`
	Rating      float64  `json:"rating" binding:"required"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	IsActive    *bool    `json:"is_active"`
}

func (p carPayload) toModel() models.Car {
	active := true
	if p.IsActive != nil {
		active = *p.IsActive
	}
	return models.Car{
		Name:        p.Name,
		Category:    p.Category,
		Type:        p.Type,
		Price:       p.Price,
		Features:    p.Features,
		Rating:      p.Rating,
		Description: p.Description,
		Image:       p.Image,
		IsActive:    active,
	}
}

func carService(c *gin.Context) services.CarService {
	return services.CarService{
		Repo:      repositories.CarRepository{},
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/cars — public fleet page, active cars only. Failures render as an
// empty fleet rather than an error.
func GetActiveCars(c *gin.Context) {
	list, err := carService(c).ListActive()
	if err != nil {
		utils.LogEvent(middleware.GetRequestID(c), "car", "list_error", err.Error())
		c.JSON(http.StatusOK, []models.Car{})
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/admin_b_d_s/cars — admin list includes inactive rows.
func AdminGetCars(c *gin.Context) {
	list, err := carService(c).ListAll()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /api/admin_b_d_s/cars
func CreateCar(c *gin.Context) {
	var payload carPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	created, err := carService(c).Create(payload.toModel())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /api/admin_b_d_s/cars/:id
func UpdateCar(c *gin.Context) {
	id := c.Param("id")
	var payload carPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	updated, err := carService(c).Update(id, payload.toModel())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /api/admin_b_d_s/cars/:id
func DeleteCar(c *gin.Context) {
	if err := carService(c).Delete(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "car deleted"})
}
