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

type farePayload struct {
	From        string `json:"from" binding:"required"`
	To          string `json:"to" binding:"required"`
	VehicleType string `json:"vehicleType" binding:"required"`
	Price       string `json:"price" binding:"required"`
}

func (p farePayload) toModel() models.Fare {
	return models.Fare{
		From:        p.From,
		To:          p.To,
		VehicleType: p.VehicleType,
		Price:       p.Price,
	}
}

func fareService(c *gin.Context) services.FareService {
	return services.FareService{
		Repo:      repositories.FareRepository{},
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/fares — public price table. Read failures degrade to an empty list
// so the visitor sees an empty table, never an error page.
func GetFares(c *gin.Context) {
	list, err := fareService(c).ListAll()
	if err != nil {
		utils.LogEvent(middleware.GetRequestID(c), "fare", "list_error", err.Error())
		c.JSON(http.StatusOK, []models.Fare{})
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/admin_b_d_s/fares — admin list, errors surfaced.
func AdminGetFares(c *gin.Context) {
	list, err := fareService(c).ListAll()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /api/admin_b_d_s/fares
func CreateFare(c *gin.Context) {
	var payload farePayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	created, err := fareService(c).Create(payload.toModel())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /api/admin_b_d_s/fares/:id
func UpdateFare(c *gin.Context) {
	id := c.Param("id")
	var payload farePayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	updated, err := fareService(c).Update(id, payload.toModel())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /api/admin_b_d_s/fares/:id
func DeleteFare(c *gin.Context) {
	if err := fareService(c).Delete(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "fare deleted"})
}
