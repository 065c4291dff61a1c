package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campushub/portal/internal/app/models/dto"
	"github.com/campushub/portal/internal/app/services"
	"github.com/campushub/portal/internal/middleware"
)

// MedicineController handles clinic stock operations.
type MedicineController struct {
	medicineService *services.MedicineService
}

// NewMedicineController creates a new MedicineController
func NewMedicineController(medicineService *services.MedicineService) *MedicineController {
	return &MedicineController{
		medicineService: medicineService,
	}
}

// List returns the stock, optionally filtered
// @Summary List clinic stock
// @Tags medicines
// @Security BearerAuth
// @Param q query string false "Name substring filter"
// @Param category query string false "Category filter"
// @Success 200 {object} dto.APIResponse{data=[]models.Medicine}
// @Router /medicines [get]
func (c *MedicineController) List(ctx *gin.Context) {
	meds, err := c.medicineService.List(ctx.Query("q"), ctx.Query("category"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      meds,
		Timestamp: time.Now(),
	})
}

// Alerts returns the expired/near-expiry/low-stock view
// @Summary Stock alerts
// @Tags medicines
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=services.StockAlerts}
// @Router /medicines/alerts [get]
func (c *MedicineController) Alerts(ctx *gin.Context) {
	alerts, err := c.medicineService.Alerts()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      alerts,
		Timestamp: time.Now(),
	})
}

// Upsert adds or replaces a medicine by name
// @Summary Add or update a medicine
// @Tags medicines
// @Security BearerAuth
// @Param request body dto.UpsertMedicineRequest true "Medicine"
// @Success 200 {object} dto.APIResponse{data=models.Medicine}
// @Router /medicines [put]
func (c *MedicineController) Upsert(ctx *gin.Context) {
	var req dto.UpsertMedicineRequest
	if !bindJSONOrAbort(ctx, &req) {
		return
	}

	med, err := c.medicineService.Upsert(req.Name, req.Category, req.StockCount, req.ManufactureDate, req.ExpiryDate)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      med,
		Timestamp: time.Now(),
	})
}

// Delete removes a medicine from stock
// @Summary Delete a medicine
// @Tags medicines
// @Security BearerAuth
// @Param name path string true "Medicine name"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /medicines/{name} [delete]
func (c *MedicineController) Delete(ctx *gin.Context) {
	if err := c.medicineService.Delete(ctx.Param("name")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Medicine removed"},
		Timestamp: time.Now(),
	})
}
