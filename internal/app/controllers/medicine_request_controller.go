package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campushub/portal/internal/app/models/dto"
	"github.com/campushub/portal/internal/app/services"
	"github.com/campushub/portal/internal/middleware"
)

// MedicineRequestController handles student medicine requests.
type MedicineRequestController struct {
	requestService *services.MedicineRequestService
}

// NewMedicineRequestController creates a new MedicineRequestController
func NewMedicineRequestController(requestService *services.MedicineRequestService) *MedicineRequestController {
	return &MedicineRequestController{
		requestService: requestService,
	}
}

// Create files a medicine request
// @Summary Request a medicine
// @Tags medicine-requests
// @Security BearerAuth
// @Param request body dto.CreateMedicineRequestRequest true "Request"
// @Success 201 {object} dto.APIResponse{data=models.MedicineRequest}
// @Router /medicine-requests [post]
func (c *MedicineRequestController) Create(ctx *gin.Context) {
	session, ok := sessionOrAbort(ctx)
	if !ok {
		return
	}

	var req dto.CreateMedicineRequestRequest
	if !bindJSONOrAbort(ctx, &req) {
		return
	}

	request, err := c.requestService.Create(session, req.MedicineType, req.Details)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      request,
		Timestamp: time.Now(),
	})
}

// List returns the requests visible to the caller's scope
// @Summary List medicine requests
// @Tags medicine-requests
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.MedicineRequest}
// @Router /medicine-requests [get]
func (c *MedicineRequestController) List(ctx *gin.Context) {
	session, ok := sessionOrAbort(ctx)
	if !ok {
		return
	}

	requests, err := c.requestService.List(session)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      requests,
		Timestamp: time.Now(),
	})
}

// Resolve records the warden's decision. Fulfillment decrements stock and is
// refused outright when the medicine is missing or already at zero.
// @Summary Resolve a medicine request
// @Tags medicine-requests
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param request body dto.ResolveMedicineRequestRequest true "Decision"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 409 {object} dto.ErrorResponse "Stock is already zero"
// @Router /medicine-requests/{id}/resolve [put]
func (c *MedicineRequestController) Resolve(ctx *gin.Context) {
	session, ok := sessionOrAbort(ctx)
	if !ok {
		return
	}

	id, ok := idParamOrAbort(ctx)
	if !ok {
		return
	}

	var req dto.ResolveMedicineRequestRequest
	if !bindJSONOrAbort(ctx, &req) {
		return
	}

	if err := c.requestService.Resolve(session, id, req.Status, req.Note); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Request updated"},
		Timestamp: time.Now(),
	})
}
