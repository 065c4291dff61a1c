package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campushub/portal/internal/app/models/dto"
	"github.com/campushub/portal/internal/app/services"
	"github.com/campushub/portal/internal/middleware"
)

// ParkingController handles parking slot requests.
type ParkingController struct {
	parkingService *services.ParkingService
}

// NewParkingController creates a new ParkingController
func NewParkingController(parkingService *services.ParkingService) *ParkingController {
	return &ParkingController{
		parkingService: parkingService,
	}
}

// Create files a parking request
// @Summary Request a parking slot
// @Tags parking
// @Security BearerAuth
// @Param request body dto.CreateParkingRequest true "Request"
// @Success 201 {object} dto.APIResponse{data=models.ParkingRequest}
// @Router /parking [post]
func (c *ParkingController) Create(ctx *gin.Context) {
	session, ok := sessionOrAbort(ctx)
	if !ok {
		return
	}

	var req dto.CreateParkingRequest
	if !bindJSONOrAbort(ctx, &req) {
		return
	}

	request, err := c.parkingService.Create(session, req.VehicleNo)
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
// @Summary List parking requests
// @Tags parking
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.ParkingRequest}
// @Router /parking [get]
func (c *ParkingController) List(ctx *gin.Context) {
	session, ok := sessionOrAbort(ctx)
	if !ok {
		return
	}

	requests, err := c.parkingService.List(session)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      requests,
		Timestamp: time.Now(),
	})
}

// Resolve records the warden's decision; acceptance assigns the slot label
// in the same row update
// @Summary Resolve a parking request
// @Tags parking
// @Security BearerAuth
// @Param id path int true "Parking request ID"
// @Param request body dto.ResolveParkingRequest true "Decision"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /parking/{id}/resolve [put]
func (c *ParkingController) Resolve(ctx *gin.Context) {
	session, ok := sessionOrAbort(ctx)
	if !ok {
		return
	}

	id, ok := idParamOrAbort(ctx)
	if !ok {
		return
	}

	var req dto.ResolveParkingRequest
	if !bindJSONOrAbort(ctx, &req) {
		return
	}

	if err := c.parkingService.Resolve(session, id, req.Slot, req.Status); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Parking request updated"},
		Timestamp: time.Now(),
	})
}
