package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campushub/portal/internal/app/models/dto"
	"github.com/campushub/portal/internal/app/services"
	"github.com/campushub/portal/internal/middleware"
)

// LeaveController handles leave applications.
type LeaveController struct {
	leaveService *services.LeaveService
}

// NewLeaveController creates a new LeaveController
func NewLeaveController(leaveService *services.LeaveService) *LeaveController {
	return &LeaveController{
		leaveService: leaveService,
	}
}

// Create files a leave application
// @Summary Apply for leave
// @Tags leave
// @Security BearerAuth
// @Param request body dto.CreateLeaveRequest true "Application"
// @Success 201 {object} dto.APIResponse{data=models.LeaveRequest}
// @Router /leaves [post]
func (c *LeaveController) Create(ctx *gin.Context) {
	session, ok := sessionOrAbort(ctx)
	if !ok {
		return
	}

	var req dto.CreateLeaveRequest
	if !bindJSONOrAbort(ctx, &req) {
		return
	}

	leave, err := c.leaveService.Create(session, req.Reason, req.FromDate, req.ToDate)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      leave,
		Timestamp: time.Now(),
	})
}

// List returns the applications visible to the caller's scope
// @Summary List leave applications
// @Tags leave
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.LeaveRequest}
// @Router /leaves [get]
func (c *LeaveController) List(ctx *gin.Context) {
	session, ok := sessionOrAbort(ctx)
	if !ok {
		return
	}

	leaves, err := c.leaveService.List(session)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      leaves,
		Timestamp: time.Now(),
	})
}

// Resolve records the warden's decision
// @Summary Resolve a leave application
// @Tags leave
// @Security BearerAuth
// @Param id path int true "Leave ID"
// @Param request body dto.ResolveLeaveRequest true "Decision"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /leaves/{id}/resolve [put]
func (c *LeaveController) Resolve(ctx *gin.Context) {
	session, ok := sessionOrAbort(ctx)
	if !ok {
		return
	}

	id, ok := idParamOrAbort(ctx)
	if !ok {
		return
	}

	var req dto.ResolveLeaveRequest
	if !bindJSONOrAbort(ctx, &req) {
		return
	}

	if err := c.leaveService.Resolve(session, id, req.Status); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Leave updated"},
		Timestamp: time.Now(),
	})
}

// Cancel withdraws the caller's own pending application
// @Summary Cancel a leave application
// @Tags leave
// @Security BearerAuth
// @Param id path int true "Leave ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Not the caller's application"
// @Router /leaves/{id}/cancel [put]
func (c *LeaveController) Cancel(ctx *gin.Context) {
	session, ok := sessionOrAbort(ctx)
	if !ok {
		return
	}

	id, ok := idParamOrAbort(ctx)
	if !ok {
		return
	}

	if err := c.leaveService.Cancel(session, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Leave cancelled"},
		Timestamp: time.Now(),
	})
}
