package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campushub/portal/internal/app/models/dto"
	"github.com/campushub/portal/internal/app/services"
	"github.com/campushub/portal/internal/middleware"
)

// ComplaintController handles hostel complaint operations.
type ComplaintController struct {
	complaintService *services.ComplaintService
}

// NewComplaintController creates a new ComplaintController
func NewComplaintController(complaintService *services.ComplaintService) *ComplaintController {
	return &ComplaintController{
		complaintService: complaintService,
	}
}

// Create files a complaint
// @Summary File a complaint
// @Tags complaints
// @Security BearerAuth
// @Param request body dto.CreateComplaintRequest true "Complaint"
// @Success 201 {object} dto.APIResponse{data=models.Complaint}
// @Router /complaints [post]
func (c *ComplaintController) Create(ctx *gin.Context) {
	session, ok := sessionOrAbort(ctx)
	if !ok {
		return
	}

	var req dto.CreateComplaintRequest
	if !bindJSONOrAbort(ctx, &req) {
		return
	}

	complaint, err := c.complaintService.Create(session, req.Target, req.Category, req.Description)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      complaint,
		Timestamp: time.Now(),
	})
}

// List returns the complaints visible to the caller's scope
// @Summary List complaints
// @Tags complaints
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Complaint}
// @Router /complaints [get]
func (c *ComplaintController) List(ctx *gin.Context) {
	session, ok := sessionOrAbort(ctx)
	if !ok {
		return
	}

	complaints, err := c.complaintService.List(session)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      complaints,
		Timestamp: time.Now(),
	})
}

// Resolve records a principal's or warden's decision
// @Summary Resolve a complaint
// @Tags complaints
// @Security BearerAuth
// @Param id path int true "Complaint ID"
// @Param request body dto.ResolveComplaintRequest true "Decision"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /complaints/{id}/resolve [put]
func (c *ComplaintController) Resolve(ctx *gin.Context) {
	session, ok := sessionOrAbort(ctx)
	if !ok {
		return
	}

	id, ok := idParamOrAbort(ctx)
	if !ok {
		return
	}

	var req dto.ResolveComplaintRequest
	if !bindJSONOrAbort(ctx, &req) {
		return
	}

	if err := c.complaintService.Resolve(session, id, req.Status, req.Message); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Complaint updated"},
		Timestamp: time.Now(),
	})
}
