package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campushub/portal/internal/app/models/dto"
	"github.com/campushub/portal/internal/app/services"
	"github.com/campushub/portal/internal/middleware"
)

// QueueController handles office queue tokens.
type QueueController struct {
	queueService *services.QueueService
}

// NewQueueController creates a new QueueController
func NewQueueController(queueService *services.QueueService) *QueueController {
	return &QueueController{
		queueService: queueService,
	}
}

// Create joins a queue and returns the issued token
// @Summary Join a queue
// @Tags queue
// @Security BearerAuth
// @Param request body dto.CreateQueueRequest true "Queue location"
// @Success 201 {object} dto.APIResponse{data=models.QueueTicket}
// @Router /queue [post]
func (c *QueueController) Create(ctx *gin.Context) {
	session, ok := sessionOrAbort(ctx)
	if !ok {
		return
	}

	var req dto.CreateQueueRequest
	if !bindJSONOrAbort(ctx, &req) {
		return
	}

	ticket, err := c.queueService.Create(session, req.Location)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      ticket,
		Timestamp: time.Now(),
	})
}

// List returns the tickets visible to the caller's scope
// @Summary List queue tickets
// @Tags queue
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.QueueTicket}
// @Router /queue [get]
func (c *QueueController) List(ctx *gin.Context) {
	session, ok := sessionOrAbort(ctx)
	if !ok {
		return
	}

	tickets, err := c.queueService.List(session)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      tickets,
		Timestamp: time.Now(),
	})
}

// Resolve marks a ticket finished or cancelled
// @Summary Resolve a queue ticket
// @Tags queue
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Param request body dto.ResolveQueueRequest true "Decision"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /queue/{id}/resolve [put]
func (c *QueueController) Resolve(ctx *gin.Context) {
	session, ok := sessionOrAbort(ctx)
	if !ok {
		return
	}

	id, ok := idParamOrAbort(ctx)
	if !ok {
		return
	}

	var req dto.ResolveQueueRequest
	if !bindJSONOrAbort(ctx, &req) {
		return
	}

	if err := c.queueService.Resolve(session, id, req.Status); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Ticket updated"},
		Timestamp: time.Now(),
	})
}
