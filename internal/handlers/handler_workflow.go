package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/lease_management_app/internal/core/ports/services"
	"github.com/SscSPs/lease_management_app/internal/dto"
	"github.com/SscSPs/lease_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// workflowHandler serves the approval workflow routes shared by leases and
// master data.
type workflowHandler[T any] struct {
	service    portssvc.WorkflowSvc[T]
	entity     string
	toResponse func(*T) any
}

// registerWorkflowRoutes adds submit, approve, reject and revise under rg,
// which must be the entity's group (e.g. /leases).
func registerWorkflowRoutes[T any](rg *gin.RouterGroup, svc portssvc.WorkflowSvc[T], entity string, toResponse func(*T) any) {
	h := &workflowHandler[T]{service: svc, entity: entity, toResponse: toResponse}

	rg.PUT("/:id/submit", h.submit)
	rg.PUT("/:id/approve", h.approve)
	rg.PUT("/:id/reject", h.reject)
	rg.PUT("/:id/revise", h.revise)
}

func (h *workflowHandler[T]) submit(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	record, err := h.service.Submit(c.Request.Context(), c.Param("id"), actor)
	h.respond(c, record, err, "submit")
}

func (h *workflowHandler[T]) approve(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	record, err := h.service.Approve(c.Request.Context(), c.Param("id"), actor)
	h.respond(c, record, err, "approve")
}

func (h *workflowHandler[T]) reject(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	record, err := h.service.Reject(c.Request.Context(), c.Param("id"), req.Reason, actor)
	h.respond(c, record, err, "reject")
}

func (h *workflowHandler[T]) revise(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	record, err := h.service.Revise(c.Request.Context(), c.Param("id"), actor)
	h.respond(c, record, err, "revise")
}

func (h *workflowHandler[T]) respond(c *gin.Context, record *T, err error, event string) {
	if err != nil {
		respondError(c, err, event+" "+h.entity)
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Workflow transition applied",
		slog.String("entity", h.entity),
		slog.String("id", c.Param("id")),
		slog.String("event", event),
	)
	c.JSON(http.StatusOK, h.toResponse(record))
}
