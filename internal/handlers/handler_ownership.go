package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/lease_management_app/internal/core/ports/services"
	"github.com/SscSPs/lease_management_app/internal/dto"
	"github.com/SscSPs/lease_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ownershipHandler handles unit ownership assignments.
type ownershipHandler struct {
	ownershipService portssvc.OwnershipSvcFacade
}

// RegisterOwnershipRoutes registers the ownership routes.
func RegisterOwnershipRoutes(rg *gin.RouterGroup, ownershipService portssvc.OwnershipSvcFacade) {
	h := &ownershipHandler{ownershipService: ownershipService}

	ownership := rg.Group("/ownership")
	{
		ownership.POST("", h.assignOwnership)
		ownership.POST("/remove", h.removeOwnership)
	}
	rg.GET("/units/:id/ownership", h.listOwnershipHistory)
}

// assignOwnership godoc
// @Summary Assign a unit owner
// @Description Starts an active ownership. A unit has at most one active owner.
// @Tags ownership
// @Accept  json
// @Produce  json
// @Param   ownership body dto.AssignOwnershipRequest true "Unit, owner and start date"
// @Success 201 {object} dto.OwnershipResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 409 {object} ErrorResponse "Unit already has an active owner"
// @Security BearerAuth
// @Router /ownership [post]
func (h *ownershipHandler) assignOwnership(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.AssignOwnershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	record, err := h.ownershipService.AssignOwnership(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err, "assign ownership")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Ownership assigned",
		slog.String("unit_id", record.UnitID),
		slog.String("party_id", record.PartyID),
	)
	c.JSON(http.StatusCreated, dto.ToOwnershipResponse(record))
}

// removeOwnership godoc
// @Summary End a unit ownership
// @Tags ownership
// @Accept  json
// @Produce  json
// @Param   ownership body dto.RemoveOwnershipRequest true "Unit, owner and end date"
// @Success 200 {object} dto.OwnershipResponse
// @Failure 404 {object} ErrorResponse "No active ownership by that party"
// @Security BearerAuth
// @Router /ownership/remove [post]
func (h *ownershipHandler) removeOwnership(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.RemoveOwnershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	record, err := h.ownershipService.RemoveOwnership(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err, "remove ownership")
		return
	}
	c.JSON(http.StatusOK, dto.ToOwnershipResponse(record))
}

// listOwnershipHistory godoc
// @Summary Ownership history of a unit
// @Tags ownership
// @Produce  json
// @Param   id path string true "Unit ID"
// @Success 200 {object} dto.OwnershipHistoryResponse
// @Failure 404 {object} ErrorResponse "Unit not found"
// @Security BearerAuth
// @Router /units/{id}/ownership [get]
func (h *ownershipHandler) listOwnershipHistory(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	unitID := c.Param("id")
	records, err := h.ownershipService.ListOwnershipHistory(c.Request.Context(), unitID, actor)
	if err != nil {
		respondError(c, err, "list ownership history")
		return
	}
	c.JSON(http.StatusOK, dto.ToOwnershipHistoryResponse(unitID, records))
}
