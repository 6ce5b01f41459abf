package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/lease_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/lease_management_app/internal/core/ports/services"
	"github.com/SscSPs/lease_management_app/internal/dto"
	"github.com/SscSPs/lease_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// leaseHandler handles HTTP requests related to leases.
type leaseHandler struct {
	leaseService portssvc.LeaseSvcFacade
}

// newLeaseHandler creates a new leaseHandler.
func newLeaseHandler(ls portssvc.LeaseSvcFacade) *leaseHandler {
	return &leaseHandler{
		leaseService: ls,
	}
}

// RegisterLeaseRoutes registers all lease routes, including the approval
// workflow and rent computations.
func RegisterLeaseRoutes(rg *gin.RouterGroup, leaseService portssvc.LeaseSvcFacade) {
	h := newLeaseHandler(leaseService)

	leases := rg.Group("/leases")
	{
		leases.POST("", h.createLease)
		leases.GET("", h.listLeases)
		leases.GET("/:id", h.getLease)
		leases.PUT("/:id", h.updateLease)
		leases.GET("/:id/terms", h.getEffectiveTerms)
		leases.POST("/:id/rent-due", h.calculateRentDue)
		leases.GET("/:id/billing-schedule", h.getBillingSchedule)
	}
	registerWorkflowRoutes(leases, leaseService, "lease", func(l *domain.Lease) any {
		return dto.ToLeaseResponse(l)
	})
}

// createLease godoc
// @Summary Create a lease
// @Description Stores a new Draft lease. Every invariant violation is reported together.
// @Tags leases
// @Accept  json
// @Produce  json
// @Param   lease body dto.CreateLeaseRequest true "Lease terms"
// @Success 201 {object} dto.LeaseResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 500 {object} ErrorResponse "Failed to create lease"
// @Security BearerAuth
// @Router /leases [post]
func (h *leaseHandler) createLease(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	lease, err := h.leaseService.CreateLease(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err, "create lease")
		return
	}

	logger.Info("Lease created", slog.String("lease_id", lease.LeaseID))
	c.JSON(http.StatusCreated, dto.ToLeaseResponse(lease))
}

// updateLease godoc
// @Summary Update a lease
// @Description Replaces the terms of a Draft or Rejected lease. Updating an Approved lease creates a pending revision.
// @Tags leases
// @Accept  json
// @Produce  json
// @Param   id path string true "Lease ID"
// @Param   lease body dto.UpdateLeaseRequest true "Lease terms"
// @Success 200 {object} dto.LeaseResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "Lease not found"
// @Failure 409 {object} ErrorResponse "Invalid transition or stale version"
// @Security BearerAuth
// @Router /leases/{id} [put]
func (h *leaseHandler) updateLease(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpdateLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	lease, err := h.leaseService.UpdateLease(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "update lease")
		return
	}
	c.JSON(http.StatusOK, dto.ToLeaseResponse(lease))
}

// getLease godoc
// @Summary Get a lease
// @Tags leases
// @Produce  json
// @Param   id path string true "Lease ID"
// @Success 200 {object} dto.LeaseResponse
// @Failure 404 {object} ErrorResponse "Lease not found"
// @Security BearerAuth
// @Router /leases/{id} [get]
func (h *leaseHandler) getLease(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	lease, err := h.leaseService.GetLeaseByID(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		respondError(c, err, "retrieve lease")
		return
	}
	c.JSON(http.StatusOK, dto.ToLeaseResponse(lease))
}

// listLeases godoc
// @Summary List leases
// @Description Returns one page of leases, newest first.
// @Tags leases
// @Produce  json
// @Param   status query string false "Approval status"
// @Param   projectId query string false "Project ID"
// @Param   unitId query string false "Unit ID"
// @Param   limit query int false "Page size" default(20)
// @Param   next_token query string false "Token from the previous page"
// @Success 200 {object} dto.ListLeasesResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Security BearerAuth
// @Router /leases [get]
func (h *leaseHandler) listLeases(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var params dto.ListLeasesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	page, err := h.leaseService.ListLeases(c.Request.Context(), params, actor)
	if err != nil {
		respondError(c, err, "list leases")
		return
	}
	c.JSON(http.StatusOK, page)
}

// getEffectiveTerms godoc
// @Summary Effective lease terms
// @Description Rent figures in force on a date, after escalations.
// @Tags leases
// @Produce  json
// @Param   id path string true "Lease ID"
// @Param   as_of query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.LeaseTermsResponse
// @Failure 400 {object} ErrorResponse "Invalid date"
// @Failure 422 {object} ErrorResponse "Date before lease start"
// @Security BearerAuth
// @Router /leases/{id}/terms [get]
func (h *leaseHandler) getEffectiveTerms(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	asOf, err := domain.ParseDate(c.Query("as_of"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "as_of: " + err.Error()})
		return
	}

	terms, err := h.leaseService.GetEffectiveTerms(c.Request.Context(), c.Param("id"), asOf, actor)
	if err != nil {
		respondError(c, err, "compute effective terms")
		return
	}
	c.JSON(http.StatusOK, terms)
}

// calculateRentDue godoc
// @Summary Rent due for a period
// @Tags leases
// @Accept  json
// @Produce  json
// @Param   id path string true "Lease ID"
// @Param   period body dto.RentDueRequest true "Billing period and reported revenue"
// @Success 200 {object} dto.RentDueResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 422 {object} ErrorResponse "Currency mismatch or period out of range"
// @Security BearerAuth
// @Router /leases/{id}/rent-due [post]
func (h *leaseHandler) calculateRentDue(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.RentDueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	due, err := h.leaseService.CalculateRentDue(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "calculate rent due")
		return
	}
	c.JSON(http.StatusOK, due)
}

// getBillingSchedule godoc
// @Summary Billing schedule
// @Description Every billing period from rent commencement to lease end with its due date and minimum amount.
// @Tags leases
// @Produce  json
// @Param   id path string true "Lease ID"
// @Success 200 {object} dto.BillingScheduleResponse
// @Failure 404 {object} ErrorResponse "Lease not found"
// @Security BearerAuth
// @Router /leases/{id}/billing-schedule [get]
func (h *leaseHandler) getBillingSchedule(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	schedule, err := h.leaseService.GetBillingSchedule(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		respondError(c, err, "build billing schedule")
		return
	}
	c.JSON(http.StatusOK, schedule)
}
