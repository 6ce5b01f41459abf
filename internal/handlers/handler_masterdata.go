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

// masterDataHandler handles projects, units and parties.
type masterDataHandler struct {
	projectService portssvc.ProjectSvcFacade
	unitService    portssvc.UnitSvcFacade
	partyService   portssvc.PartySvcFacade
}

func newMasterDataHandler(ps portssvc.ProjectSvcFacade, us portssvc.UnitSvcFacade, pts portssvc.PartySvcFacade) *masterDataHandler {
	return &masterDataHandler{
		projectService: ps,
		unitService:    us,
		partyService:   pts,
	}
}

// RegisterMasterDataRoutes registers the project, unit and party routes.
// Each record type goes through the same approval workflow as leases.
func RegisterMasterDataRoutes(rg *gin.RouterGroup, ps portssvc.ProjectSvcFacade, us portssvc.UnitSvcFacade, pts portssvc.PartySvcFacade) {
	h := newMasterDataHandler(ps, us, pts)

	projects := rg.Group("/projects")
	{
		projects.POST("", h.createProject)
		projects.GET("", h.listProjects)
		projects.GET("/:id", h.getProject)
		projects.PUT("/:id", h.updateProject)
	}
	registerWorkflowRoutes(projects, ps, "project", func(p *domain.Project) any {
		return dto.ToProjectResponse(p)
	})

	units := rg.Group("/units")
	{
		units.POST("", h.createUnit)
		units.GET("", h.listUnits)
		units.GET("/:id", h.getUnit)
		units.PUT("/:id", h.updateUnit)
	}
	registerWorkflowRoutes(units, us, "unit", func(u *domain.Unit) any {
		return dto.ToUnitResponse(u)
	})

	parties := rg.Group("/parties")
	{
		parties.POST("", h.createParty)
		parties.GET("", h.listParties)
		parties.GET("/:id", h.getParty)
		parties.PUT("/:id", h.updateParty)
	}
	registerWorkflowRoutes(parties, pts, "party", func(p *domain.Party) any {
		return dto.ToPartyResponse(p)
	})
}

// --- Projects ---

// createProject godoc
// @Summary Create a project
// @Tags projects
// @Accept  json
// @Produce  json
// @Param   project body dto.ProjectRequest true "Project details"
// @Success 201 {object} dto.ProjectResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /projects [post]
func (h *masterDataHandler) createProject(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	project, err := h.projectService.CreateProject(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err, "create project")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Project created", slog.String("project_id", project.ProjectID))
	c.JSON(http.StatusCreated, dto.ToProjectResponse(project))
}

// updateProject godoc
// @Summary Update a project
// @Tags projects
// @Accept  json
// @Produce  json
// @Param   id path string true "Project ID"
// @Param   project body dto.ProjectRequest true "Project details"
// @Success 200 {object} dto.ProjectResponse
// @Failure 409 {object} ErrorResponse "Not editable in its current state"
// @Security BearerAuth
// @Router /projects/{id} [put]
func (h *masterDataHandler) updateProject(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	project, err := h.projectService.UpdateProject(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "update project")
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

func (h *masterDataHandler) getProject(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	project, err := h.projectService.GetProjectByID(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		respondError(c, err, "retrieve project")
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

// listProjects godoc
// @Summary List projects
// @Tags projects
// @Produce  json
// @Param   status query string false "Approval status"
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {array} dto.ProjectResponse
// @Security BearerAuth
// @Router /projects [get]
func (h *masterDataHandler) listProjects(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var params dto.ListMasterDataParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	projects, err := h.projectService.ListProjects(c.Request.Context(), params, actor)
	if err != nil {
		respondError(c, err, "list projects")
		return
	}
	res := make([]dto.ProjectResponse, len(projects))
	for i := range projects {
		res[i] = dto.ToProjectResponse(&projects[i])
	}
	c.JSON(http.StatusOK, res)
}

// --- Units ---

// createUnit godoc
// @Summary Create a unit
// @Description The unit's project must exist and its area must be positive.
// @Tags units
// @Accept  json
// @Produce  json
// @Param   unit body dto.UnitRequest true "Unit details"
// @Success 201 {object} dto.UnitResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Security BearerAuth
// @Router /units [post]
func (h *masterDataHandler) createUnit(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	unit, err := h.unitService.CreateUnit(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err, "create unit")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Unit created", slog.String("unit_id", unit.UnitID))
	c.JSON(http.StatusCreated, dto.ToUnitResponse(unit))
}

func (h *masterDataHandler) updateUnit(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	unit, err := h.unitService.UpdateUnit(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "update unit")
		return
	}
	c.JSON(http.StatusOK, dto.ToUnitResponse(unit))
}

func (h *masterDataHandler) getUnit(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	unit, err := h.unitService.GetUnitByID(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		respondError(c, err, "retrieve unit")
		return
	}
	c.JSON(http.StatusOK, dto.ToUnitResponse(unit))
}

// listUnits godoc
// @Summary List units
// @Tags units
// @Produce  json
// @Param   status query string false "Approval status"
// @Param   projectId query string false "Project ID"
// @Success 200 {array} dto.UnitResponse
// @Security BearerAuth
// @Router /units [get]
func (h *masterDataHandler) listUnits(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var params dto.ListMasterDataParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	units, err := h.unitService.ListUnits(c.Request.Context(), params, actor)
	if err != nil {
		respondError(c, err, "list units")
		return
	}
	res := make([]dto.UnitResponse, len(units))
	for i := range units {
		res[i] = dto.ToUnitResponse(&units[i])
	}
	c.JSON(http.StatusOK, res)
}

// --- Parties ---

// createParty godoc
// @Summary Create a party
// @Description Creates an owner, tenant or sub-tenant.
// @Tags parties
// @Accept  json
// @Produce  json
// @Param   party body dto.PartyRequest true "Party details"
// @Success 201 {object} dto.PartyResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Security BearerAuth
// @Router /parties [post]
func (h *masterDataHandler) createParty(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.PartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	party, err := h.partyService.CreateParty(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err, "create party")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Party created", slog.String("party_id", party.PartyID))
	c.JSON(http.StatusCreated, dto.ToPartyResponse(party))
}

func (h *masterDataHandler) updateParty(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.PartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	party, err := h.partyService.UpdateParty(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "update party")
		return
	}
	c.JSON(http.StatusOK, dto.ToPartyResponse(party))
}

func (h *masterDataHandler) getParty(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	party, err := h.partyService.GetPartyByID(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		respondError(c, err, "retrieve party")
		return
	}
	c.JSON(http.StatusOK, dto.ToPartyResponse(party))
}

// listParties godoc
// @Summary List parties
// @Tags parties
// @Produce  json
// @Param   status query string false "Approval status"
// @Param   role query string false "OWNER, TENANT or SUB_TENANT"
// @Success 200 {array} dto.PartyResponse
// @Security BearerAuth
// @Router /parties [get]
func (h *masterDataHandler) listParties(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var params dto.ListMasterDataParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	parties, err := h.partyService.ListParties(c.Request.Context(), params, actor)
	if err != nil {
		respondError(c, err, "list parties")
		return
	}
	res := make([]dto.PartyResponse, len(parties))
	for i := range parties {
		res[i] = dto.ToPartyResponse(&parties[i])
	}
	c.JSON(http.StatusOK, res)
}
