package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"poi-backend/internal/middleware"
	"poi-backend/internal/models"
	"poi-backend/internal/repository"
	"poi-backend/internal/supabase"
)

type ProjectsHandler struct {
	projects *repository.ProjectRepository
	evidence *repository.EvidenceRepository
	storage  *supabase.StorageClient
	roles    middleware.RoleResolver
	logger   *zap.Logger
}

func NewProjectsHandler(projects *repository.ProjectRepository, evidence *repository.EvidenceRepository, storage *supabase.StorageClient, roles middleware.RoleResolver, logger *zap.Logger) *ProjectsHandler {
	return &ProjectsHandler{
		projects: projects,
		evidence: evidence,
		storage:  storage,
		roles:    roles,
		logger:   logger,
	}
}

// CreateProject godoc
// @Summary     Submit a new impact project
// @Description Inserts a project owned by the caller. Status always starts Pending with nft_minted and funded false.
// @Tags        projects
// @Accept      json
// @Produce     json
// @Param       request body models.CreateProjectRequest true "project fields"
// @Success     200 {object} models.Project
// @Failure     400 {object} models.ErrorResponse
// @Security    Bearer
// @Router      /projects [post]
func (h *ProjectsHandler) CreateProject(c *gin.Context) {
	userID, email, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	project, err := h.projects.Create(userID, email, req)
	if err != nil {
		h.logger.Error("failed to create project", zap.Error(err), zap.String("user_id", userID.String()))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to create project", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, project)
}

// ListProjects godoc
// @Summary     List the caller's projects
// @Description Newest first, with optional search/status/range filters applied in-memory and aggregate stats over the filtered list.
// @Tags        projects
// @Produce     json
// @Param       search query string false "case-insensitive substring over name and description"
// @Param       status query string false "Pending, Approved or Rejected"
// @Param       range  query string false "all, today, week or month"
// @Success     200 {object} models.ProjectListResponse
// @Security    Bearer
// @Router      /projects [get]
func (h *ProjectsHandler) ListProjects(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	projects, err := h.projects.ListByOwner(userID)
	if err != nil {
		h.logger.Error("failed to list projects", zap.Error(err), zap.String("user_id", userID.String()))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to list projects", Message: err.Error()})
		return
	}

	filtered := filterFromQuery(c).Apply(projects, time.Now())
	c.JSON(http.StatusOK, models.ProjectListResponse{
		Projects: filtered,
		Stats:    models.ComputeStats(filtered),
	})
}

// GetProject godoc
// @Summary     Fetch a single project
// @Tags        projects
// @Produce     json
// @Param       project_id path string true "project id"
// @Success     200 {object} models.Project
// @Failure     404 {object} models.ErrorResponse
// @Security    Bearer
// @Router      /projects/{project_id} [get]
func (h *ProjectsHandler) GetProject(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}

	project, err := h.projects.GetByID(projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to get project", Message: err.Error()})
		return
	}

	// Owners see their own projects; verifiers may review any.
	if project.UserID != userID && !h.roles.IsVerifier(userID.String()) {
		c.JSON(http.StatusForbidden, models.ErrorResponse{Error: "forbidden"})
		return
	}

	c.JSON(http.StatusOK, project)
}

// UpdateProject applies owner edits to the descriptive fields. Status and the
// minted/funded flags are not reachable from here.
func (h *ProjectsHandler) UpdateProject(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}

	var req models.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Metric != nil {
		fields["metric"] = *req.Metric
	}
	if req.Budget != nil {
		fields["budget"] = *req.Budget
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "no fields to update"})
		return
	}

	project, err := h.ownedProject(c, projectID, userID)
	if err != nil {
		return
	}

	updated, err := h.projects.Update(project.ID, fields)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to update project", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteProject removes the project row after a best-effort sweep of its
// stored evidence.
func (h *ProjectsHandler) DeleteProject(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}

	project, err := h.ownedProject(c, projectID, userID)
	if err != nil {
		return
	}

	if h.storage != nil {
		if err := h.storage.DeleteProjectEvidence(project.UserID, project.ID); err != nil {
			h.logger.Warn("failed to delete evidence files", zap.Error(err), zap.String("project_id", project.ID.String()))
		}
	}
	if err := h.evidence.DeleteByProject(project.ID); err != nil {
		h.logger.Warn("failed to delete evidence rows", zap.Error(err), zap.String("project_id", project.ID.String()))
	}

	if err := h.projects.Delete(project.ID); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to delete project", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "project deleted successfully"})
}

// Stats godoc
// @Summary     Aggregate stats over the caller's projects
// @Tags        projects
// @Produce     json
// @Success     200 {object} models.Stats
// @Security    Bearer
// @Router      /dashboard/stats [get]
func (h *ProjectsHandler) Stats(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	projects, err := h.projects.ListByOwner(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to list projects", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.ComputeStats(projects))
}

// ownedProject fetches the project and enforces ownership, writing the error
// response itself on failure.
func (h *ProjectsHandler) ownedProject(c *gin.Context, projectID, userID uuid.UUID) (*models.Project, error) {
	project, err := h.projects.GetByID(projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "project not found"})
			return nil, err
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to get project", Message: err.Error()})
		return nil, err
	}
	if project.UserID != userID {
		c.JSON(http.StatusForbidden, models.ErrorResponse{Error: "forbidden"})
		return nil, errors.New("not the project owner")
	}
	return project, nil
}
