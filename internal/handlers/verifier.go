package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"poi-backend/internal/models"
	"poi-backend/internal/repository"
	"poi-backend/internal/services"
)

type VerifierHandler struct {
	projects     *repository.ProjectRepository
	verification *services.VerificationService
	logger       *zap.Logger
}

func NewVerifierHandler(projects *repository.ProjectRepository, verification *services.VerificationService, logger *zap.Logger) *VerifierHandler {
	return &VerifierHandler{
		projects:     projects,
		verification: verification,
		logger:       logger,
	}
}

// ListPending godoc
// @Summary     List projects awaiting review
// @Description All Pending projects, newest first, with the same filter/stat semantics as the owner list.
// @Tags        verifier
// @Produce     json
// @Success     200 {object} models.ProjectListResponse
// @Failure     403 {object} models.ErrorResponse
// @Security    Bearer
// @Router      /verifier/projects [get]
func (h *VerifierHandler) ListPending(c *gin.Context) {
	projects, err := h.projects.ListPending()
	if err != nil {
		h.logger.Error("failed to list pending projects", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to list pending projects", Message: err.Error()})
		return
	}

	filtered := filterFromQuery(c).Apply(projects, time.Now())
	c.JSON(http.StatusOK, models.ProjectListResponse{
		Projects: filtered,
		Stats:    models.ComputeStats(filtered),
	})
}

// Decide godoc
// @Summary     Approve or reject a project
// @Description Applies a verifier decision. verify sets Approved with nft_minted and funded true; reject sets Rejected with both false. The owner is notified by email after the row update is confirmed.
// @Tags        verifier
// @Accept      json
// @Produce     json
// @Param       project_id path string true "project id"
// @Param       request body models.DecisionRequest true "verify or reject"
// @Success     200 {object} models.Project
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Security    Bearer
// @Router      /verifier/projects/{project_id}/decision [post]
func (h *VerifierHandler) Decide(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}

	var req models.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	action, err := services.ParseAction(req.Action)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid action", Message: err.Error()})
		return
	}

	project, err := h.verification.Apply(projectID, action)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "project not found"})
			return
		}
		h.logger.Error("failed to apply decision",
			zap.Error(err),
			zap.String("project_id", projectID.String()),
			zap.String("action", string(action)))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to apply decision", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, project)
}
