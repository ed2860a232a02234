package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"poi-backend/internal/middleware"
	"poi-backend/internal/models"
	"poi-backend/internal/repository"
	"poi-backend/internal/supabase"
)

// Evidence uploads are capped well below any sensible impact document size.
const maxEvidenceSize = 25 << 20

type EvidenceHandler struct {
	projects *repository.ProjectRepository
	evidence *repository.EvidenceRepository
	storage  *supabase.StorageClient
	roles    middleware.RoleResolver
	logger   *zap.Logger
}

func NewEvidenceHandler(projects *repository.ProjectRepository, evidence *repository.EvidenceRepository, storage *supabase.StorageClient, roles middleware.RoleResolver, logger *zap.Logger) *EvidenceHandler {
	return &EvidenceHandler{
		projects: projects,
		evidence: evidence,
		storage:  storage,
		roles:    roles,
		logger:   logger,
	}
}

// Upload stores a supporting document for a project the caller owns.
func (h *EvidenceHandler) Upload(c *gin.Context) {
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
	if project.UserID != userID {
		c.JSON(http.StatusForbidden, models.ErrorResponse{Error: "forbidden"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "missing file", Message: err.Error()})
		return
	}
	if fileHeader.Size > maxEvidenceSize {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "file too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to read file", Message: err.Error()})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to read file", Message: err.Error()})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	storagePath, storageURL, err := h.storage.UploadEvidence(userID, projectID, fileHeader.Filename, contentType, data)
	if err != nil {
		h.logger.Error("evidence upload failed", zap.Error(err), zap.String("project_id", projectID.String()))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to upload evidence", Message: err.Error()})
		return
	}

	record, err := h.evidence.Create(models.Evidence{
		ProjectID:   projectID,
		UserID:      userID,
		Filename:    fileHeader.Filename,
		StoragePath: storagePath,
		StorageURL:  storageURL,
		ContentType: contentType,
		FileSize:    fileHeader.Size,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to record evidence", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, record)
}

// List returns a project's evidence rows for its owner or any verifier.
func (h *EvidenceHandler) List(c *gin.Context) {
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
	if project.UserID != userID && !h.roles.IsVerifier(userID.String()) {
		c.JSON(http.StatusForbidden, models.ErrorResponse{Error: "forbidden"})
		return
	}

	evidence, err := h.evidence.ListByProject(projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to list evidence", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.EvidenceListResponse{Evidence: evidence})
}
