package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"poi-backend/internal/models"
	"poi-backend/internal/repository"
)

// PagesHandler serves the view models behind the guarded page routes. The
// route guard has already evaluated the policy table by the time these run,
// so an authenticated identity of the right role is guaranteed on the
// protected ones.
type PagesHandler struct {
	projects *repository.ProjectRepository
	logger   *zap.Logger
}

func NewPagesHandler(projects *repository.ProjectRepository, logger *zap.Logger) *PagesHandler {
	return &PagesHandler{
		projects: projects,
		logger:   logger,
	}
}

func (h *PagesHandler) Landing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        "POI Validation",
		"description": "Proof-of-impact project submission and verification",
	})
}

// LoginPage carries the error marker left by a failed session exchange.
func (h *PagesHandler) LoginPage(c *gin.Context) {
	view := gin.H{"view": "login"}
	if errMarker := c.Query("error"); errMarker != "" {
		view["error"] = errMarker
	}
	c.JSON(http.StatusOK, view)
}

func (h *PagesHandler) SignupPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"view":  "signup",
		"roles": []string{"user", "verifier"},
	})
}

// Dashboard hydrates the owner's project list with filters and stats.
func (h *PagesHandler) Dashboard(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	projects, err := h.projects.ListByOwner(userID)
	if err != nil {
		h.logger.Error("failed to load dashboard", zap.Error(err), zap.String("user_id", userID.String()))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load projects", Message: err.Error()})
		return
	}

	filtered := filterFromQuery(c).Apply(projects, time.Now())
	c.JSON(http.StatusOK, gin.H{
		"view":     "dashboard",
		"projects": filtered,
		"stats":    models.ComputeStats(filtered),
	})
}

// NewProjectPage describes the stepped submission form.
func (h *PagesHandler) NewProjectPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"view":  "projects/new",
		"steps": []string{"Project Details", "Impact Metrics", "Review"},
	})
}

// VerifierDashboard hydrates the pending review queue.
func (h *PagesHandler) VerifierDashboard(c *gin.Context) {
	projects, err := h.projects.ListPending()
	if err != nil {
		h.logger.Error("failed to load verifier dashboard", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load pending projects", Message: err.Error()})
		return
	}

	filtered := filterFromQuery(c).Apply(projects, time.Now())
	c.JSON(http.StatusOK, gin.H{
		"view":     "verifier",
		"projects": filtered,
		"stats":    models.ComputeStats(filtered),
	})
}
