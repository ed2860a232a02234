package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"poi-backend/internal/middleware"
	"poi-backend/internal/models"
)

// currentUser pulls the authenticated identity set by the auth middleware.
// Writes a 401 and returns false when it is missing or malformed.
func currentUser(c *gin.Context) (uuid.UUID, string, bool) {
	userIDStr := c.GetString(middleware.UserIDKey)
	if userIDStr == "" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return uuid.Nil, "", false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid user id"})
		return uuid.Nil, "", false
	}

	return userID, c.GetString(middleware.UserEmailKey), true
}

func projectIDParam(c *gin.Context) (uuid.UUID, bool) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project id"})
		return uuid.Nil, false
	}
	return projectID, true
}

func filterFromQuery(c *gin.Context) models.ProjectFilter {
	return models.ProjectFilter{
		Search:    c.Query("search"),
		Status:    c.Query("status"),
		DateRange: c.DefaultQuery("range", models.RangeAll),
	}
}
