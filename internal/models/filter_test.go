package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"poi-backend/internal/models"
)

func sampleProjects(now time.Time) []models.Project {
	return []models.Project{
		{
			Name:        "Alpha Initiative",
			Description: "Clean water wells",
			Status:      models.StatusPending,
			Budget:      "5000",
			CreatedAt:   now,
		},
		{
			Name:        "Beta Plan",
			Description: "Solar panels",
			Status:      models.StatusApproved,
			Budget:      "7500",
			CreatedAt:   now.AddDate(0, 0, -3),
		},
		{
			Name:        "Gamma Fund",
			Description: "Reforestation of the alpha valley",
			Status:      models.StatusRejected,
			Budget:      "not-a-number",
			CreatedAt:   now.AddDate(0, 0, -20),
		},
	}
}

func TestFilter_SearchIsCaseInsensitive(t *testing.T) {
	now := time.Now()
	projects := sampleProjects(now)

	filtered := models.ProjectFilter{Search: "alpha"}.Apply(projects, now)

	// Matches name on one project and description on another.
	assert.Len(t, filtered, 2)
	assert.Equal(t, "Alpha Initiative", filtered[0].Name)
	assert.Equal(t, "Gamma Fund", filtered[1].Name)

	filtered = models.ProjectFilter{Search: "ALPHA INITIATIVE"}.Apply(projects, now)
	assert.Len(t, filtered, 1)
	assert.Equal(t, "Alpha Initiative", filtered[0].Name)
}

func TestFilter_Status(t *testing.T) {
	now := time.Now()
	projects := sampleProjects(now)

	filtered := models.ProjectFilter{Status: "Approved"}.Apply(projects, now)
	assert.Len(t, filtered, 1)
	assert.Equal(t, "Beta Plan", filtered[0].Name)

	assert.Len(t, models.ProjectFilter{Status: "all"}.Apply(projects, now), 3)
	assert.Len(t, models.ProjectFilter{}.Apply(projects, now), 3)
}

func TestFilter_DateRange(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	projects := sampleProjects(now)

	assert.Len(t, models.ProjectFilter{DateRange: models.RangeToday}.Apply(projects, now), 1)
	assert.Len(t, models.ProjectFilter{DateRange: models.RangeWeek}.Apply(projects, now), 2)
	assert.Len(t, models.ProjectFilter{DateRange: models.RangeMonth}.Apply(projects, now), 3)
	assert.Len(t, models.ProjectFilter{DateRange: models.RangeAll}.Apply(projects, now), 3)
}

func TestFilter_Combined(t *testing.T) {
	now := time.Now()
	projects := sampleProjects(now)

	filtered := models.ProjectFilter{Search: "alpha", Status: "Pending"}.Apply(projects, now)
	assert.Len(t, filtered, 1)
	assert.Equal(t, "Alpha Initiative", filtered[0].Name)
}

func TestComputeStats(t *testing.T) {
	now := time.Now()
	stats := models.ComputeStats(sampleProjects(now))

	assert.Equal(t, 3, stats.Submitted)
	assert.Equal(t, 1, stats.Approved)
	// The unparseable budget counts as 0.
	assert.Equal(t, 12500.0, stats.TotalAmount)
}

func TestBudgetAmount(t *testing.T) {
	assert.Equal(t, 5000.0, models.Project{Budget: "5000"}.BudgetAmount())
	assert.Equal(t, 99.5, models.Project{Budget: "99.5"}.BudgetAmount())
	assert.Equal(t, 0.0, models.Project{Budget: ""}.BudgetAmount())
	assert.Equal(t, 0.0, models.Project{Budget: "abc"}.BudgetAmount())
}
