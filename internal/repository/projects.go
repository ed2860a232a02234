package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/supabase-community/postgrest-go"

	"poi-backend/internal/models"
)

// ErrProjectNotFound distinguishes "no such row" from transport failure.
var ErrProjectNotFound = errors.New("project not found")

// ProjectRepository is the row-store contract for projects. Each call is a
// single PostgREST round-trip; there are no retries and no cross-call
// transaction guarantees.
type ProjectRepository struct {
	rest *postgrest.Client
}

func NewProjectRepository(rest *postgrest.Client) *ProjectRepository {
	return &ProjectRepository{rest: rest}
}

// ListByOwner returns the owner's projects, newest first. No rows is an empty
// slice, not an error.
func (r *ProjectRepository) ListByOwner(userID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	_, err := r.rest.From("projects").
		Select("*", "", false).
		Eq("user_id", userID.String()).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		ExecuteTo(&projects)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	if projects == nil {
		projects = []models.Project{}
	}
	return projects, nil
}

func (r *ProjectRepository) GetByID(projectID uuid.UUID) (*models.Project, error) {
	var projects []models.Project
	_, err := r.rest.From("projects").
		Select("*", "", false).
		Eq("id", projectID.String()).
		ExecuteTo(&projects)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if len(projects) == 0 {
		return nil, ErrProjectNotFound
	}
	return &projects[0], nil
}

// Create inserts a new project. Status and the minted/funded flags are forced
// server-side: a client can never create an already-approved project.
func (r *ProjectRepository) Create(userID uuid.UUID, ownerEmail string, req models.CreateProjectRequest) (*models.Project, error) {
	row := map[string]interface{}{
		"user_id":     userID.String(),
		"owner_email": ownerEmail,
		"name":        req.Name,
		"description": req.Description,
		"metric":      req.Metric,
		"budget":      req.Budget,
		"status":      string(models.StatusPending),
		"nft_minted":  false,
		"funded":      false,
	}

	var projects []models.Project
	_, err := r.rest.From("projects").
		Insert(row, false, "", "representation", "").
		ExecuteTo(&projects)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	if len(projects) == 0 {
		return nil, fmt.Errorf("insert returned no row")
	}
	return &projects[0], nil
}

// Update applies the given fields and returns the updated row.
func (r *ProjectRepository) Update(projectID uuid.UUID, fields map[string]interface{}) (*models.Project, error) {
	var projects []models.Project
	_, err := r.rest.From("projects").
		Update(fields, "representation", "").
		Eq("id", projectID.String()).
		ExecuteTo(&projects)
	if err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	if len(projects) == 0 {
		return nil, ErrProjectNotFound
	}
	return &projects[0], nil
}

// Delete removes the row. Deleting an id that no longer exists is not an
// error; the operation is best-effort.
func (r *ProjectRepository) Delete(projectID uuid.UUID) error {
	_, _, err := r.rest.From("projects").
		Delete("", "").
		Eq("id", projectID.String()).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// ListPending returns all Pending projects, newest first, for verifier review.
func (r *ProjectRepository) ListPending() ([]models.Project, error) {
	var projects []models.Project
	_, err := r.rest.From("projects").
		Select("*", "", false).
		Eq("status", string(models.StatusPending)).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		ExecuteTo(&projects)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending projects: %w", err)
	}
	if projects == nil {
		projects = []models.Project{}
	}
	return projects, nil
}
