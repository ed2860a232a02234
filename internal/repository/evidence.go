package repository

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/supabase-community/postgrest-go"

	"poi-backend/internal/models"
)

type EvidenceRepository struct {
	rest *postgrest.Client
}

func NewEvidenceRepository(rest *postgrest.Client) *EvidenceRepository {
	return &EvidenceRepository{rest: rest}
}

func (r *EvidenceRepository) Create(evidence models.Evidence) (*models.Evidence, error) {
	row := map[string]interface{}{
		"project_id":   evidence.ProjectID.String(),
		"user_id":      evidence.UserID.String(),
		"filename":     evidence.Filename,
		"storage_path": evidence.StoragePath,
		"storage_url":  evidence.StorageURL,
		"content_type": evidence.ContentType,
		"file_size":    evidence.FileSize,
	}

	var rows []models.Evidence
	_, err := r.rest.From("project_evidence").
		Insert(row, false, "", "representation", "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to record evidence: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("insert returned no row")
	}
	return &rows[0], nil
}

func (r *EvidenceRepository) ListByProject(projectID uuid.UUID) ([]models.Evidence, error) {
	var rows []models.Evidence
	_, err := r.rest.From("project_evidence").
		Select("*", "", false).
		Eq("project_id", projectID.String()).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list evidence: %w", err)
	}
	if rows == nil {
		rows = []models.Evidence{}
	}
	return rows, nil
}

func (r *EvidenceRepository) DeleteByProject(projectID uuid.UUID) error {
	_, _, err := r.rest.From("project_evidence").
		Delete("", "").
		Eq("project_id", projectID.String()).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to delete evidence rows: %w", err)
	}
	return nil
}
