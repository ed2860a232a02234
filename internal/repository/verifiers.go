package repository

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/supabase-community/postgrest-go"

	"poi-backend/internal/models"
)

// VerifierRepository resolves the verifier capability from the verifiers side
// table.
type VerifierRepository struct {
	rest *postgrest.Client
}

func NewVerifierRepository(rest *postgrest.Client) *VerifierRepository {
	return &VerifierRepository{rest: rest}
}

// IsVerifier reports whether the identity holds the verifier capability.
// A missing row or any lookup failure resolves to false: an error must never
// escalate privilege.
func (r *VerifierRepository) IsVerifier(userID string) bool {
	var verifiers []models.Verifier
	_, err := r.rest.From("verifiers").
		Select("is_verifier", "", false).
		Eq("user_id", userID).
		ExecuteTo(&verifiers)
	if err != nil || len(verifiers) == 0 {
		return false
	}
	return verifiers[0].IsVerifier
}

// Grant records the verifier capability for an identity (verifier signup).
func (r *VerifierRepository) Grant(userID uuid.UUID) error {
	row := map[string]interface{}{
		"user_id":     userID.String(),
		"is_verifier": true,
	}
	_, _, err := r.rest.From("verifiers").
		Insert(row, true, "user_id", "", "").
		Execute()
	if err != nil {
		return fmt.Errorf("failed to grant verifier role: %w", err)
	}
	return nil
}
