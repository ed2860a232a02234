package models

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

type ProjectStatus string

const (
	StatusPending  ProjectStatus = "Pending"
	StatusApproved ProjectStatus = "Approved"
	StatusRejected ProjectStatus = "Rejected"
)

// Project is a row in the projects collection. Budget is stored as text the
// way the submission form sends it; use BudgetAmount for arithmetic.
type Project struct {
	ID          uuid.UUID     `json:"id"`
	UserID      uuid.UUID     `json:"user_id"`
	OwnerEmail  string        `json:"owner_email,omitempty"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Metric      string        `json:"metric,omitempty"`
	Budget      string        `json:"budget,omitempty"`
	Status      ProjectStatus `json:"status"`
	NFTMinted   bool          `json:"nft_minted"`
	Funded      bool          `json:"funded"`
	CreatedAt   time.Time     `json:"created_at"`
}

// BudgetAmount parses the free-text budget. Anything unparseable counts as 0.
func (p Project) BudgetAmount() float64 {
	amount, err := strconv.ParseFloat(p.Budget, 64)
	if err != nil {
		return 0
	}
	return amount
}

type Verifier struct {
	UserID     uuid.UUID `json:"user_id"`
	IsVerifier bool      `json:"is_verifier"`
}

// Evidence is a supporting document attached to a project by its owner.
type Evidence struct {
	ID          uuid.UUID `json:"id"`
	ProjectID   uuid.UUID `json:"project_id"`
	UserID      uuid.UUID `json:"user_id"`
	Filename    string    `json:"filename"`
	StoragePath string    `json:"storage_path"`
	StorageURL  string    `json:"storage_url"`
	ContentType string    `json:"content_type"`
	FileSize    int64     `json:"file_size"`
	CreatedAt   time.Time `json:"created_at"`
}
