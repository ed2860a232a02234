package services

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"poi-backend/internal/models"
	"poi-backend/internal/repository"
	"poi-backend/internal/supabase"
)

type Action string

const (
	ActionVerify Action = "verify"
	ActionReject Action = "reject"
)

func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionVerify, ActionReject:
		return Action(s), nil
	}
	return "", fmt.Errorf("unknown action %q", s)
}

// fields returns the row values a decision applies. The minted/funded flags
// have no lifecycle of their own; they track approval.
func (a Action) fields() map[string]interface{} {
	if a == ActionVerify {
		return map[string]interface{}{
			"status":     string(models.StatusApproved),
			"nft_minted": true,
			"funded":     true,
		}
	}
	return map[string]interface{}{
		"status":     string(models.StatusRejected),
		"nft_minted": false,
		"funded":     false,
	}
}

// StatusNotifier is the outbound notification seam (SMTP in production).
type StatusNotifier interface {
	SendStatusUpdate(project models.Project, to string) error
}

// VerificationService applies a verifier's decision: the row update is
// confirmed first, then a single best-effort notification goes to the owner.
type VerificationService struct {
	projects *repository.ProjectRepository
	notifier StatusNotifier
	realtime *supabase.RealtimeClient
	logger   *zap.Logger
}

func NewVerificationService(projects *repository.ProjectRepository, notifier StatusNotifier, realtime *supabase.RealtimeClient, logger *zap.Logger) *VerificationService {
	return &VerificationService{
		projects: projects,
		notifier: notifier,
		realtime: realtime,
		logger:   logger,
	}
}

// Apply transitions the project and notifies the owner. A notification
// failure never rolls back or fails the transition; it is logged as a
// warning. Re-applying a terminal action re-applies the same values.
func (s *VerificationService) Apply(projectID uuid.UUID, action Action) (*models.Project, error) {
	updated, err := s.projects.Update(projectID, action.fields())
	if err != nil {
		return nil, err
	}

	if updated.OwnerEmail != "" {
		if err := s.notifier.SendStatusUpdate(*updated, updated.OwnerEmail); err != nil {
			s.logger.Warn("status notification failed",
				zap.Error(err),
				zap.String("project_id", updated.ID.String()),
				zap.String("owner_email", updated.OwnerEmail))
		}
	} else {
		s.logger.Warn("project has no owner email, skipping notification",
			zap.String("project_id", updated.ID.String()))
	}

	if s.realtime != nil {
		payload := supabase.StatusChangedPayload(updated.ID, string(updated.Status), updated.NFTMinted, updated.Funded)
		if err := s.realtime.PublishProjectEvent(updated.ID, "status_changed", payload); err != nil {
			s.logger.Warn("failed to publish status event", zap.Error(err))
		}
	}

	return updated, nil
}
