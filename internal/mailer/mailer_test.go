package mailer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"poi-backend/internal/config"
	"poi-backend/internal/mailer"
	"poi-backend/internal/models"
)

func approvedProject() models.Project {
	return models.Project{
		Name:        "Alpha Initiative",
		Description: "Clean water wells",
		Metric:      "10 wells drilled",
		Budget:      "5000",
		Status:      models.StatusApproved,
	}
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "Project Approved: Alpha Initiative", mailer.Subject(approvedProject()))

	rejected := approvedProject()
	rejected.Status = models.StatusRejected
	assert.Equal(t, "Project Rejected: Alpha Initiative", mailer.Subject(rejected))
}

func TestRenderStatusEmail_Approved(t *testing.T) {
	body, err := mailer.RenderStatusEmail(approvedProject())
	require.NoError(t, err)

	assert.Contains(t, body, "Project Status Update")
	assert.Contains(t, body, "Alpha Initiative")
	assert.Contains(t, body, "has been approved")
	assert.Contains(t, body, "Clean water wells")
	assert.Contains(t, body, "10 wells drilled")
	assert.Contains(t, body, "$5000.00")
	assert.Contains(t, body, "an NFT will be minted soon")
}

func TestRenderStatusEmail_Rejected(t *testing.T) {
	project := approvedProject()
	project.Status = models.StatusRejected

	body, err := mailer.RenderStatusEmail(project)
	require.NoError(t, err)

	assert.Contains(t, body, "has been rejected")
	assert.NotContains(t, body, "Congratulations")
}

func TestRenderStatusEmail_MissingFields(t *testing.T) {
	project := models.Project{
		Name:   "Bare Project",
		Budget: "not-a-number",
		Status: models.StatusApproved,
	}

	body, err := mailer.RenderStatusEmail(project)
	require.NoError(t, err)

	assert.Contains(t, body, "N/A")
	assert.Contains(t, body, "$0.00")
}

func TestSendStatusUpdate_UnconfiguredTransport(t *testing.T) {
	m := mailer.New(&config.Config{}, zap.NewNop())
	err := m.SendStatusUpdate(approvedProject(), "owner@example.com")
	assert.Error(t, err)
}
