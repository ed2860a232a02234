// Package mailer sends the project status notification over plain SMTP.
package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"go.uber.org/zap"

	"poi-backend/internal/config"
	"poi-backend/internal/models"
)

var statusColors = map[models.ProjectStatus]string{
	models.StatusApproved: "#00C853",
	models.StatusRejected: "#D32F2F",
	models.StatusPending:  "#FFA000",
}

const statusEmailTemplate = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">Project Status Update</h2>
  <p>Your project "{{.Name}}" has been {{.StatusLower}}.</p>
  <div style="background-color: #f5f5f5; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="color: {{.Color}}; margin-top: 0;">Status: {{.Status}}</h3>
    <p><strong>Project Name:</strong> {{.Name}}</p>
    <p><strong>Description:</strong> {{.Description}}</p>
    <p><strong>Impact Metric:</strong> {{.Metric}}</p>
    <p><strong>Budget:</strong> ${{.Budget}}</p>
  </div>
{{if .Approved}}  <div style="background: #E8F5E9; padding: 15px; border-radius: 4px;">
    <p style="color: #00C853; margin: 0;">Congratulations! Your project has been verified and an NFT will be minted soon.</p>
  </div>
{{end}}  <p style="color: #666; font-size: 14px;">This is an automated message from the POI Validation System.</p>
</div>`

var statusTemplate = template.Must(template.New("status").Parse(statusEmailTemplate))

type Mailer struct {
	host   string
	port   int
	user   string
	pass   string
	from   string
	logger *zap.Logger
}

func New(cfg *config.Config, logger *zap.Logger) *Mailer {
	return &Mailer{
		host:   cfg.SMTPHost,
		port:   cfg.SMTPPort,
		user:   cfg.SMTPUser,
		pass:   cfg.SMTPPass,
		from:   cfg.SMTPFrom,
		logger: logger,
	}
}

// SendStatusUpdate emails the project's new status to its owner. One attempt,
// no retries; callers decide whether failure matters.
func (m *Mailer) SendStatusUpdate(project models.Project, to string) error {
	if m.host == "" {
		return fmt.Errorf("smtp transport not configured")
	}

	subject := Subject(project)
	body, err := RenderStatusEmail(project)
	if err != nil {
		return fmt.Errorf("failed to render status email: %w", err)
	}

	msg := buildMessage(m.from, to, subject, body)

	var auth smtp.Auth
	if m.user != "" {
		auth = smtp.PlainAuth("", m.user, m.pass, m.host)
	}

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	if err := smtp.SendMail(addr, auth, m.from, []string{to}, msg); err != nil {
		m.logger.Error("failed to send status email",
			zap.Error(err),
			zap.String("to", to),
			zap.String("project_id", project.ID.String()))
		return fmt.Errorf("failed to send email: %w", err)
	}

	m.logger.Info("status email sent",
		zap.String("to", to),
		zap.String("project_id", project.ID.String()),
		zap.String("status", string(project.Status)))
	return nil
}

// Subject follows the original notification format.
func Subject(project models.Project) string {
	return fmt.Sprintf("Project %s: %s", project.Status, project.Name)
}

// RenderStatusEmail produces the HTML body for a status notification.
func RenderStatusEmail(project models.Project) (string, error) {
	data := struct {
		Name        string
		Description string
		Metric      string
		Budget      string
		Status      models.ProjectStatus
		StatusLower string
		Color       string
		Approved    bool
	}{
		Name:        project.Name,
		Description: orNA(project.Description),
		Metric:      orNA(project.Metric),
		Budget:      fmt.Sprintf("%.2f", project.BudgetAmount()),
		Status:      project.Status,
		StatusLower: lower(project.Status),
		Color:       statusColors[project.Status],
		Approved:    project.Status == models.StatusApproved,
	}

	var buf bytes.Buffer
	if err := statusTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func buildMessage(from, to, subject, htmlBody string) []byte {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("From: POI Validation <%s>\r\n", from))
	buf.WriteString(fmt.Sprintf("To: %s\r\n", to))
	buf.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(htmlBody)
	return buf.Bytes()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func lower(status models.ProjectStatus) string {
	switch status {
	case models.StatusApproved:
		return "approved"
	case models.StatusRejected:
		return "rejected"
	default:
		return "submitted"
	}
}
