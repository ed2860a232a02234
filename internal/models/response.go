package models

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type SessionResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	IsVerifier   bool   `json:"is_verifier"`
	// RedirectTo is the role-appropriate landing page for this session.
	RedirectTo string `json:"redirect_to"`
}

type ProjectListResponse struct {
	Projects []Project `json:"projects"`
	Stats    Stats     `json:"stats"`
}

type EvidenceListResponse struct {
	Evidence []Evidence `json:"evidence"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}
