package models

type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	// Role is "user" (default) or "verifier". A verifier signup also writes
	// the verifiers membership row.
	Role string `json:"role,omitempty"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description,omitempty"`
	Metric      string `json:"metric,omitempty"`
	Budget      string `json:"budget,omitempty"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Metric      *string `json:"metric,omitempty"`
	Budget      *string `json:"budget,omitempty"`
}

type DecisionRequest struct {
	// Action is "verify" or "reject".
	Action string `json:"action" binding:"required"`
}

type StatusEmailRequest struct {
	Project   Project `json:"project" binding:"required"`
	UserEmail string  `json:"userEmail" binding:"required,email"`
}
