package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"poi-backend/internal/auth"
)

func TestClassifyPath(t *testing.T) {
	assert.Equal(t, auth.PathAuth, auth.ClassifyPath("/login"))
	assert.Equal(t, auth.PathAuth, auth.ClassifyPath("/signup"))
	assert.Equal(t, auth.PathOwner, auth.ClassifyPath("/dashboard"))
	assert.Equal(t, auth.PathOwner, auth.ClassifyPath("/projects/new"))
	assert.Equal(t, auth.PathVerifier, auth.ClassifyPath("/verifier"))
	assert.Equal(t, auth.PathPublic, auth.ClassifyPath("/"))
	assert.Equal(t, auth.PathPublic, auth.ClassifyPath("/health"))
}

func TestDecide_Unauthenticated(t *testing.T) {
	tests := []struct {
		name     string
		class    auth.PathClass
		allow    bool
		redirect string
	}{
		{"owner area redirects to login", auth.PathOwner, false, "/login"},
		{"verifier area redirects to login", auth.PathVerifier, false, "/login"},
		{"auth pages allowed", auth.PathAuth, true, ""},
		{"public allowed", auth.PathPublic, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := auth.Decide(auth.Unauthenticated, tt.class)
			assert.Equal(t, tt.allow, decision.Allow)
			assert.Equal(t, tt.redirect, decision.RedirectTo)
		})
	}
}

func TestDecide_Owner(t *testing.T) {
	tests := []struct {
		name     string
		class    auth.PathClass
		allow    bool
		redirect string
	}{
		{"auth pages redirect to dashboard", auth.PathAuth, false, "/dashboard"},
		{"verifier area redirects to dashboard", auth.PathVerifier, false, "/dashboard"},
		{"owner area allowed", auth.PathOwner, true, ""},
		{"public allowed", auth.PathPublic, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := auth.Decide(auth.Owner, tt.class)
			assert.Equal(t, tt.allow, decision.Allow)
			assert.Equal(t, tt.redirect, decision.RedirectTo)
		})
	}
}

func TestDecide_Verifier(t *testing.T) {
	tests := []struct {
		name     string
		class    auth.PathClass
		allow    bool
		redirect string
	}{
		{"auth pages redirect to verifier dashboard", auth.PathAuth, false, "/verifier"},
		{"owner area redirects to verifier dashboard", auth.PathOwner, false, "/verifier"},
		{"verifier area allowed", auth.PathVerifier, true, ""},
		{"public allowed", auth.PathPublic, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := auth.Decide(auth.Verifier, tt.class)
			assert.Equal(t, tt.allow, decision.Allow)
			assert.Equal(t, tt.redirect, decision.RedirectTo)
		})
	}
}

func TestDashboardFor(t *testing.T) {
	assert.Equal(t, "/dashboard", auth.DashboardFor(auth.Owner))
	assert.Equal(t, "/verifier", auth.DashboardFor(auth.Verifier))
	assert.Equal(t, "/dashboard", auth.DashboardFor(auth.Unauthenticated))
}
