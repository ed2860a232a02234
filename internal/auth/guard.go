// Package auth holds the session/role gate: the navigation policy table and
// the session cookie contract. The policy lives here as pure data so the edge
// middleware and any in-handler checks evaluate the same table and cannot
// drift apart.
package auth

import "strings"

type SessionState int

const (
	Unauthenticated SessionState = iota
	Owner
	Verifier
)

type PathClass int

const (
	PathPublic PathClass = iota
	PathAuth
	PathOwner
	PathVerifier
)

const (
	LoginPath             = "/login"
	SignupPath            = "/signup"
	OwnerDashboardPath    = "/dashboard"
	VerifierDashboardPath = "/verifier"
)

// ClassifyPath maps a navigation target onto the policy table's path classes.
// Unknown paths are public.
func ClassifyPath(path string) PathClass {
	switch {
	case path == LoginPath || path == SignupPath:
		return PathAuth
	case strings.HasPrefix(path, OwnerDashboardPath) || strings.HasPrefix(path, "/projects"):
		return PathOwner
	case strings.HasPrefix(path, VerifierDashboardPath):
		return PathVerifier
	default:
		return PathPublic
	}
}

// Decision is the outcome of evaluating one navigation attempt.
type Decision struct {
	Allow      bool
	RedirectTo string
}

var allow = Decision{Allow: true}

func redirect(target string) Decision {
	return Decision{RedirectTo: target}
}

// Decide evaluates the policy table for a session state and target path class.
// Verifiers are excluded from the owner area, not just the reverse.
func Decide(state SessionState, class PathClass) Decision {
	switch state {
	case Unauthenticated:
		if class == PathOwner || class == PathVerifier {
			return redirect(LoginPath)
		}
		return allow
	case Owner:
		if class == PathAuth || class == PathVerifier {
			return redirect(OwnerDashboardPath)
		}
		return allow
	case Verifier:
		if class == PathAuth || class == PathOwner {
			return redirect(VerifierDashboardPath)
		}
		return allow
	}
	return redirect(LoginPath)
}

// DashboardFor returns the landing page for a session state.
func DashboardFor(state SessionState) string {
	if state == Verifier {
		return VerifierDashboardPath
	}
	return OwnerDashboardPath
}
