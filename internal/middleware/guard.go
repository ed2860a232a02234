package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"poi-backend/internal/auth"
	"poi-backend/internal/config"
	"poi-backend/internal/models"
)

// RoleResolver answers the single question the gate needs: does this identity
// hold the verifier capability. Implementations must fail to false.
type RoleResolver interface {
	IsVerifier(userID string) bool
}

// RouteGuard enforces the navigation policy table at the edge, before any
// page handler runs. The same auth.Decide table backs the in-API role checks,
// so the two enforcement points cannot disagree.
func RouteGuard(cfg *config.Config, roles RoleResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := sessionState(c, cfg, roles)
		decision := auth.Decide(state, auth.ClassifyPath(c.Request.URL.Path))
		if !decision.Allow {
			c.Redirect(http.StatusFound, decision.RedirectTo)
			c.Abort()
			return
		}
		c.Next()
	}
}

func sessionState(c *gin.Context, cfg *config.Config, roles RoleResolver) auth.SessionState {
	identity, err := ParseIdentity(c, cfg)
	if err != nil {
		return auth.Unauthenticated
	}
	c.Set(UserIDKey, identity.UserID)
	c.Set(UserEmailKey, identity.Email)
	if roles.IsVerifier(identity.UserID) {
		return auth.Verifier
	}
	return auth.Owner
}

// RequireVerifier is the API-side counterpart of the verifier-area gate:
// authenticated callers without the capability get a 403 instead of a
// redirect. Must run after AuthMiddleware.
func RequireVerifier(roles RoleResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(UserIDKey)
		if userID == "" || !roles.IsVerifier(userID) {
			c.JSON(http.StatusForbidden, models.ErrorResponse{Error: "forbidden", Message: "verifier role required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
