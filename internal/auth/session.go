package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Session credential cookies issued after a successful sign-in or code
// exchange. Both are path-scoped to /, secure, same-site-lax, one week.
const (
	AccessTokenCookie  = "sb-access-token"
	RefreshTokenCookie = "sb-refresh-token"
	// CodeVerifierCookie carries the PKCE verifier between the sign-in
	// redirect and the callback exchange.
	CodeVerifierCookie = "sb-pkce-verifier"

	SessionMaxAge = 7 * 24 * 60 * 60
)

func SetSessionCookies(c *gin.Context, accessToken, refreshToken string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AccessTokenCookie, accessToken, SessionMaxAge, "/", "", true, true)
	if refreshToken != "" {
		c.SetCookie(RefreshTokenCookie, refreshToken, SessionMaxAge, "/", "", true, true)
	}
}

func ClearSessionCookies(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AccessTokenCookie, "", -1, "/", "", true, true)
	c.SetCookie(RefreshTokenCookie, "", -1, "/", "", true, true)
}
