package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/supabase-community/gotrue-go/types"
	"go.uber.org/zap"

	"poi-backend/internal/auth"
	"poi-backend/internal/config"
	"poi-backend/internal/models"
	"poi-backend/internal/repository"
	"poi-backend/internal/supabase"
)

type AuthHandler struct {
	supa      *supabase.Client
	verifiers *repository.VerifierRepository
	cfg       *config.Config
	logger    *zap.Logger
}

func NewAuthHandler(supa *supabase.Client, verifiers *repository.VerifierRepository, cfg *config.Config, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		supa:      supa,
		verifiers: verifiers,
		cfg:       cfg,
		logger:    logger,
	}
}

// SignUp godoc
// @Summary     Create an account
// @Description Registers a new identity. Choosing the verifier role also records the verifiers membership row.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body models.SignUpRequest true "signup"
// @Success     200 {object} models.SessionResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /auth/signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	role := req.Role
	if role == "" {
		role = "user"
	}

	_, err := h.supa.Supabase.Auth.Signup(types.SignupRequest{
		Email:    req.Email,
		Password: req.Password,
		Data:     map[string]interface{}{"role": role},
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "signup failed", Message: err.Error()})
		return
	}

	// Mint a session right away so the client lands on its dashboard without
	// a second round-trip.
	token, err := h.supa.Supabase.Auth.SignInWithEmailPassword(req.Email, req.Password)
	if err != nil {
		// Email confirmation may be required before sign-in works.
		c.JSON(http.StatusOK, gin.H{"message": "signup successful, please sign in"})
		return
	}

	if role == "verifier" {
		if err := h.verifiers.Grant(token.User.ID); err != nil {
			h.logger.Error("failed to record verifier membership",
				zap.Error(err),
				zap.String("user_id", token.User.ID.String()))
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to record verifier role", Message: err.Error()})
			return
		}
	}

	h.respondWithSession(c, token)
}

// SignIn godoc
// @Summary     Sign in with email and password
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body models.SignInRequest true "credentials"
// @Success     200 {object} models.SessionResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /auth/login [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req models.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	token, err := h.supa.Supabase.Auth.SignInWithEmailPassword(req.Email, req.Password)
	if err != nil {
		// Surfaced inline; navigation never crashes on bad credentials.
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid credentials"})
		return
	}

	h.respondWithSession(c, token)
}

// SignOut godoc
// @Summary     Sign out and clear session cookies
// @Tags        auth
// @Produce     json
// @Success     200 {object} models.SuccessResponse
// @Router      /auth/logout [post]
func (h *AuthHandler) SignOut(c *gin.Context) {
	if token := sessionToken(c); token != "" {
		if err := h.supa.Supabase.Auth.WithToken(token).Logout(); err != nil {
			h.logger.Warn("logout call failed", zap.Error(err))
		}
	}
	auth.ClearSessionCookies(c)
	c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}

// Callback handles the authorization-code exchange: a one-time code arrives
// from the hosted auth redirect, is exchanged for a session, and the session
// credentials are issued as cookies. Any failure lands back on /login with an
// error marker; a failed exchange never falls through to a protected path.
func (h *AuthHandler) Callback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusFound, auth.LoginPath+"?error=no_code")
		return
	}

	verifier, _ := c.Cookie(auth.CodeVerifierCookie)
	token, err := h.supa.Supabase.Auth.Token(types.TokenRequest{
		GrantType:    "pkce",
		Code:         code,
		CodeVerifier: verifier,
	})
	if err != nil {
		h.logger.Warn("auth callback exchange failed", zap.Error(err))
		c.Redirect(http.StatusFound, auth.LoginPath+"?error=auth_callback_failed")
		return
	}

	auth.SetSessionCookies(c, token.AccessToken, token.RefreshToken)

	state := auth.Owner
	if h.verifiers.IsVerifier(token.User.ID.String()) {
		state = auth.Verifier
	}
	c.Redirect(http.StatusFound, auth.DashboardFor(state))
}

func (h *AuthHandler) respondWithSession(c *gin.Context, token *types.TokenResponse) {
	isVerifier := h.verifiers.IsVerifier(token.User.ID.String())
	state := auth.Owner
	if isVerifier {
		state = auth.Verifier
	}

	auth.SetSessionCookies(c, token.AccessToken, token.RefreshToken)

	c.JSON(http.StatusOK, models.SessionResponse{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresIn:    token.ExpiresIn,
		UserID:       token.User.ID.String(),
		Email:        token.User.Email,
		IsVerifier:   isVerifier,
		RedirectTo:   auth.DashboardFor(state),
	})
}

func sessionToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.Split(header, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return strings.TrimSpace(parts[1])
		}
	}
	if cookie, err := c.Cookie(auth.AccessTokenCookie); err == nil {
		return cookie
	}
	return ""
}
