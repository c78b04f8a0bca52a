package handler

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"atlasorg.app/console/internal/http/dto"
	"atlasorg.app/console/internal/http/middleware"
	"atlasorg.app/console/internal/service"
	"github.com/gin-gonic/gin"
)

const (
	stateCookieName = "console_oauth_state"
	sessionMaxAge   = 7 * 24 * 60 * 60
)

type AuthHandler struct {
	authService  service.AuthService
	dashboardURL string
	isProduction bool
}

func NewAuthHandler(authService service.AuthService, dashboardURL string, isProduction bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		dashboardURL: dashboardURL,
		isProduction: isProduction,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	state, err := generateState()
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to generate state", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to initiate login"})
		return
	}

	authURL, err := h.authService.GetAuthorizationURL(state)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to get authorization URL", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to initiate login"})
		return
	}

	c.SetCookie(
		stateCookieName,
		state,
		600,
		"/",
		"",
		h.isProduction,
		true,
	)

	c.Redirect(http.StatusTemporaryRedirect, authURL)
}

func (h *AuthHandler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	code := c.Query("code")
	state := c.Query("state")
	errorParam := c.Query("error")
	errorDescription := c.Query("error_description")

	if errorParam != "" {
		slog.WarnContext(ctx, "OAuth error", "error", errorParam, "description", errorDescription)
		c.Redirect(http.StatusTemporaryRedirect, h.dashboardURL+"?auth_error="+errorParam)
		return
	}

	storedState, err := c.Cookie(stateCookieName)
	if err != nil || state != storedState {
		slog.WarnContext(ctx, "state mismatch", "expected", storedState, "got", state)
		c.Redirect(http.StatusTemporaryRedirect, h.dashboardURL+"?auth_error=invalid_state")
		return
	}

	h.clearStateCookie(c)

	if code == "" {
		c.Redirect(http.StatusTemporaryRedirect, h.dashboardURL+"?auth_error=no_code")
		return
	}

	user, session, err := h.authService.HandleCallback(ctx, code)
	if err != nil {
		slog.ErrorContext(ctx, "failed to handle callback", "error", err)
		if errors.Is(err, service.ErrInvalidCode) {
			c.Redirect(http.StatusTemporaryRedirect, h.dashboardURL+"?auth_error=invalid_code")
			return
		}
		c.Redirect(http.StatusTemporaryRedirect, h.dashboardURL+"?auth_error=callback_failed")
		return
	}

	h.setSessionCookie(c, session.ID)

	slog.InfoContext(ctx, "user logged in", "user_id", user.ID, "email", user.Email)

	c.Redirect(http.StatusTemporaryRedirect, h.dashboardURL+"/dashboard")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	session := middleware.GetSession(ctx)
	if session != nil {
		if err := h.authService.Logout(ctx, session.ID); err != nil {
			slog.WarnContext(ctx, "failed to delete session", "error", err, "session_id", session.ID)
		}
	}

	middleware.ClearSessionCookie(c, h.isProduction)

	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.GetUser(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

type SudoRequest struct {
	Password string `json:"password" binding:"required"`
}

// Sudo re-verifies the password and stamps a short elevation window onto the
// session. Account closure and organization deletion are gated behind it.
func (h *AuthHandler) Sudo(c *gin.Context) {
	ctx := c.Request.Context()

	var req SudoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password is required"})
		return
	}

	user := middleware.GetUser(ctx)
	session := middleware.GetSession(ctx)

	if err := h.authService.Sudo(ctx, user, session, req.Password); err != nil {
		if errors.Is(err, service.ErrInvalidPassword) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid password"})
			return
		}
		slog.ErrorContext(ctx, "failed to elevate session", "error", err, "session_id", session.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to elevate session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "session elevated",
		"sudo_expires_at": session.SudoExpiresAt,
	})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, sessionID int64) {
	c.SetCookie(
		middleware.SessionCookieName(),
		strconv.FormatInt(sessionID, 10),
		sessionMaxAge,
		"/",
		"",
		h.isProduction,
		true,
	)
}

func (h *AuthHandler) clearStateCookie(c *gin.Context) {
	c.SetCookie(
		stateCookieName,
		"",
		-1,
		"/",
		"",
		h.isProduction,
		true,
	)
}

func generateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
