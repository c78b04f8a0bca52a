package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"atlasorg.app/console/common/logger"
	"atlasorg.app/console/internal/model"
	"atlasorg.app/console/internal/service"
	"github.com/gin-gonic/gin"
)

type contextKey string

const (
	sessionCookieName            = "console_session"
	userContextKey    contextKey = "user"
	sessionContextKey contextKey = "session"
)

// RequireAuth resolves the session cookie, loads the user and attaches both
// to the request context. Aborts with 401 when there is no valid session.
func RequireAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := getSessionID(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		user, session, err := authService.ValidateSession(c.Request.Context(), sessionID)
		if err != nil {
			if errors.Is(err, service.ErrSessionExpired) || errors.Is(err, service.ErrUserNotFound) {
				ClearSessionCookie(c, false)
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to validate session"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), userContextKey, user)
		ctx = context.WithValue(ctx, sessionContextKey, session)
		ctx = logger.WithLogFields(ctx, logger.LogFields{
			UserID:    &user.ID,
			SessionID: &session.ID,
		})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireSudo gates destructive routes behind a fresh re-authentication.
// Must be mounted after RequireAuth.
func RequireSudo() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := GetSession(c.Request.Context())
		if session == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		if !session.SudoActive(time.Now()) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "re-authentication required",
				"code":  "sudo_required",
			})
			return
		}

		c.Next()
	}
}

func GetUser(ctx context.Context) *model.User {
	user, _ := ctx.Value(userContextKey).(*model.User)
	return user
}

func GetSession(ctx context.Context) *model.Session {
	session, _ := ctx.Value(sessionContextKey).(*model.Session)
	return session
}

func SessionCookieName() string {
	return sessionCookieName
}

func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetCookie(
		sessionCookieName,
		"",
		-1,
		"/",
		"",
		secure,
		true,
	)
}

func getSessionID(c *gin.Context) (int64, error) {
	cookie, err := c.Cookie(sessionCookieName)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(cookie, 10, 64)
}
