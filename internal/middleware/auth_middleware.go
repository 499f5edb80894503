package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"helpize/internal/utils"
	"helpize/pkg/logger"
)

const userEmailKey = "user_email"

// SessionManager keeps the logged-in email in a signed session cookie.
type SessionManager struct {
	secret string
	ttl    time.Duration
	secure bool
	logger *logger.Logger
}

func NewSessionManager(secret string, ttl time.Duration, secure bool, log *logger.Logger) *SessionManager {
	if ttl <= 0 {
		ttl = utils.SessionTTL
	}
	return &SessionManager{
		secret: secret,
		ttl:    ttl,
		secure: secure,
		logger: log,
	}
}

// LoadSession resolves the session cookie, if any, into the request context.
// Invalid or expired cookies are cleared and the request continues anonymously.
func (m *SessionManager) LoadSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(utils.SessionCookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		claims, err := utils.ValidateSessionToken(token, m.secret)
		if err != nil {
			m.logger.WithField("request_id", c.GetString(requestIDKey)).
				LogSecurityEvent("invalid_session", "low", map[string]interface{}{"error": err.Error()})
			m.ClearSession(c)
			c.Next()
			return
		}

		c.Set(userEmailKey, claims.Email)
		c.Request = c.Request.WithContext(logger.ContextWithUser(c.Request.Context(), utils.MaskEmail(claims.Email)))
		c.Next()
	}
}

// SetSession establishes email as the session identity.
func (m *SessionManager) SetSession(c *gin.Context, email string) error {
	token, err := utils.GenerateSessionToken(email, m.secret, m.ttl)
	if err != nil {
		return err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(utils.SessionCookieName, token, int(m.ttl.Seconds()), "/", "", m.secure, true)
	c.Set(userEmailKey, email)
	return nil
}

func (m *SessionManager) ClearSession(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(utils.SessionCookieName, "", -1, "/", "", m.secure, true)
	c.Set(userEmailKey, "")
}

// CurrentUser returns the session email, if the request has one.
func CurrentUser(c *gin.Context) (string, bool) {
	email := c.GetString(userEmailKey)
	return email, email != ""
}

// LoginRequired redirects anonymous requests to loginPath.
func LoginRequired(loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}
