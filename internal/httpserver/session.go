package httpserver

import (
	"net/http"
	"time"

	"gearstore/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultCookieName = "gear_cart"
	defaultCookieAge  = 30 * 24 * time.Hour
	sessionKey        = "gearstore.session"
)

// SessionConfig controls the cookie that identifies a visitor's cart.
type SessionConfig struct {
	CookieName string
	Secure     bool
	MaxAge     time.Duration
}

// sessionMiddleware assigns every visitor a random session id kept in a
// cookie. Unknown or malformed cookie values are replaced.
func sessionMiddleware(cfg SessionConfig, log *logger.Logger) gin.HandlerFunc {
	if cfg.CookieName == "" {
		cfg.CookieName = defaultCookieName
	}
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = defaultCookieAge
	}
	return func(c *gin.Context) {
		id, err := c.Cookie(cfg.CookieName)
		if err != nil || !validSessionID(id) {
			id = uuid.NewString()
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cfg.CookieName, id, int(cfg.MaxAge/time.Second), "/", "", cfg.Secure, true)

		c.Set(sessionKey, id)
		c.Request = c.Request.WithContext(log.WithSessionID(c.Request.Context(), id))
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}

func validSessionID(v string) bool {
	id, err := uuid.Parse(v)
	return err == nil && id.Version() == 4 && id.String() == v
}
