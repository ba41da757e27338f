package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// RefreshCookieName is the only cookie this service sets.
const RefreshCookieName = "refreshToken"

// CookiePolicy maps refresh-token transport configuration to Set-Cookie
// attributes. The token never appears in a response body.
type CookiePolicy struct {
	MaxAge     time.Duration
	Production bool
}

// sameSite is Strict for same-origin development setups and None for the
// cross-site production deployment (the cookie is Secure either way).
func (p CookiePolicy) sameSite() http.SameSite {
	if p.Production {
		return http.SameSiteNoneMode
	}
	return http.SameSiteStrictMode
}

// Set attaches the refresh cookie to the response.
func (p CookiePolicy) Set(c *gin.Context, token string) {
	c.SetSameSite(p.sameSite())
	c.SetCookie(RefreshCookieName, token, int(p.MaxAge.Seconds()), "/", "", true, true)
}

// Clear expires the refresh cookie immediately.
func (p CookiePolicy) Clear(c *gin.Context) {
	c.SetSameSite(p.sameSite())
	c.SetCookie(RefreshCookieName, "", -1, "/", "", true, true)
}
