package api

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/algonest/algonest/internal/auth"
	"github.com/algonest/algonest/internal/common"
	"github.com/algonest/algonest/internal/oauth"
	"github.com/algonest/algonest/internal/profile"
	"github.com/algonest/algonest/internal/store"
	"github.com/algonest/algonest/internal/submission"
)

type Handler struct {
	queries         store.Querier
	auth            *auth.Service
	submissions     *submission.Service
	profiles        *profile.Service
	google          oauth.Provider // nil when Google sign-in is not configured
	frontendOrigins []string
	cookieSecure    bool
	now             func() time.Time
}

// respondError writes err with the status HTTPStatusFromError assigns to it.
// Server-side failures are logged and reported without internal detail.
func respondError(c *gin.Context, err error) {
	status := common.HTTPStatusFromError(err)
	if status >= http.StatusInternalServerError && !errors.Is(err, common.ErrJudgeUnavailable) && !errors.Is(err, common.ErrJudgeTimeout) {
		log.Printf("api: %s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// paramID parses the :id path parameter, answering 400 when it is not a UUID.
func paramID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) clock() time.Time {
	if h.now != nil {
		return h.now()
	}
	return time.Now()
}

func (h *Handler) setSessionCookie(c *gin.Context, token string, ttl time.Duration) {
	h.writeCookie(c, auth.CookieName, token, int(ttl.Seconds()))
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	h.writeCookie(c, auth.CookieName, "", -1)
}

// writeCookie sets an HttpOnly cookie. Secure deployments serve the frontend
// from another origin, which needs SameSite=None.
func (h *Handler) writeCookie(c *gin.Context, name, value string, maxAge int) {
	if h.cookieSecure {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(name, value, maxAge, "/", "", h.cookieSecure, true)
}

// issueSession signs a token for u and sets it as the session cookie.
func (h *Handler) issueSession(c *gin.Context, u store.User) bool {
	token, _, err := h.auth.Issuer().Issue(u)
	if err != nil {
		respondError(c, err)
		return false
	}
	h.setSessionCookie(c, token, h.auth.Issuer().TTL())
	return true
}
