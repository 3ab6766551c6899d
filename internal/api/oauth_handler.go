package api

import (
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/algonest/algonest/internal/oauth"
)

const (
	nonceCookie = "oauth_nonce"
	nonceMaxAge = 10 * 60
)

// GoogleLogin redirects the browser to Google's consent page. The caller may
// pass redirect_uri, which must belong to an allowed frontend origin.
func (h *Handler) GoogleLogin(c *gin.Context) {
	if h.google == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "google sign-in is not configured"})
		return
	}

	redirectURI := c.DefaultQuery("redirect_uri", h.defaultRedirect())
	if !h.allowedRedirect(redirectURI) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "redirect_uri is not allowed"})
		return
	}

	state, nonce, err := oauth.EncodeState(redirectURI, h.clock())
	if err != nil {
		respondError(c, err)
		return
	}
	h.writeCookie(c, nonceCookie, nonce, nonceMaxAge)
	c.Redirect(http.StatusFound, h.google.AuthURL(state))
}

// GoogleCallback is called by Google after consent. The user is found by
// email or created, and a session cookie is set before redirecting back.
func (h *Handler) GoogleCallback(c *gin.Context) {
	if h.google == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "google sign-in is not configured"})
		return
	}

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing code"})
		return
	}
	state, err := oauth.DecodeState(c.Query("state"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if state.Expired(h.clock(), nonceMaxAge*time.Second) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sign-in expired, please try again"})
		return
	}
	nonce, err := c.Cookie(nonceCookie)
	if err != nil || nonce != state.Nonce {
		c.JSON(http.StatusBadRequest, gin.H{"error": "state mismatch"})
		return
	}
	h.writeCookie(c, nonceCookie, "", -1)
	if !h.allowedRedirect(state.RedirectURI) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "redirect_uri is not allowed"})
		return
	}

	ctx := c.Request.Context()
	token, err := h.google.Exchange(ctx, code)
	if err != nil {
		log.Printf("api: google exchange: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "token exchange failed"})
		return
	}
	info, err := h.google.UserInfo(ctx, token.AccessToken)
	if err != nil {
		log.Printf("api: google userinfo: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch user info"})
		return
	}

	u, err := h.auth.FindOrCreateExternal(ctx, info.Email, info.FirstName, info.LastName)
	if err != nil {
		respondError(c, err)
		return
	}
	if !h.issueSession(c, u) {
		return
	}
	c.Redirect(http.StatusFound, state.RedirectURI)
}

func (h *Handler) defaultRedirect() string {
	if len(h.frontendOrigins) == 0 {
		return ""
	}
	return h.frontendOrigins[0]
}

// allowedRedirect reports whether raw is an absolute URL on one of the
// configured frontend origins.
func (h *Handler) allowedRedirect(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}
	origin := u.Scheme + "://" + u.Host
	for _, o := range h.frontendOrigins {
		if strings.EqualFold(strings.TrimRight(o, "/"), origin) {
			return true
		}
	}
	return false
}
