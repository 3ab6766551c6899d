package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/algonest/algonest/internal/auth"
	"github.com/algonest/algonest/internal/common"
	"github.com/algonest/algonest/internal/profile"
)

type registerRequest struct {
	FirstName string `json:"firstName" binding:"required,min=2,max=50"`
	LastName  string `json:"lastName" binding:"max=50"`
	Email     string `json:"emailID" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	Role      string `json:"role" binding:"omitempty,oneof=user admin"`
}

// Register creates a user account and starts a session.
func (h *Handler) Register(c *gin.Context) {
	var body registerRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	u, err := h.auth.Register(c.Request.Context(), auth.Registration{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
		Password:  body.Password,
		Role:      auth.RoleUser,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	if !h.issueSession(c, u) {
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":    profile.PublicUser(u),
		"message": "registered successfully",
	})
}

// AdminRegister lets an admin create an account with any role.
func (h *Handler) AdminRegister(c *gin.Context) {
	var body registerRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	u, err := h.auth.Register(c.Request.Context(), auth.Registration{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
		Password:  body.Password,
		Role:      body.Role,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":    profile.PublicUser(u),
		"message": "user registered successfully",
	})
}

// Login checks credentials and starts a session.
func (h *Handler) Login(c *gin.Context) {
	var body struct {
		Email    string `json:"emailID" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	u, err := h.auth.Login(c.Request.Context(), body.Email, body.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	if !h.issueSession(c, u) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":    profile.PublicUser(u),
		"message": "logged in successfully",
	})
}

// Logout clears the session cookie and revokes its token. It always succeeds
// from the client's point of view.
func (h *Handler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	if tok := auth.TokenFromRequest(c); tok != "" {
		if err := h.auth.Logout(c.Request.Context(), tok); err != nil {
			log.Printf("api: revoke token: %v", err)
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "logged out successfully"})
}

// Check returns the current session's user.
func (h *Handler) Check(c *gin.Context) {
	u := auth.FromContext(c)
	c.JSON(http.StatusOK, gin.H{
		"user":    profile.PublicUser(*u),
		"message": "valid user",
	})
}

// DeleteProfile removes the current user. Submissions and solved entries go
// with it through ON DELETE CASCADE.
func (h *Handler) DeleteProfile(c *gin.Context) {
	u := auth.FromContext(c)
	ctx := c.Request.Context()

	n, err := h.queries.DeleteUser(ctx, u.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	if n == 0 {
		respondError(c, common.ErrNotFound)
		return
	}
	if tok := auth.TokenFromRequest(c); tok != "" {
		if err := h.auth.Logout(ctx, tok); err != nil {
			log.Printf("api: revoke token: %v", err)
		}
	}
	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "deleted successfully"})
}
