package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/algonest/algonest/internal/auth"
	"github.com/algonest/algonest/internal/submission"
)

type codeRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

// bindCode builds the orchestrator input from the path id, the session user
// and the body. Empty fields are left for the orchestrator to reject.
func bindCode(c *gin.Context) (submission.Input, bool) {
	id, ok := paramID(c)
	if !ok {
		return submission.Input{}, false
	}
	var body codeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return submission.Input{}, false
	}
	return submission.Input{
		UserID:    auth.FromContext(c).ID,
		ProblemID: id,
		Code:      body.Code,
		Language:  body.Language,
	}, true
}

// RunCode evaluates code against the problem's visible cases.
func (h *Handler) RunCode(c *gin.Context) {
	in, ok := bindCode(c)
	if !ok {
		return
	}
	res, err := h.submissions.Run(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// SubmitCode evaluates code against the hidden cases and records the submission.
func (h *Handler) SubmitCode(c *gin.Context) {
	in, ok := bindCode(c)
	if !ok {
		return
	}
	res, err := h.submissions.Submit(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}
