package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/algonest/algonest/internal/auth"
	"github.com/algonest/algonest/internal/common"
	"github.com/algonest/algonest/internal/store"
)

type problemRequest struct {
	Title             string                    `json:"title" binding:"required"`
	Description       string                    `json:"description" binding:"required"`
	Difficulty        string                    `json:"difficulty" binding:"required,oneof=easy medium hard"`
	Tags              []string                  `json:"tags"`
	VisibleTestCases  []store.TestCase          `json:"visibleTestCases" binding:"required,min=1"`
	HiddenTestCases   []store.TestCase          `json:"hiddenTestCases" binding:"required,min=1"`
	StartCode         []store.StartCode         `json:"startCode"`
	ReferenceSolution []store.ReferenceSolution `json:"referenceSolution" binding:"required,min=1"`
	FunctionName      string                    `json:"functionName"`
	IsDailyChallenge  bool                      `json:"isDailyChallenge"`
}

// problemView is a problem as returned to clients. Hidden cases are only
// filled in for admins.
type problemView struct {
	ID                uuid.UUID                 `json:"id"`
	Title             string                    `json:"title"`
	Slug              string                    `json:"slug"`
	Description       string                    `json:"description"`
	Difficulty        string                    `json:"difficulty"`
	Tags              []string                  `json:"tags"`
	VisibleTestCases  []store.TestCase          `json:"visibleTestCases"`
	HiddenTestCases   []store.TestCase          `json:"hiddenTestCases,omitempty"`
	StartCode         []store.StartCode         `json:"startCode"`
	ReferenceSolution []store.ReferenceSolution `json:"referenceSolution"`
	FunctionName      string                    `json:"functionName,omitempty"`
	IsDailyChallenge  bool                      `json:"isDailyChallenge"`
	CreatedAt         time.Time                 `json:"createdAt"`
}

type encodedProblem struct {
	visible, hidden, start, refs []byte
}

func encodeProblem(body problemRequest) (*encodedProblem, error) {
	var (
		e   encodedProblem
		err error
	)
	if e.visible, err = store.EncodeList(body.VisibleTestCases); err != nil {
		return nil, err
	}
	if e.hidden, err = store.EncodeList(body.HiddenTestCases); err != nil {
		return nil, err
	}
	if e.start, err = store.EncodeList(body.StartCode); err != nil {
		return nil, err
	}
	if e.refs, err = store.EncodeList(body.ReferenceSolution); err != nil {
		return nil, err
	}
	return &e, nil
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(strings.ToLower(t)); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func textOrNull(s string) pgtype.Text {
	s = strings.TrimSpace(s)
	return pgtype.Text{String: s, Valid: s != ""}
}

// CreateProblem stores a new problem once every reference solution passes
// the visible test cases.
func (h *Handler) CreateProblem(c *gin.Context) {
	var body problemRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()

	if err := h.submissions.ValidateReferences(ctx, body.ReferenceSolution, body.VisibleTestCases, body.FunctionName); err != nil {
		respondError(c, err)
		return
	}
	enc, err := encodeProblem(body)
	if err != nil {
		respondError(c, err)
		return
	}

	u := auth.FromContext(c)
	p, err := h.queries.CreateProblem(ctx, store.CreateProblemParams{
		Title:             strings.TrimSpace(body.Title),
		Slug:              slug.Make(body.Title),
		Description:       body.Description,
		Difficulty:        body.Difficulty,
		Tags:              normalizeTags(body.Tags),
		VisibleTestCases:  enc.visible,
		HiddenTestCases:   enc.hidden,
		StartCode:         enc.start,
		ReferenceSolution: enc.refs,
		FunctionName:      textOrNull(body.FunctionName),
		IsDailyChallenge:  body.IsDailyChallenge,
		CreatedBy:         uuid.NullUUID{UUID: u.ID, Valid: true},
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": p.ID, "slug": p.Slug, "message": "problem saved successfully"})
}

// UpdateProblem replaces a problem, revalidating its reference solutions.
func (h *Handler) UpdateProblem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var body problemRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()

	if _, err := h.queries.GetProblem(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	if err := h.submissions.ValidateReferences(ctx, body.ReferenceSolution, body.VisibleTestCases, body.FunctionName); err != nil {
		respondError(c, err)
		return
	}
	enc, err := encodeProblem(body)
	if err != nil {
		respondError(c, err)
		return
	}

	p, err := h.queries.UpdateProblem(ctx, store.UpdateProblemParams{
		ID:                id,
		Title:             strings.TrimSpace(body.Title),
		Slug:              slug.Make(body.Title),
		Description:       body.Description,
		Difficulty:        body.Difficulty,
		Tags:              normalizeTags(body.Tags),
		VisibleTestCases:  enc.visible,
		HiddenTestCases:   enc.hidden,
		StartCode:         enc.start,
		ReferenceSolution: enc.refs,
		FunctionName:      textOrNull(body.FunctionName),
		IsDailyChallenge:  body.IsDailyChallenge,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	view, err := problemViewOf(p, true)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) DeleteProblem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	n, err := h.queries.DeleteProblem(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if n == 0 {
		respondError(c, fmt.Errorf("%w: problem not found", common.ErrNotFound))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "problem deleted successfully"})
}

func (h *Handler) GetProblem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	p, err := h.queries.GetProblem(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	h.writeProblem(c, p)
}

func (h *Handler) GetProblemBySlug(c *gin.Context) {
	p, err := h.queries.GetProblemBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	h.writeProblem(c, p)
}

func (h *Handler) ListProblems(c *gin.Context) {
	rows, err := h.queries.ListProblems(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if rows == nil {
		rows = []store.ListProblemsRow{}
	}
	c.JSON(http.StatusOK, rows)
}

// SolvedProblems lists the problems the current user has an accepted submission for.
func (h *Handler) SolvedProblems(c *gin.Context) {
	u := auth.FromContext(c)
	rows, err := h.queries.ListSolvedProblems(c.Request.Context(), u.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	if rows == nil {
		rows = []store.ListSolvedProblemsRow{}
	}
	c.JSON(http.StatusOK, rows)
}

// ProblemSubmissions lists the current user's submissions for one problem.
func (h *Handler) ProblemSubmissions(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	u := auth.FromContext(c)
	subs, err := h.queries.ListSubmissionsForProblem(c.Request.Context(), store.ListSubmissionsForProblemParams{
		UserID:    u.ID,
		ProblemID: id,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	if len(subs) == 0 {
		c.JSON(http.StatusOK, gin.H{"submissions": []store.Submission{}, "message": "no submissions yet"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"submissions": subs})
}

// DailyProblem returns the daily challenge for the current UTC date.
func (h *Handler) DailyProblem(c *gin.Context) {
	ctx := c.Request.Context()
	ids, err := h.queries.ListDailyChallengeProblemIDs(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	id, ok := dailyPick(ids, h.clock())
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no daily challenge available"})
		return
	}
	p, err := h.queries.GetProblem(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	h.writeProblem(c, p)
}

// dailyPick picks one id per UTC day, rotating through ids in order.
func dailyPick(ids []uuid.UUID, now time.Time) (uuid.UUID, bool) {
	if len(ids) == 0 {
		return uuid.Nil, false
	}
	day := now.UTC().Unix() / int64(24*time.Hour/time.Second)
	return ids[int(day%int64(len(ids)))], true
}

func (h *Handler) writeProblem(c *gin.Context, p store.Problem) {
	u := auth.FromContext(c)
	view, err := problemViewOf(p, u != nil && u.Role == auth.RoleAdmin)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func problemViewOf(p store.Problem, withHidden bool) (*problemView, error) {
	visible, err := p.Visible()
	if err != nil {
		return nil, err
	}
	start, err := p.Starters()
	if err != nil {
		return nil, err
	}
	refs, err := p.References()
	if err != nil {
		return nil, err
	}
	v := &problemView{
		ID:                p.ID,
		Title:             p.Title,
		Slug:              p.Slug,
		Description:       p.Description,
		Difficulty:        p.Difficulty,
		Tags:              p.Tags,
		VisibleTestCases:  visible,
		StartCode:         start,
		ReferenceSolution: refs,
		FunctionName:      p.FunctionName.String,
		IsDailyChallenge:  p.IsDailyChallenge,
		CreatedAt:         p.CreatedAt,
	}
	if withHidden {
		if v.HiddenTestCases, err = p.Hidden(); err != nil {
			return nil, err
		}
	}
	if v.Tags == nil {
		v.Tags = []string{}
	}
	return v, nil
}
