package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/algonest/algonest/internal/auth"
	"github.com/algonest/algonest/internal/judge"
	"github.com/algonest/algonest/internal/oauth"
	"github.com/algonest/algonest/internal/profile"
	"github.com/algonest/algonest/internal/store"
	"github.com/algonest/algonest/internal/submission"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubQuerier implements store.Querier for api handler tests.
// Methods without a func field return zero values.
type stubQuerier struct {
	createUserFn         func(ctx context.Context, arg store.CreateUserParams) (store.User, error)
	getUserByIDFn        func(ctx context.Context, id uuid.UUID) (store.User, error)
	getUserByEmailFn     func(ctx context.Context, email string) (store.User, error)
	getProblemFn         func(ctx context.Context, id uuid.UUID) (store.Problem, error)
	createProblemFn      func(ctx context.Context, arg store.CreateProblemParams) (store.Problem, error)
	deleteProblemFn      func(ctx context.Context, id uuid.UUID) (int64, error)
	dailyIDsFn           func(ctx context.Context) ([]uuid.UUID, error)
	updateUserProfileFn  func(ctx context.Context, arg store.UpdateUserProfileParams) (store.User, error)
	listDailyActivityFn  func(ctx context.Context, arg store.ListDailyActivityParams) ([]store.ListDailyActivityRow, error)
	listSubmissionsForFn func(ctx context.Context, arg store.ListSubmissionsForProblemParams) ([]store.Submission, error)

	createdSubmissions int
	createdProblems    []store.CreateProblemParams
}

func (s *stubQuerier) AddSolvedProblem(ctx context.Context, arg store.AddSolvedProblemParams) error {
	return nil
}
func (s *stubQuerier) CountProblemsByDifficulty(ctx context.Context) ([]store.CountProblemsByDifficultyRow, error) {
	return nil, nil
}
func (s *stubQuerier) CountSubmissionStats(ctx context.Context, userID uuid.UUID) (store.CountSubmissionStatsRow, error) {
	return store.CountSubmissionStatsRow{}, nil
}
func (s *stubQuerier) CreateProblem(ctx context.Context, arg store.CreateProblemParams) (store.Problem, error) {
	s.createdProblems = append(s.createdProblems, arg)
	if s.createProblemFn != nil {
		return s.createProblemFn(ctx, arg)
	}
	return store.Problem{ID: uuid.New(), Slug: arg.Slug}, nil
}
func (s *stubQuerier) CreateSubmission(ctx context.Context, arg store.CreateSubmissionParams) (store.Submission, error) {
	s.createdSubmissions++
	return store.Submission{ID: uuid.New(), Status: "pending"}, nil
}
func (s *stubQuerier) CreateUser(ctx context.Context, arg store.CreateUserParams) (store.User, error) {
	if s.createUserFn != nil {
		return s.createUserFn(ctx, arg)
	}
	return store.User{}, nil
}
func (s *stubQuerier) DeleteProblem(ctx context.Context, id uuid.UUID) (int64, error) {
	if s.deleteProblemFn != nil {
		return s.deleteProblemFn(ctx, id)
	}
	return 0, nil
}
func (s *stubQuerier) DeleteUser(ctx context.Context, id uuid.UUID) (int64, error) {
	return 1, nil
}
func (s *stubQuerier) FailStaleSubmissions(ctx context.Context, arg store.FailStaleSubmissionsParams) (int64, error) {
	return 0, nil
}
func (s *stubQuerier) FinishSubmission(ctx context.Context, arg store.FinishSubmissionParams) (store.Submission, error) {
	return store.Submission{ID: arg.ID, Status: arg.Status}, nil
}
func (s *stubQuerier) GetProblem(ctx context.Context, id uuid.UUID) (store.Problem, error) {
	if s.getProblemFn != nil {
		return s.getProblemFn(ctx, id)
	}
	return store.Problem{}, pgx.ErrNoRows
}
func (s *stubQuerier) GetProblemBySlug(ctx context.Context, slug string) (store.Problem, error) {
	return store.Problem{}, pgx.ErrNoRows
}
func (s *stubQuerier) GetUserByEmail(ctx context.Context, email string) (store.User, error) {
	if s.getUserByEmailFn != nil {
		return s.getUserByEmailFn(ctx, email)
	}
	return store.User{}, pgx.ErrNoRows
}
func (s *stubQuerier) GetUserByID(ctx context.Context, id uuid.UUID) (store.User, error) {
	if s.getUserByIDFn != nil {
		return s.getUserByIDFn(ctx, id)
	}
	return store.User{}, pgx.ErrNoRows
}
func (s *stubQuerier) ListDailyActivity(ctx context.Context, arg store.ListDailyActivityParams) ([]store.ListDailyActivityRow, error) {
	if s.listDailyActivityFn != nil {
		return s.listDailyActivityFn(ctx, arg)
	}
	return nil, nil
}
func (s *stubQuerier) ListDailyChallengeProblemIDs(ctx context.Context) ([]uuid.UUID, error) {
	if s.dailyIDsFn != nil {
		return s.dailyIDsFn(ctx)
	}
	return nil, nil
}
func (s *stubQuerier) ListHourlyActivity(ctx context.Context, arg store.ListHourlyActivityParams) ([]store.ListHourlyActivityRow, error) {
	return nil, nil
}
func (s *stubQuerier) ListProblems(ctx context.Context) ([]store.ListProblemsRow, error) {
	return nil, nil
}
func (s *stubQuerier) ListRecentSubmissions(ctx context.Context, arg store.ListRecentSubmissionsParams) ([]store.ListRecentSubmissionsRow, error) {
	return nil, nil
}
func (s *stubQuerier) ListSolvedProblems(ctx context.Context, userID uuid.UUID) ([]store.ListSolvedProblemsRow, error) {
	return nil, nil
}
func (s *stubQuerier) ListSubmissionsForProblem(ctx context.Context, arg store.ListSubmissionsForProblemParams) ([]store.Submission, error) {
	if s.listSubmissionsForFn != nil {
		return s.listSubmissionsForFn(ctx, arg)
	}
	return nil, nil
}
func (s *stubQuerier) UpdateProblem(ctx context.Context, arg store.UpdateProblemParams) (store.Problem, error) {
	return store.Problem{ID: arg.ID}, nil
}
func (s *stubQuerier) UpdateUserProfile(ctx context.Context, arg store.UpdateUserProfileParams) (store.User, error) {
	if s.updateUserProfileFn != nil {
		return s.updateUserProfileFn(ctx, arg)
	}
	return store.User{ID: arg.ID}, nil
}

// Compile-time interface check.
var _ store.Querier = (*stubQuerier)(nil)

// stubEvaluator accepts every request unless evaluateFn says otherwise.
type stubEvaluator struct {
	evaluateFn func(ctx context.Context, reqs []judge.Request) ([]judge.Result, error)
	calls      int
}

func (s *stubEvaluator) Evaluate(ctx context.Context, reqs []judge.Request) ([]judge.Result, error) {
	s.calls++
	if s.evaluateFn != nil {
		return s.evaluateFn(ctx, reqs)
	}
	out := make([]judge.Result, len(reqs))
	for i, r := range reqs {
		out[i] = judge.Result{StatusID: judge.StatusAccepted, Stdout: r.ExpectedOutput, Time: 0.1, Memory: 1000}
	}
	return out, nil
}

var fixedNow = time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

func newTestHandler(q *stubQuerier, ev *stubEvaluator) *Handler {
	return &Handler{
		queries:         q,
		submissions:     submission.NewService(q, ev),
		profiles:        profile.NewService(q),
		frontendOrigins: []string{"http://localhost:5173"},
		now:             func() time.Time { return fixedNow },
	}
}

// ginCtx builds a Gin test context with an authenticated user already set.
func ginCtx(method, path string, body []byte, user *store.User, params gin.Params) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = params
	if user != nil {
		auth.SetUser(c, user)
	}
	return c, w
}

func member() *store.User {
	return &store.User{ID: uuid.New(), FirstName: "Ada", Email: "ada@example.com", Role: auth.RoleUser}
}

func admin() *store.User {
	return &store.User{ID: uuid.New(), FirstName: "Root", Email: "root@example.com", Role: auth.RoleAdmin}
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return b
}

func sumProblem(t *testing.T) store.Problem {
	t.Helper()
	visible := mustJSON(t, []store.TestCase{{Input: "2 3", Output: "5"}})
	hidden := mustJSON(t, []store.TestCase{{Input: "10 20", Output: "30"}, {Input: "1 1", Output: "2"}})
	refs := mustJSON(t, []store.ReferenceSolution{{Language: "python", CompleteCode: "print(sum(map(int, input().split())))"}})
	return store.Problem{
		ID:                uuid.New(),
		Title:             "Add Two Numbers",
		Slug:              "add-two-numbers",
		Difficulty:        "easy",
		VisibleTestCases:  visible,
		HiddenTestCases:   hidden,
		ReferenceSolution: refs,
		FunctionName:      pgtype.Text{String: "add", Valid: true},
	}
}

func problemLookup(p store.Problem) func(context.Context, uuid.UUID) (store.Problem, error) {
	return func(_ context.Context, id uuid.UUID) (store.Problem, error) {
		if id != p.ID {
			return store.Problem{}, pgx.ErrNoRows
		}
		return p, nil
	}
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

// --- problem tests ---

func TestGetProblem_HidesHiddenCasesFromUsers(t *testing.T) {
	p := sumProblem(t)
	h := newTestHandler(&stubQuerier{getProblemFn: problemLookup(p)}, &stubEvaluator{})

	c, w := ginCtx(http.MethodGet, "/problem/problemById/"+p.ID.String(), nil, member(), gin.Params{{Key: "id", Value: p.ID.String()}})
	h.GetProblem(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := decode(t, w)
	if _, ok := resp["hiddenTestCases"]; ok {
		t.Error("hidden test cases must not be returned to a regular user")
	}
	if got := resp["visibleTestCases"].([]any); len(got) != 1 {
		t.Errorf("expected 1 visible case, got %d", len(got))
	}
	if resp["functionName"] != "add" {
		t.Errorf("expected functionName add, got %v", resp["functionName"])
	}
}

func TestGetProblem_AdminSeesHiddenCases(t *testing.T) {
	p := sumProblem(t)
	h := newTestHandler(&stubQuerier{getProblemFn: problemLookup(p)}, &stubEvaluator{})

	c, w := ginCtx(http.MethodGet, "/problem/problemById/"+p.ID.String(), nil, admin(), gin.Params{{Key: "id", Value: p.ID.String()}})
	h.GetProblem(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := decode(t, w)["hiddenTestCases"].([]any); len(got) != 2 {
		t.Errorf("expected 2 hidden cases, got %d", len(got))
	}
}

func TestGetProblem_Errors(t *testing.T) {
	h := newTestHandler(&stubQuerier{}, &stubEvaluator{})

	c, w := ginCtx(http.MethodGet, "/problem/problemById/nope", nil, member(), gin.Params{{Key: "id", Value: "nope"}})
	h.GetProblem(c)
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid id: expected 400, got %d", w.Code)
	}

	id := uuid.New().String()
	c, w = ginCtx(http.MethodGet, "/problem/problemById/"+id, nil, member(), gin.Params{{Key: "id", Value: id}})
	h.GetProblem(c)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown id: expected 404, got %d", w.Code)
	}
}

func problemBody(t *testing.T) []byte {
	return mustJSON(t, map[string]any{
		"title":             "  Add Two Numbers ",
		"description":       "Print the sum.",
		"difficulty":        "easy",
		"tags":              []string{"Math", " "},
		"visibleTestCases":  []store.TestCase{{Input: "2 3", Output: "5"}},
		"hiddenTestCases":   []store.TestCase{{Input: "10 20", Output: "30"}},
		"referenceSolution": []store.ReferenceSolution{{Language: "python", CompleteCode: "print(5)"}},
	})
}

func TestCreateProblem_ValidatesReferencesThenStores(t *testing.T) {
	q := &stubQuerier{}
	ev := &stubEvaluator{}
	h := newTestHandler(q, ev)

	u := admin()
	c, w := ginCtx(http.MethodPost, "/problem/create", problemBody(t), u, nil)
	h.CreateProblem(c)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if ev.calls != 1 {
		t.Errorf("expected one validation batch, got %d", ev.calls)
	}
	if len(q.createdProblems) != 1 {
		t.Fatalf("expected CreateProblem to be called once")
	}
	got := q.createdProblems[0]
	if got.Slug != "add-two-numbers" || got.Title != "Add Two Numbers" {
		t.Errorf("unexpected title/slug %q/%q", got.Title, got.Slug)
	}
	if len(got.Tags) != 1 || got.Tags[0] != "math" {
		t.Errorf("expected tags [math], got %v", got.Tags)
	}
	if got.CreatedBy.UUID != u.ID || !got.CreatedBy.Valid {
		t.Errorf("expected created_by %s, got %+v", u.ID, got.CreatedBy)
	}
	if got.FunctionName.Valid {
		t.Error("empty function name should be stored as NULL")
	}
}

func TestCreateProblem_RejectsFailingReference(t *testing.T) {
	q := &stubQuerier{}
	ev := &stubEvaluator{
		evaluateFn: func(_ context.Context, reqs []judge.Request) ([]judge.Result, error) {
			return []judge.Result{{StatusID: judge.StatusWrongAnswer, Stdout: "4", ExpectedOutput: "5"}}, nil
		},
	}
	h := newTestHandler(q, ev)

	c, w := ginCtx(http.MethodPost, "/problem/create", problemBody(t), admin(), nil)
	h.CreateProblem(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if len(q.createdProblems) != 0 {
		t.Error("a problem with a failing reference solution must not be stored")
	}
}

func TestCreateProblem_InvalidDifficulty(t *testing.T) {
	ev := &stubEvaluator{}
	h := newTestHandler(&stubQuerier{}, ev)

	body := mustJSON(t, map[string]any{
		"title":             "X",
		"description":       "Y",
		"difficulty":        "impossible",
		"visibleTestCases":  []store.TestCase{{Input: "1", Output: "1"}},
		"hiddenTestCases":   []store.TestCase{{Input: "1", Output: "1"}},
		"referenceSolution": []store.ReferenceSolution{{Language: "python", CompleteCode: "print(1)"}},
	})
	c, w := ginCtx(http.MethodPost, "/problem/create", body, admin(), nil)
	h.CreateProblem(c)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if ev.calls != 0 {
		t.Error("judge should not be called for an invalid body")
	}
}

func TestDeleteProblem_NotFound(t *testing.T) {
	h := newTestHandler(&stubQuerier{}, &stubEvaluator{})
	id := uuid.New().String()

	c, w := ginCtx(http.MethodDelete, "/problem/delete/"+id, nil, admin(), gin.Params{{Key: "id", Value: id}})
	h.DeleteProblem(c)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestProblemSubmissions_EmptyList(t *testing.T) {
	u := member()
	pid := uuid.New()
	var got store.ListSubmissionsForProblemParams
	q := &stubQuerier{
		listSubmissionsForFn: func(_ context.Context, arg store.ListSubmissionsForProblemParams) ([]store.Submission, error) {
			got = arg
			return nil, nil
		},
	}
	h := newTestHandler(q, &stubEvaluator{})

	c, w := ginCtx(http.MethodGet, "/problem/submittedProblem/"+pid.String(), nil, u, gin.Params{{Key: "id", Value: pid.String()}})
	h.ProblemSubmissions(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got.UserID != u.ID || got.ProblemID != pid {
		t.Errorf("unexpected query params %+v", got)
	}
	if subs := decode(t, w)["submissions"].([]any); len(subs) != 0 {
		t.Errorf("expected empty list, got %v", subs)
	}
}

func TestDailyPick_StableWithinADay(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	morning, _ := dailyPick(ids, time.Date(2026, 3, 14, 0, 5, 0, 0, time.UTC))
	evening, _ := dailyPick(ids, time.Date(2026, 3, 14, 23, 55, 0, 0, time.UTC))
	if morning != evening {
		t.Error("expected the same pick for the whole UTC day")
	}
	next, _ := dailyPick(ids, time.Date(2026, 3, 15, 0, 5, 0, 0, time.UTC))
	if next == morning {
		t.Error("expected the pick to rotate on the next day")
	}
	if _, ok := dailyPick(nil, fixedNow); ok {
		t.Error("expected no pick without candidates")
	}
}

func TestDailyProblem_NoneAvailable(t *testing.T) {
	h := newTestHandler(&stubQuerier{}, &stubEvaluator{})

	c, w := ginCtx(http.MethodGet, "/problem/daily", nil, member(), nil)
	h.DailyProblem(c)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

// --- submission tests ---

func TestRunCode_ReturnsPerCaseResults(t *testing.T) {
	p := sumProblem(t)
	q := &stubQuerier{getProblemFn: problemLookup(p)}
	h := newTestHandler(q, &stubEvaluator{})

	body := mustJSON(t, codeRequest{Code: "print(5)", Language: "python"})
	c, w := ginCtx(http.MethodPost, "/submission/run/"+p.ID.String(), body, member(), gin.Params{{Key: "id", Value: p.ID.String()}})
	h.RunCode(c)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	resp := decode(t, w)
	if resp["success"] != true || resp["totalTestCases"].(float64) != 1 {
		t.Errorf("unexpected run result %v", resp)
	}
	if q.createdSubmissions != 0 {
		t.Error("run must not store a submission")
	}
}

func TestRunCode_EmptyLanguageRejected(t *testing.T) {
	p := sumProblem(t)
	ev := &stubEvaluator{}
	h := newTestHandler(&stubQuerier{getProblemFn: problemLookup(p)}, ev)

	body := mustJSON(t, codeRequest{Code: "print(5)"})
	c, w := ginCtx(http.MethodPost, "/submission/run/"+p.ID.String(), body, member(), gin.Params{{Key: "id", Value: p.ID.String()}})
	h.RunCode(c)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if ev.calls != 0 {
		t.Error("nothing should be dispatched without a language")
	}
}

func TestSubmitCode_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"transport failure", judge.ErrTransport, http.StatusBadGateway},
		{"poll exhaustion", judge.ErrPollTimeout, http.StatusGatewayTimeout},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := sumProblem(t)
			ev := &stubEvaluator{
				evaluateFn: func(context.Context, []judge.Request) ([]judge.Result, error) {
					return nil, tc.err
				},
			}
			h := newTestHandler(&stubQuerier{getProblemFn: problemLookup(p)}, ev)

			body := mustJSON(t, codeRequest{Code: "print(1)", Language: "python"})
			c, w := ginCtx(http.MethodPost, "/submission/submit/"+p.ID.String(), body, member(), gin.Params{{Key: "id", Value: p.ID.String()}})
			h.SubmitCode(c)

			if w.Code != tc.status {
				t.Errorf("expected %d, got %d: %s", tc.status, w.Code, w.Body.String())
			}
		})
	}
}

func TestSubmitCode_Accepted(t *testing.T) {
	p := sumProblem(t)
	q := &stubQuerier{getProblemFn: problemLookup(p)}
	h := newTestHandler(q, &stubEvaluator{})

	body := mustJSON(t, codeRequest{Code: "print(1)", Language: "cpp"})
	c, w := ginCtx(http.MethodPost, "/submission/submit/"+p.ID.String(), body, member(), gin.Params{{Key: "id", Value: p.ID.String()}})
	h.SubmitCode(c)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	resp := decode(t, w)
	if resp["accepted"] != true || resp["message"] != "All test cases passed!" {
		t.Errorf("unexpected submit result %v", resp)
	}
	if q.createdSubmissions != 1 {
		t.Errorf("expected one stored submission, got %d", q.createdSubmissions)
	}
}

// --- profile tests ---

func TestActivity_Window(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		status int
		since  time.Time
	}{
		{"default", "", http.StatusOK, fixedNow.AddDate(0, 0, -30)},
		{"days", "?days=7", http.StatusOK, fixedNow.AddDate(0, 0, -7)},
		{"since date", "?since=2026-01-02", http.StatusOK, time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"bad days", "?days=0", http.StatusBadRequest, time.Time{}},
		{"bad since", "?since=whenever", http.StatusBadRequest, time.Time{}},
		{"future since", "?since=2030-01-01", http.StatusBadRequest, time.Time{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got time.Time
			q := &stubQuerier{
				listDailyActivityFn: func(_ context.Context, arg store.ListDailyActivityParams) ([]store.ListDailyActivityRow, error) {
					got = arg.CreatedAt
					return nil, nil
				},
			}
			h := newTestHandler(q, &stubEvaluator{})

			c, w := ginCtx(http.MethodGet, "/profile/activity"+tc.query, nil, member(), nil)
			h.Activity(c)

			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d: %s", tc.status, w.Code, w.Body.String())
			}
			if tc.status == http.StatusOK && !got.Equal(tc.since) {
				t.Errorf("expected window start %v, got %v", tc.since, got)
			}
		})
	}
}

func TestUpdateProfile_OnlySetsProvidedFields(t *testing.T) {
	u := member()
	var got store.UpdateUserProfileParams
	q := &stubQuerier{
		updateUserProfileFn: func(_ context.Context, arg store.UpdateUserProfileParams) (store.User, error) {
			got = arg
			return store.User{ID: arg.ID, FirstName: u.FirstName, Age: arg.Age}, nil
		},
	}
	h := newTestHandler(q, &stubEvaluator{})

	c, w := ginCtx(http.MethodPut, "/profile/update", []byte(`{"age": 30}`), u, nil)
	h.UpdateProfile(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got.ID != u.ID || got.FirstName.Valid || got.LastName.Valid {
		t.Errorf("only age should be set, got %+v", got)
	}
	if !got.Age.Valid || got.Age.Int32 != 30 {
		t.Errorf("expected age 30, got %+v", got.Age)
	}
}

func TestUpdateProfile_RejectsOutOfRangeAge(t *testing.T) {
	h := newTestHandler(&stubQuerier{}, &stubEvaluator{})

	c, w := ginCtx(http.MethodPut, "/profile/update", []byte(`{"age": 200}`), member(), nil)
	h.UpdateProfile(c)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

// --- oauth tests ---

func TestAllowedRedirect(t *testing.T) {
	h := newTestHandler(&stubQuerier{}, &stubEvaluator{})

	tests := map[string]bool{
		"http://localhost:5173/":          true,
		"http://localhost:5173/problems":  true,
		"https://localhost:5173/":         false,
		"http://evil.example.com/":        false,
		"/relative":                       false,
		"http://localhost:5173.evil.com/": false,
	}
	for raw, want := range tests {
		if got := h.allowedRedirect(raw); got != want {
			t.Errorf("allowedRedirect(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestGoogleLogin_NotConfigured(t *testing.T) {
	h := newTestHandler(&stubQuerier{}, &stubEvaluator{})

	c, w := ginCtx(http.MethodGet, "/user/oauth/google/login", nil, nil, nil)
	h.GoogleLogin(c)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

// stubProvider fails the test if the callback gets as far as the code exchange.
type stubProvider struct{ t *testing.T }

func (p stubProvider) AuthURL(state string) string { return "https://accounts.example/auth?state=" + state }

func (p stubProvider) Exchange(context.Context, string) (*oauth.Token, error) {
	p.t.Error("exchange should not be reached")
	return nil, context.Canceled
}

func (p stubProvider) UserInfo(context.Context, string) (*oauth.UserInfo, error) {
	return nil, context.Canceled
}

func TestGoogleCallback_RejectsBadState(t *testing.T) {
	h := newTestHandler(&stubQuerier{}, &stubEvaluator{})
	h.google = stubProvider{t}

	fresh, nonce, err := oauth.EncodeState("http://localhost:5173/", fixedNow.Add(-time.Minute))
	if err != nil {
		t.Fatalf("EncodeState: %v", err)
	}
	stale, staleNonce, err := oauth.EncodeState("http://localhost:5173/", fixedNow.Add(-time.Hour))
	if err != nil {
		t.Fatalf("EncodeState: %v", err)
	}

	tests := []struct {
		name   string
		state  string
		cookie string
	}{
		{"expired", stale, staleNonce},
		{"nonce mismatch", fresh, "other"},
		{"no cookie", fresh, ""},
		{"garbage", "not-a-state", nonce},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := ginCtx(http.MethodGet, "/user/oauth/google/callback?code=abc&state="+tt.state, nil, nil, nil)
			if tt.cookie != "" {
				c.Request.AddCookie(&http.Cookie{Name: nonceCookie, Value: tt.cookie})
			}
			h.GoogleCallback(c)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestRespondError_HidesInternalDetail(t *testing.T) {
	c, w := ginCtx(http.MethodGet, "/x", nil, nil, nil)
	respondError(c, context.DeadlineExceeded)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "deadline") {
		t.Errorf("internal error leaked: %s", w.Body.String())
	}
}
