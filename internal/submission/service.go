package submission

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/algonest/algonest/internal/common"
	"github.com/algonest/algonest/internal/judge"
	"github.com/algonest/algonest/internal/store"
)

const acceptedMessage = "All test cases passed!"

// Service evaluates user code against a problem's test cases.
type Service struct {
	queries store.Querier
	judge   judge.Evaluator
}

func NewService(queries store.Querier, evaluator judge.Evaluator) *Service {
	return &Service{queries: queries, judge: evaluator}
}

// Input is what a user sends for either a run or a submit.
type Input struct {
	UserID    uuid.UUID
	ProblemID uuid.UUID
	Code      string
	Language  string
}

// RunResult is returned for a run against the visible cases. Nothing is stored.
type RunResult struct {
	Success         bool           `json:"success"`
	Status          string         `json:"status"`
	TestCases       []judge.Result `json:"testCases"`
	Runtime         float64        `json:"runtime"`
	Memory          int            `json:"memory"`
	TestCasesPassed int            `json:"testCasesPassed"`
	TotalTestCases  int            `json:"totalTestCases"`
	ErrorMessage    string         `json:"errorMessage,omitempty"`
}

// SubmitResult is returned once a submission reaches its final status.
type SubmitResult struct {
	SubmissionID    uuid.UUID `json:"submissionId"`
	Accepted        bool      `json:"accepted"`
	Status          string    `json:"status"`
	TotalTestCases  int       `json:"totalTestCases"`
	PassedTestCases int       `json:"passedTestCases"`
	Runtime         float64   `json:"runtime"`
	Memory          int       `json:"memory"`
	Message         string    `json:"message"`
}

type prepared struct {
	language string
	requests []judge.Request
}

// Run evaluates in.Code against the visible test cases.
func (s *Service) Run(ctx context.Context, in Input) (*RunResult, error) {
	p, err := s.prepare(ctx, in, false)
	if err != nil {
		return nil, err
	}

	results, err := s.judge.Evaluate(ctx, p.requests)
	if err != nil {
		return nil, judgeError(err)
	}

	sum := judge.Aggregate(results)
	return &RunResult{
		Success:         sum.Accepted(),
		Status:          sum.Verdict,
		TestCases:       results,
		Runtime:         sum.Runtime,
		Memory:          sum.Memory,
		TestCasesPassed: sum.Passed,
		TotalTestCases:  sum.Total,
		ErrorMessage:    sum.Message,
	}, nil
}

// Submit evaluates in.Code against the hidden test cases. A pending
// submission is stored before dispatch and finalized exactly once.
func (s *Service) Submit(ctx context.Context, in Input) (*SubmitResult, error) {
	p, err := s.prepare(ctx, in, true)
	if err != nil {
		return nil, err
	}

	sub, err := s.queries.CreateSubmission(ctx, store.CreateSubmissionParams{
		UserID:         in.UserID,
		ProblemID:      in.ProblemID,
		Code:           in.Code,
		Language:       p.language,
		TestCasesTotal: int32(len(p.requests)),
	})
	if err != nil {
		return nil, fmt.Errorf("create submission: %w", err)
	}

	results, err := s.judge.Evaluate(ctx, p.requests)
	if err != nil {
		s.abandon(ctx, sub.ID, err)
		return nil, judgeError(err)
	}

	sum := judge.Aggregate(results)
	if _, err := s.queries.FinishSubmission(ctx, finishParams(sub.ID, sum)); err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("finish submission %s: %w", sub.ID, err)
		}
		// The sweeper got there first. The verdict is still the user's.
		log.Printf("submission: %s was already finalized, keeping verdict %s", sub.ID, sum.Verdict)
	}

	if sum.Accepted() {
		err := s.queries.AddSolvedProblem(ctx, store.AddSolvedProblemParams{
			UserID:    in.UserID,
			ProblemID: in.ProblemID,
		})
		if err != nil {
			log.Printf("submission: mark solved user=%s problem=%s: %v", in.UserID, in.ProblemID, err)
		}
	}

	msg := sum.Message
	if sum.Accepted() {
		msg = acceptedMessage
	}
	return &SubmitResult{
		SubmissionID:    sub.ID,
		Accepted:        sum.Accepted(),
		Status:          sum.Verdict,
		TotalTestCases:  sum.Total,
		PassedTestCases: sum.Passed,
		Runtime:         sum.Runtime,
		Memory:          sum.Memory,
		Message:         msg,
	}, nil
}

// ValidateReferences runs each reference solution against cases and fails
// unless every one of them is accepted.
func (s *Service) ValidateReferences(ctx context.Context, refs []store.ReferenceSolution, cases []store.TestCase, functionName string) error {
	if len(cases) == 0 {
		return fmt.Errorf("%w: at least one visible test case is required", common.ErrValidation)
	}
	for _, ref := range refs {
		lang := judge.NormalizeLanguage(ref.Language)
		id, ok := judge.LanguageID(lang)
		if !ok {
			return fmt.Errorf("%w: unsupported language %q", common.ErrValidation, ref.Language)
		}

		results, err := s.judge.Evaluate(ctx, buildRequests(sourceFor(lang, ref.CompleteCode, functionName), id, cases))
		if err != nil {
			return judgeError(err)
		}
		if sum := judge.Aggregate(results); !sum.Accepted() {
			return fmt.Errorf("%w: %s reference solution %s: %s", common.ErrValidation, lang, sum.Verdict, sum.Message)
		}
	}
	return nil
}

func (s *Service) prepare(ctx context.Context, in Input, hidden bool) (*prepared, error) {
	if in.UserID == uuid.Nil || in.ProblemID == uuid.Nil ||
		strings.TrimSpace(in.Code) == "" || strings.TrimSpace(in.Language) == "" {
		return nil, fmt.Errorf("%w: some field missing", common.ErrBadRequest)
	}

	lang := judge.NormalizeLanguage(in.Language)
	id, ok := judge.LanguageID(lang)
	if !ok {
		return nil, fmt.Errorf("%w: unsupported language %q", common.ErrValidation, in.Language)
	}

	problem, err := s.queries.GetProblem(ctx, in.ProblemID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: problem not found", common.ErrNotFound)
		}
		return nil, fmt.Errorf("get problem: %w", err)
	}

	var cases []store.TestCase
	if hidden {
		cases, err = problem.Hidden()
	} else {
		cases, err = problem.Visible()
	}
	if err != nil {
		return nil, err
	}
	if len(cases) == 0 {
		return nil, fmt.Errorf("%w: problem has no test cases", common.ErrValidation)
	}

	return &prepared{
		language: lang,
		requests: buildRequests(sourceFor(lang, in.Code, problem.FunctionName.String), id, cases),
	}, nil
}

// abandon moves a submission whose evaluation failed to the error state.
// It runs detached from ctx so a disconnected client still gets a final row.
func (s *Service) abandon(ctx context.Context, id uuid.UUID, cause error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	_, err := s.queries.FinishSubmission(ctx, store.FinishSubmissionParams{
		ID:           id,
		Status:       judge.VerdictError,
		ErrorMessage: pgtype.Text{String: cause.Error(), Valid: true},
	})
	if err != nil {
		log.Printf("submission: mark %s as error: %v", id, err)
	}
}

func finishParams(id uuid.UUID, sum judge.Summary) store.FinishSubmissionParams {
	return store.FinishSubmissionParams{
		ID:              id,
		Status:          sum.Verdict,
		TestCasesPassed: int32(sum.Passed),
		Runtime:         sum.Runtime,
		Memory:          int32(sum.Memory),
		ErrorMessage:    pgtype.Text{String: sum.Message, Valid: sum.Message != ""},
	}
}

func sourceFor(lang, code, functionName string) string {
	if lang == "javascript" {
		return judge.WrapJavaScript(code, functionName)
	}
	return code
}

func buildRequests(source string, languageID int, cases []store.TestCase) []judge.Request {
	reqs := make([]judge.Request, len(cases))
	for i, tc := range cases {
		reqs[i] = judge.Request{
			SourceCode:     source,
			LanguageID:     languageID,
			Stdin:          tc.Input,
			ExpectedOutput: tc.Output,
		}
	}
	return reqs
}

func judgeError(err error) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, judge.ErrPollTimeout):
		return fmt.Errorf("%w: %w", common.ErrJudgeTimeout, err)
	default:
		return fmt.Errorf("%w: %w", common.ErrJudgeUnavailable, err)
	}
}
