package judge

import (
	"context"
	"errors"
)

// Judge0 status ids. Anything at or below StatusProcessing is still running.
const (
	StatusInQueue           = 1
	StatusProcessing        = 2
	StatusAccepted          = 3
	StatusWrongAnswer       = 4
	StatusTimeLimitExceeded = 5
	StatusCompilationError  = 6
)

var (
	// ErrTransport covers network failures and malformed Judge0 responses.
	ErrTransport = errors.New("judge0 request failed")
	// ErrPollTimeout means the poll budget ran out with executions still queued or running.
	ErrPollTimeout = errors.New("judge0 results still pending")
)

// Request is a single test execution: one source file run against one stdin.
type Request struct {
	SourceCode     string
	LanguageID     int
	Stdin          string
	ExpectedOutput string
}

// Result is what Judge0 reports for one Request.
type Result struct {
	Token          string  `json:"token"`
	StatusID       int     `json:"status_id"`
	Status         string  `json:"status"`
	Stdout         string  `json:"stdout"`
	Stderr         string  `json:"stderr"`
	CompileOutput  string  `json:"compile_output"`
	Message        string  `json:"message"`
	ExpectedOutput string  `json:"expected_output"`
	Time           float64 `json:"time"`
	Memory         int     `json:"memory"`
}

// Terminal reports whether Judge0 has finished with the execution.
func (r Result) Terminal() bool {
	return r.StatusID > StatusProcessing
}

// Evaluator runs a batch of requests to a terminal result for each, in order.
type Evaluator interface {
	Evaluate(ctx context.Context, reqs []Request) ([]Result, error)
}
