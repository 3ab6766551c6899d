package judge

import (
	"fmt"
	"math"
	"strings"
)

// Verdicts double as persisted submission statuses.
const (
	VerdictPending      = "pending"
	VerdictAccepted     = "accepted"
	VerdictWrong        = "wrong"
	VerdictTimeout      = "timeout"
	VerdictCompileError = "compile_error"
	VerdictError        = "error"
)

// Summary is the aggregate outcome of a batch of terminal results.
type Summary struct {
	Total   int
	Passed  int
	Runtime float64 // seconds, summed over accepted cases
	Memory  int     // KB, peak over accepted cases
	Verdict string
	Message string
}

// Accepted reports whether every case passed.
func (s Summary) Accepted() bool {
	return s.Verdict == VerdictAccepted
}

// Aggregate folds terminal results into a Summary. The first non-accepted
// result decides the verdict and message; passed cases are counted across
// the whole batch.
func Aggregate(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.StatusID == StatusAccepted {
			s.Passed++
			s.Runtime += r.Time
			if r.Memory > s.Memory {
				s.Memory = r.Memory
			}
			continue
		}
		if s.Verdict != "" {
			continue
		}
		s.Verdict, s.Message = classify(r)
	}
	if s.Verdict == "" {
		s.Verdict = VerdictAccepted
	}
	s.Runtime = math.Round(s.Runtime*1000) / 1000
	return s
}

func classify(r Result) (string, string) {
	switch r.StatusID {
	case StatusWrongAnswer:
		if r.Stderr != "" {
			return VerdictWrong, r.Stderr
		}
		return VerdictWrong, fmt.Sprintf("Expected: %s, Got: %s",
			strings.TrimSpace(r.ExpectedOutput), strings.TrimSpace(r.Stdout))
	case StatusTimeLimitExceeded:
		return VerdictTimeout, "Time limit exceeded"
	case StatusCompilationError:
		return VerdictCompileError, r.CompileOutput
	default:
		switch {
		case r.Stderr != "":
			return VerdictError, r.Stderr
		case r.Message != "":
			return VerdictError, r.Message
		default:
			return VerdictError, r.Status
		}
	}
}
