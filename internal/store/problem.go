package store

import (
	"encoding/json"
	"fmt"
)

// TestCase is one element of a problem's visible or hidden case list.
// Input is opaque to the backend: either free text or a JSON object keyed
// by parameter name, handed to the judge verbatim as stdin.
type TestCase struct {
	Input       string `json:"input"`
	Output      string `json:"output"`
	Explanation string `json:"explanation,omitempty"`
}

// StartCode is the per-language template shown to users.
type StartCode struct {
	Language    string `json:"language"`
	InitialCode string `json:"initialCode"`
}

// ReferenceSolution is an admin-supplied solution used to validate test cases.
type ReferenceSolution struct {
	Language     string `json:"language"`
	CompleteCode string `json:"completeCode"`
}

// Visible decodes the visible_test_cases column.
func (p Problem) Visible() ([]TestCase, error) {
	return decodeList[TestCase]("visible_test_cases", p.VisibleTestCases)
}

// Hidden decodes the hidden_test_cases column.
func (p Problem) Hidden() ([]TestCase, error) {
	return decodeList[TestCase]("hidden_test_cases", p.HiddenTestCases)
}

func (p Problem) Starters() ([]StartCode, error) {
	return decodeList[StartCode]("start_code", p.StartCode)
}

func (p Problem) References() ([]ReferenceSolution, error) {
	return decodeList[ReferenceSolution]("reference_solution", p.ReferenceSolution)
}

// EncodeList marshals a slice for a jsonb column, writing [] for nil.
func EncodeList[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	return json.Marshal(items)
}

func decodeList[T any](column string, raw []byte) ([]T, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", column, err)
	}
	return out, nil
}
