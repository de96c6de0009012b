// Package errors provides the structured error report emitted at the CLI
// boundary. Library packages return typed Go errors; the report carries a
// stable code and phase for tooling.
package errors

import (
	"encoding/json"
	"errors"

	"github.com/sunholo/mel/internal/ast"
)

// Report is the canonical structured error type for mel.
type Report struct {
	Schema  string   `json:"schema"` // Always "mel.error/v1"
	Code    string   `json:"code"`   // PAR001, TC001, ENV001, ...
	Phase   string   `json:"phase"`  // "parser", "typecheck", "env"
	Message string   `json:"message"`
	Pos     *ast.Pos `json:"pos,omitempty"`
}

// Error codes.
const (
	CodeParse       = "PAR001"
	CodeUnification = "TC001"
	CodeOccurs      = "TC002"
	CodeUnbound     = "TC003"
	CodeInternal    = "TC999"
	CodeEnv         = "ENV001"
)

// ReportError wraps a Report as an error so structured reports survive
// errors.As unwrapping.
type ReportError struct {
	Rep *Report
}

func (e *ReportError) Error() string {
	if e.Rep == nil {
		return "unknown error"
	}
	return e.Rep.Code + ": " + e.Rep.Message
}

// New builds a report.
func New(code, phase, message string) *Report {
	return &Report{
		Schema:  "mel.error/v1",
		Code:    code,
		Phase:   phase,
		Message: message,
	}
}

// WrapReport wraps a Report as a ReportError.
func WrapReport(r *Report) error {
	if r == nil {
		return nil
	}
	return &ReportError{Rep: r}
}

// AsReport attempts to extract a Report from an error chain.
func AsReport(err error) (*Report, bool) {
	var re *ReportError
	if errors.As(err, &re) {
		return re.Rep, true
	}
	return nil, false
}

// ToJSON renders the report deterministically.
func (r *Report) ToJSON(compact bool) (string, error) {
	var data []byte
	var err error
	if compact {
		data, err = json.Marshal(r)
	} else {
		data, err = json.MarshalIndent(r, "", "  ")
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
