package binding

import (
	"errors"
	"net/http"
)

// Sentinel errors for request binding.
var (
	ErrBindPath        = errors.New("bind path")
	ErrBindQuery       = errors.New("bind query")
	ErrBindHeader      = errors.New("bind header")
	ErrBindCookie      = errors.New("bind cookie")
	ErrBindForm        = errors.New("bind form")
	ErrBindBody        = errors.New("bind body")
	ErrRequired        = errors.New("required")
	ErrUnsupportedType = errors.New("unsupported type")
)

// StatusCoder is implemented by errors that carry an HTTP status code.
type StatusCoder interface {
	StatusCode() int
}

// ProblemDetail is an RFC 9457 problem details response.
//
//nolint:errname // RFC 9457 standard name
type ProblemDetail struct {
	Type     string            `json:"type,omitempty"`
	Title    string            `json:"title,omitempty"`
	Status   int               `json:"status"`
	Detail   string            `json:"detail,omitempty"`
	Instance string            `json:"instance,omitempty"`
	Errors   []ValidationError `json:"errors,omitempty"`

	causes []error
}

// Error returns the detail message (or title if detail is empty).
func (p *ProblemDetail) Error() string {
	if p.Detail != "" {
		return p.Detail
	}
	return p.Title
}

// StatusCode returns the HTTP status code.
func (p *ProblemDetail) StatusCode() int { return p.Status }

// Unwrap returns the per-field errors, so errors.Is(err, ErrBindQuery) and
// errors.As(err, &numErr) see through a binding failure.
func (p *ProblemDetail) Unwrap() []error { return p.causes }

// ValidationError describes a single field binding failure.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// ErrorStatus extracts the HTTP status code from an error. Returns
// http.StatusInternalServerError if the error does not implement StatusCoder.
func ErrorStatus(err error) int {
	var sc StatusCoder
	if errors.As(err, &sc) {
		return sc.StatusCode()
	}
	return http.StatusInternalServerError
}

func newProblem(status int, detail string) *ProblemDetail {
	return &ProblemDetail{
		Type:   "about:blank",
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	}
}
