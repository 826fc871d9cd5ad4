package binding_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryancerium/scarp"
	"github.com/ryancerium/scarp/binding"
)

type routeResp struct {
	ID       scarp.Int64[routeID]     `json:"id"`
	Distance scarp.Decimal[meter]     `json:"distance"`
	Unit     scarp.String[unitSymbol] `json:"unit"`
}

func getRouteHandler(_ context.Context, req *getRoute) (*routeResp, error) {
	return &routeResp{ID: req.ID, Distance: req.Distance, Unit: req.Unit}, nil
}

type statusErr struct{ status int }

func (e statusErr) Error() string   { return http.StatusText(e.status) }
func (e statusErr) StatusCode() int { return e.status }

// serve runs h behind a mux at pattern and returns the recorded response.
func serve(h http.Handler, pattern string, r *http.Request) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.Handle(pattern, h)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, r)
	return rec
}

func newLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, nil)), &buf
}

func TestHandler_success(t *testing.T) {
	t.Parallel()

	logger, logs := newLogger()
	h := binding.Handler(getRouteHandler, binding.WithLogger(logger), binding.WithStatus(http.StatusAccepted))

	rec := serve(h, "GET /routes/{id}", httptest.NewRequest(http.MethodGet, "/routes/9?distance=1.50", nil))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":9,"distance":1.5,"unit":"m"}`, rec.Body.String())
	assert.Empty(t, logs.String())
}

func TestHandler_bind_failure(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		opts         []binding.Option
		expectStatus int
	}{
		"default status": {
			expectStatus: http.StatusBadRequest,
		},
		"custom status": {
			opts:         []binding.Option{binding.WithErrorStatus(http.StatusUnprocessableEntity)},
			expectStatus: http.StatusUnprocessableEntity,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			logger, logs := newLogger()
			opts := append([]binding.Option{binding.WithLogger(logger)}, tc.opts...)
			h := binding.Handler(getRouteHandler, opts...)

			rec := serve(h, "GET /routes/{id}", httptest.NewRequest(http.MethodGet, "/routes/abc?distance=1", nil))

			assert.Equal(t, tc.expectStatus, rec.Code)
			assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

			var pd binding.ProblemDetail
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&pd))
			assert.Equal(t, tc.expectStatus, pd.Status)
			assert.Equal(t, http.StatusText(tc.expectStatus), pd.Title)
			require.Len(t, pd.Errors, 1)
			assert.Equal(t, "id", pd.Errors[0].Field)
			assert.Equal(t, "abc", pd.Errors[0].Value)
			assert.Contains(t, pd.Errors[0].Message, "was not convertible to a Int64")

			assert.Contains(t, logs.String(), `"msg":"bind failed"`)
			assert.Contains(t, logs.String(), `"level":"WARN"`)
		})
	}
}

func TestHandler_handler_errors(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err          error
		expectStatus int
		expectLevel  string
	}{
		"status coder": {
			err:          statusErr{status: http.StatusNotFound},
			expectStatus: http.StatusNotFound,
			expectLevel:  "WARN",
		},
		"plain error": {
			err:          errors.New("database unavailable"),
			expectStatus: http.StatusInternalServerError,
			expectLevel:  "ERROR",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			logger, logs := newLogger()
			h := binding.Handler(func(context.Context, *getRoute) (*routeResp, error) {
				return nil, tc.err
			}, binding.WithLogger(logger))

			rec := serve(h, "GET /routes/{id}", httptest.NewRequest(http.MethodGet, "/routes/1?distance=1", nil))

			assert.Equal(t, tc.expectStatus, rec.Code)

			var pd binding.ProblemDetail
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&pd))
			assert.Equal(t, tc.err.Error(), pd.Detail)
			assert.Contains(t, logs.String(), `"msg":"handler failed"`)
			assert.Contains(t, logs.String(), `"level":"`+tc.expectLevel+`"`)
		})
	}
}

func TestHandler_nil_response(t *testing.T) {
	t.Parallel()

	h := binding.Handler(func(context.Context, *getRoute) (*routeResp, error) {
		return nil, nil
	})

	rec := serve(h, "DELETE /routes/{id}", httptest.NewRequest(http.MethodDelete, "/routes/1?distance=1", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

type validatorFunc func(req any) error

func (f validatorFunc) Validate(req any) error { return f(req) }

func TestHandler_validator(t *testing.T) {
	t.Parallel()

	called := false
	h := binding.Handler(func(context.Context, *getRoute) (*routeResp, error) {
		called = true
		return &routeResp{}, nil
	}, binding.WithValidator(validatorFunc(func(req any) error {
		if req.(*getRoute).Distance.Raw().IsNegative() {
			return errors.New("distance is negative")
		}
		return nil
	})))

	rec := serve(h, "GET /routes/{id}", httptest.NewRequest(http.MethodGet, "/routes/1?distance=-4", nil))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.False(t, called)
}

type renameRoute struct {
	ID   scarp.Int64[routeID] `path:"id"`
	Body struct {
		Name scarp.String[unitSymbol] `json:"name"`
	}
}

type renameResp struct {
	Name scarp.String[unitSymbol] `json:"name"`
}

func renameHandler(_ context.Context, req *renameRoute) (*renameResp, error) {
	return &renameResp{Name: req.Body.Name}, nil
}

func TestHandler_max_body_bytes(t *testing.T) {
	t.Parallel()

	h := binding.Handler(renameHandler, binding.WithMaxBodyBytes(16))

	tests := map[string]struct {
		body         string
		expectStatus int
	}{
		"within limit": {body: `{"name":"loop"}`, expectStatus: http.StatusOK},
		"over limit":   {body: `{"name":"a very long route name"}`, expectStatus: http.StatusRequestEntityTooLarge},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodPut, "/routes/1", strings.NewReader(tc.body))
			rec := serve(h, "PUT /routes/{id}", r)
			assert.Equal(t, tc.expectStatus, rec.Code)
		})
	}
}

func TestHandler_rate_limit(t *testing.T) {
	t.Parallel()

	logger, logs := newLogger()
	h := binding.Handler(getRouteHandler,
		binding.WithLogger(logger),
		binding.WithRateLimit(binding.RateLimit{Rate: 0.5, Burst: 2}),
	)

	codes := make([]int, 0, 3)
	for range 3 {
		rec := serve(h, "GET /routes/{id}", httptest.NewRequest(http.MethodGet, "/routes/1?distance=1", nil))
		codes = append(codes, rec.Code)
		if rec.Code == http.StatusTooManyRequests {
			assert.Equal(t, "2", rec.Header().Get("Retry-After"))
			assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
		}
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Contains(t, logs.String(), `"msg":"rate limited"`)

	// Another client has its own bucket.
	r := httptest.NewRequest(http.MethodGet, "/routes/1?distance=1", nil)
	r.RemoteAddr = "198.51.100.7:4000"
	assert.Equal(t, http.StatusOK, serve(h, "GET /routes/{id}", r).Code)
}
