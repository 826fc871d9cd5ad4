package binding

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

// Func is a typed handler. It never sees http.ResponseWriter; returning a nil
// response writes 204 No Content.
type Func[Req, Resp any] func(ctx context.Context, req *Req) (*Resp, error)

type handlerConfig struct {
	logger      *slog.Logger
	status      int
	errorStatus int
	validator   Validator
	maxBody     int64
	limiters    *limiterSet
}

// Option configures a Handler.
type Option func(*handlerConfig)

// WithLogger sets the logger for bind and handler failures. Defaults to
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *handlerConfig) {
		c.logger = logger
	}
}

// WithStatus sets the status written with a non-nil response. Defaults to 200.
func WithStatus(status int) Option {
	return func(c *handlerConfig) {
		c.status = status
	}
}

// WithErrorStatus sets the status written when request binding fails.
// Defaults to 400.
func WithErrorStatus(status int) Option {
	return func(c *handlerConfig) {
		c.errorStatus = status
	}
}

// WithValidator sets a validator run on every bound request before the
// handler.
func WithValidator(v Validator) Option {
	return func(c *handlerConfig) {
		c.validator = v
	}
}

// WithMaxBodyBytes caps the request body. A larger body is rejected with
// 413 Request Entity Too Large.
func WithMaxBodyBytes(n int64) Option {
	return func(c *handlerConfig) {
		c.maxBody = n
	}
}

// WithRateLimit limits each client to the configured rate. Requests over the
// limit are rejected with 429 Too Many Requests before any binding.
func WithRateLimit(rl RateLimit) Option {
	return func(c *handlerConfig) {
		c.limiters = newLimiterSet(rl)
	}
}

// Handler adapts h to an http.Handler. The request is bound with Bind, the
// response is written as JSON and errors as RFC 9457 problem details.
func Handler[Req, Resp any](h Func[Req, Resp], opts ...Option) http.Handler {
	cfg := handlerConfig{
		logger:      slog.Default(),
		status:      http.StatusOK,
		errorStatus: http.StatusBadRequest,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if cfg.limiters != nil && !cfg.limiters.allow(r) {
			cfg.logger.LogAttrs(ctx, slog.LevelWarn, "rate limited",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote", r.RemoteAddr),
			)
			w.Header().Set("Retry-After", cfg.limiters.retryAfter())
			writeErrorResponse(w, newProblem(http.StatusTooManyRequests, "request rate limit exceeded"))
			return
		}
		if cfg.maxBody > 0 && r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, cfg.maxBody)
		}

		req, err := Bind[Req](r)
		if err != nil {
			var pd *ProblemDetail
			if errors.As(err, &pd) && pd.Status == http.StatusBadRequest {
				pd.Status = cfg.errorStatus
				pd.Title = http.StatusText(cfg.errorStatus)
			}
			cfg.logger.LogAttrs(ctx, slog.LevelWarn, "bind failed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Any("error", err),
			)
			writeErrorResponse(w, err)
			return
		}

		if cfg.validator != nil {
			if err := cfg.validator.Validate(req); err != nil {
				writeErrorResponse(w, unprocessable(err))
				return
			}
		}

		resp, err := h(ctx, req)
		if err != nil {
			status := ErrorStatus(err)
			level := slog.LevelWarn
			if status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			cfg.logger.LogAttrs(ctx, level, "handler failed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Any("error", err),
			)
			writeErrorResponse(w, err)
			return
		}

		if resp == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(cfg.status)
		//nolint:errcheck,errchkjson,gosec // best-effort after WriteHeader
		json.NewEncoder(w).Encode(resp)
	})
}

// writeErrorResponse writes an error as an RFC 9457 problem details response.
func writeErrorResponse(w http.ResponseWriter, err error) {
	var pd *ProblemDetail
	if !errors.As(err, &pd) {
		pd = newProblem(ErrorStatus(err), err.Error())
	}

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(pd.Status)
	//nolint:errcheck,errchkjson,gosec // best-effort after WriteHeader
	json.NewEncoder(w).Encode(pd)
}
