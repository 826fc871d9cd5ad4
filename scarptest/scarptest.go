// Package scarptest provides typed test helpers for scarp values and for
// handlers built with package binding.
package scarptest

import (
	"bytes"
	"encoding"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/ryancerium/scarp/binding"
)

// Codec names a serialization format every scarp type supports.
type Codec string

// Codecs.
const (
	JSON    Codec = "json"
	YAML    Codec = "yaml"
	Msgpack Codec = "msgpack"
	Text    Codec = "text"
)

// Codecs lists every Codec.
var Codecs = []Codec{JSON, YAML, Msgpack, Text}

// RoundTrip encodes v with codec, decodes the result into a fresh V and
// returns it. Any encode or decode failure fails the test.
func RoundTrip[V any](t testing.TB, codec Codec, v V) V {
	t.Helper()

	var (
		out V
		b   []byte
		err error
	)
	switch codec {
	case JSON:
		if b, err = json.Marshal(v); err == nil {
			err = json.Unmarshal(b, &out)
		}
	case YAML:
		if b, err = yaml.Marshal(v); err == nil {
			err = yaml.Unmarshal(b, &out)
		}
	case Msgpack:
		if b, err = msgpack.Marshal(v); err == nil {
			err = msgpack.Unmarshal(b, &out)
		}
	case Text:
		m, ok := any(v).(encoding.TextMarshaler)
		u, uok := any(&out).(encoding.TextUnmarshaler)
		if !ok || !uok {
			t.Fatalf("scarptest: %T does not implement text marshaling", v)
		}
		if b, err = m.MarshalText(); err == nil {
			err = u.UnmarshalText(b)
		}
	default:
		t.Fatalf("scarptest: unknown codec %q", codec)
	}
	if err != nil {
		t.Fatalf("scarptest: %s round trip of %v (encoded %q): %v", codec, v, b, err)
	}
	return out
}

// AssertRoundTrip checks that v survives every codec unchanged under Equal.
func AssertRoundTrip[V interface{ Equal(V) bool }](t testing.TB, v V) bool {
	t.Helper()

	ok := true
	for _, codec := range Codecs {
		if got := RoundTrip(t, codec, v); !v.Equal(got) {
			t.Errorf("scarptest: %s round trip of %v returned %v", codec, v, got)
			ok = false
		}
	}
	return ok
}

// Response holds a decoded handler response.
type Response[T any] struct {
	Status  int
	Headers http.Header
	Body    *T
	Problem *binding.ProblemDetail
	Raw     []byte
}

// Get serves a GET of target through h.
func Get[Resp any](t testing.TB, h http.Handler, target string) *Response[Resp] {
	t.Helper()
	return do[Resp](t, h, http.MethodGet, target, nil)
}

// Post serves a POST of target with a JSON body through h.
func Post[Req, Resp any](t testing.TB, h http.Handler, target string, body *Req) *Response[Resp] {
	t.Helper()
	return do[Resp](t, h, http.MethodPost, target, body)
}

// Put serves a PUT of target with a JSON body through h.
func Put[Req, Resp any](t testing.TB, h http.Handler, target string, body *Req) *Response[Resp] {
	t.Helper()
	return do[Resp](t, h, http.MethodPut, target, body)
}

// Delete serves a DELETE of target through h.
func Delete[Resp any](t testing.TB, h http.Handler, target string) *Response[Resp] {
	t.Helper()
	return do[Resp](t, h, http.MethodDelete, target, nil)
}

// do serves the request in process, so no listener or client goroutines
// outlive the test.
func do[Resp any](t testing.TB, h http.Handler, method, target string, body any) *Response[Resp] {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("scarptest: marshal request body: %v", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, target, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	result := &Response[Resp]{
		Status:  rec.Code,
		Headers: rec.Header(),
		Raw:     rec.Body.Bytes(),
	}
	if len(result.Raw) == 0 {
		return result
	}

	if rec.Header().Get("Content-Type") == "application/problem+json" {
		var pd binding.ProblemDetail
		if err := json.Unmarshal(result.Raw, &pd); err != nil {
			t.Fatalf("scarptest: decode problem: %v", err)
		}
		result.Problem = &pd
		return result
	}

	var decoded Resp
	if err := json.Unmarshal(result.Raw, &decoded); err != nil {
		t.Fatalf("scarptest: decode response: %v", err)
	}
	result.Body = &decoded
	return result
}
