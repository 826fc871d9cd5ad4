// Package binding fills request structs from HTTP requests. Any field whose
// pointer implements encoding.TextUnmarshaler, which includes every scarp
// type, is bound through that method, so a malformed or out-of-range value is
// reported against the field and its target type instead of being accepted:
//
//	type GetRoute struct {
//		ID       scarp.Int64[RouteID]     `path:"id"`
//		Distance scarp.Decimal[Meter]     `query:"distance,required"`
//		Unit     scarp.String[UnitSymbol] `header:"X-Unit" default:"m"`
//		Limit    *scarp.Uint32[Count]     `query:"limit"`
//	}
//
//	req, err := binding.Bind[GetRoute](r)
//
// Binding failures are returned as a *ProblemDetail with one ValidationError
// per field.
package binding

import (
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"time"

	"github.com/ryancerium/scarp"
)

// maxMultipartMemory is the maximum memory used for multipart form parsing (32 MB).
const maxMultipartMemory = 32 << 20

var sourceErrors = map[string]error{
	"path":   ErrBindPath,
	"query":  ErrBindQuery,
	"header": ErrBindHeader,
	"cookie": ErrBindCookie,
	"form":   ErrBindForm,
}

var textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()

// SelfValidator is implemented by request types that validate themselves.
// Validate runs after every field is bound.
type SelfValidator interface {
	Validate() error
}

// Validator validates any request.
type Validator interface {
	Validate(req any) error
}

// Bind creates a Req and populates it from r. Req must be a struct.
//
// Fields tagged path, query, header, cookie or form are bound from the named
// request value. An absent value falls back to the field's default tag, and a
// field whose tag carries the required option fails when both are empty. An
// exported Body field is decoded from a JSON request body.
//
// Conversion failures are collected into a *ProblemDetail with status 400. A
// field of a type that cannot be bound from text yields ErrUnsupportedType.
func Bind[Req any](r *http.Request) (*Req, error) {
	req := new(Req)
	v := reflect.ValueOf(req).Elem()
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is not a struct", ErrUnsupportedType, v.Type())
	}

	specs := fieldSpecs(v.Type())
	if usesForm(specs) {
		if err := parseForm(r); err != nil {
			if problem := tooLarge(err); problem != nil {
				return nil, problem
			}
			problem := newProblem(http.StatusBadRequest, "request form could not be parsed")
			problem.causes = []error{fmt.Errorf("%w: %w", ErrBindForm, err)}
			return nil, problem
		}
	}

	var (
		fields []ValidationError
		causes []error
	)
	for _, s := range specs {
		raw, ok := lookup(r, s)
		if !ok {
			raw = s.def
		}
		if raw == "" {
			if s.required {
				fields = append(fields, ValidationError{Field: s.name, Message: "is required"})
				causes = append(causes, fmt.Errorf("%w: %s: %w", sourceErrors[s.source], s.name, ErrRequired))
			}
			continue
		}

		field := v.Field(s.index)
		if err := setFieldValue(field, raw); err != nil {
			if errors.Is(err, ErrUnsupportedType) {
				return nil, fmt.Errorf("field %s: %w", v.Type().Field(s.index).Name, err)
			}
			fields = append(fields, ValidationError{
				Field:   s.name,
				Message: fmt.Sprintf("'%s' was not convertible to a %s: %v", raw, typeName(field.Type()), err),
				Value:   raw,
			})
			causes = append(causes, fmt.Errorf("%w: %s: %w", sourceErrors[s.source], s.name, err))
		}
	}

	if f, ok := v.Type().FieldByName("Body"); ok && f.IsExported() && len(f.Index) == 1 {
		body := v.FieldByIndex(f.Index).Addr().Interface()
		if err := decodeBody(r, body); err != nil {
			if problem := tooLarge(err); problem != nil {
				return nil, problem
			}
			fields = append(fields, ValidationError{Field: "body", Message: err.Error()})
			causes = append(causes, fmt.Errorf("%w: %w", ErrBindBody, err))
		}
	}

	if len(fields) > 0 {
		problem := newProblem(http.StatusBadRequest, "request parameters could not be bound")
		problem.Errors = fields
		problem.causes = causes
		return nil, problem
	}

	if sv, ok := any(req).(SelfValidator); ok {
		if err := sv.Validate(); err != nil {
			return nil, unprocessable(err)
		}
	}

	return req, nil
}

// tooLarge returns a 413 problem when err reports a body over the limit set
// by http.MaxBytesReader, and nil otherwise.
func tooLarge(err error) *ProblemDetail {
	var maxErr *http.MaxBytesError
	if !errors.As(err, &maxErr) {
		return nil
	}
	problem := newProblem(http.StatusRequestEntityTooLarge, fmt.Sprintf("request body exceeds %d bytes", maxErr.Limit))
	problem.causes = []error{fmt.Errorf("%w: %w", ErrBindBody, err)}
	return problem
}

// unprocessable returns err unchanged when it carries a status, and otherwise
// wraps it in a 422 problem.
func unprocessable(err error) error {
	var sc StatusCoder
	if errors.As(err, &sc) {
		return err
	}
	problem := newProblem(http.StatusUnprocessableEntity, err.Error())
	problem.causes = []error{err}
	return problem
}

// lookup returns the raw value named by s, and whether it was present and
// non-empty.
func lookup(r *http.Request, s fieldSpec) (string, bool) {
	var val string
	switch s.source {
	case "path":
		val = r.PathValue(s.name)
	case "query":
		val = r.URL.Query().Get(s.name)
	case "header":
		val = r.Header.Get(s.name)
	case "cookie":
		if c, err := r.Cookie(s.name); err == nil {
			val = c.Value
		}
	case "form":
		val = r.PostForm.Get(s.name)
	}
	return val, val != ""
}

// parseForm parses a url-encoded or multipart request body into r.PostForm.
func parseForm(r *http.Request) error {
	err := r.ParseMultipartForm(maxMultipartMemory)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return err
	}
	return nil
}

// setFieldValue sets a reflect.Value from a string. Pointer fields are
// allocated, so *T is the optional form of T.
func setFieldValue(field reflect.Value, value string) error {
	if field.Kind() == reflect.Pointer {
		elem := reflect.New(field.Type().Elem())
		if err := setFieldValue(elem.Elem(), value); err != nil {
			return err
		}
		field.Set(elem)
		return nil
	}

	if field.CanAddr() && field.Addr().Type().Implements(textUnmarshalerType) {
		return field.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(value))
	}

	if field.Type() == reflect.TypeFor[time.Duration]() {
		d, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		field.Set(reflect.ValueOf(d))
		return nil
	}

	//exhaustive:ignore
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(value, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetUint(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(value, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetFloat(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, field.Type())
	}
	return nil
}

// typeName names t in validation messages: the kind name for scarp types
// ("Int32" rather than "scarp.Int32[main.Meter]"), the Go spelling otherwise.
func typeName(t reflect.Type) string {
	if k, err := scarp.KindOf(t); err == nil {
		return k.String()
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.String()
}

// decodeBody decodes the request body as JSON into target.
func decodeBody(r *http.Request, target any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(target)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
