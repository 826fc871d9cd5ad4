package binding_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ryancerium/scarp/binding"
)

func TestFieldSpecs(t *testing.T) {
	t.Parallel()

	type req struct {
		ID      string `path:"id"`
		Page    int    `query:"page" default:"1"`
		Unit    string `header:"X-Unit,required"`
		Session string `cookie:"session"`
		Name    string `form:"name"`
		Both    string `query:"both" header:"X-Both"`
		Plain   string
		hidden  string `query:"hidden"` //nolint:unused // unexported fields are skipped
	}

	got := binding.FieldSpecs(reflect.TypeFor[req]())
	assert.Equal(t, []binding.FieldSpec{
		{Index: 0, Source: "path", Name: "id"},
		{Index: 1, Source: "query", Name: "page", Default: "1"},
		{Index: 2, Source: "header", Name: "X-Unit", Required: true},
		{Index: 3, Source: "cookie", Name: "session"},
		{Index: 4, Source: "form", Name: "name"},
		{Index: 5, Source: "query", Name: "both"},
	}, got)
}

func TestTagOptions(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input      string
		expectName string
		expectOpts string
	}{
		"name only": {
			input:      "limit",
			expectName: "limit",
			expectOpts: "",
		},
		"name with options": {
			input:      "limit,required",
			expectName: "limit",
			expectOpts: "required",
		},
		"name with multiple options": {
			input:      "limit,required,deprecated",
			expectName: "limit",
			expectOpts: "required,deprecated",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			gotName, gotOpts := binding.TagOptions(tc.input)
			assert.Equal(t, tc.expectName, gotName)
			assert.Equal(t, tc.expectOpts, gotOpts)
		})
	}
}

func TestTagContains(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		opts   string
		name   string
		expect bool
	}{
		"found":             {opts: "required,deprecated", name: "required", expect: true},
		"found last":        {opts: "deprecated,required", name: "required", expect: true},
		"not found":         {opts: "deprecated", name: "required", expect: false},
		"empty":             {opts: "", name: "required", expect: false},
		"prefix only":       {opts: "requiredness", name: "required", expect: false},
		"empty option name": {opts: "a,,b", name: "", expect: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expect, binding.TagContains(tc.opts, tc.name))
		})
	}
}
