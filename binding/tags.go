package binding

import (
	"reflect"
	"strings"
)

// sources are the struct tags a field may be bound from, in lookup order.
var sources = []string{"path", "query", "header", "cookie", "form"}

// fieldSpec is the binding declared by the tags of one struct field, such as
// `query:"limit,required"` or `header:"X-Unit" default:"m"`.
type fieldSpec struct {
	index    int
	source   string
	name     string
	def      string
	required bool
}

// fieldSpecs returns the bound fields of the struct type t. A field is bound
// from the first source tag it carries; unexported and untagged fields are
// left alone.
func fieldSpecs(t reflect.Type) []fieldSpec {
	var specs []fieldSpec
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		for _, source := range sources {
			tag := f.Tag.Get(source)
			if tag == "" {
				continue
			}
			name, opts := tagOptions(tag)
			specs = append(specs, fieldSpec{
				index:    i,
				source:   source,
				name:     name,
				def:      f.Tag.Get("default"),
				required: tagContains(opts, "required"),
			})
			break
		}
	}
	return specs
}

// usesForm reports whether any field reads the request form.
func usesForm(specs []fieldSpec) bool {
	for _, s := range specs {
		if s.source == "form" {
			return true
		}
	}
	return false
}

// tagOptions splits a struct tag value on comma and returns
// the name and remaining options.
func tagOptions(tag string) (string, string) {
	name, opts, _ := strings.Cut(tag, ",")
	return name, opts
}

// tagContains reports whether a comma-separated list of options
// contains a particular option.
func tagContains(opts string, name string) bool {
	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		if opt == name {
			return true
		}
	}
	return false
}
