package binding

import "reflect"

// Test-only exports for internal functions.
var (
	TagOptions    = tagOptions
	TagContains   = tagContains
	SetFieldValue = setFieldValue
	TypeName      = typeName
)

// FieldSpec mirrors fieldSpec for external tests.
type FieldSpec struct {
	Index    int
	Source   string
	Name     string
	Default  string
	Required bool
}

// FieldSpecs wraps fieldSpecs for external tests.
func FieldSpecs(t reflect.Type) []FieldSpec {
	var out []FieldSpec
	for _, s := range fieldSpecs(t) {
		out = append(out, FieldSpec{
			Index:    s.index,
			Source:   s.source,
			Name:     s.name,
			Default:  s.def,
			Required: s.required,
		})
	}
	return out
}
