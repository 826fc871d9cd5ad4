package scarp

import (
	"errors"
	"fmt"
	"reflect"
)

// Sentinel errors.
var (
	ErrUnknownType = errors.New("not a scarp type")
	ErrNullValue   = errors.New("cannot scan NULL into a non-nullable value")
)

// Kind identifies the underlying primitive of a tagged type.
type Kind uint8

// Kinds, one per wrapper type.
const (
	KindInvalid Kind = iota
	KindInt32
	KindInt64
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindDecimal
	KindString
)

var kindNames = [...]string{
	KindInvalid: "Invalid",
	KindInt32:   "Int32",
	KindInt64:   "Int64",
	KindUint32:  "Uint32",
	KindUint64:  "Uint64",
	KindFloat32: "Float32",
	KindFloat64: "Float64",
	KindDecimal: "Decimal",
	KindString:  "String",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

type kinded interface {
	Kind() Kind
}

var kindedType = reflect.TypeFor[kinded]()

// KindOf reports the kind of t, which must be an instantiation of one of the
// scarp types or a pointer to one. Any other type yields ErrUnknownType.
func KindOf(t reflect.Type) (Kind, error) {
	if t == nil {
		return KindInvalid, fmt.Errorf("%w: nil", ErrUnknownType)
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.PkgPath() != pkgPath || !t.Implements(kindedType) {
		return KindInvalid, fmt.Errorf("%w: %s", ErrUnknownType, t)
	}
	return reflect.Zero(t).Interface().(kinded).Kind(), nil
}

var pkgPath = reflect.TypeFor[Kind]().PkgPath()
