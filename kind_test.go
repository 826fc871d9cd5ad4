package scarp_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryancerium/scarp"
)

type impostor struct{}

func (impostor) Kind() scarp.Kind { return scarp.KindInt32 }

func TestKindOf(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		typ       reflect.Type
		expect    scarp.Kind
		expectErr bool
	}{
		"int32":           {typ: reflect.TypeFor[scarp.Int32[meter]](), expect: scarp.KindInt32},
		"int64":           {typ: reflect.TypeFor[scarp.Int64[meter]](), expect: scarp.KindInt64},
		"uint32":          {typ: reflect.TypeFor[scarp.Uint32[meter]](), expect: scarp.KindUint32},
		"uint64":          {typ: reflect.TypeFor[scarp.Uint64[meter]](), expect: scarp.KindUint64},
		"float32":         {typ: reflect.TypeFor[scarp.Float32[meter]](), expect: scarp.KindFloat32},
		"float64":         {typ: reflect.TypeFor[scarp.Float64[meter]](), expect: scarp.KindFloat64},
		"decimal":         {typ: reflect.TypeFor[scarp.Decimal[meter]](), expect: scarp.KindDecimal},
		"string":          {typ: reflect.TypeFor[scarp.String[meter]](), expect: scarp.KindString},
		"pointer":         {typ: reflect.TypeFor[*scarp.String[gram]](), expect: scarp.KindString},
		"double pointer":  {typ: reflect.TypeFor[**scarp.Uint64[gram]](), expect: scarp.KindUint64},
		"builtin":         {typ: reflect.TypeFor[int32](), expectErr: true},
		"impostor":        {typ: reflect.TypeFor[impostor](), expectErr: true},
		"kind itself":     {typ: reflect.TypeFor[scarp.Kind](), expectErr: true},
		"nil":             {typ: nil, expectErr: true},
		"tag is not kind": {typ: reflect.TypeFor[meter](), expectErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := scarp.KindOf(tc.typ)
			if tc.expectErr {
				require.ErrorIs(t, err, scarp.ErrUnknownType)
				assert.Equal(t, scarp.KindInvalid, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expect, got)
		})
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Decimal", scarp.KindDecimal.String())
	assert.Equal(t, "Invalid", scarp.KindInvalid.String())
	assert.Equal(t, "Kind(200)", scarp.Kind(200).String())
}
