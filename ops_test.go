package scarp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ryancerium/scarp"
)

func TestMinMax(t *testing.T) {
	t.Parallel()

	a := scarp.NewInt64[meter](3)
	b := scarp.NewInt64[meter](-7)
	c := scarp.NewInt64[meter](12)

	assert.Equal(t, b, scarp.Min(a, b, c))
	assert.Equal(t, c, scarp.Max(a, b, c))
	assert.Equal(t, a, scarp.Min(a))

	s := scarp.Min(scarp.NewString[meter]("pear"), scarp.NewString[meter]("apple"))
	assert.Equal(t, "apple", s.Raw())
}

func TestMinMax_ties_keep_first(t *testing.T) {
	t.Parallel()

	first := decimalOf("1.0")
	second := decimalOf("1.00")

	assert.Equal(t, int32(-1), scarp.Min(first, second).Raw().Exponent())
	assert.Equal(t, int32(-1), scarp.Max(first, second).Raw().Exponent())
	assert.Equal(t, int32(-2), scarp.Min(second, first).Raw().Exponent())
}

func TestIncrementDecrement(t *testing.T) {
	t.Parallel()

	x := scarp.NewUint32[gram](5)

	assert.Equal(t, uint32(6), scarp.PreIncrement(&x).Raw())
	assert.Equal(t, uint32(6), scarp.PostIncrement(&x).Raw())
	assert.Equal(t, uint32(7), x.Raw())
	assert.Equal(t, uint32(6), scarp.PreDecrement(&x).Raw())
	assert.Equal(t, uint32(6), scarp.PostDecrement(&x).Raw())
	assert.Equal(t, uint32(5), x.Raw())
}
