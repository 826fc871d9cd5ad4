package scarp

import (
	"hash/maphash"
	"math"
)

// hashFloat hashes f so that values equal under cmp.Compare hash equal: every
// NaN payload hashes as one NaN and -0 hashes as +0.
func hashFloat(seed maphash.Seed, f float64) uint64 {
	switch {
	case math.IsNaN(f):
		f = math.NaN()
	case f == 0:
		f = 0
	}
	return maphash.Comparable(seed, math.Float64bits(f))
}
