package scarp_test

import (
	"database/sql"
	"math"
	"path/filepath"
	"reflect"
	"testing"

	"fortio.org/safecast"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/ryancerium/scarp"
)

type reading struct {
	I32 scarp.Int32[meter]
	I64 scarp.Int64[meter]
	U32 scarp.Uint32[gram]
	U64 scarp.Uint64[gram]
	F32 scarp.Float32[meter]
	F64 scarp.Float64[meter]
	Dec scarp.Decimal[gram]
	Str scarp.String[meter]
}

// openDB opens a fresh database with a readings table. Columns are declared
// without a type so SQLite keeps every value in the storage class it was
// written with.
func openDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "scarp.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE readings (id INTEGER PRIMARY KEY, i32, i64, u32, u64, f32, f64, dec, str)`)
	require.NoError(t, err)
	return db
}

func gramsOf(s string) scarp.Decimal[gram] {
	return scarp.NewDecimal[gram](decimal.RequireFromString(s))
}

func insert(t *testing.T, db *sql.DB, id int, r reading) {
	t.Helper()

	_, err := db.Exec(`INSERT INTO readings VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, r.I32, r.I64, r.U32, r.U64, r.F32, r.F64, r.Dec, r.Str)
	require.NoError(t, err)
}

func TestColumn_round_trip(t *testing.T) {
	t.Parallel()

	tests := map[string]reading{
		"zero": {},
		"typical": {
			I32: scarp.NewInt32[meter](-42),
			I64: scarp.NewInt64[meter](1 << 40),
			U32: scarp.NewUint32[gram](7),
			U64: scarp.NewUint64[gram](12),
			F32: scarp.NewFloat32[meter](1.5),
			F64: scarp.NewFloat64[meter](-0.125),
			Dec: gramsOf("1234.5678"),
			Str: scarp.NewString[meter]("héllo"),
		},
		"extremes": {
			I32: scarp.NewInt32[meter](math.MinInt32),
			I64: scarp.NewInt64[meter](math.MaxInt64),
			U32: scarp.NewUint32[gram](math.MaxUint32),
			U64: scarp.NewUint64[gram](math.MaxUint64),
			F32: scarp.NewFloat32[meter](math.MaxFloat32),
			F64: scarp.NewFloat64[meter](math.SmallestNonzeroFloat64),
			Dec: gramsOf("-0.000000001"),
			Str: scarp.NewString[meter](""),
		},
	}

	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			db := openDB(t)
			insert(t, db, 1, want)

			var got reading
			err := db.QueryRow(`SELECT i32, i64, u32, u64, f32, f64, dec, str FROM readings WHERE id = 1`).
				Scan(&got.I32, &got.I64, &got.U32, &got.U64, &got.F32, &got.F64, &got.Dec, &got.Str)
			require.NoError(t, err)

			assert.Equal(t, want.I32, got.I32)
			assert.Equal(t, want.I64, got.I64)
			assert.Equal(t, want.U32, got.U32)
			assert.Equal(t, want.U64, got.U64)
			assert.Equal(t, want.F32, got.F32)
			assert.Equal(t, want.F64, got.F64)
			assert.True(t, want.Dec.Equal(got.Dec), "decimal %s != %s", want.Dec, got.Dec)
			assert.Equal(t, want.Str, got.Str)
		})
	}
}

func TestColumn_null(t *testing.T) {
	t.Parallel()

	db := openDB(t)
	_, err := db.Exec(`INSERT INTO readings (id) VALUES (1)`)
	require.NoError(t, err)

	var (
		i64 sql.Null[scarp.Int64[meter]]
		dec sql.Null[scarp.Decimal[gram]]
		str sql.Null[scarp.String[meter]]
	)
	err = db.QueryRow(`SELECT i64, dec, str FROM readings WHERE id = 1`).Scan(&i64, &dec, &str)
	require.NoError(t, err)
	assert.False(t, i64.Valid)
	assert.False(t, dec.Valid)
	assert.False(t, str.Valid)

	var f64 scarp.Float64[meter]
	err = db.QueryRow(`SELECT f64 FROM readings WHERE id = 1`).Scan(&f64)
	assert.ErrorIs(t, err, scarp.ErrNullValue)
}

func TestColumn_nullable_present(t *testing.T) {
	t.Parallel()

	db := openDB(t)
	insert(t, db, 1, reading{U32: scarp.NewUint32[gram](99)})

	var u32 sql.Null[scarp.Uint32[gram]]
	require.NoError(t, db.QueryRow(`SELECT u32 FROM readings WHERE id = 1`).Scan(&u32))
	assert.True(t, u32.Valid)
	assert.Equal(t, uint32(99), u32.V.Raw())
}

func TestColumn_narrowing_fails(t *testing.T) {
	t.Parallel()

	db := openDB(t)
	insert(t, db, 1, reading{
		I64: scarp.NewInt64[meter](math.MaxInt32 + 1),
		U64: scarp.NewUint64[gram](math.MaxUint64),
		F64: scarp.NewFloat64[meter](math.MaxFloat64),
	})

	var i32 scarp.Int32[meter]
	assert.Error(t, db.QueryRow(`SELECT i64 FROM readings WHERE id = 1`).Scan(&i32))

	var i64 scarp.Int64[meter]
	assert.Error(t, db.QueryRow(`SELECT u64 FROM readings WHERE id = 1`).Scan(&i64))

	var f32 scarp.Float32[meter]
	err := db.QueryRow(`SELECT f64 FROM readings WHERE id = 1`).Scan(&f32)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "value out of range")
}

func TestScan(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		dst       interface{ Scan(any) error }
		src       any
		expect    any
		expectErr error
	}{
		"int32 from int64": {
			dst: new(scarp.Int32[meter]), src: int64(-5), expect: scarp.NewInt32[meter](-5),
		},
		"int32 from text": {
			dst: new(scarp.Int32[meter]), src: []byte("17"), expect: scarp.NewInt32[meter](17),
		},
		"uint32 negative": {
			dst: new(scarp.Uint32[gram]), src: int64(-1),
		},
		"uint64 from string": {
			dst: new(scarp.Uint64[gram]), src: "18446744073709551615", expect: scarp.NewUint64[gram](math.MaxUint64),
		},
		"int64 from whole float": {
			dst: new(scarp.Int64[meter]), src: float64(3), expect: scarp.NewInt64[meter](3),
		},
		"int64 from float": {
			dst: new(scarp.Int64[meter]), src: float64(7), expect: scarp.NewInt64[meter](7),
		},
		"uint32 from whole float": {
			dst: new(scarp.Uint32[gram]), src: float64(4000000000), expect: scarp.NewUint32[gram](4000000000),
		},
		"float64 from int64": {
			dst: new(scarp.Float64[meter]), src: int64(2), expect: scarp.NewFloat64[meter](2),
		},
		"float32 from text": {
			dst: new(scarp.Float32[meter]), src: "0.25", expect: scarp.NewFloat32[meter](0.25),
		},
		"decimal from float": {
			dst: new(scarp.Decimal[gram]), src: 1.5, expect: gramsOf("1.5"),
		},
		"string from bytes": {
			dst: new(scarp.String[meter]), src: []byte("abc"), expect: scarp.NewString[meter]("abc"),
		},
		"string from int": {
			dst: new(scarp.String[meter]), src: int64(1),
		},
		"int32 from fractional float": {
			dst: new(scarp.Int32[meter]), src: float64(1.5), expectErr: safecast.ErrOutOfRange,
		},
		"int64 from NaN": {
			dst: new(scarp.Int64[meter]), src: math.NaN(), expectErr: safecast.ErrOutOfRange,
		},
		"uint32 from negative float": {
			dst: new(scarp.Uint32[gram]), src: float64(-1), expectErr: safecast.ErrOutOfRange,
		},
		"int32 from float above range": {
			dst: new(scarp.Int32[meter]), src: float64(1 << 40), expectErr: safecast.ErrOutOfRange,
		},
		"int64 null": {
			dst: new(scarp.Int64[meter]), src: nil, expectErr: scarp.ErrNullValue,
		},
		"decimal null": {
			dst: new(scarp.Decimal[gram]), src: nil, expectErr: scarp.ErrNullValue,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := tc.dst.Scan(tc.src)
			switch {
			case tc.expectErr != nil:
				assert.ErrorIs(t, err, tc.expectErr)
			case tc.expect == nil:
				assert.Error(t, err)
				return
			default:
				require.NoError(t, err)
				got := reflect.ValueOf(tc.dst).Elem().Interface()
				if d, ok := got.(scarp.Decimal[gram]); ok {
					assert.True(t, d.Equal(tc.expect.(scarp.Decimal[gram])))
					return
				}
				assert.Equal(t, tc.expect, got)
			}
		})
	}
}

func TestValue_uint64_above_int64(t *testing.T) {
	t.Parallel()

	v, err := scarp.NewUint64[gram](math.MaxUint64).Value()
	require.NoError(t, err)
	assert.Equal(t, "18446744073709551615", v)

	v, err = scarp.NewUint64[gram](math.MaxInt64).Value()
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), v)
}
