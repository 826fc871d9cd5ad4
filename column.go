package scarp

import (
	"database/sql/driver"
	"fmt"
	"math"
	"strconv"

	"fortio.org/safecast"
	"github.com/shopspring/decimal"
)

// Column conversions shared by the generated Value and Scan methods.

type integer interface {
	~int32 | ~int64 | ~uint32 | ~uint64
}

type float interface {
	~float32 | ~float64
}

// valueInteger stores n as an int64. A uint64 above math.MaxInt64 does not
// fit a driver integer and is stored as its decimal text.
func valueInteger[N integer](n N) (driver.Value, error) {
	if n > 0 && uint64(n) > math.MaxInt64 {
		return strconv.FormatUint(uint64(n), 10), nil
	}
	return int64(n), nil
}

func scanInteger[N integer](dst *N, src any) error {
	var (
		n   N
		err error
	)
	switch src := src.(type) {
	case nil:
		return ErrNullValue
	case int64:
		n, err = safecast.Conv[N](src)
	case float64:
		n, err = safecast.Convert[N](src)
	case []byte:
		n, err = parseInteger[N](string(src))
	case string:
		n, err = parseInteger[N](src)
	default:
		return fmt.Errorf("scan %T into %T: unsupported source", src, n)
	}
	if err != nil {
		return fmt.Errorf("scan %v into %T: %w", src, n, err)
	}
	*dst = n
	return nil
}

func parseInteger[N integer](s string) (N, error) {
	var zero N
	if zero-1 > zero {
		u, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return zero, err
		}
		return safecast.Conv[N](u)
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return zero, err
	}
	return safecast.Conv[N](i)
}

func valueFloat[F float](f F) (driver.Value, error) {
	return float64(f), nil
}

func scanFloat[F float](dst *F, src any) error {
	var (
		f   float64
		err error
	)
	switch src := src.(type) {
	case nil:
		return ErrNullValue
	case float64:
		f = src
	case int64:
		f = float64(src)
	case []byte:
		f, err = strconv.ParseFloat(string(src), 64)
	case string:
		f, err = strconv.ParseFloat(src, 64)
	default:
		return fmt.Errorf("scan %T into %T: unsupported source", src, *dst)
	}
	if err != nil {
		return fmt.Errorf("scan %v into %T: %w", src, *dst, err)
	}
	// float64 to float32 overflows to Inf rather than failing.
	if n := F(f); math.IsInf(float64(n), 0) && !math.IsInf(f, 0) {
		return fmt.Errorf("scan %v into %T: %w", src, *dst, strconv.ErrRange)
	}
	*dst = F(f)
	return nil
}

func valueDecimal(d decimal.Decimal) (driver.Value, error) {
	return d.String(), nil
}

func scanDecimal(dst *decimal.Decimal, src any) error {
	if src == nil {
		return ErrNullValue
	}
	return dst.Scan(src)
}

func valueString(s string) (driver.Value, error) {
	return s, nil
}

func scanString(dst *string, src any) error {
	switch src := src.(type) {
	case nil:
		return ErrNullValue
	case string:
		*dst = src
	case []byte:
		*dst = string(src)
	default:
		return fmt.Errorf("scan %T into string: unsupported source", src)
	}
	return nil
}
