package scarp

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// formatDecimal writes d to f for verb. %f rounds half away from zero to the
// requested precision without going through float64. Width and the '-' flag
// apply to every verb; the '+', ' ' and '0' flags apply to %v and %f.
func formatDecimal(f fmt.State, verb rune, d decimal.Decimal) {
	var s string
	switch verb {
	case 'v', 's':
		s = d.String()
	case 'q':
		s = strconv.Quote(d.String())
	case 'f', 'F':
		s = d.String()
		if prec, ok := f.Precision(); ok {
			s = d.StringFixed(int32(prec))
		}
	case 'e', 'E', 'g', 'G':
		fmt.Fprintf(f, fmt.FormatString(f, verb), d.InexactFloat64())
		return
	default:
		fmt.Fprintf(f, "%%!%c(decimal.Decimal=%s)", verb, d.String())
		return
	}

	numeric := verb != 's' && verb != 'q'
	if numeric && !d.IsNegative() {
		switch {
		case f.Flag('+'):
			s = "+" + s
		case f.Flag(' '):
			s = " " + s
		}
	}
	pad(f, s, numeric && f.Flag('0'))
}

// pad writes s to f, filling up to the state's width. Zero filling goes
// between the sign and the digits.
func pad(f fmt.State, s string, zero bool) {
	width, ok := f.Width()
	fill := width - utf8.RuneCountInString(s)
	if !ok || fill <= 0 {
		_, _ = io.WriteString(f, s)
		return
	}

	switch {
	case f.Flag('-'):
		s += strings.Repeat(" ", fill)
	case zero:
		sign := ""
		if s[0] == '+' || s[0] == '-' || s[0] == ' ' {
			sign, s = s[:1], s[1:]
		}
		s = sign + strings.Repeat("0", fill) + s
	default:
		s = strings.Repeat(" ", fill) + s
	}
	_, _ = io.WriteString(f, s)
}
