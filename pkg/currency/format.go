// Package currency converts amounts to display strings and keystroke
// buffers to masked input values for a given Locale.
//
// Both directions are total: every input produces a string.
package currency

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// maxInputDigits caps the masked input at 999,999,999,999.99.
const maxInputDigits = 14

// Format renders value for display.
//
// A value that already carries a fraction keeps it; a one-digit fraction is
// padded to two. A trailing separator with no fraction digits ("12.") is left
// as is. Values without a fraction get decimal+"00". Empty input renders as
// a bare zero amount, without symbol.
func Format(value any, withSymbol bool, loc Locale) string {
	s := coerce(value)
	if s == "" {
		return loc.zero()
	}

	negative := strings.HasPrefix(s, "-")
	magnitude := strings.TrimPrefix(s, "-")

	integer, fraction, hasFraction := splitFraction(magnitude, loc)
	if !hasFraction {
		fraction = "00"
	} else if len([]rune(fraction)) == 1 {
		fraction += "0"
	}
	grouped := group(integer, loc.Group) + loc.Decimal + fraction

	if !withSymbol {
		if negative {
			return "-" + grouped
		}
		return grouped
	}
	if negative {
		return "- " + loc.Symbol + strings.TrimPrefix(grouped, loc.Group)
	}
	return loc.Symbol + grouped
}

// ParseInput turns the raw content of a masked text input into its display
// value. Every non-digit is dropped, so a minus sign never survives.
//
// Buffers of up to two digits render as a bare fraction ("0,05") and never
// carry the symbol.
func ParseInput(raw string, withSymbol bool, loc Locale) string {
	digits := strings.TrimLeft(digitsOnly(raw), "0")

	switch len(digits) {
	case 0:
		return loc.zero()
	case 1:
		return "0" + loc.Decimal + "0" + digits
	case 2:
		return "0" + loc.Decimal + digits
	}

	if len(digits) > maxInputDigits {
		digits = digits[len(digits)-maxInputDigits:]
	}
	cut := len(digits) - 2
	out := group(digits[:cut], loc.Group) + loc.Decimal + digits[cut:]
	if withSymbol {
		return loc.Symbol + out
	}
	return out
}

// Digits returns the ASCII digits of s in order.
func Digits(s string) string { return digitsOnly(s) }

// splitFraction cuts s at the first '.' or, failing that, at the first
// locale decimal separator.
func splitFraction(s string, loc Locale) (integer, fraction string, ok bool) {
	if i, f, found := strings.Cut(s, "."); found {
		return i, f, true
	}
	if loc.Decimal != "" && loc.Decimal != "." {
		if i, f, found := strings.Cut(s, loc.Decimal); found {
			return i, f, true
		}
	}
	return s, "", false
}

// group inserts sep every three runes counting from the right.
func group(integer, sep string) string {
	r := []rune(integer)
	if len(r) <= 3 {
		return integer
	}
	var b strings.Builder
	head := len(r) % 3
	if head > 0 {
		b.WriteString(string(r[:head]))
	}
	for i := head; i < len(r); i += 3 {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(string(r[i : i+3]))
	}
	return b.String()
}

func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

func coerce(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		if v == 0 {
			return "0"
		}
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		if v == 0 {
			return "0"
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case decimal.Decimal:
		return v.String()
	case *decimal.Decimal:
		if v == nil {
			return ""
		}
		return v.String()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
