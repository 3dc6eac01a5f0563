package litnum

import (
	"golang.org/x/exp/constraints"
	"reflect"
	"strconv"
	"strings"
)

// Parse converts the numeric literal in text to a value of type T.
//
// The base is selected from the literal itself: `0b`/`0B` parses the rest as
// binary, `0x`/`0X` as hexadecimal, a leading zero as octal and anything else
// as decimal. Surrounding whitespace is ignored and underscore digit-group
// separators are stripped before parsing. A three character input quoted with
// single quotes, e.g. `'A'`, yields the code point of the byte in between.
//
//	Parse[uint32]("0xCAFE")              // 51966
//	Parse[uint32]("0b1000_0001_1111_1010") // 33274
//	Parse[uint32]("'A'")                 // 65
//
// Errors are the unmodified [*strconv.NumError] values of [strconv.ParseInt]
// and [strconv.ParseUint]: [strconv.ErrSyntax] for an empty body or a digit
// invalid in the selected base, [strconv.ErrRange] if the value does not fit
// into T.
func Parse[T constraints.Integer](text string) (T, error) {
	digits, base := split(text)

	ty := reflect.TypeOf((*T)(nil)).Elem()

	switch ty.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		value, err := strconv.ParseInt(digits, base, ty.Bits())
		return T(value), err

	default:
		value, err := strconv.ParseUint(digits, base, ty.Bits())
		return T(value), err
	}
}

// ParseFallback converts the numeric literal in text to a value of type T
// like [Parse] does, but replaces any parse failure with the given fallback
// value. It never fails.
func ParseFallback[T constraints.Integer](text string, fallback T) T {
	value, err := Parse[T](text)
	if err != nil {
		return fallback
	}

	return value
}

// split resolves a literal to a cleaned digit string and the base to parse
// it in. The digit string never contains the consumed prefix or any
// underscore separators.
func split(text string) (digits string, base int) {
	if len(text) == 3 && text[0] == '\'' && text[2] == '\'' {
		// char literal, parse the code point of the single byte in between
		// as decimal. multi byte characters never pass the length check and
		// take the classify path below instead.
		return strconv.Itoa(int(text[1])), 10
	}

	body, base := classify(text)
	return strings.ReplaceAll(body, "_", ""), base
}

// classify determines the notation of a literal after trimming whitespace.
// It returns the numeric body with the prefix removed and the base to
// interpret the digits in.
func classify(text string) (body string, base int) {
	text = strings.TrimSpace(text)

	switch {
	case hasFoldPrefix(text, "0b"):
		return text[2:], 2

	case hasFoldPrefix(text, "0x"):
		return text[2:], 16

	case len(text) > 1 && text[0] == '0':
		// a bare "0" must stay decimal zero, not an octal prefix with an
		// empty body
		return text[1:], 8

	default:
		return text, 10
	}
}

func hasFoldPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
