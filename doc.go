// Package litnum parses textual numeric literals into Go integer values. It
// understands the prefixed notations found in C-like languages (binary `0b`,
// hexadecimal `0x`, octal leading zero), plain decimal, underscore digit-group
// separators and single-quoted character literals such as `'A'`.
//
// [Parse] is generic over the target type and returns the parse error of the
// underlying strconv call. [ParseFallback] never fails and substitutes a
// caller-supplied value instead. The [Literal] type adds sized accessors in
// the style of strconv, and [Unmarshal] assigns a parsed literal through a
// pointer to any integer-kinded value.
package litnum
