package litnum

import (
	"errors"
	"fmt"
	"golang.org/x/exp/constraints"
	"strconv"
)

var ErrNotSupported = errors.New("not supported")

// Literal adapts a string holding a numeric literal to sized integer
// accessors in the style of the strconv package. Values are parsed using
// [Parse], so all notations listed there are accepted.
//
// A value that is no valid literal at all is reported as [ErrNotSupported],
// a value that does not fit the requested size keeps its [strconv.ErrRange]
// error.
type Literal string

func (l Literal) Int8() (int8, error) {
	return accessor[int8](l)
}

func (l Literal) Int16() (int16, error) {
	return accessor[int16](l)
}

func (l Literal) Int32() (int32, error) {
	return accessor[int32](l)
}

func (l Literal) Int64() (int64, error) {
	return accessor[int64](l)
}

func (l Literal) Int() (int, error) {
	return accessor[int](l)
}

func (l Literal) Uint8() (uint8, error) {
	return accessor[uint8](l)
}

func (l Literal) Uint16() (uint16, error) {
	return accessor[uint16](l)
}

func (l Literal) Uint32() (uint32, error) {
	return accessor[uint32](l)
}

func (l Literal) Uint64() (uint64, error) {
	return accessor[uint64](l)
}

func (l Literal) Uint() (uint, error) {
	return accessor[uint](l)
}

func (l Literal) String() string {
	return string(l)
}

func accessor[T constraints.Integer](l Literal) (T, error) {
	value, err := Parse[T](string(l))
	return handleSyntaxErr(string(l), value, err)
}

func handleSyntaxErr[T any](inputValue string, value T, err error) (T, error) {
	var zeroValue T
	if errors.Is(err, strconv.ErrSyntax) {
		err := fmt.Errorf("parse literal %q: %w", inputValue, err)
		return zeroValue, errors.Join(err, ErrNotSupported)
	}

	if err != nil {
		return zeroValue, err
	}

	return value, nil
}
