package litnum

import (
	"fmt"
	"reflect"
	"strconv"
)

type NotSupportedError struct {
	Type reflect.Type
}

func (n NotSupportedError) Error() string {
	return fmt.Sprintf("type %q is not supported", n.Type)
}

// Unmarshal parses the numeric literal in text and assigns the result to the
// value target points to. target must be a non-nil pointer to a value of
// integer kind; named integer types are supported. Any other target is
// rejected with a [NotSupportedError].
func Unmarshal(text string, target any) error {
	targetValue := reflect.ValueOf(target)
	if targetValue.Kind() != reflect.Pointer || targetValue.IsNil() {
		return NotSupportedError{Type: reflect.TypeOf(target)}
	}

	elem := targetValue.Elem()
	digits, base := split(text)

	switch elem.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		value, err := strconv.ParseInt(digits, base, elem.Type().Bits())
		if err != nil {
			return fmt.Errorf("set int value: %w", err)
		}

		elem.SetInt(value)
		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		value, err := strconv.ParseUint(digits, base, elem.Type().Bits())
		if err != nil {
			return fmt.Errorf("set uint value: %w", err)
		}

		elem.SetUint(value)
		return nil

	default:
		return NotSupportedError{Type: elem.Type()}
	}
}
