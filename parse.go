package sharedstring

import (
	"errors"
	"fmt"
	"strconv"
)

// The parse helpers forward to strconv and translate its failures into this
// package's error taxonomy: malformed text is ErrInvalidArgument, values
// that don't fit the target type are ErrOutOfRange.

// Int parses the content as a signed integer in the given base (0 for the
// strconv base-prefix rules).
func (s String) Int(base int) (int, error) {
	v, err := strconv.ParseInt(s.Str(), base, 0)
	if err != nil {
		return 0, mapNumError(err)
	}
	return int(v), nil
}

// Int64 parses the content as a signed 64-bit integer.
func (s String) Int64(base int) (int64, error) {
	v, err := strconv.ParseInt(s.Str(), base, 64)
	if err != nil {
		return 0, mapNumError(err)
	}
	return v, nil
}

// Uint64 parses the content as an unsigned 64-bit integer.
func (s String) Uint64(base int) (uint64, error) {
	v, err := strconv.ParseUint(s.Str(), base, 64)
	if err != nil {
		return 0, mapNumError(err)
	}
	return v, nil
}

// Float64 parses the content as a floating-point number.
func (s String) Float64() (float64, error) {
	v, err := strconv.ParseFloat(s.Str(), 64)
	if err != nil {
		return 0, mapNumError(err)
	}
	return v, nil
}

// Bool parses the content with the strconv.ParseBool rules.
func (s String) Bool() (bool, error) {
	v, err := strconv.ParseBool(s.Str())
	if err != nil {
		return false, mapNumError(err)
	}
	return v, nil
}

// mapNumError translates a strconv failure into the package taxonomy,
// preserving the offending text. Anything that isn't a range failure —
// malformed text, an invalid base — is an invalid argument.
func mapNumError(err error) error {
	var ne *strconv.NumError
	if !errors.As(err, &ne) {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	switch {
	case errors.Is(ne.Err, strconv.ErrSyntax):
		return fmt.Errorf("%w: parsing %q: invalid syntax", ErrInvalidArgument, ne.Num)
	case errors.Is(ne.Err, strconv.ErrRange):
		return fmt.Errorf("%w: parsing %q: value out of range", ErrOutOfRange, ne.Num)
	}
	return fmt.Errorf("%w: parsing %q: %v", ErrInvalidArgument, ne.Num, ne.Err)
}
