// Package binary encodes small non-negative integers as fixed-width binary digit strings.
//
// Strings are big-endian: the leftmost character is the most significant bit.
package binary

import (
	"errors"
	"fmt"
)

// MaxWidth is the widest field the encoder accepts.
const MaxWidth = 30

var (
	ErrOutOfRange = errors.New("value does not fit width")
	ErrNegative   = errors.New("negative value")
	ErrWidth      = errors.New("invalid width")
	ErrDigit      = errors.New("invalid binary digit")
)

// Power raises base to a non-negative exponent by repeated multiplication.
// An exponent <= 0 yields 1. There is no overflow checking.
func Power(base, exponent int) int {
	p := 1
	for i := 0; i < exponent; i++ {
		p *= base
	}
	return p
}

// Encode returns value as exactly width '0'/'1' characters.
func Encode(value, width int) (string, error) {
	if width < 1 || width > MaxWidth {
		return "", fmt.Errorf("binary encode: %w: %d", ErrWidth, width)
	}
	buf := make([]byte, width)
	if err := EncodeInto(buf, value); err != nil {
		return "", err
	}
	return string(buf), nil
}

// EncodeInto writes value into dst using len(dst) as the width.
//
// dst is left untouched on error.
func EncodeInto(dst []byte, value int) error {
	width := len(dst)
	if width < 1 || width > MaxWidth {
		return fmt.Errorf("binary encode: %w: %d", ErrWidth, width)
	}
	if value < 0 {
		return fmt.Errorf("binary encode: %w: %d", ErrNegative, value)
	}
	if value >= Power(2, width) {
		return fmt.Errorf("binary encode: %w: %d in %d bits", ErrOutOfRange, value, width)
	}

	store := value
	for i := 0; i < width; i++ {
		place := Power(2, width-1-i)
		if store >= place {
			dst[i] = '1'
			store -= place
		} else {
			dst[i] = '0'
		}
	}
	return nil
}

// Decode parses a big-endian binary numeral.
func Decode(s string) (int, error) {
	if len(s) < 1 || len(s) > MaxWidth {
		return 0, fmt.Errorf("binary decode: %w: %d", ErrWidth, len(s))
	}
	v := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			v <<= 1
		case '1':
			v = v<<1 | 1
		default:
			return 0, fmt.Errorf("binary decode: %w: %q at %d", ErrDigit, s[i], i)
		}
	}
	return v, nil
}
