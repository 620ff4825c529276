// Package hex converts between 16 bit values and the fixed-width uppercase
// hexadecimal text the monitor reads and prints.
package hex

import (
	"errors"
	"fmt"
)

// MaxWidth is the number of digits needed for a full 16 bit value.
const MaxWidth = 4

const digits = "0123456789ABCDEF"

var (
	ErrInvalidDigit = errors.New("invalid hex digit")
	ErrShortInput   = errors.New("not enough hex digits")
	ErrWidth        = errors.New("unsupported hex width")
)

// IsDigit reports whether c is a hexadecimal digit.
func IsDigit(c byte) bool {
	_, ok := digitValue(c)
	return ok
}

func digitValue(c byte) (uint16, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint16(c - '0'), true
	case c >= 'A' && c <= 'F':
		return uint16(c-'A') + 10, true
	case c >= 'a' && c <= 'f':
		return uint16(c-'a') + 10, true
	default:
		return 0, false
	}
}

// Decode reads exactly width digits from the start of text, most significant
// nibble first. Characters after the first width are ignored.
func Decode(text string, width int) (uint16, error) {
	if width < 1 || width > MaxWidth {
		return 0, fmt.Errorf("%w: %d", ErrWidth, width)
	}
	if len(text) < width {
		return 0, fmt.Errorf("%w: want %d, have %q", ErrShortInput, width, text)
	}

	var value uint16
	for i := 0; i < width; i++ {
		nibble, ok := digitValue(text[i])
		if !ok {
			return 0, fmt.Errorf("%w: %q at offset %d", ErrInvalidDigit, text[i], i)
		}
		value = value<<4 | nibble
	}
	return value, nil
}

// Encode formats the low width nibbles of value as zero-padded uppercase
// digits. The result is always exactly width characters long.
func Encode(value uint16, width int) string {
	if width < 1 || width > MaxWidth {
		panic(fmt.Sprintf("hex.Encode: unsupported width %d", width))
	}
	return string(AppendEncode(make([]byte, 0, width), value, width))
}

// AppendEncode appends the Encode form of value to dst.
func AppendEncode(dst []byte, value uint16, width int) []byte {
	for shift := (width - 1) * 4; shift >= 0; shift -= 4 {
		dst = append(dst, digits[(value>>shift)&0xF])
	}
	return dst
}
