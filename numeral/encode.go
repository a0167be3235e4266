package numeral

import (
	"strconv"
	"strings"

	"github.com/arloliu/romanum/errs"
)

// Encode renders a non-negative integer as numeral text.
//
// The number is decomposed into its decimal digits and each digit maps to a
// fixed pattern over the three symbols of its scale (unit = 1×10^p,
// five = 5×10^p, ten = 1×10^(p+1)):
//
//	0     nothing
//	1-3   unit repeated digit times     (I, II, III)
//	4     unit then five                (IV)
//	5     five                          (V)
//	6-8   five then unit × (digit-5)    (VI, VII, VIII)
//	9     unit then ten                 (IX)
//
// Symbols are looked up lazily, only when a digit actually needs them.
// Digits whose patterns avoid a missing symbol still succeed, which is why
// the default 7-symbol alphabet covers every value up to 3999 yet fails at
// 4000 (the thousands digit 4 needs a magnitude-5000 symbol).
//
// Zero encodes to the empty string.
//
// Parameters:
//   - c: The codec whose alphabet supplies the symbols
//   - number: The value to render; any Integer type
//
// Returns:
//   - string: The numeral text, most significant symbol first
//   - error: nil if successful; errs.ErrNegativeNumber for inputs below
//     zero, errs.ErrMissingMagnitude when a required symbol is undefined
//
// Example:
//
//	codec := numeral.NewRoman()
//	text, err := numeral.Encode(codec, 2022) // "MMXXII", nil
func Encode[T Integer](c *Codec, number T) (string, error) {
	if number < 0 {
		return "", errs.ErrNegativeNumber
	}

	digits := strconv.FormatUint(uint64(number), 10)

	var sb strings.Builder
	// Worst case is four symbols per digit (e.g. VIII).
	sb.Grow(len(digits) * 4)

	for i := range len(digits) {
		digit := int(digits[i] - '0')
		if digit == 0 {
			continue
		}

		scale := pow10(len(digits) - 1 - i)

		switch {
		case digit <= 3:
			unit, err := c.symbol(scale)
			if err != nil {
				return "", err
			}
			for range digit {
				sb.WriteRune(unit)
			}

		case digit == 4:
			unit, err := c.symbol(scale)
			if err != nil {
				return "", err
			}
			five, err := c.symbol(scale * 5)
			if err != nil {
				return "", err
			}
			sb.WriteRune(unit)
			sb.WriteRune(five)

		case digit == 5:
			five, err := c.symbol(scale * 5)
			if err != nil {
				return "", err
			}
			sb.WriteRune(five)

		case digit <= 8:
			five, err := c.symbol(scale * 5)
			if err != nil {
				return "", err
			}
			unit, err := c.symbol(scale)
			if err != nil {
				return "", err
			}
			sb.WriteRune(five)
			for range digit - 5 {
				sb.WriteRune(unit)
			}

		default: // 9
			unit, err := c.symbol(scale)
			if err != nil {
				return "", err
			}
			ten, err := c.symbol(scale * 10)
			if err != nil {
				return "", err
			}
			sb.WriteRune(unit)
			sb.WriteRune(ten)
		}
	}

	return sb.String(), nil
}

// pow10 returns 10^n. The exponent is bounded by the digit count of a
// uint64, so the result always fits.
func pow10(n int) uint64 {
	v := uint64(1)
	for range n {
		v *= 10
	}

	return v
}
