package numeral

import (
	"fmt"

	"github.com/arloliu/romanum/errs"
)

// Decode parses a numeral string into an integer of type T.
//
// The input is scanned left to right. Each character's magnitude is added to
// the running total, except when the character immediately after it carries
// 5× or 10× its magnitude; then the current magnitude is subtracted instead
// and the following character is still processed on its own. This encodes
// the subtractive pairs ("IV", "IX", "XL", "XC", "CD", "CM" under the
// default alphabet) generically for any alphabet.
//
// No canonical-form validation is applied: any string decodable under the
// additive/subtractive rule is accepted, so "IIII" yields 4 even though the
// minimal spelling is "IV". The empty string decodes to zero. Whitespace is
// not trimmed and fails like any other out-of-alphabet character.
//
// All accumulation uses checked arithmetic on T, so the result is exact or
// the call fails; no partial result is ever returned. Decoding a subtractive
// pair into an unsigned type underflows on the subtraction and fails with
// errs.ErrOverflow, matching the checked-arithmetic contract.
//
// Parameters:
//   - c: The codec whose alphabet interprets the input
//   - input: The numeral text to parse
//
// Returns:
//   - T: The decoded value
//   - error: nil if successful; errs.ErrInvalidCharacter if a character has
//     no magnitude, errs.ErrValueOutOfRange if a table magnitude does not
//     fit in T, errs.ErrOverflow if accumulation left T's range
//
// Example:
//
//	codec := numeral.NewRoman()
//	n, err := numeral.Decode[int32](codec, "MMXXII") // 2022, nil
func Decode[T Integer](c *Codec, input string) (T, error) {
	runes := []rune(input)

	var result T
	for i, r := range runes {
		magnitude, ok := c.symbolMagnitude[r]
		if !ok {
			return 0, fmt.Errorf("%w: %q", errs.ErrInvalidCharacter, r)
		}

		value, ok := fromUint64[T](magnitude)
		if !ok {
			return 0, fmt.Errorf("%w: magnitude %d", errs.ErrValueOutOfRange, magnitude)
		}

		subtract := false
		if i+1 < len(runes) {
			if next, known := c.symbolMagnitude[runes[i+1]]; known {
				subtract = magnitude*5 == next || magnitude*10 == next
			}
		}

		if subtract {
			result, ok = subChecked(result, value)
		} else {
			result, ok = addChecked(result, value)
		}
		if !ok {
			return 0, errs.ErrOverflow
		}
	}

	return result, nil
}
