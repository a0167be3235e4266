// Package romanum provides a bidirectional codec between non-negative
// integers and Roman-style numeral text, generalized to caller-defined
// symbol alphabets.
//
// # Basic Usage
//
// Converting with the standard Roman alphabet:
//
//	import "github.com/arloliu/romanum"
//
//	text, _ := romanum.Format(2022)          // "MMXXII"
//	n, _ := romanum.Parse[int]("MMXXII")     // 2022
//
// Using a custom alphabet (order determines magnitude; here A=1, B=5):
//
//	codec := romanum.New([]rune{'A', 'B'})
//
//	text, _ := romanum.Encode(codec, 6)      // "BA"
//	n, _ := romanum.Decode[int](codec, "BA") // 6
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the numeral
// package, covering the common cases. For the full API, including strict
// construction and table introspection, use the numeral package directly.
//
// All failures are reported as wrapped sentinels from the errs package and
// classified with errors.Is; see errs for the full taxonomy.
package romanum

import (
	"github.com/arloliu/romanum/numeral"
)

// roman is the shared default codec. Codecs are immutable after
// construction, so one instance serves all callers concurrently.
var roman = numeral.NewRoman()

// New creates a codec from the given ordered alphabet.
//
// The position of each symbol determines its magnitude: positions pair up
// into groups of two, where group g contributes the 1×10^g and 5×10^g
// symbols. Construction never fails; duplicate symbols are resolved by
// letting the later occurrence win (use numeral.NewStrict to reject them).
//
// Parameters:
//   - alphabet: Ordered symbols, lowest magnitude first
//
// Returns:
//   - *numeral.Codec: The constructed codec
//
// Example:
//
//	codec := romanum.New([]rune{'A', 'B', 'C'}) // A=1, B=5, C=10
func New(alphabet []rune) *numeral.Codec {
	return numeral.New(alphabet)
}

// NewStrict creates a codec from the given ordered alphabet, failing on
// duplicate symbols or magnitude collisions instead of silently
// overwriting.
//
// Parameters:
//   - alphabet: Ordered symbols, lowest magnitude first
//
// Returns:
//   - *numeral.Codec: The constructed codec, or nil on error
//   - error: nil if successful; errs.ErrDuplicateSymbol or
//     errs.ErrDuplicateMagnitude otherwise
func NewStrict(alphabet []rune) (*numeral.Codec, error) {
	return numeral.NewStrict(alphabet)
}

// NewRoman creates a codec with the standard Roman numeral alphabet
// I, V, X, L, C, D, M, covering values 0 through 3999.
//
// Returns:
//   - *numeral.Codec: A codec for the standard Roman numeral system
func NewRoman() *numeral.Codec {
	return numeral.NewRoman()
}

// Encode renders a non-negative integer as numeral text under codec c.
//
// See numeral.Encode for the digit-pattern rules and error conditions.
func Encode[T numeral.Integer](c *numeral.Codec, number T) (string, error) {
	return numeral.Encode(c, number)
}

// Decode parses numeral text into an integer of type T under codec c.
//
// See numeral.Decode for the additive/subtractive scan rules and error
// conditions.
func Decode[T numeral.Integer](c *numeral.Codec, input string) (T, error) {
	return numeral.Decode[T](c, input)
}

// Format renders a non-negative integer as standard Roman numeral text.
//
// Shorthand for Encode over a shared default codec. The representable range
// is 0 through 3999; larger values fail with errs.ErrMissingMagnitude and
// negative values with errs.ErrNegativeNumber.
//
// Example:
//
//	text, err := romanum.Format(3999) // "MMMCMXCIX", nil
func Format[T numeral.Integer](number T) (string, error) {
	return numeral.Encode(roman, number)
}

// Parse decodes standard Roman numeral text into an integer of type T.
//
// Shorthand for Decode over a shared default codec.
//
// Example:
//
//	n, err := romanum.Parse[int]("MMMCMXCIX") // 3999, nil
func Parse[T numeral.Integer](input string) (T, error) {
	return numeral.Decode[T](roman, input)
}
