// Package numeral implements a bidirectional codec between non-negative
// integers and a positional numeral notation generalized from Roman numerals.
//
// A Codec is parameterized at construction time by an ordered symbol
// alphabet. Alphabet positions are consumed in groups of two: within group g
// (0-indexed) the first symbol is worth 1×10^g and the second 5×10^g, which
// reproduces the classical Roman progression (I=1, V=5, X=10, L=50, C=100,
// D=500, M=1000, ...) and generalizes to alphabets of any length.
//
// # Basic Usage
//
// Using the default Roman alphabet:
//
//	codec := numeral.NewRoman()
//
//	text, _ := numeral.Encode(codec, 2022)        // "MMXXII"
//	n, _ := numeral.Decode[int](codec, "MMXXII")  // 2022
//
//	// The default alphabet tops out at 3999; 4000 would need a
//	// magnitude-5000 symbol.
//	_, err := numeral.Encode(codec, 4000)
//	errors.Is(err, errs.ErrMissingMagnitude) // true
//
// Using a custom alphabet (order determines magnitude; here A=1, B=5):
//
//	custom := numeral.New([]rune{'A', 'B'})
//
//	text, _ := numeral.Encode(custom, 6)      // "BA"
//	n, _ := numeral.Decode[int](custom, "BA") // 6
//
//	// With only 2 symbols the maximum representable value is 8
//	// (the equivalent of VIII); use more symbols to extend the range.
//	_, err := numeral.Encode(custom, 9)       // fails
//
// # Subtractive Pairs
//
// Decode applies the additive/subtractive rule generically: a symbol is
// subtracted when the symbol immediately after it carries 5× or 10× its
// magnitude ("IV", "IX", "XL", "XC", "CD", "CM" under the default alphabet).
// No canonical-form validation is performed beyond that rule, so a string
// like "IIII" decodes to 4 without error.
//
// # Generic Integer Widths
//
// Encode and Decode are generic over the Integer constraint, covering every
// fixed-width and platform-width signed or unsigned integer type. All decode
// accumulation uses checked arithmetic: a result that would exceed the
// requested type's range fails with errs.ErrOverflow, and a table magnitude
// that does not fit the type at all fails with errs.ErrValueOutOfRange.
//
// # Concurrency
//
// A Codec is immutable once constructed and holds no external resources.
// Encode and Decode are pure functions of the codec and their inputs, so any
// number of goroutines may share one instance without synchronization.
package numeral
