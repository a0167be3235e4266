package numeral

import (
	"fmt"
	"slices"

	"github.com/arloliu/romanum/errs"
)

// groupValues holds the per-group multipliers: within each group of two
// alphabet positions, the first symbol is the 1× symbol and the second the
// 5× symbol of the group's decimal scale.
var groupValues = [2]uint64{1, 5}

// romanAlphabet is the default symbol set, covering magnitudes 1 through
// 1000 with a practical value ceiling of 3999.
var romanAlphabet = []rune{'I', 'V', 'X', 'L', 'C', 'D', 'M'}

// Codec converts between non-negative integers and their numeral text under
// a fixed symbol alphabet.
//
// Both lookup tables are built once during construction and never mutated
// afterward, so a single Codec may be shared across goroutines freely.
type Codec struct {
	symbolMagnitude map[rune]uint64
	magnitudeSymbol map[uint64]rune
}

// New creates a Codec from the given ordered alphabet.
//
// The position of each symbol determines its magnitude. Positions are
// consumed in groups of two; within group g the first symbol is worth
// 1×10^g and the second 5×10^g. For the default Roman alphabet:
//
//	| Index | Magnitude | Symbol |
//	|-------|-----------|--------|
//	| 0     | 1         | 'I'    |
//	| 1     | 5         | 'V'    |
//	| 2     | 10        | 'X'    |
//	| 3     | 50        | 'L'    |
//	| 4     | 100       | 'C'    |
//	| 5     | 500       | 'D'    |
//	| 6     | 1000      | 'M'    |
//	| ...   | ...       | ...    |
//
// An alphabet of odd length leaves the last group's 5× symbol undefined,
// capping the representable range accordingly. Construction never fails:
// even an empty alphabet is accepted and yields a codec that can only
// represent zero.
//
// If the alphabet repeats a symbol, the later occurrence silently replaces
// the earlier one. Use NewStrict to reject duplicates instead.
//
// Parameters:
//   - alphabet: Ordered symbols, lowest magnitude first
//
// Returns:
//   - *Codec: A codec ready for Encode and Decode calls
func New(alphabet []rune) *Codec {
	c := &Codec{
		symbolMagnitude: make(map[rune]uint64, len(alphabet)),
		magnitudeSymbol: make(map[uint64]rune, len(alphabet)),
	}

	magnitude := uint64(1)
	for i, symbol := range alphabet {
		if i > 0 && i%len(groupValues) == 0 {
			magnitude *= 10
		}

		value := magnitude * groupValues[i%len(groupValues)]
		c.symbolMagnitude[symbol] = value
		c.magnitudeSymbol[value] = symbol
	}

	return c
}

// NewStrict creates a Codec from the given ordered alphabet, rejecting
// alphabets that would lose information during table construction.
//
// Unlike New, which lets a later occurrence silently replace an earlier one,
// NewStrict fails with errs.ErrDuplicateSymbol when a symbol appears twice
// and with errs.ErrDuplicateMagnitude when two positions resolve to the same
// magnitude.
//
// Parameters:
//   - alphabet: Ordered symbols, lowest magnitude first
//
// Returns:
//   - *Codec: The constructed codec, or nil on error
//   - error: nil if successful, a wrapped sentinel from errs otherwise
func NewStrict(alphabet []rune) (*Codec, error) {
	c := &Codec{
		symbolMagnitude: make(map[rune]uint64, len(alphabet)),
		magnitudeSymbol: make(map[uint64]rune, len(alphabet)),
	}

	magnitude := uint64(1)
	for i, symbol := range alphabet {
		if i > 0 && i%len(groupValues) == 0 {
			magnitude *= 10
		}

		value := magnitude * groupValues[i%len(groupValues)]

		if _, ok := c.symbolMagnitude[symbol]; ok {
			return nil, fmt.Errorf("%w: %q at position %d", errs.ErrDuplicateSymbol, symbol, i)
		}
		if prev, ok := c.magnitudeSymbol[value]; ok {
			return nil, fmt.Errorf("%w: %d assigned to both %q and %q", errs.ErrDuplicateMagnitude, value, prev, symbol)
		}

		c.symbolMagnitude[symbol] = value
		c.magnitudeSymbol[value] = symbol
	}

	return c, nil
}

// NewRoman creates a Codec with the standard Roman numeral alphabet
// I, V, X, L, C, D, M.
//
// The maximum defined magnitude is 1000, giving a practical value ceiling of
// 3999: encoding 4000 requires a magnitude-5000 symbol and fails with
// errs.ErrMissingMagnitude.
//
// Returns:
//   - *Codec: A codec for the standard Roman numeral system
func NewRoman() *Codec {
	return New(romanAlphabet)
}

// MagnitudeOf returns the magnitude assigned to symbol and whether the
// symbol is part of the alphabet.
func (c *Codec) MagnitudeOf(symbol rune) (uint64, bool) {
	m, ok := c.symbolMagnitude[symbol]
	return m, ok
}

// SymbolOf returns the canonical symbol for magnitude and whether the
// alphabet defines one.
func (c *Codec) SymbolOf(magnitude uint64) (rune, bool) {
	r, ok := c.magnitudeSymbol[magnitude]
	return r, ok
}

// Len returns the number of distinct symbols in the codec's table.
func (c *Codec) Len() int {
	return len(c.symbolMagnitude)
}

// Alphabet returns the codec's symbols ordered by ascending magnitude.
//
// The returned slice is a copy; callers may modify it freely. Note that for
// alphabets with duplicate symbols the result reflects the table after
// overwrites, not the original input.
//
// Returns:
//   - []rune: Symbols sorted by the magnitude they represent
func (c *Codec) Alphabet() []rune {
	type entry struct {
		magnitude uint64
		symbol    rune
	}

	entries := make([]entry, 0, len(c.magnitudeSymbol))
	for m, r := range c.magnitudeSymbol {
		entries = append(entries, entry{magnitude: m, symbol: r})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		switch {
		case a.magnitude < b.magnitude:
			return -1
		case a.magnitude > b.magnitude:
			return 1
		default:
			return 0
		}
	})

	symbols := make([]rune, len(entries))
	for i, e := range entries {
		symbols[i] = e.symbol
	}

	return symbols
}

// symbol returns the character for magnitude, or a wrapped
// errs.ErrMissingMagnitude if the alphabet does not define one.
func (c *Codec) symbol(magnitude uint64) (rune, error) {
	r, ok := c.magnitudeSymbol[magnitude]
	if !ok {
		return 0, fmt.Errorf("%w: %d", errs.ErrMissingMagnitude, magnitude)
	}

	return r, nil
}
