package numeral

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/romanum/errs"
)

// TestDecode_DefaultAlphabet verifies known values under I..M
func TestDecode_DefaultAlphabet(t *testing.T) {
	codec := NewRoman()

	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"empty", "", 0},
		{"one", "I", 1},
		{"two", "II", 2},
		{"three", "III", 3},
		{"four", "IV", 4},
		{"five", "V", 5},
		{"six", "VI", 6},
		{"seven", "VII", 7},
		{"eight", "VIII", 8},
		{"nine", "IX", 9},
		{"ten", "X", 10},
		{"year", "MMXXII", 2022},
		{"complicated", "MMMDCCCLXXXVIII", 3888},
		{"maximum", "MMMCMXCIX", 3999},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n, err := Decode[int](codec, tc.input)
			require.NoError(t, err)
			require.Equal(t, tc.expected, n)
		})
	}
}

// TestDecode_CustomAlphabet verifies the inverse digit table for A,B,C,D
func TestDecode_CustomAlphabet(t *testing.T) {
	codec := New([]rune{'A', 'B', 'C', 'D'})

	inputs := []string{"", "A", "AA", "AAA", "AB", "B", "BA", "BAA", "BAAA", "AC", "C"}
	for want, input := range inputs {
		n, err := Decode[int](codec, input)
		require.NoError(t, err, "decode %q", input)
		require.Equal(t, want, n, "decode %q", input)
	}
}

// TestDecode_SubtractivePairs verifies all six classic subtractive forms
func TestDecode_SubtractivePairs(t *testing.T) {
	codec := NewRoman()

	tests := []struct {
		input    string
		expected int
	}{
		{"IV", 4},
		{"IX", 9},
		{"XL", 40},
		{"XC", 90},
		{"CD", 400},
		{"CM", 900},
	}

	for _, tc := range tests {
		n, err := Decode[int](codec, tc.input)
		require.NoError(t, err, "decode %q", tc.input)
		require.Equal(t, tc.expected, n)
	}
}

// TestDecode_NonCanonicalForms verifies the scan accepts non-minimal spellings
func TestDecode_NonCanonicalForms(t *testing.T) {
	codec := NewRoman()

	tests := []struct {
		input    string
		expected int
	}{
		{"IIII", 4},
		{"VIIII", 9},
		{"XXXX", 40},
		// The subtractive rule fires only for exact 5× or 10× lookahead,
		// so I before L (50×) or M (1000×) simply adds.
		{"IL", 51},
		{"MIM", 2001},
	}

	for _, tc := range tests {
		n, err := Decode[int](codec, tc.input)
		require.NoError(t, err, "decode %q", tc.input)
		require.Equal(t, tc.expected, n, "decode %q", tc.input)
	}
}

// TestDecode_InvalidCharacter verifies out-of-alphabet input is rejected
func TestDecode_InvalidCharacter(t *testing.T) {
	codec := NewRoman()

	_, err := Decode[int](codec, "A")
	require.ErrorIs(t, err, errs.ErrInvalidCharacter)
	require.ErrorContains(t, err, "A")

	// Whitespace is not trimmed; it fails like any other unknown rune.
	_, err = Decode[int](codec, " X")
	require.ErrorIs(t, err, errs.ErrInvalidCharacter)

	_, err = Decode[int](codec, "XIZ")
	require.ErrorIs(t, err, errs.ErrInvalidCharacter)
	require.ErrorContains(t, err, "Z")
}

// TestDecode_Overflow verifies checked accumulation on narrow types
func TestDecode_Overflow(t *testing.T) {
	codec := NewRoman()

	// 100+10+10+5+1+1 = 127 fits int8; one more I overflows.
	n, err := Decode[int8](codec, "CXXVII")
	require.NoError(t, err)
	require.Equal(t, int8(127), n)

	_, err = Decode[int8](codec, "CXXVIII")
	require.ErrorIs(t, err, errs.ErrOverflow)

	// Unsigned types cannot hold a subtractive prefix: 0-1 underflows.
	_, err = Decode[uint8](codec, "IV")
	require.ErrorIs(t, err, errs.ErrOverflow)

	// The same input is fine for a signed type.
	m, err := Decode[int8](codec, "IV")
	require.NoError(t, err)
	require.Equal(t, int8(4), m)
}

// TestDecode_ValueOutOfRange verifies magnitudes too large for the target type
func TestDecode_ValueOutOfRange(t *testing.T) {
	codec := NewRoman()

	// 'D' is magnitude 500, unrepresentable in int8 regardless of context.
	_, err := Decode[int8](codec, "D")
	require.ErrorIs(t, err, errs.ErrValueOutOfRange)

	_, err = Decode[uint8](codec, "M")
	require.ErrorIs(t, err, errs.ErrValueOutOfRange)

	// The same magnitudes decode fine into wider types.
	n, err := Decode[int16](codec, "D")
	require.NoError(t, err)
	require.Equal(t, int16(500), n)
}

// TestDecode_GenericWidths verifies decoding into assorted integer types
func TestDecode_GenericWidths(t *testing.T) {
	codec := NewRoman()

	n64, err := Decode[uint64](codec, "MMMM")
	require.NoError(t, err)
	require.Equal(t, uint64(4000), n64)

	n32, err := Decode[int32](codec, "MMXXII")
	require.NoError(t, err)
	require.Equal(t, int32(2022), n32)

	n8, err := Decode[uint8](codec, "CC")
	require.NoError(t, err)
	require.Equal(t, uint8(200), n8)
}

// TestDecode_TrailingSubtractiveSymbol verifies lookahead at end of input adds
func TestDecode_TrailingSubtractiveSymbol(t *testing.T) {
	codec := NewRoman()

	// A lone trailing I has nothing to look ahead to, so it adds.
	n, err := Decode[int](codec, "XI")
	require.NoError(t, err)
	require.Equal(t, 11, n)
}
