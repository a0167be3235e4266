// Package errs defines the sentinel errors returned by the romanum codec.
//
// All errors are terminal and caller-recoverable: a failed call returns no
// partial result and never mutates the codec. Use errors.Is to classify
// failures; the wrapped message carries the offending character or magnitude.
package errs

import "errors"

var (
	// ErrInvalidCharacter indicates a decode input character that has no
	// magnitude in the codec's symbol table.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrMissingMagnitude indicates that encoding required a symbol at a
	// magnitude the alphabet does not define (e.g. 4000 under the default
	// Roman alphabet, which needs a magnitude-5000 symbol).
	ErrMissingMagnitude = errors.New("missing magnitude for input number")

	// ErrNegativeNumber indicates an encode input below zero.
	ErrNegativeNumber = errors.New("input number cannot be negative")

	// ErrOverflow indicates that decode accumulation exceeded the range of
	// the requested integer type.
	ErrOverflow = errors.New("operation would cause overflow")

	// ErrValueOutOfRange indicates a table magnitude that cannot be
	// represented in the requested integer type at all (e.g. decoding "D"
	// into an int8).
	ErrValueOutOfRange = errors.New("value does not fit in target integer type")

	// ErrDuplicateSymbol indicates a repeated character in the alphabet
	// passed to NewStrict.
	ErrDuplicateSymbol = errors.New("duplicate symbol in alphabet")

	// ErrDuplicateMagnitude indicates two alphabet positions resolving to
	// the same magnitude under NewStrict.
	ErrDuplicateMagnitude = errors.New("duplicate magnitude in alphabet")
)
