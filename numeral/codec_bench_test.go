package numeral

import (
	"testing"
)

func BenchmarkEncode_Small(b *testing.B) {
	codec := NewRoman()

	b.ResetTimer()
	for b.Loop() {
		_, _ = Encode(codec, 7)
	}
}

func BenchmarkEncode_Large(b *testing.B) {
	codec := NewRoman()

	b.ResetTimer()
	for b.Loop() {
		_, _ = Encode(codec, 3888)
	}
}

func BenchmarkDecode_Small(b *testing.B) {
	codec := NewRoman()

	b.ResetTimer()
	for b.Loop() {
		_, _ = Decode[int](codec, "VII")
	}
}

func BenchmarkDecode_Large(b *testing.B) {
	codec := NewRoman()

	b.ResetTimer()
	for b.Loop() {
		_, _ = Decode[int](codec, "MMMDCCCLXXXVIII")
	}
}

func BenchmarkNew_Roman(b *testing.B) {
	b.ResetTimer()
	for b.Loop() {
		_ = NewRoman()
	}
}
