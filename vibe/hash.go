package vibe

import "unicode/utf16"

// multiplier of the rolling polynomial hash. Changing it changes every palette ever produced.
const multiplier int32 = 31

// Hash folds the UTF-16 code units of s into a two's complement 32-bit value,
// hash = hash*31 + unit, wrapping on overflow. UTF-16 units (not runes or bytes)
// keep palettes identical to the ones a browser computes for the same text.
func Hash(s string) int32 {
	var hash int32
	for _, unit := range utf16.Encode([]rune(s)) {
		hash = hash*multiplier + int32(unit)
	}
	return hash
}

// mod is the non-negative remainder of a divided by m.
func mod(a int32, m int32) int {
	return int(((a % m) + m) % m)
}
