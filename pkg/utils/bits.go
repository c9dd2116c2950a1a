package utils

import "golang.org/x/exp/constraints"

// SetBit returns value with the given bit set.
func SetBit[T constraints.Unsigned](value T, bit uint8) T {
	return value | (1 << bit)
}

// ClearBit returns value with the given bit cleared.
func ClearBit[T constraints.Unsigned](value T, bit uint8) T {
	return value &^ (1 << bit)
}

// TestBit returns true if the bit is set, false otherwise.
func TestBit[T constraints.Unsigned](value T, bit uint8) bool {
	return value&(1<<bit) != 0
}

// AssignBit sets or clears the bit depending on on.
func AssignBit[T constraints.Unsigned](value T, bit uint8, on bool) T {
	if on {
		return SetBit(value, bit)
	}
	return ClearBit(value, bit)
}
