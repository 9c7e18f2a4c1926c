// Package core provides fundamental types and utilities shared by the racer
// packages. It contains no external dependencies (especially no Bubble Tea) to
// keep the race engine pure and testable.
package core

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Mod returns x modulo n in the range [0, n).
// Go's % keeps the sign of the dividend, which is wrong for wrapping around a
// circular track.
func Mod(x, n int) int {
	m := x % n
	if m < 0 {
		m += n
	}
	return m
}

// FloorDiv returns floor(a / b) for b > 0.
func FloorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
