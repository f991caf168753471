package fetch

import "math/rand/v2"

// Picker returns a pseudo-random index in [0, n).
type Picker interface {
	IntN(n int) int
}

// PickerFunc adapts a function to Picker.
type PickerFunc func(n int) int

// IntN calls f(n).
func (f PickerFunc) IntN(n int) int { return f(n) }

// DefaultPicker uses the process-wide math/rand/v2 source, which is safe for
// concurrent use.
var DefaultPicker Picker = PickerFunc(rand.IntN)

// HashString is a stable 31-based string hash kept in the non-negative int32
// range, so the same date key maps to the same index in every process.
func HashString(s string) int {
	h := 0
	for _, r := range s {
		h = (h*31 + int(r)) & 0x7fffffff
	}
	return h
}

// DateIndex returns the deterministic index for dateKey in a collection of size n.
func DateIndex(dateKey string, n int) int {
	if n <= 0 {
		return 0
	}
	return HashString(dateKey) % n
}

// PickByDate returns the item selected by dateKey. ok is false for an empty set.
func PickByDate[T any](items []T, dateKey string) (item T, ok bool) {
	if len(items) == 0 {
		return item, false
	}
	return items[DateIndex(dateKey, len(items))], true
}

// PickRandom returns a random item. ok is false for an empty set.
func PickRandom[T any](items []T, p Picker) (item T, ok bool) {
	if len(items) == 0 {
		return item, false
	}
	if p == nil {
		p = DefaultPicker
	}
	return items[p.IntN(len(items))], true
}
