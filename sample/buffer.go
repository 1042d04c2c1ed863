// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package sample // import "github.com/sysstat/sapcp/sample"

// Buffer is a grow-only, index-stable record store holding two cycles of
// records for one activity: the cycle being filled (current) and the one
// filled before it (previous). Capacity never shrinks, so record indexes
// stay valid across cycles even when the number of live entities drops.
type Buffer[T any] struct {
	bufs  [2][]T
	count [2]int
	cur   int
}

// Grow ensures both cycles have capacity for at least n records,
// preserving existing contents. It never shrinks.
func (b *Buffer[T]) Grow(n int) {
	if n <= cap(b.bufs[0]) {
		return
	}
	for i := range b.bufs {
		grown := make([]T, n)
		copy(grown, b.bufs[i])
		b.bufs[i] = grown
	}
}

// Acquire grows the buffer to hold n records, zeroes the current cycle's
// first n slots, records n as the current cycle's count and returns the
// slots for filling.
func (b *Buffer[T]) Acquire(n int) []T {
	b.Grow(n)
	s := b.bufs[b.cur][:n]
	var zero T
	for i := range s {
		s[i] = zero
	}
	b.count[b.cur] = n
	return s
}

// Extend raises the current cycle's count to n without clearing slots
// already filled this cycle. Newly covered slots keep whatever the buffer
// held; callers overwrite them.
func (b *Buffer[T]) Extend(n int) []T {
	b.Grow(n)
	if n > b.count[b.cur] {
		b.count[b.cur] = n
	}
	return b.bufs[b.cur][:b.count[b.cur]]
}

// Swap flips current and previous cycles.
func (b *Buffer[T]) Swap() {
	b.cur = 1 - b.cur
}

// Cap reports the allocated per-cycle capacity.
func (b *Buffer[T]) Cap() int {
	return cap(b.bufs[0])
}

// Count reports how many records the current cycle holds.
func (b *Buffer[T]) Count() int {
	return b.count[b.cur]
}

// Curr returns the current cycle's records.
func (b *Buffer[T]) Curr() []T {
	return b.bufs[b.cur][:b.count[b.cur]]
}

// Prev returns the previous cycle's records.
func (b *Buffer[T]) Prev() []T {
	prev := 1 - b.cur
	return b.bufs[prev][:b.count[prev]]
}
