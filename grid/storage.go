// SPDX-License-Identifier: MIT

package grid

import "math/bits"

// store is the flat value storage behind a Grid, indexed by flat position.
// Callers have already bounds-checked p.
type store[T any] interface {
	get(p int) T
	set(p int, v T)
	fill(v T)
	len() int
	clone() store[T]
}

// newStore allocates n zero values. bool gets the packed-bit layout; every
// other element type, including named bool types, gets a plain slice.
func newStore[T any](n int) store[T] {
	var zero T
	if _, ok := any(zero).(bool); ok {
		return any(newBitStore(n)).(store[T])
	}

	return make(sliceStore[T], n)
}

// sliceStore keeps one element per node.
type sliceStore[T any] []T

func (s sliceStore[T]) get(p int) T    { return s[p] }
func (s sliceStore[T]) set(p int, v T) { s[p] = v }
func (s sliceStore[T]) len() int       { return len(s) }

func (s sliceStore[T]) fill(v T) {
	for i := range s {
		s[i] = v
	}
}

func (s sliceStore[T]) clone() store[T] {
	out := make(sliceStore[T], len(s))
	copy(out, s)

	return out
}

// wordBits is the number of values packed into one storage word.
const wordBits = bits.UintSize

// bitStore packs booleans one bit per node, wordBits nodes per word.
// Bits past n in the last word are kept at zero.
type bitStore struct {
	words []uint
	n     int
}

func newBitStore(n int) *bitStore {
	return &bitStore{words: make([]uint, (n+wordBits-1)/wordBits), n: n}
}

// getBit reads the bit at position p.
func (b *bitStore) getBit(p int) bool {
	return b.words[p/wordBits]&(1<<(uint(p)%wordBits)) != 0
}

// setBit writes the bit at position p.
func (b *bitStore) setBit(p int, v bool) {
	mask := uint(1) << (uint(p) % wordBits)
	if v {
		b.words[p/wordBits] |= mask
	} else {
		b.words[p/wordBits] &^= mask
	}
}

func (b *bitStore) get(p int) bool    { return b.getBit(p) }
func (b *bitStore) set(p int, v bool) { b.setBit(p, v) }
func (b *bitStore) len() int          { return b.n }

func (b *bitStore) fill(v bool) {
	var w uint
	if v {
		w = ^uint(0)
	}
	for i := range b.words {
		b.words[i] = w
	}
	if tail := b.n % wordBits; v && tail != 0 {
		b.words[len(b.words)-1] = (1 << uint(tail)) - 1
	}
}

func (b *bitStore) clone() store[bool] {
	words := make([]uint, len(b.words))
	copy(words, b.words)

	return &bitStore{words: words, n: b.n}
}

// count returns the number of set bits.
func (b *bitStore) count() int {
	c := 0
	for _, w := range b.words {
		c += bits.OnesCount(w)
	}

	return c
}
