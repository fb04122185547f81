package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewStore_Selection checks that only bool selects packed storage.
func TestNewStore_Selection(t *testing.T) {
	_, packed := newStore[bool](10).(*bitStore)
	assert.True(t, packed, "bool must use bitStore")

	_, plain := newStore[int](10).(sliceStore[int])
	assert.True(t, plain, "int must use sliceStore")

	type flag bool
	_, plainFlag := newStore[flag](10).(sliceStore[flag])
	assert.True(t, plainFlag, "named bool types use sliceStore")
}

// TestBitStore_SetGet writes single bits across word boundaries.
func TestBitStore_SetGet(t *testing.T) {
	n := 3*wordBits + 5
	b := newBitStore(n)
	require.Equal(t, n, b.len())
	require.Len(t, b.words, 4)

	positions := []int{0, 1, wordBits - 1, wordBits, 2*wordBits + 7, n - 1}
	for _, p := range positions {
		b.setBit(p, true)
	}
	for p := 0; p < n; p++ {
		want := false
		for _, q := range positions {
			if p == q {
				want = true
			}
		}
		assert.Equal(t, want, b.getBit(p), "bit %d", p)
	}
	assert.Equal(t, len(positions), b.count())

	b.setBit(wordBits, false)
	assert.False(t, b.getBit(wordBits))
	assert.True(t, b.getBit(wordBits-1), "neighbour untouched")
	assert.Equal(t, len(positions)-1, b.count())
}

// TestBitStore_FillKeepsTailClear ensures bits past n stay zero.
func TestBitStore_FillKeepsTailClear(t *testing.T) {
	b := newBitStore(wordBits + 3)
	b.fill(true)
	assert.Equal(t, wordBits+3, b.count())
	assert.Equal(t, uint(0b111), b.words[1])

	b.fill(false)
	assert.Equal(t, 0, b.count())
}

// TestBitStore_Clone checks independence of cloned words.
func TestBitStore_Clone(t *testing.T) {
	b := newBitStore(8)
	b.set(3, true)
	c := b.clone()
	c.set(4, true)

	assert.True(t, c.get(3))
	assert.False(t, b.get(4))
}

// TestSliceStore covers the generic path.
func TestSliceStore(t *testing.T) {
	s := newStore[string](3)
	s.fill("a")
	s.set(1, "b")
	c := s.clone()
	c.set(2, "c")

	assert.Equal(t, []string{"a", "b", "a"}, []string(s.(sliceStore[string])))
	assert.Equal(t, "c", c.get(2))
	assert.Equal(t, 3, s.len())
}
