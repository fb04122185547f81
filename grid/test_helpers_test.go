package grid_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// requirePanicIs runs fn and requires it to panic with an error matching target.
func requirePanicIs(t *testing.T, target error, fn func()) {
	t.Helper()
	var got any
	func() {
		defer func() { got = recover() }()
		fn()
	}()
	require.NotNil(t, got, "expected panic matching %v", target)
	err, ok := got.(error)
	require.True(t, ok, "panic value %v is not an error", got)
	require.True(t, errors.Is(err, target), "panic %v does not wrap %v", err, target)
}

// key renders an index for use as a map key.
func key(idx []int) string { return fmt.Sprint(idx) }
