package memzero_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pwned/internal/util/memzero"
)

func TestZero(t *testing.T) {
	b := []byte("P@ssword")
	memzero.Zero(b)
	assert.Equal(t, make([]byte, 8), b)

	memzero.Zero(nil)
}
