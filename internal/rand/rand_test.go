package rand

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringLengthAndCharset(t *testing.T) {
	s := String(16)
	assert.Len(t, s, 16)
	for _, r := range s {
		assert.True(t, strings.ContainsRune(charset, r))
	}

	assert.Empty(t, String(0))
}

func TestStringVaries(t *testing.T) {
	assert.NotEqual(t, String(32), String(32))
}
