//go:build unit

package entrycode_test

import (
	"strings"
	"testing"

	"parkhub/internal/pkg/entrycode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	code, hash, err := entrycode.Generate()
	require.NoError(t, err)

	assert.Len(t, code, entrycode.CodeLength)
	assert.NotContains(t, code, "0")
	assert.NotContains(t, code, "O")
	assert.NotContains(t, code, "1")
	assert.NotContains(t, code, "I")
	assert.True(t, strings.HasPrefix(hash, "$2"), "expected bcrypt hash, got %q", hash)
	assert.NotEqual(t, code, hash)
}

func TestGenerateUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		code, _, err := entrycode.Generate()
		require.NoError(t, err)
		assert.False(t, seen[code], "duplicate code %q", code)
		seen[code] = true
	}
}

func TestVerify(t *testing.T) {
	code, hash, err := entrycode.Generate()
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		assert.NoError(t, entrycode.Verify(hash, code))
	})

	t.Run("wrong code", func(t *testing.T) {
		assert.ErrorIs(t, entrycode.Verify(hash, "WRONGCODE2"), entrycode.ErrCodeMismatch)
	})

	t.Run("empty inputs", func(t *testing.T) {
		assert.ErrorIs(t, entrycode.Verify("", code), entrycode.ErrInvalidCode)
		assert.ErrorIs(t, entrycode.Verify(hash, ""), entrycode.ErrInvalidCode)
	})
}
