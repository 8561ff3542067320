//go:build unit

package booking_test

import (
	"strings"
	"testing"

	"petstay-backend/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeGenerator(t *testing.T) {
	gen := booking.NewCodeGenerator("RB")
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		code, err := gen.Generate()
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(code, "RB-"))
		assert.Len(t, code, len("RB-")+8)
		assert.NotContains(t, code[3:], "0")
		assert.NotContains(t, code[3:], "O")
		seen[code] = true
	}
	assert.Greater(t, len(seen), 190)
}
