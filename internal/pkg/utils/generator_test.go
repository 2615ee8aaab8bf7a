package utils

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateConfirmationCode(t *testing.T) {
	t.Run("format is PREFIX-NNNNNN", func(t *testing.T) {
		code, err := GenerateConfirmationCode("LGL")
		require.NoError(t, err)

		parts := strings.SplitN(code, "-", 2)
		require.Len(t, parts, 2)
		assert.Equal(t, "LGL", parts[0])
		assert.Len(t, parts[1], 6)

		number, err := strconv.Atoi(parts[1])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, number, 100000)
		assert.LessOrEqual(t, number, 999999)
	})

	t.Run("numbers stay in range across many draws", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			code, err := GenerateConfirmationCode("CAR")
			require.NoError(t, err)
			number, err := strconv.Atoi(strings.TrimPrefix(code, "CAR-"))
			require.NoError(t, err)
			assert.GreaterOrEqual(t, number, 100000)
			assert.LessOrEqual(t, number, 999999)
		}
	})
}

func TestGenerateRequestID(t *testing.T) {
	first := GenerateRequestID()
	second := GenerateRequestID()
	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}
