package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateConfirmationNumber(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := GenerateConfirmationNumber(8)
		require.NoError(t, err)
		assert.Len(t, code, len("RSV-")+8)
		for _, ch := range code[len("RSV-"):] {
			assert.Contains(t, confirmationCharset, string(ch))
		}
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
	}

	_, err := GenerateConfirmationNumber(0)
	assert.Error(t, err)
}

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("HOTEL_PMS_TEST_KEY", "  ")
	assert.Equal(t, "fallback", EnvOrDefault("HOTEL_PMS_TEST_KEY", "fallback"))

	t.Setenv("HOTEL_PMS_TEST_KEY", "value")
	assert.Equal(t, "value", EnvOrDefault("HOTEL_PMS_TEST_KEY", "fallback"))
}
