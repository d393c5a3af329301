package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyangkk/timecounter/utils"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := utils.GenerateToken("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
}

func TestParseTokenInvalid(t *testing.T) {
	_, err := utils.ParseToken("not-a-jwt")
	assert.Error(t, err)
}
