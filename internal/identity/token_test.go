package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionToken_Deterministic(t *testing.T) {
	t1, err := SessionToken("user-1")
	require.NoError(t, err)
	t2, err := SessionToken("user-1")
	require.NoError(t, err)

	assert.Equal(t, t1, t2)

	other, err := SessionToken("user-2")
	require.NoError(t, err)
	assert.NotEqual(t, t1, other)
}

func TestUserIDFromToken_RoundTrip(t *testing.T) {
	token, err := SessionToken("user-1")
	require.NoError(t, err)

	userID, err := UserIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestUserIDFromToken_Garbage(t *testing.T) {
	_, err := UserIDFromToken("not-a-token")
	assert.Error(t, err)
}
