package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewManager("secret", 15*time.Minute, "notes")
	userID := uuid.New()

	token, err := m.GenerateAccessToken(userID, "ana@example.com", "member")
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestValidateAccessTokenFailures(t *testing.T) {
	m := NewManager("secret", time.Minute, "notes")
	token, err := m.GenerateAccessToken(uuid.New(), "", "")
	require.NoError(t, err)

	_, err = NewManager("other", time.Minute, "notes").ValidateAccessToken(token)
	assert.Error(t, err)

	_, err = NewManager("secret", time.Minute, "someone-else").ValidateAccessToken(token)
	assert.Error(t, err)

	_, err = m.ValidateAccessToken("not-a-token")
	assert.Error(t, err)

	later := NewManager("secret", time.Minute, "notes")
	later.now = func() time.Time { return time.Now().Add(time.Hour) }
	_, err = later.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrExpired)
}
