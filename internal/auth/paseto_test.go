package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestPasetoService(t *testing.T) *PasetoService {
	t.Helper()
	svc, err := NewPasetoService([]byte("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)
	return svc
}

func TestNewPasetoService_RejectsBadKeyLength(t *testing.T) {
	_, err := NewPasetoService([]byte("too short"))
	require.Error(t, err)
}

func TestPaseto_RoundTrip(t *testing.T) {
	svc := newTestPasetoService(t)

	for i := 0; i < 5; i++ {
		userID := uuid.New()

		token, err := svc.CreateToken(userID, time.Hour)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := svc.VerifyToken(token)
		require.NoError(t, err)
		require.Equal(t, userID.String(), claims.UserID)
		require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)
	}
}

func TestPaseto_ExpiredTokenFails(t *testing.T) {
	svc := newTestPasetoService(t)

	token, err := svc.CreateToken(uuid.New(), -time.Minute)
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestPaseto_MalformedTokenFails(t *testing.T) {
	svc := newTestPasetoService(t)

	for _, token := range []string{"", "garbage", "v4.local.notatoken"} {
		_, err := svc.VerifyToken(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestPaseto_TokenFromDifferentKeyFails(t *testing.T) {
	svc := newTestPasetoService(t)

	other, err := NewPasetoService([]byte("ffffffffffffffffffffffffffffffff"))
	require.NoError(t, err)

	token, err := other.CreateToken(uuid.New(), time.Hour)
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestPaseto_TokensAreOpaque(t *testing.T) {
	svc := newTestPasetoService(t)

	userID := uuid.New()
	token, err := svc.CreateToken(userID, time.Hour)
	require.NoError(t, err)

	// The user id must not be readable from the token itself.
	require.NotContains(t, token, userID.String())
}
