package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/redmonkez12/taskboard-api/internal/user"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(user.NewMemoryRepository(), newTestPasetoService(t), 30*24*time.Hour)
}

func TestRegister_ReturnsSessionWithSafeUser(t *testing.T) {
	svc := newTestService(t)

	session, err := svc.Register(context.Background(), "Ann", "ann@x.com", "pw1")
	require.NoError(t, err)

	require.NotEqual(t, "", session.User.ID.String())
	require.Equal(t, "Ann", session.User.Name)
	require.Equal(t, "ann@x.com", session.User.Email)
	require.Contains(t, session.User.AvatarURL, "ui-avatars.com")
	require.NotEmpty(t, session.Token)

	// The stored credential is a salted hash, never the raw password.
	require.True(t, strings.HasPrefix(session.User.PasswordHash, "$argon2id$"))
	require.NotContains(t, session.User.PasswordHash, "pw1")
}

func TestRegister_DuplicateEmailFails(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.Register(ctx, "Ann", "ann@x.com", "pw1")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Impostor", "ann@x.com", "other")
	require.ErrorIs(t, err, user.ErrDuplicateEmail)

	// First account is unaffected and can still log in.
	session, err := svc.Login(ctx, "ann@x.com", "pw1")
	require.NoError(t, err)
	require.Equal(t, first.User.ID, session.User.ID)
	require.Equal(t, "Ann", session.User.Name)
}

func TestRegister_Validation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		userName string
		email    string
		password string
		wantErr  error
	}{
		{"empty name", "", "a@x.com", "pw", ErrNameRequired},
		{"blank name", "   ", "a@x.com", "pw", ErrNameRequired},
		{"empty email", "Ann", "", "pw", ErrEmailRequired},
		{"malformed email", "Ann", "not-an-email", "pw", ErrInvalidEmailFormat},
		{"empty password", "Ann", "a@x.com", "", ErrPasswordRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.userName, tt.email, tt.password)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLogin_WrongPasswordAndUnknownEmailAreIndistinguishable(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Demo", "demo@example.com", "correct")
	require.NoError(t, err)

	_, errWrongPassword := svc.Login(ctx, "demo@example.com", "wrong")
	_, errUnknownEmail := svc.Login(ctx, "nouser@x.com", "anything")

	require.ErrorIs(t, errWrongPassword, ErrInvalidCredentials)
	require.ErrorIs(t, errUnknownEmail, ErrInvalidCredentials)
	require.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())
}

func TestLogin_EmptyCredentialsFail(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), "", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

// Email matching is deliberately case-sensitive; a differently-cased email
// is treated as an unknown account.
func TestLogin_EmailIsCaseSensitive(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ann", "ann@x.com", "pw1")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "Ann@x.com", "pw1")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetProfile(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	session, err := svc.Register(ctx, "Ann", "ann@x.com", "pw1")
	require.NoError(t, err)

	profile, err := svc.GetProfile(ctx, session.User.ID)
	require.NoError(t, err)
	require.Equal(t, session.User.ID, profile.ID)
	require.Equal(t, "Ann", profile.Name)
	require.Equal(t, session.User.AvatarURL, profile.AvatarURL)
}

func TestGetProfile_UnknownUserFails(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetProfile(context.Background(), uuid.New())
	require.ErrorIs(t, err, user.ErrNotFound)
}

func TestTokenResolvesToRegisteredUser(t *testing.T) {
	paseto := newTestPasetoService(t)
	svc := NewService(user.NewMemoryRepository(), paseto, time.Hour)

	session, err := svc.Register(context.Background(), "Bob", "bob@x.com", "secret")
	require.NoError(t, err)

	claims, err := paseto.VerifyToken(session.Token)
	require.NoError(t, err)
	require.Equal(t, session.User.ID.String(), claims.UserID)
}
