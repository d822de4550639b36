package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoArmGo/BookingApp/internal/auth"
	"github.com/GoArmGo/BookingApp/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newUserUseCaseForTest(storage *fakeUserStorage) (UserUseCase, *auth.TokenService) {
	tokens := auth.NewTokenService("test-secret-key-at-least-32-chars-long", time.Hour)
	return NewUserUseCase(storage, tokens, testLogger()), tokens
}

func TestRegisterDuplicateEmail(t *testing.T) {
	uc, _ := newUserUseCaseForTest(newFakeUserStorage())
	ctx := context.Background()

	id, err := uc.Register(ctx, "alice", "alice@x.com", "pw1")
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	_, err = uc.Register(ctx, "alice2", "alice@x.com", "pw2")
	assert.ErrorIs(t, err, domain.ErrUserExists)

	// username collisions are conflicts too
	_, err = uc.Register(ctx, "alice", "other@x.com", "pw3")
	assert.ErrorIs(t, err, domain.ErrUserExists)
}

func TestRegisterValidation(t *testing.T) {
	uc, _ := newUserUseCaseForTest(newFakeUserStorage())
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{name: "empty username", username: "", email: "a@x.com", password: "pw"},
		{name: "empty email", username: "a", email: "", password: "pw"},
		{name: "empty password", username: "a", email: "a@x.com", password: ""},
		{name: "whitespace username", username: "   ", email: "a@x.com", password: "pw"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Register(ctx, tt.username, tt.email, tt.password)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestRegisterNeverStoresPlaintext(t *testing.T) {
	storage := newFakeUserStorage()
	uc, _ := newUserUseCaseForTest(storage)

	id, err := uc.Register(context.Background(), "alice", "alice@x.com", "pw1")
	require.NoError(t, err)

	stored, err := storage.FindUserByID(context.Background(), id)
	require.NoError(t, err)
	assert.NotEqual(t, "pw1", stored.PasswordHash)
	assert.True(t, auth.CheckPassword("pw1", stored.PasswordHash))
}

func TestLoginNoAccountEnumeration(t *testing.T) {
	uc, _ := newUserUseCaseForTest(newFakeUserStorage())
	ctx := context.Background()

	_, err := uc.Register(ctx, "alice", "alice@x.com", "pw1")
	require.NoError(t, err)

	// wrong password and unknown email fail with the exact same error
	_, errWrongPw := uc.Login(ctx, "alice@x.com", "wrong")
	_, errNoUser := uc.Login(ctx, "nobody@x.com", "pw1")

	assert.ErrorIs(t, errWrongPw, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errNoUser, domain.ErrInvalidCredentials)
	assert.Equal(t, errWrongPw.Error(), errNoUser.Error())
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	uc, tokens := newUserUseCaseForTest(newFakeUserStorage())
	ctx := context.Background()

	id, err := uc.Register(ctx, "alice", "alice@x.com", "pw1")
	require.NoError(t, err)

	token, err := uc.Login(ctx, "alice@x.com", "pw1")
	require.NoError(t, err)

	subject, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, id, subject)
}

func TestGetProfileOwnership(t *testing.T) {
	storage := newFakeUserStorage()
	uc, _ := newUserUseCaseForTest(storage)
	ctx := context.Background()

	aliceID, err := uc.Register(ctx, "alice", "alice@x.com", "pw1")
	require.NoError(t, err)
	bobID, err := uc.Register(ctx, "bob", "bob@x.com", "pw2")
	require.NoError(t, err)

	// foreign profile is forbidden
	_, err = uc.GetProfile(ctx, aliceID, bobID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// own profile is allowed
	profile, err := uc.GetProfile(ctx, aliceID, aliceID)
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "alice@x.com", profile.Email)

	// own id but no row left
	ghost := uuid.New()
	_, err = uc.GetProfile(ctx, ghost, ghost)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
