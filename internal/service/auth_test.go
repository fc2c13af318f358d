package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worktrack/internal/apperr"
	"worktrack/internal/model"
)

func TestAuthenticate(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)
	ctx := context.Background()

	seedUser(t, db, "Ana Petrovic", "ana@example.com", "s3cret", model.RoleEmployee, true)
	seedUser(t, db, "Gone Person", "gone@example.com", "s3cret", model.RoleEmployee, false)

	t.Run("valid credentials", func(t *testing.T) {
		u, err := svc.Authenticate(ctx, "ana@example.com", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, "Ana Petrovic", u.FullName)
	})

	t.Run("email is case folded and trimmed", func(t *testing.T) {
		u, err := svc.Authenticate(ctx, "  ANA@Example.COM ", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", u.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "ana@example.com", "nope")
		assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "nobody@example.com", "s3cret")
		assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
	})

	t.Run("inactive user", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "gone@example.com", "s3cret")
		assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
	})

	t.Run("same error for every failure", func(t *testing.T) {
		_, errUnknown := svc.Authenticate(ctx, "nobody@example.com", "s3cret")
		_, errWrongPw := svc.Authenticate(ctx, "ana@example.com", "nope")
		assert.Equal(t, errUnknown, errWrongPw)
	})
}

func TestRegister(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)
	ctx := context.Background()

	u, err := svc.Register(ctx, "Marko Ilic", "Marko@Example.com ", "lozinka")
	require.NoError(t, err)
	assert.Equal(t, "marko@example.com", u.Email)
	assert.Equal(t, model.RoleEmployee, u.RoleID)
	assert.True(t, u.IsActive)
	assert.NotZero(t, u.ID)

	// registration logs you in afterwards
	got, err := svc.Authenticate(ctx, "marko@example.com", "lozinka")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Register(ctx, "Other", "marko@example.com", "pw")
		assert.ErrorIs(t, err, apperr.ErrAlreadyExists)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.Register(ctx, "", "x@example.com", "pw")
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})
}

func TestCurrentUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)
	ctx := context.Background()

	active := seedUser(t, db, "Ana", "ana@example.com", "pw", model.RoleEmployee, true)
	inactive := seedUser(t, db, "Gone", "gone@example.com", "pw", model.RoleEmployee, false)

	u, err := svc.CurrentUser(ctx, active.ID)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, active.ID, u.ID)

	u, err = svc.CurrentUser(ctx, inactive.ID)
	require.NoError(t, err)
	assert.Nil(t, u)

	u, err = svc.CurrentUser(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, u)
}
