package service_test

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()
	repo := newUsersRepoMock()
	us := service.NewUserService(repo)
	password := gofakeit.Password(true, true, true, false, false, 12)
	t.Run("email is normalized", func(t *testing.T) {
		user, err := us.Register(ctx, &service.SignupRequest{
			Email:    "  Foo@Bar.COM ",
			Password: password,
			Name:     "  " + gofakeit.FirstName() + "  ",
		})
		require.NoError(t, err)
		assert.Equal(t, "foo@bar.com", user.Email)
		assert.NotEqual(t, password, user.PasswordHash)
		assert.True(t, service.CheckPassword(user.PasswordHash, password))
	})
	t.Run("case variant duplicate", func(t *testing.T) {
		_, err := us.Register(ctx, &service.SignupRequest{
			Email:    "foo@bar.com",
			Password: password,
			Name:     gofakeit.FirstName(),
		})
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("validation error", func(t *testing.T) {
		_, err := us.Register(ctx, &service.SignupRequest{Email: "bad", Password: "1", Name: "x"})
		verr, ok := errorvalues.AsValidationError(err)
		require.True(t, ok)
		assert.Len(t, verr.Errors, 3)
	})
	t.Run("db error", func(t *testing.T) {
		repo.state = stateDBError
		defer func() { repo.state = stateSuccess }()
		_, err := us.Register(ctx, &service.SignupRequest{Email: gofakeit.Email(), Password: password, Name: gofakeit.FirstName()})
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrUserExists)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	repo := newUsersRepoMock()
	us := service.NewUserService(repo)
	email := gofakeit.Email()
	password := gofakeit.Password(true, true, true, false, false, 10)
	registered, err := us.Register(ctx, &service.SignupRequest{Email: email, Password: password, Name: gofakeit.FirstName()})
	require.NoError(t, err)
	t.Run("success", func(t *testing.T) {
		user, err := us.Login(ctx, &service.LoginRequest{Email: email, Password: password})
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)
	})
	t.Run("wrong password", func(t *testing.T) {
		_, err := us.Login(ctx, &service.LoginRequest{Email: email, Password: password + "x"})
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("unknown email looks the same", func(t *testing.T) {
		_, err := us.Login(ctx, &service.LoginRequest{Email: gofakeit.Email(), Password: password})
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("get by id", func(t *testing.T) {
		user, err := us.GetByID(ctx, registered.ID)
		require.NoError(t, err)
		assert.Equal(t, registered.Email, user.Email)
		_, err = us.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}
