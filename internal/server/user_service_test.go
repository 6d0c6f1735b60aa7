package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/types"
)

// fakeUserStore is an in-memory UserStore for tests.
type fakeUserStore struct {
	users map[uuid.UUID]*db.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uuid.UUID]*db.User)}
}

func (f *fakeUserStore) CheckEmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) CreateUser(_ context.Context, name, email, passwordHash string) (uuid.UUID, error) {
	id := uuid.New()
	now := time.Now()
	f.users[id] = &db.User{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return id, nil
}

func (f *fakeUserStore) GetUser(_ context.Context, id uuid.UUID) (*db.User, error) {
	return f.users[id], nil
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func newTestUserService() (*UserService, *fakeUserStore) {
	store := newFakeUserStore()
	return NewUserService(store, &config.PasswordConfig{BcryptCost: 10}), store
}

func TestUserService_Register(t *testing.T) {
	service, store := newTestUserService()

	user, err := service.Register(context.Background(), &types.RegisterRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.Equal(t, "Jane Doe", user.Name)
	assert.Equal(t, "jane@example.com", user.Email)

	// Stored hash is not the plaintext password
	stored := store.users[user.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "password123", stored.PasswordHash)
}

func TestUserService_RegisterDuplicateEmail(t *testing.T) {
	service, _ := newTestUserService()
	ctx := context.Background()

	req := &types.RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: "password123"}
	_, err := service.Register(ctx, req)
	require.NoError(t, err)

	_, err = service.Register(ctx, req)
	require.Error(t, err)

	var dupErr *ErrEmailAlreadyExists
	require.True(t, errors.As(err, &dupErr))
	assert.Equal(t, "jane@example.com", dupErr.Email)
}

func TestUserService_Login(t *testing.T) {
	service, _ := newTestUserService()
	ctx := context.Background()

	_, err := service.Register(ctx, &types.RegisterRequest{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	user, err := service.Login(ctx, &types.LoginRequest{
		Email:    "jane@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", user.Email)
}

func TestUserService_LoginWrongPassword(t *testing.T) {
	service, _ := newTestUserService()
	ctx := context.Background()

	_, err := service.Register(ctx, &types.RegisterRequest{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = service.Login(ctx, &types.LoginRequest{
		Email:    "jane@example.com",
		Password: "wrong-password",
	})

	var credErr *ErrInvalidCredentials
	assert.True(t, errors.As(err, &credErr))
}

func TestUserService_LoginUnknownEmail(t *testing.T) {
	service, _ := newTestUserService()

	_, err := service.Login(context.Background(), &types.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	// Same generic error as a wrong password
	var credErr *ErrInvalidCredentials
	assert.True(t, errors.As(err, &credErr))
}
