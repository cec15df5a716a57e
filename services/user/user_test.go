package user

import (
	"context"
	"errors"
	"testing"

	"lojinha/models"
	"lojinha/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*models.User{}}
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(_ context.Context, page, perPage int) ([]models.User, int64, error) {
	var out []models.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, int64(len(f.users)), nil
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	f.nextID++
	user.ID = f.nextID
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uint) error {
	delete(f.users, id)
	return nil
}

type fakeTokenCache struct {
	hashes map[string]string
}

func newFakeTokenCache() *fakeTokenCache {
	return &fakeTokenCache{hashes: map[string]string{}}
}

func (f *fakeTokenCache) SaveTokenHash(_ context.Context, userID, hash string) error {
	f.hashes[userID] = hash
	return nil
}

func (f *fakeTokenCache) GetTokenHash(_ context.Context, userID string) (string, error) {
	return f.hashes[userID], nil
}

func (f *fakeTokenCache) DeleteTokenHash(_ context.Context, userID string) error {
	delete(f.hashes, userID)
	return nil
}

func newTestService() (*DefaultUserService, *fakeUserRepo, *fakeTokenCache) {
	repo := newFakeUserRepo()
	cache := newFakeTokenCache()
	return &DefaultUserService{Repo: repo, TokenCache: cache}, repo, cache
}

func TestCreateUserHashesPassword(t *testing.T) {
	svc, _, _ := newTestService()

	usr, err := svc.CreateUser(context.Background(), CreateUserInput{
		Name: "Ana", Email: "ana@email.com", Password: "123456",
	})
	require.NoError(t, err)
	assert.NotZero(t, usr.ID)
	assert.NotEmpty(t, usr.PasswordHash)
	assert.NotEqual(t, "123456", usr.PasswordHash)
}

func TestCreateUserValidation(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, CreateUserInput{})
	var fe utils.FieldErrors
	require.True(t, errors.As(err, &fe))
	assert.Contains(t, fe, "name")
	assert.Contains(t, fe, "email")
	assert.Contains(t, fe, "password")

	_, err = svc.CreateUser(ctx, CreateUserInput{Name: "Ana", Email: "not-an-email", Password: "123456"})
	require.True(t, errors.As(err, &fe))
	assert.Contains(t, fe, "email")
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, CreateUserInput{Name: "Ana", Email: "ana@email.com", Password: "123456"})
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, CreateUserInput{Name: "Outra Ana", Email: "ana@email.com", Password: "654321"})
	var fe utils.FieldErrors
	require.True(t, errors.As(err, &fe))
	assert.Contains(t, fe, "email")
}

func TestAuthenticate(t *testing.T) {
	svc, _, cache := newTestService()
	ctx := context.Background()

	usr, err := svc.CreateUser(ctx, CreateUserInput{Name: "Ana", Email: "ana@email.com", Password: "123456"})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		auth, err := svc.Authenticate(ctx, "ana@email.com", "123456")
		require.NoError(t, err)
		assert.NotEmpty(t, auth.Token)
		assert.Equal(t, usr.ID, auth.User.ID)
		// The token hash must be cached for the auth middleware.
		assert.Equal(t, utils.HashToken(auth.Token), cache.hashes["1"])
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "ana@email.com", "errada")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "ninguem@email.com", "123456")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestLogoutRevokesToken(t *testing.T) {
	svc, _, cache := newTestService()
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, CreateUserInput{Name: "Ana", Email: "ana@email.com", Password: "123456"})
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, "ana@email.com", "123456")
	require.NoError(t, err)
	require.NotEmpty(t, cache.hashes["1"])

	require.NoError(t, svc.Logout(ctx, 1))
	assert.Empty(t, cache.hashes["1"])
}

func TestUpdateUser(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	usr, err := svc.CreateUser(ctx, CreateUserInput{Name: "Ana", Email: "ana@email.com", Password: "123456"})
	require.NoError(t, err)

	updated, err := svc.UpdateUser(ctx, usr.ID, CreateUserInput{Name: "Ana Maria", Email: "ana@email.com"})
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", updated.Name)
	assert.Equal(t, usr.PasswordHash, updated.PasswordHash)

	_, err = svc.UpdateUser(ctx, 999, CreateUserInput{Name: "Ninguém", Email: "x@email.com"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteUser(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	usr, err := svc.CreateUser(ctx, CreateUserInput{Name: "Ana", Email: "ana@email.com", Password: "123456"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(ctx, usr.ID))
	_, err = svc.GetUserByID(ctx, usr.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	assert.ErrorIs(t, svc.DeleteUser(ctx, usr.ID), ErrUserNotFound)
}
