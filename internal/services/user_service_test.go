package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homeseek/backend/internal/dtos"
	"github.com/homeseek/backend/internal/models"
	"github.com/homeseek/backend/internal/sessions"
	"github.com/homeseek/backend/internal/utils"
)

type fakeUserRepo struct {
	byEmail map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*models.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	if _, exists := f.byEmail[u.Email]; exists {
		return utils.ErrEmailExists
	}
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return f.byEmail[email], nil
}

func newUserFixture() (UserService, *fakeUserRepo, *sessions.Store) {
	repo := newFakeUserRepo()
	store := sessions.NewStore(sessions.DefaultTTL)
	return NewUserService(repo, store), repo, store
}

func TestRegister(t *testing.T) {
	svc, repo, _ := newUserFixture()

	data, err := svc.Register(context.Background(), dtos.RegisterUserRequest{
		FullName: "Ayu Lestari",
		Email:    "ayu@example.com",
		Address:  "Jl. Merdeka 1",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ayu Lestari", data.FullName)
	assert.Equal(t, "ayu@example.com", data.Email)

	stored := repo.byEmail["ayu@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "hunter2hunter2", stored.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("hunter2hunter2", stored.PasswordHash))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newUserFixture()

	req := dtos.RegisterUserRequest{
		FullName: "Ayu Lestari",
		Email:    "ayu@example.com",
		Address:  "Jl. Merdeka 1",
		Password: "hunter2hunter2",
	}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	appErr := requireAppError(t, err, http.StatusBadRequest)
	assert.Equal(t, "User already exists", appErr.Message)
}

func TestLogin(t *testing.T) {
	svc, _, store := newUserFixture()

	_, err := svc.Register(context.Background(), dtos.RegisterUserRequest{
		FullName: "Ayu Lestari",
		Email:    "ayu@example.com",
		Address:  "Jl. Merdeka 1",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	session, err := svc.Login(context.Background(), dtos.LoginRequest{
		Email:    "ayu@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	require.NotEmpty(t, session.ID)

	resolved, err := store.Resolve(session.ID)
	require.NoError(t, err)
	assert.Equal(t, "ayu@example.com", resolved.UserData.Email)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _, store := newUserFixture()

	_, err := svc.Register(context.Background(), dtos.RegisterUserRequest{
		FullName: "Ayu Lestari",
		Email:    "ayu@example.com",
		Address:  "Jl. Merdeka 1",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	wrongPassword, err := svc.Login(context.Background(), dtos.LoginRequest{
		Email:    "ayu@example.com",
		Password: "wrong-password",
	})
	require.Nil(t, wrongPassword)
	badPwErr := requireAppError(t, err, http.StatusBadRequest)

	unknownEmail, err := svc.Login(context.Background(), dtos.LoginRequest{
		Email:    "nobody@example.com",
		Password: "hunter2hunter2",
	})
	require.Nil(t, unknownEmail)
	badEmailErr := requireAppError(t, err, http.StatusBadRequest)

	// Same outward message either way: no account enumeration.
	assert.Equal(t, badPwErr.Message, badEmailErr.Message)
	assert.Equal(t, 0, store.Len())
}
