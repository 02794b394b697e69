package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/homeseek/backend/internal/dtos"
	"github.com/homeseek/backend/internal/models"
	"github.com/homeseek/backend/internal/repositories"
	"github.com/homeseek/backend/internal/sessions"
	"github.com/homeseek/backend/internal/utils"
)

type UserService interface {
	Register(ctx context.Context, req dtos.RegisterUserRequest) (*models.UserData, error)
	Login(ctx context.Context, req dtos.LoginRequest) (*models.Session, error)
}

type userService struct {
	users    repositories.UserRepository
	sessions *sessions.Store
}

func NewUserService(users repositories.UserRepository, sessionStore *sessions.Store) UserService {
	return &userService{users: users, sessions: sessionStore}
}

func (s *userService) Register(ctx context.Context, req dtos.RegisterUserRequest) (*models.UserData, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, "Unable to register user", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		FullName:     req.FullName,
		Email:        req.Email,
		Address:      req.Address,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, utils.ErrEmailExists) {
			return nil, utils.NewAppError(http.StatusBadRequest, "User already exists",
				fmt.Errorf("email: %s already registered", req.Email))
		}
		return nil, utils.NewAppError(http.StatusInternalServerError, "Unable to register user", err)
	}

	public := user.Public()
	return &public, nil
}

// Login never reveals which of email or password was wrong.
func (s *userService) Login(ctx context.Context, req dtos.LoginRequest) (*models.Session, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, "Unable to retrieve user data", err)
	}
	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, utils.NewAppError(http.StatusBadRequest, "Login Failed",
			errors.New("incorrect email or password"))
	}

	session := s.sessions.Create(user.Public())
	return &session, nil
}
