package controllers

import (
	"errors"
	"net/http"

	"github.com/homeseek/backend/internal/dtos"
	"github.com/homeseek/backend/internal/middleware"
	"github.com/homeseek/backend/internal/services"
	"github.com/homeseek/backend/internal/sessions"
	"github.com/homeseek/backend/internal/utils"
)

type UserController struct {
	userService  services.UserService
	sessionStore *sessions.Store
}

func NewUserController(s services.UserService, store *sessions.Store) *UserController {
	return &UserController{userService: s, sessionStore: store}
}

// POST /api/user
func (c *UserController) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.RegisterUserRequest
	if err := decodeAndValidate(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	user, err := c.userService.Register(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, "Successfully register new user", user)
}

// POST /api/login
func (c *UserController) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if err := decodeAndValidate(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	session, err := c.userService.Login(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, "Login successful", session)
}

// GET /api/profile
func (c *UserController) ProfileHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		utils.RespondError(w, http.StatusBadRequest, "Unable to retrieve user session", nil)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, "Session retrieve successful", session)
}

// GET /api/logout
//
// Deliberately not behind the session middleware: logout with an
// unknown or expired token still succeeds.
func (c *UserController) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(middleware.SessionHeader)
	if token == "" {
		utils.RespondError(w, http.StatusBadRequest, "Unable to retrieve session data",
			errors.New("requires header: 'session_id'"))
		return
	}

	c.sessionStore.Delete(token)
	utils.RespondSuccess(w, http.StatusOK, "User Logout Successful", nil)
}
