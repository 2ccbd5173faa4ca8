package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/jacwu/toy-store/internal/domain"
	"github.com/jacwu/toy-store/internal/service/user"
)

type userService interface {
	Register(ctx context.Context, input user.CredentialsInput) (*domain.User, error)
	Login(ctx context.Context, input user.CredentialsInput) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// UserHandler serves /users endpoints.
type UserHandler struct {
	responder
	svc userService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger, verbose bool) *UserHandler {
	return &UserHandler{
		responder: responder{log: logger.With("handler", "user"), verbose: verbose},
		svc:       svc,
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles POST /users/register.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleDecodeError(w, err)
		return
	}

	u, err := h.svc.Register(r.Context(), user.CredentialsInput{Username: req.Username, Password: req.Password})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "User registered successfully", toUserDTO(*u))
}

// Login handles POST /users/login.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleDecodeError(w, err)
		return
	}

	u, err := h.svc.Login(r.Context(), user.CredentialsInput{Username: req.Username, Password: req.Password})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Login successful", toUserDTO(*u))
}

// List handles GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]userDTO, len(users))
	for i, u := range users {
		out[i] = toUserDTO(u)
	}
	writeSuccess(w, http.StatusOK, "Users retrieved successfully", out)
}
