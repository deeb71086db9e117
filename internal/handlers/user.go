package handlers

import (
	"QRKeeper/internal/config"
	"QRKeeper/internal/middleware"
	"QRKeeper/internal/model"
	"QRKeeper/internal/service"
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// UserHandler регистрация, вход и проверка статуса.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger, Config: cfg}
}

type credentialsRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Register регистрация пользователя
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	h.authenticate(w, r, "Register", h.UserService.Register)
}

// Login вход пользователя
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	h.authenticate(w, r, "Login", h.UserService.Login)
}

func (h *UserHandler) authenticate(
	w http.ResponseWriter,
	r *http.Request,
	op string,
	fn func(ctx context.Context, login, password string) (*model.User, error),
) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		h.Logger.Warnw(op+": invalid request body", "error", err)
		writeMessage(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Login == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "login and password are required")
		return
	}

	user, err := fn(r.Context(), req.Login, req.Password)
	if err != nil {
		writeServiceError(w, h.Logger, op, err, "login", req.Login)
		return
	}

	token, err := middleware.SetLoginCookie(w, user.ID, h.Config.AuthSecret)
	if err != nil {
		h.Logger.Errorw(op+": failed to issue token", "user_id", user.ID, "error", err)
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}

// Status показывает, под каким пользователем выполнен запрос
func (h *UserHandler) Status(w http.ResponseWriter, r *http.Request) {
	result := "anonymous"
	if userID, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		result = fmt.Sprintf("User ID = %d", userID)
	}
	writeJSON(w, http.StatusOK, map[string]string{"result": result})
}
