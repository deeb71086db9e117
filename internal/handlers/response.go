package handlers

import (
	"QRKeeper/internal/middleware"
	"QRKeeper/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

type messageResponse struct {
	Message string `json:"message"`
}

// writeJSON пишет JSON-ответ с заданным статусом.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageResponse{Message: msg})
}

func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}

// requireUser возвращает user_id или отвечает 401.
func requireUser(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "unauthorized")
		return 0, false
	}
	return userID, true
}

// statusFor маппит ошибки сервиса на HTTP-коды.
// Чужая запись даёт 401, не 403.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrForbidden), errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrLoginTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError отвечает клиенту по ошибке сервиса; 5xx логируются, наружу уходит общий текст.
func writeServiceError(w http.ResponseWriter, logger *zap.SugaredLogger, op string, err error, kv ...any) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Errorw(op+": service error", append(kv, "error", err)...)
		writeMessage(w, status, "Server error")
		return
	}
	writeMessage(w, status, clientMessage(err))
}

func clientMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return "QR code not found"
	case errors.Is(err, service.ErrForbidden):
		return "Not authorized"
	default:
		return err.Error()
	}
}

// Health проверка живости.
func Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
