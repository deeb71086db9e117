package handlers

import (
	"QRKeeper/internal/config"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// UploadHandler принимает файлы от авторизованных пользователей.
type UploadHandler struct {
	Uploads Uploader
	Logger  *zap.SugaredLogger
	Config  *config.Config
}

func NewUploadHandler(u Uploader, logger *zap.SugaredLogger, cfg *config.Config) *UploadHandler {
	return &UploadHandler{Uploads: u, Logger: logger, Config: cfg}
}

// Upload загрузка файла (multipart, поле file)
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	if h.Uploads == nil {
		writeMessage(w, http.StatusServiceUnavailable, "uploads are disabled")
		return
	}

	// Лимит общего тела запроса
	maxBody := int64(h.Config.UploadMaxSizeMB)*1024*1024 + 1*1024*1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeMessage(w, http.StatusRequestEntityTooLarge, "payload too large")
			return
		}
		h.Logger.Warnw("Upload: invalid multipart form", "error", err)
		writeMessage(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.Logger.Warnw("Upload: missing file", "error", err)
		writeMessage(w, http.StatusBadRequest, "missing file")
		return
	}
	defer file.Close()

	if header.Size > int64(h.Config.UploadMaxSizeMB)*1024*1024 {
		h.Logger.Warnw("Upload: payload too large", "size", header.Size, "limit_mb", h.Config.UploadMaxSizeMB)
		writeMessage(w, http.StatusRequestEntityTooLarge, "payload too large")
		return
	}

	path, err := h.Uploads.Save(header.Filename, file)
	if err != nil {
		h.Logger.Errorw("Upload: save failed", "user_id", userID, "error", err)
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"path": path, "size": header.Size})
}
