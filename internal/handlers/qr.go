package handlers

import (
	"QRKeeper/internal/model"
	"QRKeeper/internal/service"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// QRHandler обслуживает QR-коды авторизованных пользователей.
type QRHandler struct {
	QRService *service.QRService
	Logger    *zap.SugaredLogger
}

func NewQRHandler(qrService *service.QRService, logger *zap.SugaredLogger) *QRHandler {
	return &QRHandler{QRService: qrService, Logger: logger}
}

type textRequest struct {
	Text string `json:"text"`
}

type previewResponse struct {
	QRCode string `json:"qrCode"`
}

type listResponse struct {
	QRCodes     []model.OwnedQR `json:"qrCodes"`
	TotalPages  int             `json:"totalPages"`
	CurrentPage int             `json:"currentPage"`
}

type shareRequest struct {
	QRCodeID       string `json:"qrCodeId"`
	RecipientEmail string `json:"recipientEmail"`
}

// Preview генерирует QR-код без сохранения. Ошибки отдаются в поле error.
func (h *QRHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeJSON(r, &req); err != nil || req.Text == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Text is required"})
		return
	}

	uri, err := h.QRService.Preview(r.Context(), req.Text)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Text is required"})
			return
		}
		h.Logger.Errorw("Preview: generation failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to generate QR code"})
		return
	}
	writeJSON(w, http.StatusOK, previewResponse{QRCode: uri})
}

// Create генерирует и сохраняет QR-код пользователя
func (h *QRHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req textRequest
	if err := decodeJSON(r, &req); err != nil {
		h.Logger.Warnw("Create: invalid request body", "error", err)
		writeMessage(w, http.StatusBadRequest, "invalid request")
		return
	}

	qr, err := h.QRService.Generate(r.Context(), userID, req.Text)
	if err != nil {
		writeServiceError(w, h.Logger, "Create", err, "user_id", userID)
		return
	}
	writeJSON(w, http.StatusCreated, qr)
}

// List отдаёт страницу QR-кодов пользователя
func (h *QRHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	q, err := parseListQuery(r)
	if err != nil {
		h.Logger.Warnw("List: invalid query", "query", r.URL.RawQuery, "error", err)
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.QRService.List(r.Context(), userID, q)
	if err != nil {
		writeServiceError(w, h.Logger, "List", err, "user_id", userID)
		return
	}
	if res.Records == nil {
		res.Records = []model.OwnedQR{}
	}
	writeJSON(w, http.StatusOK, listResponse{
		QRCodes:     res.Records,
		TotalPages:  res.TotalPages,
		CurrentPage: res.CurrentPage,
	})
}

// Delete удаляет QR-код пользователя
func (h *QRHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.QRService.Delete(r.Context(), userID, id); err != nil {
		if errors.Is(err, service.ErrForbidden) {
			h.Logger.Warnw("Delete: not owner", "user_id", userID, "id", id)
		}
		writeServiceError(w, h.Logger, "Delete", err, "user_id", userID, "id", id)
		return
	}
	writeMessage(w, http.StatusOK, "QR code deleted")
}

// Share отправляет QR-код по почте
func (h *QRHandler) Share(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req shareRequest
	if err := decodeJSON(r, &req); err != nil {
		h.Logger.Warnw("Share: invalid request body", "error", err)
		writeMessage(w, http.StatusBadRequest, "invalid request")
		return
	}

	if err := h.QRService.Share(r.Context(), userID, req.QRCodeID, req.RecipientEmail); err != nil {
		writeServiceError(w, h.Logger, "Share", err, "user_id", userID, "id", req.QRCodeID)
		return
	}
	writeMessage(w, http.StatusOK, "QR code shared successfully")
}

// parseListQuery читает page, limit, startDate, endDate.
func parseListQuery(r *http.Request) (service.ListQuery, error) {
	v := r.URL.Query()
	q := service.ListQuery{Page: 1, PageSize: service.DefaultPageSize}

	if s := v.Get("page"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return q, fmt.Errorf("invalid page %q", s)
		}
		q.Page = n
	}
	if s := v.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > service.MaxPageSize {
			return q, fmt.Errorf("invalid limit %q: must be 1..%d", s, service.MaxPageSize)
		}
		q.PageSize = n
	}

	start, err := parseDate(v.Get("startDate"))
	if err != nil {
		return q, fmt.Errorf("invalid startDate: %w", err)
	}
	end, err := parseDate(v.Get("endDate"))
	if err != nil {
		return q, fmt.Errorf("invalid endDate: %w", err)
	}
	q.Start, q.End = start, end
	return q, nil
}

// parseDate принимает RFC 3339 или YYYY-MM-DD (полночь UTC).
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%q is not a date", s)
}
