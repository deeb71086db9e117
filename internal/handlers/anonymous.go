package handlers

import (
	"QRKeeper/internal/model"
	"QRKeeper/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AnonymousQRHandler открытый CRUD QR-записей без владельца.
type AnonymousQRHandler struct {
	Service *service.AnonymousQRService
	Logger  *zap.SugaredLogger
}

func NewAnonymousQRHandler(s *service.AnonymousQRService, logger *zap.SugaredLogger) *AnonymousQRHandler {
	return &AnonymousQRHandler{Service: s, Logger: logger}
}

type anonymousCreateRequest struct {
	Content string       `json:"content"`
	Type    model.QRType `json:"type"`
}

func (h *AnonymousQRHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	all, err := h.Service.ListAll(r.Context())
	if err != nil {
		writeServiceError(w, h.Logger, "ListAll", err)
		return
	}
	if all == nil {
		all = []model.AnonymousQR{}
	}
	writeJSON(w, http.StatusOK, all)
}

func (h *AnonymousQRHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req anonymousCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request")
		return
	}
	qr, err := h.Service.Create(r.Context(), req.Content, req.Type)
	if err != nil {
		writeServiceError(w, h.Logger, "CreateAnonymous", err)
		return
	}
	writeJSON(w, http.StatusCreated, qr)
}

func (h *AnonymousQRHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	qr, err := h.Service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.Logger, "GetAnonymous", err, "id", id)
		return
	}
	writeJSON(w, http.StatusOK, qr)
}

func (h *AnonymousQRHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, h.Logger, "DeleteAnonymous", err, "id", id)
		return
	}
	writeMessage(w, http.StatusOK, "QR code deleted")
}
