package handlers

import (
	"QRKeeper/internal/config"
	"QRKeeper/internal/middleware"
	"QRKeeper/internal/service"
	"QRKeeper/internal/storage"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// Uploader сохраняет загруженный файл и возвращает его публичный путь.
type Uploader interface {
	Save(originalName string, r io.Reader) (string, error)
}

// Services зависимости хендлеров.
type Services struct {
	Users     *service.UserService
	QR        *service.QRService
	Anonymous *service.AnonymousQRService
	Uploads   Uploader
}

// NewHandler разводящий для хендлеров
func NewHandler(svc Services, logger *zap.SugaredLogger, config *config.Config) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(svc.Users, logger, config)
	qrHandler := NewQRHandler(svc.QR, logger)
	anonHandler := NewAnonymousQRHandler(svc.Anonymous, logger)
	uploadHandler := NewUploadHandler(svc.Uploads, logger, config)

	r.Get("/healthz", Health)

	// User routes
	r.Post("/api/user/register", userHandler.Register)
	r.Post("/api/user/login", userHandler.Login)
	r.Post("/api/user/test", userHandler.Status)

	r.Route("/api/qr", func(r chi.Router) {
		r.Post("/generate", qrHandler.Preview)

		// QR-коды пользователя
		r.Post("/", qrHandler.Create)
		r.Get("/", qrHandler.List)
		r.Post("/share", qrHandler.Share)
		r.Delete("/{id}", qrHandler.Delete)

		// Анонимные QR-записи
		r.Route("/anonymous", func(r chi.Router) {
			r.Get("/all", anonHandler.ListAll)
			r.Post("/new", anonHandler.Create)
			r.Get("/{id}", anonHandler.Get)
			r.Delete("/{id}", anonHandler.Delete)
		})
	})

	r.Post("/api/uploads", uploadHandler.Upload)
	if config.UploadDir != "" {
		fs := http.StripPrefix(storage.PublicPrefix, http.FileServer(http.Dir(config.UploadDir)))
		r.Get(storage.PublicPrefix+"*", fs.ServeHTTP)
	}

	return &Handler{Router: r}
}
