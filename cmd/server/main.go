package main

import (
	"QRKeeper/internal/config"
	"QRKeeper/internal/handlers"
	"QRKeeper/internal/mailer"
	"QRKeeper/internal/middleware"
	"QRKeeper/internal/qrcode"
	"QRKeeper/internal/repo"
	"QRKeeper/internal/server"
	"QRKeeper/internal/service"
	"QRKeeper/internal/storage"
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.LogJSON {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		_ = logger.Sync()
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	var sender mailer.Sender = mailer.LogSender{Logger: sugar}
	if cfg.MailEnabled() {
		sender = mailer.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass)
	} else {
		sugar.Warnw("EMAIL_USER/EMAIL_PASS not set, shared QR codes will only be logged")
	}

	disk, err := storage.NewDisk(cfg.UploadDir)
	if err != nil {
		sugar.Fatalw("failed to prepare upload directory", "dir", cfg.UploadDir, "error", err)
	}

	svc := handlers.Services{
		Users:     service.NewUserService(repo.NewUserRepository(gormDB)),
		QR:        service.NewQRService(repo.NewOwnedQRRepository(gormDB), qrcode.NewPNGEncoder(0), sender, sugar),
		Anonymous: service.NewAnonymousQRService(repo.NewAnonymousQRRepository(gormDB), sugar),
		Uploads:   disk,
	}
	h := handlers.NewHandler(svc, sugar, cfg)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"MaxPort", cfg.MaxPort,
		"EnableHTTPS", cfg.EnableHTTPS,
		"UploadDir", cfg.UploadDir,
		"MailEnabled", cfg.MailEnabled(),
	)

	ln, err := server.Listen(cfg.Host(), cfg.BasePort(), cfg.MaxPort, sugar)
	if err != nil {
		sugar.Fatalw("Server failed to bind", "error", err)
	}

	if err := server.Run(ctx, ln, h.Router, sugar); err != nil {
		sugar.Errorw("Server failed", "error", err)
		return
	}
	sugar.Infow("Server stopped")
}
