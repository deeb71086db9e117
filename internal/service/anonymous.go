package service

import (
	"QRKeeper/internal/model"
	"QRKeeper/internal/repo"
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AnonymousQRService CRUD записей без владельца, без проверок доступа.
type AnonymousQRService struct {
	repo   repo.AnonymousQRRepository
	logger *zap.SugaredLogger
}

func NewAnonymousQRService(r repo.AnonymousQRRepository, logger *zap.SugaredLogger) *AnonymousQRService {
	return &AnonymousQRService{repo: r, logger: logger}
}

func (s *AnonymousQRService) Create(ctx context.Context, content string, typ model.QRType) (*model.AnonymousQR, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}
	if !typ.Valid() {
		return nil, fmt.Errorf("%w: type %q is not one of text, url, email, phone, wifi", ErrValidation, typ)
	}

	qr := &model.AnonymousQR{Content: content, Type: typ}
	if err := s.repo.Create(ctx, qr); err != nil {
		return nil, fmt.Errorf("%w: save qr: %w", ErrStore, err)
	}
	s.logger.Infow("qr record created", "id", qr.RecordID(), "kind", qr.Kind(), "type", qr.Type)
	return qr, nil
}

func (s *AnonymousQRService) ListAll(ctx context.Context) ([]model.AnonymousQR, error) {
	out, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list qr: %w", ErrStore, err)
	}
	return out, nil
}

func (s *AnonymousQRService) Get(ctx context.Context, id string) (*model.AnonymousQR, error) {
	qr, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && qr == nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get qr: %w", ErrStore, err)
	}
	return qr, nil
}

// Delete возвращает ErrNotFound, если записи уже нет.
func (s *AnonymousQRService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: delete qr: %w", ErrStore, err)
	}
	return nil
}
