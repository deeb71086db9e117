package service

import (
	"QRKeeper/internal/mailer"
	"QRKeeper/internal/model"
	"QRKeeper/internal/qrcode"
	"QRKeeper/internal/repo"
	"context"
	"errors"
	"fmt"
	"math"
	"net/mail"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	// DefaultPageSize размер страницы, если клиент его не указал.
	DefaultPageSize = 10
	// MaxPageSize верхняя граница размера страницы.
	MaxPageSize = 100
)

// QRService управляет жизненным циклом QR-кодов пользователей:
// генерация, выборка страницами, удаление и отправка по почте.
type QRService struct {
	repo    repo.OwnedQRRepository
	encoder qrcode.Encoder
	sender  mailer.Sender
	logger  *zap.SugaredLogger
	now     func() time.Time
}

func NewQRService(r repo.OwnedQRRepository, enc qrcode.Encoder, sender mailer.Sender, logger *zap.SugaredLogger) *QRService {
	return &QRService{
		repo:    r,
		encoder: enc,
		sender:  sender,
		logger:  logger,
		now:     time.Now,
	}
}

// ListQuery параметры выборки. Start/End учитываются только вместе.
type ListQuery struct {
	Page     int
	PageSize int
	Start    *time.Time
	End      *time.Time
}

// ListResult страница записей пользователя.
type ListResult struct {
	Records     []model.OwnedQR
	TotalPages  int
	CurrentPage int
}

// Preview кодирует текст без сохранения.
func (s *QRService) Preview(_ context.Context, text string) (string, error) {
	if text == "" {
		return "", fmt.Errorf("%w: text is required", ErrValidation)
	}
	uri, err := s.encoder.Encode(text)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGeneration, err)
	}
	return uri, nil
}

// Generate кодирует текст и сохраняет запись от имени ownerID.
func (s *QRService) Generate(ctx context.Context, ownerID int64, text string) (*model.OwnedQR, error) {
	uri, err := s.Preview(ctx, text)
	if err != nil {
		return nil, err
	}

	qr := &model.OwnedQR{
		OwnerID:     ownerID,
		Text:        text,
		ImageURL:    uri,
		GeneratedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, qr); err != nil {
		return nil, fmt.Errorf("%w: save qr: %w", ErrStore, err)
	}
	s.logRecord("qr record created", qr)
	return qr, nil
}

// List возвращает страницу записей владельца, новые первыми.
func (s *QRService) List(ctx context.Context, ownerID int64, q ListQuery) (ListResult, error) {
	if q.PageSize == 0 {
		q.PageSize = DefaultPageSize
	}
	if q.Page < 1 || q.PageSize < 1 {
		return ListResult{}, fmt.Errorf("%w: page and page size must be positive", ErrValidation)
	}
	if q.PageSize > MaxPageSize {
		return ListResult{}, fmt.Errorf("%w: page size must not exceed %d", ErrValidation, MaxPageSize)
	}

	filter := repo.ListFilter{}
	if q.Start != nil && q.End != nil {
		filter.From, filter.To = q.Start, q.End
	}

	// страница, чей offset не помещается в int, заведомо за концом: нужен только счётчик
	offset, limit := 0, 0
	if q.Page-1 <= math.MaxInt/q.PageSize {
		offset, limit = (q.Page-1)*q.PageSize, q.PageSize
	}
	records, total, err := s.repo.List(ctx, ownerID, filter, offset, limit)
	if err != nil {
		return ListResult{}, fmt.Errorf("%w: list qr: %w", ErrStore, err)
	}

	return ListResult{
		Records:     records,
		TotalPages:  totalPages(total, q.PageSize),
		CurrentPage: q.Page,
	}, nil
}

// Delete удаляет запись, если она принадлежит ownerID.
func (s *QRService) Delete(ctx context.Context, ownerID int64, id string) error {
	qr, err := s.authorize(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, qr.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: delete qr: %w", ErrStore, err)
	}
	s.logRecord("qr record deleted", qr)
	return nil
}

// Share отправляет изображение записи и её текст на recipient.
func (s *QRService) Share(ctx context.Context, ownerID int64, id, recipient string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: qr code id is required", ErrValidation)
	}

	qr, err := s.authorize(ctx, ownerID, id)
	if err != nil {
		return err
	}
	addr, err := mail.ParseAddress(strings.TrimSpace(recipient))
	if err != nil {
		return fmt.Errorf("%w: invalid recipient email", ErrValidation)
	}

	msg, err := mailer.SharedQRMessage(addr.Address, qr.ImageURL, qr.Text)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDelivery, err)
	}
	if err := s.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("%w: %w", ErrDelivery, err)
	}
	s.logger.Infow("qr record shared", "id", qr.ID, "owner_id", ownerID)
	return nil
}

// authorize сначала существование (404), затем владелец (401).
func (s *QRService) authorize(ctx context.Context, ownerID int64, id string) (*model.OwnedQR, error) {
	qr, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && qr == nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get qr: %w", ErrStore, err)
	}
	if qr.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return qr, nil
}

func (s *QRService) logRecord(msg string, rec model.QRRecord) {
	s.logger.Infow(msg, "id", rec.RecordID(), "kind", rec.Kind(), "at", rec.Timestamp())
}

func totalPages(total int64, pageSize int) int {
	if total <= 0 {
		return 0
	}
	size := int64(pageSize)
	return int((total + size - 1) / size)
}
