package repo

import (
	"QRKeeper/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

// ListFilter необязательный фильтр по дате генерации.
// Применяется только если заданы обе границы.
type ListFilter struct {
	From *time.Time
	To   *time.Time
}

// HasRange сообщает, задан ли полный диапазон дат.
func (f ListFilter) HasRange() bool {
	return f.From != nil && f.To != nil
}

// OwnedQRRepository хранилище QR-кодов пользователей.
type OwnedQRRepository interface {
	Create(ctx context.Context, qr *model.OwnedQR) error
	// GetByID возвращает gorm.ErrRecordNotFound, если записи нет.
	GetByID(ctx context.Context, id string) (*model.OwnedQR, error)
	// List возвращает страницу записей владельца (новые первыми) и общее число подходящих записей.
	List(ctx context.Context, ownerID int64, filter ListFilter, offset, limit int) ([]model.OwnedQR, int64, error)
	// Delete возвращает gorm.ErrRecordNotFound, если удалять нечего.
	Delete(ctx context.Context, id string) error
}

type ownedQRRepo struct {
	db *gorm.DB
}

func NewOwnedQRRepository(db *gorm.DB) OwnedQRRepository {
	return &ownedQRRepo{db: db}
}

func (r *ownedQRRepo) Create(ctx context.Context, qr *model.OwnedQR) error {
	return r.db.WithContext(ctx).Create(qr).Error
}

func (r *ownedQRRepo) GetByID(ctx context.Context, id string) (*model.OwnedQR, error) {
	if !validID(id) {
		return nil, gorm.ErrRecordNotFound
	}
	var qr model.OwnedQR
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&qr).Error; err != nil {
		return nil, err
	}
	return &qr, nil
}

func (r *ownedQRRepo) List(ctx context.Context, ownerID int64, filter ListFilter, offset, limit int) ([]model.OwnedQR, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		q := db.Model(&model.OwnedQR{}).Where("owner_id = ?", ownerID)
		if filter.HasRange() {
			q = q.Where("generated_at >= ? AND generated_at <= ?", filter.From.UTC(), filter.To.UTC())
		}
		return q
	}

	var total int64
	if err := r.db.WithContext(ctx).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	out := []model.OwnedQR{}
	if total == 0 || limit <= 0 || int64(offset) >= total {
		return out, total, nil
	}
	// id (UUIDv7) растёт с каждой вставкой: при равном generated_at сохраняется порядок вставки
	err := r.db.WithContext(ctx).Scopes(scope).
		Order("generated_at DESC").
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *ownedQRRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return gorm.ErrRecordNotFound
	}
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.OwnedQR{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
