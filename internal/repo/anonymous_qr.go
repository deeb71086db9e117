package repo

import (
	"QRKeeper/internal/model"
	"context"

	"gorm.io/gorm"
)

// AnonymousQRRepository хранилище QR-записей без владельца.
type AnonymousQRRepository interface {
	Create(ctx context.Context, qr *model.AnonymousQR) error
	GetByID(ctx context.Context, id string) (*model.AnonymousQR, error)
	ListAll(ctx context.Context) ([]model.AnonymousQR, error)
	Delete(ctx context.Context, id string) error
}

type anonymousQRRepo struct {
	db *gorm.DB
}

func NewAnonymousQRRepository(db *gorm.DB) AnonymousQRRepository {
	return &anonymousQRRepo{db: db}
}

func (r *anonymousQRRepo) Create(ctx context.Context, qr *model.AnonymousQR) error {
	return r.db.WithContext(ctx).Create(qr).Error
}

func (r *anonymousQRRepo) GetByID(ctx context.Context, id string) (*model.AnonymousQR, error) {
	if !validID(id) {
		return nil, gorm.ErrRecordNotFound
	}
	var qr model.AnonymousQR
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&qr).Error; err != nil {
		return nil, err
	}
	return &qr, nil
}

func (r *anonymousQRRepo) ListAll(ctx context.Context) ([]model.AnonymousQR, error) {
	out := []model.AnonymousQR{}
	if err := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *anonymousQRRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return gorm.ErrRecordNotFound
	}
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AnonymousQR{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
