package service

import (
	"QRKeeper/internal/mailer"
	"QRKeeper/internal/model"
	"QRKeeper/internal/qrcode"
	"QRKeeper/internal/repo"
	"context"

	"github.com/stretchr/testify/mock"
)

// мок для repo.OwnedQRRepository
type mockOwnedRepo struct{ mock.Mock }

func (m *mockOwnedRepo) Create(ctx context.Context, qr *model.OwnedQR) error {
	return m.Called(ctx, qr).Error(0)
}
func (m *mockOwnedRepo) GetByID(ctx context.Context, id string) (*model.OwnedQR, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.OwnedQR); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockOwnedRepo) List(ctx context.Context, ownerID int64, filter repo.ListFilter, offset, limit int) ([]model.OwnedQR, int64, error) {
	args := m.Called(ctx, ownerID, filter, offset, limit)
	if v, ok := args.Get(0).([]model.OwnedQR); ok {
		return v, args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}
func (m *mockOwnedRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.OwnedQRRepository = (*mockOwnedRepo)(nil)

// мок для repo.AnonymousQRRepository
type mockAnonRepo struct{ mock.Mock }

func (m *mockAnonRepo) Create(ctx context.Context, qr *model.AnonymousQR) error {
	return m.Called(ctx, qr).Error(0)
}
func (m *mockAnonRepo) GetByID(ctx context.Context, id string) (*model.AnonymousQR, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.AnonymousQR); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockAnonRepo) ListAll(ctx context.Context) ([]model.AnonymousQR, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.AnonymousQR); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockAnonRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.AnonymousQRRepository = (*mockAnonRepo)(nil)

type mockEncoder struct{ mock.Mock }

func (m *mockEncoder) Encode(text string) (string, error) {
	args := m.Called(text)
	return args.String(0), args.Error(1)
}

var _ qrcode.Encoder = (*mockEncoder)(nil)

type mockSender struct{ mock.Mock }

func (m *mockSender) Send(ctx context.Context, msg mailer.Message) error {
	return m.Called(ctx, msg).Error(0)
}

var _ mailer.Sender = (*mockSender)(nil)
