package repo

import (
	"QRKeeper/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAnonymousQRRepository_CRUD(t *testing.T) {
	r := NewAnonymousQRRepository(newTestDB(t))
	ctx := context.Background()

	qr := &model.AnonymousQR{Content: "555-1234", Type: model.QRTypePhone}
	require.NoError(t, r.Create(ctx, qr))
	assert.NotEmpty(t, qr.ID)
	// createdAt проставляется автоматически
	assert.WithinDuration(t, time.Now(), qr.CreatedAt, 5*time.Second)

	got, err := r.GetByID(ctx, qr.ID)
	require.NoError(t, err)
	assert.Equal(t, "555-1234", got.Content)
	assert.Equal(t, model.QRTypePhone, got.Type)

	require.NoError(t, r.Delete(ctx, qr.ID))
	_, err = r.GetByID(ctx, qr.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, r.Delete(ctx, qr.ID), gorm.ErrRecordNotFound)
}

func TestAnonymousQRRepository_ListAll_NewestFirst(t *testing.T) {
	r := NewAnonymousQRRepository(newTestDB(t))
	ctx := context.Background()

	old := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, r.Create(ctx, &model.AnonymousQR{Content: "old", Type: model.QRTypeText, CreatedAt: old}))
	require.NoError(t, r.Create(ctx, &model.AnonymousQR{Content: "new", Type: model.QRTypeURL, CreatedAt: old.Add(time.Hour)}))

	all, err := r.ListAll(ctx)
	require.NoError(t, err)
	if assert.Len(t, all, 2) {
		assert.Equal(t, "new", all[0].Content)
		assert.Equal(t, "old", all[1].Content)
		// заданный createdAt не перезаписывается
		assert.True(t, all[1].CreatedAt.Equal(old))
	}
}

func TestAnonymousQRRepository_ListAll_Empty(t *testing.T) {
	r := NewAnonymousQRRepository(newTestDB(t))
	all, err := r.ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestAnonymousQRRepository_MalformedIDIsNotFound(t *testing.T) {
	r := NewAnonymousQRRepository(newTestDB(t))
	ctx := context.Background()

	_, err := r.GetByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, r.Delete(ctx, "not-a-uuid"), gorm.ErrRecordNotFound)
}
