package handlers_test

import (
	"QRKeeper/internal/config"
	"QRKeeper/internal/handlers"
	"QRKeeper/internal/mailer"
	"QRKeeper/internal/middleware"
	"QRKeeper/internal/qrcode"
	"QRKeeper/internal/repo"
	"QRKeeper/internal/service"
	"QRKeeper/internal/storage"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

type mockSender struct{ mock.Mock }

func (m *mockSender) Send(ctx context.Context, msg mailer.Message) error {
	return m.Called(ctx, msg).Error(0)
}

var _ mailer.Sender = (*mockSender)(nil)

type testEnv struct {
	router http.Handler
	cfg    *config.Config
	sender *mockSender
	db     *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}, &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, repo.Migrate(db))
	sqlDB, _ := db.DB()
	t.Cleanup(func() { _ = sqlDB.Close() })

	uploadDir := t.TempDir()
	disk, err := storage.NewDisk(uploadDir)
	require.NoError(t, err)

	cfg := &config.Config{AuthSecret: "test-secret", UploadDir: uploadDir, UploadMaxSizeMB: 1}
	log := zap.NewNop().Sugar()
	snd := &mockSender{}

	svc := handlers.Services{
		Users:     service.NewUserService(repo.NewUserRepository(db)),
		QR:        service.NewQRService(repo.NewOwnedQRRepository(db), qrcode.NewPNGEncoder(64), snd, log),
		Anonymous: service.NewAnonymousQRService(repo.NewAnonymousQRRepository(db), log),
		Uploads:   disk,
	}
	h := handlers.NewHandler(svc, log, cfg)
	return &testEnv{router: h.Router, cfg: cfg, sender: snd, db: db}
}

func addAuth(t *testing.T, req *http.Request, userID int64, secret string) {
	t.Helper()
	rr := httptest.NewRecorder()
	_, err := middleware.SetLoginCookie(rr, userID, secret)
	require.NoError(t, err)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}

// do выполняет запрос; userID == 0: анонимно.
func (e *testEnv) do(t *testing.T, method, target string, body any, userID int64) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			rd = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			rd = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, target, rd)
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		addAuth(t, req, userID, e.cfg.AuthSecret)
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(&v), "body: %s", rr.Body.String())
	return v
}
