package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// ErrNoFreePort возвращается, когда все порты диапазона заняты.
var ErrNoFreePort = errors.New("no free port in range")

// Listen пробует порты от basePort до maxPort включительно и возвращает первый свободный листенер.
// Порт занят: пробуем следующий; любая другая ошибка прерывает перебор.
func Listen(host string, basePort, maxPort int, logger *zap.SugaredLogger) (net.Listener, error) {
	if maxPort < basePort {
		maxPort = basePort
	}
	for port := basePort; port <= maxPort; port++ {
		addr := net.JoinHostPort(host, strconv.Itoa(port))
		ln, err := net.Listen("tcp", addr)
		if err == nil {
			return ln, nil
		}
		if !isAddrInUse(err) {
			return nil, fmt.Errorf("listen %s: %w", addr, err)
		}
		logger.Warnw("Port busy, trying next", "port", port)
	}
	return nil, fmt.Errorf("%w: %d-%d", ErrNoFreePort, basePort, maxPort)
}

func isAddrInUse(err error) bool {
	return errors.Is(err, syscall.EADDRINUSE)
}

// Run обслуживает запросы на листенере до отмены ctx, затем корректно останавливает сервер.
func Run(ctx context.Context, ln net.Listener, h http.Handler, logger *zap.SugaredLogger) error {
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infow("Server listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Infow("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
