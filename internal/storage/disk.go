// Package storage хранит загруженные пользователями файлы на диске.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

// PublicPrefix URL-префикс, под которым раздаются загруженные файлы.
const PublicPrefix = "/uploads/"

// Disk сохраняет файлы в каталог Dir под именем <unix-millis><ext>.
type Disk struct {
	Dir string
	Now func() time.Time

	mu   sync.Mutex
	last int64
}

// NewDisk создаёт хранилище и каталог под него.
func NewDisk(dir string) (*Disk, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Disk{Dir: dir, Now: time.Now}, nil
}

// Save записывает содержимое r и возвращает публичный путь файла.
func (d *Disk) Save(originalName string, r io.Reader) (string, error) {
	name := strconv.FormatInt(d.nextStamp(), 10) + cleanExt(originalName)

	f, err := os.OpenFile(filepath.Join(d.Dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close upload file: %w", err)
	}
	return PublicPrefix + name, nil
}

// nextStamp миллисекунды, строго возрастающие между вызовами.
func (d *Disk) nextStamp() int64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	now := d.Now().UnixMilli()
	if now <= d.last {
		now = d.last + 1
	}
	d.last = now
	return now
}

func cleanExt(name string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(name)))
	if len(ext) > 10 || strings.ContainsAny(ext, `/\ `) {
		return ""
	}
	return ext
}
