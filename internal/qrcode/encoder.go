// Package qrcode превращает текст в PNG-изображение QR-кода в виде data URI.
package qrcode

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	goqrcode "github.com/skip2/go-qrcode"
)

// DataURIPrefix префикс data URI для PNG.
const DataURIPrefix = "data:image/png;base64,"

// ErrEmptyText возвращается при попытке закодировать пустую строку.
var ErrEmptyText = errors.New("qrcode: empty text")

// Encoder кодирует текст в data URI изображения.
type Encoder interface {
	Encode(text string) (string, error)
}

// PNGEncoder Encoder на базе github.com/skip2/go-qrcode.
type PNGEncoder struct {
	Size  int
	Level goqrcode.RecoveryLevel
}

// NewPNGEncoder создаёт кодировщик с размером стороны size пикселей.
func NewPNGEncoder(size int) *PNGEncoder {
	if size <= 0 {
		size = 256
	}
	return &PNGEncoder{Size: size, Level: goqrcode.Medium}
}

func (e *PNGEncoder) Encode(text string) (string, error) {
	if text == "" {
		return "", ErrEmptyText
	}
	png, err := goqrcode.Encode(text, e.Level, e.Size)
	if err != nil {
		return "", fmt.Errorf("qrcode: encode: %w", err)
	}
	return DataURIPrefix + base64.StdEncoding.EncodeToString(png), nil
}

// DecodeDataURI достаёт байты PNG из data URI.
func DecodeDataURI(uri string) ([]byte, error) {
	if !strings.HasPrefix(uri, DataURIPrefix) {
		return nil, fmt.Errorf("qrcode: not a png data uri")
	}
	return base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, DataURIPrefix))
}
