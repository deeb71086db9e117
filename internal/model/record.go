package model

import (
	"time"

	"github.com/google/uuid"
)

// QRRecord общее для обоих видов записей: идентификация и содержимое.
type QRRecord interface {
	RecordID() string
	Kind() string
	Payload() string
	Timestamp() time.Time
}

const (
	KindOwned     = "owned"
	KindAnonymous = "anonymous"
)

// newID выдаёт UUIDv7: идентификаторы упорядочены по времени вставки.
func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
