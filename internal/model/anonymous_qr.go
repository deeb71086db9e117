package model

import (
	"time"

	"gorm.io/gorm"
)

// QRType тип содержимого анонимного QR-кода.
type QRType string

const (
	QRTypeText  QRType = "text"
	QRTypeURL   QRType = "url"
	QRTypeEmail QRType = "email"
	QRTypePhone QRType = "phone"
	QRTypeWiFi  QRType = "wifi"
)

// Valid проверяет, что тип входит в допустимый набор.
func (t QRType) Valid() bool {
	switch t {
	case QRTypeText, QRTypeURL, QRTypeEmail, QRTypePhone, QRTypeWiFi:
		return true
	}
	return false
}

// AnonymousQR QR-запись без владельца, доступная всем.
type AnonymousQR struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	Content   string    `gorm:"not null" json:"content"`
	Type      QRType    `gorm:"type:varchar(16);not null" json:"type"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
}

// BeforeCreate назначает идентификатор, если он не задан.
func (q *AnonymousQR) BeforeCreate(tx *gorm.DB) error {
	if q.ID != "" {
		return nil
	}
	id, err := newID()
	if err != nil {
		return err
	}
	q.ID = id
	return nil
}

func (q *AnonymousQR) RecordID() string     { return q.ID }
func (q *AnonymousQR) Kind() string         { return KindAnonymous }
func (q *AnonymousQR) Payload() string      { return q.Content }
func (q *AnonymousQR) Timestamp() time.Time { return q.CreatedAt }
