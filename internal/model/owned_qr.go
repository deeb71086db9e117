package model

import (
	"time"

	"gorm.io/gorm"
)

// OwnedQR QR-код, сохранённый авторизованным пользователем.
type OwnedQR struct {
	ID      string `gorm:"primaryKey;type:uuid" json:"id"`
	OwnerID int64  `gorm:"not null;index:idx_owned_owner_generated,priority:1" json:"ownerId"`

	// Связи
	Owner *User `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	Text        string    `gorm:"not null" json:"text"`
	ImageURL    string    `gorm:"type:text;not null" json:"imageUrl"`
	GeneratedAt time.Time `gorm:"not null;index:idx_owned_owner_generated,priority:2" json:"generatedAt"`
}

// BeforeCreate назначает идентификатор, если он не задан.
func (q *OwnedQR) BeforeCreate(tx *gorm.DB) error {
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

func (q *OwnedQR) RecordID() string     { return q.ID }
func (q *OwnedQR) Kind() string         { return KindOwned }
func (q *OwnedQR) Payload() string      { return q.Text }
func (q *OwnedQR) Timestamp() time.Time { return q.GeneratedAt }
