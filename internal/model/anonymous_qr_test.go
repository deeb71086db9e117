package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQRType_Valid(t *testing.T) {
	for _, v := range []QRType{"text", "url", "email", "phone", "wifi"} {
		assert.True(t, v.Valid(), "type %q must be accepted", v)
	}
	for _, v := range []QRType{"", "bogus", "TEXT", "sms"} {
		assert.False(t, v.Valid(), "type %q must be rejected", v)
	}
}

func TestQRRecord_BothVariants(t *testing.T) {
	now := time.Now().UTC()
	records := []QRRecord{
		&OwnedQR{ID: "o1", Text: "hello", GeneratedAt: now},
		&AnonymousQR{ID: "a1", Content: "555-1234", Type: QRTypePhone, CreatedAt: now},
	}

	assert.Equal(t, KindOwned, records[0].Kind())
	assert.Equal(t, "hello", records[0].Payload())
	assert.Equal(t, KindAnonymous, records[1].Kind())
	assert.Equal(t, "555-1234", records[1].Payload())
	for _, r := range records {
		assert.Equal(t, now, r.Timestamp())
		assert.NotEmpty(t, r.RecordID())
	}
}

func TestBeforeCreate_AssignsOrderedIDs(t *testing.T) {
	a := &AnonymousQR{}
	b := &AnonymousQR{}
	assert.NoError(t, a.BeforeCreate(nil))
	assert.NoError(t, b.BeforeCreate(nil))
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	// UUIDv7 в каноническом виде сравнимы лексикографически
	assert.Less(t, a.ID, b.ID)

	keep := &OwnedQR{ID: "fixed"}
	assert.NoError(t, keep.BeforeCreate(nil))
	assert.Equal(t, "fixed", keep.ID)
}
