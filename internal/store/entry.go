package store

import (
	"time"

	"gorm.io/datatypes"
)

// Entry is one persisted key-value pair. Values are always JSON documents
// (arrays of questions/responses/challenges, or bare strings for settings).
type Entry struct {
	Key       string         `gorm:"primaryKey;column:key" json:"key"`
	Value     datatypes.JSON `gorm:"type:jsonb;not null" json:"value"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Entry) TableName() string {
	return "kv_entries"
}
