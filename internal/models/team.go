package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Team struct {
	ID      string  `gorm:"primaryKey;size:36" json:"id"`
	Name    string  `gorm:"not null;index" json:"name"`
	City    *string `json:"city"`
	Coach   *string `json:"coach"`
	Captain *string `json:"captain"`
	Founded *int    `json:"founded"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (t *Team) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
