package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Match struct {
	ID         string  `gorm:"primaryKey;size:36" json:"id"`
	Title      string  `gorm:"not null" json:"title"`
	HomeTeamID *string `gorm:"size:36;index" json:"home_team_id"`
	AwayTeamID *string `gorm:"size:36;index" json:"away_team_id"`
	Venue      *string `json:"venue"`
	MatchDate  *string `gorm:"size:10" json:"match_date"` // ISO date, sorts lexicographically
	Status     string  `gorm:"not null" json:"status"` // "Scheduled", "Live", "Completed"
	Result     *string `json:"result"`
	Summary    *string `json:"summary"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (m *Match) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
