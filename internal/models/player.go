package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Player stat columns default to zero so partially filled admin forms still
// produce a complete record. Team references are checked against the teams
// table on create/update, not enforced by a database constraint.
type Player struct {
	ID         string  `gorm:"primaryKey;size:36" json:"id"`
	Name       string  `gorm:"not null;index" json:"name"`
	Role       string  `gorm:"not null" json:"role"`
	TeamID     *string `gorm:"size:36;index" json:"team_id"`
	Matches    int     `gorm:"not null;default:0" json:"matches"`
	Runs       int     `gorm:"not null;default:0" json:"runs"`
	Average    float64 `gorm:"not null;default:0" json:"average"`
	StrikeRate float64 `gorm:"not null;default:0" json:"strike_rate"`
	Hundreds   int     `gorm:"not null;default:0" json:"hundreds"`
	Fifties    int     `gorm:"not null;default:0" json:"fifties"`
	Fours      int     `gorm:"not null;default:0" json:"fours"`
	Sixes      int     `gorm:"not null;default:0" json:"sixes"`
	Bio        *string `json:"bio"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *Player) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
