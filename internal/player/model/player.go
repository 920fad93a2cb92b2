package model

import (
	"time"

	"gorm.io/gorm"
)

// Player represents a registered player.
// Matches the players table schema. The squad number is unique within a team.
type Player struct {
	PlayerID  string    `gorm:"primaryKey;column:player_id;type:varchar(36)"                                                    json:"player_id"`
	TeamID    string    `gorm:"column:team_id;type:varchar(36);not null;index:idx_players_team;uniqueIndex:idx_players_number"  json:"team_id"`
	Name      string    `gorm:"column:name;type:varchar(255);not null"                                                          json:"name"`
	Number    int       `gorm:"column:number;not null;uniqueIndex:idx_players_number"                                           json:"number"`
	Position  string    `gorm:"column:position;type:varchar(50)"                                                                json:"position,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"                                       json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()"                                       json:"-"`
}

// TableName specifies the table name for GORM.
func (Player) TableName() string {
	return "players"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (p *Player) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now()
	return nil
}
