package model

import (
	"time"

	"gorm.io/gorm"
)

// Team represents a team entity in the league.
// Matches the teams table schema.
type Team struct {
	TeamID      string    `gorm:"primaryKey;column:team_id;type:varchar(36)"                json:"team_id"`
	Name        string    `gorm:"column:name;type:varchar(255);not null;uniqueIndex"        json:"name"`
	ShortCode   string    `gorm:"column:short_code;type:varchar(10)"                        json:"short_code,omitempty"`
	Coach       string    `gorm:"column:coach;type:varchar(255)"                            json:"coach,omitempty"`
	FoundedYear int       `gorm:"column:founded_year"                                       json:"founded_year,omitempty"`
	Notes       string    `gorm:"column:notes;type:varchar(2000)"                           json:"notes,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"-"`
	UpdatedAt   time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (t *Team) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return nil
}
