package model

import (
	"time"

	"gorm.io/gorm"
)

// Season represents a league season.
// Matches the seasons table schema. At most one season is active at a time.
type Season struct {
	SeasonID  string    `gorm:"primaryKey;column:season_id;type:varchar(36)"              json:"season_id"`
	Name      string    `gorm:"column:name;type:varchar(255);not null;uniqueIndex"        json:"name"`
	StartDate time.Time `gorm:"column:start_date;type:timestamptz;not null"               json:"start_date"`
	EndDate   time.Time `gorm:"column:end_date;type:timestamptz;not null"                 json:"end_date"`
	IsActive  bool      `gorm:"column:is_active;not null;default:false"                   json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName specifies the table name for GORM.
func (Season) TableName() string {
	return "seasons"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (s *Season) BeforeUpdate(tx *gorm.DB) error {
	s.UpdatedAt = time.Now()
	return nil
}
