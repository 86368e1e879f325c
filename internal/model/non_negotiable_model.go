package model

import (
	"time"

	"github.com/google/uuid"
)

type NonNegotiable struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	JournalEntryId uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(100);not null"`
	Notes          string    `gorm:"type:text"`
	Completed      bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (NonNegotiable) TableName() string {
	return "non_negotiables"
}
