package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JournalEntry struct {
	Id              uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NotebookId      *uuid.UUID     `gorm:"type:uuid;index"`
	UserId          uuid.UUID      `gorm:"type:uuid;not null;index"`
	WakingLifeEntry string         `gorm:"type:text;not null"`
	DreamEntry      string         `gorm:"type:text"`
	EntryDate       time.Time      `gorm:"type:date;not null;index"`
	Rating          int            `gorm:"not null"`
	CupSpilled      bool           `gorm:"not null;default:false"`
	MoonPhase       string         `gorm:"type:varchar(50)"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime"`
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (JournalEntry) TableName() string {
	return "journal_entries"
}
