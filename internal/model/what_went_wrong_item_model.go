package model

import (
	"time"

	"github.com/google/uuid"
)

type WhatWentWrongItem struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	JournalEntryId uuid.UUID `gorm:"type:uuid;not null;index"`
	Description    string    `gorm:"type:varchar(255);not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (WhatWentWrongItem) TableName() string {
	return "what_went_wrong_items"
}
