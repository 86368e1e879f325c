package entity

import (
	"time"

	"github.com/google/uuid"
)

type JournalEntry struct {
	Id              uuid.UUID
	NotebookId      *uuid.UUID // nullable: legacy entries may be notebook-less
	UserId          uuid.UUID
	WakingLifeEntry string
	DreamEntry      string
	EntryDate       time.Time
	Rating          int
	CupSpilled      bool
	MoonPhase       string // derived on first save, immutable afterwards
	CreatedAt       time.Time
	UpdatedAt       *time.Time
	DeletedAt       *time.Time
	IsDeleted       bool
}

type NonNegotiable struct {
	Id             uuid.UUID
	JournalEntryId uuid.UUID
	Name           string
	Notes          string
	Completed      bool
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

type WhatWentWrongItem struct {
	Id             uuid.UUID
	JournalEntryId uuid.UUID
	Description    string
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
