package dto

import (
	"time"

	"github.com/google/uuid"
)

// NonNegotiableRow is one submitted checklist row. Rows with an Id are
// updated in place, rows without one are inserted, rows flagged Destroy
// are deleted. Persisted rows absent from the submission are untouched.
type NonNegotiableRow struct {
	Id        *uuid.UUID `json:"id"`
	Name      string     `json:"name" validate:"required_if=Destroy false,max=100"`
	Notes     string     `json:"notes"`
	Completed bool       `json:"completed"`
	Destroy   bool       `json:"_destroy"`
}

type WhatWentWrongRow struct {
	Id          *uuid.UUID `json:"id"`
	Description string     `json:"description" validate:"required_if=Destroy false,max=255"`
	Destroy     bool       `json:"_destroy"`
}

type CreateJournalEntryRequest struct {
	NotebookId         uuid.UUID           `json:"notebook_id" validate:"required"`
	WakingLifeEntry    string              `json:"waking_life_entry" validate:"required"`
	DreamEntry         string              `json:"dream_entry"`
	EntryDate          string              `json:"entry_date" validate:"omitempty,datetime=2006-01-02"`
	Rating             int                 `json:"rating" validate:"required,min=1,max=10"`
	CupSpilled         bool                `json:"cup_spilled"`
	NonNegotiables     []NonNegotiableRow  `json:"non_negotiables" validate:"omitempty,dive"`
	WhatWentWrongItems []WhatWentWrongRow  `json:"what_went_wrong_items" validate:"omitempty,dive"`
}

type CreateJournalEntryResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateJournalEntryRequest struct {
	Id                 uuid.UUID
	NotebookId         uuid.UUID           `json:"notebook_id" validate:"required"`
	WakingLifeEntry    string              `json:"waking_life_entry" validate:"required"`
	DreamEntry         string              `json:"dream_entry"`
	EntryDate          string              `json:"entry_date" validate:"omitempty,datetime=2006-01-02"`
	Rating             int                 `json:"rating" validate:"required,min=1,max=10"`
	CupSpilled         bool                `json:"cup_spilled"`
	NonNegotiables     []NonNegotiableRow  `json:"non_negotiables" validate:"omitempty,dive"`
	WhatWentWrongItems []WhatWentWrongRow  `json:"what_went_wrong_items" validate:"omitempty,dive"`
}

type UpdateJournalEntryResponse struct {
	Id uuid.UUID `json:"id"`
}

type NonNegotiableItem struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Notes     string    `json:"notes"`
	Completed bool      `json:"completed"`
}

type WhatWentWrongItemView struct {
	Id          uuid.UUID `json:"id"`
	Description string    `json:"description"`
}

type ShowJournalEntryResponse struct {
	Id                 uuid.UUID                `json:"id"`
	NotebookId         *uuid.UUID               `json:"notebook_id"`
	WakingLifeEntry    string                   `json:"waking_life_entry"`
	DreamEntry         string                   `json:"dream_entry"`
	EntryDate          string                   `json:"entry_date"`
	Rating             int                      `json:"rating"`
	CupSpilled         bool                     `json:"cup_spilled"`
	MoonPhase          string                   `json:"moon_phase"`
	CreatedAt          time.Time                `json:"created_at"`
	UpdatedAt          *time.Time               `json:"updated_at"`
	NonNegotiables     []*NonNegotiableItem     `json:"non_negotiables"`
	WhatWentWrongItems []*WhatWentWrongItemView `json:"what_went_wrong_items"`
	DaysSinceLastSpill int                      `json:"days_since_last_spill"`
}
