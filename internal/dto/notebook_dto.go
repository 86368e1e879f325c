package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNotebookRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
}

type CreateNotebookResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateNotebookRequest struct {
	Id          uuid.UUID
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
}

type UpdateNotebookResponse struct {
	Id uuid.UUID `json:"id"`
}

type NotebookItem struct {
	Id          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type GetAllNotebooksResponse struct {
	Notebooks          []*NotebookItem `json:"notebooks"`
	DaysSinceLastSpill int             `json:"days_since_last_spill"`
}

// NotebookEntryItem is the entry summary embedded in a notebook detail,
// ordered newest entry date first.
type NotebookEntryItem struct {
	Id         uuid.UUID `json:"id"`
	EntryDate  string    `json:"entry_date"`
	Rating     int       `json:"rating"`
	CupSpilled bool      `json:"cup_spilled"`
	MoonPhase  string    `json:"moon_phase"`
	CreatedAt  time.Time `json:"created_at"`
}

type ShowNotebookResponse struct {
	Id                 uuid.UUID            `json:"id"`
	Name               string               `json:"name"`
	Description        string               `json:"description"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          *time.Time           `json:"updated_at"`
	Entries            []*NotebookEntryItem `json:"entries"`
	DaysSinceLastSpill int                  `json:"days_since_last_spill"`
}
