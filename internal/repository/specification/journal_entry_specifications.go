package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByNotebookID struct {
	NotebookID uuid.UUID
}

func (s ByNotebookID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notebook_id = ?", s.NotebookID)
}

type ByJournalEntryID struct {
	JournalEntryID uuid.UUID
}

func (s ByJournalEntryID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("journal_entry_id = ?", s.JournalEntryID)
}

type CupSpilled struct {
	Spilled bool
}

func (s CupSpilled) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("cup_spilled = ?", s.Spilled)
}
