package unitofwork

import (
	"context"

	"moonjournal-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	NotebookRepository() contract.NotebookRepository
	JournalEntryRepository() contract.JournalEntryRepository
	NonNegotiableRepository() contract.NonNegotiableRepository
	WhatWentWrongItemRepository() contract.WhatWentWrongItemRepository
}
