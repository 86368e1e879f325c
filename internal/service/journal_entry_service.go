package service

import (
	"context"
	"time"

	"moonjournal-be/internal/dto"
	"moonjournal-be/internal/entity"
	"moonjournal-be/internal/pkg/lunar"
	"moonjournal-be/internal/repository/specification"
	"moonjournal-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IJournalEntryService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateJournalEntryRequest) (*dto.CreateJournalEntryResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowJournalEntryResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateJournalEntryRequest) (*dto.UpdateJournalEntryResponse, error)
}

type journalEntryService struct {
	uowFactory unitofwork.RepositoryFactory
	moonInfo   *lunar.MoonInfo
}

func NewJournalEntryService(uowFactory unitofwork.RepositoryFactory, moonInfo *lunar.MoonInfo) IJournalEntryService {
	return &journalEntryService{
		uowFactory: uowFactory,
		moonInfo:   moonInfo,
	}
}

func parseEntryDate(raw string) time.Time {
	if raw == "" {
		return truncateToDate(time.Now())
	}
	// Format already enforced by request validation.
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return truncateToDate(time.Now())
	}
	return t
}

func (c *journalEntryService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateJournalEntryRequest) (*dto.CreateJournalEntryResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	// The notebook choice is restricted server-side to the submitting
	// user's own notebooks.
	notebook, err := uow.NotebookRepository().FindOne(ctx,
		specification.ByID{ID: req.NotebookId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if notebook == nil {
		return nil, ErrNotFound
	}

	entryDate := parseEntryDate(req.EntryDate)

	// The moon phase is derived exactly once, here. Updates never touch it.
	moonPhase, err := c.moonInfo.PhaseName(entryDate)
	if err != nil {
		return nil, err
	}

	notebookId := req.NotebookId
	entry := entity.JournalEntry{
		Id:              uuid.New(),
		NotebookId:      &notebookId,
		UserId:          userId,
		WakingLifeEntry: req.WakingLifeEntry,
		DreamEntry:      req.DreamEntry,
		EntryDate:       entryDate,
		Rating:          req.Rating,
		CupSpilled:      req.CupSpilled,
		MoonPhase:       moonPhase,
		CreatedAt:       time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.JournalEntryRepository().Create(ctx, &entry); err != nil {
		return nil, err
	}

	for _, row := range req.NonNegotiables {
		if row.Destroy {
			continue
		}
		item := entity.NonNegotiable{
			Id:             uuid.New(),
			JournalEntryId: entry.Id,
			Name:           row.Name,
			Notes:          row.Notes,
			Completed:      row.Completed,
			CreatedAt:      time.Now(),
		}
		if err := uow.NonNegotiableRepository().Create(ctx, &item); err != nil {
			return nil, err
		}
	}

	for _, row := range req.WhatWentWrongItems {
		if row.Destroy {
			continue
		}
		item := entity.WhatWentWrongItem{
			Id:             uuid.New(),
			JournalEntryId: entry.Id,
			Description:    row.Description,
			CreatedAt:      time.Now(),
		}
		if err := uow.WhatWentWrongItemRepository().Create(ctx, &item); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.CreateJournalEntryResponse{
		Id: entry.Id,
	}, nil
}

func (c *journalEntryService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowJournalEntryResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	entry, err := uow.JournalEntryRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrNotFound
	}

	nonNegotiables, err := uow.NonNegotiableRepository().FindAll(ctx,
		specification.ByJournalEntryID{JournalEntryID: entry.Id},
	)
	if err != nil {
		return nil, err
	}

	wrongItems, err := uow.WhatWentWrongItemRepository().FindAll(ctx,
		specification.ByJournalEntryID{JournalEntryID: entry.Id},
	)
	if err != nil {
		return nil, err
	}

	nnItems := make([]*dto.NonNegotiableItem, 0, len(nonNegotiables))
	for _, item := range nonNegotiables {
		nnItems = append(nnItems, &dto.NonNegotiableItem{
			Id:        item.Id,
			Name:      item.Name,
			Notes:     item.Notes,
			Completed: item.Completed,
		})
	}

	wwItems := make([]*dto.WhatWentWrongItemView, 0, len(wrongItems))
	for _, item := range wrongItems {
		wwItems = append(wwItems, &dto.WhatWentWrongItemView{
			Id:          item.Id,
			Description: item.Description,
		})
	}

	counter, err := spillCounter(ctx, uow, userId, time.Now())
	if err != nil {
		return nil, err
	}

	return &dto.ShowJournalEntryResponse{
		Id:                 entry.Id,
		NotebookId:         entry.NotebookId,
		WakingLifeEntry:    entry.WakingLifeEntry,
		DreamEntry:         entry.DreamEntry,
		EntryDate:          entry.EntryDate.Format("2006-01-02"),
		Rating:             entry.Rating,
		CupSpilled:         entry.CupSpilled,
		MoonPhase:          entry.MoonPhase,
		CreatedAt:          entry.CreatedAt,
		UpdatedAt:          entry.UpdatedAt,
		NonNegotiables:     nnItems,
		WhatWentWrongItems: wwItems,
		DaysSinceLastSpill: counter,
	}, nil
}

func (c *journalEntryService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateJournalEntryRequest) (*dto.UpdateJournalEntryResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	entry, err := uow.JournalEntryRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrNotFound
	}

	notebook, err := uow.NotebookRepository().FindOne(ctx,
		specification.ByID{ID: req.NotebookId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if notebook == nil {
		return nil, ErrNotFound
	}

	now := time.Now()
	notebookId := req.NotebookId
	entry.NotebookId = &notebookId
	entry.WakingLifeEntry = req.WakingLifeEntry
	entry.DreamEntry = req.DreamEntry
	entry.EntryDate = parseEntryDate(req.EntryDate)
	entry.Rating = req.Rating
	entry.CupSpilled = req.CupSpilled
	entry.UpdatedAt = &now
	// entry.MoonPhase stays as persisted: write-once.

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.JournalEntryRepository().Update(ctx, entry); err != nil {
		return nil, err
	}

	if err := c.reconcileNonNegotiables(ctx, uow, entry.Id, req.NonNegotiables); err != nil {
		return nil, err
	}
	if err := c.reconcileWhatWentWrongItems(ctx, uow, entry.Id, req.WhatWentWrongItems); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.UpdateJournalEntryResponse{
		Id: entry.Id,
	}, nil
}

// reconcileNonNegotiables applies the submitted rows against the stored
// ones: rows with an id are upserted in place, rows without an id are
// inserted, rows flagged for removal are deleted. Stored rows absent
// from the submission are left untouched.
func (c *journalEntryService) reconcileNonNegotiables(ctx context.Context, uow unitofwork.UnitOfWork, entryId uuid.UUID, rows []dto.NonNegotiableRow) error {
	repo := uow.NonNegotiableRepository()

	for _, row := range rows {
		if row.Destroy {
			if row.Id != nil {
				if err := repo.Delete(ctx, *row.Id); err != nil {
					return err
				}
			}
			continue
		}

		if row.Id != nil {
			existing, err := repo.FindOne(ctx,
				specification.ByID{ID: *row.Id},
				specification.ByJournalEntryID{JournalEntryID: entryId},
			)
			if err != nil {
				return err
			}
			if existing == nil {
				return ErrNotFound
			}
			now := time.Now()
			existing.Name = row.Name
			existing.Notes = row.Notes
			existing.Completed = row.Completed
			existing.UpdatedAt = &now
			if err := repo.Update(ctx, existing); err != nil {
				return err
			}
			continue
		}

		item := entity.NonNegotiable{
			Id:             uuid.New(),
			JournalEntryId: entryId,
			Name:           row.Name,
			Notes:          row.Notes,
			Completed:      row.Completed,
			CreatedAt:      time.Now(),
		}
		if err := repo.Create(ctx, &item); err != nil {
			return err
		}
	}

	return nil
}

func (c *journalEntryService) reconcileWhatWentWrongItems(ctx context.Context, uow unitofwork.UnitOfWork, entryId uuid.UUID, rows []dto.WhatWentWrongRow) error {
	repo := uow.WhatWentWrongItemRepository()

	for _, row := range rows {
		if row.Destroy {
			if row.Id != nil {
				if err := repo.Delete(ctx, *row.Id); err != nil {
					return err
				}
			}
			continue
		}

		if row.Id != nil {
			existing, err := repo.FindOne(ctx,
				specification.ByID{ID: *row.Id},
				specification.ByJournalEntryID{JournalEntryID: entryId},
			)
			if err != nil {
				return err
			}
			if existing == nil {
				return ErrNotFound
			}
			now := time.Now()
			existing.Description = row.Description
			existing.UpdatedAt = &now
			if err := repo.Update(ctx, existing); err != nil {
				return err
			}
			continue
		}

		item := entity.WhatWentWrongItem{
			Id:             uuid.New(),
			JournalEntryId: entryId,
			Description:    row.Description,
			CreatedAt:      time.Now(),
		}
		if err := repo.Create(ctx, &item); err != nil {
			return err
		}
	}

	return nil
}
