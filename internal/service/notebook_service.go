package service

import (
	"context"
	"time"

	"moonjournal-be/internal/dto"
	"moonjournal-be/internal/entity"
	"moonjournal-be/internal/repository/specification"
	"moonjournal-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type INotebookService interface {
	GetAll(ctx context.Context, userId uuid.UUID) (*dto.GetAllNotebooksResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNotebookRequest) (*dto.CreateNotebookResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowNotebookResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNotebookRequest) (*dto.UpdateNotebookResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type notebookService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewNotebookService(uowFactory unitofwork.RepositoryFactory) INotebookService {
	return &notebookService{
		uowFactory: uowFactory,
	}
}

func (c *notebookService) GetAll(ctx context.Context, userId uuid.UUID) (*dto.GetAllNotebooksResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	notebooks, err := uow.NotebookRepository().FindAll(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}

	items := make([]*dto.NotebookItem, 0, len(notebooks))
	for _, notebook := range notebooks {
		items = append(items, &dto.NotebookItem{
			Id:          notebook.Id,
			Name:        notebook.Name,
			Description: notebook.Description,
			CreatedAt:   notebook.CreatedAt,
			UpdatedAt:   notebook.UpdatedAt,
		})
	}

	counter, err := spillCounter(ctx, uow, userId, time.Now())
	if err != nil {
		return nil, err
	}

	return &dto.GetAllNotebooksResponse{
		Notebooks:          items,
		DaysSinceLastSpill: counter,
	}, nil
}

func (c *notebookService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNotebookRequest) (*dto.CreateNotebookResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	notebook := entity.Notebook{
		Id:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		UserId:      userId,
		CreatedAt:   time.Now(),
	}

	if err := uow.NotebookRepository().Create(ctx, &notebook); err != nil {
		return nil, err
	}

	return &dto.CreateNotebookResponse{
		Id: notebook.Id,
	}, nil
}

func (c *notebookService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowNotebookResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	notebook, err := uow.NotebookRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if notebook == nil {
		return nil, ErrNotFound
	}

	entries, err := uow.JournalEntryRepository().FindAll(ctx,
		specification.ByNotebookID{NotebookID: notebook.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}

	entryItems := make([]*dto.NotebookEntryItem, 0, len(entries))
	for _, entry := range entries {
		entryItems = append(entryItems, &dto.NotebookEntryItem{
			Id:         entry.Id,
			EntryDate:  entry.EntryDate.Format("2006-01-02"),
			Rating:     entry.Rating,
			CupSpilled: entry.CupSpilled,
			MoonPhase:  entry.MoonPhase,
			CreatedAt:  entry.CreatedAt,
		})
	}

	counter, err := spillCounter(ctx, uow, userId, time.Now())
	if err != nil {
		return nil, err
	}

	return &dto.ShowNotebookResponse{
		Id:                 notebook.Id,
		Name:               notebook.Name,
		Description:        notebook.Description,
		CreatedAt:          notebook.CreatedAt,
		UpdatedAt:          notebook.UpdatedAt,
		Entries:            entryItems,
		DaysSinceLastSpill: counter,
	}, nil
}

func (c *notebookService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNotebookRequest) (*dto.UpdateNotebookResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	// Fetch first to check ownership
	notebook, err := uow.NotebookRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if notebook == nil {
		return nil, ErrNotFound
	}

	now := time.Now()
	notebook.Name = req.Name
	notebook.Description = req.Description
	notebook.UpdatedAt = &now

	if err := uow.NotebookRepository().Update(ctx, notebook); err != nil {
		return nil, err
	}

	return &dto.UpdateNotebookResponse{
		Id: notebook.Id,
	}, nil
}

// Delete removes the notebook and cascades to its entries and their
// child rows inside one transaction.
func (c *notebookService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	notebook, err := uow.NotebookRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if notebook == nil {
		return ErrNotFound
	}

	entries, err := uow.JournalEntryRepository().FindAll(ctx,
		specification.ByNotebookID{NotebookID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	for _, entry := range entries {
		if err := uow.NonNegotiableRepository().DeleteByJournalEntryId(ctx, entry.Id); err != nil {
			return err
		}
		if err := uow.WhatWentWrongItemRepository().DeleteByJournalEntryId(ctx, entry.Id); err != nil {
			return err
		}
		if err := uow.JournalEntryRepository().Delete(ctx, entry.Id); err != nil {
			return err
		}
	}

	if err := uow.NotebookRepository().Delete(ctx, id); err != nil {
		return err
	}

	return uow.Commit()
}
