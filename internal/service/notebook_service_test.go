package service

import (
	"context"
	"testing"
	"time"

	"moonjournal-be/internal/dto"
	"moonjournal-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotebookServiceFixture() (*fakeUnitOfWork, INotebookService) {
	uow := newFakeUnitOfWork()
	svc := NewNotebookService(&fakeRepositoryFactory{uow: uow})
	return uow, svc
}

func TestNotebookGetAllScopedToOwner(t *testing.T) {
	uow, svc := newNotebookServiceFixture()
	userId := uuid.New()
	seedNotebook(uow, userId)
	seedNotebook(uow, userId)
	seedNotebook(uow, uuid.New())

	resp, err := svc.GetAll(context.Background(), userId)
	require.NoError(t, err)
	assert.Len(t, resp.Notebooks, 2)
	assert.Equal(t, 0, resp.DaysSinceLastSpill)
}

func TestNotebookGetAllCarriesSpillCounter(t *testing.T) {
	uow, svc := newNotebookServiceFixture()
	userId := uuid.New()
	seedNotebook(uow, userId)
	seedEntry(uow, userId, truncateToDate(time.Now()).AddDate(0, 0, -14), true)

	resp, err := svc.GetAll(context.Background(), userId)
	require.NoError(t, err)
	assert.Equal(t, 14, resp.DaysSinceLastSpill)
}

func TestNotebookShowListsEntriesNewestFirst(t *testing.T) {
	uow, svc := newNotebookServiceFixture()
	userId := uuid.New()
	notebookId := seedNotebook(uow, userId)

	older := seedEntry(uow, userId, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), false)
	newer := seedEntry(uow, userId, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), false)
	older.NotebookId = &notebookId
	newer.NotebookId = &notebookId
	// An entry in someone else's notebook stays out of the listing.
	seedEntry(uow, uuid.New(), time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC), false)

	resp, err := svc.Show(context.Background(), userId, notebookId)
	require.NoError(t, err)
	require.Len(t, resp.Entries, 2)
	assert.Equal(t, newer.Id, resp.Entries[0].Id)
	assert.Equal(t, older.Id, resp.Entries[1].Id)
}

func TestNotebookShowForeignReturnsNotFound(t *testing.T) {
	uow, svc := newNotebookServiceFixture()
	notebookId := seedNotebook(uow, uuid.New())

	_, err := svc.Show(context.Background(), uuid.New(), notebookId)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNotebookUpdateForeignReturnsNotFound(t *testing.T) {
	uow, svc := newNotebookServiceFixture()
	owner := uuid.New()
	notebookId := seedNotebook(uow, owner)

	_, err := svc.Update(context.Background(), uuid.New(), &dto.UpdateNotebookRequest{
		Id:   notebookId,
		Name: "Hijacked",
	})
	assert.ErrorIs(t, err, ErrNotFound)

	stored, err := uow.notebooks.FindOne(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Dream log", stored.Name)
}

func TestNotebookDeleteCascades(t *testing.T) {
	uow, svc := newNotebookServiceFixture()
	userId := uuid.New()
	notebookId := seedNotebook(uow, userId)
	keptNotebookId := seedNotebook(uow, userId)

	doomed := seedEntry(uow, userId, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), false)
	doomed.NotebookId = &notebookId
	kept := seedEntry(uow, userId, time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), false)
	kept.NotebookId = &keptNotebookId

	uow.nonNegs.items = append(uow.nonNegs.items, &entity.NonNegotiable{
		Id:             uuid.New(),
		JournalEntryId: doomed.Id,
		Name:           "Run",
	})
	uow.wrongs.items = append(uow.wrongs.items, &entity.WhatWentWrongItem{
		Id:             uuid.New(),
		JournalEntryId: doomed.Id,
		Description:    "Overslept",
	})
	survivor := &entity.NonNegotiable{
		Id:             uuid.New(),
		JournalEntryId: kept.Id,
		Name:           "Read",
	}
	uow.nonNegs.items = append(uow.nonNegs.items, survivor)

	err := svc.Delete(context.Background(), userId, notebookId)
	require.NoError(t, err)

	assert.Len(t, uow.notebooks.notebooks, 1)
	require.Len(t, uow.entries.entries, 1)
	assert.Equal(t, kept.Id, uow.entries.entries[0].Id)
	assert.Empty(t, uow.wrongs.items)
	require.Len(t, uow.nonNegs.items, 1)
	assert.Equal(t, survivor.Id, uow.nonNegs.items[0].Id)
}

func TestNotebookDeleteForeignReturnsNotFound(t *testing.T) {
	uow, svc := newNotebookServiceFixture()
	owner := uuid.New()
	notebookId := seedNotebook(uow, owner)

	err := svc.Delete(context.Background(), uuid.New(), notebookId)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Len(t, uow.notebooks.notebooks, 1)
}

func TestNotebookCreateAssignsOwner(t *testing.T) {
	uow, svc := newNotebookServiceFixture()
	userId := uuid.New()

	resp, err := svc.Create(context.Background(), userId, &dto.CreateNotebookRequest{
		Name:        "Morning pages",
		Description: "Daily scribbles",
	})
	require.NoError(t, err)

	stored, err := uow.notebooks.FindOne(context.Background())
	require.NoError(t, err)
	assert.Equal(t, resp.Id, stored.Id)
	assert.Equal(t, userId, stored.UserId)
}
