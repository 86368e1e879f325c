package mapper

import (
	"time"

	"moonjournal-be/internal/entity"
	"moonjournal-be/internal/model"
)

type NonNegotiableMapper struct{}

func NewNonNegotiableMapper() *NonNegotiableMapper {
	return &NonNegotiableMapper{}
}

func (m *NonNegotiableMapper) ToEntity(n *model.NonNegotiable) *entity.NonNegotiable {
	if n == nil {
		return nil
	}

	var updatedAt *time.Time
	if !n.UpdatedAt.IsZero() {
		t := n.UpdatedAt
		updatedAt = &t
	}

	return &entity.NonNegotiable{
		Id:             n.Id,
		JournalEntryId: n.JournalEntryId,
		Name:           n.Name,
		Notes:          n.Notes,
		Completed:      n.Completed,
		CreatedAt:      n.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *NonNegotiableMapper) ToModel(n *entity.NonNegotiable) *model.NonNegotiable {
	if n == nil {
		return nil
	}

	var updatedAt time.Time
	if n.UpdatedAt != nil {
		updatedAt = *n.UpdatedAt
	}

	return &model.NonNegotiable{
		Id:             n.Id,
		JournalEntryId: n.JournalEntryId,
		Name:           n.Name,
		Notes:          n.Notes,
		Completed:      n.Completed,
		CreatedAt:      n.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *NonNegotiableMapper) ToEntities(items []*model.NonNegotiable) []*entity.NonNegotiable {
	entities := make([]*entity.NonNegotiable, len(items))
	for i, n := range items {
		entities[i] = m.ToEntity(n)
	}
	return entities
}

type WhatWentWrongItemMapper struct{}

func NewWhatWentWrongItemMapper() *WhatWentWrongItemMapper {
	return &WhatWentWrongItemMapper{}
}

func (m *WhatWentWrongItemMapper) ToEntity(w *model.WhatWentWrongItem) *entity.WhatWentWrongItem {
	if w == nil {
		return nil
	}

	var updatedAt *time.Time
	if !w.UpdatedAt.IsZero() {
		t := w.UpdatedAt
		updatedAt = &t
	}

	return &entity.WhatWentWrongItem{
		Id:             w.Id,
		JournalEntryId: w.JournalEntryId,
		Description:    w.Description,
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *WhatWentWrongItemMapper) ToModel(w *entity.WhatWentWrongItem) *model.WhatWentWrongItem {
	if w == nil {
		return nil
	}

	var updatedAt time.Time
	if w.UpdatedAt != nil {
		updatedAt = *w.UpdatedAt
	}

	return &model.WhatWentWrongItem{
		Id:             w.Id,
		JournalEntryId: w.JournalEntryId,
		Description:    w.Description,
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *WhatWentWrongItemMapper) ToEntities(items []*model.WhatWentWrongItem) []*entity.WhatWentWrongItem {
	entities := make([]*entity.WhatWentWrongItem, len(items))
	for i, w := range items {
		entities[i] = m.ToEntity(w)
	}
	return entities
}
