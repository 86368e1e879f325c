package implementation

import (
	"context"
	"errors"

	"moonjournal-be/internal/entity"
	"moonjournal-be/internal/mapper"
	"moonjournal-be/internal/model"
	"moonjournal-be/internal/repository/contract"
	"moonjournal-be/internal/repository/scope"
	"moonjournal-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WhatWentWrongItemRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WhatWentWrongItemMapper
}

func NewWhatWentWrongItemRepository(db *gorm.DB) contract.WhatWentWrongItemRepository {
	return &WhatWentWrongItemRepositoryImpl{
		db:     db,
		mapper: mapper.NewWhatWentWrongItemMapper(),
	}
}

func (r *WhatWentWrongItemRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *WhatWentWrongItemRepositoryImpl) Create(ctx context.Context, item *entity.WhatWentWrongItem) error {
	m := r.mapper.ToModel(item)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.ToEntity(m)
	return nil
}

func (r *WhatWentWrongItemRepositoryImpl) Update(ctx context.Context, item *entity.WhatWentWrongItem) error {
	m := r.mapper.ToModel(item)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.ToEntity(m)
	return nil
}

func (r *WhatWentWrongItemRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.WhatWentWrongItem{}, id).Error
}

func (r *WhatWentWrongItemRepositoryImpl) DeleteByJournalEntryId(ctx context.Context, journalEntryId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("journal_entry_id = ?", journalEntryId).Delete(&model.WhatWentWrongItem{}).Error
}

func (r *WhatWentWrongItemRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WhatWentWrongItem, error) {
	var m model.WhatWentWrongItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *WhatWentWrongItemRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WhatWentWrongItem, error) {
	var models []*model.WhatWentWrongItem
	query := r.applySpecifications(r.db.WithContext(ctx).Scopes(scope.OrderByCreatedAsc), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *WhatWentWrongItemRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.WhatWentWrongItem{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
