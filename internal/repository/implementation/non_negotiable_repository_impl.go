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

type NonNegotiableRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NonNegotiableMapper
}

func NewNonNegotiableRepository(db *gorm.DB) contract.NonNegotiableRepository {
	return &NonNegotiableRepositoryImpl{
		db:     db,
		mapper: mapper.NewNonNegotiableMapper(),
	}
}

func (r *NonNegotiableRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *NonNegotiableRepositoryImpl) Create(ctx context.Context, item *entity.NonNegotiable) error {
	m := r.mapper.ToModel(item)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.ToEntity(m)
	return nil
}

func (r *NonNegotiableRepositoryImpl) Update(ctx context.Context, item *entity.NonNegotiable) error {
	m := r.mapper.ToModel(item)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.ToEntity(m)
	return nil
}

func (r *NonNegotiableRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.NonNegotiable{}, id).Error
}

func (r *NonNegotiableRepositoryImpl) DeleteByJournalEntryId(ctx context.Context, journalEntryId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("journal_entry_id = ?", journalEntryId).Delete(&model.NonNegotiable{}).Error
}

func (r *NonNegotiableRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.NonNegotiable, error) {
	var m model.NonNegotiable
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *NonNegotiableRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NonNegotiable, error) {
	var models []*model.NonNegotiable
	query := r.applySpecifications(r.db.WithContext(ctx).Scopes(scope.OrderByCreatedAsc), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *NonNegotiableRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.NonNegotiable{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
