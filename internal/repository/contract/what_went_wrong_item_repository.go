package contract

import (
	"context"

	"moonjournal-be/internal/entity"
	"moonjournal-be/internal/repository/specification"

	"github.com/google/uuid"
)

type WhatWentWrongItemRepository interface {
	Create(ctx context.Context, item *entity.WhatWentWrongItem) error
	Update(ctx context.Context, item *entity.WhatWentWrongItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByJournalEntryId(ctx context.Context, journalEntryId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WhatWentWrongItem, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WhatWentWrongItem, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
