package contract

import (
	"context"

	"moonjournal-be/internal/entity"
	"moonjournal-be/internal/repository/specification"

	"github.com/google/uuid"
)

type NonNegotiableRepository interface {
	Create(ctx context.Context, item *entity.NonNegotiable) error
	Update(ctx context.Context, item *entity.NonNegotiable) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByJournalEntryId(ctx context.Context, journalEntryId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.NonNegotiable, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NonNegotiable, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
