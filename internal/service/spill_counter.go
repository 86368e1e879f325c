package service

import (
	"context"
	"time"

	"moonjournal-be/internal/entity"
	"moonjournal-be/internal/repository/specification"
	"moonjournal-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// daysSinceSpill is the spill counter rule: whole days since the most
// recent spilled entry, falling back to days since the earliest entry,
// and 0 when the user has no entries at all.
func daysSinceSpill(lastSpill, firstEntry *entity.JournalEntry, today time.Time) int {
	switch {
	case lastSpill != nil:
		return wholeDaysBetween(lastSpill.EntryDate, today)
	case firstEntry != nil:
		return wholeDaysBetween(firstEntry.EntryDate, today)
	default:
		return 0
	}
}

func wholeDaysBetween(from, to time.Time) int {
	from = truncateToDate(from)
	to = truncateToDate(to)
	days := int(to.Sub(from).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// spillCounter recomputes the counter from the store on every call;
// nothing is persisted. Ties on entry_date break on highest id.
func spillCounter(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, today time.Time) (int, error) {
	entryRepo := uow.JournalEntryRepository()

	lastSpill, err := entryRepo.FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.CupSpilled{Spilled: true},
		specification.OrderBy{Field: "entry_date", Desc: true},
		specification.OrderBy{Field: "id", Desc: true},
	)
	if err != nil {
		return 0, err
	}
	if lastSpill != nil {
		return daysSinceSpill(lastSpill, nil, today), nil
	}

	firstEntry, err := entryRepo.FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "entry_date", Desc: false},
		specification.OrderBy{Field: "id", Desc: false},
	)
	if err != nil {
		return 0, err
	}

	return daysSinceSpill(nil, firstEntry, today), nil
}
