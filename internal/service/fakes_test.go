package service

import (
	"context"
	"sort"
	"strings"

	"moonjournal-be/internal/entity"
	"moonjournal-be/internal/repository/contract"
	"moonjournal-be/internal/repository/specification"
	"moonjournal-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// In-memory repositories interpreting the same specification structs the
// GORM implementations apply, so services can be exercised without a DB.

type fakeUserRepo struct {
	users []*entity.User
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	cp := *user
	r.users = append(r.users, &cp)
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	for i, u := range r.users {
		if u.Id == user.Id {
			cp := *user
			r.users[i] = &cp
			return nil
		}
	}
	cp := *user
	r.users = append(r.users, &cp)
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, u := range r.users {
		if u.Id == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeUserRepo) matches(u *entity.User, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if u.Id != s.ID {
				return false
			}
		case specification.ByEmail:
			if u.Email != s.Email {
				return false
			}
		}
	}
	return true
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, u := range r.users {
		if r.matches(u, specs) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if r.matches(u, specs) {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

type fakeNotebookRepo struct {
	notebooks []*entity.Notebook
}

func (r *fakeNotebookRepo) Create(ctx context.Context, notebook *entity.Notebook) error {
	cp := *notebook
	r.notebooks = append(r.notebooks, &cp)
	return nil
}

func (r *fakeNotebookRepo) Update(ctx context.Context, notebook *entity.Notebook) error {
	for i, n := range r.notebooks {
		if n.Id == notebook.Id {
			cp := *notebook
			r.notebooks[i] = &cp
			return nil
		}
	}
	cp := *notebook
	r.notebooks = append(r.notebooks, &cp)
	return nil
}

func (r *fakeNotebookRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, n := range r.notebooks {
		if n.Id == id {
			r.notebooks = append(r.notebooks[:i], r.notebooks[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeNotebookRepo) matches(n *entity.Notebook, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if n.Id != s.ID {
				return false
			}
		case specification.UserOwnedBy:
			if n.UserId != s.UserID {
				return false
			}
		}
	}
	return true
}

func (r *fakeNotebookRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Notebook, error) {
	for _, n := range r.notebooks {
		if r.matches(n, specs) {
			cp := *n
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeNotebookRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Notebook, error) {
	var out []*entity.Notebook
	for _, n := range r.notebooks {
		if r.matches(n, specs) {
			cp := *n
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeNotebookRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

type fakeJournalEntryRepo struct {
	entries []*entity.JournalEntry
}

func (r *fakeJournalEntryRepo) Create(ctx context.Context, entry *entity.JournalEntry) error {
	cp := *entry
	r.entries = append(r.entries, &cp)
	return nil
}

func (r *fakeJournalEntryRepo) Update(ctx context.Context, entry *entity.JournalEntry) error {
	for i, e := range r.entries {
		if e.Id == entry.Id {
			cp := *entry
			r.entries[i] = &cp
			return nil
		}
	}
	cp := *entry
	r.entries = append(r.entries, &cp)
	return nil
}

func (r *fakeJournalEntryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, e := range r.entries {
		if e.Id == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeJournalEntryRepo) matches(e *entity.JournalEntry, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if e.Id != s.ID {
				return false
			}
		case specification.UserOwnedBy:
			if e.UserId != s.UserID {
				return false
			}
		case specification.CupSpilled:
			if e.CupSpilled != s.Spilled {
				return false
			}
		case specification.ByNotebookID:
			if e.NotebookId == nil || *e.NotebookId != s.NotebookID {
				return false
			}
		}
	}
	return true
}

func sortEntries(entries []*entity.JournalEntry, specs []specification.Specification) {
	orderBys := make([]specification.OrderBy, 0)
	for _, spec := range specs {
		if ob, ok := spec.(specification.OrderBy); ok {
			orderBys = append(orderBys, ob)
		}
	}
	if len(orderBys) == 0 {
		// Default listing order: newest entry date first, id tie-break.
		orderBys = []specification.OrderBy{
			{Field: "entry_date", Desc: true},
			{Field: "id", Desc: true},
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		for _, ob := range orderBys {
			var cmp int
			switch ob.Field {
			case "entry_date":
				if entries[i].EntryDate.Before(entries[j].EntryDate) {
					cmp = -1
				} else if entries[i].EntryDate.After(entries[j].EntryDate) {
					cmp = 1
				}
			case "created_at":
				if entries[i].CreatedAt.Before(entries[j].CreatedAt) {
					cmp = -1
				} else if entries[i].CreatedAt.After(entries[j].CreatedAt) {
					cmp = 1
				}
			case "id":
				cmp = strings.Compare(entries[i].Id.String(), entries[j].Id.String())
			}
			if cmp == 0 {
				continue
			}
			if ob.Desc {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})
}

func (r *fakeJournalEntryRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.JournalEntry, error) {
	matched, _ := r.FindAll(ctx, specs...)
	if len(matched) == 0 {
		return nil, nil
	}
	return matched[0], nil
}

func (r *fakeJournalEntryRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.JournalEntry, error) {
	var out []*entity.JournalEntry
	for _, e := range r.entries {
		if r.matches(e, specs) {
			cp := *e
			out = append(out, &cp)
		}
	}
	sortEntries(out, specs)
	return out, nil
}

func (r *fakeJournalEntryRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

type fakeNonNegotiableRepo struct {
	items []*entity.NonNegotiable
}

func (r *fakeNonNegotiableRepo) Create(ctx context.Context, item *entity.NonNegotiable) error {
	cp := *item
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeNonNegotiableRepo) Update(ctx context.Context, item *entity.NonNegotiable) error {
	for i, n := range r.items {
		if n.Id == item.Id {
			cp := *item
			r.items[i] = &cp
			return nil
		}
	}
	cp := *item
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeNonNegotiableRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, n := range r.items {
		if n.Id == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeNonNegotiableRepo) DeleteByJournalEntryId(ctx context.Context, journalEntryId uuid.UUID) error {
	kept := r.items[:0]
	for _, n := range r.items {
		if n.JournalEntryId != journalEntryId {
			kept = append(kept, n)
		}
	}
	r.items = kept
	return nil
}

func (r *fakeNonNegotiableRepo) matches(n *entity.NonNegotiable, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if n.Id != s.ID {
				return false
			}
		case specification.ByJournalEntryID:
			if n.JournalEntryId != s.JournalEntryID {
				return false
			}
		}
	}
	return true
}

func (r *fakeNonNegotiableRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.NonNegotiable, error) {
	for _, n := range r.items {
		if r.matches(n, specs) {
			cp := *n
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeNonNegotiableRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NonNegotiable, error) {
	var out []*entity.NonNegotiable
	for _, n := range r.items {
		if r.matches(n, specs) {
			cp := *n
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeNonNegotiableRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

type fakeWhatWentWrongRepo struct {
	items []*entity.WhatWentWrongItem
}

func (r *fakeWhatWentWrongRepo) Create(ctx context.Context, item *entity.WhatWentWrongItem) error {
	cp := *item
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeWhatWentWrongRepo) Update(ctx context.Context, item *entity.WhatWentWrongItem) error {
	for i, w := range r.items {
		if w.Id == item.Id {
			cp := *item
			r.items[i] = &cp
			return nil
		}
	}
	cp := *item
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeWhatWentWrongRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, w := range r.items {
		if w.Id == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeWhatWentWrongRepo) DeleteByJournalEntryId(ctx context.Context, journalEntryId uuid.UUID) error {
	kept := r.items[:0]
	for _, w := range r.items {
		if w.JournalEntryId != journalEntryId {
			kept = append(kept, w)
		}
	}
	r.items = kept
	return nil
}

func (r *fakeWhatWentWrongRepo) matches(w *entity.WhatWentWrongItem, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if w.Id != s.ID {
				return false
			}
		case specification.ByJournalEntryID:
			if w.JournalEntryId != s.JournalEntryID {
				return false
			}
		}
	}
	return true
}

func (r *fakeWhatWentWrongRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WhatWentWrongItem, error) {
	for _, w := range r.items {
		if r.matches(w, specs) {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeWhatWentWrongRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WhatWentWrongItem, error) {
	var out []*entity.WhatWentWrongItem
	for _, w := range r.items {
		if r.matches(w, specs) {
			cp := *w
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeWhatWentWrongRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

type fakeUnitOfWork struct {
	users     *fakeUserRepo
	notebooks *fakeNotebookRepo
	entries   *fakeJournalEntryRepo
	nonNegs   *fakeNonNegotiableRepo
	wrongs    *fakeWhatWentWrongRepo
}

func newFakeUnitOfWork() *fakeUnitOfWork {
	return &fakeUnitOfWork{
		users:     &fakeUserRepo{},
		notebooks: &fakeNotebookRepo{},
		entries:   &fakeJournalEntryRepo{},
		nonNegs:   &fakeNonNegotiableRepo{},
		wrongs:    &fakeWhatWentWrongRepo{},
	}
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository {
	return u.users
}

func (u *fakeUnitOfWork) NotebookRepository() contract.NotebookRepository {
	return u.notebooks
}

func (u *fakeUnitOfWork) JournalEntryRepository() contract.JournalEntryRepository {
	return u.entries
}

func (u *fakeUnitOfWork) NonNegotiableRepository() contract.NonNegotiableRepository {
	return u.nonNegs
}

func (u *fakeUnitOfWork) WhatWentWrongItemRepository() contract.WhatWentWrongItemRepository {
	return u.wrongs
}

type fakeRepositoryFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeRepositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}
