package scope

import "gorm.io/gorm"

func OrderByCreatedDesc(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}

func OrderByCreatedAsc(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}

// OrderByEntryDateDesc is the default listing order for journal entries:
// newest entry date first, id as a deterministic tie-break.
func OrderByEntryDateDesc(db *gorm.DB) *gorm.DB {
	return db.Order("entry_date DESC").Order("id DESC")
}
