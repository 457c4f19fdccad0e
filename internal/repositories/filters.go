package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// likeFilter appends a case-insensitive substring condition. LOWER/LIKE is
// used instead of ILIKE so the same query runs on postgres and the sqlite
// test driver.
func likeFilter(q *gorm.DB, column, value string) *gorm.DB {
	if value == "" {
		return q
	}
	return q.Where("LOWER("+column+") LIKE ?", "%"+strings.ToLower(value)+"%")
}

// applyOrder resolves sortBy through the per-entity allow-map. Unknown sort
// fields leave the query in natural order rather than failing.
func applyOrder(q *gorm.DB, sortBy, sortOrder string, allowed map[string]string) *gorm.DB {
	column, ok := allowed[sortBy]
	if !ok {
		return q
	}
	direction := "ASC"
	if strings.EqualFold(sortOrder, "desc") {
		direction = "DESC"
	}
	return q.Order(column + " " + direction)
}

// isDuplicateKeyError detects a storage-level uniqueness violation across
// the postgres and sqlite drivers.
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint")
}
