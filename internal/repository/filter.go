// internal/repository/filter.go
package repository

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Filter describes one optional list predicate. Substring selects
// case-insensitive contains matching instead of exact equality.
type Filter struct {
	Column    string
	Substring bool
}

// applyFilters chains one WHERE clause per non-empty value. Column names
// come from the per-entity filter tables, never from request input.
func applyFilters(tx *gorm.DB, defs map[string]Filter, values map[string]string) *gorm.DB {
	for key, def := range defs {
		v := strings.TrimSpace(values[key])
		if v == "" {
			continue
		}
		if def.Substring {
			tx = tx.Where(fmt.Sprintf("LOWER(%s) LIKE ?", def.Column), "%"+strings.ToLower(v)+"%")
		} else {
			tx = tx.Where(fmt.Sprintf("%s = ?", def.Column), v)
		}
	}
	return tx
}
