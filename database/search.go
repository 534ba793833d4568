package database

import (
	"strings"

	"github.com/fyyur-app/fyyur/models"
	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// searchByName finds rows of T whose name contains term, ignoring case.
// Both sides are compared in case-folded form through the name_key column.
// An empty term matches every row. No ranking is applied.
func searchByName[T any](db *gorm.DB, term string, preloads ...string) ([]*T, error) {
	query := db
	for _, p := range preloads {
		query = query.Preload(p)
	}
	if term != "" {
		pattern := "%" + likeEscaper.Replace(models.FoldName(term)) + "%"
		query = query.Where(`name_key LIKE ? ESCAPE '\'`, pattern)
	}

	var rows []*T
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
