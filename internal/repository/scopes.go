package repository

import (
	"strings"

	"gorm.io/gorm"
)

// nameLike filters on a case-insensitive substring of name; blank search is a no-op.
func nameLike(search string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		search = strings.TrimSpace(search)
		if search == "" {
			return db
		}
		return db.Where("LOWER(name) LIKE ?", "%"+escapeLike(strings.ToLower(search))+"%")
	}
}

func paginate(page, perPage int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		return db.Offset((page - 1) * perPage).Limit(perPage)
	}
}

func latest(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
