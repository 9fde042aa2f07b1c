package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rafaelnuansa/faculty-backend/internal/model"
)

const bcryptCost = 10

// notFound turns gorm.ErrRecordNotFound into the resource's own sentinel.
func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

func valueOr(value *string, fallback string) string {
	if value == nil {
		return fallback
	}
	return *value
}

func page[T any](items []T, total int64, pageNum int) *model.Page[T] {
	return model.NewPage(items, total, pageNum, model.DefaultPageSize)
}

// parseRef parses a foreign key that already passed the uuid rule.
func parseRef(raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	return id, err == nil
}
