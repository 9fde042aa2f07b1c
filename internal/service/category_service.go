package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/rafaelnuansa/faculty-backend/internal/errors"
	"github.com/rafaelnuansa/faculty-backend/internal/logger"
	"github.com/rafaelnuansa/faculty-backend/internal/model"
	"github.com/rafaelnuansa/faculty-backend/internal/repository"
	"github.com/rafaelnuansa/faculty-backend/internal/slug"
	"github.com/rafaelnuansa/faculty-backend/internal/validation"
)

// slugWriteAttempts bounds the check-and-write loop when a concurrent writer takes the same slug.
const slugWriteAttempts = 3

// CreateCategoryRequest is the payload for a new category.
type CreateCategoryRequest struct {
	Name string `json:"name" form:"name" validate:"required,max=255"`
	Slug string `json:"slug" form:"slug" validate:"max=255"`
}

// UpdateCategoryRequest carries only the fields the client sent.
type UpdateCategoryRequest struct {
	Name *string `json:"name" form:"name" validate:"omitnil,min=1,max=255"`
	Slug *string `json:"slug" form:"slug" validate:"omitnil,max=255"`
}

// CategoryService manages categories and their slugs.
type CategoryService interface {
	List(ctx context.Context, search string, page int) (*model.Page[model.Category], error)
	Create(ctx context.Context, req CreateCategoryRequest) (*model.Category, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Category, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateCategoryRequest) (*model.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryService struct {
	repo      repository.CategoryRepository
	validator *validation.Validator
}

// NewCategoryService builds a CategoryService.
func NewCategoryService(repo repository.CategoryRepository, validator *validation.Validator) CategoryService {
	return &categoryService{repo: repo, validator: validator}
}

func (s *categoryService) List(ctx context.Context, search string, pageNum int) (*model.Page[model.Category], error) {
	pageNum = model.NormalizePage(pageNum)
	items, total, err := s.repo.List(ctx, search, pageNum, model.DefaultPageSize)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return page(items, total, pageNum), nil
}

func (s *categoryService) Create(ctx context.Context, req CreateCategoryRequest) (*model.Category, error) {
	verr := s.validator.Check(&req)
	base := ""
	if !verr.HasErrors() {
		source := req.Name
		if strings.TrimSpace(req.Slug) != "" {
			source = req.Slug
		}
		base = baseSlug(source, verr)
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	category := &model.Category{Name: req.Name}
	err := s.withUniqueSlug(ctx, base, nil, func(candidate string) error {
		category.Slug = candidate
		return s.repo.Create(ctx, category)
	})
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	logger.Info().Str("category_id", category.ID.String()).Str("slug", category.Slug).Msg("category created")
	return category, nil
}

func (s *categoryService) Get(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrCategoryNotFound)
	}
	return category, nil
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, req UpdateCategoryRequest) (*model.Category, error) {
	category, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	verr := s.validator.Check(&req)
	base := ""
	if !verr.HasErrors() {
		category.Name = valueOr(req.Name, category.Name)
		source := category.Name
		if req.Slug != nil && strings.TrimSpace(*req.Slug) != "" {
			source = *req.Slug
		}
		base = baseSlug(source, verr)
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	err = s.withUniqueSlug(ctx, base, &category.ID, func(candidate string) error {
		category.Slug = candidate
		return s.repo.Update(ctx, category)
	})
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	logger.Info().Str("category_id", id.String()).Msg("category deleted")
	return nil
}

// withUniqueSlug looks up a free slug and writes it, looking again when the
// store rejects the write as a duplicate.
func (s *categoryService) withUniqueSlug(ctx context.Context, base string, excludeID *uuid.UUID, write func(string) error) error {
	exists := func(ctx context.Context, candidate string) (bool, error) {
		return s.repo.SlugExists(ctx, candidate, excludeID)
	}

	var err error
	for attempt := 1; attempt <= slugWriteAttempts; attempt++ {
		var candidate string
		candidate, err = slug.Unique(ctx, base, exists)
		if err != nil {
			return err
		}
		err = write(candidate)
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		logger.Warn().Str("slug", candidate).Int("attempt", attempt).Msg("slug taken concurrently, retrying")
	}
	return err
}

// baseSlug slugifies source and records a failure when nothing usable remains.
func baseSlug(source string, verr *apperrors.ValidationError) string {
	base := slug.Make(source)
	if base == "" {
		verr.Add("slug", "The slug field must contain at least one letter or number.")
	}
	return base
}
