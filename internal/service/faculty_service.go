package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	apperrors "github.com/rafaelnuansa/faculty-backend/internal/errors"
	"github.com/rafaelnuansa/faculty-backend/internal/logger"
	"github.com/rafaelnuansa/faculty-backend/internal/model"
	"github.com/rafaelnuansa/faculty-backend/internal/repository"
	"github.com/rafaelnuansa/faculty-backend/internal/validation"
)

// CreateFacultyRequest is the payload for a new faculty.
type CreateFacultyRequest struct {
	Name    string `json:"name" form:"name" validate:"required,max=255"`
	Initial string `json:"initial" form:"initial" validate:"required,max=255"`
	Desc    string `json:"desc" form:"desc" validate:"required"`
	Domain  string `json:"domain" form:"domain" validate:"required,max=255"`
}

// UpdateFacultyRequest carries only the fields the client sent; sent fields must not be empty.
type UpdateFacultyRequest struct {
	Name    *string `json:"name" form:"name" validate:"omitnil,min=1,max=255"`
	Initial *string `json:"initial" form:"initial" validate:"omitnil,min=1,max=255"`
	Desc    *string `json:"desc" form:"desc" validate:"omitnil,min=1"`
	Domain  *string `json:"domain" form:"domain" validate:"omitnil,min=1,max=255"`
}

// FacultyService manages faculties.
type FacultyService interface {
	List(ctx context.Context, search string, page int) (*model.Page[model.Faculty], error)
	All(ctx context.Context) ([]model.Faculty, error)
	Create(ctx context.Context, req CreateFacultyRequest) (*model.Faculty, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Faculty, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateFacultyRequest) (*model.Faculty, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type facultyService struct {
	repo      repository.FacultyRepository
	validator *validation.Validator
}

// NewFacultyService builds a FacultyService.
func NewFacultyService(repo repository.FacultyRepository, validator *validation.Validator) FacultyService {
	return &facultyService{repo: repo, validator: validator}
}

func (s *facultyService) List(ctx context.Context, search string, pageNum int) (*model.Page[model.Faculty], error) {
	pageNum = model.NormalizePage(pageNum)
	items, total, err := s.repo.List(ctx, search, pageNum, model.DefaultPageSize)
	if err != nil {
		return nil, fmt.Errorf("list faculties: %w", err)
	}
	return page(items, total, pageNum), nil
}

func (s *facultyService) All(ctx context.Context) ([]model.Faculty, error) {
	faculties, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list all faculties: %w", err)
	}
	if faculties == nil {
		faculties = []model.Faculty{}
	}
	return faculties, nil
}

func (s *facultyService) Create(ctx context.Context, req CreateFacultyRequest) (*model.Faculty, error) {
	if err := s.validator.Check(&req).OrNil(); err != nil {
		return nil, err
	}

	faculty := &model.Faculty{
		Name:    req.Name,
		Initial: req.Initial,
		Desc:    req.Desc,
		Domain:  req.Domain,
	}
	if err := s.repo.Create(ctx, faculty); err != nil {
		return nil, fmt.Errorf("create faculty: %w", err)
	}

	logger.Info().Str("faculty_id", faculty.ID.String()).Msg("faculty created")
	return faculty, nil
}

func (s *facultyService) Get(ctx context.Context, id uuid.UUID) (*model.Faculty, error) {
	faculty, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrFacultyNotFound)
	}
	return faculty, nil
}

func (s *facultyService) Update(ctx context.Context, id uuid.UUID, req UpdateFacultyRequest) (*model.Faculty, error) {
	faculty, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validator.Check(&req).OrNil(); err != nil {
		return nil, err
	}

	faculty.Name = valueOr(req.Name, faculty.Name)
	faculty.Initial = valueOr(req.Initial, faculty.Initial)
	faculty.Desc = valueOr(req.Desc, faculty.Desc)
	faculty.Domain = valueOr(req.Domain, faculty.Domain)

	if err := s.repo.Update(ctx, faculty); err != nil {
		return nil, fmt.Errorf("update faculty: %w", err)
	}
	return faculty, nil
}

// Delete removes the faculty; the store cascades its posts and programs and detaches its users.
func (s *facultyService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete faculty: %w", err)
	}
	logger.Info().Str("faculty_id", id.String()).Msg("faculty deleted")
	return nil
}
