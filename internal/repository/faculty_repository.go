package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rafaelnuansa/faculty-backend/internal/model"
)

// FacultyRepository defines faculty persistence operations.
type FacultyRepository interface {
	Create(ctx context.Context, faculty *model.Faculty) error
	Update(ctx context.Context, faculty *model.Faculty) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Faculty, error)
	List(ctx context.Context, search string, page, perPage int) ([]model.Faculty, int64, error)
	All(ctx context.Context) ([]model.Faculty, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type facultyRepository struct {
	db *gorm.DB
}

// NewFacultyRepository builds a GORM-backed repository.
func NewFacultyRepository(db *gorm.DB) FacultyRepository {
	return &facultyRepository{db: db}
}

func (r *facultyRepository) Create(ctx context.Context, faculty *model.Faculty) error {
	return r.db.WithContext(ctx).Create(faculty).Error
}

func (r *facultyRepository) Update(ctx context.Context, faculty *model.Faculty) error {
	return r.db.WithContext(ctx).Save(faculty).Error
}

// Delete relies on the foreign keys: posts and programs cascade, users get a NULL faculty_id.
func (r *facultyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Faculty{}).Error
}

func (r *facultyRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Faculty, error) {
	var faculty model.Faculty
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&faculty).Error; err != nil {
		return nil, err
	}
	return &faculty, nil
}

func (r *facultyRepository) List(ctx context.Context, search string, page, perPage int) ([]model.Faculty, int64, error) {
	query := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&model.Faculty{}).Scopes(nameLike(search))
	}

	var total int64
	if err := query().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var faculties []model.Faculty
	if err := query().Scopes(latest, paginate(page, perPage)).Find(&faculties).Error; err != nil {
		return nil, 0, err
	}
	return faculties, total, nil
}

func (r *facultyRepository) All(ctx context.Context) ([]model.Faculty, error) {
	var faculties []model.Faculty
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&faculties).Error; err != nil {
		return nil, err
	}
	return faculties, nil
}

func (r *facultyRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Faculty{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *facultyRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Faculty{}).Count(&count).Error
	return count, err
}
