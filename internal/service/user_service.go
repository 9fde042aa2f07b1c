package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/rafaelnuansa/faculty-backend/internal/errors"
	"github.com/rafaelnuansa/faculty-backend/internal/logger"
	"github.com/rafaelnuansa/faculty-backend/internal/model"
	"github.com/rafaelnuansa/faculty-backend/internal/repository"
	"github.com/rafaelnuansa/faculty-backend/internal/validation"
)

const (
	msgEmailTaken       = "The email has already been taken."
	msgPasswordMismatch = "The password field confirmation does not match."
	msgFacultyInvalid   = "The selected faculty id is invalid."
)

// CreateUserRequest is the payload for a new user.
type CreateUserRequest struct {
	Name            string  `json:"name" form:"name" validate:"required,max=255"`
	Email           string  `json:"email" form:"email" validate:"required,email,max=255"`
	Password        string  `json:"password" form:"password" validate:"required,min=6"`
	ConfirmPassword string  `json:"confirm_password" form:"confirm_password"`
	FacultyID       *string `json:"faculty_id" form:"faculty_id"`
}

// UpdateUserRequest carries only the fields the client sent.
// An empty password is treated as not sent; an empty faculty_id detaches the user.
type UpdateUserRequest struct {
	Name            *string `json:"name" form:"name" validate:"omitnil,min=1,max=255"`
	Email           *string `json:"email" form:"email" validate:"omitnil,email,max=255"`
	Password        *string `json:"password" form:"password" validate:"omitnil,min=6"`
	ConfirmPassword *string `json:"confirm_password" form:"confirm_password"`
	FacultyID       *string `json:"faculty_id" form:"faculty_id"`
}

// UserService manages administrator accounts.
type UserService interface {
	List(ctx context.Context, search string, page int) (*model.Page[model.User], error)
	Create(ctx context.Context, req CreateUserRequest) (*model.User, error)
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*model.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	repo        repository.UserRepository
	facultyRepo repository.FacultyRepository
	validator   *validation.Validator
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository, facultyRepo repository.FacultyRepository, validator *validation.Validator) UserService {
	return &userService{repo: repo, facultyRepo: facultyRepo, validator: validator}
}

func (s *userService) List(ctx context.Context, search string, pageNum int) (*model.Page[model.User], error) {
	pageNum = model.NormalizePage(pageNum)
	items, total, err := s.repo.List(ctx, search, pageNum, model.DefaultPageSize)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return page(items, total, pageNum), nil
}

func (s *userService) Create(ctx context.Context, req CreateUserRequest) (*model.User, error) {
	verr := s.validator.Check(&req)

	if !verr.Has("email") {
		taken, err := s.repo.EmailExists(ctx, req.Email, nil)
		if err != nil {
			return nil, fmt.Errorf("check email: %w", err)
		}
		if taken {
			verr.Add("email", msgEmailTaken)
		}
	}
	if !verr.Has("password") && req.Password != req.ConfirmPassword {
		verr.Add("password", msgPasswordMismatch)
	}
	facultyID, err := s.resolveFaculty(ctx, req.FacultyID, verr)
	if err != nil {
		return nil, err
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		FacultyID:    facultyID,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	logger.Info().Str("user_id", user.ID.String()).Msg("user created")
	return user, nil
}

func (s *userService) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrUserNotFound)
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*model.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Password != nil && *req.Password == "" {
		req.Password = nil
	}
	verr := s.validator.Check(&req)

	if req.Email != nil && !verr.Has("email") {
		taken, err := s.repo.EmailExists(ctx, *req.Email, &user.ID)
		if err != nil {
			return nil, fmt.Errorf("check email: %w", err)
		}
		if taken {
			verr.Add("email", msgEmailTaken)
		}
	}
	if req.Password != nil && !verr.Has("password") &&
		(req.ConfirmPassword == nil || *req.ConfirmPassword != *req.Password) {
		verr.Add("password", msgPasswordMismatch)
	}
	facultyID, err := s.resolveFaculty(ctx, req.FacultyID, verr)
	if err != nil {
		return nil, err
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	user.Name = valueOr(req.Name, user.Name)
	user.Email = valueOr(req.Email, user.Email)
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}
	if req.FacultyID != nil {
		user.FacultyID = facultyID
	}
	user.Faculty = nil

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return s.Get(ctx, id)
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	logger.Info().Str("user_id", id.String()).Msg("user deleted")
	return nil
}

// resolveFaculty checks an optional faculty reference. nil and "" both resolve to no faculty.
func (s *userService) resolveFaculty(ctx context.Context, raw *string, verr *apperrors.ValidationError) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, ok := parseRef(*raw)
	if !ok {
		verr.Add("faculty_id", validation.Message("faculty_id", "uuid", ""))
		return nil, nil
	}
	exists, err := s.facultyRepo.Exists(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("check faculty: %w", err)
	}
	if !exists {
		verr.Add("faculty_id", msgFacultyInvalid)
		return nil, nil
	}
	return &id, nil
}
