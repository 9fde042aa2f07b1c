package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/google/uuid"

	apperrors "github.com/rafaelnuansa/faculty-backend/internal/errors"
	"github.com/rafaelnuansa/faculty-backend/internal/logger"
	"github.com/rafaelnuansa/faculty-backend/internal/model"
	"github.com/rafaelnuansa/faculty-backend/internal/repository"
	"github.com/rafaelnuansa/faculty-backend/internal/slug"
	"github.com/rafaelnuansa/faculty-backend/internal/storage"
	"github.com/rafaelnuansa/faculty-backend/internal/validation"
)

const (
	msgImageRequired = "The image field is required."
	msgImageTooLarge = "The image field must not be greater than 2048 kilobytes."
	msgImageType     = "The image field must be a file of type: jpeg, png, jpg, gif, webp."
	msgTitleNoSlug   = "The title field must contain at least one letter or number."
)

// CreatePostRequest is the multipart payload for a new post.
type CreatePostRequest struct {
	Title          string `form:"title" validate:"required,max=255"`
	CategoryID     string `form:"category_id" validate:"required,uuid"`
	UserID         string `form:"user_id" validate:"required,uuid"`
	FacultyID      string `form:"faculty_id" validate:"required,uuid"`
	Content        string `form:"content" validate:"required"`
	SEODescription string `form:"seo_description"`
	SEOKeywords    string `form:"seo_keywords"`

	Image *multipart.FileHeader `form:"-" validate:"-"`
}

// UpdatePostRequest carries only the fields the client sent. A nil Image keeps the stored one.
type UpdatePostRequest struct {
	Title          *string `form:"title" validate:"omitnil,min=1,max=255"`
	CategoryID     *string `form:"category_id" validate:"omitnil,uuid"`
	UserID         *string `form:"user_id" validate:"omitnil,uuid"`
	FacultyID      *string `form:"faculty_id" validate:"omitnil,uuid"`
	Content        *string `form:"content" validate:"omitnil,min=1"`
	SEODescription *string `form:"seo_description"`
	SEOKeywords    *string `form:"seo_keywords"`

	Image *multipart.FileHeader `form:"-" validate:"-"`
}

// PostService manages posts and their images.
type PostService interface {
	List(ctx context.Context, page int) (*model.Page[model.Post], error)
	Create(ctx context.Context, req CreatePostRequest) (*model.Post, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Post, error)
	Update(ctx context.Context, id uuid.UUID, req UpdatePostRequest) (*model.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type postService struct {
	repo       repository.PostRepository
	categories repository.CategoryRepository
	users      repository.UserRepository
	faculties  repository.FacultyRepository
	images     storage.ImageStore
	validator  *validation.Validator
}

// NewPostService builds a PostService.
func NewPostService(
	repo repository.PostRepository,
	categories repository.CategoryRepository,
	users repository.UserRepository,
	faculties repository.FacultyRepository,
	images storage.ImageStore,
	validator *validation.Validator,
) PostService {
	return &postService{
		repo:       repo,
		categories: categories,
		users:      users,
		faculties:  faculties,
		images:     images,
		validator:  validator,
	}
}

func (s *postService) List(ctx context.Context, pageNum int) (*model.Page[model.Post], error) {
	pageNum = model.NormalizePage(pageNum)
	items, total, err := s.repo.List(ctx, pageNum, model.DefaultPageSize)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return page(items, total, pageNum), nil
}

func (s *postService) Create(ctx context.Context, req CreatePostRequest) (*model.Post, error) {
	verr := s.validator.Check(&req)

	refs, err := s.checkRefs(ctx, &req.CategoryID, &req.UserID, &req.FacultyID, verr)
	if err != nil {
		return nil, err
	}
	if req.Image == nil {
		verr.Add("image", msgImageRequired)
	} else if err := s.checkImage(req.Image, verr); err != nil {
		return nil, err
	}
	postSlug := ""
	if !verr.Has("title") {
		if postSlug = slug.Make(req.Title); postSlug == "" {
			verr.Add("title", msgTitleNoSlug)
		}
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	imagePath, err := s.images.Save(req.Image)
	if err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}

	post := &model.Post{
		Title:          req.Title,
		Slug:           postSlug,
		Content:        req.Content,
		Image:          imagePath,
		SEODescription: req.SEODescription,
		SEOKeywords:    req.SEOKeywords,
		CategoryID:     refs.category,
		UserID:         refs.user,
		FacultyID:      refs.faculty,
	}
	if err := s.repo.Create(ctx, post); err != nil {
		s.discardImage(imagePath)
		return nil, fmt.Errorf("create post: %w", err)
	}

	logger.Info().Str("post_id", post.ID.String()).Str("slug", post.Slug).Msg("post created")
	return post, nil
}

func (s *postService) Get(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrPostNotFound)
	}
	return post, nil
}

func (s *postService) Update(ctx context.Context, id uuid.UUID, req UpdatePostRequest) (*model.Post, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	verr := s.validator.Check(&req)
	refs, err := s.checkRefs(ctx, req.CategoryID, req.UserID, req.FacultyID, verr)
	if err != nil {
		return nil, err
	}
	if req.Image != nil {
		if err := s.checkImage(req.Image, verr); err != nil {
			return nil, err
		}
	}
	title := valueOr(req.Title, post.Title)
	postSlug := ""
	if !verr.Has("title") {
		if postSlug = slug.Make(title); postSlug == "" {
			verr.Add("title", msgTitleNoSlug)
		}
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	oldImage := post.Image
	if req.Image != nil {
		if post.Image, err = s.images.Save(req.Image); err != nil {
			return nil, fmt.Errorf("store image: %w", err)
		}
	}

	post.Title = title
	post.Slug = postSlug
	post.Content = valueOr(req.Content, post.Content)
	post.SEODescription = valueOr(req.SEODescription, post.SEODescription)
	post.SEOKeywords = valueOr(req.SEOKeywords, post.SEOKeywords)
	if req.CategoryID != nil {
		post.CategoryID = refs.category
	}
	if req.UserID != nil {
		post.UserID = refs.user
	}
	if req.FacultyID != nil {
		post.FacultyID = refs.faculty
	}
	post.Category, post.User, post.Faculty = nil, nil, nil

	if err := s.repo.Update(ctx, post); err != nil {
		if req.Image != nil {
			s.discardImage(post.Image)
		}
		return nil, fmt.Errorf("update post: %w", err)
	}
	if req.Image != nil {
		s.discardImage(oldImage)
	}
	return s.Get(ctx, id)
}

// Delete removes the post row and then its image file.
func (s *postService) Delete(ctx context.Context, id uuid.UUID) error {
	post, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	s.discardImage(post.Image)
	logger.Info().Str("post_id", id.String()).Msg("post deleted")
	return nil
}

type postRefs struct {
	category uuid.UUID
	user     uuid.UUID
	faculty  uuid.UUID
}

// checkRefs verifies that every sent foreign key names an existing row.
// Keys already rejected by the struct rules are skipped.
func (s *postService) checkRefs(ctx context.Context, categoryID, userID, facultyID *string, verr *apperrors.ValidationError) (postRefs, error) {
	var refs postRefs
	checks := []struct {
		field  string
		raw    *string
		dst    *uuid.UUID
		exists func(context.Context, uuid.UUID) (bool, error)
	}{
		{"category_id", categoryID, &refs.category, s.categories.Exists},
		{"user_id", userID, &refs.user, s.users.Exists},
		{"faculty_id", facultyID, &refs.faculty, s.faculties.Exists},
	}

	for _, check := range checks {
		if check.raw == nil || verr.Has(check.field) {
			continue
		}
		id, ok := parseRef(*check.raw)
		if !ok {
			verr.Add(check.field, validation.Message(check.field, "uuid", ""))
			continue
		}
		found, err := check.exists(ctx, id)
		if err != nil {
			return refs, fmt.Errorf("check %s: %w", check.field, err)
		}
		if !found {
			verr.Add(check.field, fmt.Sprintf("The selected %s is invalid.", validation.Label(check.field)))
			continue
		}
		*check.dst = id
	}
	return refs, nil
}

func (s *postService) checkImage(fh *multipart.FileHeader, verr *apperrors.ValidationError) error {
	err := s.images.Validate(fh)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, storage.ErrImageTooLarge):
		verr.Add("image", msgImageTooLarge)
	case errors.Is(err, storage.ErrImageType):
		verr.Add("image", msgImageType)
	default:
		return fmt.Errorf("inspect image: %w", err)
	}
	return nil
}

func (s *postService) discardImage(path string) {
	if path == "" {
		return
	}
	if err := s.images.Delete(path); err != nil {
		logger.Warn().Err(err).Str("image", path).Msg("failed to remove image")
	}
}
