package service

import (
	"context"
	"mime/multipart"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/rafaelnuansa/faculty-backend/internal/errors"
	"github.com/rafaelnuansa/faculty-backend/internal/model"
	"github.com/rafaelnuansa/faculty-backend/internal/storage"
	"github.com/rafaelnuansa/faculty-backend/internal/validation"
)

type postMocks struct {
	posts      *MockPostRepository
	categories *MockCategoryRepository
	users      *MockUserRepository
	faculties  *MockFacultyRepository
	images     *MockImageStore
}

func newPostService() (PostService, postMocks) {
	m := postMocks{
		posts:      new(MockPostRepository),
		categories: new(MockCategoryRepository),
		users:      new(MockUserRepository),
		faculties:  new(MockFacultyRepository),
		images:     new(MockImageStore),
	}
	return NewPostService(m.posts, m.categories, m.users, m.faculties, m.images, validation.New()), m
}

func validPostRequest(image *multipart.FileHeader) (CreatePostRequest, [3]uuid.UUID) {
	ids := [3]uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	return CreatePostRequest{
		Title:      "Hello World",
		CategoryID: ids[0].String(),
		UserID:     ids[1].String(),
		FacultyID:  ids[2].String(),
		Content:    "Body",
		Image:      image,
	}, ids
}

func TestPostService_Create(t *testing.T) {
	image := &multipart.FileHeader{Filename: "cover.png", Size: 1024}
	req, ids := validPostRequest(image)

	svc, m := newPostService()
	m.categories.On("Exists", mock.Anything, ids[0]).Return(true, nil)
	m.users.On("Exists", mock.Anything, ids[1]).Return(true, nil)
	m.faculties.On("Exists", mock.Anything, ids[2]).Return(true, nil)
	m.images.On("Validate", image).Return(nil)
	m.images.On("Save", image).Return("images/1700000000.png", nil)
	m.posts.On("Create", mock.Anything, mock.AnythingOfType("*model.Post")).Return(nil)

	post, err := svc.Create(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "hello-world", post.Slug)
	assert.Equal(t, "images/1700000000.png", post.Image)
	assert.Equal(t, ids[0], post.CategoryID)
	assert.Equal(t, ids[2], post.FacultyID)
	m.images.AssertExpectations(t)
	m.posts.AssertExpectations(t)
}

func TestPostService_Create_WithoutImage(t *testing.T) {
	req, ids := validPostRequest(nil)

	svc, m := newPostService()
	m.categories.On("Exists", mock.Anything, ids[0]).Return(true, nil)
	m.users.On("Exists", mock.Anything, ids[1]).Return(true, nil)
	m.faculties.On("Exists", mock.Anything, ids[2]).Return(true, nil)

	_, err := svc.Create(context.Background(), req)

	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"The image field is required."}, verr.Fields["image"])
	m.posts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPostService_Create_InvalidReferences(t *testing.T) {
	image := &multipart.FileHeader{Filename: "cover.exe", Size: 1024}
	req, ids := validPostRequest(image)
	req.UserID = "not-a-uuid"

	svc, m := newPostService()
	m.categories.On("Exists", mock.Anything, ids[0]).Return(false, nil)
	m.faculties.On("Exists", mock.Anything, ids[2]).Return(true, nil)
	m.images.On("Validate", image).Return(storage.ErrImageType)

	_, err := svc.Create(context.Background(), req)

	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"The selected category id is invalid."}, verr.Fields["category_id"])
	assert.Equal(t, []string{"The user id field must be a valid UUID."}, verr.Fields["user_id"])
	assert.Equal(t, []string{"The image field must be a file of type: jpeg, png, jpg, gif, webp."}, verr.Fields["image"])
	m.users.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
	m.images.AssertNotCalled(t, "Save", mock.Anything)
}

func TestPostService_Create_DiscardsImageOnStoreError(t *testing.T) {
	image := &multipart.FileHeader{Filename: "cover.png", Size: 1024}
	req, ids := validPostRequest(image)

	svc, m := newPostService()
	m.categories.On("Exists", mock.Anything, ids[0]).Return(true, nil)
	m.users.On("Exists", mock.Anything, ids[1]).Return(true, nil)
	m.faculties.On("Exists", mock.Anything, ids[2]).Return(true, nil)
	m.images.On("Validate", image).Return(nil)
	m.images.On("Save", image).Return("images/1.png", nil)
	m.images.On("Delete", "images/1.png").Return(nil)
	m.posts.On("Create", mock.Anything, mock.AnythingOfType("*model.Post")).Return(assert.AnError)

	_, err := svc.Create(context.Background(), req)

	assert.ErrorIs(t, err, assert.AnError)
	m.images.AssertExpectations(t)
}

func TestPostService_Update(t *testing.T) {
	id := uuid.New()
	existing := func() *model.Post {
		return &model.Post{ID: id, Title: "Hello World", Slug: "hello-world", Content: "Body", Image: "images/old.png"}
	}

	t.Run("keeps image when none is sent", func(t *testing.T) {
		svc, m := newPostService()
		post := existing()
		m.posts.On("FindByID", mock.Anything, id).Return(post, nil)
		m.posts.On("Update", mock.Anything, post).Return(nil)

		updated, err := svc.Update(context.Background(), id, UpdatePostRequest{Title: strPtr("Second Title")})

		require.NoError(t, err)
		assert.Equal(t, "second-title", updated.Slug)
		assert.Equal(t, "images/old.png", updated.Image)
		assert.Equal(t, "Body", updated.Content)
		m.images.AssertNotCalled(t, "Delete", mock.Anything)
	})

	t.Run("replaces image and removes the old file", func(t *testing.T) {
		svc, m := newPostService()
		post := existing()
		image := &multipart.FileHeader{Filename: "new.webp", Size: 2048}
		m.posts.On("FindByID", mock.Anything, id).Return(post, nil)
		m.images.On("Validate", image).Return(nil)
		m.images.On("Save", image).Return("images/new.webp", nil)
		m.images.On("Delete", "images/old.png").Return(nil)
		m.posts.On("Update", mock.Anything, post).Return(nil)

		updated, err := svc.Update(context.Background(), id, UpdatePostRequest{Image: image})

		require.NoError(t, err)
		assert.Equal(t, "images/new.webp", updated.Image)
		m.images.AssertExpectations(t)
	})

	t.Run("oversized image is rejected", func(t *testing.T) {
		svc, m := newPostService()
		image := &multipart.FileHeader{Filename: "big.png", Size: storage.MaxImageSize + 1}
		m.posts.On("FindByID", mock.Anything, id).Return(existing(), nil)
		m.images.On("Validate", image).Return(storage.ErrImageTooLarge)

		_, err := svc.Update(context.Background(), id, UpdatePostRequest{Image: image})

		var verr *apperrors.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"The image field must not be greater than 2048 kilobytes."}, verr.Fields["image"])
	})
}

func TestPostService_Delete(t *testing.T) {
	id := uuid.New()
	svc, m := newPostService()
	m.posts.On("FindByID", mock.Anything, id).Return(&model.Post{ID: id, Image: "images/old.png"}, nil)
	m.posts.On("Delete", mock.Anything, id).Return(nil)
	m.images.On("Delete", "images/old.png").Return(nil)

	require.NoError(t, svc.Delete(context.Background(), id))
	m.posts.AssertExpectations(t)
	m.images.AssertExpectations(t)
}

func TestPostService_List(t *testing.T) {
	svc, m := newPostService()
	m.posts.On("List", mock.Anything, 1, model.DefaultPageSize).Return([]model.Post(nil), int64(0), nil)

	result, err := svc.List(context.Background(), 0)

	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.Equal(t, 1, result.Pagination.LastPage)
}
