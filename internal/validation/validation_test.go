package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/rafaelnuansa/faculty-backend/internal/errors"
)

type sample struct {
	Name      string  `json:"name" validate:"required,max=5"`
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=6"`
	FacultyID string  `json:"faculty_id" validate:"omitempty,uuid"`
	Title     *string `form:"title" validate:"omitnil,min=1,max=10"`
}

func ptr(s string) *string { return &s }

func TestCheck_Valid(t *testing.T) {
	v := New()
	verr := v.Check(&sample{Name: "abc", Email: "a@b.co", Password: "secret"})
	assert.False(t, verr.HasErrors())
	assert.NoError(t, v.Validate(&sample{Name: "abc", Email: "a@b.co", Password: "secret"}))
}

func TestCheck_FieldMessages(t *testing.T) {
	v := New()
	verr := v.Check(&sample{
		Name:      "too long",
		Email:     "nope",
		Password:  "123",
		FacultyID: "not-a-uuid",
		Title:     ptr(""),
	})

	assert.Equal(t, []string{"The name field must not be greater than 5 characters."}, verr.Fields["name"])
	assert.Equal(t, []string{"The email field must be a valid email address."}, verr.Fields["email"])
	assert.Equal(t, []string{"The password field must be at least 6 characters."}, verr.Fields["password"])
	assert.Equal(t, []string{"The faculty id field must be a valid UUID."}, verr.Fields["faculty_id"])
	assert.Equal(t, []string{"The title field is required."}, verr.Fields["title"])
}

func TestCheck_RequiredAndOmitNil(t *testing.T) {
	v := New()
	verr := v.Check(&sample{})

	assert.Equal(t, []string{"The name field is required."}, verr.Fields["name"])
	assert.True(t, verr.Has("email"))
	assert.True(t, verr.Has("password"))
	assert.False(t, verr.Has("title"))
	assert.False(t, verr.Has("faculty_id"))
}

func TestValidate_ReturnsValidationError(t *testing.T) {
	err := New().Validate(&sample{})
	var verr *apperrors.ValidationError
	assert.ErrorAs(t, err, &verr)
}
