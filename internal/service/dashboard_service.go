package service

import (
	"context"
	"fmt"

	"github.com/rafaelnuansa/faculty-backend/internal/model"
	"github.com/rafaelnuansa/faculty-backend/internal/repository"
)

// DashboardService aggregates counts for the admin landing page.
type DashboardService interface {
	Summary(ctx context.Context) (*model.DashboardSummary, error)
}

type dashboardService struct {
	categories repository.CategoryRepository
	posts      repository.PostRepository
	faculties  repository.FacultyRepository
	users      repository.UserRepository
}

// NewDashboardService builds a DashboardService.
func NewDashboardService(
	categories repository.CategoryRepository,
	posts repository.PostRepository,
	faculties repository.FacultyRepository,
	users repository.UserRepository,
) DashboardService {
	return &dashboardService{categories: categories, posts: posts, faculties: faculties, users: users}
}

func (s *dashboardService) Summary(ctx context.Context) (*model.DashboardSummary, error) {
	var (
		summary model.DashboardSummary
		err     error
	)
	if summary.Categories, err = s.categories.Count(ctx); err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}
	if summary.Posts, err = s.posts.Count(ctx); err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}
	if summary.Faculties, err = s.faculties.Count(ctx); err != nil {
		return nil, fmt.Errorf("count faculties: %w", err)
	}
	if summary.Users, err = s.users.Count(ctx); err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	return &summary, nil
}
