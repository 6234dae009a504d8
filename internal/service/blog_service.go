package service

import (
	"context"

	"syahi/internal/cache"
	"syahi/internal/models"
	"syahi/internal/observability"
	"syahi/internal/refine"
	"syahi/internal/repository"
)

type BlogService struct {
	blogRepo repository.BlogRepository
}

type CreateBlogInput struct {
	Author   Author
	Title    string
	Content  string
	IsPublic *bool
}

type BlogActionInput struct {
	UserID string
	BlogID string
}

func NewBlogService(blogRepo repository.BlogRepository) *BlogService {
	return &BlogService{blogRepo: blogRepo}
}

func (s *BlogService) Create(ctx context.Context, in CreateBlogInput) (*models.Blog, error) {
	title := trimmed(in.Title)
	content := trimmed(in.Content)
	if title == "" || content == "" {
		return nil, models.NewValidationError("Title and content are required")
	}

	if err := maxLen("Title", title, models.MaxTitleLen); err != nil {
		return nil, err
	}

	blog := &models.Blog{
		Title:      title,
		Content:    content,
		AuthorID:   in.Author.ID,
		AuthorName: in.Author.Username,
		IsPublic:   boolOr(in.IsPublic, true),
		Likes:      []string{},
	}
	if err := s.blogRepo.Create(ctx, blog); err != nil {
		return nil, err
	}

	observability.ContentCreated.WithLabelValues("blog").Inc()
	if blog.IsPublic {
		invalidate(ctx, cache.PublicBlogsKey)
	}
	return blog, nil
}

func (s *BlogService) ListPublic(ctx context.Context) ([]*models.Blog, error) {
	return cachedList(ctx, cache.PublicBlogsKey, func() ([]*models.Blog, error) {
		return s.blogRepo.ListPublic(ctx)
	})
}

func (s *BlogService) ListByAuthor(ctx context.Context, authorID string) ([]*models.Blog, error) {
	return s.blogRepo.ListByAuthor(ctx, authorID)
}

func (s *BlogService) owned(ctx context.Context, in BlogActionInput) (*models.Blog, error) {
	blog, err := s.blogRepo.GetByID(ctx, in.BlogID)
	if err != nil {
		if models.IsNotFound(err) {
			return nil, models.NewNotFoundMessage("Blog not found")
		}
		return nil, err
	}
	if blog.AuthorID != in.UserID {
		return nil, models.NewUnauthorizedError("User not authorized to change this blog")
	}
	return blog, nil
}

func (s *BlogService) Delete(ctx context.Context, in BlogActionInput) error {
	if _, err := s.owned(ctx, in); err != nil {
		return err
	}
	if err := s.blogRepo.Delete(ctx, in.BlogID); err != nil {
		return err
	}
	invalidate(ctx, cache.PublicBlogsKey)
	return nil
}

func (s *BlogService) ToggleVisibility(ctx context.Context, in BlogActionInput) (*models.Blog, error) {
	if _, err := s.owned(ctx, in); err != nil {
		return nil, err
	}
	blog, err := s.blogRepo.ToggleVisibility(ctx, in.BlogID)
	if err != nil {
		return nil, err
	}
	invalidate(ctx, cache.PublicBlogsKey)
	return blog, nil
}

func (s *BlogService) ToggleLike(ctx context.Context, in BlogActionInput) (*models.Blog, error) {
	blog, liked, err := s.blogRepo.ToggleLike(ctx, in.BlogID, in.UserID)
	if err != nil {
		if models.IsNotFound(err) {
			return nil, models.NewNotFoundMessage("Blog not found")
		}
		return nil, err
	}
	observability.LikesToggled.WithLabelValues("blog", likeAction(liked)).Inc()
	if blog.IsPublic {
		invalidate(ctx, cache.PublicBlogsKey)
	}
	return blog, nil
}

// Refine runs the fixed substitution pipeline over text. Nothing is stored.
func (s *BlogService) Refine(text string) (string, error) {
	if trimmed(text) == "" {
		return "", models.NewValidationError("Content is required")
	}
	return refine.Refine(text), nil
}
