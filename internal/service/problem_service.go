package service

import (
	"context"

	"syahi/internal/cache"
	"syahi/internal/models"
	"syahi/internal/observability"
	"syahi/internal/repository"
)

type ProblemService struct {
	problemRepo repository.ProblemRepository
}

type CreateProblemInput struct {
	Author  Author
	Title   string
	Content string
}

type AddAnswerInput struct {
	Author    Author
	ProblemID string
	Content   string
}

type DeleteProblemInput struct {
	UserID    string
	ProblemID string
}

type DeleteAnswerInput struct {
	UserID    string
	ProblemID string
	AnswerID  string
}

func NewProblemService(problemRepo repository.ProblemRepository) *ProblemService {
	return &ProblemService{problemRepo: problemRepo}
}

func (s *ProblemService) Create(ctx context.Context, in CreateProblemInput) (*models.Problem, error) {
	title := trimmed(in.Title)
	content := trimmed(in.Content)
	if title == "" || content == "" {
		return nil, models.NewValidationError("Title and content are required")
	}
	if err := maxLen("Title", title, models.MaxTitleLen); err != nil {
		return nil, err
	}

	problem := &models.Problem{
		Title:      title,
		Content:    content,
		AuthorID:   in.Author.ID,
		AuthorName: in.Author.Username,
		Answers:    []models.Answer{},
	}
	if err := s.problemRepo.Create(ctx, problem); err != nil {
		return nil, err
	}

	observability.ContentCreated.WithLabelValues("problem").Inc()
	invalidate(ctx, cache.ProblemsKey)
	return problem, nil
}

// List returns every problem, newest first. Problems have no private state.
func (s *ProblemService) List(ctx context.Context) ([]*models.Problem, error) {
	return cachedList(ctx, cache.ProblemsKey, func() ([]*models.Problem, error) {
		return s.problemRepo.List(ctx)
	})
}

// AddAnswer appends a solace to the problem and returns the updated problem.
func (s *ProblemService) AddAnswer(ctx context.Context, in AddAnswerInput) (*models.Problem, error) {
	content := trimmed(in.Content)
	if content == "" {
		return nil, models.NewValidationError("Solace must not be empty")
	}

	problem, err := s.problemRepo.AddAnswer(ctx, in.ProblemID, &models.Answer{
		Content:    content,
		AuthorID:   in.Author.ID,
		AuthorName: in.Author.Username,
	})
	if err != nil {
		if models.IsNotFound(err) {
			return nil, models.NewNotFoundMessage("The shard has vanished")
		}
		return nil, err
	}

	observability.ContentCreated.WithLabelValues("answer").Inc()
	invalidate(ctx, cache.ProblemsKey)
	return problem, nil
}

// Delete removes the problem and its answers. Only the problem's author may do so.
func (s *ProblemService) Delete(ctx context.Context, in DeleteProblemInput) error {
	problem, err := s.problemRepo.GetByID(ctx, in.ProblemID)
	if err != nil {
		if models.IsNotFound(err) {
			return models.NewNotFoundMessage("The shard has already vanished")
		}
		return err
	}
	if problem.AuthorID != in.UserID {
		return models.NewUnauthorizedError("User not authorized to remove this shard")
	}

	if err := s.problemRepo.Delete(ctx, in.ProblemID); err != nil {
		return err
	}
	invalidate(ctx, cache.ProblemsKey)
	return nil
}

// DeleteAnswer removes one answer. Only that answer's author may do so; the
// problem's author has no say over other people's answers.
func (s *ProblemService) DeleteAnswer(ctx context.Context, in DeleteAnswerInput) (*models.Problem, error) {
	problem, err := s.problemRepo.GetByID(ctx, in.ProblemID)
	if err != nil {
		if models.IsNotFound(err) {
			return nil, models.NewNotFoundMessage("The shard has vanished")
		}
		return nil, err
	}

	answer := problem.FindAnswer(in.AnswerID)
	if answer == nil {
		return nil, models.NewNotFoundMessage("Solace not found")
	}
	if answer.AuthorID != in.UserID {
		return nil, models.NewUnauthorizedError("User not authorized to remove this comfort")
	}

	updated, err := s.problemRepo.RemoveAnswer(ctx, in.ProblemID, in.AnswerID)
	if err != nil {
		if models.IsNotFound(err) {
			return nil, models.NewNotFoundMessage("Solace not found")
		}
		return nil, err
	}
	invalidate(ctx, cache.ProblemsKey)
	return updated, nil
}
