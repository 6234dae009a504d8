package service

import (
	"context"

	"syahi/internal/models"

	"github.com/stretchr/testify/mock"
)

// coupletRepoStub is a stub for repository.CoupletRepository.
type coupletRepoStub struct {
	createFn           func(context.Context, *models.Couplet) error
	getByIDFn          func(context.Context, string) (*models.Couplet, error)
	listPublicFn       func(context.Context) ([]*models.Couplet, error)
	listByAuthorFn     func(context.Context, string) ([]*models.Couplet, error)
	deleteFn           func(context.Context, string) error
	toggleVisibilityFn func(context.Context, string) (*models.Couplet, error)
	toggleLikeFn       func(context.Context, string, string) (*models.Couplet, bool, error)
}

func (s *coupletRepoStub) Create(ctx context.Context, c *models.Couplet) error {
	return s.createFn(ctx, c)
}
func (s *coupletRepoStub) GetByID(ctx context.Context, id string) (*models.Couplet, error) {
	return s.getByIDFn(ctx, id)
}
func (s *coupletRepoStub) ListPublic(ctx context.Context) ([]*models.Couplet, error) {
	return s.listPublicFn(ctx)
}
func (s *coupletRepoStub) ListByAuthor(ctx context.Context, authorID string) ([]*models.Couplet, error) {
	return s.listByAuthorFn(ctx, authorID)
}
func (s *coupletRepoStub) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}
func (s *coupletRepoStub) ToggleVisibility(ctx context.Context, id string) (*models.Couplet, error) {
	return s.toggleVisibilityFn(ctx, id)
}
func (s *coupletRepoStub) ToggleLike(ctx context.Context, id, userID string) (*models.Couplet, bool, error) {
	return s.toggleLikeFn(ctx, id, userID)
}

func noopCoupletRepo() *coupletRepoStub {
	return &coupletRepoStub{
		createFn:       func(_ context.Context, _ *models.Couplet) error { return nil },
		getByIDFn:      func(_ context.Context, id string) (*models.Couplet, error) { return nil, models.NewNotFoundError("Couplet", id) },
		listPublicFn:   func(_ context.Context) ([]*models.Couplet, error) { return nil, nil },
		listByAuthorFn: func(_ context.Context, _ string) ([]*models.Couplet, error) { return nil, nil },
		deleteFn:       func(_ context.Context, _ string) error { return nil },
		toggleVisibilityFn: func(_ context.Context, id string) (*models.Couplet, error) {
			return &models.Couplet{ID: id}, nil
		},
		toggleLikeFn: func(_ context.Context, id, _ string) (*models.Couplet, bool, error) {
			return &models.Couplet{ID: id}, true, nil
		},
	}
}

// problemRepoStub is a stub for repository.ProblemRepository.
type problemRepoStub struct {
	createFn       func(context.Context, *models.Problem) error
	getByIDFn      func(context.Context, string) (*models.Problem, error)
	listFn         func(context.Context) ([]*models.Problem, error)
	deleteFn       func(context.Context, string) error
	addAnswerFn    func(context.Context, string, *models.Answer) (*models.Problem, error)
	removeAnswerFn func(context.Context, string, string) (*models.Problem, error)
}

func (s *problemRepoStub) Create(ctx context.Context, p *models.Problem) error {
	return s.createFn(ctx, p)
}
func (s *problemRepoStub) GetByID(ctx context.Context, id string) (*models.Problem, error) {
	return s.getByIDFn(ctx, id)
}
func (s *problemRepoStub) List(ctx context.Context) ([]*models.Problem, error) {
	return s.listFn(ctx)
}
func (s *problemRepoStub) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}
func (s *problemRepoStub) AddAnswer(ctx context.Context, problemID string, a *models.Answer) (*models.Problem, error) {
	return s.addAnswerFn(ctx, problemID, a)
}
func (s *problemRepoStub) RemoveAnswer(ctx context.Context, problemID, answerID string) (*models.Problem, error) {
	return s.removeAnswerFn(ctx, problemID, answerID)
}

// bouquetRepoStub is a stub for repository.BouquetRepository.
type bouquetRepoStub struct {
	createFn       func(context.Context, *models.Bouquet) error
	getByIDFn      func(context.Context, string) (*models.Bouquet, error)
	listPublicFn   func(context.Context, int) ([]*models.Bouquet, error)
	listBySenderFn func(context.Context, string) ([]*models.Bouquet, error)
	deleteFn       func(context.Context, string) error
}

func (s *bouquetRepoStub) Create(ctx context.Context, b *models.Bouquet) error {
	return s.createFn(ctx, b)
}
func (s *bouquetRepoStub) GetByID(ctx context.Context, id string) (*models.Bouquet, error) {
	return s.getByIDFn(ctx, id)
}
func (s *bouquetRepoStub) ListPublic(ctx context.Context, limit int) ([]*models.Bouquet, error) {
	return s.listPublicFn(ctx, limit)
}
func (s *bouquetRepoStub) ListBySender(ctx context.Context, senderID string) ([]*models.Bouquet, error) {
	return s.listBySenderFn(ctx, senderID)
}
func (s *bouquetRepoStub) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

// flowerRepoStub is a stub for repository.FlowerRepository.
type flowerRepoStub struct {
	createFn  func(context.Context, *models.Flower) error
	getByIDFn func(context.Context, string) (*models.Flower, error)
	listFn    func(context.Context, int) ([]*models.Flower, error)
	deleteFn  func(context.Context, string) error
}

func (s *flowerRepoStub) Create(ctx context.Context, f *models.Flower) error {
	return s.createFn(ctx, f)
}
func (s *flowerRepoStub) GetByID(ctx context.Context, id string) (*models.Flower, error) {
	return s.getByIDFn(ctx, id)
}
func (s *flowerRepoStub) List(ctx context.Context, limit int) ([]*models.Flower, error) {
	return s.listFn(ctx, limit)
}
func (s *flowerRepoStub) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
