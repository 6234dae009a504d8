package repository

import (
	"context"
	"time"

	"syahi/internal/models"

	"gorm.io/gorm"
)

// problemRepository implements ProblemRepository
type problemRepository struct {
	db *gorm.DB
}

// NewProblemRepository creates a new problem repository
func NewProblemRepository(db *gorm.DB) ProblemRepository {
	return &problemRepository{db: db}
}

func preloadAnswers(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func (r *problemRepository) Create(ctx context.Context, problem *models.Problem) error {
	defer track(backendSQL, "problems.create")()
	if problem.ID == "" {
		problem.ID = models.NewID()
	}
	if problem.CreatedAt.IsZero() {
		problem.CreatedAt = time.Now().UTC()
	}
	if err := r.db.WithContext(ctx).Omit("Answers").Create(problem).Error; err != nil {
		return translate(err, "Problem", problem.ID)
	}
	if problem.Answers == nil {
		problem.Answers = []models.Answer{}
	}
	return nil
}

func (r *problemRepository) GetByID(ctx context.Context, id string) (*models.Problem, error) {
	defer track(backendSQL, "problems.get")()
	return r.get(r.db.WithContext(ctx), id)
}

func (r *problemRepository) get(db *gorm.DB, id string) (*models.Problem, error) {
	var problem models.Problem
	if err := db.Preload("Answers", preloadAnswers).First(&problem, "id = ?", id).Error; err != nil {
		return nil, translate(err, "Problem", id)
	}
	if problem.Answers == nil {
		problem.Answers = []models.Answer{}
	}
	return &problem, nil
}

func (r *problemRepository) List(ctx context.Context) ([]*models.Problem, error) {
	defer track(backendSQL, "problems.list")()
	var problems []*models.Problem
	err := r.db.WithContext(ctx).
		Preload("Answers", preloadAnswers).
		Order("created_at DESC").
		Find(&problems).Error
	if err != nil {
		return nil, translate(err, "Problem", "")
	}
	for _, p := range problems {
		if p.Answers == nil {
			p.Answers = []models.Answer{}
		}
	}
	return problems, nil
}

// Delete removes the problem and every answer it owns in one transaction.
func (r *problemRepository) Delete(ctx context.Context, id string) error {
	defer track(backendSQL, "problems.delete")()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("problem_id = ?", id).Delete(&models.Answer{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Problem{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return translate(err, "Problem", id)
}

// AddAnswer appends answer after the problem's current last answer.
func (r *problemRepository) AddAnswer(ctx context.Context, problemID string, answer *models.Answer) (*models.Problem, error) {
	defer track(backendSQL, "problems.add_answer")()
	if answer.ID == "" {
		answer.ID = models.NewID()
	}
	if answer.CreatedAt.IsZero() {
		answer.CreatedAt = time.Now().UTC()
	}
	answer.ProblemID = problemID

	var problem *models.Problem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Problem{}).Where("id = ?", problemID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}

		var last struct{ Max *int }
		if err := tx.Model(&models.Answer{}).
			Select("MAX(position) AS max").
			Where("problem_id = ?", problemID).
			Scan(&last).Error; err != nil {
			return err
		}
		answer.Position = 1
		if last.Max != nil {
			answer.Position = *last.Max + 1
		}
		if err := tx.Create(answer).Error; err != nil {
			return err
		}

		var err error
		problem, err = r.get(tx, problemID)
		return err
	})
	if err != nil {
		return nil, translate(err, "Problem", problemID)
	}
	return problem, nil
}

func (r *problemRepository) RemoveAnswer(ctx context.Context, problemID, answerID string) (*models.Problem, error) {
	defer track(backendSQL, "problems.remove_answer")()
	var problem *models.Problem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND problem_id = ?", answerID, problemID).Delete(&models.Answer{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		var err error
		problem, err = r.get(tx, problemID)
		return err
	})
	if err != nil {
		return nil, translate(err, "Answer", answerID)
	}
	return problem, nil
}
