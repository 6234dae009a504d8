package repository

import (
	"context"
	"time"

	"syahi/internal/database"
	"syahi/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// mongoProblemRepository stores answers embedded in their problem document.
type mongoProblemRepository struct {
	col *mongo.Collection
}

// NewMongoProblemRepository creates a problem repository over the problems collection
func NewMongoProblemRepository(db *mongo.Database) ProblemRepository {
	return &mongoProblemRepository{col: db.Collection(database.ProblemsCollection)}
}

func normalizeAnswers(p *models.Problem) *models.Problem {
	if p.Answers == nil {
		p.Answers = []models.Answer{}
	}
	for i := range p.Answers {
		p.Answers[i].ProblemID = p.ID
		p.Answers[i].Position = i + 1
	}
	return p
}

func (r *mongoProblemRepository) Create(ctx context.Context, problem *models.Problem) error {
	defer track(backendMongo, "problems.create")()
	if problem.ID == "" {
		problem.ID = models.NewID()
	}
	if problem.CreatedAt.IsZero() {
		problem.CreatedAt = time.Now().UTC()
	}
	normalizeAnswers(problem)
	_, err := r.col.InsertOne(ctx, problem)
	return translateMongo(err, "Problem", problem.ID)
}

func (r *mongoProblemRepository) GetByID(ctx context.Context, id string) (*models.Problem, error) {
	defer track(backendMongo, "problems.get")()
	problem, err := findByID[models.Problem](ctx, r.col, id)
	if err != nil {
		return nil, translateMongo(err, "Problem", id)
	}
	return normalizeAnswers(problem), nil
}

func (r *mongoProblemRepository) List(ctx context.Context) ([]*models.Problem, error) {
	defer track(backendMongo, "problems.list")()
	problems, err := findAll[models.Problem](ctx, r.col, bson.M{}, 0)
	if err != nil {
		return nil, translateMongo(err, "Problem", "")
	}
	for _, p := range problems {
		normalizeAnswers(p)
	}
	return problems, nil
}

// Delete removes the problem document; its embedded answers go with it.
func (r *mongoProblemRepository) Delete(ctx context.Context, id string) error {
	defer track(backendMongo, "problems.delete")()
	return translateMongo(deleteByID(ctx, r.col, id), "Problem", id)
}

func (r *mongoProblemRepository) AddAnswer(ctx context.Context, problemID string, answer *models.Answer) (*models.Problem, error) {
	defer track(backendMongo, "problems.add_answer")()
	if answer.ID == "" {
		answer.ID = models.NewID()
	}
	if answer.CreatedAt.IsZero() {
		answer.CreatedAt = time.Now().UTC()
	}
	answer.ProblemID = problemID

	var problem models.Problem
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": problemID},
		bson.M{"$push": bson.M{"answers": answer}},
		returnAfter(),
	).Decode(&problem)
	if err != nil {
		return nil, translateMongo(err, "Problem", problemID)
	}
	return normalizeAnswers(&problem), nil
}

func (r *mongoProblemRepository) RemoveAnswer(ctx context.Context, problemID, answerID string) (*models.Problem, error) {
	defer track(backendMongo, "problems.remove_answer")()
	var problem models.Problem
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": problemID, "answers._id": answerID},
		bson.M{"$pull": bson.M{"answers": bson.M{"_id": answerID}}},
		returnAfter(),
	).Decode(&problem)
	if err != nil {
		return nil, translateMongo(err, "Answer", answerID)
	}
	return normalizeAnswers(&problem), nil
}
