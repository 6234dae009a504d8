// Package seed provides helpers to create demo data for development and
// testing. Everything is written through the repository interfaces, so the
// same seeder fills either store backend.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"syahi/internal/auth"
	"syahi/internal/models"
	"syahi/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
)

// DefaultPassword is shared by every seeded account.
const DefaultPassword = "password123"

var (
	flowerKinds = []string{
		models.FlowerRose, models.FlowerLily, models.FlowerSunflower,
		models.FlowerLotus, models.FlowerJasmine,
	}
	cakeKinds = []string{
		"", models.CakeClassic, models.CakeChocolate, models.CakeVanilla,
		models.CakeRedVelvet, models.CakeStrawberry, models.CakeButterscotch,
	}
)

// Factory builds documents with fake content and persists them.
type Factory struct {
	store        *repository.Store
	rng          *rand.Rand
	passwordHash string
	maxDays      int
}

// NewFactory creates a Factory bound to store. A zero seed picks one from the clock.
func NewFactory(store *repository.Store, seed int64) (*Factory, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gofakeit.Seed(seed)

	// Hash once; bcrypt per user would dominate seeding time.
	hash, err := auth.HashPassword(DefaultPassword)
	if err != nil {
		return nil, err
	}
	return &Factory{
		store:        store,
		rng:          rand.New(rand.NewSource(seed)),
		passwordHash: hash,
		maxDays:      60,
	}, nil
}

func (f *Factory) createdAt() time.Time {
	back := time.Duration(f.rng.Intn(f.maxDays*24*60)) * time.Minute
	return time.Now().UTC().Add(-back)
}

func (f *Factory) username() string {
	name := strings.ToLower(gofakeit.Username())
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '.':
			return r
		}
		return -1
	}, name)
	if len(name) > 24 {
		name = name[:24]
	}
	return fmt.Sprintf("%s%d", name, gofakeit.Number(100, 999))
}

// CreateUser persists a user with DefaultPassword.
func (f *Factory) CreateUser(ctx context.Context, overrides ...func(*models.User)) (*models.User, error) {
	username := f.username()
	user := &models.User{
		Username:  username,
		Email:     username + "@" + gofakeit.DomainName(),
		Password:  f.passwordHash,
		CreatedAt: f.createdAt(),
	}
	for _, override := range overrides {
		override(user)
	}
	if err := f.store.Users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (f *Factory) verse() string {
	return gofakeit.Sentence(6+f.rng.Intn(4)) + "\n" + gofakeit.Sentence(6+f.rng.Intn(4))
}

// CreateCouplet persists a two-line couplet by author. Most are public.
func (f *Factory) CreateCouplet(ctx context.Context, author *models.User) (*models.Couplet, error) {
	couplet := &models.Couplet{
		Content:    f.verse(),
		AuthorID:   author.ID,
		AuthorName: author.Username,
		IsPublic:   f.rng.Intn(5) > 0,
		CreatedAt:  f.createdAt(),
	}
	if err := f.store.Couplets.Create(ctx, couplet); err != nil {
		return nil, err
	}
	return couplet, nil
}

// CreateBlog persists a titled post by author.
func (f *Factory) CreateBlog(ctx context.Context, author *models.User) (*models.Blog, error) {
	blog := &models.Blog{
		Title:      strings.TrimSuffix(gofakeit.Sentence(4), "."),
		Content:    gofakeit.Paragraph(2, 4, 12, "\n\n"),
		AuthorID:   author.ID,
		AuthorName: author.Username,
		IsPublic:   f.rng.Intn(4) > 0,
		CreatedAt:  f.createdAt(),
	}
	if err := f.store.Blogs.Create(ctx, blog); err != nil {
		return nil, err
	}
	return blog, nil
}

// CreateProblem persists a problem by author and answers it from helpers.
func (f *Factory) CreateProblem(ctx context.Context, author *models.User, helpers []*models.User) (*models.Problem, error) {
	problem := &models.Problem{
		Title:      strings.TrimSuffix(gofakeit.Question(), "?"),
		Content:    gofakeit.Paragraph(1, 3, 10, " "),
		AuthorID:   author.ID,
		AuthorName: author.Username,
		CreatedAt:  f.createdAt(),
	}
	if err := f.store.Problems.Create(ctx, problem); err != nil {
		return nil, err
	}

	answers := 0
	if len(helpers) > 0 {
		answers = f.rng.Intn(4)
	}
	for i := 0; i < answers; i++ {
		helper := helpers[f.rng.Intn(len(helpers))]
		updated, err := f.store.Problems.AddAnswer(ctx, problem.ID, &models.Answer{
			Content:    gofakeit.Sentence(8 + f.rng.Intn(8)),
			AuthorID:   helper.ID,
			AuthorName: helper.Username,
		})
		if err != nil {
			return nil, err
		}
		problem = updated
	}
	return problem, nil
}

// CreateBouquet persists a bouquet from sender, attaching one of couplets when given.
func (f *Factory) CreateBouquet(ctx context.Context, sender *models.User, couplets []*models.Couplet) (*models.Bouquet, error) {
	flowers := make([]string, 1+f.rng.Intn(models.MaxBouquetFlowers))
	for i := range flowers {
		flowers[i] = flowerKinds[f.rng.Intn(len(flowerKinds))]
	}

	bouquet := &models.Bouquet{
		Flowers:    flowers,
		Message:    gofakeit.Sentence(10 + f.rng.Intn(10)),
		SenderID:   sender.ID,
		SenderName: sender.Username,
		Receiver:   gofakeit.FirstName(),
		IsPublic:   f.rng.Intn(2) == 0,
		CakeType:   cakeKinds[f.rng.Intn(len(cakeKinds))],
		CreatedAt:  f.createdAt(),
	}
	if f.rng.Intn(3) == 0 {
		bouquet.MusicData = &models.MusicData{
			Title:  gofakeit.AppName(),
			Artist: gofakeit.Name(),
		}
	}
	if len(couplets) > 0 && f.rng.Intn(2) == 0 {
		id := couplets[f.rng.Intn(len(couplets))].ID
		bouquet.AttachedShayariID = &id
	}

	if err := f.store.Bouquets.Create(ctx, bouquet); err != nil {
		return nil, err
	}
	return bouquet, nil
}

// CreateFlower persists a single flower from sender.
func (f *Factory) CreateFlower(ctx context.Context, sender *models.User) (*models.Flower, error) {
	content := gofakeit.Sentence(6)
	if len(content) > models.MaxFlowerContentLen {
		content = content[:models.MaxFlowerContentLen]
	}
	flower := &models.Flower{
		Content:    content,
		FlowerType: flowerKinds[f.rng.Intn(len(flowerKinds))],
		SenderID:   sender.ID,
		SenderName: sender.Username,
		Receiver:   models.DefaultReceiver,
		CreatedAt:  f.createdAt(),
	}
	if err := f.store.Flowers.Create(ctx, flower); err != nil {
		return nil, err
	}
	return flower, nil
}
