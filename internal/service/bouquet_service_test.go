package service

import (
	"context"
	"strings"
	"testing"

	"syahi/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBouquetStub(stored *[]*models.Bouquet) *bouquetRepoStub {
	return &bouquetRepoStub{
		createFn: func(_ context.Context, b *models.Bouquet) error {
			*stored = append(*stored, b)
			return nil
		},
		getByIDFn: func(_ context.Context, id string) (*models.Bouquet, error) {
			for _, b := range *stored {
				if b.ID == id {
					return b, nil
				}
			}
			return nil, models.NewNotFoundError("Bouquet", id)
		},
		listPublicFn:   func(_ context.Context, _ int) ([]*models.Bouquet, error) { return nil, nil },
		listBySenderFn: func(_ context.Context, _ string) ([]*models.Bouquet, error) { return nil, nil },
		deleteFn:       func(_ context.Context, _ string) error { return nil },
	}
}

func TestBouquetService_CreateValidation(t *testing.T) {
	var stored []*models.Bouquet
	svc := NewBouquetService(newBouquetStub(&stored), noopCoupletRepo())
	sender := Author{ID: "u1", Username: "florist"}

	tests := []struct {
		name    string
		in      CreateBouquetInput
		wantMsg string
	}{
		{name: "no flowers", in: CreateBouquetInput{Message: "hi"}, wantMsg: "A bouquet needs flowers to bloom"},
		{name: "blank message", in: CreateBouquetInput{Flowers: []string{"rose"}, Message: "  "}, wantMsg: "A bouquet needs words to carry"},
		{name: "unknown flower", in: CreateBouquetInput{Flowers: []string{"rose", "tulip"}, Message: "hi"}, wantMsg: `Unknown flower "tulip"`},
		{name: "too many flowers", in: CreateBouquetInput{Flowers: strings.Fields(strings.Repeat("rose ", 9)), Message: "hi"}, wantMsg: "A bouquet holds at most 8 flowers"},
		{name: "message too long", in: CreateBouquetInput{Flowers: []string{"rose"}, Message: strings.Repeat("a", 501)}, wantMsg: "Message too long (max 500 characters)"},
		{name: "receiver too long", in: CreateBouquetInput{Flowers: []string{"rose"}, Message: "hi", Receiver: strings.Repeat("r", 101)}, wantMsg: "Receiver too long (max 100 characters)"},
		{name: "spotify url too long", in: CreateBouquetInput{Flowers: []string{"rose"}, Message: "hi", SpotifyURL: "https://open.spotify.com/" + strings.Repeat("t", 500)}, wantMsg: "Spotify URL too long (max 500 characters)"},
		{name: "unknown cake", in: CreateBouquetInput{Flowers: []string{"rose"}, Message: "hi", CakeType: "carrot"}, wantMsg: `Unknown cake "carrot"`},
		{name: "dangling couplet", in: CreateBouquetInput{Flowers: []string{"rose"}, Message: "hi", AttachedShayari: "missing"}, wantMsg: "Attached couplet does not exist"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Sender = sender
			_, err := svc.Create(context.Background(), tt.in)
			require.Error(t, err)
			assert.Equal(t, 400, models.StatusFor(err))
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
	assert.Empty(t, stored)
}

func TestBouquetService_CreateDefaults(t *testing.T) {
	var stored []*models.Bouquet
	couplets := noopCoupletRepo()
	couplets.getByIDFn = func(_ context.Context, id string) (*models.Couplet, error) {
		return &models.Couplet{ID: id}, nil
	}
	svc := NewBouquetService(newBouquetStub(&stored), couplets)

	bouquet, err := svc.Create(context.Background(), CreateBouquetInput{
		Sender:          Author{ID: "u1", Username: "florist"},
		Flowers:         []string{"rose", "lily"},
		Message:         " for you ",
		AttachedShayari: "c1",
		CakeType:        "redvelvet",
	})
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.False(t, bouquet.IsPublic)
	assert.Equal(t, models.DefaultReceiver, bouquet.Receiver)
	assert.Equal(t, "for you", bouquet.Message)
	require.NotNil(t, bouquet.AttachedShayariID)
	assert.Equal(t, "c1", *bouquet.AttachedShayariID)
	assert.Equal(t, "florist", bouquet.SenderName)
}

func TestBouquetService_GetAndDelete(t *testing.T) {
	stored := []*models.Bouquet{{ID: "b1", SenderID: "u1"}}
	repo := newBouquetStub(&stored)
	deleted := false
	repo.deleteFn = func(_ context.Context, _ string) error {
		deleted = true
		return nil
	}
	svc := NewBouquetService(repo, noopCoupletRepo())
	ctx := context.Background()

	got, err := svc.Get(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "b1", got.ID)

	_, err = svc.Get(ctx, "nope")
	require.Error(t, err)
	assert.Equal(t, "The bouquet has withered and vanished", err.Error())

	err = svc.Delete(ctx, DeleteBouquetInput{UserID: "u2", BouquetID: "b1"})
	require.Error(t, err)
	assert.Equal(t, "Not authorized to wither this bouquet", err.Error())
	assert.False(t, deleted)

	err = svc.Delete(ctx, DeleteBouquetInput{UserID: "u1", BouquetID: "nope"})
	assert.Equal(t, "Bouquet not found", err.Error())

	require.NoError(t, svc.Delete(ctx, DeleteBouquetInput{UserID: "u1", BouquetID: "b1"}))
	assert.True(t, deleted)
}

func TestBouquetService_ListPublicUsesLimit(t *testing.T) {
	var stored []*models.Bouquet
	repo := newBouquetStub(&stored)
	gotLimit := 0
	repo.listPublicFn = func(_ context.Context, limit int) ([]*models.Bouquet, error) {
		gotLimit = limit
		return nil, nil
	}
	svc := NewBouquetService(repo, noopCoupletRepo())

	list, err := svc.ListPublic(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Equal(t, models.PublicBouquetLimit, gotLimit)
}
