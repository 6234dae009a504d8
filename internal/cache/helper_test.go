package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	Name string `json:"name"`
}

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() {
		SetClient(nil)
		mr.Close()
	})
	return mr
}

func TestAside_MissThenHit(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	calls := 0
	fetch := func(dest *entry) func() error {
		return func() error {
			calls++
			dest.Name = "rose"
			return nil
		}
	}

	var first entry
	require.NoError(t, Aside(ctx, "k", &first, time.Minute, fetch(&first)))
	assert.Equal(t, "rose", first.Name)
	assert.True(t, mr.Exists("k"))

	var second entry
	require.NoError(t, Aside(ctx, "k", &second, time.Minute, fetch(&second)))
	assert.Equal(t, "rose", second.Name)
	assert.Equal(t, 1, calls)
}

func TestAside_FetchErrorIsNotCached(t *testing.T) {
	mr := setupMiniredis(t)

	var dest entry
	err := Aside(context.Background(), "k", &dest, time.Minute, func() error {
		return errors.New("store down")
	})
	assert.Error(t, err)
	assert.False(t, mr.Exists("k"))
}

func TestAside_WithoutClientAlwaysFetches(t *testing.T) {
	SetClient(nil)

	calls := 0
	for i := 0; i < 2; i++ {
		var dest entry
		require.NoError(t, Aside(context.Background(), "k", &dest, time.Minute, func() error {
			calls++
			return nil
		}))
	}
	assert.Equal(t, 2, calls)
}

func TestAside_RedisDownFailsOpen(t *testing.T) {
	mr := setupMiniredis(t)
	mr.Close()

	var dest entry
	err := Aside(context.Background(), "k", &dest, time.Minute, func() error {
		dest.Name = "lily"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "lily", dest.Name)
}

func TestInvalidate(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, PublicCoupletsKey, []entry{{Name: "a"}}, time.Minute))
	require.NoError(t, SetJSON(ctx, UserKey("u1"), entry{Name: "b"}, time.Minute))

	Invalidate(ctx, PublicCoupletsKey)
	InvalidateUser(ctx, "u1")

	assert.False(t, mr.Exists(PublicCoupletsKey))
	assert.False(t, mr.Exists(UserKey("u1")))
}

func TestMusicSearchKey_Normalizes(t *testing.T) {
	assert.Equal(t, MusicSearchKey("  Tum Hi Ho ", 10), MusicSearchKey("tum hi ho", 10))
	assert.NotEqual(t, MusicSearchKey("tum hi ho", 5), MusicSearchKey("tum hi ho", 10))
}

func TestNewClient_ParsesURL(t *testing.T) {
	c, err := NewClient("redis://localhost:6380/2")
	require.NoError(t, err)
	defer c.Close()
	assert.Equal(t, "localhost:6380", c.Options().Addr)
	assert.Equal(t, 2, c.Options().DB)

	_, err = NewClient("redis://%zz")
	assert.Error(t, err)
}
