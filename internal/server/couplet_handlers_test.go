package server

import (
	"context"
	"net/http"
	"testing"

	"syahi/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoupletLifecycle(t *testing.T) {
	env := newTestEnv(t, nil, nil, nil)
	owner := env.register(t, "mira")
	reader := env.register(t, "ghalib")

	var created models.Couplet
	status := env.do(t, http.MethodPost, "/api/couplets", owner.Token, map[string]any{
		"content": "  the moon forgets the sea  ",
	}, &created)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "the moon forgets the sea", created.Content)
	assert.Equal(t, owner.ID, created.AuthorID)
	assert.Equal(t, "mira", created.AuthorName)
	assert.True(t, created.IsPublic)
	assert.Empty(t, created.Likes)

	var private models.Couplet
	status = env.do(t, http.MethodPost, "/api/couplets", owner.Token, map[string]any{
		"content":  "kept for myself",
		"isPublic": false,
	}, &private)
	require.Equal(t, http.StatusCreated, status)
	assert.False(t, private.IsPublic)

	var public []models.Couplet
	require.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/api/couplets", "", nil, &public))
	require.Len(t, public, 1)
	assert.Equal(t, created.ID, public[0].ID)

	var mine []models.Couplet
	require.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/api/couplets/mine", owner.Token, nil, &mine))
	assert.Len(t, mine, 2)

	t.Run("non-owner cannot toggle visibility", func(t *testing.T) {
		var out models.ErrorResponse
		status := env.do(t, http.MethodPatch, "/api/couplets/"+private.ID+"/visibility", reader.Token, nil, &out)
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, models.CodeUnauthorized, out.Code)
	})

	t.Run("owner toggles visibility", func(t *testing.T) {
		var out models.Couplet
		status := env.do(t, http.MethodPatch, "/api/couplets/"+private.ID+"/visibility", owner.Token, nil, &out)
		require.Equal(t, http.StatusOK, status)
		assert.True(t, out.IsPublic)

		var public []models.Couplet
		env.do(t, http.MethodGet, "/api/couplets", "", nil, &public)
		assert.Len(t, public, 2)
	})

	t.Run("like toggles", func(t *testing.T) {
		var liked models.Couplet
		require.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/api/couplets/"+created.ID+"/like", reader.Token, nil, &liked))
		assert.Equal(t, []string{reader.ID}, liked.Likes)

		var unliked models.Couplet
		require.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/api/couplets/"+created.ID+"/like", reader.Token, nil, &unliked))
		assert.Empty(t, unliked.Likes)
	})

	t.Run("like on missing couplet", func(t *testing.T) {
		var out models.ErrorResponse
		status := env.do(t, http.MethodPost, "/api/couplets/missing/like", reader.Token, nil, &out)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "Couplet not found", out.Message)
	})

	t.Run("non-owner cannot delete", func(t *testing.T) {
		status := env.do(t, http.MethodDelete, "/api/couplets/"+created.ID, reader.Token, nil, nil)
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("owner deletes", func(t *testing.T) {
		var out models.DeleteConfirmation
		require.Equal(t, http.StatusOK, env.do(t, http.MethodDelete, "/api/couplets/"+created.ID, owner.Token, nil, &out))
		assert.NotEmpty(t, out.Message)

		status := env.do(t, http.MethodDelete, "/api/couplets/"+created.ID, owner.Token, nil, nil)
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestCreateCoupletRequiresContent(t *testing.T) {
	env := newTestEnv(t, nil, nil, nil)
	user := env.register(t, "mira")

	var out models.ErrorResponse
	status := env.do(t, http.MethodPost, "/api/couplets", user.Token, map[string]any{"content": "   "}, &out)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Content is required", out.Message)

	var mine []models.Couplet
	require.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/api/couplets/mine", user.Token, nil, &mine))
	assert.Empty(t, mine)
}

func TestPrivateCoupletScenario(t *testing.T) {
	env := newTestEnv(t, nil, nil, nil)
	a := env.register(t, "poet_a")

	var private models.Couplet
	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/api/couplets", a.Token,
		map[string]any{"content": "silence speaks", "isPublic": false}, &private))

	var public []models.Couplet
	require.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/api/couplets", "", nil, &public))
	assert.Empty(t, public)

	var mine []models.Couplet
	require.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/api/couplets/mine", a.Token, nil, &mine))
	require.Len(t, mine, 1)
	assert.Equal(t, "silence speaks", mine[0].Content)

	var out models.ErrorResponse
	assert.Equal(t, http.StatusUnauthorized, env.do(t, http.MethodGet, "/api/couplets/mine", "", nil, &out))
	assert.Equal(t, models.CodeUnauthenticated, out.Code)
}

func TestFailedDeleteLeavesCoupletInPlace(t *testing.T) {
	env := newTestEnv(t, nil, nil, nil)
	owner := env.register(t, "mira")
	intruder := env.register(t, "ghalib")

	var couplet models.Couplet
	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/api/couplets", owner.Token,
		map[string]any{"content": "still here"}, &couplet))

	var out models.ErrorResponse
	require.Equal(t, http.StatusUnauthorized, env.do(t, http.MethodDelete, "/api/couplets/"+couplet.ID, intruder.Token, nil, &out))
	assert.Equal(t, models.CodeUnauthorized, out.Code)

	stored, err := env.store.Couplets.GetByID(context.Background(), couplet.ID)
	require.NoError(t, err)
	assert.Equal(t, "still here", stored.Content)
}

func TestVisibilityToggleTwiceRestores(t *testing.T) {
	env := newTestEnv(t, nil, nil, nil)
	owner := env.register(t, "mira")

	var couplet models.Couplet
	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/api/couplets", owner.Token,
		map[string]any{"content": "back and forth"}, &couplet))

	var toggled models.Couplet
	env.do(t, http.MethodPatch, "/api/couplets/"+couplet.ID+"/visibility", owner.Token, nil, &toggled)
	assert.False(t, toggled.IsPublic)
	env.do(t, http.MethodPatch, "/api/couplets/"+couplet.ID+"/visibility", owner.Token, nil, &toggled)
	assert.Equal(t, couplet.IsPublic, toggled.IsPublic)
}
