package server

import (
	"net/http"
	"testing"

	"syahi/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogLifecycle(t *testing.T) {
	env := newTestEnv(t, nil, nil, nil)
	owner := env.register(t, "mira")
	reader := env.register(t, "ghalib")

	var out models.ErrorResponse
	status := env.do(t, http.MethodPost, "/api/blogs", owner.Token, map[string]any{"content": "no title"}, &out)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Title and content are required", out.Message)

	var blog models.Blog
	status = env.do(t, http.MethodPost, "/api/blogs", owner.Token, map[string]any{
		"title":   "Letters",
		"content": "on writing letters nobody reads",
	}, &blog)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Letters", blog.Title)
	assert.True(t, blog.IsPublic)

	var public []models.Blog
	require.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/api/blogs", "", nil, &public))
	assert.Len(t, public, 1)

	var liked models.Blog
	require.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/api/blogs/"+blog.ID+"/like", reader.Token, nil, &liked))
	assert.Contains(t, liked.Likes, reader.ID)

	var hidden models.Blog
	require.Equal(t, http.StatusOK, env.do(t, http.MethodPatch, "/api/blogs/"+blog.ID+"/visibility", owner.Token, nil, &hidden))
	assert.False(t, hidden.IsPublic)
	assert.Contains(t, hidden.Likes, reader.ID)

	public = nil
	env.do(t, http.MethodGet, "/api/blogs", "", nil, &public)
	assert.Empty(t, public)

	var mine []models.Blog
	env.do(t, http.MethodGet, "/api/blogs/mine", owner.Token, nil, &mine)
	assert.Len(t, mine, 1)

	assert.Equal(t, http.StatusUnauthorized, env.do(t, http.MethodDelete, "/api/blogs/"+blog.ID, reader.Token, nil, nil))
	assert.Equal(t, http.StatusOK, env.do(t, http.MethodDelete, "/api/blogs/"+blog.ID, owner.Token, nil, nil))
	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodDelete, "/api/blogs/"+blog.ID, owner.Token, nil, nil))
}

func TestRefineBlog(t *testing.T) {
	env := newTestEnv(t, nil, nil, nil)
	user := env.register(t, "mira")

	var out struct {
		Refined string `json:"refined"`
	}
	status := env.do(t, http.MethodPost, "/api/blogs/refine", user.Token, map[string]string{
		"content": "i dont know  why .",
	}, &out)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "I don't know why.", out.Refined)

	status = env.do(t, http.MethodPost, "/api/blogs/refine", user.Token, map[string]string{"content": "  "}, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status = env.do(t, http.MethodPost, "/api/blogs/refine", "", map[string]string{"content": "text"}, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}
