package server

import (
	"syahi/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPublicBlogs handles GET /api/blogs
func (s *Server) GetPublicBlogs(c *fiber.Ctx) error {
	blogs, err := s.blogService.ListPublic(c.UserContext())
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(blogs)
}

// GetMyBlogs handles GET /api/blogs/mine
func (s *Server) GetMyBlogs(c *fiber.Ctx) error {
	blogs, err := s.blogService.ListByAuthor(c.UserContext(), userID(c))
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(blogs)
}

// CreateBlog handles POST /api/blogs
func (s *Server) CreateBlog(c *fiber.Ctx) error {
	var req struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		IsPublic *bool  `json:"isPublic"`
	}
	if !parseBody(c, &req) {
		return nil
	}

	blog, err := s.blogService.Create(c.UserContext(), service.CreateBlogInput{
		Author:   author(c),
		Title:    req.Title,
		Content:  req.Content,
		IsPublic: req.IsPublic,
	})
	if err != nil {
		return respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(blog)
}

// RefineBlog handles POST /api/blogs/refine. The result is not stored.
func (s *Server) RefineBlog(c *fiber.Ctx) error {
	var req struct {
		Content string `json:"content"`
	}
	if !parseBody(c, &req) {
		return nil
	}

	refined, err := s.blogService.Refine(req.Content)
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(fiber.Map{"refined": refined})
}

func blogAction(c *fiber.Ctx) service.BlogActionInput {
	return service.BlogActionInput{UserID: userID(c), BlogID: c.Params("id")}
}

// DeleteBlog handles DELETE /api/blogs/:id
func (s *Server) DeleteBlog(c *fiber.Ctx) error {
	if err := s.blogService.Delete(c.UserContext(), blogAction(c)); err != nil {
		return respond(c, err)
	}
	return deleted(c, "Blog removed")
}

// ToggleBlogVisibility handles PATCH /api/blogs/:id/visibility
func (s *Server) ToggleBlogVisibility(c *fiber.Ctx) error {
	blog, err := s.blogService.ToggleVisibility(c.UserContext(), blogAction(c))
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(blog)
}

// ToggleBlogLike handles POST /api/blogs/:id/like
func (s *Server) ToggleBlogLike(c *fiber.Ctx) error {
	blog, err := s.blogService.ToggleLike(c.UserContext(), blogAction(c))
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(blog)
}
