package server

import (
	"syahi/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPublicCouplets handles GET /api/couplets
func (s *Server) GetPublicCouplets(c *fiber.Ctx) error {
	couplets, err := s.coupletService.ListPublic(c.UserContext())
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(couplets)
}

// GetMyCouplets handles GET /api/couplets/mine
func (s *Server) GetMyCouplets(c *fiber.Ctx) error {
	couplets, err := s.coupletService.ListByAuthor(c.UserContext(), userID(c))
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(couplets)
}

// CreateCouplet handles POST /api/couplets
func (s *Server) CreateCouplet(c *fiber.Ctx) error {
	var req struct {
		Content  string `json:"content"`
		IsPublic *bool  `json:"isPublic"`
	}
	if !parseBody(c, &req) {
		return nil
	}

	couplet, err := s.coupletService.Create(c.UserContext(), service.CreateCoupletInput{
		Author:   author(c),
		Content:  req.Content,
		IsPublic: req.IsPublic,
	})
	if err != nil {
		return respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(couplet)
}

func coupletAction(c *fiber.Ctx) service.CoupletActionInput {
	return service.CoupletActionInput{UserID: userID(c), CoupletID: c.Params("id")}
}

// DeleteCouplet handles DELETE /api/couplets/:id
func (s *Server) DeleteCouplet(c *fiber.Ctx) error {
	if err := s.coupletService.Delete(c.UserContext(), coupletAction(c)); err != nil {
		return respond(c, err)
	}
	return deleted(c, "Couplet removed")
}

// ToggleCoupletVisibility handles PATCH /api/couplets/:id/visibility
func (s *Server) ToggleCoupletVisibility(c *fiber.Ctx) error {
	couplet, err := s.coupletService.ToggleVisibility(c.UserContext(), coupletAction(c))
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(couplet)
}

// ToggleCoupletLike handles POST /api/couplets/:id/like
func (s *Server) ToggleCoupletLike(c *fiber.Ctx) error {
	couplet, err := s.coupletService.ToggleLike(c.UserContext(), coupletAction(c))
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(couplet)
}
