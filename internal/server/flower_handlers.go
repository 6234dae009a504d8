package server

import (
	"syahi/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetFlowers handles GET /api/flowers
func (s *Server) GetFlowers(c *fiber.Ctx) error {
	flowers, err := s.flowerService.List(c.UserContext())
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(flowers)
}

// CreateFlower handles POST /api/flowers
func (s *Server) CreateFlower(c *fiber.Ctx) error {
	var req struct {
		Content    string `json:"content"`
		FlowerType string `json:"flowerType"`
		Receiver   string `json:"receiver"`
	}
	if !parseBody(c, &req) {
		return nil
	}

	flower, err := s.flowerService.Create(c.UserContext(), service.CreateFlowerInput{
		Sender:     author(c),
		Content:    req.Content,
		FlowerType: req.FlowerType,
		Receiver:   req.Receiver,
	})
	if err != nil {
		return respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(flower)
}

// DeleteFlower handles DELETE /api/flowers/:id
func (s *Server) DeleteFlower(c *fiber.Ctx) error {
	err := s.flowerService.Delete(c.UserContext(), service.DeleteFlowerInput{
		UserID:   userID(c),
		FlowerID: c.Params("id"),
	})
	if err != nil {
		return respond(c, err)
	}
	return deleted(c, "The flower has been removed from the garden")
}
