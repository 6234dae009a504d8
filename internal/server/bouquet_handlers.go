package server

import (
	"syahi/internal/models"
	"syahi/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createBouquetRequest struct {
	Flowers         []string          `json:"flowers"`
	Message         string            `json:"message"`
	Receiver        string            `json:"receiver"`
	AttachedShayari string            `json:"attachedShayari"`
	IsPublic        *bool             `json:"isPublic"`
	SpotifyURL      string            `json:"spotifyUrl"`
	MusicData       *models.MusicData `json:"musicData"`
	CakeType        string            `json:"cakeType"`
}

// CreateBouquet handles POST /api/bouquets
func (s *Server) CreateBouquet(c *fiber.Ctx) error {
	var req createBouquetRequest
	if !parseBody(c, &req) {
		return nil
	}

	bouquet, err := s.bouquetService.Create(c.UserContext(), service.CreateBouquetInput{
		Sender:          author(c),
		Flowers:         req.Flowers,
		Message:         req.Message,
		Receiver:        req.Receiver,
		AttachedShayari: req.AttachedShayari,
		IsPublic:        req.IsPublic,
		SpotifyURL:      req.SpotifyURL,
		MusicData:       req.MusicData,
		CakeType:        req.CakeType,
	})
	if err != nil {
		return respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(bouquet)
}

// GetPublicBouquets handles GET /api/bouquets/public
func (s *Server) GetPublicBouquets(c *fiber.Ctx) error {
	bouquets, err := s.bouquetService.ListPublic(c.UserContext())
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(bouquets)
}

// GetMyBouquets handles GET /api/bouquets/mine
func (s *Server) GetMyBouquets(c *fiber.Ctx) error {
	bouquets, err := s.bouquetService.ListBySender(c.UserContext(), userID(c))
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(bouquets)
}

// GetBouquet handles GET /api/bouquets/:id. Anyone holding the ID may read it.
func (s *Server) GetBouquet(c *fiber.Ctx) error {
	bouquet, err := s.bouquetService.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(bouquet)
}

// DeleteBouquet handles DELETE /api/bouquets/:id
func (s *Server) DeleteBouquet(c *fiber.Ctx) error {
	err := s.bouquetService.Delete(c.UserContext(), service.DeleteBouquetInput{
		UserID:    userID(c),
		BouquetID: c.Params("id"),
	})
	if err != nil {
		return respond(c, err)
	}
	return deleted(c, "Bouquet removed from the garden")
}
