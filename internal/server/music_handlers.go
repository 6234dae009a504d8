package server

import (
	"github.com/gofiber/fiber/v2"
)

// SearchMusic handles GET /api/music/search?q=&limit=
func (s *Server) SearchMusic(c *fiber.Ctx) error {
	tracks, err := s.musicService.Search(c.UserContext(), c.Query("q"), c.QueryInt("limit", 0))
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(tracks)
}
