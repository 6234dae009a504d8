package server

import (
	"syahi/internal/auth"
	"syahi/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired resolves the bearer token to a stored user and rejects the
// request with 401 before the handler runs when it cannot.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := s.authService.Authenticate(c.UserContext(), bearerToken(c))
		if err != nil {
			return respond(c, err)
		}

		c.Locals(localUserID, id.ID)
		c.Locals(localIdentity, id)

		ctx := observability.WithUserID(c.UserContext(), id.ID)
		c.SetUserContext(auth.WithIdentity(ctx, id))

		return c.Next()
	}
}
