package server

import (
	"strings"

	"syahi/internal/auth"
	"syahi/internal/models"
	"syahi/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by AuthRequired.
const (
	localUserID   = "userID"
	localIdentity = "identity"
)

// bearerToken extracts the credential from "Authorization: Bearer <token>".
func bearerToken(c *fiber.Ctx) string {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// identity returns the caller resolved by AuthRequired.
func identity(c *fiber.Ctx) *auth.Identity {
	id, _ := c.Locals(localIdentity).(*auth.Identity)
	return id
}

func author(c *fiber.Ctx) service.Author {
	id := identity(c)
	if id == nil {
		return service.Author{}
	}
	return service.Author{ID: id.ID, Username: id.Username}
}

func userID(c *fiber.Ctx) string {
	uid, _ := c.Locals(localUserID).(string)
	return uid
}

// parseBody decodes the JSON body into dest, answering 400 on malformed input.
// A false return means the response was already written.
func parseBody(c *fiber.Ctx, dest any) bool {
	if err := c.BodyParser(dest); err != nil {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
		return false
	}
	return true
}

// respond writes err using the status implied by its code.
func respond(c *fiber.Ctx, err error) error {
	return models.RespondWithAppError(c, err)
}

func deleted(c *fiber.Ctx, message string) error {
	return c.JSON(models.DeleteConfirmation{Message: message})
}
