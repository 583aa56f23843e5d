package server

import (
	"errors"

	"verdant/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper.  Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// currentUserID returns the authenticated principal's ID placed in locals
// by the auth middleware.
func (s *Server) currentUserID(c *fiber.Ctx) uint {
	return c.Locals("userID").(uint)
}

// parsePlantID extracts the :id route parameter as a plant UUID. A
// malformed id cannot match any plant, so it gets the same opaque 404 as a
// missing or foreign-owned one, and skips the storage roundtrip.
// On failure the response is already written and errResponseWritten is
// returned; callers should check: if err != nil { return nil }
func (s *Server) parsePlantID(c *fiber.Ctx) (string, error) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		notFound := models.NewNotFoundError("Plant", id)
		_ = models.RespondWithError(c, models.StatusForError(notFound), notFound)
		return "", errResponseWritten
	}
	return id, nil
}
