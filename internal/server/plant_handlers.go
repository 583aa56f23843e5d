package server

import (
	"verdant/internal/models"
	"verdant/internal/service"

	"github.com/gofiber/fiber/v2"
)

type plantRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	// ImageSrc carries the raw base64 (or data-URI) image payload on
	// create/edit requests, never a URL.
	ImageSrc string `json:"imageSrc"`
	Color    string `json:"color"`
}

// GetPlants handles GET /api/plants
func (s *Server) GetPlants(c *fiber.Ctx) error {
	userID := s.currentUserID(c)

	plants, err := s.plantService.ListPlants(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(plants)
}

// GetPlantAttachments handles GET /api/plants/:id/attachments
func (s *Server) GetPlantAttachments(c *fiber.Ctx) error {
	userID := s.currentUserID(c)
	id, err := s.parsePlantID(c)
	if err != nil {
		return nil
	}

	attachments, err := s.plantService.PlantAttachments(c.Context(), userID, id)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(attachments)
}

// CreatePlant handles POST /api/plants
func (s *Server) CreatePlant(c *fiber.Ctx) error {
	userID := s.currentUserID(c)

	var req plantRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	plant, err := s.plantService.CreatePlant(c.Context(), service.CreatePlantInput{
		OwnerID:     userID,
		Name:        req.Name,
		Description: req.Description,
		ImageSrc:    req.ImageSrc,
		Color:       req.Color,
	})
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(plant)
}

// EditPlant handles PATCH /api/plants/:id
func (s *Server) EditPlant(c *fiber.Ctx) error {
	userID := s.currentUserID(c)
	plantID, err := s.parsePlantID(c)
	if err != nil {
		return nil
	}

	var req plantRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	plant, err := s.plantService.EditPlant(c.Context(), service.EditPlantInput{
		OwnerID:     userID,
		PlantID:     plantID,
		Name:        req.Name,
		Description: req.Description,
		ImageSrc:    req.ImageSrc,
		Color:       req.Color,
	})
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(plant)
}

// DeletePlant handles DELETE /api/plants/:id
func (s *Server) DeletePlant(c *fiber.Ctx) error {
	userID := s.currentUserID(c)
	plantID, err := s.parsePlantID(c)
	if err != nil {
		return nil
	}

	if err := s.plantService.DeletePlant(c.Context(), userID, plantID); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{
		"status": "success",
	})
}

// WaterPlant handles POST /api/plants/:id/waterings
func (s *Server) WaterPlant(c *fiber.Ctx) error {
	userID := s.currentUserID(c)
	plantID, err := s.parsePlantID(c)
	if err != nil {
		return nil
	}

	watering, err := s.plantService.WaterPlant(c.Context(), userID, plantID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(watering)
}
