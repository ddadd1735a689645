package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pawfecthome/backend/internal/apperror"
	"github.com/pawfecthome/backend/internal/forms"
	"github.com/pawfecthome/backend/internal/middleware"
	"github.com/pawfecthome/backend/internal/services"
)

type PetHandler struct {
	pets *services.PetService
}

func NewPetHandler(pets *services.PetService) *PetHandler {
	return &PetHandler{pets: pets}
}

func (h *PetHandler) List(c *fiber.Ctx) error {
	pets, err := h.pets.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(pets)
}

func (h *PetHandler) Get(c *fiber.Ctx) error {
	pet, err := h.pets.Get(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(pet)
}

func (h *PetHandler) Create(c *fiber.Ctx) error {
	form, err := forms.ParsePet(c)
	if err != nil {
		return writeError(c, apperror.ValidationFailed("body", "invalid request body"))
	}

	pet, err := h.pets.Create(c.Context(), form, middleware.UploadedImageRef(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(pet)
}

func (h *PetHandler) Update(c *fiber.Ctx) error {
	form, err := forms.ParsePet(c)
	if err != nil {
		return writeError(c, apperror.ValidationFailed("body", "invalid request body"))
	}

	pet, err := h.pets.Update(c.Context(), c.Params("id"), form, middleware.UploadedImageRef(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(pet)
}

func (h *PetHandler) Delete(c *fiber.Ctx) error {
	if err := h.pets.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "pet deleted"})
}
