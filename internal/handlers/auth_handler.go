package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/pawfecthome/backend/internal/apperror"
	"github.com/pawfecthome/backend/internal/middleware"
	"github.com/pawfecthome/backend/internal/services"
)

type AuthHandler struct {
	auth     *services.AuthService
	validate *validator.Validate
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{
		auth:     auth,
		validate: validator.New(),
	}
}

type signupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
	Password  string `json:"password"`
}

// Signup registers a new account. Any role field in the body is ignored;
// accounts always start as plain users.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, apperror.ValidationFailed("body", "invalid request body"))
	}
	if err := h.validate.Struct(req); err != nil {
		return writeError(c, validationError(err))
	}

	token, user, err := h.auth.Signup(c.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "user registered successfully",
		"token":   token,
		"user":    user,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, apperror.ValidationFailed("body", "invalid request body"))
	}
	if err := h.validate.Struct(req); err != nil {
		return writeError(c, validationError(err))
	}

	token, user, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "login successful",
		"token":   token,
		"user":    user,
	})
}

func (h *AuthHandler) SeedAdmin(c *fiber.Ctx) error {
	message, err := h.auth.SeedAdmin(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": message})
}

func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return writeError(c, apperror.NotFound("user", ""))
	}
	return c.JSON(user)
}

func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return writeError(c, apperror.NotFound("user", ""))
	}

	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, apperror.ValidationFailed("body", "invalid request body"))
	}

	updated, err := h.auth.UpdateProfile(c.Context(), user.ID.Hex(), req.Name, req.AvatarURL, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "profile updated successfully",
		"user":    updated,
	})
}

func (h *AuthHandler) AddAdmin(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, apperror.ValidationFailed("body", "invalid request body"))
	}
	if err := h.validate.Struct(req); err != nil {
		return writeError(c, validationError(err))
	}

	admin, err := h.auth.AddAdmin(c.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "admin added successfully",
		"user":    admin,
	})
}

func (h *AuthHandler) ListAdmins(c *fiber.Ctx) error {
	admins, err := h.auth.ListAdmins(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(admins)
}

func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.auth.ListUsers(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(users)
}

func (h *AuthHandler) PromoteUser(c *fiber.Ctx) error {
	user, err := h.auth.PromoteUser(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "user promoted to admin",
		"user":    user,
	})
}

func (h *AuthHandler) RemoveAdmin(c *fiber.Ctx) error {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return writeError(c, apperror.Unauthorized("missing token"))
	}

	user, err := h.auth.DemoteAdmin(c.Context(), caller.ID.Hex(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "admin demoted to user",
		"user":    user,
	})
}

func (h *AuthHandler) RemoveUser(c *fiber.Ctx) error {
	if err := h.auth.DeleteUser(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "user deleted successfully"})
}
