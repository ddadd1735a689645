package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/pawfecthome/backend/internal/handlers"
	"github.com/pawfecthome/backend/internal/middleware"
	"github.com/pawfecthome/backend/internal/repository"
	"github.com/pawfecthome/backend/internal/services"
	"github.com/pawfecthome/backend/internal/storage"
)

type Deps struct {
	Auth      *services.AuthService
	Pets      *services.PetService
	Users     repository.UserRepository
	Store     storage.Storage
	JWTSecret string

	// UploadDir, when set, is served statically under /uploads (local
	// storage driver only).
	UploadDir string
}

// New assembles the Fiber app with all routes and middleware chains.
func New(deps Deps) *fiber.App {
	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New())

	if deps.UploadDir != "" {
		app.Static("/uploads", deps.UploadDir)
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("PawfectHome backend is running, use /api/pets and /api/auth")
	})

	authHandler := handlers.NewAuthHandler(deps.Auth)
	petHandler := handlers.NewPetHandler(deps.Pets)

	protect := middleware.AuthRequired(deps.Users, deps.JWTSecret)
	upload := middleware.ImageUpload(deps.Store)

	auth := app.Group("/api/auth")
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)
	auth.Get("/seed-admin", authHandler.SeedAdmin)

	auth.Get("/profile", protect, authHandler.GetProfile)
	auth.Put("/profile", protect, authHandler.UpdateProfile)

	auth.Post("/add-admin", protect, middleware.AdminOnly, authHandler.AddAdmin)
	auth.Get("/admins", protect, middleware.AdminOnly, authHandler.ListAdmins)
	auth.Get("/users", protect, middleware.AdminOnly, authHandler.ListUsers)
	auth.Put("/promote-user/:id", protect, middleware.AdminOnly, authHandler.PromoteUser)
	auth.Delete("/remove-admin/:id", protect, middleware.AdminOnly, authHandler.RemoveAdmin)
	auth.Delete("/remove-user/:id", protect, middleware.AdminOnly, authHandler.RemoveUser)

	pets := app.Group("/api/pets")
	pets.Get("/", petHandler.List)
	pets.Get("/:id", petHandler.Get)
	pets.Post("/", protect, middleware.AdminOnly, upload, petHandler.Create)
	pets.Put("/:id", protect, middleware.AdminOnly, upload, petHandler.Update)
	pets.Delete("/:id", protect, middleware.AdminOnly, petHandler.Delete)

	return app
}
