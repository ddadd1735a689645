package main

import (
	"context"
	"log"
	"time"

	"github.com/pawfecthome/backend/internal/config"
	"github.com/pawfecthome/backend/internal/db"
	"github.com/pawfecthome/backend/internal/repository/mongodb"
	"github.com/pawfecthome/backend/internal/router"
	"github.com/pawfecthome/backend/internal/services"
	"github.com/pawfecthome/backend/internal/storage"
)

func main() {
	cfg := config.Load()

	database, err := db.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	log.Println("connected to MongoDB")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := mongodb.EnsureIndexes(ctx, database); err != nil {
		cancel()
		log.Fatalf("failed to create indexes: %v", err)
	}
	cancel()

	store, uploadDir, err := buildStorage(cfg)
	if err != nil {
		log.Fatalf("failed to initialize storage: %v", err)
	}

	users := mongodb.NewUserRepo(database)
	pets := mongodb.NewPetRepo(database)

	app := router.New(router.Deps{
		Auth:      services.NewAuthService(users, cfg.JWTSecret, cfg.AdminEmail, cfg.AdminPassword),
		Pets:      services.NewPetService(pets, store),
		Users:     users,
		Store:     store,
		JWTSecret: cfg.JWTSecret,
		UploadDir: uploadDir,
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}

// buildStorage selects the image backend. The second return value is the
// directory to serve statically, empty for remote storage.
func buildStorage(cfg *config.Config) (storage.Storage, string, error) {
	switch cfg.StorageDriver {
	case "minio":
		store, err := storage.NewMinio(storage.MinioConfig{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			Bucket:    cfg.MinioBucket,
			UseSSL:    cfg.MinioUseSSL,
			PublicURL: cfg.MinioPublicURL,
		})
		if err != nil {
			return nil, "", err
		}
		log.Println("connected to MinIO")
		return store, "", nil
	default:
		store, err := storage.NewLocal(cfg.UploadDir)
		if err != nil {
			return nil, "", err
		}
		return store, cfg.UploadDir, nil
	}
}
