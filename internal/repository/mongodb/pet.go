package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pawfecthome/backend/internal/models"
	"github.com/pawfecthome/backend/internal/repository"
)

type PetRepo struct {
	col *mongo.Collection
}

func NewPetRepo(db *mongo.Database) *PetRepo {
	return &PetRepo{col: db.Collection("pets")}
}

func (r *PetRepo) Create(ctx context.Context, pet *models.Pet) error {
	if pet.ID.IsZero() {
		pet.ID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, pet)
	return err
}

func (r *PetRepo) FindByID(ctx context.Context, id string) (models.Pet, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Pet{}, repository.ErrNotFound
	}

	var pet models.Pet
	err = r.col.FindOne(ctx, bson.M{"_id": objID}).Decode(&pet)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Pet{}, repository.ErrNotFound
	}
	return pet, err
}

func (r *PetRepo) FindAll(ctx context.Context) ([]models.Pet, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	pets := make([]models.Pet, 0)
	if err := cursor.All(ctx, &pets); err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *PetRepo) Update(ctx context.Context, pet *models.Pet) error {
	result, err := r.col.ReplaceOne(ctx, bson.M{"_id": pet.ID}, pet)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PetRepo) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}

	result, err := r.col.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
