package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Pet is a single adoption listing. Image is either an absolute URL (remote
// storage), a path relative to the static file root ("uploads/..."), or
// empty.
type Pet struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Type        string             `bson:"type" json:"type"`
	Breed       string             `bson:"breed" json:"breed"`
	Age         string             `bson:"age" json:"age"`
	Gender      string             `bson:"gender" json:"gender"`
	Description string             `bson:"description,omitempty" json:"description"`
	Vaccinated  bool               `bson:"vaccinated" json:"vaccinated"`
	Neutered    bool               `bson:"neutered" json:"neutered"`
	GoodWith    []string           `bson:"good_with" json:"goodWith"`
	Image       string             `bson:"image,omitempty" json:"image"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}
