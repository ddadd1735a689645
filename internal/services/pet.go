package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/pawfecthome/backend/internal/apperror"
	"github.com/pawfecthome/backend/internal/forms"
	"github.com/pawfecthome/backend/internal/models"
	"github.com/pawfecthome/backend/internal/repository"
	"github.com/pawfecthome/backend/internal/storage"
)

// PetService owns the pet listings and the lifecycle of their images.
// Stored-asset cleanup is best-effort everywhere: a failed asset delete is
// logged and never fails the request that triggered it.
type PetService struct {
	pets  repository.PetRepository
	store storage.Storage
}

func NewPetService(pets repository.PetRepository, store storage.Storage) *PetService {
	return &PetService{pets: pets, store: store}
}

func (s *PetService) List(ctx context.Context) ([]models.Pet, error) {
	return s.pets.FindAll(ctx)
}

func (s *PetService) Get(ctx context.Context, id string) (models.Pet, error) {
	pet, err := s.pets.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return models.Pet{}, apperror.NotFound("pet", id)
	}
	return pet, err
}

// Create inserts a new listing. The stored image is, in order of
// precedence: the uploaded file's reference, a literal image URL from the
// body, or empty.
func (s *PetService) Create(ctx context.Context, form forms.PetForm, fileRef string) (models.Pet, error) {
	required := []struct {
		field string
		value *string
	}{
		{"name", form.Name},
		{"type", form.Type},
		{"breed", form.Breed},
		{"age", form.Age},
		{"gender", form.Gender},
	}
	for _, f := range required {
		if f.value == nil || strings.TrimSpace(*f.value) == "" {
			return models.Pet{}, apperror.ValidationFailed(f.field, f.field+" is required")
		}
	}

	image := ""
	switch {
	case fileRef != "":
		image = fileRef
	case form.Image != nil:
		image = *form.Image
	}

	now := time.Now()
	pet := models.Pet{
		Name:      *form.Name,
		Type:      *form.Type,
		Breed:     *form.Breed,
		Age:       *form.Age,
		Gender:    *form.Gender,
		GoodWith:  []string{},
		Image:     image,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if form.Description != nil {
		pet.Description = *form.Description
	}
	if form.Vaccinated != nil {
		pet.Vaccinated = *form.Vaccinated
	}
	if form.Neutered != nil {
		pet.Neutered = *form.Neutered
	}
	if form.HasGoodWith {
		pet.GoodWith = form.GoodWith
	}

	if err := s.pets.Create(ctx, &pet); err != nil {
		return models.Pet{}, err
	}
	return pet, nil
}

// Update applies partial semantics: an absent field keeps the current
// value even though the transport verb is PUT. When a new file replaces an
// image owned by the active backend, the stale asset is cleaned up
// best-effort.
func (s *PetService) Update(ctx context.Context, id string, form forms.PetForm, fileRef string) (models.Pet, error) {
	pet, err := s.pets.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Pet{}, apperror.NotFound("pet", id)
		}
		return models.Pet{}, err
	}

	if form.Name != nil && *form.Name != "" {
		pet.Name = *form.Name
	}
	if form.Type != nil && *form.Type != "" {
		pet.Type = *form.Type
	}
	if form.Breed != nil && *form.Breed != "" {
		pet.Breed = *form.Breed
	}
	if form.Age != nil && *form.Age != "" {
		pet.Age = *form.Age
	}
	if form.Gender != nil && *form.Gender != "" {
		pet.Gender = *form.Gender
	}
	if form.Description != nil && *form.Description != "" {
		pet.Description = *form.Description
	}
	if form.Vaccinated != nil {
		pet.Vaccinated = *form.Vaccinated
	}
	if form.Neutered != nil {
		pet.Neutered = *form.Neutered
	}
	if form.HasGoodWith {
		pet.GoodWith = form.GoodWith
	}

	previous := pet.Image
	switch {
	case fileRef != "":
		pet.Image = fileRef
		if previous != "" && previous != fileRef && s.store.Owns(previous) {
			if err := s.store.Delete(ctx, previous); err != nil {
				log.Printf("failed to delete replaced image %s: %v", previous, err)
			}
		}
	case form.Image != nil && *form.Image != "":
		pet.Image = *form.Image
	}

	pet.UpdatedAt = time.Now()
	if err := s.pets.Update(ctx, &pet); err != nil {
		return models.Pet{}, err
	}
	return pet, nil
}

// Delete removes the document and, when the image is owned by the active
// backend, its stored asset. Both deletes run concurrently; only the
// document delete can fail the operation.
func (s *PetService) Delete(ctx context.Context, id string) error {
	pet, err := s.pets.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound("pet", id)
		}
		return err
	}

	assetErrChan := make(chan error, 1)
	docErrChan := make(chan error, 1)

	go func() {
		if pet.Image != "" && s.store.Owns(pet.Image) {
			assetErrChan <- s.store.Delete(ctx, pet.Image)
			return
		}
		assetErrChan <- nil
	}()

	go func() {
		docErrChan <- s.pets.Delete(ctx, id)
	}()

	assetErr := <-assetErrChan
	docErr := <-docErrChan

	if assetErr != nil {
		log.Printf("failed to delete image for pet %s: %v", id, assetErr)
	}
	if errors.Is(docErr, repository.ErrNotFound) {
		return apperror.NotFound("pet", id)
	}
	return docErr
}
