package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawfecthome/backend/internal/apperror"
	"github.com/pawfecthome/backend/internal/forms"
	"github.com/pawfecthome/backend/internal/repository/memory"
	"github.com/pawfecthome/backend/internal/storage"
)

func strptr(s string) *string { return &s }
func boolptr(b bool) *bool    { return &b }

func rexForm() forms.PetForm {
	return forms.PetForm{
		Name:   strptr("Rex"),
		Type:   strptr("Dog"),
		Breed:  strptr("Labrador"),
		Age:    strptr("3"),
		Gender: strptr("Male"),
	}
}

func newPetService() (*PetService, *memory.PetRepo, *storage.Memory) {
	pets := memory.NewPetRepo()
	store := storage.NewMemory("https://media.test")
	return NewPetService(pets, store), pets, store
}

func TestCreatePetDefaults(t *testing.T) {
	svc, _, _ := newPetService()

	pet, err := svc.Create(context.Background(), rexForm(), "")
	require.NoError(t, err)

	assert.Equal(t, "Rex", pet.Name)
	assert.Equal(t, "", pet.Image)
	assert.False(t, pet.Vaccinated)
	assert.False(t, pet.Neutered)
	assert.Equal(t, []string{}, pet.GoodWith)
	assert.False(t, pet.ID.IsZero())
}

func TestCreatePetRequiresFields(t *testing.T) {
	svc, _, _ := newPetService()

	form := rexForm()
	form.Breed = nil
	_, err := svc.Create(context.Background(), form, "")
	assert.ErrorIs(t, err, apperror.ErrValidation)

	form = rexForm()
	form.Name = strptr("   ")
	_, err = svc.Create(context.Background(), form, "")
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestCreatePetImagePrecedence(t *testing.T) {
	svc, _, _ := newPetService()

	t.Run("uploaded file wins over literal url", func(t *testing.T) {
		form := rexForm()
		form.Image = strptr("https://example.com/rex.png")
		pet, err := svc.Create(context.Background(), form, "https://media.test/abc.png")
		require.NoError(t, err)
		assert.Equal(t, "https://media.test/abc.png", pet.Image)
	})

	t.Run("literal url without file", func(t *testing.T) {
		form := rexForm()
		form.Image = strptr("https://example.com/rex.png")
		pet, err := svc.Create(context.Background(), form, "")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/rex.png", pet.Image)
	})
}

func TestCreatePetNormalizedBooleansAndTags(t *testing.T) {
	svc, _, _ := newPetService()

	form := rexForm()
	form.Vaccinated = boolptr(forms.Bool("true"))
	form.Neutered = boolptr(forms.Bool("false"))
	form.GoodWith = forms.Tags("Kids, Dogs")
	form.HasGoodWith = true

	pet, err := svc.Create(context.Background(), form, "")
	require.NoError(t, err)

	assert.True(t, pet.Vaccinated)
	assert.False(t, pet.Neutered)
	assert.Equal(t, []string{"Kids", "Dogs"}, pet.GoodWith)

	// Round-trip through the repository keeps the typed boolean.
	stored, err := svc.Get(context.Background(), pet.ID.Hex())
	require.NoError(t, err)
	assert.True(t, stored.Vaccinated)
}

func TestUpdatePetPartialSemantics(t *testing.T) {
	svc, _, _ := newPetService()
	pet, err := svc.Create(context.Background(), rexForm(), "")
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), pet.ID.Hex(), forms.PetForm{
		Breed: strptr("Golden Retriever"),
	}, "")
	require.NoError(t, err)

	assert.Equal(t, "Rex", updated.Name, "omitted name must keep current value")
	assert.Equal(t, "Golden Retriever", updated.Breed)
	assert.Equal(t, "3", updated.Age)
}

func TestUpdatePetReplacesImageAndCleansOldAsset(t *testing.T) {
	svc, _, store := newPetService()

	form := rexForm()
	pet, err := svc.Create(context.Background(), form, "https://media.test/old.png")
	require.NoError(t, err)
	store.Seed("https://media.test/old.png")

	updated, err := svc.Update(context.Background(), pet.ID.Hex(), forms.PetForm{}, "https://media.test/new.png")
	require.NoError(t, err)

	assert.Equal(t, "https://media.test/new.png", updated.Image)
	assert.Equal(t, []string{"https://media.test/old.png"}, store.Deleted())
}

func TestUpdatePetDoesNotDeleteForeignImage(t *testing.T) {
	svc, _, store := newPetService()

	form := rexForm()
	form.Image = strptr("https://example.com/rex.png")
	pet, err := svc.Create(context.Background(), form, "")
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), pet.ID.Hex(), forms.PetForm{}, "https://media.test/new.png")
	require.NoError(t, err)

	assert.Empty(t, store.Deleted(), "literal URLs are never deleted")
}

func TestUpdatePetCleanupFailureDoesNotFailUpdate(t *testing.T) {
	svc, _, store := newPetService()

	// Old ref owned by the backend but never actually stored, so the
	// delete attempt errors.
	pet, err := svc.Create(context.Background(), rexForm(), "https://media.test/ghost.png")
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), pet.ID.Hex(), forms.PetForm{}, "https://media.test/new.png")
	require.NoError(t, err)
	assert.Equal(t, "https://media.test/new.png", updated.Image)
	assert.Equal(t, []string{"https://media.test/ghost.png"}, store.Deleted())
}

func TestDeletePetRemovesOwnedAsset(t *testing.T) {
	svc, pets, store := newPetService()

	pet, err := svc.Create(context.Background(), rexForm(), "https://media.test/rex.png")
	require.NoError(t, err)
	store.Seed("https://media.test/rex.png")

	require.NoError(t, svc.Delete(context.Background(), pet.ID.Hex()))

	assert.Equal(t, []string{"https://media.test/rex.png"}, store.Deleted())
	_, err = pets.FindByID(context.Background(), pet.ID.Hex())
	assert.Error(t, err)
}

func TestDeletePetSkipsUnownedImage(t *testing.T) {
	svc, _, store := newPetService()

	tests := []struct {
		name  string
		image *string
	}{
		{name: "local path image", image: strptr("uploads/rex.png")},
		{name: "empty image", image: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := rexForm()
			form.Image = tt.image
			pet, err := svc.Create(context.Background(), form, "")
			require.NoError(t, err)

			require.NoError(t, svc.Delete(context.Background(), pet.ID.Hex()))
			assert.Empty(t, store.Deleted(), "no remote call for unowned images")
		})
	}
}

func TestDeletePetNotFound(t *testing.T) {
	svc, _, _ := newPetService()

	err := svc.Delete(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestGetPetNotFound(t *testing.T) {
	svc, _, _ := newPetService()

	_, err := svc.Get(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestListPets(t *testing.T) {
	svc, _, _ := newPetService()

	pets, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, pets)

	_, err = svc.Create(context.Background(), rexForm(), "")
	require.NoError(t, err)

	pets, err = svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, pets, 1)
	assert.Equal(t, "Rex", pets[0].Name)
}
