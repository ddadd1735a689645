package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBool(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want bool
	}{
		{name: "literal true", in: true, want: true},
		{name: "literal false", in: false, want: false},
		{name: "string true", in: "true", want: true},
		{name: "string false", in: "false", want: false},
		{name: "arbitrary string coerces to false", in: "banana", want: false},
		{name: "uppercase is not accepted", in: "True", want: false},
		{name: "number coerces to false", in: float64(1), want: false},
		{name: "nil coerces to false", in: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Bool(tt.in))
		})
	}
}

func TestTags(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []string
	}{
		{
			name: "comma string is split and trimmed",
			in:   "Kids, Dogs",
			want: []string{"Kids", "Dogs"},
		},
		{
			name: "order is preserved",
			in:   "Dogs,Cats,Kids",
			want: []string{"Dogs", "Cats", "Kids"},
		},
		{
			name: "empty entries are dropped",
			in:   "Kids,, ,Dogs,",
			want: []string{"Kids", "Dogs"},
		},
		{
			name: "string slice passes through trimmed",
			in:   []string{" Kids ", "Dogs"},
			want: []string{"Kids", "Dogs"},
		},
		{
			name: "json array of any",
			in:   []any{"Kids", "Dogs"},
			want: []string{"Kids", "Dogs"},
		},
		{
			name: "empty string yields empty list",
			in:   "",
			want: []string{},
		},
		{
			name: "unsupported type yields empty list",
			in:   float64(7),
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tags(tt.in))
		})
	}
}

func TestPetFromMap(t *testing.T) {
	t.Run("absent fields stay nil", func(t *testing.T) {
		form := petFromMap(map[string]any{"name": "Rex"})

		assert.NotNil(t, form.Name)
		assert.Equal(t, "Rex", *form.Name)
		assert.Nil(t, form.Type)
		assert.Nil(t, form.Vaccinated)
		assert.False(t, form.HasGoodWith)
	})

	t.Run("form-encoded booleans and tags normalize", func(t *testing.T) {
		form := petFromMap(map[string]any{
			"vaccinated": "true",
			"neutered":   "false",
			"goodWith":   "Kids, Dogs",
		})

		assert.NotNil(t, form.Vaccinated)
		assert.True(t, *form.Vaccinated)
		assert.NotNil(t, form.Neutered)
		assert.False(t, *form.Neutered)
		assert.True(t, form.HasGoodWith)
		assert.Equal(t, []string{"Kids", "Dogs"}, form.GoodWith)
	})

	t.Run("json number age renders as string", func(t *testing.T) {
		form := petFromMap(map[string]any{"age": float64(3)})

		assert.NotNil(t, form.Age)
		assert.Equal(t, "3", *form.Age)
	})
}
