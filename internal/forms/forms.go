// Package forms is the normalization boundary between HTML-form and JSON
// request bodies and the typed domain model. Form submissions arrive with
// booleans and lists encoded as strings; everything is coerced here so the
// services only ever see typed values.
package forms

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// PetForm carries one pet write payload. Nil pointers (and HasGoodWith
// false) mean the field was not present in the request, which updates
// interpret as "keep the current value".
type PetForm struct {
	Name        *string
	Type        *string
	Breed       *string
	Age         *string
	Gender      *string
	Description *string
	Vaccinated  *bool
	Neutered    *bool
	GoodWith    []string
	HasGoodWith bool
	Image       *string
}

// ParsePet reads a pet payload from either a multipart form or a JSON body.
func ParsePet(c *fiber.Ctx) (PetForm, error) {
	contentType := c.Get(fiber.HeaderContentType)
	if strings.HasPrefix(contentType, fiber.MIMEMultipartForm) {
		form, err := c.MultipartForm()
		if err != nil {
			return PetForm{}, err
		}
		values := make(map[string]any, len(form.Value))
		for key, fieldValues := range form.Value {
			switch len(fieldValues) {
			case 0:
			case 1:
				values[key] = fieldValues[0]
			default:
				many := make([]any, len(fieldValues))
				for i, v := range fieldValues {
					many[i] = v
				}
				values[key] = many
			}
		}
		return petFromMap(values), nil
	}

	var values map[string]any
	if body := c.Body(); len(body) > 0 {
		if err := json.Unmarshal(body, &values); err != nil {
			return PetForm{}, err
		}
	}
	return petFromMap(values), nil
}

func petFromMap(values map[string]any) PetForm {
	form := PetForm{
		Name:        stringField(values, "name"),
		Type:        stringField(values, "type"),
		Breed:       stringField(values, "breed"),
		Age:         stringField(values, "age"),
		Gender:      stringField(values, "gender"),
		Description: stringField(values, "description"),
		Image:       stringField(values, "image"),
	}
	if v, ok := values["vaccinated"]; ok {
		b := Bool(v)
		form.Vaccinated = &b
	}
	if v, ok := values["neutered"]; ok {
		b := Bool(v)
		form.Neutered = &b
	}
	if v, ok := values["goodWith"]; ok {
		form.GoodWith = Tags(v)
		form.HasGoodWith = true
	}
	return form
}

func stringField(values map[string]any, key string) *string {
	v, ok := values[key]
	if !ok || v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		// JSON numbers arrive as float64; render them back as strings.
		s = fmt.Sprint(v)
		if f, isFloat := v.(float64); isFloat && f == float64(int64(f)) {
			s = fmt.Sprint(int64(f))
		}
	}
	return &s
}

// Bool coerces a literal boolean or the form-encoded strings "true"/"false".
// Anything else coerces to false, matching the lenient form handling the
// frontend relies on.
func Bool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t == "true"
	default:
		return false
	}
}

// Tags coerces a list or a comma-separated string into an ordered slice of
// trimmed, non-empty tags.
func Tags(v any) []string {
	var raw []string
	switch t := v.(type) {
	case string:
		raw = strings.Split(t, ",")
	case []string:
		raw = t
	case []any:
		raw = make([]string, 0, len(t))
		for _, item := range t {
			raw = append(raw, fmt.Sprint(item))
		}
	default:
		return []string{}
	}

	tags := make([]string, 0, len(raw))
	for _, tag := range raw {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}
