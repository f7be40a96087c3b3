package listings

import (
	"strings"
	"unicode/utf8"
)

// CreatePayload es el input crudo del cliente para crear una publicación.
// Los campos derivados (id, owner, status, createdAt) nunca se aceptan
// del cliente.
type CreatePayload struct {
	Animal        string
	Breed         string
	AgeGroup      string
	Gender        string
	Compatibility []string
	Description   string
	ImageURL      string
}

// NormalizedListing es el resultado de una validación exitosa: campos
// normalizados y con defaults aplicados, listos para persistir.
type NormalizedListing struct {
	Animal        Animal
	Breed         string
	AgeGroup      AgeGroup
	Gender        Gender
	Compatibility []CompatTag
	Description   string
	ImageURL      string
}

// ValidationError acumula todos los problemas del payload, no solo el primero,
// para que el cliente vea todo junto.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, " ")
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ValidatePayload normaliza (trim + minúsculas) y valida todos los campos.
// Los tags de compatibilidad no reconocidos se descartan en silencio y los
// duplicados se eliminan; eso no es un error.
func ValidatePayload(p CreatePayload) (NormalizedListing, *ValidationError) {
	var errs []string

	animal := normalize(p.Animal)
	breed := normalize(p.Breed)
	ageGroup := normalize(p.AgeGroup)
	gender := normalize(p.Gender)

	if animal != string(AnimalDog) && animal != string(AnimalCat) {
		errs = append(errs, "animal must be dog or cat.")
	}
	if utf8.RuneCountInString(breed) < 2 {
		errs = append(errs, "breed is required (>= 2 chars).")
	}
	switch AgeGroup(ageGroup) {
	case AgePuppyKitten, AgeYoung, AgeAdult, AgeSenior:
	default:
		errs = append(errs, "ageGroup is invalid.")
	}
	switch Gender(gender) {
	case GenderMale, GenderFemale:
	default:
		errs = append(errs, "gender is invalid.")
	}

	compat := make([]CompatTag, 0, len(p.Compatibility))
	seen := map[CompatTag]struct{}{}
	for _, raw := range p.Compatibility {
		tag := CompatTag(normalize(raw))
		switch tag {
		case CompatDogs, CompatCats, CompatChildren:
		default:
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		compat = append(compat, tag)
	}

	description := strings.TrimSpace(p.Description)
	if n := utf8.RuneCountInString(description); n < 10 {
		errs = append(errs, "description must be at least 10 characters.")
	} else if n > 300 {
		errs = append(errs, "description must be <= 300 characters.")
	}

	imageURL := strings.TrimSpace(p.ImageURL)
	if imageURL != "" && !strings.HasPrefix(imageURL, TrustedImagePrefix) {
		errs = append(errs, "imageUrl must be empty or start with /images/.")
	}
	if imageURL == "" {
		imageURL = DefaultImageURL
	}

	if len(errs) > 0 {
		return NormalizedListing{}, &ValidationError{Messages: errs}
	}

	return NormalizedListing{
		Animal:        Animal(animal),
		Breed:         breed,
		AgeGroup:      AgeGroup(ageGroup),
		Gender:        Gender(gender),
		Compatibility: compat,
		Description:   description,
		ImageURL:      imageURL,
	}, nil
}
