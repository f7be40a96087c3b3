package listings

import "time"

// Animal define las especies publicables.
// @Enum dog, cat
type Animal string

const (
	AnimalDog Animal = "dog"
	AnimalCat Animal = "cat"
)

// AgeGroup agrupa la edad en rangos de adopción.
// @Enum puppy/kitten, young, adult, senior
type AgeGroup string

const (
	AgePuppyKitten AgeGroup = "puppy/kitten"
	AgeYoung       AgeGroup = "young"
	AgeAdult       AgeGroup = "adult"
	AgeSenior      AgeGroup = "senior"
)

// Gender define el sexo de la mascota.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// CompatTag describe con qué convive bien la mascota.
type CompatTag string

const (
	CompatDogs     CompatTag = "dogs"
	CompatCats     CompatTag = "cats"
	CompatChildren CompatTag = "children"
)

// Status de la publicación.
type Status string

const (
	StatusAvailable Status = "available"
	StatusAdopted   Status = "adopted"
)

const (
	// TrustedImagePrefix es el único origen permitido para imágenes:
	// nunca se acepta una URL externa arbitraria.
	TrustedImagePrefix = "/images/"

	// DefaultImageURL se usa cuando el cliente no manda imagen.
	DefaultImageURL = "/images/dog2.svg"
)

// Listing es una publicación de adopción con un único dueño.
// Tras la creación solo Status puede cambiar, y solo lo cambia el dueño.
type Listing struct {
	ID            int64
	OwnerUsername string

	Animal        Animal
	Breed         string // normalizada a minúsculas
	AgeGroup      AgeGroup
	Gender        Gender
	Compatibility []CompatTag // sin duplicados, orden sin significado
	Description   string
	ImageURL      string

	Status    Status
	CreatedAt time.Time
}
