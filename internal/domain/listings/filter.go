package listings

// Criteria son filtros opcionales de browse, en crudo tal como llegan por
// query string. Campo vacío = no filtra por ese campo.
type Criteria struct {
	Animal   string
	AgeGroup string
	Gender   string
	Breed    string
	Status   string
	Compat   []string
}

// BreedAny desactiva el filtro de raza: es un comodín literal, no un valor
// de match exacto.
const BreedAny = "any"

// Filter es puro: no muta el slice de entrada y siempre devuelve
// uno nuevo. Sin criterios devuelve todo en el orden del store.
func Filter(all []Listing, c Criteria) []Listing {
	animal := normalize(c.Animal)
	ageGroup := normalize(c.AgeGroup)
	gender := normalize(c.Gender)
	breed := normalize(c.Breed)
	status := normalize(c.Status)

	wanted := make([]CompatTag, 0, len(c.Compat))
	for _, raw := range c.Compat {
		if v := normalize(raw); v != "" {
			wanted = append(wanted, CompatTag(v))
		}
	}

	out := make([]Listing, 0, len(all))
	for _, l := range all {
		if status != "" && string(l.Status) != status {
			continue
		}
		if animal != "" && string(l.Animal) != animal {
			continue
		}
		if ageGroup != "" && string(l.AgeGroup) != ageGroup {
			continue
		}
		if gender != "" && string(l.Gender) != gender {
			continue
		}
		if breed != "" && breed != BreedAny && l.Breed != breed {
			continue
		}
		if !hasAllTags(l.Compatibility, wanted) {
			continue
		}
		out = append(out, l)
	}
	return out
}

// hasAllTags: semántica AND, la publicación debe incluir todos los tags
// pedidos (superset), no alcanza con uno.
func hasAllTags(have []CompatTag, want []CompatTag) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if h == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
