package listings

import "testing"

func sampleListings() []Listing {
	return []Listing{
		{
			ID: 1, Animal: AnimalDog, Breed: "labrador", AgeGroup: AgeYoung,
			Gender: GenderMale, Status: StatusAvailable,
			Compatibility: []CompatTag{CompatDogs, CompatChildren},
		},
		{
			ID: 2, Animal: AnimalDog, Breed: "beagle", AgeGroup: AgeAdult,
			Gender: GenderFemale, Status: StatusAdopted,
			Compatibility: []CompatTag{CompatDogs},
		},
		{
			ID: 3, Animal: AnimalCat, Breed: "siamese", AgeGroup: AgeSenior,
			Gender: GenderFemale, Status: StatusAvailable,
			Compatibility: []CompatTag{CompatCats, CompatChildren},
		},
	}
}

func ids(ls []Listing) []int64 {
	out := make([]int64, 0, len(ls))
	for _, l := range ls {
		out = append(out, l.ID)
	}
	return out
}

func TestFilter_NoCriteria_ReturnsAllInStoreOrder(t *testing.T) {
	got := Filter(sampleListings(), Criteria{})
	if len(got) != 3 {
		t.Fatalf("expected all 3 listings, got %d", len(got))
	}
	for i, id := range ids(got) {
		if id != int64(i+1) {
			t.Fatalf("insertion order broken: %v", ids(got))
		}
	}
}

func TestFilter_AnimalAndCompat(t *testing.T) {
	got := Filter(sampleListings(), Criteria{Animal: "dog", Compat: []string{"children"}})
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("expected only listing 1, got %v", ids(got))
	}
}

func TestFilter_CompatANDSemantics(t *testing.T) {
	// dogs+children: solo el listing 1 tiene ambos
	got := Filter(sampleListings(), Criteria{Compat: []string{"dogs", "children"}})
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("expected superset match only, got %v", ids(got))
	}
}

func TestFilter_BreedAnyIsWildcard(t *testing.T) {
	got := Filter(sampleListings(), Criteria{Breed: "any"})
	if len(got) != 3 {
		t.Fatalf(`breed "any" must not filter, got %v`, ids(got))
	}

	got = Filter(sampleListings(), Criteria{Breed: "beagle"})
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("exact breed match failed: %v", ids(got))
	}
}

func TestFilter_StatusAndNormalization(t *testing.T) {
	got := Filter(sampleListings(), Criteria{Status: " Available "})
	if len(got) != 2 {
		t.Fatalf("expected 2 available listings, got %v", ids(got))
	}

	got = Filter(sampleListings(), Criteria{Animal: "CAT", Gender: "Female"})
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("normalized criteria failed: %v", ids(got))
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	in := sampleListings()
	_ = Filter(in, Criteria{Animal: "dog"})
	if len(in) != 3 || in[0].ID != 1 || in[2].ID != 3 {
		t.Fatalf("input slice mutated")
	}
}
