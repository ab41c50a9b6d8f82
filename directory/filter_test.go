package directory

import (
	"testing"

	"tade-autism-centre/backend/models"
)

func sample() []models.Specialist {
	return []models.Specialist{
		{Name: "Jane Doe", Type: "OT", Location: "London"},
		{Name: "Amira Khan", Type: "SALT", Location: "Manchester"},
		{Name: "Tunde Ade", Type: "Psychologist", Location: "Lagos Road Centre"},
	}
}

func TestFilterEmptyQueryReturnsAll(t *testing.T) {
	got := Filter(sample(), "")
	if len(got) != 3 {
		t.Errorf("empty query should return every record, got %d", len(got))
	}
}

func TestFilterMatchesTypeCaseInsensitively(t *testing.T) {
	got := Filter(sample(), "ot")
	if len(got) != 1 || got[0].Type != "OT" {
		t.Errorf("query %q should match only the OT record, got %+v", "ot", got)
	}
}

func TestFilterMatchesNameAndLocation(t *testing.T) {
	if got := Filter(sample(), "amira"); len(got) != 1 || got[0].Name != "Amira Khan" {
		t.Errorf("name match failed: %+v", got)
	}
	if got := Filter(sample(), "LONDON"); len(got) != 1 || got[0].Location != "London" {
		t.Errorf("location match failed: %+v", got)
	}
}

func TestFilterNoMatches(t *testing.T) {
	if got := Filter(sample(), "dentist"); len(got) != 0 {
		t.Errorf("expected no matches, got %+v", got)
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	// "an" hits Jane (name), Khan (name) and Manchester (location)
	got := Filter(sample(), "an")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].Name != "Jane Doe" || got[1].Name != "Amira Khan" {
		t.Errorf("input order must be preserved, got %+v", got)
	}
}

func TestFilterIsPure(t *testing.T) {
	in := sample()
	Filter(in, "ot")
	if in[0].Name != "Jane Doe" || len(in) != 3 {
		t.Error("filter must not mutate its input")
	}
}
