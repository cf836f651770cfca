package exercise

import (
	"context"
	"errors"
	"testing"
)

type fakeCatalog struct {
	records []Record
	err     error
}

func (f *fakeCatalog) FetchAll(ctx context.Context) ([]Record, error) {
	return f.records, f.err
}

func sampleCatalog() []Record {
	return []Record{
		{ID: "0001", Name: "dumbbell bench press", Target: "pectorals", Equipment: "dumbbell",
			SecondaryMuscles: []string{"triceps", "delts"}, Instructions: []string{"Lie on a bench.", "Press up."}, GifURL: "https://cdn.example/0001.gif"},
		{ID: "0002", Name: "dumbbell pullover", Target: "Serratus Anterior", Equipment: "Dumbbell"},
		{ID: "0003", Name: "barbell bench press", Target: "pectorals", Equipment: "barbell"},
		{ID: "0004", Name: "dumbbell curl", Target: "biceps", Equipment: "dumbbell"},
		{ID: "0005", Name: "treadmill run", Target: "cardiovascular system", Equipment: "treadmill"},
	}
}

func TestSearchFiltersOnBothAxes(t *testing.T) {
	s := NewSearcher(&fakeCatalog{records: sampleCatalog()})

	results := s.Search(context.Background(), []string{"chest"}, []string{"dumbbell"})

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d: %+v", len(results), results)
	}
	for _, r := range results {
		if r.ID != "0001" && r.ID != "0002" {
			t.Fatalf("unexpected record %q in results", r.ID)
		}
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	s := NewSearcher(&fakeCatalog{records: sampleCatalog()})

	// Record 0002 carries mixed-case target and equipment.
	results := s.Search(context.Background(), []string{"CHEST"}, []string{"Dumbbell"})
	found := false
	for _, r := range results {
		if r.ID == "0002" {
			found = true
		}
	}
	if !found {
		t.Fatalf("mixed-case record not matched: %+v", results)
	}
}

func TestSearchRequiresMatchOnBothAxes(t *testing.T) {
	s := NewSearcher(&fakeCatalog{records: sampleCatalog()})

	// biceps matches 0004 by muscle, but barbell excludes it by equipment.
	results := s.Search(context.Background(), []string{"biceps"}, []string{"barbell"})
	if len(results) != 0 {
		t.Fatalf("expected no results, got %+v", results)
	}
}

func TestSearchDropsUnrecognizedEquipment(t *testing.T) {
	s := NewSearcher(&fakeCatalog{records: sampleCatalog()})

	// "treadmill" is not a recognized tag; it must be dropped silently, not
	// matched against record 0005's equipment field.
	results := s.Search(context.Background(), []string{"cardio"}, []string{"treadmill", "dumbbell"})
	if len(results) != 0 {
		t.Fatalf("unrecognized equipment leaked into the filter: %+v", results)
	}
}

func TestSearchFailsSoftOnCatalogError(t *testing.T) {
	s := NewSearcher(&fakeCatalog{err: errors.New("status 503")})

	results := s.Search(context.Background(), []string{"chest"}, []string{"dumbbell"})
	if results == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(results) != 0 {
		t.Fatalf("expected empty result on catalog failure, got %+v", results)
	}
}

func TestProjectionSubstitutesDefaults(t *testing.T) {
	s := NewSearcher(&fakeCatalog{records: sampleCatalog()})

	results := s.Search(context.Background(), []string{"chest"}, []string{"dumbbell"})

	var bare *Result
	for i := range results {
		if results[i].ID == "0002" {
			bare = &results[i]
		}
	}
	if bare == nil {
		t.Fatalf("record 0002 missing from results")
	}
	if bare.SecondaryMuscles != defaultSecondaryMuscles {
		t.Fatalf("secondaryMuscles default: got %q", bare.SecondaryMuscles)
	}
	if bare.Instructions != defaultInstructions {
		t.Fatalf("instructions default: got %q", bare.Instructions)
	}
	if bare.GifURL != defaultGifURL {
		t.Fatalf("gifUrl default: got %q", bare.GifURL)
	}
}

func TestProjectionKeepsPresentFields(t *testing.T) {
	s := NewSearcher(&fakeCatalog{records: sampleCatalog()})

	results := s.Search(context.Background(), []string{"chest"}, []string{"dumbbell"})
	for _, r := range results {
		if r.ID != "0001" {
			continue
		}
		if r.SecondaryMuscles != "triceps, delts" {
			t.Fatalf("secondaryMuscles: got %q", r.SecondaryMuscles)
		}
		if r.Instructions != "Lie on a bench. Press up." {
			t.Fatalf("instructions: got %q", r.Instructions)
		}
		if r.GifURL != "https://cdn.example/0001.gif" {
			t.Fatalf("gifUrl: got %q", r.GifURL)
		}
		return
	}
	t.Fatalf("record 0001 missing from results")
}
