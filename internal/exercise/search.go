// Package exercise translates UI tag selections into catalog filters and
// runs the client-side search over the bulk ExerciseDB catalog.
package exercise

import (
	"context"
	"log"
	"strings"
)

// Default strings substituted when a catalog record omits a field.
const (
	defaultSecondaryMuscles = "Not specified"
	defaultInstructions     = "Please refer to external sources for instructions"
	defaultGifURL           = "No GIF available"
)

// Result is the projection of a matching catalog record returned to
// clients.  It is ephemeral: produced per search request, never persisted.
type Result struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Equipment         string `json:"equipment"`
	TargetMuscleGroup string `json:"targetMuscleGroup"`
	SecondaryMuscles  string `json:"secondaryMuscles"`
	Instructions      string `json:"instructions"`
	GifURL            string `json:"gifUrl"`
}

// catalogSource abstracts the catalog fetch so the searcher can be tested
// without HTTP.
type catalogSource interface {
	FetchAll(ctx context.Context) ([]Record, error)
}

// Searcher filters the exercise catalog by muscle group and equipment tags.
type Searcher struct {
	catalog catalogSource
}

func NewSearcher(catalog catalogSource) *Searcher {
	return &Searcher{catalog: catalog}
}

// Search expands the requested tags, fetches the catalog and keeps records
// matching on both axes: the record's target must be in the expanded muscle
// set AND its equipment in the mapped equipment set, both compared
// case-insensitively.  A failed catalog fetch degrades to an empty result
// rather than an error; the catalog is a non-critical dependency and the
// UI treats "no matches" and "provider down" the same way.
func (s *Searcher) Search(ctx context.Context, muscleTags, equipmentTags []string) []Result {
	targets := expandMuscleGroups(lowerAll(muscleTags))
	equipment := mapEquipment(lowerAll(equipmentTags))

	records, err := s.catalog.FetchAll(ctx)
	if err != nil {
		log.Printf("exercise search: catalog fetch failed: %v", err)
		return []Result{}
	}

	results := []Result{}
	for _, rec := range records {
		if !targets[strings.ToLower(rec.Target)] {
			continue
		}
		if !equipment[strings.ToLower(rec.Equipment)] {
			continue
		}
		results = append(results, project(rec))
	}
	return results
}

// project maps a raw record to the response shape, substituting the default
// strings for absent fields.
func project(rec Record) Result {
	r := Result{
		ID:                rec.ID,
		Name:              rec.Name,
		Equipment:         rec.Equipment,
		TargetMuscleGroup: rec.Target,
		SecondaryMuscles:  strings.Join(rec.SecondaryMuscles, ", "),
		Instructions:      strings.Join(rec.Instructions, " "),
		GifURL:            rec.GifURL,
	}
	if r.SecondaryMuscles == "" {
		r.SecondaryMuscles = defaultSecondaryMuscles
	}
	if r.Instructions == "" {
		r.Instructions = defaultInstructions
	}
	if r.GifURL == "" {
		r.GifURL = defaultGifURL
	}
	return r
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.ToLower(strings.TrimSpace(s)))
	}
	return out
}
