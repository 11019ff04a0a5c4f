package catalog

import (
	"reflect"
	"testing"

	"jobfit/internal/types"
)

func sampleProfile(key, category string) types.JobProfile {
	return types.JobProfile{
		Key:      key,
		Label:    "Label for " + key,
		Category: category,
		RequiredSkills: types.RequiredSkills{
			Programming: []string{"Go"},
		},
		ExperienceKeywords: []string{"built"},
		Weights:            types.Weights{Technical: 0.4, Experience: 0.3, Projects: 0.2, Education: 0.1},
	}
}

func TestNewStatic(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		static, warnings, err := NewStatic([]types.JobProfile{
			sampleProfile("a", "Engineering"),
			sampleProfile("b", "Engineering"),
		})
		if err != nil {
			t.Fatalf("NewStatic failed: %v", err)
		}
		if len(warnings) != 0 {
			t.Errorf("warnings = %v, expected none", warnings)
		}
		if _, ok := static.Lookup("a"); !ok {
			t.Error("Lookup(a) failed")
		}
		if _, ok := static.Lookup("missing"); ok {
			t.Error("Lookup(missing) unexpectedly succeeded")
		}
	})

	t.Run("MissingKeyOrLabel", func(t *testing.T) {
		p := sampleProfile("a", "Engineering")
		p.Label = ""
		if _, _, err := NewStatic([]types.JobProfile{p}); err == nil {
			t.Error("expected error for empty label")
		}
	})

	t.Run("DuplicateKey", func(t *testing.T) {
		_, _, err := NewStatic([]types.JobProfile{
			sampleProfile("a", "Engineering"),
			sampleProfile("a", "Data"),
		})
		if err == nil {
			t.Error("expected error for duplicate key")
		}
	})

	t.Run("NegativeWeight", func(t *testing.T) {
		p := sampleProfile("a", "Engineering")
		p.Weights.Technical = -0.1
		if _, _, err := NewStatic([]types.JobProfile{p}); err == nil {
			t.Error("expected error for negative weight")
		}
	})

	t.Run("WeightSumWarning", func(t *testing.T) {
		p := sampleProfile("a", "Engineering")
		p.Weights = types.Weights{Technical: 0.5, Experience: 0.5, Projects: 0.5}
		static, warnings, err := NewStatic([]types.JobProfile{p})
		if err != nil {
			t.Fatalf("NewStatic failed: %v", err)
		}
		if !reflect.DeepEqual(warnings, []string{"a"}) {
			t.Errorf("warnings = %v, expected [a]", warnings)
		}
		// The catalog still serves the profile as given.
		profile, ok := static.Lookup("a")
		if !ok || profile.Weights.Sum() != 1.5 {
			t.Error("profile weights were altered")
		}
	})
}

func TestStaticListings(t *testing.T) {
	static, _, err := NewStatic([]types.JobProfile{
		sampleProfile("a", "Engineering"),
		sampleProfile("b", "Data"),
		sampleProfile("c", "Engineering"),
	})
	if err != nil {
		t.Fatalf("NewStatic failed: %v", err)
	}

	if categories := static.ListCategories(); !reflect.DeepEqual(categories, []string{"Engineering", "Data"}) {
		t.Errorf("ListCategories = %v, expected first-appearance order", categories)
	}

	refs := static.ListJobsByCategory("Engineering")
	if len(refs) != 2 || refs[0].Key != "a" || refs[1].Key != "c" {
		t.Errorf("ListJobsByCategory = %v, expected a and c in catalog order", refs)
	}

	if refs := static.ListJobsByCategory("Nothing"); len(refs) != 0 {
		t.Errorf("ListJobsByCategory(Nothing) = %v, expected empty", refs)
	}

	jobs := static.Jobs()
	if len(jobs) != 3 || jobs[0].Key != "a" || jobs[2].Key != "c" {
		t.Errorf("Jobs = %v, expected all three in catalog order", jobs)
	}
}

func TestStoreReplace(t *testing.T) {
	first, _, err := NewStatic([]types.JobProfile{sampleProfile("a", "Engineering")})
	if err != nil {
		t.Fatalf("NewStatic failed: %v", err)
	}
	store := NewStore(first)

	if _, ok := store.Lookup("a"); !ok {
		t.Fatal("Lookup(a) failed on initial catalog")
	}

	second, _, err := NewStatic([]types.JobProfile{sampleProfile("b", "Data")})
	if err != nil {
		t.Fatalf("NewStatic failed: %v", err)
	}
	store.Replace(second)

	if _, ok := store.Lookup("a"); ok {
		t.Error("Lookup(a) unexpectedly succeeded after replace")
	}
	if _, ok := store.Lookup("b"); !ok {
		t.Error("Lookup(b) failed after replace")
	}
}

func TestBuiltin(t *testing.T) {
	builtin := Builtin()

	jobs := builtin.Jobs()
	if len(jobs) != 10 {
		t.Errorf("built-in catalog has %d jobs, expected 10", len(jobs))
	}

	if _, ok := builtin.Lookup(DefaultJobKey); !ok {
		t.Errorf("default job %q missing from built-in catalog", DefaultJobKey)
	}

	// Every built-in profile must carry normalized weights and at least
	// one required skill.
	_, warnings, err := NewStatic(builtinProfiles())
	if err != nil {
		t.Fatalf("built-in profiles failed validation: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("built-in profiles with unnormalized weights: %v", warnings)
	}
	for _, ref := range jobs {
		profile, _ := builtin.Lookup(ref.Key)
		if len(profile.RequiredSkills.All()) == 0 {
			t.Errorf("built-in profile %q has no required skills", ref.Key)
		}
		if len(profile.ExperienceKeywords) == 0 {
			t.Errorf("built-in profile %q has no experience keywords", ref.Key)
		}
	}
}

func TestMergeProfiles(t *testing.T) {
	base := []types.JobProfile{
		sampleProfile("a", "Engineering"),
		sampleProfile("b", "Engineering"),
	}
	override := sampleProfile("a", "Data")
	override.Label = "Overridden"
	extra := sampleProfile("z", "Data")

	merged := mergeProfiles(base, []types.JobProfile{override, extra})

	if len(merged) != 3 {
		t.Fatalf("merged %d profiles, expected 3", len(merged))
	}
	if merged[0].Label != "Overridden" {
		t.Errorf("merged[0].Label = %q, expected override to win in base position", merged[0].Label)
	}
	if merged[1].Key != "b" || merged[2].Key != "z" {
		t.Errorf("merge order = %v, expected base order then appended keys", []string{merged[0].Key, merged[1].Key, merged[2].Key})
	}
}
