package registry

import "testing"

func TestExampleTableCompleteness(t *testing.T) {
	for _, key := range Examples.Keys() {
		e, ok := Examples.Lookup(key)
		if !ok {
			t.Fatalf("Keys() returned %q but Lookup missed it", key)
		}
		if e.Key != key {
			t.Errorf("entry key %q does not match table key %q", e.Key, key)
		}
		if e.Title == "" || e.Description == "" {
			t.Errorf("example %s has empty title or description", key)
		}
		if len(e.Concepts) == 0 {
			t.Errorf("example %s has no concepts", key)
		}
		assertDifficulty(t, key, e.Difficulty)
	}
}

func TestCategoryTableCompleteness(t *testing.T) {
	for _, key := range Categories.Keys() {
		c, ok := Categories.Lookup(key)
		if !ok {
			t.Fatalf("Keys() returned %q but Lookup missed it", key)
		}
		if c.Title == "" || c.Description == "" {
			t.Errorf("category %s has empty title or description", key)
		}
		if len(c.Examples) == 0 {
			t.Errorf("category %s lists no examples", key)
		}
		assertDifficulty(t, key, c.Difficulty)
	}
}

func TestDocTopicTableCompleteness(t *testing.T) {
	for _, key := range DocTopics.Keys() {
		d, ok := DocTopics.Lookup(key)
		if !ok {
			t.Fatalf("Keys() returned %q but Lookup missed it", key)
		}
		if d.ContractFile == "" || d.TestFile == "" {
			t.Errorf("topic %s is missing source file paths", key)
		}
		if d.Chapter == "" {
			t.Errorf("topic %s has no chapter", key)
		}
	}
}

// Shipped category references happen to be clean; doctor relies on this
// staying true for its [OK] path.
func TestShippedCategoryReferencesResolve(t *testing.T) {
	for _, c := range Categories.All() {
		for _, key := range c.Examples {
			if !Examples.Has(key) {
				t.Errorf("category %s references unknown example %q", c.Key, key)
			}
		}
	}
}

func TestUnknownNameRejected(t *testing.T) {
	if Examples.Has("definitely-not-a-real-name") {
		t.Error("unknown example name reported as registered")
	}
	if Categories.Has("nonexistent") {
		t.Error("unknown category name reported as registered")
	}
	if _, ok := DocTopics.Lookup("nope"); ok {
		t.Error("unknown topic name returned a config")
	}
}

func TestFHECounterConfig(t *testing.T) {
	e, ok := Examples.Lookup("fhe-counter")
	if !ok {
		t.Fatal("fhe-counter must be registered")
	}
	if e.Title != "FHE Counter" {
		t.Errorf("Title = %q, want %q", e.Title, "FHE Counter")
	}
	if e.Difficulty != Beginner {
		t.Errorf("Difficulty = %q, want beginner", e.Difficulty)
	}
}

func assertDifficulty(t *testing.T, key string, d Difficulty) {
	t.Helper()
	switch d {
	case Beginner, Intermediate, Advanced:
	default:
		t.Errorf("entry %s has invalid difficulty %q", key, d)
	}
}
