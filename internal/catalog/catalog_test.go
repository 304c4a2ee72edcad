package catalog

import (
	"regexp"
	"strings"
	"testing"
)

var hexColor = regexp.MustCompile(`^#[0-9A-F]{6}$`)

func TestCatalog_Invariants(t *testing.T) {
	seen := make(map[string]struct{})
	for _, e := range Entries() {
		if e.ID == "" || e.ID != strings.ToLower(e.ID) {
			t.Errorf("entry %q: id must be non-empty lowercase", e.ID)
		}
		if _, dup := seen[e.ID]; dup {
			t.Errorf("duplicate id %q", e.ID)
		}
		seen[e.ID] = struct{}{}
		if e.DisplayName == "" {
			t.Errorf("entry %q: empty display name", e.ID)
		}
		if !hexColor.MatchString(e.Color) {
			t.Errorf("entry %q: bad color %q", e.ID, e.Color)
		}
		if len(e.Aliases) == 0 {
			t.Errorf("entry %q: aliases must be non-empty", e.ID)
		}
		for _, a := range e.Aliases {
			if a != strings.ToLower(a) || strings.TrimSpace(a) != a || a == "" {
				t.Errorf("entry %q: alias %q must be trimmed lowercase", e.ID, a)
			}
		}
	}
}

func TestEntries_ReturnsACopy(t *testing.T) {
	a := Entries()
	a[0] = Entry{ID: "clobbered"}
	if Entries()[0].ID == "clobbered" {
		t.Fatal("Entries must not expose the underlying registry")
	}
}

func TestByCategory_CoversEveryEntry(t *testing.T) {
	grouped := ByCategory()
	total := 0
	for cat, group := range grouped {
		for _, e := range group {
			if e.Category != cat {
				t.Errorf("entry %q grouped under %q but tagged %q", e.ID, cat, e.Category)
			}
		}
		total += len(group)
	}
	if want := len(Entries()); total != want {
		t.Fatalf("grouping lost entries: want %d, got %d", want, total)
	}
}

func TestCategories_EachExactlyOnce(t *testing.T) {
	cats := Categories()
	seen := make(map[Category]int)
	for _, c := range cats {
		seen[c]++
	}
	for c, n := range seen {
		if n != 1 {
			t.Errorf("category %q listed %d times", c, n)
		}
	}
	// every entry's category is present
	for _, e := range Entries() {
		if seen[e.Category] == 0 {
			t.Errorf("category %q missing from listing", e.Category)
		}
	}
}
