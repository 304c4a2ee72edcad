// Package catalog is the canonical registry of known services and merchants,
// used to enrich user-entered payment names with brand metadata (color, icon,
// category). The registry is compile-time data: read-only, never mutated.
package catalog

// Category tags a catalog entry with its service domain.
type Category string

const (
	Streaming    Category = "streaming"
	Music        Category = "music"
	Gaming       Category = "gaming"
	Productivity Category = "productivity"
	Cloud        Category = "cloud"
	Security     Category = "security"
	Fitness      Category = "fitness"
	Finance      Category = "finance"
	Utilities    Category = "utilities"
	Housing      Category = "housing"
	Debt         Category = "debt"
	Legal        Category = "legal"
	Education    Category = "education"
)

// Entry is one canonical service record.
//
// Icon is either a slug resolvable to a bundled icon asset, an explicit
// external URL, or empty for the generic fallback glyph. Aliases are
// lowercase name variants a user might type; the canonical name is always
// among them.
type Entry struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"display_name"`
	Color       string   `json:"color"`
	Icon        string   `json:"icon,omitempty"`
	Category    Category `json:"category"`
	Aliases     []string `json:"aliases"`
}

// Entries returns the catalog in its canonical, deterministic order.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}
