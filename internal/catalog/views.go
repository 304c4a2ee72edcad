package catalog

// ByCategory groups the catalog by category tag.
func ByCategory() map[Category][]Entry {
	out := make(map[Category][]Entry)
	for _, e := range entries {
		out[e.Category] = append(out[e.Category], e)
	}
	return out
}

// Categories lists each category present in the catalog exactly once, in
// order of first appearance.
func Categories() []Category {
	seen := make(map[Category]struct{}, len(entries))
	out := make([]Category, 0, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.Category]; ok {
			continue
		}
		seen[e.Category] = struct{}{}
		out = append(out, e.Category)
	}
	return out
}
