package services

import "github.com/SirClappington/ecommerce-admin-backend/internal/models"

// CategoryChain walks from selectedID towards the root and returns every
// category reached, nearest first. The walk stops at an empty or unknown
// parent reference, or when an id repeats; cyclic reports the latter.
// When ids are duplicated in categories the first entry wins.
func CategoryChain(selectedID string, categories []models.Category) (chain []models.Category, cyclic bool) {
	if selectedID == "" || len(categories) == 0 {
		return nil, false
	}

	byID := make(map[string]models.Category, len(categories))
	for _, c := range categories {
		if _, dup := byID[c.ID]; !dup {
			byID[c.ID] = c
		}
	}

	visited := make(map[string]struct{}, len(categories))
	for id := selectedID; id != ""; {
		if _, seen := visited[id]; seen {
			return chain, true
		}
		cat, ok := byID[id]
		if !ok {
			break
		}
		visited[id] = struct{}{}
		chain = append(chain, cat)
		id = cat.ParentID
	}
	return chain, false
}

// ResolveProperties lists the property definitions a product in
// selectedID should expose: the category's own, then its parent's, up to
// the root. Names repeated across levels are kept as separate entries.
func ResolveProperties(selectedID string, categories []models.Category) []models.PropertyDefinition {
	chain, _ := CategoryChain(selectedID, categories)
	return chainProperties(chain)
}

// chainProperties concatenates the properties of chain in order. The
// result is never nil.
func chainProperties(chain []models.Category) []models.PropertyDefinition {
	props := []models.PropertyDefinition{}
	for _, c := range chain {
		props = append(props, c.Properties...)
	}
	return props
}
