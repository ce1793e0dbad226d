package discovery

import "github.com/stylediscover/server/internal/catalog/domain"

// Interleave reorders outfits round-robin across category groups so the
// single-item feed rarely shows the same category twice in a row. Groups
// are keyed by lowercased category in first-encountered order; each group
// keeps its internal order. Round one emits the first item of every group,
// round two the second of every group that still has one, and so on. The
// output is always a permutation of the input, and the ordering is
// deterministic for a given input order.
func Interleave(items []domain.Outfit) []domain.Outfit {
	if len(items) == 0 {
		return []domain.Outfit{}
	}

	groups := make(map[string][]domain.Outfit)
	var order []string
	for _, item := range items {
		key := norm(item.Category)
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], item)
	}

	result := make([]domain.Outfit, 0, len(items))
	for round := 0; len(result) < len(items); round++ {
		for _, key := range order {
			if group := groups[key]; round < len(group) {
				result = append(result, group[round])
			}
		}
	}
	return result
}
