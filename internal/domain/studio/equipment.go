package studio

import (
	"context"
	"strconv"
	"strings"
)

// EquipmentLookup resolves equipment ids to names.
type EquipmentLookup interface {
	NamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error)
}

// ResolveEquipmentNames maps stored references to display names.
// Unknown or non-numeric references render as "Equipment {ref}".
func ResolveEquipmentNames(refs []string, names map[int64]string) []string {
	out := make([]string, len(refs))
	for i, ref := range refs {
		if id, ok := parseRef(ref); ok {
			if name, found := names[id]; found {
				out[i] = name
				continue
			}
		}
		out[i] = "Equipment " + ref
	}
	return out
}

// referencedIDs collects the distinct numeric references of the studios.
func referencedIDs(studios ...*Studio) []int64 {
	seen := map[int64]bool{}
	var ids []int64
	for _, s := range studios {
		for _, ref := range s.Equipment {
			id, ok := parseRef(ref)
			if !ok || seen[id] {
				continue
			}
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}

func parseRef(ref string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(ref), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
