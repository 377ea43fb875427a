package report

import (
	"fmt"
	"sort"
)

// flattenMap flattens nested raw data into dotted-underscore keys so it can
// fill one spreadsheet row. Lists are stringified.
func flattenMap(src map[string]any, parentKey string) map[string]any {
	items := make(map[string]any, len(src))
	for k, v := range src {
		key := k
		if parentKey != "" {
			key = parentKey + "_" + k
		}
		switch typed := v.(type) {
		case map[string]any:
			for nk, nv := range flattenMap(typed, key) {
				items[nk] = nv
			}
		case []any:
			items[key] = fmt.Sprintf("%v", typed)
		default:
			items[key] = v
		}
	}
	return items
}

func sortedFlatKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
