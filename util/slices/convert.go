// Package slices holds helpers for loosely typed YAML sequences.
package slices

// PartitionStrings splits a decoded YAML list into its plain strings and
// everything else, keeping the order within each part.
func PartitionStrings(slice []interface{}) ([]string, []interface{}) {
	var (
		strs []string
		rest []interface{}
	)

	for _, intf := range slice {
		switch v := intf.(type) {
		case string:
			strs = append(strs, v)
		default:
			rest = append(rest, v)
		}
	}

	return strs, rest
}
