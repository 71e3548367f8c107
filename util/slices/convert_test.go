package slices

import "testing"

func TestPartitionStrings(t *testing.T) {
	strs, rest := PartitionStrings([]interface{}{"a", 1, "b", map[interface{}]interface{}{"k": "v"}})

	if len(strs) != 2 || strs[0] != "a" || strs[1] != "b" {
		t.Errorf("strings = %v", strs)
	}
	if len(rest) != 2 || rest[0] != 1 {
		t.Errorf("rest = %v", rest)
	}
}
