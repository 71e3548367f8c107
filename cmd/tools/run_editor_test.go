package tools

import "testing"

func TestLineOf(t *testing.T) {
	text := "a\nb\n<figure>\n"

	tests := []struct {
		offset, line int
	}{
		{0, 1},
		{2, 2},
		{4, 3},
		{100, 4},
	}

	for _, tt := range tests {
		if got := LineOf(text, tt.offset); got != tt.line {
			t.Errorf("LineOf(%d) = %d, want %d", tt.offset, got, tt.line)
		}
	}
}
