package chess

import "testing"

func TestInsufficientMaterial(t *testing.T) {
	cases := []struct {
		fen  string
		want bool
	}{
		{"8/8/8/8/8/8/8/K6k w - - 0 1", true},
		{"8/8/8/8/8/4k3/8/4K2B w - - 0 1", true},
		{"8/8/8/8/3b4/4k3/8/4K2B w - - 0 1", false},
	}
	for _, c := range cases {
		pos := mustPosition(t, c.fen)
		if got := pos.IsInsufficientMaterial(); got != c.want {
			t.Errorf("IsInsufficientMaterial(%q) = %v, want %v", c.fen, got, c.want)
		}
	}
}
