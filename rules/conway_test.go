package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	for neighbors := 0; neighbors <= 8; neighbors++ {
		for _, alive := range []bool{false, true} {
			var want bool
			switch {
			case neighbors < 2 || neighbors > 3:
				want = false
			case neighbors == 3:
				want = true
			default:
				want = alive
			}
			if got := ApplyConwayRules(neighbors, alive); got != want {
				t.Errorf("ApplyConwayRules(%d, %v) = %v, want %v", neighbors, alive, got, want)
			}
		}
	}
}

func TestMooreOffsetsExcludeCenter(t *testing.T) {
	seen := map[[2]int]bool{}
	for _, off := range MooreOffsets {
		if off == [2]int{0, 0} {
			t.Fatal("offsets must not include the cell itself")
		}
		if off[0] < -1 || off[0] > 1 || off[1] < -1 || off[1] > 1 {
			t.Fatalf("offset %v outside the Moore neighborhood", off)
		}
		seen[off] = true
	}
	if len(seen) != 8 {
		t.Fatalf("expected 8 distinct offsets, got %d", len(seen))
	}
}

func TestParseEdgePolicy(t *testing.T) {
	tests := []struct {
		in   string
		want EdgePolicy
		ok   bool
	}{
		{"clipped", Clipped, true},
		{" Toroidal ", Toroidal, true},
		{"wrap", Toroidal, true},
		{"mirror", Clipped, false},
		{"", Clipped, false},
	}
	for _, tt := range tests {
		got, ok := ParseEdgePolicy(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseEdgePolicy(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
	if Toroidal.String() != "toroidal" || Clipped.String() != "clipped" {
		t.Fatal("policy names must round-trip through ParseEdgePolicy")
	}
}
