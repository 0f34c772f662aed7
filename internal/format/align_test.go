package format

import "testing"

func TestRoundUpBlock(t *testing.T) {
	cases := []struct {
		in, want uint64
	}{
		{0, 0},
		{1, 8},
		{7, 8},
		{8, 8},
		{9, 16},
		{108, 112},
		{112, 112},
	}
	for _, c := range cases {
		if got := RoundUpBlock(c.in); got != c.want {
			t.Errorf("RoundUpBlock(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestAligned(t *testing.T) {
	if !Aligned(0) || !Aligned(32) || Aligned(33) || Aligned(4) {
		t.Fatalf("Aligned gave wrong answers for 0/32/33/4")
	}
}
