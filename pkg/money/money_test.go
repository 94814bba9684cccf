package money

import "testing"

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{1234.5678, 1234.57},
		{99.994, 99.99},
		{0.005, 0.01},
		{-2.345, -2.35},
		{0, 0},
	}
	for _, c := range cases {
		if got := Round2(c.in); got != c.want {
			t.Errorf("Round2(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestFormat(t *testing.T) {
	if got := Format(5); got != "5.00" {
		t.Errorf("Format(5) = %q, want %q", got, "5.00")
	}
	if got := Format(1234.5); got != "1234.50" {
		t.Errorf("Format(1234.5) = %q, want %q", got, "1234.50")
	}
}
