package solver

import "testing"

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		v      float64
		places int
		want   string
	}{
		{5, 2, "5"},
		{5.0, 2, "5"},
		{7.5, 2, "7.5"},
		{7.50, 2, "7.5"},
		{0.3333333, 4, "0.3333"},
		{13.5, 2, "13.5"},
		{-4, 2, "-4"},
		{2.25, 2, "2.25"},
		{1000000, 2, "1000000"},
	}
	for _, c := range cases {
		if got := formatNumber(c.v, c.places); got != c.want {
			t.Errorf("formatNumber(%v, %d) = %q, want %q", c.v, c.places, got, c.want)
		}
	}
}

func TestExtractInts(t *testing.T) {
	got := extractInts("mode of 2, 14, 4")
	want := []int{2, 14, 4}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestHasDecimalLiteral(t *testing.T) {
	if !hasDecimalLiteral("3.5 + 1.2") {
		t.Error("got false for decimal expression, want true")
	}
	if hasDecimalLiteral("3 + 5") {
		t.Error("got true for integer expression, want false")
	}
}
