package solver

import "testing"

func TestDecimalsSolver_Addition(t *testing.T) {
	s := &DecimalsSolver{}
	r := s.Attempt("3.5 + 2.4")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "5.9" {
		t.Errorf("got answer %q, want %q", r.Answer, "5.9")
	}
	if r.Steps[1].Title != "Add" {
		t.Errorf("got step title %q, want %q", r.Steps[1].Title, "Add")
	}
}

func TestDecimalsSolver_AdditionTrimsToWhole(t *testing.T) {
	s := &DecimalsSolver{}
	r := s.Attempt("4.7 + 1.3")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "6" {
		t.Errorf("got answer %q, want %q", r.Answer, "6")
	}
}

func TestDecimalsSolver_Subtraction(t *testing.T) {
	s := &DecimalsSolver{}
	r := s.Attempt("7.8 - 3.2")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "4.6" {
		t.Errorf("got answer %q, want %q", r.Answer, "4.6")
	}
	if r.Steps[1].Title != "Subtract" {
		t.Errorf("got step title %q, want %q", r.Steps[1].Title, "Subtract")
	}
}

func TestDecimalsSolver_ExactBinaryUnfriendlySum(t *testing.T) {
	// 0.1 + 0.2 must come out exactly 0.3.
	s := &DecimalsSolver{}
	r := s.Attempt("0.1 + 0.2")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "0.3" {
		t.Errorf("got answer %q, want %q", r.Answer, "0.3")
	}
}

func TestDecimalsSolver_MixedScales(t *testing.T) {
	s := &DecimalsSolver{}
	r := s.Attempt("2.75 + 1.5")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "4.25" {
		t.Errorf("got answer %q, want %q", r.Answer, "4.25")
	}
}

func TestDecimalsSolver_Round(t *testing.T) {
	s := &DecimalsSolver{}
	r := s.Attempt("round 3.456 to 2 decimal places")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "3.46" {
		t.Errorf("got answer %q, want %q", r.Answer, "3.46")
	}
}

func TestDecimalsSolver_RoundHalfUp(t *testing.T) {
	s := &DecimalsSolver{}
	r := s.Attempt("round 3.455 to 2 decimal places")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "3.46" {
		t.Errorf("got answer %q, want %q", r.Answer, "3.46")
	}
}

func TestDecimalsSolver_RoundPadsPlaces(t *testing.T) {
	s := &DecimalsSolver{}
	r := s.Attempt("round 3.4 to 3 decimal places")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "3.400" {
		t.Errorf("got answer %q, want %q", r.Answer, "3.400")
	}
}

func TestDecimalsSolver_NoMatch(t *testing.T) {
	s := &DecimalsSolver{}
	if r := s.Attempt("3 + 4"); r != nil {
		t.Errorf("got %+v for integer expression, want nil", r)
	}
}

func TestFixedRounding(t *testing.T) {
	cases := []struct {
		in     string
		places int
		want   string
	}{
		{"3.456", 2, "3.46"},
		{"3.454", 2, "3.45"},
		{"3.455", 2, "3.46"},
		{"9.99", 1, "10.0"},
		{"1.5", 0, "2"},
	}
	for _, c := range cases {
		got := parseFixed(c.in).roundHalfUp(c.places).String()
		if got != c.want {
			t.Errorf("roundHalfUp(%s, %d) = %q, want %q", c.in, c.places, got, c.want)
		}
	}
}
