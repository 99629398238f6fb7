package solver

import (
	"testing"

	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

func TestGeometrySolver_RectanglePerimeterByForm(t *testing.T) {
	s := &GeometrySolver{}
	r := s.Attempt("perimeter of a rectangle 5cm by 3cm")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Topic != topicgraph.Geometry {
		t.Errorf("got topic %q, want %q", r.Topic, topicgraph.Geometry)
	}
	if r.Answer != "16 cm" {
		t.Errorf("got answer %q, want %q", r.Answer, "16 cm")
	}
	if r.Steps[1].Text != "2 × (5 + 3) = 2 × 8." {
		t.Errorf("got step text %q", r.Steps[1].Text)
	}
}

func TestGeometrySolver_RectanglePerimeterLengthWidth(t *testing.T) {
	s := &GeometrySolver{}
	r := s.Attempt("perimeter of rectangle with length 8 and width 5")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "26 cm" {
		t.Errorf("got answer %q, want %q", r.Answer, "26 cm")
	}
}

func TestGeometrySolver_RectanglePerimeterWidthFirst(t *testing.T) {
	s := &GeometrySolver{}
	r := s.Attempt("perimeter with width 5 and length 8")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "26 cm" {
		t.Errorf("got answer %q, want %q", r.Answer, "26 cm")
	}
}

func TestGeometrySolver_SquarePerimeter(t *testing.T) {
	s := &GeometrySolver{}
	r := s.Attempt("perimeter of a square with side 4cm")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "16 cm" {
		t.Errorf("got answer %q, want %q", r.Answer, "16 cm")
	}
	if r.Steps[0].Title != "Square perimeter" {
		t.Errorf("got step title %q, want %q", r.Steps[0].Title, "Square perimeter")
	}
}

func TestGeometrySolver_RectangleArea(t *testing.T) {
	s := &GeometrySolver{}
	r := s.Attempt("area of a rectangle 5cm by 3cm")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "15 cm²" {
		t.Errorf("got answer %q, want %q", r.Answer, "15 cm²")
	}
}

func TestGeometrySolver_RectangleAreaFormsAgree(t *testing.T) {
	// Both phrasings must land on the same formula and rendering.
	s := &GeometrySolver{}
	byForm := s.Attempt("area of a rectangle 5cm by 3cm")
	named := s.Attempt("area of rectangle with length 5 width 3")
	if byForm == nil || named == nil {
		t.Fatal("got nil, want results for both phrasings")
	}
	if byForm.Answer != named.Answer {
		t.Errorf("answers differ: %q vs %q", byForm.Answer, named.Answer)
	}
	if named.Answer != "15 cm²" {
		t.Errorf("got answer %q, want %q", named.Answer, "15 cm²")
	}
}

func TestGeometrySolver_SquareArea(t *testing.T) {
	s := &GeometrySolver{}
	r := s.Attempt("area of a square with side 4")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "16 cm²" {
		t.Errorf("got answer %q, want %q", r.Answer, "16 cm²")
	}
}

func TestGeometrySolver_TriangleArea(t *testing.T) {
	s := &GeometrySolver{}
	r := s.Attempt("area of triangle base 6 height 4")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "12 cm²" {
		t.Errorf("got answer %q, want %q", r.Answer, "12 cm²")
	}
	if r.Steps[0].Text != "Area of triangle = ½ × base × height." {
		t.Errorf("got step text %q", r.Steps[0].Text)
	}
}

func TestGeometrySolver_ShapeFact(t *testing.T) {
	s := &GeometrySolver{}
	r := s.Attempt("What is a hexagon?")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "A hexagon has 6 sides and 6 angles." {
		t.Errorf("got answer %q", r.Answer)
	}
	if r.Steps[1].Text != "A hexagon has 6 side(s)." {
		t.Errorf("got step text %q", r.Steps[1].Text)
	}
}

func TestGeometrySolver_CircleFact(t *testing.T) {
	s := &GeometrySolver{}
	r := s.Attempt("tell me about a circle")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Steps[1].Text != "A circle has no sides — it is a curved shape." {
		t.Errorf("got step text %q", r.Steps[1].Text)
	}
}

func TestGeometrySolver_SquareWinsOverRectangle(t *testing.T) {
	// Both shape words present: the earlier entry wins.
	s := &GeometrySolver{}
	r := s.Attempt("is a square a rectangle")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "A square has 4 equal sides and 4 right angles." {
		t.Errorf("got answer %q", r.Answer)
	}
}

func TestGeometrySolver_NoMatch(t *testing.T) {
	s := &GeometrySolver{}
	if r := s.Attempt("what is 2 plus 2"); r != nil {
		t.Errorf("got %+v, want nil", r)
	}
}
