package solver

import (
	"testing"

	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

func TestMeasurementSolver_KmToM(t *testing.T) {
	s := &MeasurementSolver{}
	r := s.Attempt("Convert 3 km to m")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Topic != topicgraph.Measurement {
		t.Errorf("got topic %q, want %q", r.Topic, topicgraph.Measurement)
	}
	if r.Answer != "3000 m" {
		t.Errorf("got answer %q, want %q", r.Answer, "3000 m")
	}
	if r.Steps[1].Text != "3 km = 3000 metres." {
		t.Errorf("got step text %q", r.Steps[1].Text)
	}
}

func TestMeasurementSolver_CmToM(t *testing.T) {
	s := &MeasurementSolver{}
	r := s.Attempt("change 500 cm to m")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "5 m" {
		t.Errorf("got answer %q, want %q", r.Answer, "5 m")
	}
}

func TestMeasurementSolver_LongerUnitWins(t *testing.T) {
	// "mm" must not be read as metres with a stray m left over.
	s := &MeasurementSolver{}
	r := s.Attempt("convert 5 cm to mm")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "50 mm" {
		t.Errorf("got answer %q, want %q", r.Answer, "50 mm")
	}
}

func TestMeasurementSolver_HowManyForm(t *testing.T) {
	s := &MeasurementSolver{}
	r := s.Attempt("How many grams in 3 kg?")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "3000 grams" {
		t.Errorf("got answer %q, want %q", r.Answer, "3000 grams")
	}
}

func TestMeasurementSolver_TimeConversion(t *testing.T) {
	s := &MeasurementSolver{}
	r := s.Attempt("convert 2 hours to minutes")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "120 minutes" {
		t.Errorf("got answer %q, want %q", r.Answer, "120 minutes")
	}
}

func TestMeasurementSolver_FractionalResult(t *testing.T) {
	s := &MeasurementSolver{}
	r := s.Attempt("convert 90 minutes to hours")
	if r == nil {
		t.Fatal("got nil, want a result")
	}
	if r.Answer != "1.5 hours" {
		t.Errorf("got answer %q, want %q", r.Answer, "1.5 hours")
	}
}

func TestMeasurementSolver_CrossCategoryDeclines(t *testing.T) {
	// Weight to length makes no sense; fail closed.
	s := &MeasurementSolver{}
	if r := s.Attempt("convert 3 kg to metres"); r != nil {
		t.Errorf("got %+v for cross-category conversion, want nil", r)
	}
}

func TestMeasurementSolver_NoMatch(t *testing.T) {
	s := &MeasurementSolver{}
	if r := s.Attempt("how long is a piece of string"); r != nil {
		t.Errorf("got %+v, want nil", r)
	}
}
