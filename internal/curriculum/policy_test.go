package curriculum

import "testing"

func TestLoadClass1(t *testing.T) {
	p, err := Load("nctb", 1)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p == nil {
		t.Fatal("expected a class 1 policy")
	}
	if p.Curriculum != "nctb" || p.ClassLevel != 1 {
		t.Errorf("got %s class %d, want nctb class 1", p.Curriculum, p.ClassLevel)
	}
	if p.Constraints.AllowFractions == nil || *p.Constraints.AllowFractions {
		t.Error("class 1 should disallow fractions")
	}
	if p.Constraints.MaxNumber == nil || *p.Constraints.MaxNumber != 100 {
		t.Errorf("got max number %v, want 100", p.Constraints.MaxNumber)
	}
	add := p.TopicConstraints.Addition
	if add.MaxSum == nil || *add.MaxSum != 20 || !add.EnforceGlobally {
		t.Errorf("got addition rules %+v, want max_sum 20 enforced globally", add)
	}
	if len(p.TopicsInScope) != 5 {
		t.Errorf("got %d topics in scope, want 5", len(p.TopicsInScope))
	}
	if p.Messages["max_number_exceeded"] == "" {
		t.Error("class 1 should carry a custom max_number message")
	}
}

func TestLoadNormalizesCurriculumName(t *testing.T) {
	p, err := Load("  NCTB  ", 2)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p == nil || p.ClassLevel != 2 {
		t.Fatal("uppercase and padded curriculum name should still resolve")
	}
}

func TestLoadMissingProfile(t *testing.T) {
	cases := []struct {
		curriculum string
		class      int
	}{
		{"nctb", 0},
		{"nctb", 9},
		{"cambridge", 1},
		{"", 1},
	}
	for _, c := range cases {
		p, err := Load(c.curriculum, c.class)
		if err != nil {
			t.Errorf("Load(%q, %d): unexpected error %v", c.curriculum, c.class, err)
		}
		if p != nil {
			t.Errorf("Load(%q, %d): expected no policy", c.curriculum, c.class)
		}
	}
}

func TestResolveDirect(t *testing.T) {
	p := Resolve("nctb", 3)
	if p == nil {
		t.Fatal("expected a policy")
	}
	if p.ClassLevel != 3 || p.FallbackFrom != "" {
		t.Errorf("got class %d fallback %q, want class 3 with no fallback", p.ClassLevel, p.FallbackFrom)
	}
}

func TestResolveFallsBackToDefault(t *testing.T) {
	p := Resolve("cambridge", 2)
	if p == nil {
		t.Fatal("expected a fallback policy")
	}
	if p.Curriculum != "nctb" {
		t.Errorf("got curriculum %q, want nctb", p.Curriculum)
	}
	if p.FallbackFrom != "cambridge" {
		t.Errorf("got fallback from %q, want cambridge", p.FallbackFrom)
	}
}

func TestResolveEmptyUsesDefault(t *testing.T) {
	p := Resolve("", 4)
	if p == nil {
		t.Fatal("expected default policy")
	}
	if p.Curriculum != "nctb" || p.ClassLevel != 4 || p.FallbackFrom != "" {
		t.Errorf("got %s class %d fallback %q, want plain nctb class 4", p.Curriculum, p.ClassLevel, p.FallbackFrom)
	}
}

func TestResolveUnknownClassReturnsNil(t *testing.T) {
	if p := Resolve("nctb", 9); p != nil {
		t.Errorf("expected nil for class 9, got %+v", p)
	}
}

func TestListProfiles(t *testing.T) {
	refs := List()
	if len(refs) != 5 {
		t.Fatalf("got %d profiles, want 5", len(refs))
	}
	for i, ref := range refs {
		if ref.Curriculum != "nctb" {
			t.Errorf("profile %d: got curriculum %q, want nctb", i, ref.Curriculum)
		}
		if ref.ClassLevel != i+1 {
			t.Errorf("profile %d: got class %d, want %d", i, ref.ClassLevel, i+1)
		}
	}
}
