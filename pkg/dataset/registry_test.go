package dataset

import "testing"

func TestGetKnownDistributions(t *testing.T) {
	for _, name := range []string{"uniform", "normal", "pareto"} {
		s, err := Get(name)
		if err != nil {
			t.Errorf("Get(%q) failed: %v", name, err)
		}
		if s == nil {
			t.Errorf("Get(%q) returned nil sampler", name)
		}
	}
}

func TestGetUnknownDistribution(t *testing.T) {
	if _, err := Get("zipf"); err == nil {
		t.Error("Expected error for unknown distribution, got nil")
	}
}

func TestListEmissionOrder(t *testing.T) {
	want := []string{"uniform", "normal", "pareto"}
	got := List()
	if len(got) != len(want) {
		t.Fatalf("List() returned %d names, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGetReturnsFreshInstances(t *testing.T) {
	a, _ := Get("uniform")
	b, _ := Get("uniform")
	if a == b {
		t.Error("Get returned the same sampler instance twice")
	}
}
