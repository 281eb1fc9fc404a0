package adposition

import "testing"

func TestAllIsClosed(t *testing.T) {
	got := All()
	if len(got) != 6 {
		t.Fatalf("expected 6 adpositions, got %d", len(got))
	}

	want := []string{"across", "through", "along", "past", "around", "beyond"}
	for i, a := range got {
		if string(a) != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], a)
		}
	}
}

func TestLookup(t *testing.T) {
	if _, ok := Lookup("along"); !ok {
		t.Errorf("expected along to be an adposition")
	}

	for _, w := range []string{"alongside", "Along", "pasta", "", "into"} {
		if _, ok := Lookup(w); ok {
			t.Errorf("expected %q not to be an adposition", w)
		}
	}
}

func TestParse(t *testing.T) {
	a, err := Parse("  BEYOND ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != Beyond {
		t.Errorf("expected beyond, got %q", a)
	}

	if _, err := Parse("under"); err == nil {
		t.Errorf("expected error for under")
	}
}

func TestCountsAdd(t *testing.T) {
	c := Counts{Across: 1, Past: 2}
	o := Counts{Past: 3, Beyond: 4}

	sum := c.Add(o)
	if sum[Across] != 1 || sum[Past] != 5 || sum[Beyond] != 4 || sum[Along] != 0 {
		t.Errorf("unexpected sum %v", sum)
	}
	if c[Past] != 2 {
		t.Errorf("Add modified its receiver: %v", c)
	}
	if sum.Total() != 10 {
		t.Errorf("expected total 10, got %d", sum.Total())
	}
}

func TestRatesMax(t *testing.T) {
	r := Rates{Across: 1, Through: 3, Around: 3}
	a, v := r.Max()
	if a != Through || v != 3 {
		t.Errorf("expected through 3, got %s %v", a, v)
	}
}
