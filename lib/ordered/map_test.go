package ordered

import (
	"slices"
	"testing"
)

func TestSetKeepsPositionOnOverwrite(t *testing.T) {
	m := New[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	if replaced := m.Set("a", 10); !replaced {
		t.Error("Set on existing key should report replacement")
	}

	if got, want := m.Keys(), []string{"a", "b", "c"}; !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if v, _ := m.Get("a"); v != 10 {
		t.Errorf("Get(a) = %d, want 10", v)
	}
	if m.Len() != 3 {
		t.Errorf("Len() = %d, want 3", m.Len())
	}
}

func TestDeleteReindexes(t *testing.T) {
	m := New[string, int]()
	for i, k := range []string{"a", "b", "c", "d"} {
		m.Set(k, i)
	}

	if !m.Delete("b") {
		t.Fatal("Delete(b) = false, want true")
	}
	if m.Delete("b") {
		t.Error("second Delete(b) = true, want false")
	}

	if got, want := m.Keys(), []string{"a", "c", "d"}; !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}

	// Overwrites after a delete must still land on the shifted slot.
	m.Set("d", 30)
	if got, want := m.Values(), []int{0, 2, 30}; !slices.Equal(got, want) {
		t.Errorf("Values() = %v, want %v", got, want)
	}

	// A deleted key comes back at the end.
	m.Set("b", 1)
	if got, want := m.Keys(), []string{"a", "c", "d", "b"}; !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestAllStopsEarly(t *testing.T) {
	m := New[int, string]()
	m.Set(1, "one")
	m.Set(2, "two")
	m.Set(3, "three")

	var seen []int
	for k := range m.All() {
		seen = append(seen, k)
		if k == 2 {
			break
		}
	}
	if !slices.Equal(seen, []int{1, 2}) {
		t.Errorf("seen = %v, want [1 2]", seen)
	}
}

func TestGetMissing(t *testing.T) {
	m := New[string, int]()
	if v, ok := m.Get("nope"); ok || v != 0 {
		t.Errorf("Get(nope) = %d, %v; want 0, false", v, ok)
	}
}
