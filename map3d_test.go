package smlogic_test

import (
	"testing"

	sm "github.com/veligor/smlogic"
)

func Test_map3d(t *testing.T) {
	m := sm.NewMap3D[int](sm.V(2, 3, 4))
	if m.Bounds() != sm.V(2, 3, 4) {
		t.Fatalf("bounds = %v, want (2 3 4)", m.Bounds())
	}

	if !m.Set(sm.V(1, 2, 3), 42) {
		t.Fatal("Set inside bounds failed")
	}
	if v, ok := m.At(sm.V(1, 2, 3)); !ok || v != 42 {
		t.Errorf("At = (%d, %v), want (42, true)", v, ok)
	}
	if v, ok := m.At(sm.V(0, 0, 0)); !ok || v != 0 {
		t.Errorf("unset cell = (%d, %v), want (0, true)", v, ok)
	}

	// out of range on either side
	for _, p := range []sm.Point{
		sm.V(-1, 0, 0), sm.V(2, 0, 0), sm.V(0, 3, 0), sm.V(0, 0, 4),
	} {
		if _, ok := m.At(p); ok {
			t.Errorf("At(%v) inside bounds, want out of range", p)
		}
		if m.Set(p, 1) {
			t.Errorf("Set(%v) succeeded, want out of range", p)
		}
		if m.Mut(p) != nil {
			t.Errorf("Mut(%v) non-nil, want nil", p)
		}
	}

	if ptr := m.Mut(sm.V(0, 1, 0)); ptr == nil {
		t.Fatal("Mut inside bounds returned nil")
	} else {
		*ptr = 7
	}
	if v, _ := m.At(sm.V(0, 1, 0)); v != 7 {
		t.Errorf("after Mut write, At = %d, want 7", v)
	}

	if len(m.Raw()) != 24 {
		t.Errorf("Raw length = %d, want 24", len(m.Raw()))
	}
}

func Test_map3d_raw_order(t *testing.T) {
	m := sm.NewMap3D[int](sm.V(2, 2, 2))
	n := 0
	for z := 0; z < 2; z++ {
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				m.Set(sm.V(x, y, z), n)
				n++
			}
		}
	}
	for i, v := range m.Raw() {
		if v != i {
			t.Fatalf("Raw()[%d] = %d; x must vary fastest", i, v)
		}
	}
}
