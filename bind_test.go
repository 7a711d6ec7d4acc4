package smlogic

import (
	"reflect"
	"testing"
)

// bindNS builds a namespace with one scheme "g" at global offset 10,
// carrying a 2-wide slot "a" with one unit per point.
func bindNS() map[string]nsEntry {
	points := NewMap3D[[]int](V(2, 1, 1))
	points.Set(V(0, 0, 0), []int{0})
	points.Set(V(1, 0, 0), []int{1})
	slot := NewSlot("a", "binary", V(2, 1, 1), points)
	return map[string]nsEntry{
		"g": {offset: 10, slots: []*Slot{slot}},
	}
}

func Test_bind_compile(t *testing.T) {
	b := NewBind("data", "binary", V(2, 1, 1)).
		ConnectFull("g/a")

	slot, bad := b.compile(bindNS(), sideInput)
	if len(bad) != 0 {
		t.Fatalf("unexpected unresolved entries: %v", bad)
	}
	if slot.Name() != "data" || slot.Kind() != "binary" || slot.Bounds() != V(2, 1, 1) {
		t.Errorf("slot header = (%q, %q, %v)", slot.Name(), slot.Kind(), slot.Bounds())
	}
	if got := slot.Point(V(0, 0, 0)); !reflect.DeepEqual(got, []int{10}) {
		t.Errorf("point (0,0,0) = %v, want [10]", got)
	}
	if got := slot.Point(V(1, 0, 0)); !reflect.DeepEqual(got, []int{11}) {
		t.Errorf("point (1,0,0) = %v, want [11]", got)
	}
}

func Test_bind_bad_entry_is_local(t *testing.T) {
	b := NewBind("data", "binary", V(2, 1, 1)).
		Connect(V(0, 0, 0), V(1, 1, 1), "nowhere/a").
		Connect(V(1, 0, 0), V(1, 1, 1), "g/a")

	slot, bad := b.compile(bindNS(), sideInput)
	if len(bad) != 1 {
		t.Fatalf("got %d unresolved entries, want 1: %v", len(bad), bad)
	}
	u := bad[0]
	if u.Missing != MissingScheme || u.Target != "nowhere/a" || u.Scheme != "nowhere" {
		t.Errorf("unresolved = %+v", u)
	}

	// the bad entry must not affect the good one
	if got := slot.Point(V(0, 0, 0)); len(got) != 0 {
		t.Errorf("point behind the bad entry = %v, want empty", got)
	}
	if got := slot.Point(V(1, 0, 0)); !reflect.DeepEqual(got, []int{10}) {
		t.Errorf("point behind the good entry = %v, want [10]", got)
	}
}

func Test_bind_missing_slot_and_sector(t *testing.T) {
	b := NewBind("data", "binary", V(1, 1, 1)).
		ConnectFull("g/b").
		ConnectFull("g/a/low")

	_, bad := b.compile(bindNS(), sideInput)
	if len(bad) != 2 {
		t.Fatalf("got %d unresolved entries, want 2: %v", len(bad), bad)
	}
	if bad[0].Missing != MissingSlot || bad[0].Slot != "b" {
		t.Errorf("first unresolved = %+v, want missing slot b", bad[0])
	}
	if bad[1].Missing != MissingSector || bad[1].Sector != "low" {
		t.Errorf("second unresolved = %+v, want missing sector low", bad[1])
	}
}

// An input bind pulls through the strategy as written; an output bind runs
// it from the target's point of view and mirrors the pairs.
func Test_bind_direction(t *testing.T) {
	shift := MapPoints(func(p Point, start, end Bounds) (Point, bool) {
		q := p.Add(V(1, 0, 0))
		return q, q.X < end.X
	})

	in, _ := NewBind("d", "binary", V(2, 1, 1)).CustomFull("g/a", shift).compile(bindNS(), sideInput)
	if got := in.Point(V(0, 0, 0)); !reflect.DeepEqual(got, []int{11}) {
		t.Errorf("input side point (0,0,0) = %v, want [11]", got)
	}
	if got := in.Point(V(1, 0, 0)); len(got) != 0 {
		t.Errorf("input side point (1,0,0) = %v, want empty", got)
	}

	out, _ := NewBind("d", "binary", V(2, 1, 1)).CustomFull("g/a", shift).compile(bindNS(), sideOutput)
	if got := out.Point(V(1, 0, 0)); !reflect.DeepEqual(got, []int{10}) {
		t.Errorf("output side point (1,0,0) = %v, want [10]", got)
	}
	if got := out.Point(V(0, 0, 0)); len(got) != 0 {
		t.Errorf("output side point (0,0,0) = %v, want empty", got)
	}
}

func Test_bind_out_of_bounds_pairs_dropped(t *testing.T) {
	// Dim without adapted axes proposes a pair per bind point, keeping
	// coordinates as they are; the ones past the 2-wide target must be
	// silently dropped, not reported.
	b := NewBind("d", "binary", V(4, 1, 1)).CustomFull("g/a", Dim(false, false, false))
	slot, bad := b.compile(bindNS(), sideInput)
	if len(bad) != 0 {
		t.Fatalf("unexpected unresolved entries: %v", bad)
	}
	for x := 0; x < 2; x++ {
		if got := slot.Point(V(x, 0, 0)); !reflect.DeepEqual(got, []int{10 + x}) {
			t.Errorf("point (%d,0,0) = %v, want [%d]", x, got, 10+x)
		}
	}
	for x := 2; x < 4; x++ {
		if got := slot.Point(V(x, 0, 0)); len(got) != 0 {
			t.Errorf("point (%d,0,0) = %v, want empty", x, got)
		}
	}
}

func Test_bind_sectors_transplanted(t *testing.T) {
	b := NewBind("d", "binary", V(4, 1, 1))
	if err := b.AddSector("low", V(0, 0, 0), V(2, 1, 1), "bit"); err != nil {
		t.Fatal(err)
	}
	if err := b.AddSector("low", V(2, 0, 0), V(2, 1, 1), "bit"); err == nil {
		t.Error("duplicate sector name accepted")
	}
	if err := b.AddSector("oob", V(3, 0, 0), V(2, 1, 1), "bit"); err == nil {
		t.Error("out-of-bounds sector accepted")
	}

	slot, _ := b.compile(bindNS(), sideInput)
	sec, ok := slot.Sector("low")
	if !ok || sec.Size != V(2, 1, 1) || sec.Kind != "bit" {
		t.Errorf("Sector(low) = (%+v, %v)", sec, ok)
	}
}
