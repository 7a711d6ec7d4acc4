package smlogic_test

import (
	"reflect"
	"testing"

	"github.com/pkg/errors"

	sm "github.com/veligor/smlogic"
	"github.com/veligor/smlogic/vanilla"
)

func Test_add_name_conflict(t *testing.T) {
	c := sm.PosManual()
	if err := c.Add("gate", vanilla.GateScheme(vanilla.AND)); err != nil {
		t.Fatal(err)
	}
	if err := c.Add("gate", vanilla.GateScheme(vanilla.OR)); err == nil {
		t.Error("duplicate scheme name accepted")
	}
	if err := c.Add("bad/name", vanilla.GateScheme(vanilla.OR)); err == nil {
		t.Error("scheme name with separator accepted")
	}
	if err := c.Add("", vanilla.GateScheme(vanilla.OR)); err == nil {
		t.Error("empty scheme name accepted")
	}
}

func Test_add_mul(t *testing.T) {
	c := sm.PosManual()
	if err := c.AddMul([]string{"a", "b", "x"}, vanilla.GateScheme(vanilla.OR)); err != nil {
		t.Fatal(err)
	}
	// the clash reports an error, the remaining names still land
	if err := c.AddMul([]string{"a", "c"}, vanilla.GateScheme(vanilla.OR)); err == nil {
		t.Error("clashing AddMul reported no error")
	}
	for _, name := range []string{"a", "b", "x", "c"} {
		c.Pos().Place(name, sm.V(0, 0, 0))
	}
	scheme, _, err := c.Compile()
	if err != nil {
		t.Fatal(err)
	}
	if scheme.UnitCount() != 4 {
		t.Errorf("unit count = %d, want 4", scheme.UnitCount())
	}
}

func Test_embedded_copies_do_not_alias(t *testing.T) {
	template := vanilla.GateScheme(vanilla.AND)
	c := sm.PosManual()
	if err := c.AddMul([]string{"a", "b"}, template); err != nil {
		t.Fatal(err)
	}
	c.Pos().PlaceIter(map[string]sm.Point{"a": sm.V(0, 0, 0), "b": sm.V(1, 0, 0)})
	c.Connect("a", "b")
	scheme, _, err := c.Compile()
	if err != nil {
		t.Fatal(err)
	}
	if got := template.Units()[0].Shape.Conns(); len(got) != 0 {
		t.Errorf("compiling leaked connections into the template: %v", got)
	}
	if got := scheme.Units()[0].Shape.Conns(); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("embedded copy connections = %v, want [1]", got)
	}
}

func Test_unplaced_is_fatal(t *testing.T) {
	c := sm.PosManual()
	if err := c.AddMul([]string{"b", "a"}, vanilla.GateScheme(vanilla.AND)); err != nil {
		t.Fatal(err)
	}
	c.Pos().Rotate("a", sm.NegX.Rot()) // rotated but never placed

	_, _, err := c.Compile()
	if err == nil {
		t.Fatal("compile with unplaced schemes succeeded")
	}
	unplaced, ok := errors.Cause(err).(*sm.UnplacedError)
	if !ok {
		t.Fatalf("error type %T, want *UnplacedError", errors.Cause(err))
	}
	if !reflect.DeepEqual(unplaced.Names, []string{"a", "b"}) {
		t.Errorf("unplaced names = %v, want [a b] sorted", unplaced.Names)
	}
}

func Test_connection_diagnostics(t *testing.T) {
	c := sm.PosManual()
	if err := c.Add("gate", vanilla.GateScheme(vanilla.AND)); err != nil {
		t.Fatal(err)
	}
	c.Pos().PlaceLast(sm.V(0, 0, 0))
	c.Connect("gate", "nowhere")
	c.Connect("gate", "gate/nosuch")
	if err := c.BindInput(sm.NewBind("in", "logic", sm.V(1, 1, 1)).ConnectFull("ghost")); err != nil {
		t.Fatal(err)
	}

	scheme, diag, err := c.Compile()
	if err != nil {
		t.Fatal(err)
	}
	if scheme.UnitCount() != 1 {
		t.Errorf("unit count = %d, want 1", scheme.UnitCount())
	}
	if len(diag.Connections) != 2 {
		t.Fatalf("connection diagnostics = %+v, want 2 entries", diag.Connections)
	}
	if diag.Connections[0].To != "nowhere" || diag.Connections[0].Cause.Missing != sm.MissingScheme {
		t.Errorf("first issue = %+v", diag.Connections[0])
	}
	if diag.Connections[1].Cause.Missing != sm.MissingSlot {
		t.Errorf("second issue = %+v", diag.Connections[1])
	}
	if len(diag.Inputs) != 1 || diag.Inputs[0].Bind != "in" {
		t.Errorf("input diagnostics = %+v", diag.Inputs)
	}
	// the unresolved connection contributed nothing
	if got := scheme.Units()[0].Shape.Conns(); len(got) != 0 {
		t.Errorf("connections = %v, want none", got)
	}
}

func Test_bind_name_conflicts(t *testing.T) {
	c := sm.PosManual()
	if err := c.BindInput(sm.NewBind("data", "logic", sm.V(1, 1, 1))); err != nil {
		t.Fatal(err)
	}
	if err := c.BindInput(sm.NewBind("data", "logic", sm.V(1, 1, 1))); err == nil {
		t.Error("duplicate input bind name accepted")
	}
	// same name on the other side is fine
	if err := c.BindOutput(sm.NewBind("data", "logic", sm.V(1, 1, 1))); err != nil {
		t.Errorf("output bind rejected: %v", err)
	}
	if err := c.BindOutput(sm.NewBind("a/b", "logic", sm.V(1, 1, 1))); err == nil {
		t.Error("bind name with separator accepted")
	}
}

func Test_fanout_limit(t *testing.T) {
	build := func() *sm.Combiner[*sm.ManualPos] {
		c := sm.PosManual()
		if err := c.Add("src", vanilla.GateScheme(vanilla.OR)); err != nil {
			t.Fatal(err)
		}
		c.Pos().PlaceLast(sm.V(0, 0, 0))
		if err := c.Add("dst", vanilla.GateGrid(vanilla.AND, "logic", sm.V(16, 16, 1), sm.Identity())); err != nil {
			t.Fatal(err)
		}
		c.Pos().PlaceLast(sm.V(2, 0, 0))
		c.Dim("src", "dst", true, true, false)
		return c
	}

	_, _, err := build().Compile()
	if err == nil {
		t.Fatal("256-way fan-out passed the check")
	}
	fe, ok := errors.Cause(err).(*sm.FanoutError)
	if !ok {
		t.Fatalf("error type %T, want *FanoutError", errors.Cause(err))
	}
	if fe.Limit != sm.MaxConnections {
		t.Errorf("limit = %d, want %d", fe.Limit, sm.MaxConnections)
	}
	if !reflect.DeepEqual(fe.Inputs, []string{"src/_"}) || !reflect.DeepEqual(fe.Outputs, []string{"src/_"}) {
		t.Errorf("affected paths = %v / %v, want [src/_] on both sides", fe.Inputs, fe.Outputs)
	}

	c := build()
	c.DisableFanoutCheck()
	scheme, diag, err := c.Compile()
	if err != nil {
		t.Fatal(err)
	}
	if !diag.Empty() {
		t.Errorf("diagnostics = %+v", diag)
	}
	if got := len(scheme.Units()[0].Shape.Conns()); got != 256 {
		t.Errorf("source connections = %d, want 256", got)
	}
}

func Test_pass(t *testing.T) {
	c := sm.PosManual()
	if err := c.Add("inner", vanilla.GateScheme(vanilla.AND)); err != nil {
		t.Fatal(err)
	}
	c.Pos().PlaceLast(sm.V(0, 0, 0))

	if err := c.PassInput("data", "inner", ""); err != nil {
		t.Fatal(err)
	}
	if err := c.PassOutput("res", "inner/_", "binary"); err != nil {
		t.Fatal(err)
	}

	if err := c.PassInput("bad", "ghost", ""); err == nil {
		t.Error("pass to a missing scheme accepted")
	}
	if err := c.PassInput("bad", "inner/nosuch", ""); err == nil {
		t.Error("pass to a missing slot accepted")
	}
	if err := c.PassInput("bad", "inner/_/sector", ""); err == nil {
		t.Error("pass with a sector segment accepted")
	}
	if err := c.PassInput("bad/name", "inner", ""); err == nil {
		t.Error("pass name with separator accepted")
	}

	scheme, diag, err := c.Compile()
	if err != nil {
		t.Fatal(err)
	}
	if !diag.Empty() {
		t.Fatalf("diagnostics = %+v", diag)
	}

	in := scheme.Input("data")
	if in == nil {
		t.Fatal("passed input missing")
	}
	if in.Kind() != "logic" {
		t.Errorf("passed input kind = %q, want the slot's own", in.Kind())
	}
	if got := in.Point(sm.V(0, 0, 0)); !reflect.DeepEqual(got, []int{0}) {
		t.Errorf("passed input points = %v, want [0]", got)
	}

	out := scheme.Output("res")
	if out == nil {
		t.Fatal("passed output missing")
	}
	if out.Kind() != "binary" {
		t.Errorf("passed output kind = %q, want the override", out.Kind())
	}
}

func Test_pass_preserves_sectors(t *testing.T) {
	// build a scheme whose input slot declares sectors, then forward it
	inner := sm.PosManual()
	if err := inner.Add("lo", vanilla.GateScheme(vanilla.OR)); err != nil {
		t.Fatal(err)
	}
	inner.Pos().PlaceLast(sm.V(0, 0, 0))
	if err := inner.Add("hi", vanilla.GateScheme(vanilla.OR)); err != nil {
		t.Fatal(err)
	}
	inner.Pos().PlaceLast(sm.V(1, 0, 0))
	bus := sm.NewBind("bus", "binary", sm.V(2, 1, 1)).
		Connect(sm.V(0, 0, 0), sm.V(1, 1, 1), "lo").
		Connect(sm.V(1, 0, 0), sm.V(1, 1, 1), "hi")
	if err := bus.AddSector("low", sm.V(0, 0, 0), sm.V(1, 1, 1), "bit"); err != nil {
		t.Fatal(err)
	}
	if err := inner.BindInput(bus); err != nil {
		t.Fatal(err)
	}
	cell, diag, err := inner.Compile()
	if err != nil {
		t.Fatal(err)
	}
	if !diag.Empty() {
		t.Fatalf("diagnostics = %+v", diag)
	}

	outer := sm.PosManual()
	if err := outer.Add("cell", cell); err != nil {
		t.Fatal(err)
	}
	outer.Pos().PlaceLast(sm.V(0, 0, 0))
	if err := outer.PassInput("bus", "cell/bus", ""); err != nil {
		t.Fatal(err)
	}
	scheme, diag, err := outer.Compile()
	if err != nil {
		t.Fatal(err)
	}
	if !diag.Empty() {
		t.Fatalf("diagnostics = %+v", diag)
	}

	slot := scheme.Input("bus")
	if slot == nil {
		t.Fatal("forwarded slot missing")
	}
	sec, ok := slot.Sector("low")
	if !ok || sec.Size != sm.V(1, 1, 1) || sec.Kind != "bit" {
		t.Errorf("forwarded sector = (%+v, %v)", sec, ok)
	}
	if got := slot.Point(sm.V(1, 0, 0)); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("forwarded point (1,0,0) = %v, want [1]", got)
	}
}
