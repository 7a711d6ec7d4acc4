package presets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sm "github.com/veligor/smlogic"
	"github.com/veligor/smlogic/presets"
)

func TestAdderSection(t *testing.T) {
	s := presets.AdderSection()
	assert.Equal(t, 7, s.UnitCount())

	for _, name := range []string{"a", "b", sm.DefaultSlot} {
		in := s.Input(name)
		require.NotNil(t, in, name)
		assert.Equal(t, sm.V(1, 1, 1), in.Bounds())
		assert.Equal(t, "bit", in.Kind())
	}
	require.NotNil(t, s.Output("res"))
	out := s.Output(sm.DefaultSlot)
	require.NotNil(t, out)

	// the carry output fans out from the three AND gates
	assert.Len(t, out.Point(sm.V(0, 0, 0)), 3)
}

func TestAdder(t *testing.T) {
	const bits = 4
	s := presets.Adder(bits)
	assert.Equal(t, bits*7, s.UnitCount())

	a := s.Input("a")
	b := s.Input("b")
	res := s.Output(sm.DefaultSlot)
	require.NotNil(t, a)
	require.NotNil(t, b)
	require.NotNil(t, res)
	assert.Equal(t, sm.V(bits, 1, 1), a.Bounds())
	assert.Equal(t, sm.V(bits, 1, 1), b.Bounds())
	assert.Equal(t, sm.V(bits, 1, 1), res.Bounds())
	assert.Equal(t, "binary", a.Kind())

	units := s.Units()
	seen := map[int]bool{}
	for x := 0; x < bits; x++ {
		ids := a.Point(sm.V(x, 0, 0))
		require.Len(t, ids, 1, "bit %d", x)
		assert.False(t, seen[ids[0]], "bit %d aliases another", x)
		seen[ids[0]] = true

		// each input bit drives the sum gate and two carry AND gates
		assert.Len(t, units[ids[0]].Shape.Conns(), 3, "bit %d", x)
	}
	for x := 0; x < bits; x++ {
		assert.Len(t, res.Point(sm.V(x, 0, 0)), 1, "sum bit %d", x)
	}
}

func TestAdderBlueprint(t *testing.T) {
	bp := presets.Adder(2).Blueprint()
	require.Len(t, bp.Bodies, 1)
	assert.Equal(t, 4, bp.Version)
	assert.Len(t, bp.Bodies[0].Childs, 14)
}

func TestMemoryCell(t *testing.T) {
	const word = 4
	s := presets.MemoryCell(word)
	assert.Equal(t, 3*word+1, s.UnitCount())

	data := s.Input("data")
	activate := s.Input("activate")
	out := s.Output(sm.DefaultSlot)
	require.NotNil(t, data)
	require.NotNil(t, activate)
	require.NotNil(t, out)
	assert.Equal(t, sm.V(word, 1, 1), data.Bounds())
	assert.Equal(t, sm.V(1, 1, 1), activate.Bounds())
	assert.Equal(t, "logic", activate.Kind())
	assert.Equal(t, sm.V(word, 1, 1), out.Bounds())

	units := s.Units()
	for i := 0; i < word; i++ {
		ids := data.Point(sm.V(i, 0, 0))
		require.Len(t, ids, 1, "bit %d", i)

		// the input gate drives only its latch, which feeds itself
		conns := units[ids[0]].Shape.Conns()
		require.Len(t, conns, 1, "bit %d", i)
		latch := conns[0]
		assert.Contains(t, units[latch].Shape.Conns(), latch, "bit %d latch", i)

		outIDs := out.Point(sm.V(i, 0, 0))
		require.Len(t, outIDs, 1, "bit %d", i)
		assert.Contains(t, units[latch].Shape.Conns(), outIDs[0], "bit %d output", i)
	}
}
