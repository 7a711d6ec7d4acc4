// Copyright 2023 Ilya Veligor <veligor.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package vanilla

import (
	"github.com/veligor/smlogic"
	"github.com/veligor/smlogic/blueprint"
)

// BlockType enumerates the creative-mode building blocks.
//
type BlockType int

const (
	Concrete1 BlockType = iota
	Wood1
	Metal1
	Barrier
	Tile
	Brick
	Glass
	GlassTile
	PathLight
	Spaceship
	Cardboard
	ScrapWood
	Wood2
	Wood3
	ScrapMetal
	Metal2
	Metal3
	ScrapStone
	Concrete2
	Concrete3
	CrackedConcrete
	ConcreteSlab
	RustedMetal
	ExtrudedMetal
	BubblePlastic
	Plastic
	Insulation
	Plaster
	Carpet
	PaintedWall
	Net
	SolidNet
	PunchedSteel
	StripedNet
	SquareMesh
	Restroom
	DiamondPlate
	Aluminium
	WornMetal
	SpaceshipFloor
	Sand
	ArmoredGlass
)

var blockInfo = [...]struct {
	uuid  string
	color string
}{
	Concrete1:       {"a6c6ce30-dd47-4587-b475-085d55c6a3b4", "8d8f89"},
	Wood1:           {"df953d9c-234f-4ac2-af5e-f0490b223e71", "9b683a"},
	Metal1:          {"8aedf6c2-94e1-4506-89d4-a0227c552f1e", "675f51"},
	Barrier:         {"09ca2713-28ee-4119-9622-e85490034758", "ce9e0c"},
	Tile:            {"8ca49bff-eeef-4b43-abd0-b527a567f1b7", "bfdfed"},
	Brick:           {"0603b36e-0bdb-4828-b90c-ff19abcdfe34", "af967b"},
	Glass:           {"5f41af56-df4c-4837-9b3c-10781335757f", "e4f8ff"},
	GlassTile:       {"749f69e0-56c9-488c-adf6-66c58531818f", "c2f9ff"},
	PathLight:       {"073f92af-f37e-4aff-96b3-d66284d5081c", "727272"},
	Spaceship:       {"027bd4ec-b16d-47d2-8756-e18dc2af3eb6", "820a0a"},
	Cardboard:       {"f0cba95b-2dc4-4492-8fd9-36546a4cb5aa", "a48052"},
	ScrapWood:       {"1fc74a28-addb-451a-878d-c3c605d63811", "cd9d71"},
	Wood2:           {"1897ee42-0291-43e4-9645-8c5a5d310398", "dc9153"},
	Wood3:           {"061b5d4b-0a6a-4212-b0ae-9e9681f1cbfb", "f2ad74"},
	ScrapMetal:      {"1f7ac0bb-ad45-4246-9817-59bdf7f7ab39", "df6226"},
	Metal2:          {"1016cafc-9f6b-40c9-8713-9019d399783f", "869499"},
	Metal3:          {"c0dfdea5-a39d-433a-b94a-299345a5df46", "88a5ac"},
	ScrapStone:      {"30a2288b-e88e-4a92-a916-1edbfc2b2dac", "848484"},
	Concrete2:       {"ff234e42-5da4-43cc-8893-940547c97882", "8d8f89"},
	Concrete3:       {"e281599c-2343-4c86-886e-b2c1444e8810", "c9d7dc"},
	CrackedConcrete: {"f5ceb7e3-5576-41d2-82d2-29860cf6e20e", "8d8f89"},
	ConcreteSlab:    {"cd0eff89-b693-40ee-bd4c-3500b23df44e", "af967b"},
	RustedMetal:     {"220b201e-aa40-4995-96c8-e6007af160de", "738192"},
	ExtrudedMetal:   {"25a5ffe7-11b1-4d3e-8d7a-48129cbaf05e", "858795"},
	BubblePlastic:   {"f406bf6e-9fd5-4aa0-97c1-0b3c2118198e", "9acfd2"},
	Plastic:         {"628b2d61-5ceb-43e9-8334-a4135566df7a", "0b9ade"},
	Insulation:      {"9be6047c-3d44-44db-b4b9-9bcf8a9aab20", "fff063"},
	Plaster:         {"b145d9ae-4966-4af6-9497-8fca33f9aee3", "979797"},
	Carpet:          {"febce8a6-6c05-4e5d-803b-dfa930286944", "368085"},
	PaintedWall:     {"e981c337-1c8a-449c-8602-1dd990cbba3a", "eeeeee"},
	Net:             {"4aa2a6f0-65a4-42e3-bf96-7dec62570e0b", "435359"},
	SolidNet:        {"3d0b7a6e-5b40-474c-bbaf-efaa54890e6a", "888888"},
	PunchedSteel:    {"ea6864db-bb4f-4a89-b9ec-977849b6713a", "888888"},
	StripedNet:      {"a479066d-4b03-46b5-8437-e99fec3f43ee", "888888"},
	SquareMesh:      {"b4fa180c-2111-4339-b6fd-aed900b57093", "c36512"},
	Restroom:        {"920b40c8-6dfc-42e7-84e1-d7e7e73128f6", "607b79"},
	DiamondPlate:    {"f7d4bfed-1093-49b9-be32-394c872a1ef4", "43494d"},
	Aluminium:       {"3e3242e4-1791-4f70-8d1d-0ae9ba3ee94c", "727272"},
	WornMetal:       {"d740a27d-cc0f-4866-9e07-6a5c516ad719", "66837c"},
	SpaceshipFloor:  {"4ad97d49-c8a5-47f3-ace3-d56ba3affe50", "dadada"},
	Sand:            {"c56700d9-bbe5-4b17-95ed-cef05bd8be1b", "c69146"},
	ArmoredGlass:    {"b5ee5539-75a2-4fef-873b-ef7c9398b3f5", "3abfb1"},
}

// UUID returns the block's shape id.
//
func (t BlockType) UUID() string { return blockInfo[t].uuid }

// DefaultColor returns the block's stock paint color.
//
func (t BlockType) DefaultColor() string { return blockInfo[t].color }

// Block is a static body of one block type stretched over a physical
// size. Blocks carry no controller, so they serialize with a bounds
// record instead.
//
type Block struct {
	typ  BlockType
	size smlogic.Bounds
}

// BlockBase returns the bare shape base, usable as the inert replacement
// in Scheme.ReplaceUnused.
//
func BlockBase(typ BlockType, size smlogic.Bounds) Block {
	return Block{typ: typ, size: size}
}

// NewBlock returns a block shape of the given type and size.
//
func NewBlock(typ BlockType, size smlogic.Bounds) *smlogic.Shape {
	return smlogic.NewShape(BlockBase(typ, size))
}

// BlockScheme returns a single block wrapped into a scheme.
//
func BlockScheme(typ BlockType, size smlogic.Bounds) *smlogic.Scheme {
	return smlogic.SchemeFromShape(NewBlock(typ, size))
}

// Type returns the block type.
//
func (b Block) Type() BlockType { return b.typ }

func (b Block) Size() smlogic.Bounds { return b.size }
func (b Block) HasInput() bool       { return false }
func (b Block) HasOutput() bool      { return false }

func (b Block) Build(data smlogic.BuildData) blueprint.Child {
	xaxis, zaxis, offset := data.Rot.GameAxes()
	pos := data.Pos.Add(offset)
	color := data.Color
	if color == "" {
		color = b.typ.DefaultColor()
	}
	return blueprint.Child{
		Color:   color,
		ShapeID: b.typ.UUID(),
		XAxis:   xaxis,
		ZAxis:   zaxis,
		Pos:     blueprint.Pos{X: pos.X, Y: pos.Y, Z: pos.Z},
		Bounds:  &blueprint.Box{X: b.size.X, Y: b.size.Y, Z: b.size.Z},
	}
}
