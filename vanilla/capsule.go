package vanilla

import (
	"github.com/veligor/smlogic"
	"github.com/veligor/smlogic/blueprint"
)

// TotebotCapsuleUUID is the shape id of the totebot head capsule.
const TotebotCapsuleUUID = "34d22fc5-0a45-4d71-9aaf-64df1355c272"

// DefaultCapsuleColor paints capsules without an assigned color.
const DefaultCapsuleColor = "49642d"

// TotebotCapsule is a decorative part without logic connections. Its
// controller record still needs an id and explicit null fields, the game
// rejects the record otherwise.
//
type TotebotCapsule struct{}

// NewTotebotCapsule returns a capsule shape.
//
func NewTotebotCapsule() *smlogic.Shape {
	return smlogic.NewShape(TotebotCapsule{})
}

func (TotebotCapsule) Size() smlogic.Bounds { return smlogic.V(7, 7, 6) }
func (TotebotCapsule) HasInput() bool       { return false }
func (TotebotCapsule) HasOutput() bool      { return false }

func (TotebotCapsule) Build(data smlogic.BuildData) blueprint.Child {
	xaxis, zaxis, offset := data.Rot.GameAxes()
	pos := data.Pos.Add(offset)
	color := data.Color
	if color == "" {
		color = DefaultCapsuleColor
	}
	return blueprint.Child{
		Color:   color,
		ShapeID: TotebotCapsuleUUID,
		XAxis:   xaxis,
		ZAxis:   zaxis,
		Pos:     blueprint.Pos{X: pos.X, Y: pos.Y, Z: pos.Z},
		Controller: &blueprint.Controller{
			Containers:  blueprint.Null,
			Controllers: nil,
			Joints:      blueprint.Null,
			ID:          data.ID,
		},
	}
}
