package controls

import (
	"maps"
	"slices"
)

// Block types with controls. Any other type has none.
const (
	BlockWheel          = "wheel"
	BlockLargeWheel     = "large-wheel"
	BlockPoweredCog     = "powered-cog"
	BlockDrill          = "drill"
	BlockPiston         = "piston"
	BlockSteeringBlock  = "steering-block"
	BlockSteeringHinge  = "steering-hinge"
	BlockSpring         = "spring"
	BlockRopeWinch      = "rope-winch"
	BlockSuspension     = "suspension"
	BlockSpinningBlock  = "spinning-block"
	BlockCircularSaw    = "circular-saw"
	BlockFlamethrower   = "flamethrower"
	BlockFlyingBlock    = "flying-block"
	BlockWaterCannon    = "water-cannon"
	BlockRocket         = "rocket"
	BlockBalloon        = "balloon"
	BlockBallast        = "ballast"
	BlockCamera         = "camera"
	BlockVectorThruster = "vector-thruster"
)

const NameExtension = "EXTENSION"

type blockControls func(id string) []Control

func inputAndSlider(slider string) blockControls {
	return func(id string) []Control {
		return []Control{NewInputControl(id), NewSliderControl(id, slider)}
	}
}

func sliders(names ...string) blockControls {
	return func(id string) []Control {
		out := make([]Control, 0, len(names))
		for _, n := range names {
			out = append(out, NewSliderControl(id, n))
		}
		return out
	}
}

func positiveSliders(names ...string) blockControls {
	return func(id string) []Control {
		out := make([]Control, 0, len(names))
		for _, n := range names {
			out = append(out, newPositiveSlider(id, n))
		}
		return out
	}
}

var blockTable = map[string]blockControls{
	BlockWheel:      inputAndSlider("SPEED"),
	BlockLargeWheel: inputAndSlider("SPEED"),
	BlockPoweredCog: inputAndSlider("SPEED"),
	BlockDrill:      inputAndSlider("SPEED"),
	BlockRopeWinch:  inputAndSlider("SPEED"),
	BlockPiston: func(id string) []Control {
		return []Control{
			NewGroup(id, NameExtension, NewPositionControl(id), NewInputControl(id)),
			NewSliderControl(id, "SPEED"),
		}
	},
	BlockSteeringBlock: steering,
	BlockSteeringHinge: steering,
	BlockSpring: func(id string) []Control {
		return []Control{NewPositiveInputControl(id), NewSliderControl(id, "STRENGTH")}
	},
	BlockSuspension:    sliders("SPRING"),
	BlockSpinningBlock: sliders("SPEED"),
	BlockCircularSaw:   sliders("SPEED"),
	BlockFlamethrower:  positiveSliders("RANGE"),
	BlockFlyingBlock:   positiveSliders("FLYING SPEED"),
	BlockWaterCannon:   positiveSliders("POWER"),
	BlockRocket:        positiveSliders("THRUST", "FLIGHT DURATION", "EXPLOSIVE CHARGE"),
	BlockBalloon:       positiveSliders("BUOYANCY", "STRING LENGTH"),
	BlockBallast:       positiveSliders("MASS"),
	BlockCamera: func(id string) []Control {
		distance := newPositiveSlider(id, "DISTANCE")
		distance.settings = Settings{Min: 40, Center: 60, Max: 80}
		height := NewSliderControl(id, "HEIGHT")
		height.settings = Settings{Min: 0, Center: 30, Max: 60}
		rotation := NewSliderControl(id, "ROTATION")
		rotation.settings = Settings{Min: -60, Center: 0, Max: 60}
		return []Control{distance, height, rotation}
	},
	BlockVectorThruster: func(id string) []Control {
		z := NewVectorControl(id, VectorZ)
		z.settings.Min, z.settings.Max = -1.25, 1.25
		return []Control{NewVectorControl(id, VectorX), NewVectorControl(id, VectorY), z}
	},
}

func steering(id string) []Control {
	return []Control{NewAngleControl(id), NewInputControl(id), NewSliderControl(id, "ROTATION SPEED")}
}

// NewBlockControls builds the default controls of a block type, or nil for
// a type without controls.
func NewBlockControls(blockType, id string) []Control {
	build, ok := blockTable[blockType]
	if !ok {
		return nil
	}
	return build(id)
}

// BlockTypes lists the block types that have controls.
func BlockTypes() []string {
	return slices.Sorted(maps.Keys(blockTable))
}
