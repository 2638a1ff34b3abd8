// pkg/grid/direction.go
package grid

import "go-grid-defense/pkg/utils"

// Direction is one of the four cardinal directions, in clockwise order.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// DirectionChange classifies the turn between two consecutive directions.
type DirectionChange int

const (
	None DirectionChange = iota
	TurnRight
	TurnLeft
	TurnAround
)

var halfVectors = [...]utils.Vec2{
	North: {X: 0, Y: 0.5},
	East:  {X: 0.5, Y: 0},
	South: {X: 0, Y: -0.5},
	West:  {X: -0.5, Y: 0},
}

var rotations = [...]utils.Vec2{
	North: {X: 0, Y: 1},
	East:  {X: 1, Y: 0},
	South: {X: 0, Y: -1},
	West:  {X: -1, Y: 0},
}

// Angle returns the heading in degrees, clockwise from north.
func (d Direction) Angle() float64 {
	return float64(d) * 90
}

// Rotation returns the unit vector pointing in the direction.
func (d Direction) Rotation() utils.Vec2 {
	return rotations[d]
}

// HalfVector returns the offset from a tile center to the middle of its edge in this direction.
func (d Direction) HalfVector() utils.Vec2 {
	return halfVectors[d]
}

// Opposite returns the direction rotated by 180 degrees.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// ChangeTo classifies the turn needed to go from d to next.
func (d Direction) ChangeTo(next Direction) DirectionChange {
	switch {
	case d == next:
		return None
	case (d+1)%4 == next:
		return TurnRight
	case (d+3)%4 == next:
		return TurnLeft
	default:
		return TurnAround
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	}
	return "Unknown"
}

func (c DirectionChange) String() string {
	switch c {
	case None:
		return "None"
	case TurnRight:
		return "TurnRight"
	case TurnLeft:
		return "TurnLeft"
	case TurnAround:
		return "TurnAround"
	}
	return "Unknown"
}
