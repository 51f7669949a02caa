package components

import "github.com/yohamta/donburi/features/math"

// Direction is one of the four grid directions.
type Direction uint8

const (
	Left Direction = iota
	Up
	Right
	Down
	DirectionCount
)

// Vector returns the unit vector of the direction in screen space, where y
// grows downwards.
func (d Direction) Vector() math.Vec2 {
	switch d {
	case Left:
		return math.Vec2{X: -1}
	case Up:
		return math.Vec2{Y: -1}
	case Right:
		return math.Vec2{X: 1}
	case Down:
		return math.Vec2{Y: 1}
	}
	return math.Vec2{}
}

// Horizontal reports whether the direction only changes x.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	}
	return "none"
}
