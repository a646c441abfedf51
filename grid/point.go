package grid

import (
	"fmt"

	"gridlearn/utils"
)

// Point is a block position on the grid. X grows to the right, Y grows down.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Center returns the exact centre block of a width x height grid.
func Center(width, height int) Point {
	return Point{X: width / 2, Y: height / 2}
}

// Clamp bounds each axis of p independently into [0, width-1] x [0, height-1].
func Clamp(p Point, width, height int) Point {
	return Point{
		X: utils.Clamp(p.X, 0, width-1),
		Y: utils.Clamp(p.Y, 0, height-1),
	}
}

// ManhattanDistance returns |a.X-b.X| + |a.Y-b.Y|.
func ManhattanDistance(a, b Point) int {
	return utils.Abs(a.X-b.X) + utils.Abs(a.Y-b.Y)
}
