package types

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Point is one cell of the grid, in cell units.
type Point struct {
	X, Y int
}

// Add returns p shifted by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect is a pixel rectangle on the canvas.
type Rect struct {
	X, Y, W, H int
}

// Grid represents the game grid dimensions. The grid is square: Extent cells
// per side, each CellSize pixels wide.
type Grid struct {
	CellSize int
	Extent   int
}

// Default grid of the original canvas: 400px / 20px boxes.
const (
	DefaultCellSize = 20
	DefaultExtent   = 20
)

func NewGrid(cellSize, extent int) Grid {
	return Grid{CellSize: cellSize, Extent: extent}
}

// Contains reports whether p lies within [0, Extent) on both axes.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Extent && p.Y >= 0 && p.Y < g.Extent
}

// Cells returns the number of cells on the board.
func (g Grid) Cells() int {
	return g.Extent * g.Extent
}

// PixelSize returns the side of the board in pixels.
func (g Grid) PixelSize() int {
	return g.Extent * g.CellSize
}

// ToPixel maps a cell to its pixel rectangle.
func (g Grid) ToPixel(p Point) Rect {
	return Rect{
		X: p.X * g.CellSize,
		Y: p.Y * g.CellSize,
		W: g.CellSize,
		H: g.CellSize,
	}
}

// RandomCell returns a cell uniformly distributed over the grid.
func (g Grid) RandomCell(rng *rand.Rand) Point {
	return Point{
		X: rng.Intn(g.Extent),
		Y: rng.Intn(g.Extent),
	}
}

// CellAt returns the i-th cell in row-major order.
func (g Grid) CellAt(i int) Point {
	return Point{X: i % g.Extent, Y: i / g.Extent}
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}
