// Package layout holds the cell geometry shared by the menu engine and its
// terminal host, plus the placement rule used for every menu panel.
package layout

// Point is a cell coordinate. X grows to the right, Y grows downwards.
type Point struct{ X, Y int }

// Size is a width/height pair in cells.
type Size struct{ W, H int }

// Rect is an axis-aligned rectangle defined by its top-left corner and size.
type Rect struct {
	X, Y int
	W, H int
}

// R builds a Rect.
func R(x, y, w, h int) Rect { return Rect{X: x, Y: y, W: w, H: h} }

// At returns the rectangle of the given size positioned at p.
func At(p Point, s Size) Rect { return Rect{X: p.X, Y: p.Y, W: s.W, H: s.H} }

// Right is the first column to the right of the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive since cells are discrete.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.Y >= r.Y && p.X < r.X+r.W && p.Y < r.Y+r.H
}

// Offset translates r by p.
func (r Rect) Offset(p Point) Rect {
	return Rect{X: r.X + p.X, Y: r.Y + p.Y, W: r.W, H: r.H}
}
