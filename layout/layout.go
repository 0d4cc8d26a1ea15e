// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"
	"image"
)

// Flags are the per axis anchoring directives of an item. The
// horizontal bits are Left and Right, the vertical bits Top and
// Down; setting both bits of an axis fills the available span.
type Flags uint8

// Edge indexes the margins and neighbour references of an item.
type Edge uint8

// Axis is the Horizontal or Vertical direction.
type Axis uint8

// Rect is a resolved item rectangle in absolute coordinates.
type Rect struct {
	X, Y, W, H int
}

const (
	Left Flags = 1 << iota
	Top
	Right
	Down

	HFill         = Left | Right
	VFill         = Top | Down
	HCenter Flags = 0
	VCenter Flags = 0
	Center  Flags = 0
	Fill          = HFill | VFill
)

const (
	EdgeLeft Edge = iota
	EdgeTop
	EdgeRight
	EdgeBottom
)

const (
	Horizontal Axis = iota
	Vertical
)

// placement is the horizontal part of a Flags value, shifted down
// for the vertical axis.
type placement uint8

const (
	placeCenter placement = placement(HCenter)
	placeNear   placement = placement(Left)
	placeFar    placement = placement(Right)
	placeFill   placement = placement(HFill)
)

func (f Flags) placement(a Axis) placement {
	return placement(f>>a) & placeFill
}

// Edges returns the near (left or top) and far (right or bottom)
// edges of an axis.
func (a Axis) Edges() (near, far Edge) {
	return Edge(a), Edge(a) + 2
}

// Pos returns the position of r along the axis.
func (r Rect) Pos(a Axis) int {
	if a == Horizontal {
		return r.X
	}
	return r.Y
}

// Extent returns the size of r along the axis.
func (r Rect) Extent(a Axis) int {
	if a == Horizontal {
		return r.W
	}
	return r.H
}

func (r *Rect) setPos(a Axis, v int) {
	if a == Horizontal {
		r.X = v
	} else {
		r.Y = v
	}
}

func (r *Rect) setExtent(a Axis, v int) {
	if a == Horizontal {
		r.W = v
	} else {
		r.H = v
	}
}

// Contains reports whether p lies within r. The right and bottom
// edges are exclusive.
func (r Rect) Contains(p image.Point) bool {
	return p.X >= r.X && p.Y >= r.Y && p.X < r.X+r.W && p.Y < r.Y+r.H
}

// Bounds converts r to an image.Rectangle.
func (r Rect) Bounds() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.W, r.H)
}

func (f Flags) String() string {
	h := [...]string{placeCenter: "HCenter", placeNear: "Left", placeFar: "Right", placeFill: "HFill"}
	v := [...]string{placeCenter: "VCenter", placeNear: "Top", placeFar: "Down", placeFill: "VFill"}
	return h[f.placement(Horizontal)] + "|" + v[f.placement(Vertical)]
}

func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "Left"
	case EdgeTop:
		return "Top"
	case EdgeRight:
		return "Right"
	case EdgeBottom:
		return "Bottom"
	default:
		panic("unreachable")
	}
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}
