// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"github.com/ouigo/oui/layout"
	"github.com/ouigo/oui/ui"
)

// Corners is a set of sharp corners of a control. Controls grouped
// in a column or row are drawn joined along their shared edges.
type Corners uint8

const (
	CornerTopLeft Corners = 1 << iota
	CornerTopRight
	CornerDownRight
	CornerDownLeft

	CornersNone  Corners = 0
	CornersAll           = CornerTopLeft | CornerTopRight | CornerDownRight | CornerDownLeft
	CornersTop           = CornerTopLeft | CornerTopRight
	CornersDown          = CornerDownRight | CornerDownLeft
	CornersLeft          = CornerTopLeft | CornerDownLeft
	CornersRight         = CornerTopRight | CornerDownRight
)

const (
	// columnSpacing is the vertical space between the items of a
	// column.
	columnSpacing = 1
	// rowSpacing is the horizontal space between the items of a row.
	rowSpacing = 8
	// Groups overlap their items so that adjacent borders merge.
	vgroupSpacing = -2
	hgroupSpacing = -1
)

// Panel declares a bevelled container.
func Panel(ctx *ui.Context) (int, error) {
	return container(ctx, KindPanel)
}

// Column declares a container stacking its children vertically.
func Column(ctx *ui.Context) (int, error) {
	return container(ctx, KindColumn)
}

// Row declares a container placing its children side by side.
func Row(ctx *ui.Context) (int, error) {
	return container(ctx, KindRow)
}

// VGroup declares a column whose children are joined without
// spacing.
func VGroup(ctx *ui.Context) (int, error) {
	return container(ctx, KindVGroup)
}

// HGroup declares a row whose children are joined without spacing.
func HGroup(ctx *ui.Context) (int, error) {
	return container(ctx, KindHGroup)
}

func container(ctx *ui.Context, k Kind) (int, error) {
	item, err := ctx.Item()
	if err != nil {
		return -1, err
	}
	if err := store(ctx, item, Header{Kind: k}); err != nil {
		return -1, err
	}
	return item, nil
}

// ColumnAppend adds item below the last child of parent. The item
// fills the width of parent.
func ColumnAppend(ctx *ui.Context, parent, item int) (int, error) {
	return appendBelow(ctx, parent, item, columnSpacing)
}

// VGroupAppend adds item below the last child of parent, overlapping
// its bottom border.
func VGroupAppend(ctx *ui.Context, parent, item int) (int, error) {
	return appendBelow(ctx, parent, item, vgroupSpacing)
}

// RowAppend adds item to the right of the last child of parent. The
// two are linked both ways: the last item of a row fills the width
// left over by the others.
func RowAppend(ctx *ui.Context, parent, item int) (int, error) {
	return appendRight(ctx, parent, item, rowSpacing)
}

// HGroupAppend adds item to the right of the last child of parent,
// overlapping its right border.
func HGroupAppend(ctx *ui.Context, parent, item int) (int, error) {
	return appendRight(ctx, parent, item, hgroupSpacing)
}

func appendBelow(ctx *ui.Context, parent, item, spacing int) (int, error) {
	last := ctx.LastChild(parent)
	if err := ctx.Insert(parent, item); err != nil {
		return -1, err
	}
	ctx.SetNeighbor(item, layout.EdgeTop, last)
	ctx.SetLayout(item, layout.HFill|layout.Top)
	if last >= 0 {
		ctx.SetMargins(item, 0, spacing, 0, 0)
	}
	return item, nil
}

func appendRight(ctx *ui.Context, parent, item, spacing int) (int, error) {
	last := ctx.LastChild(parent)
	if err := ctx.Insert(parent, item); err != nil {
		return -1, err
	}
	ctx.SetNeighbor(item, layout.EdgeLeft, last)
	if last >= 0 {
		ctx.SetNeighbor(last, layout.EdgeRight, item)
		ctx.SetMargins(item, spacing, 0, 0, 0)
	}
	ctx.SetLayout(item, layout.Fill)
	return item, nil
}

// SharpCorners returns the corners of item that join a neighbouring
// control in the same column or row.
func SharpCorners(ctx *ui.Context, item int) Corners {
	parent := ctx.Parent(item)
	n := ctx.ChildCount(parent)
	if n < 2 {
		return CornersNone
	}
	h, ok := Lookup(ctx, parent)
	if !ok {
		return CornersNone
	}
	id := ctx.ChildID(item)
	switch h.Kind {
	case KindColumn, KindVGroup:
		switch id {
		case 0:
			return CornersDown
		case n - 1:
			return CornersTop
		default:
			return CornersAll
		}
	case KindRow, KindHGroup:
		switch id {
		case 0:
			return CornersRight
		case n - 1:
			return CornersLeft
		default:
			return CornersAll
		}
	}
	return CornersNone
}
