// SPDX-License-Identifier: Unlicense OR MIT

package layout

// arrange positions the children of item i and then their
// subtrees. The rectangle of i must already be resolved.
func (a *Arena) arrange(i int) error {
	for _, ax := range [...]Axis{Horizontal, Vertical} {
		for k := a.items[i].firstKid; k >= 0; k = a.items[k].next {
			if err := a.place(i, k, ax); err != nil {
				return err
			}
		}
	}
	for k := a.items[i].firstKid; k >= 0; k = a.items[k].next {
		if err := a.arrange(k); err != nil {
			return err
		}
	}
	return nil
}

// place resolves the position of child k of item p along an axis,
// placing its neighbours first. An item reached again while its own
// neighbours are being placed reports the position it would take
// anchored to its near side.
func (a *Arena) place(p, k int, ax Axis) error {
	it := &a.items[k]
	if it.visited&(placed(ax)|placing(ax)) != 0 {
		return nil
	}
	it.visited |= placing(ax)

	near, far := ax.Edges()
	parent := a.items[p].Rect
	lo := parent.Pos(ax)
	hi := lo + parent.Extent(ax)
	it.Rect.setPos(ax, lo+it.Margins[near])
	if n := it.RelTo[near]; n >= 0 {
		nb, err := a.neighbor("position", k, n)
		if err != nil {
			return err
		}
		if err := a.place(p, n, ax); err != nil {
			return err
		}
		lo = nb.Rect.Pos(ax) + nb.extent(ax) + nb.Margins[far]
		it.Rect.setPos(ax, lo+it.Margins[near])
	}
	if n := it.RelTo[far]; n >= 0 {
		nb, err := a.neighbor("position", k, n)
		if err != nil {
			return err
		}
		if err := a.place(p, n, ax); err != nil {
			return err
		}
		hi = nb.Rect.Pos(ax) - nb.Margins[near]
	}

	span := hi - lo
	size := it.extent(ax)
	switch it.Flags.placement(ax) {
	case placeNear:
		it.Rect.setPos(ax, lo+it.Margins[near])
	case placeFar:
		it.Rect.setPos(ax, hi-size-it.Margins[far])
	case placeFill:
		it.Rect.setPos(ax, lo+it.Margins[near])
		it.Rect.setExtent(ax, span-it.Margins[near]-it.Margins[far])
	default:
		it.Rect.setPos(ax, lo+(span-size)/2)
	}
	it.visited = it.visited&^placing(ax) | placed(ax)
	return nil
}
