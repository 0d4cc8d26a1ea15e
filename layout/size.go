// SPDX-License-Identifier: Unlicense OR MIT

package layout

// computeSize resolves the extents of item i and its subtree,
// children first.
func (a *Arena) computeSize(i int) error {
	a.items[i].visited = 0
	for k := a.items[i].firstKid; k >= 0; k = a.items[k].next {
		if err := a.computeSize(k); err != nil {
			return err
		}
	}
	for _, ax := range [...]Axis{Horizontal, Vertical} {
		if err := a.sizeAxis(i, ax); err != nil {
			return err
		}
	}
	return nil
}

// sizeAxis sets the extent of item i to its explicit size, or to
// the largest chain extent among its children. The chains are
// walked in both cases so that cycles are reported for every parent.
func (a *Arena) sizeAxis(i int, ax Axis) error {
	size := 0
	for k := a.items[i].firstKid; k >= 0; k = a.items[k].next {
		if a.items[k].visited&sized(ax) != 0 {
			continue
		}
		n, err := a.chainSize(k, ax)
		if err != nil {
			return err
		}
		if n > size {
			size = n
		}
	}
	it := &a.items[i]
	explicit := it.Size.X
	if ax == Vertical {
		explicit = it.Size.Y
	}
	if explicit != 0 {
		size = explicit
	}
	it.Rect.setExtent(ax, size)
	return nil
}

// chainSize measures the chain through item k: k itself and the
// neighbours reached by following RelTo towards the near and the
// far edge. Each member counts with its margins on both edges.
// Every member is marked as sized so it is not measured again as
// the start of another chain.
func (a *Arena) chainSize(k int, ax Axis) (int, error) {
	a.stamp++
	near, far := ax.Edges()
	it := &a.items[k]
	it.walk = a.stamp
	it.visited |= sized(ax)
	size := it.extent(ax) + it.Margins[near] + it.Margins[far]
	for _, e := range [...]Edge{near, far} {
		for cur := k; a.items[cur].RelTo[e] >= 0; {
			n := a.items[cur].RelTo[e]
			nb, err := a.neighbor("size", cur, n)
			if err != nil {
				return 0, err
			}
			if nb.walk == a.stamp {
				return 0, newError("size", cur, ErrCycleInChain, "%s neighbour %d revisited on %s", e, n, ax)
			}
			nb.walk = a.stamp
			nb.visited |= sized(ax)
			size += nb.extent(ax) + nb.Margins[near] + nb.Margins[far]
			cur = n
		}
	}
	return size, nil
}

// neighbor resolves the neighbour n of item i. Neighbours must be
// declared siblings of i.
func (a *Arena) neighbor(op string, i, n int) (*Item, error) {
	if n >= len(a.items) {
		return nil, newError(op, i, ErrDanglingReference, "neighbour %d of %d items", n, len(a.items))
	}
	nb := &a.items[n]
	if n != i && nb.parent != a.items[i].parent {
		return nil, newError(op, i, ErrDanglingReference, "neighbour %d is not a sibling", n)
	}
	return nb, nil
}
