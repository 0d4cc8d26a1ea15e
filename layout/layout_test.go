// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"errors"
	"image"
	"testing"
)

func mustItem(t *testing.T, a *Arena, parent int) int {
	t.Helper()
	i, err := a.New()
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Insert(parent, i); err != nil {
		t.Fatal(err)
	}
	return i
}

func solve(t *testing.T, a *Arena) {
	t.Helper()
	if err := a.Solve(); err != nil {
		t.Fatalf("Solve: %v", err)
	}
}

func TestPlacement(t *testing.T) {
	for _, tc := range []struct {
		label   string
		flags   Flags
		size    image.Point
		margins [4]int
		want    Rect
	}{
		{"left", Left | Top, image.Pt(10, 10), [4]int{3, 4, 0, 0}, Rect{X: 3, Y: 4, W: 10, H: 10}},
		{"right", Right | Down, image.Pt(10, 10), [4]int{0, 0, 5, 6}, Rect{X: 85, Y: 34, W: 10, H: 10}},
		{"center", Center, image.Pt(10, 20), [4]int{}, Rect{X: 45, Y: 15, W: 10, H: 20}},
		{"fill", Fill, image.Pt(10, 10), [4]int{2, 1, 3, 4}, Rect{X: 2, Y: 1, W: 95, H: 45}},
		{"hfill", HFill | Top, image.Pt(0, 10), [4]int{}, Rect{X: 0, Y: 0, W: 100, H: 10}},
	} {
		t.Run(tc.label, func(t *testing.T) {
			a := NewArena(Config{})
			a.At(0).Size = image.Pt(100, 50)
			k := mustItem(t, a, 0)
			it := a.At(k)
			it.Flags = tc.flags
			it.Size = tc.size
			it.Margins = tc.margins
			solve(t, a)
			if got := a.At(k).Rect; got != tc.want {
				t.Errorf("rect %v, want %v", got, tc.want)
			}
		})
	}
}

func TestChainSize(t *testing.T) {
	a := NewArena(Config{})
	parent := mustItem(t, a, 0)
	a.At(parent).Flags = Left | Top
	first := mustItem(t, a, parent)
	second := mustItem(t, a, parent)
	fa, fb := a.At(first), a.At(second)
	fa.Size = image.Pt(10, 5)
	fa.Flags = Left | Top
	fa.Margins[EdgeRight] = 2
	fb.Size = image.Pt(20, 5)
	fb.Flags = Left | Top
	fb.RelTo[EdgeLeft] = first
	solve(t, a)

	if w := a.At(parent).Rect.W; w < 32 {
		t.Errorf("parent width %d, want at least 32", w)
	}
	ra, rb := a.At(first).Rect, a.At(second).Rect
	if rb.X != ra.X+ra.W+2 {
		t.Errorf("second at x=%d, want %d", rb.X, ra.X+ra.W+2)
	}
	if h := a.At(parent).Rect.H; h != 5 {
		t.Errorf("parent height %d, want 5", h)
	}
}

func TestColumn(t *testing.T) {
	a := NewArena(Config{})
	col := mustItem(t, a, 0)
	a.At(col).Size = image.Pt(100, 0)
	a.At(col).Flags = Left | Top
	prev := -1
	var items []int
	for i := 0; i < 3; i++ {
		k := mustItem(t, a, col)
		it := a.At(k)
		it.Size = image.Pt(0, 21)
		it.Flags = HFill | Top
		it.RelTo[EdgeTop] = prev
		if prev >= 0 {
			it.Margins[EdgeTop] = 1
		}
		prev = k
		items = append(items, k)
	}
	solve(t, a)
	if h := a.At(col).Rect.H; h != 65 {
		t.Errorf("column height %d, want 65", h)
	}
	for i, k := range items {
		want := Rect{X: 0, Y: i * 22, W: 100, H: 21}
		if got := a.At(k).Rect; got != want {
			t.Errorf("item %d: rect %v, want %v", i, got, want)
		}
	}
}

func TestFillBetweenNeighbors(t *testing.T) {
	a := NewArena(Config{})
	a.At(0).Size = image.Pt(100, 10)
	left := mustItem(t, a, 0)
	right := mustItem(t, a, 0)
	mid := mustItem(t, a, 0)
	a.At(left).Size = image.Pt(10, 10)
	a.At(left).Flags = Left
	a.At(right).Size = image.Pt(10, 10)
	a.At(right).Flags = Right
	m := a.At(mid)
	m.Flags = Fill
	m.RelTo[EdgeLeft] = left
	m.RelTo[EdgeRight] = right
	solve(t, a)
	if got, want := a.At(mid).Rect, (Rect{X: 10, Y: 0, W: 80, H: 10}); got != want {
		t.Errorf("rect %v, want %v", got, want)
	}
}

func TestAutoSizeNested(t *testing.T) {
	a := NewArena(Config{})
	root := a.At(0)
	root.Margins[EdgeLeft] = 5
	root.Margins[EdgeTop] = 7
	box := mustItem(t, a, 0)
	a.At(box).Flags = Left | Top
	leaf := mustItem(t, a, box)
	a.At(leaf).Size = image.Pt(30, 40)
	a.At(leaf).Flags = Left | Top
	a.At(leaf).Margins = [4]int{1, 2, 3, 4}
	solve(t, a)
	if got, want := a.At(0).Rect, (Rect{X: 5, Y: 7, W: 34, H: 46}); got != want {
		t.Errorf("root rect %v, want %v", got, want)
	}
	if got, want := a.At(leaf).Rect, (Rect{X: 6, Y: 9, W: 30, H: 40}); got != want {
		t.Errorf("leaf rect %v, want %v", got, want)
	}
}

func TestSolveIdempotent(t *testing.T) {
	a := NewArena(Config{})
	p := mustItem(t, a, 0)
	a.At(p).Flags = Left | Top
	var kids []int
	prev := -1
	for i := 0; i < 4; i++ {
		k := mustItem(t, a, p)
		it := a.At(k)
		it.Size = image.Pt(10+i, 0)
		it.Flags = Left | VFill
		it.Margins[EdgeLeft] = 3
		it.RelTo[EdgeLeft] = prev
		prev = k
		kids = append(kids, k)
	}
	solve(t, a)
	var first []Rect
	for i := 0; i < a.Len(); i++ {
		first = append(first, a.At(i).Rect)
	}
	solve(t, a)
	for i := 0; i < a.Len(); i++ {
		if got := a.At(i).Rect; got != first[i] {
			t.Errorf("item %d: second solve %v, first %v", i, got, first[i])
		}
	}
}

func TestCycleInChain(t *testing.T) {
	t.Run("size", func(t *testing.T) {
		a := NewArena(Config{})
		x := mustItem(t, a, 0)
		y := mustItem(t, a, 0)
		a.At(x).RelTo[EdgeLeft] = y
		a.At(y).RelTo[EdgeLeft] = x
		if err := a.Solve(); !errors.Is(err, ErrCycleInChain) {
			t.Errorf("Solve = %v, want ErrCycleInChain", err)
		}
	})
	t.Run("self", func(t *testing.T) {
		a := NewArena(Config{})
		x := mustItem(t, a, 0)
		a.At(x).RelTo[EdgeBottom] = x
		if err := a.Solve(); !errors.Is(err, ErrCycleInChain) {
			t.Errorf("Solve = %v, want ErrCycleInChain", err)
		}
	})
	t.Run("sized parent", func(t *testing.T) {
		a := NewArena(Config{})
		a.At(0).Size = image.Pt(100, 100)
		x := mustItem(t, a, 0)
		a.At(x).Size = image.Pt(20, 20)
		a.At(x).RelTo[EdgeRight] = x
		err := a.Solve()
		if !errors.Is(err, ErrCycleInChain) {
			t.Fatalf("Solve = %v, want ErrCycleInChain", err)
		}
		var lerr *Error
		if !errors.As(err, &lerr) || lerr.Op != "size" {
			t.Errorf("error %v not reported by the size pass", err)
		}
	})
}

func TestTwoWayNeighbors(t *testing.T) {
	for _, tc := range []struct {
		label  string
		margin int
		wantB  Rect
	}{
		{"adjacent", 0, Rect{X: 10, Y: 0, W: 20, H: 10}},
		{"overlapping", -1, Rect{X: 9, Y: 0, W: 20, H: 10}},
	} {
		t.Run(tc.label, func(t *testing.T) {
			a := NewArena(Config{})
			row := mustItem(t, a, 0)
			a.At(row).Flags = Left | Top
			x := mustItem(t, a, row)
			y := mustItem(t, a, row)
			ax, ay := a.At(x), a.At(y)
			ax.Size = image.Pt(10, 10)
			ax.Flags = Left | Top
			ax.RelTo[EdgeRight] = y
			ay.Size = image.Pt(20, 10)
			ay.Flags = Left | Top
			ay.RelTo[EdgeLeft] = x
			ay.Margins[EdgeLeft] = tc.margin
			solve(t, a)
			if got, want := a.At(row).Rect, (Rect{W: 30 + tc.margin, H: 10}); got != want {
				t.Errorf("row rect %v, want %v", got, want)
			}
			if got, want := a.At(x).Rect, (Rect{W: 10, H: 10}); got != want {
				t.Errorf("first rect %v, want %v", got, want)
			}
			if got := a.At(y).Rect; got != tc.wantB {
				t.Errorf("second rect %v, want %v", got, tc.wantB)
			}
			// A second solve must not depend on the first.
			solve(t, a)
			if got := a.At(y).Rect; got != tc.wantB {
				t.Errorf("second solve: rect %v, want %v", got, tc.wantB)
			}
		})
	}
}

func TestTwoWayChain(t *testing.T) {
	a := NewArena(Config{})
	a.At(0).Size = image.Pt(100, 10)
	var items []int
	for i := 0; i < 3; i++ {
		k := mustItem(t, a, 0)
		it := a.At(k)
		it.Size = image.Pt(10, 10)
		it.Flags = HFill | Top
		if i > 0 {
			prev := items[i-1]
			it.RelTo[EdgeLeft] = prev
			it.Margins[EdgeLeft] = 2
			a.At(prev).RelTo[EdgeRight] = k
		}
		items = append(items, k)
	}
	solve(t, a)
	want := []Rect{
		{X: 0, Y: 0, W: 10, H: 10},
		{X: 12, Y: 0, W: 10, H: 10},
		{X: 24, Y: 0, W: 76, H: 10},
	}
	for i, k := range items {
		if got := a.At(k).Rect; got != want[i] {
			t.Errorf("item %d: rect %v, want %v", i, got, want[i])
		}
	}
}

func TestNeighborNotSibling(t *testing.T) {
	a := NewArena(Config{})
	box := mustItem(t, a, 0)
	inner := mustItem(t, a, box)
	outer := mustItem(t, a, 0)
	a.At(outer).RelTo[EdgeTop] = inner
	if err := a.Solve(); !errors.Is(err, ErrDanglingReference) {
		t.Errorf("Solve = %v, want ErrDanglingReference", err)
	}
}

func TestNeighborOutOfRange(t *testing.T) {
	a := NewArena(Config{})
	x := mustItem(t, a, 0)
	a.At(x).RelTo[EdgeRight] = 42
	if err := a.Solve(); !errors.Is(err, ErrDanglingReference) {
		t.Errorf("Solve = %v, want ErrDanglingReference", err)
	}
}

func TestInsert(t *testing.T) {
	a := NewArena(Config{})
	x := mustItem(t, a, 0)
	y := mustItem(t, a, x)
	z, _ := a.New()
	for _, tc := range []struct {
		label        string
		parent, item int
		want         error
	}{
		{"reparent", 0, y, ErrInvalidReparent},
		{"root", x, 0, ErrInvalidReparent},
		{"self", z, z, ErrInvalidReparent},
		{"parent out of range", 9, z, ErrDanglingReference},
		{"item out of range", 0, -2, ErrDanglingReference},
	} {
		t.Run(tc.label, func(t *testing.T) {
			if err := a.Insert(tc.parent, tc.item); !errors.Is(err, tc.want) {
				t.Errorf("Insert(%d, %d) = %v, want %v", tc.parent, tc.item, err, tc.want)
			}
		})
	}
	if p := a.At(y).Parent(); p != x {
		t.Errorf("failed reparent changed the parent to %d", p)
	}
	if err := a.Insert(x, z); err != nil {
		t.Fatal(err)
	}
	xi := a.At(x)
	if xi.NumKids() != 2 || xi.FirstKid() != y || xi.LastKid() != z {
		t.Errorf("kids = %d (%d..%d)", xi.NumKids(), xi.FirstKid(), xi.LastKid())
	}
	if a.At(y).Next() != z || a.At(z).KidID() != 1 || a.At(z).Next() != -1 {
		t.Errorf("sibling links not appended in order")
	}
}

func TestSingleParent(t *testing.T) {
	a := NewArena(Config{})
	for i := 0; i < 10; i++ {
		mustItem(t, a, i/3)
	}
	if a.At(0).Parent() != -1 {
		t.Errorf("root has parent %d", a.At(0).Parent())
	}
	seen := make(map[int]int)
	var walk func(i int)
	walk = func(i int) {
		for k := a.At(i).FirstKid(); k >= 0; k = a.At(k).Next() {
			seen[k]++
			if p := a.At(k).Parent(); p != i {
				t.Errorf("item %d listed under %d but has parent %d", k, i, p)
			}
			walk(k)
		}
	}
	walk(0)
	for i := 1; i < a.Len(); i++ {
		if seen[i] != 1 {
			t.Errorf("item %d reachable %d times", i, seen[i])
		}
	}
}

func TestCapacity(t *testing.T) {
	a := NewArena(Config{MaxItems: 3})
	for i := 0; i < 2; i++ {
		if _, err := a.New(); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := a.New(); !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("New on a full arena = %v, want ErrCapacityExceeded", err)
	}
	a.Reset()
	if a.Len() != 1 {
		t.Errorf("Len after Reset = %d", a.Len())
	}
	if _, err := a.New(); err != nil {
		t.Errorf("New after Reset: %v", err)
	}
}

func TestAlloc(t *testing.T) {
	a := NewArena(Config{MaxBufferSize: 16, MaxDataSize: 8})
	x := mustItem(t, a, 0)
	y := mustItem(t, a, 0)
	z := mustItem(t, a, 0)
	b, err := a.Alloc(x, 8)
	if err != nil {
		t.Fatal(err)
	}
	copy(b, "payload!")
	if _, err := a.Alloc(x, 1); !errors.Is(err, ErrDuplicateAllocation) {
		t.Errorf("second Alloc = %v, want ErrDuplicateAllocation", err)
	}
	if _, err := a.Alloc(y, 9); !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("oversized Alloc = %v, want ErrCapacityExceeded", err)
	}
	if _, err := a.Alloc(y, 8); err != nil {
		t.Fatal(err)
	}
	if _, err := a.Alloc(z, 1); !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("Alloc on a full buffer = %v, want ErrCapacityExceeded", err)
	}
	if got := string(a.Data(x)); got != "payload!" {
		t.Errorf("Data = %q", got)
	}
	if a.Data(z) != nil {
		t.Errorf("Data of an item without data is not nil")
	}
}

func TestFlagsString(t *testing.T) {
	for _, tc := range []struct {
		f    Flags
		want string
	}{
		{Center, "HCenter|VCenter"},
		{Fill, "HFill|VFill"},
		{Left | Down, "Left|Down"},
		{Right | VFill, "Right|VFill"},
	} {
		if got := tc.f.String(); got != tc.want {
			t.Errorf("%#x: got %q, want %q", uint8(tc.f), got, tc.want)
		}
	}
}

func BenchmarkSolve(b *testing.B) {
	a := NewArena(Config{})
	for row := 0; row < 50; row++ {
		r, _ := a.New()
		_ = a.Insert(0, r)
		a.At(r).Flags = HFill | Top
		if row > 0 {
			a.At(r).RelTo[EdgeTop] = r - 11
		}
		prev := -1
		for col := 0; col < 10; col++ {
			k, _ := a.New()
			_ = a.Insert(r, k)
			it := a.At(k)
			it.Size = image.Pt(20, 21)
			it.Flags = Left | Top
			it.Margins[EdgeLeft] = 2
			it.RelTo[EdgeLeft] = prev
			prev = k
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := a.Solve(); err != nil {
			b.Fatal(err)
		}
	}
}
