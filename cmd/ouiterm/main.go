// SPDX-License-Identifier: Unlicense OR MIT

// Command ouiterm runs the demo user interface in a terminal, using
// the mouse as pointer.
//
// With -dump, ouiterm prints the laid out item tree instead.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/ouigo/oui/internal/demo"
	"github.com/ouigo/oui/io/pointer"
	"github.com/ouigo/oui/ui"
	"github.com/ouigo/oui/widget"
)

var dumpTree = flag.Bool("dump", false, "print the item tree and exit.")

const (
	// cellW and cellH are the size of a terminal cell in layout
	// units. A cell row holds one control and the spacing of a
	// column.
	cellW = 8
	cellH = widget.Height + 1
)

// app is the terminal front end of the demo.
type app struct {
	screen  tcell.Screen
	ctx     *ui.Context
	demo    *demo.State
	cursor  image.Point
	buttons pointer.Buttons
	status  []string
}

// mouseButtons lists the tcell buttons by pointer button index.
var mouseButtons = [...]tcell.ButtonMask{tcell.Button1, tcell.Button2, tcell.Button3}

func main() {
	log.SetFlags(0)
	log.SetPrefix("ouiterm: ")
	flag.Parse()
	if *dumpTree {
		cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			cols, rows = 80, 24
		}
		out := termenv.NewOutput(os.Stdout)
		if err := dump(os.Stdout, out, image.Pt(cols*cellW, rows*cellH)); err != nil {
			log.Fatal(err)
		}
		return
	}
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()
	a := newApp(screen)
	if err := a.frame(); err != nil {
		return err
	}
	for {
		ev := screen.PollEvent()
		if ev == nil || a.handle(ev) {
			return nil
		}
		if err := a.frame(); err != nil {
			return err
		}
	}
}

func newApp(screen tcell.Screen) *app {
	return &app{
		screen: screen,
		ctx:    ui.NewContext(),
		demo:   demo.New(),
		cursor: image.Pt(-1, -1),
	}
}

// handle applies an input event and reports whether the user asked
// to quit.
func (a *app) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return true
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return true
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		a.cursor = cellCenter(x, y)
		a.buttons = 0
		for i, b := range mouseButtons {
			if ev.Buttons()&b != 0 {
				a.buttons |= pointer.Button(i)
			}
		}
	}
	return false
}

// frame declares, processes and draws the demo.
func (a *app) frame() error {
	w, h := a.screen.Size()
	a.ctx.Clear()
	// The bottom row is the status line.
	a.ctx.SetSize(0, w*cellW, (h-1)*cellH)
	if err := a.demo.Layout(a.ctx, fit); err != nil {
		return err
	}
	a.ctx.SetCursor(a.cursor)
	a.ctx.SetButton(^pointer.Buttons(0), false)
	a.ctx.SetButton(a.buttons, true)
	if err := a.ctx.Process(); err != nil {
		return err
	}
	if msgs := a.demo.Update(); len(msgs) > 0 {
		a.status = msgs
	}
	a.screen.Clear()
	r := &renderer{screen: a.screen, ctx: a.ctx}
	r.item(0)
	status := fmt.Sprintf(" q: quit  %s", strings.Join(a.status, ", "))
	r.text(0, h-1, w, status, statusStyle)
	a.screen.Show()
	return nil
}

// fit measures labels in cells.
func fit(label string) int {
	return (runewidth.StringWidth(label) + 2) * cellW
}

// cellCenter returns the layout position of the center of a cell.
func cellCenter(x, y int) image.Point {
	return image.Pt(x*cellW+cellW/2, y*cellH+cellH/2)
}
