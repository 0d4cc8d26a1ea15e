// SPDX-License-Identifier: Unlicense OR MIT

/*
Package ui implements an immediate mode item layout and interaction
engine.

A Context holds the items of one frame. Every frame the program
clears the context, declares its items, sets the input state and
calls Process:

	ctx := ui.NewContext()
	for {
		ctx.Clear()
		panel, _ := ctx.Item()
		ctx.Insert(0, panel)
		ctx.SetSize(panel, 200, 0)
		...
		ctx.SetCursor(image.Pt(x, y))
		ctx.SetButton(pointer.ButtonPrimary, down)
		if err := ctx.Process(); err != nil {
			log.Fatal(err)
		}
		// Draw using ctx.Rect and ctx.State.
	}

# Items

Items are identified by their index, valid until the next Clear. Item
0 is the root. An item is attached to a container with Insert,
exactly once. Each item has an explicit size, where zero means the
size is computed from the children, layout flags, margins and up to
four neighbours: siblings the item is placed next to. Margin and
neighbour setters take their arguments in left, top, right, bottom
order.

# Interaction

Items that set a non-zero handle with SetHandle keep their hot or
active status across frames, even though their index changes. Events
fired by Process are delivered to the handler of the item if its
subscription mask includes the event kind, and are available from
Events until the next Clear.

# Errors

Builder methods return an error and also record the first error of
the frame. Process reports the recorded error without solving the
layout, so a frame is either completely processed or not at all.
*/
package ui
