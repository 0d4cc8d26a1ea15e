// SPDX-License-Identifier: Unlicense OR MIT

/*
Package widget declares common controls as items of a ui.Context.

Controls with persistent state, such as Clickable, Bool, Enum and
Float, keep their state across frames and receive their events
through item handlers installed by their Layout methods. Every
declared control stores a Header in the data of its item, so that a
renderer can draw the items of a frame without access to the control
state:

	h, err := widget.Decode(ctx.Data(item))

Containers are declared with Column and Row and filled with
ColumnAppend and RowAppend.
*/
package widget
