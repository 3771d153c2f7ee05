package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Cell is one composited terminal cell
type Cell struct {
	Rune rune
	Fg   tcell.Color
	Bg   tcell.Color
	Bold bool
}

// Style converts the cell colors to a tcell style
func (c Cell) Style() tcell.Style {
	return tcell.StyleDefault.Foreground(c.Fg).Background(c.Bg).Bold(c.Bold)
}

// RenderBuffer is a full-frame compositor flushed to the screen once per frame
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
	blank  Cell
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{
		blank: Cell{Rune: ' ', Fg: Hex(TextHex), Bg: Hex(BackgroundHex)},
	}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Size returns buffer dimensions
func (b *RenderBuffer) Size() (int, int) {
	return b.width, b.height
}

// Clear resets all cells to background using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = b.blank
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes a rune in fg over the existing background
func (b *RenderBuffer) Set(x, y int, r rune, fg tcell.Color) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
	dst.Bold = false
}

// SetBold writes a bold rune in fg over the existing background
func (b *RenderBuffer) SetBold(x, y int, r rune, fg tcell.Color) {
	b.Set(x, y, r, fg)
	if b.inBounds(x, y) {
		b.cells[y*b.width+x].Bold = true
	}
}

// SetCell replaces a cell entirely
func (b *RenderBuffer) SetCell(x, y int, c Cell) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = c
}

// SetBg paints only the background of a cell
func (b *RenderBuffer) SetBg(x, y int, bg tcell.Color) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x].Bg = bg
}

// SetString writes s starting at x, returning the column after the last rune
func (b *RenderBuffer) SetString(x, y int, s string, fg tcell.Color) int {
	for _, r := range s {
		b.Set(x, y, r, fg)
		x += runewidth.RuneWidth(r)
	}
	return x
}

// SetStringCentered writes s centered on column cx
func (b *RenderBuffer) SetStringCentered(cx, y int, s string, fg tcell.Color) {
	b.SetString(cx-runewidth.StringWidth(s)/2, y, s, fg)
}

// Get returns the cell at x, y, the blank cell when out of bounds
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return b.blank
	}
	return b.cells[y*b.width+x]
}

// Row returns the runes of row y as a string, used by tests and debugging
func (b *RenderBuffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	out := make([]rune, 0, b.width)
	for _, c := range b.cells[y*b.width : (y+1)*b.width] {
		out = append(out, c.Rune)
	}
	return string(out)
}

// FlushToScreen copies every cell to screen
func (b *RenderBuffer) FlushToScreen(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			screen.SetContent(x, y, c.Rune, nil, c.Style())
		}
	}
}
