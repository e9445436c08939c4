// Package canvas draws layout rectangles as box-drawing characters on a
// fixed grid of terminal cells.
package canvas

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/grindlemire/morph/pkg/layout"
)

// Rect is a rectangle in whole cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersect returns the overlap of r and other, or an empty Rect.
func (r Rect) Intersect(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())
	if right <= x || bottom <= y {
		return Rect{}
	}
	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// FromLayout maps a layout rect to cells, scaling x by sx and y by sy.
// Edges are rounded independently so adjacent rects stay adjacent.
func FromLayout(r layout.Rect, sx, sy float64) Rect {
	x0 := round(float64(r.PosX) * sx)
	y0 := round(float64(r.PosY) * sy)
	x1 := round(float64(r.Right()) * sx)
	y1 := round(float64(r.Bottom()) * sy)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

func round(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Round(v))
}

// cell is one grid position. A wide rune occupies its cell and a
// continuation cell to its right with width 0.
type cell struct {
	r     rune
	width uint8
}

func (c cell) isContinuation() bool {
	return c.width == 0
}

var blank = cell{r: ' ', width: 1}

// Canvas is a 2D grid of cells.
type Canvas struct {
	cells  []cell
	width  int
	height int
}

// New creates a canvas of the given size filled with spaces.
func New(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	cells := make([]cell, width*height)
	for i := range cells {
		cells[i] = blank
	}
	return &Canvas{cells: cells, width: width, height: height}
}

// Width returns the canvas width in columns.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in rows.
func (c *Canvas) Height() int {
	return c.height
}

// Rect returns the canvas bounds as a Rect starting at (0, 0).
func (c *Canvas) Rect() Rect {
	return Rect{Width: c.width, Height: c.height}
}

func (c *Canvas) idx(x, y int) int {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return -1
	}
	return y*c.width + x
}

// Rune returns the rune at (x, y), or 0 out of bounds and on the right
// half of a wide rune.
func (c *Canvas) Rune(x, y int) rune {
	i := c.idx(x, y)
	if i < 0 || c.cells[i].isContinuation() {
		return 0
	}
	return c.cells[i].r
}

// SetRune sets a rune at (x, y). A wide rune also takes (x+1, y), and any
// wide rune it partly overwrites is cleared.
func (c *Canvas) SetRune(x, y int, r rune) {
	i := c.idx(x, y)
	if i < 0 {
		return
	}

	width := runewidth.RuneWidth(r)
	if width == 0 {
		return
	}
	c.clearWide(x, y)

	// A wide rune in the last column cannot fit.
	if width == 2 && x+1 >= c.width {
		c.cells[i] = blank
		return
	}

	c.cells[i] = cell{r: r, width: uint8(width)}
	if width == 2 {
		c.clearWide(x+1, y)
		c.cells[i+1] = cell{}
	}
}

// clearWide blanks the wide rune covering (x, y), if any.
func (c *Canvas) clearWide(x, y int) {
	i := c.idx(x, y)
	if i < 0 {
		return
	}
	switch cur := c.cells[i]; {
	case cur.isContinuation():
		c.cells[i] = blank
		if x > 0 {
			c.cells[i-1] = blank
		}
	case cur.width == 2:
		c.cells[i] = blank
		if x+1 < c.width {
			c.cells[i+1] = blank
		}
	}
}

// SetString writes s starting at (x, y) without wrapping and returns the
// display width written. Runes outside clip are skipped.
func (c *Canvas) SetString(x, y int, s string, clip Rect) int {
	clip = clip.Intersect(c.Rect())
	if y < clip.Y || y >= clip.Bottom() {
		return 0
	}

	written := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if x >= clip.Right() {
			break
		}
		if x >= clip.X && x+w <= clip.Right() {
			c.SetRune(x, y, r)
			written += w
		}
		x += w
	}
	return written
}

// String renders the canvas as lines joined by newlines.
func (c *Canvas) String() string {
	var sb strings.Builder
	for y := range c.height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range c.width {
			if cl := c.cells[y*c.width+x]; !cl.isContinuation() {
				sb.WriteRune(cl.r)
			}
		}
	}
	return sb.String()
}

// StringTrimmed renders the canvas with trailing spaces removed from each
// line and trailing empty lines dropped.
func (c *Canvas) StringTrimmed() string {
	lines := strings.Split(c.String(), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
