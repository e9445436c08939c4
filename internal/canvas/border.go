package canvas

import "github.com/mattn/go-runewidth"

// BorderStyle represents different styles of box borders.
type BorderStyle int

const (
	// BorderNone indicates no border should be drawn.
	BorderNone BorderStyle = iota
	// BorderSingle uses single-line box-drawing characters (─, │, ┌, etc.)
	BorderSingle
	// BorderDouble uses double-line box-drawing characters (═, ║, ╔, etc.)
	BorderDouble
	// BorderRounded uses rounded corner characters (─, │, ╭, ╮, ╰, ╯)
	BorderRounded
	// BorderThick uses thick/heavy box-drawing characters (━, ┃, ┏, etc.)
	BorderThick
)

// ParseBorderStyle maps a style name to a BorderStyle.
func ParseBorderStyle(name string) (BorderStyle, bool) {
	switch name {
	case "none":
		return BorderNone, true
	case "single":
		return BorderSingle, true
	case "double":
		return BorderDouble, true
	case "rounded":
		return BorderRounded, true
	case "thick":
		return BorderThick, true
	default:
		return BorderNone, false
	}
}

// BorderChars holds the characters used to draw a box border.
type BorderChars struct {
	TopLeft, Top, TopRight          rune
	Left, Right                     rune
	BottomLeft, Bottom, BottomRight rune
}

// Chars returns the box-drawing characters for this border style.
func (b BorderStyle) Chars() BorderChars {
	switch b {
	case BorderSingle:
		return BorderChars{'┌', '─', '┐', '│', '│', '└', '─', '┘'}
	case BorderDouble:
		return BorderChars{'╔', '═', '╗', '║', '║', '╚', '═', '╝'}
	case BorderRounded:
		return BorderChars{'╭', '─', '╮', '│', '│', '╰', '─', '╯'}
	case BorderThick:
		return BorderChars{'┏', '━', '┓', '┃', '┃', '┗', '━', '┛'}
	default:
		return BorderChars{' ', ' ', ' ', ' ', ' ', ' ', ' ', ' '}
	}
}

// DrawBox draws a box border on the canvas at the specified rectangle.
// Boxes smaller than 2x2 are drawn as a single marker rune at their origin
// so zero-sized nodes stay visible.
func DrawBox(c *Canvas, rect Rect, border BorderStyle) {
	if border == BorderNone {
		return
	}
	if rect.Width < 2 || rect.Height < 2 {
		if rect.Width >= 0 && rect.Height >= 0 {
			c.SetRune(rect.X, rect.Y, '·')
		}
		return
	}

	chars := border.Chars()
	left, right := rect.X, rect.Right()-1
	top, bottom := rect.Y, rect.Bottom()-1

	c.SetRune(left, top, chars.TopLeft)
	c.SetRune(right, top, chars.TopRight)
	c.SetRune(left, bottom, chars.BottomLeft)
	c.SetRune(right, bottom, chars.BottomRight)

	for x := left + 1; x < right; x++ {
		c.SetRune(x, top, chars.Top)
		c.SetRune(x, bottom, chars.Bottom)
	}
	for y := top + 1; y < bottom; y++ {
		c.SetRune(left, y, chars.Left)
		c.SetRune(right, y, chars.Right)
	}
}

// DrawBoxWithTitle draws a box border with a title in the top border.
// The title is left-aligned after the corner and truncated to fit.
func DrawBoxWithTitle(c *Canvas, rect Rect, border BorderStyle, title string) {
	DrawBox(c, rect, border)
	if border == BorderNone || rect.Width <= 2 || rect.Height < 2 || title == "" {
		return
	}

	available := rect.Width - 2
	title = runewidth.Truncate(title, available, "…")
	c.SetString(rect.X+1, rect.Y, title, Rect{X: rect.X + 1, Y: rect.Y, Width: available, Height: 1})
}
