// Package text sizes monospace text blocks for the layout solver.
package text

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/grindlemire/morph/pkg/layout"
)

// Measurer holds the text of content nodes and measures it on a monospace
// cell grid. It implements layout.ContentSizer.
//
// Measurement happens in physical pixels (logical pixels times the scale
// factor) so wrapping matches what a renderer at that density would do,
// and results are converted back to logical pixels.
type Measurer struct {
	texts      map[layout.NodeID]string
	scale      float64
	cellWidth  float32 // logical pixels per column
	lineHeight float32 // logical pixels per line
}

// NewMeasurer creates a Measurer for cells of the given logical size at
// scale factor 1.
func NewMeasurer(cellWidth, lineHeight float32) *Measurer {
	return &Measurer{
		texts:      make(map[layout.NodeID]string),
		scale:      1,
		cellWidth:  max(cellWidth, 0),
		lineHeight: max(lineHeight, 0),
	}
}

// SetText sets the text content of id.
func (m *Measurer) SetText(id layout.NodeID, s string) {
	m.texts[id] = s
}

// Text returns the text content of id.
func (m *Measurer) Text(id layout.NodeID) (string, bool) {
	s, ok := m.texts[id]
	return s, ok
}

// RemoveText drops the text content of id.
func (m *Measurer) RemoveText(id layout.NodeID) {
	delete(m.texts, id)
}

// Len returns the number of nodes with text.
func (m *Measurer) Len() int {
	return len(m.texts)
}

// ScaleFactor returns the physical pixels per logical pixel.
func (m *Measurer) ScaleFactor() float64 {
	return m.scale
}

// SetScaleFactor changes the physical pixels per logical pixel and reports
// whether it changed. When it did, every text node needs a new layout pass.
// Factors that are not positive are treated as 1.
func (m *Measurer) SetScaleFactor(f float64) bool {
	if f <= 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		f = 1
	}
	if f == m.scale {
		return false
	}
	m.scale = f
	return true
}

// ContentSize implements layout.ContentSizer. The text of id is wrapped at
// the widest whole number of columns that fits limit.Width; height is not
// constrained and long text overflows it.
func (m *Measurer) ContentSize(id layout.NodeID, limit layout.Size) (layout.Size, bool) {
	s, ok := m.texts[id]
	if !ok {
		return layout.Size{}, false
	}

	cell := scaleValue(m.cellWidth, m.scale)
	line := scaleValue(m.lineHeight, m.scale)

	maxCols := 0 // unlimited
	if bound := scaleValue(limit.Width, m.scale); cell > 0 && !math.IsInf(float64(bound), 1) {
		maxCols = max(1, int(bound/cell))
	}

	lines := Wrap(s, maxCols)
	cols := 0
	for _, l := range lines {
		cols = max(cols, runewidth.StringWidth(l))
	}

	inv := 1 / m.scale
	return layout.Size{
		Width:  scaleValue(float32(cols)*cell, inv),
		Height: scaleValue(float32(len(lines))*line, inv),
	}, true
}

// Constraint returns the physical extent text may use along one axis for
// a node with the given min, size and max: a pixel max wins, then a pixel
// min, then a pixel size with no clamps. Everything else is unbounded.
func Constraint(minVal, size, maxVal layout.Value, scale float64) float32 {
	return scaleValue(layout.ContentConstraint(minVal, size, maxVal), scale)
}

// Wrap breaks s into lines of at most maxCols terminal columns, splitting
// at spaces and hard-breaking words wider than a line. Runs of whitespace
// collapse to one space and explicit newlines are kept. maxCols <= 0
// disables wrapping.
func Wrap(s string, maxCols int) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		lines = append(lines, wrapLine(strings.Fields(para), maxCols)...)
	}
	return lines
}

func wrapLine(words []string, maxCols int) []string {
	if maxCols <= 0 || len(words) == 0 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	var line strings.Builder
	cols := 0
	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		cols = 0
	}

	for _, word := range words {
		width := runewidth.StringWidth(word)
		if cols > 0 && cols+1+width > maxCols {
			flush()
		}
		if cols > 0 {
			line.WriteByte(' ')
			cols++
		}
		if width <= maxCols-cols {
			line.WriteString(word)
			cols += width
			continue
		}

		for _, r := range word {
			rw := runewidth.RuneWidth(r)
			if cols > 0 && cols+rw > maxCols {
				flush()
			}
			line.WriteRune(r)
			cols += rw
		}
	}
	flush()
	return lines
}

func scaleValue(v float32, factor float64) float32 {
	return float32(float64(v) * factor)
}
