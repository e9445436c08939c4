package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/grindlemire/morph/internal/canvas"
	"github.com/grindlemire/morph/internal/scene"
	"github.com/grindlemire/morph/pkg/layout"
	"github.com/grindlemire/morph/pkg/text"
)

var errBorderStyle = errors.New("unknown border style")

const (
	defaultCols = 80
	defaultRows = 24
)

func newPreviewCmd() *cobra.Command {
	var (
		cols, rows int
		borderName string
	)

	cmd := &cobra.Command{
		Use:   "preview <scene>",
		Short: "Draw a scene's rects as boxes",
		Long: `Lay out a scene and draw every node as a titled box, scaled from the
scene viewport to the terminal. A scene without a viewport is laid out
one pixel per cell.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			border, ok := canvas.ParseBorderStyle(borderName)
			if !ok {
				return fmt.Errorf("%w: %q", errBorderStyle, borderName)
			}

			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			sc, err := scene.Load(args[0])
			if err != nil {
				return err
			}

			if cols <= 0 || rows <= 0 {
				w, h := terminalSize(cmd.OutOrStdout())
				if cols <= 0 {
					cols = w
				}
				if rows <= 0 {
					rows = h
				}
			}
			if sc.Viewport.IsEmpty() {
				sc.Viewport = layout.NewRect(0, 0, float32(cols), float32(rows))
			}
			logger.Debug("preview", "cols", cols, "rows", rows, "viewport", sc.Viewport)

			results, err := solveScene(ctx, sc)
			if err != nil {
				return err
			}
			if bounds := contentBounds(results); overflows(bounds, sc.Viewport) {
				logger.Warn("scene overflows viewport", "bounds", bounds, "viewport", sc.Viewport)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderPreview(sc, results, cols, rows, border))
			return err
		},
	}

	cmd.Flags().IntVar(&cols, "cols", 0, "canvas width in cells (default: terminal width)")
	cmd.Flags().IntVar(&rows, "rows", 0, "canvas height in cells (default: terminal height)")
	cmd.Flags().StringVar(&borderName, "border", "rounded", "box style: none, single, double, rounded or thick")
	return cmd
}

// terminalSize reports the size of w when it is a terminal and falls back
// to 80x24 otherwise.
func terminalSize(w io.Writer) (cols, rows int) {
	f, ok := w.(*os.File)
	if !ok {
		return defaultCols, defaultRows
	}
	cols, rows, err := getTerminalSize(int(f.Fd()))
	if err != nil || cols <= 0 || rows <= 0 {
		return defaultCols, defaultRows
	}
	return cols, rows
}

// renderPreview draws the placements in pre-order so children land on top
// of their parents.
func renderPreview(sc *scene.Scene, results [][]placement, cols, rows int, border canvas.BorderStyle) string {
	c := canvas.New(cols, rows)
	vp := sc.Viewport
	sx, sy := cellScale(cols, vp.Width), cellScale(rows, vp.Height)

	for _, placed := range results {
		for _, p := range placed {
			r := canvas.FromLayout(p.rect().Translate(-vp.PosX, -vp.PosY), sx, sy)
			canvas.DrawBoxWithTitle(c, r, border, p.ID)
			if s, ok := sc.Text.Text(p.node); ok {
				drawText(c, r, border, s)
			}
		}
	}
	return c.StringTrimmed()
}

// contentBounds is the smallest rect holding every non-empty placement.
func contentBounds(results [][]placement) layout.Rect {
	var bounds layout.Rect
	for _, placed := range results {
		for _, p := range placed {
			bounds = bounds.Union(p.rect())
		}
	}
	return bounds
}

func overflows(bounds, viewport layout.Rect) bool {
	if bounds.IsEmpty() {
		return false
	}
	return bounds.PosX < viewport.PosX || bounds.PosY < viewport.PosY ||
		bounds.Right() > viewport.Right() || bounds.Bottom() > viewport.Bottom()
}

func cellScale(cells int, extent float32) float64 {
	if extent <= 0 {
		return 1
	}
	return float64(cells) / float64(extent)
}

func drawText(c *canvas.Canvas, r canvas.Rect, border canvas.BorderStyle, s string) {
	inner := r
	if border != canvas.BorderNone {
		inner = canvas.Rect{X: r.X + 1, Y: r.Y + 1, Width: r.Width - 2, Height: r.Height - 2}
	}
	if inner.IsEmpty() {
		return
	}
	for i, line := range text.Wrap(s, inner.Width) {
		if i >= inner.Height {
			break
		}
		c.SetString(inner.X, inner.Y+i, line, inner)
	}
}
