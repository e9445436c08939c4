package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/morph/internal/scene"
	"github.com/grindlemire/morph/pkg/layout"
)

var errOutputFormat = errors.New("unknown output format")

const (
	formatTable = "table"
	formatPlain = "plain"
	formatJSON  = "json"
)

// placement is the solved rect of one node.
type placement struct {
	ID     string  `json:"id"`
	Root   string  `json:"root"`
	Depth  int     `json:"depth"`
	X      float32 `json:"x"`
	Y      float32 `json:"y"`
	Width  float32 `json:"width"`
	Height float32 `json:"height"`

	node layout.NodeID
}

func (p placement) rect() layout.Rect {
	return layout.NewRect(p.X, p.Y, p.Width, p.Height)
}

func newSolveCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "solve <scene>",
		Short: "Lay out a scene and print every node's rect",
		Long: `Lay out every root of a TOML or YAML scene and print one line per node
in pre-order: id, x, y, width and height.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case formatTable, formatPlain, formatJSON:
			default:
				return fmt.Errorf("%w: %q", errOutputFormat, format)
			}

			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			sc, err := scene.Load(args[0])
			if err != nil {
				return err
			}
			logger.Debug("loaded scene", "path", args[0], "nodes", sc.Store.Len())

			prog := newProgress(logger)
			results, err := solveScene(ctx, sc)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Solved %d roots", len(results)))

			return writePlacements(cmd.OutOrStdout(), results, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table, plain or json")
	return cmd
}

// solveScene lays out every root of sc concurrently, each into its own
// cache, and returns the placements per root in root order.
func solveScene(ctx context.Context, sc *scene.Scene) ([][]placement, error) {
	logger := loggerFromContext(ctx)
	roots := sc.Roots()
	results := make([][]placement, len(roots))

	g, ctx := errgroup.WithContext(ctx)
	for i, root := range roots {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tree := layout.NewTree(root, sc.Store)
			cache := layout.NewCache()
			layout.Calculate(tree, sc.Store, cache, sc.Viewport,
				layout.WithContentSizer(sc.Text),
				layout.WithLogger(logger.With("root", sc.Name(root))),
			)
			results[i] = collect(sc, tree, cache)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func collect(sc *scene.Scene, tree *layout.Tree, cache *layout.Cache) []placement {
	rootName := sc.Name(tree.Root())
	depth := make(map[layout.NodeID]int)
	var out []placement
	for id := range tree.Flatten() {
		d := 0
		if parent, ok := tree.Parent(id); ok && id != tree.Root() {
			d = depth[parent] + 1
		}
		depth[id] = d

		r := cache.Rect(id)
		out = append(out, placement{
			ID:     sc.Name(id),
			Root:   rootName,
			Depth:  d,
			X:      r.PosX,
			Y:      r.PosY,
			Width:  r.Width,
			Height: r.Height,
			node:   id,
		})
	}
	return out
}

func writePlacements(w io.Writer, results [][]placement, format string) error {
	var flat []placement
	for _, r := range results {
		flat = append(flat, r...)
	}

	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(flat)
	case formatPlain:
		for _, p := range flat {
			if _, err := fmt.Fprintf(w, "%s %s %s %s %s\n", p.ID,
				formatNum(p.X), formatNum(p.Y), formatNum(p.Width), formatNum(p.Height)); err != nil {
				return err
			}
		}
		return nil
	default:
		_, err := fmt.Fprintln(w, renderTable(flat))
		return err
	}
}

func renderTable(flat []placement) string {
	rows := make([][]string, len(flat))
	for i, p := range flat {
		rows[i] = []string{
			strings.Repeat("  ", p.Depth) + p.ID,
			formatNum(p.X), formatNum(p.Y), formatNum(p.Width), formatNum(p.Height),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("NODE", "X", "Y", "W", "H").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader
			case col > 0:
				return styleNumber
			case row >= 0 && row < len(flat) && flat[row].Depth == 0:
				return styleRoot.Padding(0, 1)
			default:
				return styleName
			}
		})
	return t.String()
}

// formatNum prints v with at most two decimals and no trailing zeros.
func formatNum(v float32) string {
	s := strconv.FormatFloat(float64(v), 'f', 2, 32)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
