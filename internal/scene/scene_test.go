package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/grindlemire/morph/pkg/layout"
)

const dashboardTOML = `
[viewport]
width = 120
height = 40
scale = 2

[text]
cell_width = 1
line_height = 1

[[node]]
id = "root"
children = ["header", "body"]

[[node]]
id = "header"
height = 3
text = "Dashboard"

[[node]]
id = "body"
layout = "row"
height = "1s"
col_between = "1px"
children = ["nav", "main"]

[[node]]
id = "nav"
width = "20%"

[[node]]
id = "main"
width = "1stretch"
grid_cols = ["10px", "auto", 2]
row_span = 2
`

const dashboardYAML = `
viewport:
  width: 120
  height: 40
  scale: 2
text:
  cell_width: 1
  line_height: 1
node:
  - id: root
    children: [header, body]
  - id: header
    height: 3
    text: Dashboard
  - id: body
    layout: row
    height: 1s
    col_between: 1px
    children: [nav, main]
  - id: nav
    width: 20%
  - id: main
    width: 1stretch
    grid_cols: [10px, auto, 2]
    row_span: 2
`

func TestParse_Formats(t *testing.T) {
	tests := map[string]struct {
		data   string
		format Format
	}{
		"toml": {data: dashboardTOML, format: FormatTOML},
		"yaml": {data: dashboardYAML, format: FormatYAML},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s, err := Parse([]byte(tt.data), tt.format)
			require.NoError(t, err)

			require.Equal(t, layout.NewRect(0, 0, 120, 40), s.Viewport)
			require.Equal(t, 2.0, s.Text.ScaleFactor())

			root, ok := s.ID("root")
			require.True(t, ok)
			require.Equal(t, []layout.NodeID{root}, s.Roots())
			require.Equal(t, "root", s.Name(root))

			body, _ := s.ID("body")
			header, _ := s.ID("header")
			require.Equal(t, []layout.NodeID{header, body}, s.Store.Children(root))

			style := s.Store.LayoutStyle(body)
			require.Equal(t, layout.Row, style.LayoutType)
			require.Equal(t, layout.Stretch(1), style.Height)
			require.Equal(t, layout.Pixels(1), style.ColBetween)

			main, _ := s.ID("main")
			mainStyle := s.Store.LayoutStyle(main)
			require.Equal(t, layout.Stretch(1), mainStyle.Width)
			require.Equal(t, []layout.Value{layout.Pixels(10), layout.Auto(), layout.Pixels(2)}, mainStyle.GridCols)
			require.Equal(t, 2, mainStyle.RowSpan)
			require.Equal(t, 1, mainStyle.ColSpan)

			nav, _ := s.ID("nav")
			require.Equal(t, layout.Percent(20), s.Store.LayoutStyle(nav).Width)

			label, ok := s.Text.Text(header)
			require.True(t, ok)
			require.Equal(t, "Dashboard", label)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]struct {
		data string
		want error
	}{
		"unknown child": {
			data: `
[[node]]
id = "a"
children = ["ghost"]
`,
			want: ErrUnknownNode,
		},
		"duplicate id": {
			data: `
[[node]]
id = "a"
[[node]]
id = "a"
`,
			want: ErrDuplicateNode,
		},
		"missing id": {
			data: `
[[node]]
width = 3
`,
			want: ErrMissingID,
		},
		"two parents": {
			data: `
[[node]]
id = "a"
children = ["c"]
[[node]]
id = "b"
children = ["c"]
[[node]]
id = "c"
`,
			want: ErrMultipleParents,
		},
		"cycle": {
			data: `
[[node]]
id = "root"
[[node]]
id = "a"
children = ["b"]
[[node]]
id = "b"
children = ["a"]
`,
			want: ErrCycle,
		},
		"own child": {
			data: `
[[node]]
id = "a"
children = ["a"]
`,
			want: ErrCycle,
		},
		"three node cycle": {
			data: `
[[node]]
id = "root"
[[node]]
id = "a"
children = ["b"]
[[node]]
id = "b"
children = ["c"]
[[node]]
id = "c"
children = ["a"]
`,
			want: ErrCycle,
		},
		"repeated child": {
			data: `
[[node]]
id = "a"
children = ["b", "b"]
[[node]]
id = "b"
`,
			want: ErrMultipleParents,
		},
		"bad unit": {
			data: `
[[node]]
id = "a"
width = "10em"
`,
			want: ErrUnknownUnit,
		},
		"bad track": {
			data: `
[[node]]
id = "a"
grid_rows = ["1s", "x%"]
`,
			want: ErrInvalidValue,
		},
		"bad layout": {
			data: `
[[node]]
id = "a"
layout = "flex"
`,
			want: ErrUnknownLayout,
		},
		"bad position": {
			data: `
[[node]]
id = "a"
position = "absolute"
`,
			want: ErrUnknownPosition,
		},
		"unknown key": {
			data: `
[[node]]
id = "a"
colour = "red"
`,
			want: ErrUnknownKey,
		},
		"negative viewport": {
			data: `
[viewport]
width = -1
`,
			want: ErrViewport,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), FormatTOML)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestScene_HugeSpan(t *testing.T) {
	s, err := Parse([]byte(`
[[node]]
id = "grid"
layout = "grid"
width = 40
height = 10
grid_cols = [10, 10, 10, 10]
children = ["wide"]

[[node]]
id = "wide"
col = 2
col_span = 9223372036854775807
`), FormatTOML)
	require.NoError(t, err)

	grid, _ := s.ID("grid")
	wide, _ := s.ID("wide")
	cache := layout.NewCache()
	layout.Calculate(layout.NewTree(grid, s.Store), s.Store, cache, layout.NewRect(0, 0, 40, 10))

	require.Equal(t, layout.NewRect(20, 0, 20, 10), cache.Rect(wide))
}

func TestParse_YAMLUnknownKey(t *testing.T) {
	_, err := Parse([]byte("node:\n  - id: a\n    colour: red\n"), FormatYAML)
	require.ErrorIs(t, err, ErrUnknownKey)
}

func TestParse_ErrorNamesNode(t *testing.T) {
	_, err := Parse([]byte("[[node]]\nid = \"sidebar\"\nwidth = \"wide\"\n"), FormatTOML)
	require.ErrorIs(t, err, ErrUnknownUnit)
	require.ErrorContains(t, err, `node "sidebar": width`)
}

func TestParse_Unstyled(t *testing.T) {
	s, err := Parse([]byte(`
[[node]]
id = "root"
children = ["ghost"]

[[node]]
id = "ghost"
unstyled = true
`), FormatTOML)
	require.NoError(t, err)

	ghost, _ := s.ID("ghost")
	require.Nil(t, s.Store.LayoutStyle(ghost))
}

func TestParse_Defaults(t *testing.T) {
	s, err := Parse([]byte("[[node]]\nid = \"a\"\n"), FormatTOML)
	require.NoError(t, err)

	require.Equal(t, 1.0, s.Text.ScaleFactor())
	a, _ := s.ID("a")
	require.Equal(t, layout.DefaultStyle(), *s.Store.LayoutStyle(a))
	require.Equal(t, "#7", s.Name(7))
}

func TestParseValue(t *testing.T) {
	tests := map[string]struct {
		in   string
		want layout.Value
		err  error
	}{
		"empty":          {in: "", want: layout.Auto()},
		"auto":           {in: "Auto", want: layout.Auto()},
		"bare number":    {in: "12", want: layout.Pixels(12)},
		"pixels":         {in: "12.5px", want: layout.Pixels(12.5)},
		"spaced pixels":  {in: " 3 px ", want: layout.Pixels(3)},
		"negative":       {in: "-4px", want: layout.Pixels(-4)},
		"percent":        {in: "50%", want: layout.Percent(50)},
		"stretch short":  {in: "2s", want: layout.Stretch(2)},
		"stretch long":   {in: "0.5stretch", want: layout.Stretch(0.5)},
		"unknown unit":   {in: "3em", err: ErrUnknownUnit},
		"word":           {in: "wide", err: ErrUnknownUnit},
		"missing number": {in: "px", err: ErrInvalidValue},
		"bad number":     {in: "1.2.3%", err: ErrInvalidValue},
		"infinity":       {in: "inf", err: ErrInvalidValue},
		"infinite px":    {in: "infpx", err: ErrInvalidValue},
		"negative inf":   {in: "-inf%", err: ErrInvalidValue},
		"nan stretch":    {in: "nans", err: ErrInvalidValue},
		"overflow":       {in: "1e40px", err: ErrInvalidValue},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseValue(tt.in)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]Format{
		"a.toml":     FormatTOML,
		"dir/b.YAML": FormatYAML,
		"c.yml":      FormatYAML,
	} {
		got, err := FormatFromPath(path)
		require.NoError(t, err, path)
		require.Equal(t, want, got, path)
	}

	_, err := FormatFromPath("scene.json")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dashboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(dashboardYAML), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 5, s.Store.Len())

	_, err = Load(filepath.Join(dir, "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestScene_Layout(t *testing.T) {
	s, err := Parse([]byte(dashboardTOML), FormatTOML)
	require.NoError(t, err)

	root, _ := s.ID("root")
	cache := layout.NewCache()
	layout.Calculate(layout.NewTree(root, s.Store), s.Store, cache, s.Viewport, layout.WithContentSizer(s.Text))

	nav, _ := s.ID("nav")
	main, _ := s.ID("main")
	require.Equal(t, layout.NewRect(0, 3, 24, 37), cache.Rect(nav))
	require.Equal(t, layout.NewRect(25, 3, 95, 37), cache.Rect(main))
}
