package visualizer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"github.com/yalue/image_utils"

	"github.com/Aidan-Simard/Pathfinding-Visualizer/grid"
)

// Glyph returns the ASCII symbol for n: S start, E end, # wall, * path,
// . visited, w heavy (weight > 1) and a space for an open node.
func Glyph(n *grid.Node) byte {
	switch {
	case n.IsStart:
		return 'S'
	case n.IsEnd:
		return 'E'
	case n.IsWall:
		return '#'
	case n.IsPath:
		return '*'
	case n.IsVisited:
		return '.'
	case n.Weight > 1:
		return 'w'
	default:
		return ' '
	}
}

// RenderASCII draws g one line per row.
func RenderASCII(g *grid.Grid) string {
	var sb strings.Builder
	sb.Grow(g.Len() + g.Rows())
	g.Each(func(n *grid.Node) {
		sb.WriteByte(Glyph(n))
		if n.Col == g.Cols()-1 && n.Row < g.Rows()-1 {
			sb.WriteByte('\n')
		}
	})
	return sb.String()
}

// DefaultCellPixels is the side of a rendered cell in pixels.
const DefaultCellPixels = 9

// Cell colors.
var (
	ColorOpen    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorGrid    = color.RGBA{R: 200, G: 215, B: 230, A: 255}
	ColorWall    = color.RGBA{R: 12, G: 53, B: 71, A: 255}
	ColorStart   = color.RGBA{R: 20, G: 160, B: 60, A: 255}
	ColorEnd     = color.RGBA{R: 230, G: 20, B: 20, A: 255}
	ColorVisited = color.RGBA{R: 64, G: 206, B: 227, A: 255}
	ColorPath    = color.RGBA{R: 255, G: 254, B: 106, A: 255}
	ColorHeavy   = color.RGBA{R: 150, G: 110, B: 70, A: 255}
)

// Image draws a grid as square cells separated by one-pixel grid lines.
// It reads the grid on every call to At, so it reflects later edits.
type Image struct {
	g    *grid.Grid
	cell int
}

// NewImage wraps g. A cell size below 3 falls back to DefaultCellPixels.
func NewImage(g *grid.Grid, cellPixels int) *Image {
	if cellPixels < 3 {
		cellPixels = DefaultCellPixels
	}
	return &Image{g: g, cell: cellPixels}
}

// ColorModel is always RGBA.
func (m *Image) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds spans Cols*cell by Rows*cell pixels anchored at the origin.
func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.g.Cols()*m.cell, m.g.Rows()*m.cell)
}

// At returns ColorGrid on cell borders, the node's color inside a cell and
// transparent outside Bounds.
func (m *Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(m.Bounds()) {
		return color.Transparent
	}
	if x%m.cell == 0 || y%m.cell == 0 {
		return ColorGrid
	}
	n := m.g.Node(grid.Coord{Row: y / m.cell, Col: x / m.cell})
	return cellColor(n)
}

func cellColor(n *grid.Node) color.Color {
	switch {
	case n.IsStart:
		return ColorStart
	case n.IsEnd:
		return ColorEnd
	case n.IsWall:
		return ColorWall
	case n.IsPath:
		return ColorPath
	case n.IsVisited:
		return ColorVisited
	case n.Weight > 1:
		return ColorHeavy
	default:
		return ColorOpen
	}
}

// Compose renders g and overlays a right-pointing arrow on the start node
// and a down-pointing arrow on the end node.
func Compose(g *grid.Grid, cellPixels int) (*image.RGBA, error) {
	base := NewImage(g, cellPixels)
	out := image_utils.NewCompositeImage()
	if err := out.AddImage(base, image.Pt(0, 0)); err != nil {
		return nil, fmt.Errorf("visualizer: base layer: %w", err)
	}

	side := base.cell - 1
	marker := func(c grid.Coord, arrow image.Image) error {
		return out.AddImage(image_utils.ResizeImage(arrow, side, side),
			image.Pt(c.Col*base.cell+1, c.Row*base.cell+1))
	}
	if start, ok := g.Start(); ok {
		if err := marker(start, image_utils.RightArrow(color.White)); err != nil {
			return nil, fmt.Errorf("visualizer: start marker: %w", err)
		}
	}
	if end, ok := g.End(); ok {
		if err := marker(end, image_utils.DownArrow(color.White)); err != nil {
			return nil, fmt.Errorf("visualizer: end marker: %w", err)
		}
	}
	return image_utils.ToRGBA(out), nil
}

// WritePNG encodes the composed rendering of g to w.
func WritePNG(w io.Writer, g *grid.Grid, cellPixels int) error {
	img, err := Compose(g, cellPixels)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
