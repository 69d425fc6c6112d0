package maze_solver

import (
	"image"
	"image/color"
	"strings"
)

// Returns the maze rendered as text, one line per row. Each cell is drawn as
// the first matching glyph of: wall '█', start 'A', goal 'B', solution path
// '*', open floor ' '. Pass nil to render the maze without a solution.
func (g *Grid) Render(path []Step) string {
	onPath := make(map[Position]bool, len(path))
	for _, step := range path {
		onPath[step.State] = true
	}
	var b strings.Builder
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			p := Position{Row: row, Col: col}
			switch {
			case g.walls[row*g.width+col]:
				b.WriteRune('█')
			case p == g.start:
				b.WriteByte('A')
			case p == g.goal:
				b.WriteByte('B')
			case onPath[p]:
				b.WriteByte('*')
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// The number of pixels across, in a square cell of a rendered maze image.
const CellPixels = 9

var startColor = color.RGBA{R: 40, G: 180, B: 70, A: 255}
var goalColor = color.RGBA{R: 100, G: 120, B: 255, A: 255}
var pathColor = color.RGBA{R: 230, G: 20, B: 20, A: 255}

// Satisfies the image.Image interface; draws a parsed maze and, optionally,
// a solution path. Create using NewMazeImage.
type mazeImage struct {
	grid   *Grid
	onPath map[Position]bool
}

// Returns an image of the given maze. If path is non-nil, the cells along it
// are highlighted. The cell glyph priority matches the text renderer: wall,
// start, goal, path, open floor.
func NewMazeImage(g *Grid, path []Step) image.Image {
	onPath := make(map[Position]bool, len(path))
	for _, step := range path {
		onPath[step.State] = true
	}
	return &mazeImage{
		grid:   g,
		onPath: onPath,
	}
}

func (m *mazeImage) ColorModel() color.Model {
	return color.RGBAModel
}

func (m *mazeImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.grid.width*CellPixels, m.grid.height*CellPixels)
}

func (m *mazeImage) At(x, y int) color.Color {
	if (x < 0) || (y < 0) || (x >= m.grid.width*CellPixels) ||
		(y >= m.grid.height*CellPixels) {
		return color.Transparent
	}
	p := Position{Row: y / CellPixels, Col: x / CellPixels}
	if m.grid.walls[p.Row*m.grid.width+p.Col] {
		return color.Black
	}
	if p == m.grid.start {
		return startColor
	}
	if p == m.grid.goal {
		return goalColor
	}
	if !m.onPath[p] {
		return color.White
	}
	// Path cells get a red inner square, leaving a white margin so adjacent
	// path cells read as separate dots.
	xOffset := x % CellPixels
	yOffset := y % CellPixels
	if (xOffset > 1) && (xOffset < (CellPixels - 2)) && (yOffset > 1) &&
		(yOffset < (CellPixels - 2)) {
		return pathColor
	}
	return color.White
}

// Satisfies the Image interface, surrounds an image with a solid-color
// border.
type imageBorder struct {
	pic         image.Image
	picBounds   image.Rectangle
	borderWidth int
	fillColor   color.Color
}

func (b *imageBorder) ColorModel() color.Model {
	return b.pic.ColorModel()
}

func (b *imageBorder) Bounds() image.Rectangle {
	tmp := b.picBounds
	w := b.borderWidth * 2
	return image.Rect(0, 0, tmp.Dx()+w, tmp.Dy()+w)
}

func (b *imageBorder) At(x, y int) color.Color {
	tmp := b.picBounds
	if (x < b.borderWidth) || (y < b.borderWidth) {
		return b.fillColor
	}
	if (x >= tmp.Dx()+b.borderWidth) || (y >= tmp.Dy()+b.borderWidth) {
		return b.fillColor
	}
	return b.pic.At(x-b.borderWidth+tmp.Min.X, y-b.borderWidth+tmp.Min.Y)
}

// Returns a new image, consisting of the given image surrounded by a white
// border with the given width in pixels.
func AddImageBorder(pic image.Image, width int) image.Image {
	return &imageBorder{
		pic:         pic,
		picBounds:   pic.Bounds(),
		borderWidth: width,
		fillColor:   color.White,
	}
}
