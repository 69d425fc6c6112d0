// This defines a library for solving 2D grid mazes using uninformed graph
// search. Mazes are parsed from plain text (or from small template images),
// solved by a depth-first or breadth-first traversal, and can be rendered
// either as text or as an image satisfying go's image.Image interface.
package maze_solver

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"
)

// A single coordinate in a maze grid. Row 0 is the top row, and column 0 is
// the leftmost column.
type Position struct {
	Row int
	Col int
}

// One of the four cardinal moves connecting two adjacent positions.
// ActionNone is only used for the root of a search tree.
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	}
	return fmt.Sprintf("Unknown action: %d", uint8(a))
}

// A single move in a maze: the action taken, and the position it leads to.
// Grid.Neighbors returns one Step per valid move, and a solved path is a
// sequence of Steps from the cell after the start up to and including the
// goal.
type Step struct {
	Action Action
	State  Position
}

// Returned when a maze source does not contain exactly one start marker and
// exactly one goal marker.
type MazeFormatError struct {
	message string
}

func (e *MazeFormatError) Error() string {
	return "invalid maze format: " + e.message
}

// Holds a parsed maze: its dimensions, which cells are walls, and the start
// and goal cells. Create using ParseMaze, LoadMaze, or ParseMazeImage. Never
// modified after construction, so a single Grid may be shared by any number
// of concurrent searches.
type Grid struct {
	height int
	width  int
	// Indexed by row*width + col. True entries are walls.
	walls []bool
	start Position
	goal  Position
}

// Returns the number of rows in the maze.
func (g *Grid) Height() int {
	return g.height
}

// Returns the number of columns in the maze.
func (g *Grid) Width() int {
	return g.width
}

// Returns the maze's start cell.
func (g *Grid) Start() Position {
	return g.start
}

// Returns the maze's goal cell.
func (g *Grid) Goal() Position {
	return g.goal
}

// Returns true if the given position is a wall. Positions outside of the
// maze's bounds are treated as walls.
func (g *Grid) IsWall(p Position) bool {
	if (p.Row < 0) || (p.Row >= g.height) || (p.Col < 0) || (p.Col >= g.width) {
		return true
	}
	return g.walls[p.Row*g.width+p.Col]
}

// The four candidate moves, in the order they are always evaluated. The
// order matters: it decides which branch a depth-first search descends into
// first, so changing it changes which (equally valid) path gets found.
var neighborOffsets = [4]struct {
	action   Action
	rowDelta int
	colDelta int
}{
	{ActionUp, -1, 0},
	{ActionDown, 1, 0},
	{ActionLeft, 0, -1},
	{ActionRight, 0, 1},
}

// Returns the valid moves out of the given position: every candidate in the
// fixed order up, down, left, right that stays in bounds and doesn't land on
// a wall. Pure; never modifies the Grid.
func (g *Grid) Neighbors(state Position) []Step {
	toReturn := make([]Step, 0, 4)
	for i := range neighborOffsets {
		offset := &(neighborOffsets[i])
		candidate := Position{
			Row: state.Row + offset.rowDelta,
			Col: state.Col + offset.colDelta,
		}
		if (candidate.Row < 0) || (candidate.Row >= g.height) {
			continue
		}
		if (candidate.Col < 0) || (candidate.Col >= g.width) {
			continue
		}
		if g.walls[candidate.Row*g.width+candidate.Col] {
			continue
		}
		toReturn = append(toReturn, Step{
			Action: offset.action,
			State:  candidate,
		})
	}
	return toReturn
}

// Parses a maze from text. 'A' marks the start cell, 'B' marks the goal,
// '#' marks a wall, and any other character is open floor. Lines may have
// different lengths; the maze's width is the length of the longest line, and
// shorter lines are padded on the right with open floor. Returns a
// MazeFormatError if the text does not contain exactly one 'A' and exactly
// one 'B'.
func ParseMaze(contents string) (*Grid, error) {
	contents = strings.ReplaceAll(contents, "\r\n", "\n")
	lines := strings.Split(contents, "\n")
	// A trailing newline isn't an extra maze row.
	if (len(lines) > 0) && (lines[len(lines)-1] == "") {
		lines = lines[:len(lines)-1]
	}
	height := len(lines)
	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}
	if (height == 0) || (width == 0) {
		return nil, &MazeFormatError{"the maze contains no cells"}
	}
	toReturn := &Grid{
		height: height,
		width:  width,
		walls:  make([]bool, height*width),
	}
	startCount := 0
	goalCount := 0
	for row, line := range lines {
		// Columns past the end of a short line are left as open floor
		// rather than being errors.
		for col := 0; col < len(line); col++ {
			switch line[col] {
			case 'A':
				toReturn.start = Position{Row: row, Col: col}
				startCount++
			case 'B':
				toReturn.goal = Position{Row: row, Col: col}
				goalCount++
			case '#':
				toReturn.walls[row*width+col] = true
			}
		}
	}
	if startCount != 1 {
		return nil, &MazeFormatError{fmt.Sprintf("the maze must have exactly "+
			"1 start marker, got %d", startCount)}
	}
	if goalCount != 1 {
		return nil, &MazeFormatError{fmt.Sprintf("the maze must have exactly "+
			"1 goal marker, got %d", goalCount)}
	}
	return toReturn, nil
}

// Reads and parses a text-format maze from the file at the given path.
func LoadMaze(path string) (*Grid, error) {
	contents, e := os.ReadFile(path)
	if e != nil {
		return nil, fmt.Errorf("Error reading maze file %s: %w", path, e)
	}
	toReturn, e := ParseMaze(string(contents))
	if e != nil {
		return nil, fmt.Errorf("Error parsing maze file %s: %w", path, e)
	}
	return toReturn, nil
}

// Converts an arbitrary color to the maze-text character the pixel stands
// for. See the comment on ParseMazeImage for how the mapping works.
func colorToMazeChar(c color.Color) byte {
	r, g, b, _ := c.RGBA()
	r = r >> 8
	g = g >> 8
	b = b >> 8
	// Black pixels are walls.
	if (r == 0) && (g == 0) && (b == 0) {
		return '#'
	}
	// Green pixels are the start cell.
	if (r == 0) && (g > 200) && (b == 0) {
		return 'A'
	}
	// Red pixels are the goal cell.
	if (r > 200) && (g == 0) && (b == 0) {
		return 'B'
	}
	// Everything else is open floor.
	return ' '
}

// Builds a maze from a "template" image, with each pixel corresponding to
// one cell. The image must use the following format:
//   - Black pixels are walls
//   - One green pixel (RGB = 0, >200, 0) is the start cell
//   - One red pixel (RGB = >200, 0, 0) is the goal cell
//   - Any other color is open floor.
//
// The same exactly-one start and goal rule as ParseMaze applies.
func ParseMazeImage(pic image.Image) (*Grid, error) {
	bounds := pic.Bounds().Canon()
	width := bounds.Dx()
	height := bounds.Dy()
	if (width < 1) || (height < 1) {
		return nil, &MazeFormatError{"the template image contains no pixels"}
	}
	toReturn := &Grid{
		height: height,
		width:  width,
		walls:  make([]bool, height*width),
	}
	startCount := 0
	goalCount := 0
	cellIndex := -1
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			cellIndex++
			switch colorToMazeChar(pic.At(x, y)) {
			case 'A':
				toReturn.start = Position{Row: cellIndex / width,
					Col: cellIndex % width}
				startCount++
			case 'B':
				toReturn.goal = Position{Row: cellIndex / width,
					Col: cellIndex % width}
				goalCount++
			case '#':
				toReturn.walls[cellIndex] = true
			}
		}
	}
	if startCount != 1 {
		return nil, &MazeFormatError{fmt.Sprintf("the template must have "+
			"exactly 1 green start pixel, got %d", startCount)}
	}
	if goalCount != 1 {
		return nil, &MazeFormatError{fmt.Sprintf("the template must have "+
			"exactly 1 red goal pixel, got %d", goalCount)}
	}
	return toReturn, nil
}
