// This defines a command-line tool for solving mazes. Mazes are loaded from
// text files ('A' = start, 'B' = goal, '#' = wall) or from small PNG
// template images, and can be printed to the console or written out as a
// .png picture with the solution path highlighted.
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/sirupsen/logrus"
	"github.com/yalue/image_utils"
	"github.com/yalue/maze_solver"
)

var log = logrus.New()

// The size, in pixels, of the arrows drawn at the start and goal cells.
const arrowLength = 16

// The factor by which maze images are scaled up before decorating, so that
// the arrows fit within a single cell.
const imageScale = 3

// Reads the maze at the given path. Files ending in ".png" are treated as
// template images, anything else as maze text.
func loadMaze(path string) (*maze_solver.Grid, error) {
	if !strings.HasSuffix(path, ".png") {
		return maze_solver.LoadMaze(path)
	}
	f, e := os.Open(path)
	if e != nil {
		return nil, fmt.Errorf("Error opening template image %s: %w", path, e)
	}
	pic, _, e := image.Decode(f)
	f.Close()
	if e != nil {
		return nil, fmt.Errorf("Error parsing template image %s: %w", path, e)
	}
	return maze_solver.ParseMazeImage(pic)
}

// Converts a policy name given on the command line to a RemovalPolicy.
func parsePolicy(name string) (maze_solver.RemovalPolicy, error) {
	switch strings.ToLower(name) {
	case "dfs", "lifo", "stack":
		return maze_solver.LIFO, nil
	case "bfs", "fifo", "queue":
		return maze_solver.FIFO, nil
	}
	return 0, fmt.Errorf("invalid search policy %q: must be \"dfs\" or "+
		"\"bfs\"", name)
}

var printMazeFile string

func runPrint(cmd *commander.Command, args []string) error {
	if printMazeFile == "" {
		return fmt.Errorf("the -maze flag is required")
	}
	grid, e := loadMaze(printMazeFile)
	if e != nil {
		return e
	}
	fmt.Print(grid.Render(nil))
	return nil
}

func printCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       runPrint,
		UsageLine: "print -maze <file>",
		Short:     "prints a maze to the console without solving it",
		Long: `
prints a maze to the console without solving it

	$ ./solve_maze print -maze maze1.txt

`,
		Flag: *flag.NewFlagSet("print", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&printMazeFile, "maze", "",
		"The maze file to load: maze text, or a .png template image.")
	return cmd
}

var solveMazeFile string
var solvePolicyName string

func runSolve(cmd *commander.Command, args []string) error {
	if solveMazeFile == "" {
		return fmt.Errorf("the -maze flag is required")
	}
	policy, e := parsePolicy(solvePolicyName)
	if e != nil {
		return e
	}
	grid, e := loadMaze(solveMazeFile)
	if e != nil {
		return e
	}
	fmt.Println("Maze:")
	fmt.Print(grid.Render(nil))
	log.Infof("Solving %dx%d maze using the %s policy...", grid.Height(),
		grid.Width(), policy)
	result := maze_solver.Solve(grid, maze_solver.WithPolicy(policy))
	if !result.Found {
		log.Warnf("The maze has no solution. Explored %d nodes.",
			result.Explored)
		return nil
	}
	log.Infof("Explored %d nodes, found a path of %d moves.", result.Explored,
		len(result.Path))
	fmt.Println("Solution:")
	fmt.Print(grid.Render(result.Path))
	return nil
}

func solveCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       runSolve,
		UsageLine: "solve -maze <file> [-policy dfs|bfs]",
		Short:     "solves a maze and prints it with the path highlighted",
		Long: `
solves a maze and prints it with the path highlighted

	$ ./solve_maze solve -maze maze1.txt -policy bfs

`,
		Flag: *flag.NewFlagSet("solve", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&solveMazeFile, "maze", "",
		"The maze file to load: maze text, or a .png template image.")
	cmd.Flag.StringVar(&solvePolicyName, "policy", "dfs",
		"The search policy to use: \"dfs\" (stack) or \"bfs\" (queue).")
	return cmd
}

// Returns an arrow image pointing in the direction of the given action.
func getArrowForAction(action maze_solver.Action,
	arrowColor color.Color) image.Image {
	switch action {
	case maze_solver.ActionUp:
		return image_utils.UpArrow(arrowColor)
	case maze_solver.ActionDown:
		return image_utils.DownArrow(arrowColor)
	case maze_solver.ActionLeft:
		return image_utils.LeftArrow(arrowColor)
	}
	return image_utils.RightArrow(arrowColor)
}

// Returns an arrow pointing in the direction of the given action, drawn as a
// colored outline around a white center.
func getOutlinedArrow(action maze_solver.Action,
	arrowColor color.Color) image.Image {
	outerArrow := image_utils.ResizeImage(getArrowForAction(action,
		arrowColor), arrowLength, arrowLength)
	innerArrow := image_utils.ResizeImage(getArrowForAction(action,
		color.White), arrowLength/2, arrowLength/2)
	toReturn := image_utils.NewCompositeImage()
	toReturn.AddImage(outerArrow, image.Pt(0, 0))
	toReturn.AddImage(innerArrow, image.Pt(arrowLength/4, arrowLength/4))
	return image_utils.ToRGBA(toReturn)
}

// Returns the top-left point at which an arrowLength-square image should be
// drawn so that it's centered on the given maze cell, in the scaled-up
// picture's coordinates.
func getArrowTopLeft(cell maze_solver.Position) image.Point {
	centerX := (cell.Col*maze_solver.CellPixels +
		maze_solver.CellPixels/2) * imageScale
	centerY := (cell.Row*maze_solver.CellPixels +
		maze_solver.CellPixels/2) * imageScale
	return image.Pt(centerX-arrowLength/2, centerY-arrowLength/2)
}

// Draws the maze, scaled up, with arrows marking the first and last moves of
// the solution. Pass a nil path to draw the maze without decorations.
func drawMazeImage(grid *maze_solver.Grid,
	path []maze_solver.Step) (*image.RGBA, error) {
	basePic := maze_solver.NewMazeImage(grid, path)
	bounds := basePic.Bounds()
	scaledPic := image_utils.ResizeImage(basePic, bounds.Dx()*imageScale,
		bounds.Dy()*imageScale)
	decorated := image_utils.NewCompositeImage()
	e := decorated.AddImage(scaledPic, image.Pt(0, 0))
	if e != nil {
		return nil, fmt.Errorf("Error setting base maze image: %w", e)
	}
	if len(path) > 0 {
		greenColor := color.RGBA{40, 180, 70, 255}
		blueColor := color.RGBA{100, 120, 255, 255}
		startArrow := getOutlinedArrow(path[0].Action, greenColor)
		e = decorated.AddImage(startArrow, getArrowTopLeft(grid.Start()))
		if e != nil {
			return nil, fmt.Errorf("Error adding start arrow: %w", e)
		}
		goalArrow := getOutlinedArrow(path[len(path)-1].Action, blueColor)
		e = decorated.AddImage(goalArrow, getArrowTopLeft(grid.Goal()))
		if e != nil {
			return nil, fmt.Errorf("Error adding goal arrow: %w", e)
		}
	}
	bordered := maze_solver.AddImageBorder(decorated, 5)
	return image_utils.ToRGBA(bordered), nil
}

var imageMazeFile string
var imagePolicyName string
var imageOutFile string
var imageShowSolution bool

func runImage(cmd *commander.Command, args []string) error {
	if (imageMazeFile == "") || (imageOutFile == "") {
		return fmt.Errorf("the -maze and -output_file flags are required")
	}
	policy, e := parsePolicy(imagePolicyName)
	if e != nil {
		return e
	}
	grid, e := loadMaze(imageMazeFile)
	if e != nil {
		return e
	}
	var path []maze_solver.Step
	if imageShowSolution {
		log.Infof("Solving %dx%d maze using the %s policy...", grid.Height(),
			grid.Width(), policy)
		result := maze_solver.Solve(grid, maze_solver.WithPolicy(policy))
		if !result.Found {
			log.Warnf("The maze has no solution. Explored %d nodes. The "+
				"image will be drawn without a path.", result.Explored)
		} else {
			log.Infof("Explored %d nodes, found a path of %d moves.",
				result.Explored, len(result.Path))
			path = result.Path
		}
	}
	finalPic, e := drawMazeImage(grid, path)
	if e != nil {
		return fmt.Errorf("Error drawing maze image: %w", e)
	}
	f, e := os.Create(imageOutFile)
	if e != nil {
		return fmt.Errorf("Error creating output file %s: %w", imageOutFile, e)
	}
	defer f.Close()
	e = png.Encode(f, finalPic)
	if e != nil {
		return fmt.Errorf("Error writing image to %s: %w", imageOutFile, e)
	}
	log.Infof("Image %s written OK.", imageOutFile)
	return nil
}

func imageCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       runImage,
		UsageLine: "image -maze <file> -output_file <file.png> [options]",
		Short:     "writes a maze, optionally solved, to a .png image",
		Long: `
writes a maze, optionally solved, to a .png image

	$ ./solve_maze image -maze maze1.txt -output_file out.png -show_solution

`,
		Flag: *flag.NewFlagSet("image", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&imageMazeFile, "maze", "",
		"The maze file to load: maze text, or a .png template image.")
	cmd.Flag.StringVar(&imagePolicyName, "policy", "dfs",
		"The search policy to use: \"dfs\" (stack) or \"bfs\" (queue).")
	cmd.Flag.StringVar(&imageOutFile, "output_file", "",
		"The name of the .png file to which the maze will be saved.")
	cmd.Flag.BoolVar(&imageShowSolution, "show_solution", false,
		"If set, solves the maze and highlights the path in the image.")
	return cmd
}

func allCommands() *commander.Command {
	return &commander.Command{
		UsageLine: "solve_maze",
		Short:     "loads, solves, and renders mazes",
		Subcommands: []*commander.Command{
			printCmd(),
			solveCmd(),
			imageCmd(),
		},
		Flag: *flag.NewFlagSet("solve_maze", flag.ExitOnError),
	}
}

func main() {
	e := allCommands().Dispatch(os.Args[1:])
	if e != nil {
		log.Fatalf("Error: %v", e)
	}
}
