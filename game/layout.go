package game

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
)

//go:embed layouts/*.lay
var layoutFS embed.FS

// Layout is the static part of a board: walls, the initial food and capsules,
// and where every agent starts.
type Layout struct {
	Name        string
	Width       int
	Height      int
	Walls       Grid
	Food        Grid
	Capsules    []Position
	PacmanStart Position
	GhostStarts []Position
}

// ParseLayout reads a board drawn with one character per cell:
//
//	%  wall
//	.  food
//	o  capsule
//	P  pacman
//	G  ghost (1-4 are accepted as ghosts too)
//
// The first line is the top row of the board.
func ParseLayout(name string, r io.Reader) (*Layout, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read layout %s: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("layout %s is empty", name)
	}

	width := len(rows[0])
	height := len(rows)
	l := &Layout{
		Name:   name,
		Width:  width,
		Height: height,
		Walls:  NewGrid(width, height),
		Food:   NewGrid(width, height),
	}

	pacmanFound := false
	for r, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("layout %s: row %d has width %d, expected %d", name, r+1, len(row), width)
		}
		// Rows are drawn top down while y grows northwards
		y := height - 1 - r
		for x, cell := range row {
			p := Position{x, y}
			switch cell {
			case '%':
				l.Walls.set(p)
			case '.':
				l.Food.set(p)
			case 'o':
				l.Capsules = append(l.Capsules, p)
			case 'P':
				if pacmanFound {
					return nil, fmt.Errorf("layout %s: more than one pacman", name)
				}
				pacmanFound = true
				l.PacmanStart = p
			case 'G', '1', '2', '3', '4':
				l.GhostStarts = append(l.GhostStarts, p)
			case ' ':
			default:
				return nil, fmt.Errorf("layout %s: unknown cell %q at row %d column %d", name, cell, r+1, x+1)
			}
		}
	}
	if !pacmanFound {
		return nil, fmt.Errorf("layout %s: no pacman start", name)
	}

	return l, nil
}

// LoadLayout returns one of the bundled layouts, e.g. "tinyMaze".
func LoadLayout(name string) (*Layout, error) {
	f, err := layoutFS.Open(path.Join("layouts", strings.TrimSuffix(name, ".lay")+".lay"))
	if err != nil {
		return nil, fmt.Errorf("unknown layout %s: %w", name, err)
	}
	defer f.Close()

	return ParseLayout(name, f)
}

// LayoutNames lists the bundled layouts in alphabetical order.
func LayoutNames() []string {
	entries, err := layoutFS.ReadDir("layouts")
	if err != nil {
		panic(fmt.Sprintf("embedded layouts unreadable: %v", err))
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".lay"))
	}
	sort.Strings(names)
	return names
}

// IsWall reports whether p is a wall. Cells outside the board count as walls.
func (l *Layout) IsWall(p Position) bool {
	return !l.Walls.InBounds(p) || l.Walls.At(p)
}

// Neighbors returns the directions leading out of p into open cells, in
// Directions order, Stop excluded.
func (l *Layout) Neighbors(p Position) []Direction {
	var dirs []Direction
	for _, d := range Directions {
		if d == Stop {
			continue
		}
		if !l.IsWall(p.Step(d)) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}
