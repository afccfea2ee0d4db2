// level.go
package model

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// maze text symbols
var cellSymbols = map[rune]CellKind{
	' ': CellKind_Empty,
	'+': CellKind_WallA,
	'-': CellKind_WallA,
	'|': CellKind_WallA,
	'd': CellKind_Door,
	'g': CellKind_Goal,
	'z': CellKind_Collectible,
	'p': CellKind_SpawnMarker,
}

type LevelEntityColor = color.RGBA

// level image color keys
var (
	LevelEntityColor_Empty       = color.RGBA{255, 255, 255, 255}
	LevelEntityColor_Wall        = color.RGBA{0, 0, 0, 255}
	LevelEntityColor_Collectible = color.RGBA{255, 0, 0, 255}
	LevelEntityColor_Exit        = color.RGBA{0, 255, 0, 255}
	LevelEntityColor_Player      = color.RGBA{0, 0, 255, 255}
	LevelEntityColor_Door        = color.RGBA{255, 255, 0, 255}
)

var levelColors = map[LevelEntityColor]CellKind{
	LevelEntityColor_Empty:       CellKind_Empty,
	LevelEntityColor_Wall:        CellKind_WallA,
	LevelEntityColor_Collectible: CellKind_Collectible,
	LevelEntityColor_Exit:        CellKind_Goal,
	LevelEntityColor_Player:      CellKind_SpawnMarker,
	LevelEntityColor_Door:        CellKind_Door,
}

// ParseGrid reads a row-major character maze, one line per row.
func ParseGrid(r io.Reader, cellSize float64) (*Grid, error) {
	var cells [][]CellKind

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		row := make([]CellKind, 0, len(line))
		for _, ch := range line {
			kind, ok := cellSymbols[ch]
			if !ok {
				return nil, fmt.Errorf("%w %q at line %d, column %d", ErrUnknownCell, ch, lineNum, len(row))
			}
			row = append(row, kind)
		}
		cells = append(cells, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("model: read maze: %w", err)
	}

	return NewGrid(cells, cellSize)
}

// GridFromImage builds a grid from a level image, one pixel per cell.
func GridFromImage(img image.Image, cellSize float64) (*Grid, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	matrix := make([][]CellKind, height)
	for i := range matrix {
		matrix[i] = make([]CellKind, width)
	}

	// fill matrix based on pixel colors
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.RGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.RGBA)
			kind, ok := levelColors[c]
			if !ok {
				return nil, fmt.Errorf("%w: color %v at pixel (%d, %d)", ErrUnknownCell, c, x, y)
			}
			matrix[y][x] = kind
		}
	}

	return NewGrid(matrix, cellSize)
}

// ReadGrid decodes a maze named name; .png names are read as level images,
// anything else as text.
func ReadGrid(name string, r io.Reader, cellSize float64) (*Grid, error) {
	if strings.EqualFold(filepath.Ext(name), ".png") {
		img, _, err := image.Decode(r)
		if err != nil {
			return nil, fmt.Errorf("model: decode level %s: %w", name, err)
		}
		return GridFromImage(img, cellSize)
	}

	grid, err := ParseGrid(r, cellSize)
	if err != nil {
		return nil, fmt.Errorf("model: parse maze %s: %w", name, err)
	}
	return grid, nil
}

// LoadGrid loads a maze from disk.
func LoadGrid(path string, cellSize float64) (*Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("model: open maze %s: %w", path, err)
	}
	defer file.Close()

	return ReadGrid(path, file, cellSize)
}
