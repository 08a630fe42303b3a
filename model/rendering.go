package model

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	cellSeparator = "  "
	rowBorder     = "|"

	aliveColor = "#22c55e"
)

// Render formats the grid one line per row: a "|", then each cell as two
// spaces and its digit, then two spaces and a closing "|".
func Render(g *Grid) string {
	var sb strings.Builder
	for y := range g.rows {
		sb.WriteString(rowBorder)
		for x := range g.columns {
			sb.WriteString(cellSeparator)
			sb.WriteString(g.cells[y][x].String())
		}
		sb.WriteString(cellSeparator)
		sb.WriteString(rowBorder)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseGrid reads a grid back from text. It accepts Render output as well as
// plain rows of '0'/'1' (or '.'/'#') characters; blank lines are ignored.
func ParseGrid(text string) (*Grid, error) {
	var rows [][]Cell
	scanner := bufio.NewScanner(strings.NewReader(text))
	for line := 1; scanner.Scan(); line++ {
		s := strings.TrimSpace(scanner.Text())
		if s == "" {
			continue
		}
		s = strings.TrimSuffix(strings.TrimPrefix(s, rowBorder), rowBorder)

		var row []Cell
		for _, r := range s {
			switch r {
			case '0', '.':
				row = append(row, Dead)
			case '1', '#':
				row = append(row, Alive)
			case ' ', '\t':
			default:
				return nil, errors.Wrapf(ErrMalformedGrid, "[ParseGrid] unexpected %q on line %d", r, line)
			}
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "[ParseGrid] failed to scan input")
	}

	g, err := NewGridFromRows(rows)
	if err != nil {
		return nil, errors.Wrap(err, "[ParseGrid]")
	}
	return g, nil
}

// RenderStyle selects how TerminalRenderer draws cells
type RenderStyle string

const (
	// StyleDigits draws the Render layout
	StyleDigits RenderStyle = "digits"
	// StyleBlocks draws live cells as solid blocks
	StyleBlocks RenderStyle = "blocks"
)

// TerminalRenderer writes frames to an output stream
type TerminalRenderer struct {
	out   io.Writer
	style RenderStyle
	term  *termenv.Output // nil unless out is an interactive terminal
}

// NewTerminalRenderer creates a renderer writing to out. When tty is true the
// renderer may clear the screen and colour live cells.
func NewTerminalRenderer(out io.Writer, style RenderStyle, tty bool) *TerminalRenderer {
	r := &TerminalRenderer{out: out, style: style}
	if tty {
		r.term = termenv.NewOutput(out)
	}
	return r
}

// Display renders the grid to the output
func (r *TerminalRenderer) Display(g *Grid) error {
	var frame string
	switch r.style {
	case StyleBlocks:
		frame = r.blocks(g)
	default:
		frame = Render(g)
	}
	if _, err := io.WriteString(r.out, frame); err != nil {
		return errors.Wrap(err, "[Display] failed to write frame")
	}
	return nil
}

func (r *TerminalRenderer) blocks(g *Grid) string {
	block := gridPosBlock
	if r.term != nil {
		block = r.term.String(gridPosBlock).Foreground(r.term.Color(aliveColor)).String()
	}

	var sb strings.Builder
	for y := range g.rows {
		for x := range g.columns {
			if g.cells[y][x] == Alive {
				sb.WriteString(block)
			} else {
				sb.WriteString(gridPosEmpty)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Clear clears the terminal screen. It is a no-op when the output is not a terminal.
func (r *TerminalRenderer) Clear() {
	if r.term == nil {
		return
	}
	r.term.ClearScreen()
}

// Printf writes a status line to the renderer's output
func (r *TerminalRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}
