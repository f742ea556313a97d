package console

import (
	"bufio"
	"fmt"
	"io"

	mb "github.com/saeidalz13/battleship-hotseat/models/battleship"
)

// PrintGrid writes the grid with a 1-based column header and lettered rows.
func PrintGrid(w io.Writer, grid *mb.Grid, mode mb.RenderMode) error {
	bw := bufio.NewWriter(w)

	bw.WriteString(" ")
	for i := 1; i <= mb.GridSize; i++ {
		fmt.Fprintf(bw, " %d", i)
	}
	bw.WriteString("\n")

	for y, row := range grid.Render(mode) {
		bw.WriteByte(byte(RowFirstIndicator + y))
		for _, glyph := range row {
			fmt.Fprintf(bw, " %c", glyph)
		}
		bw.WriteString("\n")
	}

	return bw.Flush()
}
