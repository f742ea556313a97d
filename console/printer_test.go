package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mb "github.com/saeidalz13/battleship-hotseat/models/battleship"
)

func TestPrintGrid(t *testing.T) {
	grid := mb.NewGrid()
	require.NoError(t, grid.Place(mb.ShipDestroyer, mb.NewCoordinates(0, 0), mb.NewCoordinates(1, 0)))
	_, err := grid.Shoot(mb.NewCoordinates(0, 0))
	require.NoError(t, err)
	_, err = grid.Shoot(mb.NewCoordinates(9, 9))
	require.NoError(t, err)

	tests := []struct {
		name     string
		mode     mb.RenderMode
		firstRow string
		lastRow  string
	}{
		{"reveal", mb.RenderReveal, "A X O ~ ~ ~ ~ ~ ~ ~ ~", "J ~ ~ ~ ~ ~ ~ ~ ~ ~ M"},
		{"fog of war", mb.RenderFogOfWar, "A X ~ ~ ~ ~ ~ ~ ~ ~ ~", "J ~ ~ ~ ~ ~ ~ ~ ~ ~ M"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, PrintGrid(&buf, grid, test.mode))

			lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
			require.Len(t, lines, mb.GridSize+1)
			assert.Equal(t, "  1 2 3 4 5 6 7 8 9 10", lines[0])
			assert.Equal(t, test.firstRow, lines[1])
			assert.Equal(t, test.lastRow, lines[mb.GridSize])
		})
	}
}
