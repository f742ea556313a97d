package battleship

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	g := NewGrid()
	require.NoError(t, g.Place(ShipDestroyer, NewCoordinates(0, 0), NewCoordinates(1, 0)))
	_, err := g.Shoot(NewCoordinates(0, 0))
	require.NoError(t, err)
	_, err = g.Shoot(NewCoordinates(5, 5))
	require.NoError(t, err)

	tests := []struct {
		name      string
		mode      RenderMode
		shipGlyph rune
	}{
		{"reveal", RenderReveal, GlyphShip},
		{"fog of war", RenderFogOfWar, GlyphEmpty},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			view := g.Render(test.mode)

			assert.Equal(t, GlyphHit, view[0][0])
			assert.Equal(t, test.shipGlyph, view[0][1])
			assert.Equal(t, GlyphMiss, view[5][5])
			assert.Equal(t, GlyphEmpty, view[9][9])
		})
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	g := NewGrid()
	require.NoError(t, g.Place(ShipSubmarine, NewCoordinates(3, 3), NewCoordinates(3, 5)))

	first := g.Render(RenderFogOfWar)
	assert.Equal(t, first, g.Render(RenderFogOfWar))
	assert.Equal(t, []ShipPlacement{NewShipPlacement(NewCoordinates(3, 3), NewCoordinates(3, 5))}, g.Placements())
}
