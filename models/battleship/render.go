package battleship

type RenderMode uint8

const (
	RenderReveal RenderMode = iota

	// Ships still afloat are drawn as water
	RenderFogOfWar
)

const (
	GlyphEmpty = '~'
	GlyphShip  = 'O'
	GlyphHit   = 'X'
	GlyphMiss  = 'M'
)

func (s CellState) Glyph(mode RenderMode) rune {
	switch s {
	case CellShipPresent:
		if mode == RenderFogOfWar {
			return GlyphEmpty
		}
		return GlyphShip
	case CellHit:
		return GlyphHit
	case CellMiss:
		return GlyphMiss
	default:
		return GlyphEmpty
	}
}

// Render projects the grid into display glyphs, indexed y -> x.
func (g *Grid) Render(mode RenderMode) [GridSize][GridSize]rune {
	var view [GridSize][GridSize]rune
	for y := range g.cells {
		for x, state := range g.cells[y] {
			view[y][x] = state.Glyph(mode)
		}
	}
	return view
}
