package battleship

import (
	"fmt"

	cerr "github.com/saeidalz13/battleship-hotseat/internal/error"
)

const GridSize int = 10

type CellState uint8

const (
	CellEmpty CellState = iota
	CellShipPresent
	CellHit
	CellMiss
)

type ShotOutcome uint8

const (
	ShotMiss ShotOutcome = iota
	ShotHit
	ShotSunk

	// The last afloat ship of the grid went down
	ShotAllSunk
)

func (o ShotOutcome) String() string {
	switch o {
	case ShotMiss:
		return "miss"
	case ShotHit:
		return "hit"
	case ShotSunk:
		return "sunk"
	case ShotAllSunk:
		return "all sunk"
	default:
		return fmt.Sprintf("ShotOutcome(%d)", uint8(o))
	}
}

type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewCoordinates(x, y int) Coordinates {
	return Coordinates{X: x, Y: y}
}

func (c Coordinates) Plus(other Coordinates) Coordinates {
	return Coordinates{X: c.X + other.X, Y: c.Y + other.Y}
}

func (c Coordinates) IsWithinGrid() bool {
	return c.X >= 0 && c.X < GridSize && c.Y >= 0 && c.Y < GridSize
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

var (
	top    = NewCoordinates(0, -1)
	bottom = NewCoordinates(0, 1)
	left   = NewCoordinates(-1, 0)
	right  = NewCoordinates(1, 0)
)

// Grid is one player's board. The cell matrix is the source of truth;
// placements is an append-only index used to answer ownership and
// sunk queries.
type Grid struct {
	cells      [GridSize][GridSize]CellState // y -> x
	placements []ShipPlacement
}

func NewGrid() *Grid {
	return &Grid{
		placements: make([]ShipPlacement, 0, len(shipCatalog)),
	}
}

func (g *Grid) cell(c Coordinates) CellState {
	return g.cells[c.Y][c.X]
}

func (g *Grid) setCell(c Coordinates, state CellState) {
	g.cells[c.Y][c.X] = state
}

func (g *Grid) Cell(c Coordinates) (CellState, error) {
	if !c.IsWithinGrid() {
		return CellEmpty, cerr.ErrXorYOutOfGridBound(c.X, c.Y)
	}
	return g.cell(c), nil
}

// Placements returns a copy of the accepted placements in placement order.
func (g *Grid) Placements() []ShipPlacement {
	placements := make([]ShipPlacement, len(g.placements))
	copy(placements, g.placements)
	return placements
}

// Place validates the whole segment before touching the matrix, so a
// rejected placement leaves the grid as it was.
func (g *Grid) Place(kind ShipKind, a, b Coordinates) error {
	placement, err := g.validatePlacement(kind, a, b)
	if err != nil {
		return err
	}

	for _, c := range placement.Coordinates() {
		g.setCell(c, CellShipPresent)
	}
	g.placements = append(g.placements, placement)
	return nil
}

func (g *Grid) validatePlacement(kind ShipKind, a, b Coordinates) (ShipPlacement, error) {
	if !a.IsWithinGrid() {
		return ShipPlacement{}, cerr.ErrXorYOutOfGridBound(a.X, a.Y)
	}
	if !b.IsWithinGrid() {
		return ShipPlacement{}, cerr.ErrXorYOutOfGridBound(b.X, b.Y)
	}

	// exactly one axis may vary
	if (a.X == b.X) == (a.Y == b.Y) {
		return ShipPlacement{}, cerr.ErrInvalidShipShape(a.X, a.Y, b.X, b.Y)
	}

	placement := NewShipPlacement(a, b)
	if placement.Length() != kind.Length() {
		return ShipPlacement{}, cerr.ErrWrongShipLength(kind.Name(), kind.Length(), placement.Length())
	}

	for _, c := range placement.Coordinates() {
		if !g.isFreeAround(c) {
			return ShipPlacement{}, cerr.ErrShipCollision(c.X, c.Y)
		}
	}
	return placement, nil
}

// isFreeAround reports whether c and its four orthogonal neighbours are
// empty. Diagonal neighbours are not checked and off-grid probes are skipped.
func (g *Grid) isFreeAround(c Coordinates) bool {
	for _, probe := range [...]Coordinates{c, c.Plus(top), c.Plus(bottom), c.Plus(left), c.Plus(right)} {
		if probe.IsWithinGrid() && g.cell(probe) != CellEmpty {
			return false
		}
	}
	return true
}

func (g *Grid) Shoot(target Coordinates) (ShotOutcome, error) {
	if !target.IsWithinGrid() {
		return ShotMiss, cerr.ErrXorYOutOfGridBound(target.X, target.Y)
	}

	switch g.cell(target) {
	case CellHit:
		return ShotHit, nil

	case CellShipPresent:
		g.setCell(target, CellHit)

		idx := g.findPlacement(target)
		if idx < 0 || !g.IsShipSunk(idx) {
			return ShotHit, nil
		}
		if g.IsAllSunk() {
			return ShotAllSunk, nil
		}
		return ShotSunk, nil

	default:
		// Re-marking an existing miss is harmless
		g.setCell(target, CellMiss)
		return ShotMiss, nil
	}
}

// findPlacement returns the index of the placement covering c, or -1.
// Bounding boxes never overlap since placements cannot touch.
func (g *Grid) findPlacement(c Coordinates) int {
	for i, placement := range g.placements {
		if placement.Contains(c) {
			return i
		}
	}
	return -1
}

func (g *Grid) IsShipSunk(idx int) bool {
	if idx < 0 || idx >= len(g.placements) {
		return false
	}
	for _, c := range g.placements[idx].Coordinates() {
		if g.cell(c) != CellHit {
			return false
		}
	}
	return true
}

func (g *Grid) SunkenShips() int {
	sunken := 0
	for i := range g.placements {
		if g.IsShipSunk(i) {
			sunken++
		}
	}
	return sunken
}

// IsAllSunk is false for a grid without ships.
func (g *Grid) IsAllSunk() bool {
	return len(g.placements) > 0 && g.SunkenShips() == len(g.placements)
}

func (g *Grid) IsFleetPlaced() bool {
	return len(g.placements) == len(shipCatalog)
}
