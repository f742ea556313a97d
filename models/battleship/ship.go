package battleship

type ShipKind uint8

const (
	ShipAircraftCarrier ShipKind = iota
	ShipBattleship
	ShipSubmarine
	ShipCruiser
	ShipDestroyer
)

type shipSpec struct {
	name   string
	length int
}

var shipCatalog = [...]shipSpec{
	ShipAircraftCarrier: {name: "Aircraft Carrier", length: 5},
	ShipBattleship:      {name: "Battleship", length: 4},
	ShipSubmarine:       {name: "Submarine", length: 3},
	ShipCruiser:         {name: "Cruiser", length: 3},
	ShipDestroyer:       {name: "Destroyer", length: 2},
}

// ShipKinds returns the fleet in the order players are asked to place it.
func ShipKinds() []ShipKind {
	kinds := make([]ShipKind, 0, len(shipCatalog))
	for i := range shipCatalog {
		kinds = append(kinds, ShipKind(i))
	}
	return kinds
}

func (k ShipKind) Name() string {
	return shipCatalog[k].name
}

func (k ShipKind) Length() int {
	return shipCatalog[k].length
}

func (k ShipKind) String() string {
	return k.Name()
}

// ShipPlacement is a straight segment between two inclusive endpoints.
// First always precedes Second in reading order.
type ShipPlacement struct {
	First  Coordinates
	Second Coordinates
}

func NewShipPlacement(a, b Coordinates) ShipPlacement {
	if a.X == b.X {
		if a.Y > b.Y {
			a, b = b, a
		}
	} else if a.X > b.X {
		a, b = b, a
	}
	return ShipPlacement{First: a, Second: b}
}

func (sp ShipPlacement) IsVertical() bool {
	return sp.First.X == sp.Second.X && sp.First.Y != sp.Second.Y
}

func (sp ShipPlacement) IsHorizontal() bool {
	return sp.First.Y == sp.Second.Y && sp.First.X != sp.Second.X
}

func (sp ShipPlacement) Length() int {
	if sp.First.X == sp.Second.X {
		return sp.Second.Y - sp.First.Y + 1
	}
	return sp.Second.X - sp.First.X + 1
}

// Coordinates lists every cell the placement occupies, in reading order.
func (sp ShipPlacement) Coordinates() []Coordinates {
	coords := make([]Coordinates, 0, sp.Length())
	if sp.First.X == sp.Second.X {
		for y := sp.First.Y; y <= sp.Second.Y; y++ {
			coords = append(coords, NewCoordinates(sp.First.X, y))
		}
		return coords
	}

	for x := sp.First.X; x <= sp.Second.X; x++ {
		coords = append(coords, NewCoordinates(x, sp.First.Y))
	}
	return coords
}

func (sp ShipPlacement) Contains(c Coordinates) bool {
	return sp.First.X <= c.X && c.X <= sp.Second.X &&
		sp.First.Y <= c.Y && c.Y <= sp.Second.Y
}
