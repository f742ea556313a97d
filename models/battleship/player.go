package battleship

import (
	"github.com/google/uuid"
)

const (
	PlayerMatchStatusLost      = -1
	PlayerMatchStatusUndefined = 0
	PlayerMatchStatusWon       = 1
)

type Player struct {
	uuid        string
	name        string
	matchStatus int
	grid        *Grid
}

func NewPlayer(name string) *Player {
	return &Player{
		uuid:        uuid.NewString()[:10],
		name:        name,
		matchStatus: PlayerMatchStatusUndefined,
		grid:        NewGrid(),
	}
}

func (p *Player) Uuid() string {
	return p.uuid
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) Grid() *Grid {
	return p.grid
}

func (p *Player) MatchStatus() int {
	return p.matchStatus
}

func (p *Player) SetMatchStatus(status int) {
	p.matchStatus = status
}

func (p *Player) PlaceShip(kind ShipKind, a, b Coordinates) error {
	return p.grid.Place(kind, a, b)
}

func (p *Player) IsReady() bool {
	return p.grid.IsFleetPlaced()
}

func (p *Player) SunkenShips() int {
	return p.grid.SunkenShips()
}

func (p *Player) IsLoser() bool {
	return p.grid.IsAllSunk()
}
