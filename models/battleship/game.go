package battleship

import (
	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-hotseat/internal/error"
)

type Game struct {
	uuid       string
	isFinished bool
	players    [2]*Player

	// index into players of whoever fires next
	turn int
}

func newGame(gameUuid, nameOne, nameTwo string) *Game {
	return &Game{
		uuid:    gameUuid,
		players: [2]*Player{NewPlayer(nameOne), NewPlayer(nameTwo)},
	}
}

func NewGame(nameOne, nameTwo string) *Game {
	return newGame(uuid.NewString()[:6], nameOne, nameTwo)
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) IsFinished() bool {
	return g.isFinished
}

func (g *Game) FinishGame() {
	g.isFinished = true
}

// returns the players in the order they take turns.
func (g *Game) GetPlayers() []*Player {
	return []*Player{g.players[0], g.players[1]}
}

func (g *Game) CurrentPlayer() *Player {
	return g.players[g.turn]
}

func (g *Game) OtherPlayer() *Player {
	return g.players[1-g.turn]
}

func (g *Game) PassTurn() {
	g.turn = 1 - g.turn
}

func (g *Game) IsReadyToStart() bool {
	return g.players[0].IsReady() && g.players[1].IsReady()
}

// Winner is nil until the game is finished.
func (g *Game) Winner() *Player {
	for _, p := range g.players {
		if p.MatchStatus() == PlayerMatchStatusWon {
			return p
		}
	}
	return nil
}

// Attack fires the current player's shot at the opponent's grid. The turn
// passes after every resolved shot unless it ended the game; a rejected
// shot keeps the turn with the attacker.
func (g *Game) Attack(target Coordinates) (ShotOutcome, error) {
	if g.isFinished {
		return ShotMiss, cerr.ErrAttackFinishedGame(g.uuid)
	}
	if !g.IsReadyToStart() {
		return ShotMiss, cerr.ErrAttackBeforeReady(g.uuid)
	}

	attacker, defender := g.CurrentPlayer(), g.OtherPlayer()
	outcome, err := defender.Grid().Shoot(target)
	if err != nil {
		return outcome, err
	}

	if outcome == ShotAllSunk {
		attacker.SetMatchStatus(PlayerMatchStatusWon)
		defender.SetMatchStatus(PlayerMatchStatusLost)
		g.FinishGame()
		return outcome, nil
	}

	g.PassTurn()
	return outcome, nil
}
