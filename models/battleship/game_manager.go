package battleship

import (
	"sync"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-hotseat/internal/error"
)

type GameManager interface {
	CreateGame(nameOne, nameTwo string) *Game
	GetGame(gameUuid string) (*Game, error)
	TerminateGame(gameUuid string)
	CountGames() int
}

// BattleshipGameManager keeps every game played in this run so a rematch
// starts from fresh grids while the finished game stays queryable.
type BattleshipGameManager struct {
	games map[string]*Game
	mu    sync.RWMutex
}

var _ GameManager = (*BattleshipGameManager)(nil)

func NewBattleshipGameManager() *BattleshipGameManager {
	return &BattleshipGameManager{
		games: make(map[string]*Game, 2),
	}
}

func (bgm *BattleshipGameManager) CreateGame(nameOne, nameTwo string) *Game {
	bgm.mu.Lock()
	defer bgm.mu.Unlock()

	gameUuid := uuid.NewString()[:6]
	for _, prs := bgm.games[gameUuid]; prs; _, prs = bgm.games[gameUuid] {
		gameUuid = uuid.NewString()[:6]
	}

	game := newGame(gameUuid, nameOne, nameTwo)
	bgm.games[gameUuid] = game
	return game
}

func (bgm *BattleshipGameManager) GetGame(gameUuid string) (*Game, error) {
	bgm.mu.RLock()
	game, prs := bgm.games[gameUuid]
	bgm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrGameUuidNotExists(gameUuid)
	}

	return game, nil
}

func (bgm *BattleshipGameManager) TerminateGame(gameUuid string) {
	bgm.mu.Lock()
	delete(bgm.games, gameUuid)
	bgm.mu.Unlock()
}

func (bgm *BattleshipGameManager) CountGames() int {
	bgm.mu.RLock()
	defer bgm.mu.RUnlock()
	return len(bgm.games)
}
