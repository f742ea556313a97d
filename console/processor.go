package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	cerr "github.com/saeidalz13/battleship-hotseat/internal/error"
	mb "github.com/saeidalz13/battleship-hotseat/models/battleship"
)

// Processor drives a hot-seat game over a text stream: both players share
// the same reader and writer and hand the terminal over between turns.
type Processor struct {
	gameManager mb.GameManager
	logger      zerolog.Logger

	in  *bufio.Reader
	out io.Writer

	// tokens left over from the last line read
	pending []string

	// first write error, reported on the next read
	writeErr error

	nameOne string
	nameTwo string
}

type Option func(*Processor)

func WithLogger(logger zerolog.Logger) Option {
	return func(p *Processor) {
		p.logger = logger
	}
}

func WithPlayerNames(nameOne, nameTwo string) Option {
	return func(p *Processor) {
		p.nameOne = nameOne
		p.nameTwo = nameTwo
	}
}

func NewProcessor(gameManager mb.GameManager, in io.Reader, out io.Writer, opts ...Option) *Processor {
	p := &Processor{
		gameManager: gameManager,
		logger:      zerolog.Nop(),
		in:          bufio.NewReader(in),
		out:         out,
		nameOne:     "Player 1",
		nameTwo:     "Player 2",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run plays games until the players decline a rematch. It returns
// ErrInputClosed if the input ends in the middle of a game.
func (p *Processor) Run() error {
	game := p.gameManager.CreateGame(p.nameOne, p.nameTwo)

	for {
		p.logger.Info().Str("game", game.Uuid()).Msg("game created")

		if err := p.playGame(game); err != nil {
			p.gameManager.TerminateGame(game.Uuid())
			return err
		}

		winner := game.Winner()
		p.logger.Info().
			Str("game", game.Uuid()).
			Str("winner", winner.Name()).
			Int("sunken_ships", game.OtherPlayer().SunkenShips()).
			Msg("game over")

		rematch, err := p.askRematch()
		p.gameManager.TerminateGame(game.Uuid())
		if err != nil || !rematch {
			return err
		}

		game = p.gameManager.CreateGame(p.nameOne, p.nameTwo)
		p.send(NewMessage(CodeRematch, game.Uuid()))
	}
}

func (p *Processor) playGame(game *mb.Game) error {
	for _, player := range game.GetPlayers() {
		if err := p.placeFleet(game, player); err != nil {
			return err
		}
		if err := p.passMove(); err != nil {
			return err
		}
	}

	for {
		if err := p.takeTurn(game); err != nil {
			return err
		}
		if game.IsFinished() {
			return nil
		}
		if err := p.passMove(); err != nil {
			return err
		}
	}
}

func (p *Processor) placeFleet(game *mb.Game, player *mb.Player) error {
	p.send(NewMessage(CodePlaceFleet, player.Name()))
	p.printGrid(player.Grid(), mb.RenderReveal)

	for _, kind := range mb.ShipKinds() {
		p.send(NewMessage(CodeEnterShip, kind.Name(), kind.Length()))

		for {
			err := p.placeShip(player, kind)
			if err == nil {
				break
			}
			if !isRecoverable(err) {
				return err
			}
			p.logger.Debug().Err(err).Str("game", game.Uuid()).Str("player", player.Uuid()).Msg("placement rejected")
			p.send(NewErrMessage(err))
		}

		p.logger.Debug().Str("game", game.Uuid()).Str("player", player.Uuid()).Str("ship", kind.Name()).Msg("ship placed")
		p.printGrid(player.Grid(), mb.RenderReveal)
	}
	return nil
}

func (p *Processor) placeShip(player *mb.Player, kind mb.ShipKind) error {
	firstText, err := p.nextToken()
	if err != nil {
		return err
	}
	secondText, err := p.nextToken()
	if err != nil {
		return err
	}

	first, err := ParseCoordinates(firstText)
	if err != nil {
		return err
	}
	second, err := ParseCoordinates(secondText)
	if err != nil {
		return err
	}
	return player.PlaceShip(kind, first, second)
}

func (p *Processor) takeTurn(game *mb.Game) error {
	attacker, defender := game.CurrentPlayer(), game.OtherPlayer()

	p.printGrid(defender.Grid(), mb.RenderFogOfWar)
	p.send(NewMessage(CodeSeparator))
	p.printGrid(attacker.Grid(), mb.RenderReveal)
	p.send(NewMessage(CodeYourTurn, attacker.Name()))

	for {
		text, err := p.nextToken()
		if err != nil {
			return err
		}

		target, err := ParseCoordinates(text)
		if err == nil {
			var outcome mb.ShotOutcome
			outcome, err = game.Attack(target)
			if err == nil {
				p.logger.Debug().
					Str("game", game.Uuid()).
					Str("attacker", attacker.Uuid()).
					Str("target", FormatCoordinates(target)).
					Stringer("outcome", outcome).
					Msg("shot resolved")
				p.send(p.outcomeMessage(outcome, attacker))
				return nil
			}
		}

		if !isRecoverable(err) {
			return err
		}
		p.logger.Debug().Err(err).Str("game", game.Uuid()).Str("player", attacker.Uuid()).Msg("shot rejected")
		p.send(NewErrMessage(err))
	}
}

func (p *Processor) outcomeMessage(outcome mb.ShotOutcome, attacker *mb.Player) Message {
	code := outcomeCode(outcome)
	if code == CodeWon {
		return NewMessage(code, attacker.Name())
	}
	return NewMessage(code)
}

func (p *Processor) askRematch() (bool, error) {
	p.send(NewMessage(CodeRematchCall))

	answer, err := p.nextToken()
	if errors.Is(err, cerr.ErrInputClosed) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}

// passMove waits for a whole line so the next player starts from a clean
// screen; anything typed ahead is dropped.
func (p *Processor) passMove() error {
	p.send(NewMessage(CodePassMove))
	p.pending = nil

	_, err := p.readLine()
	return err
}

func (p *Processor) nextToken() (string, error) {
	for len(p.pending) == 0 {
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		p.pending = strings.Fields(line)
	}

	token := p.pending[0]
	p.pending = p.pending[1:]
	return token, nil
}

func (p *Processor) readLine() (string, error) {
	if p.writeErr != nil {
		return "", p.writeErr
	}

	line, err := p.in.ReadString('\n')
	if err == io.EOF && line != "" {
		return line, nil
	}
	if err == io.EOF {
		return "", cerr.ErrInputClosed
	}
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return line, nil
}

func (p *Processor) send(msg Message) {
	if p.writeErr != nil {
		return
	}
	if _, err := io.WriteString(p.out, msg.String()); err != nil {
		p.writeErr = fmt.Errorf("failed to write output: %w", err)
	}
}

func (p *Processor) printGrid(grid *mb.Grid, mode mb.RenderMode) {
	if p.writeErr != nil {
		return
	}
	if err := PrintGrid(p.out, grid, mode); err != nil {
		p.writeErr = fmt.Errorf("failed to write output: %w", err)
	}
}

// isRecoverable reports whether the player should simply be asked again.
func isRecoverable(err error) bool {
	for _, target := range []error{
		cerr.ErrInvalidShape,
		cerr.ErrWrongLength,
		cerr.ErrCollision,
		cerr.ErrOutOfBounds,
		cerr.ErrInvalidCoordinateLength,
		cerr.ErrInvalidColumn,
		cerr.ErrInvalidRow,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
