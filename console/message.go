package console

import (
	"fmt"

	mb "github.com/saeidalz13/battleship-hotseat/models/battleship"
)

var templates = map[uint8]string{
	CodePlaceFleet:   "%s, place your ships on the game field\n\n",
	CodeEnterShip:    "\nEnter the coordinates of the %s (%d cells):\n\n",
	CodePassMove:     "\nPress Enter and pass the move to another player\n",
	CodeYourTurn:     "\n%s, it's your turn:\n\n",
	CodeSeparator:    "---------------------\n",
	CodeMiss:         "\nYou missed!\n",
	CodeHit:          "\nYou hit a ship!\n",
	CodeSunk:         "\nYou sank a ship!\n",
	CodeWon:          "\nYou sank the last ship. %s won. Congratulations!\n",
	CodeRematchCall:  "\nPlay again? (y/n)\n",
	CodeRematch:      "\nNew game %s\n\n",
	CodeInvalidInput: "\nError! %s Try again:\n\n",
}

type Message struct {
	Code uint8
	Args []any
}

func NewMessage(code uint8, args ...any) Message {
	return Message{Code: code, Args: args}
}

func NewErrMessage(err error) Message {
	return NewMessage(CodeInvalidInput, err.Error())
}

func (m Message) String() string {
	tmpl, prs := templates[m.Code]
	if !prs {
		return fmt.Sprintf("unknown message code: %d\n", m.Code)
	}
	return fmt.Sprintf(tmpl, m.Args...)
}

// outcomeCode maps a shot outcome onto the message the attacker sees.
func outcomeCode(outcome mb.ShotOutcome) uint8 {
	switch outcome {
	case mb.ShotHit:
		return CodeHit
	case mb.ShotSunk:
		return CodeSunk
	case mb.ShotAllSunk:
		return CodeWon
	default:
		return CodeMiss
	}
}
