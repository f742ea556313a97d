package error

import (
	"errors"
	"fmt"
)

var (
	// Placement and shot errors. Callers re-prompt on any of these.
	ErrInvalidShape = errors.New("wrong ship coordinates")
	ErrWrongLength  = errors.New("wrong length of the ship")
	ErrCollision    = errors.New("wrong ship location")
	ErrOutOfBounds  = errors.New("coordinates out of grid bound")

	ErrGameNotExists = errors.New("game does not exist")
	ErrGameFinished  = errors.New("game is already finished")
	ErrGameNotReady  = errors.New("fleets are not placed yet")

	// Console input errors
	ErrInvalidCoordinateLength = errors.New("invalid coordinate length")
	ErrInvalidColumn           = errors.New("column value invalid")
	ErrInvalidRow              = errors.New("row value invalid")
	ErrInputClosed             = errors.New("input closed")
)

func ErrInvalidShipShape(x1, y1, x2, y2 int) error {
	return fmt.Errorf("%w: (%d, %d) and (%d, %d) are not on a single row or column", ErrInvalidShape, x1, y1, x2, y2)
}

func ErrWrongShipLength(shipName string, expected, got int) error {
	return fmt.Errorf("%w %s: expected %d cells, got %d", ErrWrongLength, shipName, expected, got)
}

func ErrShipCollision(x, y int) error {
	return fmt.Errorf("%w: cell or neighbour of (%d, %d) is taken", ErrCollision, x, y)
}

func ErrXorYOutOfGridBound(x, y int) error {
	return fmt.Errorf("%w\tx: %d\ty: %d", ErrOutOfBounds, x, y)
}

func ErrGameUuidNotExists(gameUuid string) error {
	return fmt.Errorf("%w, uuid: %s", ErrGameNotExists, gameUuid)
}

func ErrAttackFinishedGame(gameUuid string) error {
	return fmt.Errorf("%w, uuid: %s", ErrGameFinished, gameUuid)
}

func ErrAttackBeforeReady(gameUuid string) error {
	return fmt.Errorf("%w, uuid: %s", ErrGameNotReady, gameUuid)
}

func ErrCoordinateLength(text string) error {
	return fmt.Errorf("%w: %s", ErrInvalidCoordinateLength, text)
}

func ErrCoordinateColumn(text string) error {
	return fmt.Errorf("%w: %s", ErrInvalidColumn, text)
}

func ErrCoordinateRow(text string) error {
	return fmt.Errorf("%w: %s", ErrInvalidRow, text)
}
