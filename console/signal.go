package console

const (
	CodePlaceFleet uint8 = iota
	CodeEnterShip
	CodePassMove
	CodeYourTurn
	CodeSeparator

	// Shot results as seen by the attacker
	CodeMiss
	CodeHit
	CodeSunk
	CodeWon

	// Ask both players if they want another game
	CodeRematchCall
	CodeRematch

	// if the input could not be parsed or was rejected by the grid
	CodeInvalidInput
)
