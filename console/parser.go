package console

import (
	"strconv"
	"strings"

	cerr "github.com/saeidalz13/battleship-hotseat/internal/error"
	mb "github.com/saeidalz13/battleship-hotseat/models/battleship"
)

const (
	RowFirstIndicator = 'A'
	RowLastIndicator  = RowFirstIndicator + mb.GridSize - 1
)

// ParseCoordinates turns text such as "B7" into grid coordinates. The
// letter picks the row and the number (1-based) picks the column.
func ParseCoordinates(text string) (mb.Coordinates, error) {
	text = strings.ToUpper(strings.TrimSpace(text))
	if len(text) < 2 || len(text) > 3 {
		return mb.Coordinates{}, cerr.ErrCoordinateLength(text)
	}

	// Atoi alone would accept a sign
	if text[1] < '0' || text[1] > '9' {
		return mb.Coordinates{}, cerr.ErrCoordinateColumn(text)
	}
	column, err := strconv.Atoi(text[1:])
	if err != nil || column < 1 || column > mb.GridSize {
		return mb.Coordinates{}, cerr.ErrCoordinateColumn(text)
	}

	row := int(text[0])
	if row < RowFirstIndicator || row > RowLastIndicator {
		return mb.Coordinates{}, cerr.ErrCoordinateRow(text)
	}

	return mb.NewCoordinates(column-1, row-RowFirstIndicator), nil
}

// FormatCoordinates is the inverse of ParseCoordinates.
func FormatCoordinates(c mb.Coordinates) string {
	return string(rune(RowFirstIndicator+c.Y)) + strconv.Itoa(c.X+1)
}
