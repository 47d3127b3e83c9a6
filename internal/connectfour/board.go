package connectfour

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

type Marker string

const (
	Empty  Marker = ""
	Red    Marker = "Red"
	Yellow Marker = "Yellow"
)

// Valid - reports whether the marker is one of the two player markers.
func (that Marker) Valid() bool {
	return that == Red || that == Yellow
}

// Opponent - returns the other player's marker.
func (that Marker) Opponent() Marker {
	switch that {
	case Red:
		return Yellow
	case Yellow:
		return Red
	default:
		return Empty
	}
}

// Board - grid of markers, row 0 is the top row.
type Board [Rows][Columns]Marker

type Cell struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// directions are right, down, down-right and up-right.
var directions = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{-1, 1},
}

func inBounds(row, column int) bool {
	return row >= 0 && row < Rows && column >= 0 && column < Columns
}

// lowestEmptyRow - returns the row a disc dropped into the column lands on, or -1 when the column is full.
func (that *Board) lowestEmptyRow(column int) int {
	for row := Rows - 1; row >= 0; row-- {
		if that[row][column] == Empty {
			return row
		}
	}

	return -1
}

func (that *Board) columnFull(column int) bool {
	return that[0][column] != Empty
}

// Full - reports whether every column is full.
func (that *Board) Full() bool {
	for column := 0; column < Columns; column++ {
		if !that.columnFull(column) {
			return false
		}
	}

	return true
}

// Discs - counts the occupied cells.
func (that *Board) Discs() int {
	count := 0
	for row := range that {
		for _, marker := range that[row] {
			if marker != Empty {
				count++
			}
		}
	}

	return count
}

// FindWin - scans the whole board for four in a row and returns the owner and the line.
// Only the last placed disc can complete a line, so the first match is the only winner.
func (that *Board) FindWin() (Marker, []Cell) {
	for row := 0; row < Rows; row++ {
		for column := 0; column < Columns; column++ {
			marker := that[row][column]
			if marker == Empty {
				continue
			}

			for _, dir := range directions {
				if line, ok := that.lineFrom(row, column, dir[0], dir[1], marker); ok {
					return marker, line
				}
			}
		}
	}

	return Empty, nil
}

func (that *Board) lineFrom(row, column, deltaRow, deltaCol int, marker Marker) ([]Cell, bool) {
	line := make([]Cell, 0, ToWin)
	for i := 0; i < ToWin; i++ {
		r, c := row+i*deltaRow, column+i*deltaCol
		if !inBounds(r, c) || that[r][c] != marker {
			return nil, false
		}
		line = append(line, Cell{Row: r, Column: c})
	}

	return line, true
}

// floating - reports whether any disc sits above an empty cell.
func (that *Board) floating() bool {
	for column := 0; column < Columns; column++ {
		seenEmpty := false
		for row := Rows - 1; row >= 0; row-- {
			switch {
			case that[row][column] == Empty:
				seenEmpty = true
			case seenEmpty:
				return true
			}
		}
	}

	return false
}
