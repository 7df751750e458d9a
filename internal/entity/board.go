package entity

const (
	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""

	BoardSize = 9
)

// Board holds the cells of a 3x3 grid in row-major order.
type Board [BoardSize]string

// SetField writes mark into the cell at index. Indices outside the board are ignored.
func (that *Board) SetField(index int, mark string) {
	if !that.InRange(index) {
		return
	}

	that[index] = mark
}

// GetField returns the mark at index, or EmptyCell when index is outside the board.
func (that *Board) GetField(index int) string {
	if !that.InRange(index) {
		return EmptyCell
	}

	return that[index]
}

func (that *Board) Reset() {
	for i := range that {
		that[i] = EmptyCell
	}
}

func (that *Board) InRange(index int) bool {
	return index >= 0 && index < len(that)
}

func (that *Board) IsEmpty(index int) bool {
	return that.GetField(index) == EmptyCell
}

// Filled returns the number of non-empty cells.
func (that *Board) Filled() int {
	filled := 0
	for _, cell := range that {
		if cell != EmptyCell {
			filled++
		}
	}

	return filled
}
