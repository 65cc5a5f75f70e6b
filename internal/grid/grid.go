// Package grid holds the static topology of the 9x9 board: cells, units,
// peers, and the row/column/box membership maps. Everything here is computed
// once at init and never mutated afterwards; all other packages share it
// read-only.
package grid

const (
	// Size is the side length of the board.
	Size = 9
	// Cells is the total number of cells.
	Cells = 81
	// UnitCount is rows + columns + boxes.
	UnitCount = 27
	// PeerCount is the number of distinct cells sharing a unit with any cell.
	PeerCount = 20
)

var (
	// Units lists the 27 units in row, column, box order. Each unit holds
	// 9 cell indices.
	Units [UnitCount][Size]int

	// CellUnits gives, for each cell, the indices into Units of its row,
	// column, and box unit.
	CellUnits [Cells][3]int

	// Peers gives, for each cell, its 20 peers in ascending cell order.
	Peers [Cells][PeerCount]int

	// RowCells, ColCells, and BoxCells map a row/column/box index to its
	// 9 member cells. The pointing-pairs strategy depends on these direct
	// maps rather than re-deriving membership from Units.
	RowCells [Size][Size]int
	ColCells [Size][Size]int
	BoxCells [Size][Size]int

	names [Cells]string
)

// RowOf returns the row index of a cell.
func RowOf(cell int) int { return cell / Size }

// ColOf returns the column index of a cell.
func ColOf(cell int) int { return cell % Size }

// BoxOf returns the box index of a cell, numbered row-major 0..8.
func BoxOf(cell int) int { return (cell/Size/3)*3 + (cell%Size)/3 }

// At returns the cell index for a row and column.
func At(row, col int) int { return row*Size + col }

// Name returns the conventional label of a cell: row letter A-I followed by
// column digit 1-9 ("A1" .. "I9").
func Name(cell int) string { return names[cell] }

func init() {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			cell := At(r, c)
			names[cell] = string(rune('A'+r)) + string(rune('1'+c))
			RowCells[r][c] = cell
		}
	}
	for c := 0; c < Size; c++ {
		for r := 0; r < Size; r++ {
			ColCells[c][r] = At(r, c)
		}
	}
	for b := 0; b < Size; b++ {
		br, bc := (b/3)*3, (b%3)*3
		i := 0
		for dr := 0; dr < 3; dr++ {
			for dc := 0; dc < 3; dc++ {
				BoxCells[b][i] = At(br+dr, bc+dc)
				i++
			}
		}
	}

	// Units: rows 0-8, columns 9-17, boxes 18-26.
	for i := 0; i < Size; i++ {
		Units[i] = RowCells[i]
		Units[Size+i] = ColCells[i]
		Units[2*Size+i] = BoxCells[i]
	}

	for cell := 0; cell < Cells; cell++ {
		CellUnits[cell] = [3]int{
			RowOf(cell),
			Size + ColOf(cell),
			2*Size + BoxOf(cell),
		}

		seen := [Cells]bool{}
		for _, u := range CellUnits[cell] {
			for _, other := range Units[u] {
				if other != cell {
					seen[other] = true
				}
			}
		}
		i := 0
		for other := 0; other < Cells; other++ {
			if seen[other] {
				Peers[cell][i] = other
				i++
			}
		}
	}
}
