package grid

import "testing"

func TestUnitStructure(t *testing.T) {
	// Every unit holds 9 distinct cells and every digit slot is in range.
	for u := 0; u < UnitCount; u++ {
		seen := map[int]bool{}
		for _, cell := range Units[u] {
			if cell < 0 || cell >= Cells {
				t.Fatalf("unit %d: cell %d out of range", u, cell)
			}
			if seen[cell] {
				t.Fatalf("unit %d: duplicate cell %d", u, cell)
			}
			seen[cell] = true
		}
	}
}

func TestCellUnits(t *testing.T) {
	for cell := 0; cell < Cells; cell++ {
		row, col, box := CellUnits[cell][0], CellUnits[cell][1], CellUnits[cell][2]
		if row != RowOf(cell) {
			t.Fatalf("cell %d: row unit %d, want %d", cell, row, RowOf(cell))
		}
		if col != Size+ColOf(cell) {
			t.Fatalf("cell %d: col unit %d, want %d", cell, col, Size+ColOf(cell))
		}
		if box != 2*Size+BoxOf(cell) {
			t.Fatalf("cell %d: box unit %d, want %d", cell, box, 2*Size+BoxOf(cell))
		}
		for _, u := range CellUnits[cell] {
			found := false
			for _, member := range Units[u] {
				if member == cell {
					found = true
				}
			}
			if !found {
				t.Fatalf("cell %d not a member of its unit %d", cell, u)
			}
		}
	}
}

func TestPeers(t *testing.T) {
	for cell := 0; cell < Cells; cell++ {
		seen := map[int]bool{}
		for _, p := range Peers[cell] {
			if p == cell {
				t.Fatalf("cell %d lists itself as a peer", cell)
			}
			if seen[p] {
				t.Fatalf("cell %d: duplicate peer %d", cell, p)
			}
			seen[p] = true
			shared := RowOf(p) == RowOf(cell) || ColOf(p) == ColOf(cell) || BoxOf(p) == BoxOf(cell)
			if !shared {
				t.Fatalf("cell %d: peer %d shares no unit", cell, p)
			}
		}
		if len(seen) != PeerCount {
			t.Fatalf("cell %d: %d peers, want %d", cell, len(seen), PeerCount)
		}
	}
}

func TestLineMaps(t *testing.T) {
	for r := 0; r < Size; r++ {
		for i, cell := range RowCells[r] {
			if RowOf(cell) != r {
				t.Fatalf("RowCells[%d][%d] = %d is in row %d", r, i, cell, RowOf(cell))
			}
		}
	}
	for c := 0; c < Size; c++ {
		for i, cell := range ColCells[c] {
			if ColOf(cell) != c {
				t.Fatalf("ColCells[%d][%d] = %d is in col %d", c, i, cell, ColOf(cell))
			}
		}
	}
	for b := 0; b < Size; b++ {
		for i, cell := range BoxCells[b] {
			if BoxOf(cell) != b {
				t.Fatalf("BoxCells[%d][%d] = %d is in box %d", b, i, cell, BoxOf(cell))
			}
		}
	}
}

func TestNames(t *testing.T) {
	cases := []struct {
		cell int
		want string
	}{
		{0, "A1"},
		{8, "A9"},
		{40, "E5"},
		{72, "I1"},
		{80, "I9"},
	}
	for _, tc := range cases {
		if got := Name(tc.cell); got != tc.want {
			t.Errorf("Name(%d) = %q, want %q", tc.cell, got, tc.want)
		}
	}
}
