package tabular

// Row is one ordered row of typed cells.
type Row []Cell

// IsEmpty reports whether every cell in the row is null.
func (r Row) IsEmpty() bool {
	for _, c := range r {
		if !c.IsNull() {
			return false
		}
	}
	return true
}

// Sheet is a raw tabular block read from one source, with no header
// assumption. Rows keep their sheet-internal order.
type Sheet struct {
	// Name identifies the sheet within its source (tab name or file name).
	Name string

	// Rows holds every row of the block, including any preamble rows
	// above the real header.
	Rows []Row
}

// Width returns the widest row length in the sheet.
func (s *Sheet) Width() int {
	width := 0
	for _, row := range s.Rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// Cell returns the cell at the given row and column, or a null cell when
// the coordinates fall outside the sheet.
func (s *Sheet) Cell(row, col int) Cell {
	if row < 0 || row >= len(s.Rows) {
		return Null()
	}
	r := s.Rows[row]
	if col < 0 || col >= len(r) {
		return Null()
	}
	return r[col]
}
