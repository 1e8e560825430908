package blocks

// Grid operations. All methods are value receivers returning a new Grid; the
// receiver is never mutated. Invariants held after every operation:
// len(Cells) == Rows*Columns, Rows >= 1, Columns >= 1,
// HeaderRowCount <= 1, HeaderColumnCount <= 1.

func emptyTextCell() GridCell {
	return GridCell{Type: CellText}
}

// Normalized returns a grid with sane dimensions and exactly Rows*Columns
// cells, synthesizing empty text cells for any shortfall and truncating any
// excess.
func (g Grid) Normalized() Grid {
	if g.Rows < 1 {
		g.Rows = 1
	}
	if g.Columns < 1 {
		g.Columns = 1
	}
	if g.HeaderRowCount < 0 {
		g.HeaderRowCount = 0
	}
	if g.HeaderRowCount > 1 {
		g.HeaderRowCount = 1
	}
	if g.HeaderColumnCount < 0 {
		g.HeaderColumnCount = 0
	}
	if g.HeaderColumnCount > 1 {
		g.HeaderColumnCount = 1
	}

	want := g.Rows * g.Columns
	cells := make([]GridCell, 0, want)
	cells = append(cells, g.Cells...)
	for len(cells) < want {
		cells = append(cells, emptyTextCell())
	}
	g.Cells = cells[:want]
	return g
}

// InsertRow inserts an empty row before index at (0 inserts before the first
// row, Rows appends after the last). Existing cell data shifts down past the
// insertion point; nothing is overwritten. Inserting at row 0 while a header
// row exists turns the new row into the header position, so the previous
// header content shifts down with its row.
func (g Grid) InsertRow(at int) Grid {
	g = g.Normalized()
	if at < 0 {
		at = 0
	}
	if at > g.Rows {
		at = g.Rows
	}

	row := make([]GridCell, g.Columns)
	for i := range row {
		row[i] = emptyTextCell()
	}

	offset := at * g.Columns
	cells := make([]GridCell, 0, len(g.Cells)+g.Columns)
	cells = append(cells, g.Cells[:offset]...)
	cells = append(cells, row...)
	cells = append(cells, g.Cells[offset:]...)

	g.Cells = cells
	g.Rows++
	return g
}

// DeleteRow removes the row at index at. Deleting the only row is a no-op;
// deleting the header row clears the header row count.
func (g Grid) DeleteRow(at int) Grid {
	g = g.Normalized()
	if g.Rows <= 1 || at < 0 || at >= g.Rows {
		return g
	}

	offset := at * g.Columns
	cells := make([]GridCell, 0, len(g.Cells)-g.Columns)
	cells = append(cells, g.Cells[:offset]...)
	cells = append(cells, g.Cells[offset+g.Columns:]...)

	g.Cells = cells
	g.Rows--
	if g.HeaderRowCount > 0 && at == 0 {
		g.HeaderRowCount--
	}
	return g
}

// InsertColumn inserts an empty column before index at in every row.
func (g Grid) InsertColumn(at int) Grid {
	g = g.Normalized()
	if at < 0 {
		at = 0
	}
	if at > g.Columns {
		at = g.Columns
	}

	cells := make([]GridCell, 0, len(g.Cells)+g.Rows)
	for row := 0; row < g.Rows; row++ {
		start := row * g.Columns
		cells = append(cells, g.Cells[start:start+at]...)
		cells = append(cells, emptyTextCell())
		cells = append(cells, g.Cells[start+at:start+g.Columns]...)
	}

	g.Cells = cells
	g.Columns++
	return g
}

// DeleteColumn removes the column at index at from every row. Deleting the
// only column is a no-op; deleting the header column clears the header
// column count.
func (g Grid) DeleteColumn(at int) Grid {
	g = g.Normalized()
	if g.Columns <= 1 || at < 0 || at >= g.Columns {
		return g
	}

	cells := make([]GridCell, 0, len(g.Cells)-g.Rows)
	for row := 0; row < g.Rows; row++ {
		start := row * g.Columns
		cells = append(cells, g.Cells[start:start+at]...)
		cells = append(cells, g.Cells[start+at+1:start+g.Columns]...)
	}

	g.Cells = cells
	g.Columns--
	if g.HeaderColumnCount > 0 && at == 0 {
		g.HeaderColumnCount--
	}
	return g
}

// Cell returns the cell at (row, col) of a normalized grid.
func (g Grid) Cell(row, col int) GridCell {
	return g.Cells[row*g.Columns+col]
}

// SetCell returns a grid with the cell at (row, col) replaced.
func (g Grid) SetCell(row, col int, cell GridCell) Grid {
	g = g.Normalized()
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Columns {
		return g
	}
	cells := make([]GridCell, len(g.Cells))
	copy(cells, g.Cells)
	cells[row*g.Columns+col] = cell
	g.Cells = cells
	return g
}
