package blocks_test

import (
	"testing"

	"github.com/vojtechokenka/nokturo/internal/blocks"
)

func textCell(content string) blocks.GridCell {
	return blocks.GridCell{Type: blocks.CellText, Content: content}
}

// TestGridNormalized verifies cell padding, truncation, and header clamping
func TestGridNormalized(t *testing.T) {
	g := blocks.Grid{
		Columns:           2,
		Rows:              2,
		HeaderRowCount:    3,
		HeaderColumnCount: -1,
		Cells:             []blocks.GridCell{textCell("only")},
	}.Normalized()

	if len(g.Cells) != 4 {
		t.Fatalf("Expected 4 cells after normalize, got %d", len(g.Cells))
	}
	if g.Cells[0].Content != "only" || g.Cells[1].Content != "" {
		t.Error("Existing cells must keep their content; shortfall fills with empty text cells")
	}
	if g.HeaderRowCount != 1 || g.HeaderColumnCount != 0 {
		t.Errorf("Expected headers clamped to 1/0, got %d/%d", g.HeaderRowCount, g.HeaderColumnCount)
	}

	g = blocks.Grid{Columns: 0, Rows: 0}.Normalized()
	if g.Rows != 1 || g.Columns != 1 || len(g.Cells) != 1 {
		t.Errorf("Expected a 1x1 grid from zero dimensions, got %dx%d (%d cells)", g.Rows, g.Columns, len(g.Cells))
	}
}

// TestGridInsertRow verifies the header row shifts down with its content
func TestGridInsertRow(t *testing.T) {
	g := blocks.Grid{
		Columns:        2,
		Rows:           2,
		HeaderRowCount: 1,
		Cells: []blocks.GridCell{
			textCell("Size"), textCell("Chest"),
			textCell("M"), textCell("102"),
		},
	}

	out := g.InsertRow(0)
	if out.Rows != 3 {
		t.Fatalf("Expected 3 rows, got %d", out.Rows)
	}
	if out.Cell(0, 0).Content != "" {
		t.Error("Expected the new row to be empty")
	}
	if out.Cell(1, 0).Content != "Size" {
		t.Errorf("Expected the old header content shifted down, got %q", out.Cell(1, 0).Content)
	}

	out = g.InsertRow(2)
	if out.Cell(2, 0).Content != "" || out.Cell(1, 1).Content != "102" {
		t.Error("Appending a row must not disturb existing rows")
	}
}

// TestGridDeleteRow verifies the only-row guard and header clearing
func TestGridDeleteRow(t *testing.T) {
	g := blocks.Grid{
		Columns:        1,
		Rows:           2,
		HeaderRowCount: 1,
		Cells:          []blocks.GridCell{textCell("Head"), textCell("Body")},
	}

	out := g.DeleteRow(0)
	if out.Rows != 1 || out.Cell(0, 0).Content != "Body" {
		t.Error("Expected the header row removed and the body row kept")
	}
	if out.HeaderRowCount != 0 {
		t.Errorf("Expected header row count cleared, got %d", out.HeaderRowCount)
	}

	out = out.DeleteRow(0)
	if out.Rows != 1 {
		t.Error("Deleting the only row must be a no-op")
	}
}

// TestGridColumns verifies column insertion and deletion across rows
func TestGridColumns(t *testing.T) {
	g := blocks.Grid{
		Columns: 2,
		Rows:    2,
		Cells: []blocks.GridCell{
			textCell("a"), textCell("b"),
			textCell("c"), textCell("d"),
		},
	}

	out := g.InsertColumn(1)
	if out.Columns != 3 {
		t.Fatalf("Expected 3 columns, got %d", out.Columns)
	}
	if out.Cell(0, 0).Content != "a" || out.Cell(0, 1).Content != "" || out.Cell(0, 2).Content != "b" {
		t.Error("Expected the empty column spliced into row 0")
	}
	if out.Cell(1, 0).Content != "c" || out.Cell(1, 2).Content != "d" {
		t.Error("Expected the empty column spliced into row 1")
	}

	out = g.DeleteColumn(0)
	if out.Columns != 1 || out.Cell(0, 0).Content != "b" || out.Cell(1, 0).Content != "d" {
		t.Error("Expected column 0 removed from every row")
	}

	single := blocks.Grid{Columns: 1, Rows: 1, Cells: []blocks.GridCell{textCell("x")}}
	if got := single.DeleteColumn(0); got.Columns != 1 {
		t.Error("Deleting the only column must be a no-op")
	}
}

// TestGridSetCell verifies cell replacement without mutating the receiver
func TestGridSetCell(t *testing.T) {
	g := blocks.Grid{Columns: 2, Rows: 1, Cells: []blocks.GridCell{textCell("a"), textCell("b")}}

	out := g.SetCell(0, 1, blocks.GridCell{Type: blocks.CellImage, Content: "https://cdn.example/x.jpg", Caption: "Detail"})
	if out.Cell(0, 1).Type != blocks.CellImage {
		t.Error("Expected the cell replaced")
	}
	if g.Cells[1].Content != "b" {
		t.Error("SetCell must not mutate the receiver")
	}

	out = g.SetCell(5, 0, textCell("nope"))
	if out.Cell(0, 0).Content != "a" {
		t.Error("Out-of-range SetCell must be a no-op")
	}
}
