// Package output renders solution sets to spreadsheet and markdown form.
package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
	"github.com/ygo-tools/seccannon/pkg/seccannon/models"
)

// sheetName is the single sheet written to every workbook.
const sheetName = "Sheet1"

// headers are the column titles, in column order.
var headers = []string{"stars", "nb cards", "xyz", "fusion"}

// run is a maximal contiguous range of solutions sharing one stars value.
// Indices are into the solution slice, end inclusive.
type run struct {
	start int
	end   int
}

// starRuns scans the already-sorted solutions and returns the maximal
// contiguous runs of equal stars values, in order.
func starRuns(solutions []models.Solution) []run {
	var runs []run
	for i := range solutions {
		if i > 0 && solutions[i].Stars == solutions[i-1].Stars {
			runs[len(runs)-1].end = i
			continue
		}
		runs = append(runs, run{start: i, end: i})
	}
	return runs
}

// WriteXLSX writes the solutions to an xlsx workbook at path, creating the
// parent directory if needed and overwriting any existing file.
//
// Row 1 holds the headers, bold and centered with a thin left border. Each
// following row holds one solution; the stars column is written only on the
// first row of each group of equal stars, and groups spanning more than one
// row are merged into a single cell.
func WriteXLSX(solutions []models.Solution, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    []excelize.Border{{Type: "left", Style: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetName, cell, cell, style); err != nil {
			return err
		}
	}

	for i, sol := range solutions {
		row := i + 2
		if err := f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), sol.NbCards); err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), sol.XYZ); err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), sol.Fusion); err != nil {
			return err
		}
	}

	for _, r := range starRuns(solutions) {
		first := fmt.Sprintf("A%d", r.start+2)
		if err := f.SetCellValue(sheetName, first, solutions[r.start].Stars); err != nil {
			return err
		}
		if r.end > r.start {
			if err := f.MergeCell(sheetName, first, fmt.Sprintf("A%d", r.end+2)); err != nil {
				return err
			}
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
