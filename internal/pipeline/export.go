package pipeline

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/my2582/fin-tips/internal"
)

// ExportDatasetXLSX flattens a dataset back into one spreadsheet, a row
// per item with its section labels repeated, so the sheet authors can
// review what the build made of their edits. Columns reuse the labels of
// the source sheet.
func ExportDatasetXLSX(dataset internal.Dataset, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{
		internal.ColTitle, internal.ColDatetime, internal.ColNo,
		internal.ColQuestion, internal.ColAskers, internal.ColAnswer,
		internal.ColTip, internal.ColNew,
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	r := 2
	for _, section := range dataset.Sections {
		for _, item := range section.Items {
			set := func(col int, value any) {
				cell, _ := excelize.CoordinatesToCellName(col, r)
				_ = f.SetCellValue(sheet, cell, value)
			}

			set(1, section.Title)
			set(2, section.Datetime)
			set(3, item.No)
			set(4, item.Q)
			set(5, item.Askers)
			set(6, item.A)
			set(7, item.Tip)
			set(8, newMark(item.IsNew))
			r++
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}

func newMark(isNew bool) string {
	if isNew {
		return "Y"
	}
	return ""
}
