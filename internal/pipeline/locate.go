package pipeline

import (
	"errors"

	"github.com/my2582/fin-tips/internal"
	"github.com/my2582/fin-tips/internal/source"
)

// ErrHeaderNotFound is the single fatal input error: no sheet in the
// workbook carries the required header labels in its third row.
var ErrHeaderNotFound = errors.New("no matching header found")

// headerRowIndex is where the notes sheet keeps its header row. The two
// rows above it hold the sheet banner and are never data.
const headerRowIndex = 2

var requiredLabels = []string{
	internal.ColTitle,
	internal.ColDatetime,
	internal.ColNo,
	internal.ColQuestion,
	internal.ColAskers,
	internal.ColAnswer,
	internal.ColTip,
}

// LocateSheet returns the first sheet, in workbook order, whose header
// row contains every required label. Cells are compared verbatim; column
// order does not matter and extra columns are ignored.
func LocateSheet(wb source.Workbook) (source.Sheet, error) {
	for _, sheet := range wb.Sheets {
		if len(sheet.Rows) <= headerRowIndex {
			continue
		}
		if hasAllLabels(sheet.Rows[headerRowIndex], requiredLabels) {
			return sheet, nil
		}
	}
	return source.Sheet{}, ErrHeaderNotFound
}

func hasAllLabels(row []string, labels []string) bool {
	present := make(map[string]bool, len(row))
	for _, cell := range row {
		present[cell] = true
	}
	for _, label := range labels {
		if !present[label] {
			return false
		}
	}
	return true
}
