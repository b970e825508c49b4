package source

import (
	"bytes"

	"github.com/xuri/excelize/v2"
)

func FromXLSX(name string, blob []byte) (Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(blob))
	if err != nil {
		return Workbook{}, err
	}
	defer f.Close()

	wb := Workbook{Name: name}
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			continue
		}
		wb.Sheets = append(wb.Sheets, Sheet{Name: sheet, Rows: rows})
	}
	return wb, nil
}
