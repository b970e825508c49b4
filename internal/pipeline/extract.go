package pipeline

import (
	"github.com/my2582/fin-tips/internal"
	"github.com/my2582/fin-tips/internal/source"
)

// RecordIterator walks the data rows of a located sheet in source order,
// one pass only. Use it like sql.Rows: for it.Next() { it.Record() }.
type RecordIterator struct {
	labels []string
	rows   [][]string
	pos    int
	cur    internal.RawRecord
}

// Records returns an iterator over every row below the header row. The
// header cells become the record keys; blank labels are dropped and when
// a label repeats the rightmost column wins. Cells missing from short
// rows read as empty strings.
func Records(sheet source.Sheet) *RecordIterator {
	labels := []string{}
	if len(sheet.Rows) > headerRowIndex {
		labels = sheet.Rows[headerRowIndex]
	}
	return &RecordIterator{labels: labels, rows: sheet.Rows, pos: headerRowIndex}
}

func (it *RecordIterator) Next() bool {
	it.pos++
	if it.pos >= len(it.rows) {
		return false
	}

	row := it.rows[it.pos]
	fields := make(map[string]string, len(it.labels))
	for i, label := range it.labels {
		if label == "" {
			continue
		}
		value := ""
		if i < len(row) {
			value = row[i]
		}
		fields[label] = value
	}
	it.cur = internal.RawRecord{Row: it.pos + 1, Fields: fields}
	return true
}

func (it *RecordIterator) Record() internal.RawRecord {
	return it.cur
}
