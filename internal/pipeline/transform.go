package pipeline

import (
	"github.com/my2582/fin-tips/internal"
	"github.com/my2582/fin-tips/internal/source"
	"github.com/my2582/fin-tips/internal/util"
)

// Stats summarizes one transform pass for logging and the build ledger.
type Stats struct {
	SheetName string
	DataRows  int
	Discarded int
	Sections  int
	Items     int
}

// Transform runs the whole sheet-to-dataset pass: locate the notes sheet,
// extract its records and fold them into ordered sections. It either
// returns a complete dataset or fails at sheet location with nothing
// produced.
func Transform(wb source.Workbook, promo string) (internal.Dataset, Stats, error) {
	sheet, err := LocateSheet(wb)
	if err != nil {
		return internal.Dataset{}, Stats{}, err
	}

	sections, discarded := BuildSections(Records(sheet))

	stats := Stats{
		SheetName: sheet.Name,
		DataRows:  len(sheet.Rows) - headerRowIndex - 1,
		Discarded: discarded,
		Sections:  len(sections),
	}
	for _, sec := range sections {
		stats.Items += len(sec.Items)
	}

	dataset := internal.Dataset{
		Promo:    util.NormalizeText(promo),
		Sections: sections,
	}
	return dataset, stats, nil
}
