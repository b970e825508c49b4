package source

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Sheet is one named 2-D grid of cell text in source order.
type Sheet struct {
	Name string
	Rows [][]string
}

// Workbook is an ordered collection of sheets read from one file.
type Workbook struct {
	Name   string
	Sheets []Sheet
}

// FromBytes parses workbook bytes, picking the parser from the file name
// extension. Cell text comes back exactly as stored; normalization
// happens later in the pipeline.
func FromBytes(name string, blob []byte) (Workbook, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm":
		return FromXLSX(name, blob)
	case ".html", ".htm":
		return FromHTML(name, blob)
	default:
		return Workbook{}, fmt.Errorf("unsupported workbook format: %s", name)
	}
}
