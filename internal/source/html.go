package source

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// FromHTML reads a "publish to web" HTML export of the workbook: every
// table in document order becomes one sheet. Cell text keeps its exact
// characters, NBSP included; only the markup indentation around it is
// trimmed.
func FromHTML(name string, blob []byte) (Workbook, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(blob))
	if err != nil {
		return Workbook{}, err
	}

	// Line breaks inside cells must survive text extraction.
	doc.Find("br").ReplaceWithHtml("\n")

	wb := Workbook{Name: name}
	doc.Find("table").Each(func(i int, table *goquery.Selection) {
		sheet := Sheet{Name: sheetName(table, i)}
		table.Find("tr").Each(func(_ int, row *goquery.Selection) {
			cells := []string{}
			row.Find("th,td").Each(func(_ int, cell *goquery.Selection) {
				cells = append(cells, strings.Trim(cell.Text(), " \t\r\n"))
			})
			sheet.Rows = append(sheet.Rows, cells)
		})
		wb.Sheets = append(wb.Sheets, sheet)
	})
	return wb, nil
}

func sheetName(table *goquery.Selection, index int) string {
	if caption := strings.TrimSpace(table.Find("caption").First().Text()); caption != "" {
		return caption
	}
	if id, ok := table.Attr("id"); ok && strings.TrimSpace(id) != "" {
		return strings.TrimSpace(id)
	}
	return fmt.Sprintf("Table %d", index+1)
}
