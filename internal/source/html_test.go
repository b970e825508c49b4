package source

import "testing"

func TestFromHTML(t *testing.T) {
	html := `<html><body>
<table id="notes">
<tr><th>차수</th><th>답변 요약</th></tr>
<tr><td> 1차 </td><td>첫 줄<br>둘째 줄</td></tr>
<tr><td>&#160;2차</td><td></td></tr>
</table>
<table><caption>집계</caption><tr><td>합계</td></tr></table>
<table><tr><td>x</td></tr></table>
</body></html>`

	wb, err := FromHTML("qa.html", []byte(html))
	if err != nil {
		t.Fatal(err)
	}
	if wb.Name != "qa.html" {
		t.Fatalf("name=%s", wb.Name)
	}
	if len(wb.Sheets) != 3 {
		t.Fatalf("sheets=%d", len(wb.Sheets))
	}

	sheet := wb.Sheets[0]
	if sheet.Name != "notes" {
		t.Fatalf("name=%s", sheet.Name)
	}
	if len(sheet.Rows) != 3 {
		t.Fatalf("rows=%d", len(sheet.Rows))
	}
	if sheet.Rows[0][0] != "차수" || sheet.Rows[0][1] != "답변 요약" {
		t.Fatalf("header=%v", sheet.Rows[0])
	}
	if sheet.Rows[1][0] != "1차" {
		t.Fatalf("markup whitespace should be trimmed, got %q", sheet.Rows[1][0])
	}
	if sheet.Rows[1][1] != "첫 줄\n둘째 줄" {
		t.Fatalf("br should become a newline, got %q", sheet.Rows[1][1])
	}
	if sheet.Rows[2][0] != " 2차" {
		t.Fatalf("nbsp should survive, got %q", sheet.Rows[2][0])
	}
	if sheet.Rows[2][1] != "" {
		t.Fatalf("empty cell: %q", sheet.Rows[2][1])
	}

	if wb.Sheets[1].Name != "집계" {
		t.Fatalf("caption name: %s", wb.Sheets[1].Name)
	}
	if wb.Sheets[2].Name != "Table 3" {
		t.Fatalf("fallback name: %s", wb.Sheets[2].Name)
	}
}

func TestFromHTMLNoTables(t *testing.T) {
	wb, err := FromHTML("qa.html", []byte("<html><body><p>본문</p></body></html>"))
	if err != nil {
		t.Fatal(err)
	}
	if len(wb.Sheets) != 0 {
		t.Fatalf("sheets=%d", len(wb.Sheets))
	}
}
