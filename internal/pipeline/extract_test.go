package pipeline

import (
	"testing"

	"github.com/my2582/fin-tips/internal"
	"github.com/my2582/fin-tips/internal/source"
)

func TestRecords(t *testing.T) {
	sheet := source.Sheet{Name: "Q&A", Rows: [][]string{
		{"배너"},
		{},
		{internal.ColTitle, internal.ColDatetime, "", internal.ColQuestion, internal.ColQuestion},
		{"1차", "2024-01-01", "무시", "첫 질문", "덮어쓴 질문"},
		{"2차"},
	}}

	it := Records(sheet)

	if !it.Next() {
		t.Fatal("expected first record")
	}
	rec := it.Record()
	if rec.Row != 4 {
		t.Fatalf("row=%d", rec.Row)
	}
	if rec.Get(internal.ColTitle) != "1차" || rec.Get(internal.ColDatetime) != "2024-01-01" {
		t.Fatalf("fields=%v", rec.Fields)
	}
	if rec.Get(internal.ColQuestion) != "덮어쓴 질문" {
		t.Fatalf("duplicate label should keep the rightmost column, got %q", rec.Get(internal.ColQuestion))
	}
	if _, ok := rec.Fields[""]; ok {
		t.Fatal("blank label must not become a key")
	}

	if !it.Next() {
		t.Fatal("expected second record")
	}
	rec = it.Record()
	if rec.Row != 5 || rec.Get(internal.ColTitle) != "2차" {
		t.Fatalf("row=%d fields=%v", rec.Row, rec.Fields)
	}
	if rec.Get(internal.ColDatetime) != "" || rec.Get(internal.ColQuestion) != "" {
		t.Fatal("cells past the end of a short row should read as empty")
	}

	if it.Next() {
		t.Fatal("expected exhaustion after the last row")
	}
}

func TestRecordsHeaderOnly(t *testing.T) {
	it := Records(notesSheet("빈 시트"))
	if it.Next() {
		t.Fatal("header-only sheet should yield no records")
	}
}
