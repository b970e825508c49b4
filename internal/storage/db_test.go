package storage

import (
	"path/filepath"
	"testing"

	"github.com/my2582/fin-tips/internal"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "app.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestBuildLedger(t *testing.T) {
	db := openTestDB(t)

	if row, err := db.LatestBuild(); err != nil || row != nil {
		t.Fatalf("empty ledger: row=%v err=%v", row, err)
	}

	first, err := db.InsertBuild(internal.BuildRow{
		TraceID: "trace-1", SourcePath: "data/qa.xlsx", SourceHash: "aaa",
		SheetName: "Q&A", Sections: 1, Items: 2, Discarded: 0, DatasetJSON: `{"promo":"","sections":[]}`,
	})
	if err != nil {
		t.Fatal(err)
	}
	second, err := db.InsertBuild(internal.BuildRow{
		TraceID: "trace-2", SourcePath: "data/qa.xlsx", SourceHash: "bbb",
		SheetName: "Q&A", Sections: 2, Items: 5, Discarded: 1, DatasetJSON: `{"promo":"","sections":[]}`,
	})
	if err != nil {
		t.Fatal(err)
	}
	if second != first+1 {
		t.Fatalf("ids: %d then %d", first, second)
	}

	row, err := db.GetBuild(int(first))
	if err != nil {
		t.Fatal(err)
	}
	if row == nil || row.TraceID != "trace-1" || row.SourceHash != "aaa" || row.CreatedAt == "" {
		t.Fatalf("row=%+v", row)
	}

	if row, err := db.GetBuild(9999); err != nil || row != nil {
		t.Fatalf("missing id: row=%v err=%v", row, err)
	}

	latest, err := db.LatestBuild()
	if err != nil {
		t.Fatal(err)
	}
	if latest == nil || latest.TraceID != "trace-2" {
		t.Fatalf("latest=%+v", latest)
	}

	list, err := db.ListBuilds(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[0].TraceID != "trace-2" || list[1].TraceID != "trace-1" {
		t.Fatalf("list=%+v", list)
	}

	limited, err := db.ListBuilds(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 1 || limited[0].TraceID != "trace-2" {
		t.Fatalf("limited=%+v", limited)
	}
}

func TestMetadata(t *testing.T) {
	db := openTestDB(t)

	if value, err := db.GetMetadata("build.last_source_hash"); err != nil || value != nil {
		t.Fatalf("missing key: value=%v err=%v", value, err)
	}

	if err := db.SetMetadata("build.last_source_hash", "aaa"); err != nil {
		t.Fatal(err)
	}
	if err := db.SetMetadata("build.last_source_hash", "bbb"); err != nil {
		t.Fatal(err)
	}

	value, err := db.GetMetadata("build.last_source_hash")
	if err != nil {
		t.Fatal(err)
	}
	if value == nil || *value != "bbb" {
		t.Fatalf("value=%v", value)
	}
}
