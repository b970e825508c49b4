package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/my2582/fin-tips/internal"
	"github.com/my2582/fin-tips/internal/config"
	"github.com/my2582/fin-tips/internal/pipeline"
	"github.com/my2582/fin-tips/internal/storage"
)

func writeWorkbook(t *testing.T, path string) {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]any{
		{"핀팁스 세미나 Q&A"},
		{},
		{internal.ColTitle, internal.ColDatetime, internal.ColNo, internal.ColQuestion, internal.ColAskers, internal.ColAnswer, internal.ColTip, internal.ColNew},
		{"1차", "2024-01-01", "", "질문A", "", "답변A", "팁A", "Y"},
	}
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatal(err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				t.Fatal(err)
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	tmp := t.TempDir()
	writeWorkbook(t, filepath.Join(tmp, "qa.xlsx"))

	db, err := storage.Open(filepath.Join(tmp, "app.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	cfg, _ := config.Load()
	cfg.WorkbookPath = filepath.Join(tmp, "qa.xlsx")
	cfg.PromoPath = filepath.Join(tmp, "missing-promo.txt")
	cfg.OutputDir = filepath.Join(tmp, "out")
	cfg.WatchIntervalSec = 3600
	cfg.WatchExportReview = true

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := NewService(db, cfg).Run(ctx); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(filepath.Join(cfg.OutputDir, pipeline.DatasetFileName)); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(cfg.OutputDir, "review.xlsx")); err != nil {
		t.Fatal(err)
	}

	hash, err := db.GetMetadata("build.last_source_hash")
	if err != nil {
		t.Fatal(err)
	}
	if hash == nil || *hash == "" {
		t.Fatal("build hash not recorded")
	}
}
