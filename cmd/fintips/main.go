package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/my2582/fin-tips/internal"
	"github.com/my2582/fin-tips/internal/config"
	"github.com/my2582/fin-tips/internal/pipeline"
	"github.com/my2582/fin-tips/internal/source/drive"
	"github.com/my2582/fin-tips/internal/storage"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	db, err := storage.Open(cfg.DBPath)
	must(err)
	defer db.Close()

	cmd := os.Args[1]
	switch cmd {
	case "build":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		workbook := fs.String("workbook", "", "workbook path (defaults to WORKBOOK_PATH)")
		promo := fs.String("promo", "", "promo text path (defaults to PROMO_PATH)")
		out := fs.String("out", "", "output dir (defaults to OUTPUT_DIR)")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*workbook) != "" {
			cfg.WorkbookPath = *workbook
		}
		if strings.TrimSpace(*promo) != "" {
			cfg.PromoPath = *promo
		}
		if strings.TrimSpace(*out) != "" {
			cfg.OutputDir = *out
		}
		svc := pipeline.NewBuildService(db, cfg)
		res, err := svc.Run()
		must(err)
		fmt.Printf("build done sheet=%s sections=%d items=%d discarded=%d output=%s\n",
			res.Stats.SheetName, res.Stats.Sections, res.Stats.Items, res.Stats.Discarded, res.OutputPath)
	case "fetch":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		fileID := fs.String("fileId", "", "drive file id (defaults to DRIVE_FILE_ID)")
		out := fs.String("out", "", "destination path (defaults to WORKBOOK_PATH)")
		_ = fs.Parse(os.Args[2:])
		id := strings.TrimSpace(*fileID)
		if id == "" {
			id = cfg.DriveFileID
		}
		if id == "" {
			must(fmt.Errorf("--fileId or DRIVE_FILE_ID is required"))
		}
		dest := strings.TrimSpace(*out)
		if dest == "" {
			dest = cfg.WorkbookPath
		}
		ctx := context.Background()
		conn, err := drive.NewConnector(ctx, cfg)
		must(err)
		fetch := drive.NewFetchService(db, conn)
		fetched, err := fetch.FetchToFile(ctx, id, dest)
		must(err)
		fmt.Printf("fetch done name=%s bytes=%d modified=%s path=%s\n", fetched.Name, len(fetched.Blob), fetched.ModifiedAt, dest)
	case "export:xlsx":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		buildID := fs.Int("buildId", 0, "ledger build id (defaults to the latest)")
		out := fs.String("out", "", "output xlsx path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*out) == "" {
			must(fmt.Errorf("--out is required"))
		}
		var row *internal.BuildRow
		if *buildID > 0 {
			row, err = db.GetBuild(*buildID)
		} else {
			row, err = db.LatestBuild()
		}
		must(err)
		if row == nil {
			must(fmt.Errorf("no build found"))
		}
		var dataset internal.Dataset
		must(json.Unmarshal([]byte(row.DatasetJSON), &dataset))
		must(pipeline.ExportDatasetXLSX(dataset, *out))
		fmt.Printf("exported build id=%d sections=%d items=%d to %s\n", row.ID, row.Sections, row.Items, *out)
	case "history":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		limit := fs.Int("limit", 10, "max rows")
		_ = fs.Parse(os.Args[2:])
		rows, err := db.ListBuilds(*limit)
		must(err)
		for _, row := range rows {
			fmt.Printf("id=%d createdAt=%s sheet=%s sections=%d items=%d discarded=%d hash=%s\n",
				row.ID, row.CreatedAt, row.SheetName, row.Sections, row.Items, row.Discarded, row.SourceHash)
		}
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage: fintips <command>")
	fmt.Println("commands:")
	fmt.Println("  build [--workbook=...] [--promo=...] [--out=...]")
	fmt.Println("  fetch [--fileId=...] [--out=...]")
	fmt.Println("  export:xlsx [--buildId=1] --out=./out/review.xlsx")
	fmt.Println("  history [--limit=10]")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
