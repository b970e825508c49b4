package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/my2582/fin-tips/internal/config"
	"github.com/my2582/fin-tips/internal/pipeline"
	"github.com/my2582/fin-tips/internal/storage"
)

type Service struct {
	db  *storage.DB
	cfg config.Config
}

func NewService(db *storage.DB, cfg config.Config) *Service {
	return &Service{db: db, cfg: cfg}
}

// Run rebuilds the dataset whenever the workbook or promo file changes,
// polling on the configured interval until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	for {
		if err := s.runCycle(); err != nil {
			fmt.Printf("watch cycle error: %v\n", err)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(time.Duration(s.cfg.WatchIntervalSec) * time.Second):
		}
	}
}

func (s *Service) runCycle() error {
	svc := pipeline.NewBuildService(s.db, s.cfg)
	res, err := svc.RunIfChanged()
	if err != nil {
		return err
	}

	if res.Skipped {
		fmt.Printf("watch cycle done changed=false\n")
		return nil
	}

	if s.cfg.WatchExportReview {
		out := filepath.Join(s.cfg.OutputDir, "review.xlsx")
		if err := pipeline.ExportDatasetXLSX(res.Dataset, out); err != nil {
			return err
		}
	}

	fmt.Printf("watch cycle done changed=true sheet=%s sections=%d items=%d discarded=%d output=%s\n",
		res.Stats.SheetName, res.Stats.Sections, res.Stats.Items, res.Stats.Discarded, res.OutputPath)
	return nil
}
