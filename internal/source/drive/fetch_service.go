package drive

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"time"

	"github.com/my2582/fin-tips/internal"
	"github.com/my2582/fin-tips/internal/storage"
)

type WorkbookConnector interface {
	Fetch(ctx context.Context, fileID string) (internal.FetchedWorkbook, error)
}

type FetchService struct {
	db        *storage.DB
	connector WorkbookConnector
}

func NewFetchService(db *storage.DB, connector WorkbookConnector) *FetchService {
	return &FetchService{db: db, connector: connector}
}

// FetchToFile downloads a workbook and writes it to destPath, recording
// the fetch in the metadata table.
func (s *FetchService) FetchToFile(ctx context.Context, fileID, destPath string) (internal.FetchedWorkbook, error) {
	fetched, err := s.connector.Fetch(ctx, fileID)
	if err != nil {
		return internal.FetchedWorkbook{}, err
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return internal.FetchedWorkbook{}, err
	}
	if err := os.WriteFile(destPath, fetched.Blob, 0o644); err != nil {
		return internal.FetchedWorkbook{}, err
	}

	hashBytes := sha256.Sum256(fetched.Blob)
	_ = s.db.SetMetadata("drive.last_fetch_hash", hex.EncodeToString(hashBytes[:]))
	_ = s.db.SetMetadata("drive.last_fetch_file", fetched.FileID)
	_ = s.db.SetMetadata("drive.last_fetch_at", time.Now().UTC().Format(time.RFC3339))

	return fetched, nil
}
