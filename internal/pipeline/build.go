package pipeline

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/my2582/fin-tips/internal"
	"github.com/my2582/fin-tips/internal/config"
	"github.com/my2582/fin-tips/internal/source"
	"github.com/my2582/fin-tips/internal/storage"
)

const lastSourceHashKey = "build.last_source_hash"

// DatasetFileName is the artifact consumed by the page templating layer.
const DatasetFileName = "qa-data.json"

type BuildService struct {
	db  *storage.DB
	cfg config.Config
}

func NewBuildService(db *storage.DB, cfg config.Config) *BuildService {
	return &BuildService{db: db, cfg: cfg}
}

type BuildResult struct {
	BuildID    int64
	TraceID    string
	SourceHash string
	Stats      Stats
	Dataset    internal.Dataset
	OutputPath string
	Skipped    bool
}

// Run transforms the configured workbook into the dataset artifact,
// writes it with its meta sidecar under the output dir and records the
// build in the ledger.
func (s *BuildService) Run() (BuildResult, error) {
	return s.run(false)
}

// RunIfChanged is Run, except it skips the build when the combined hash
// of workbook and promo text equals the one recorded by the last build.
func (s *BuildService) RunIfChanged() (BuildResult, error) {
	return s.run(true)
}

func (s *BuildService) run(skipUnchanged bool) (BuildResult, error) {
	blob, err := os.ReadFile(s.cfg.WorkbookPath)
	if err != nil {
		return BuildResult{}, err
	}
	promo := LoadPromo(s.cfg.PromoPath)

	hash := sourceHash(blob, promo)
	if skipUnchanged {
		last, err := s.db.GetMetadata(lastSourceHashKey)
		if err != nil {
			return BuildResult{}, err
		}
		if last != nil && *last == hash {
			return BuildResult{SourceHash: hash, Skipped: true}, nil
		}
	}

	wb, err := source.FromBytes(filepath.Base(s.cfg.WorkbookPath), blob)
	if err != nil {
		return BuildResult{}, err
	}

	dataset, stats, err := Transform(wb, promo)
	if err != nil {
		return BuildResult{}, err
	}

	datasetJSON, err := json.MarshalIndent(dataset, "", "  ")
	if err != nil {
		return BuildResult{}, err
	}

	if err := os.MkdirAll(s.cfg.OutputDir, 0o755); err != nil {
		return BuildResult{}, err
	}
	outputPath := filepath.Join(s.cfg.OutputDir, DatasetFileName)
	if err := os.WriteFile(outputPath, datasetJSON, 0o644); err != nil {
		return BuildResult{}, err
	}

	traceID := uuid.NewString()
	if err := s.writeMeta(traceID, hash, stats); err != nil {
		return BuildResult{}, err
	}

	buildID, err := s.db.InsertBuild(internal.BuildRow{
		TraceID:     traceID,
		SourcePath:  s.cfg.WorkbookPath,
		SourceHash:  hash,
		SheetName:   stats.SheetName,
		Sections:    stats.Sections,
		Items:       stats.Items,
		Discarded:   stats.Discarded,
		DatasetJSON: string(datasetJSON),
	})
	if err != nil {
		return BuildResult{}, err
	}
	if err := s.db.SetMetadata(lastSourceHashKey, hash); err != nil {
		return BuildResult{}, err
	}

	return BuildResult{
		BuildID:    buildID,
		TraceID:    traceID,
		SourceHash: hash,
		Stats:      stats,
		Dataset:    dataset,
		OutputPath: outputPath,
	}, nil
}

func (s *BuildService) writeMeta(traceID, hash string, stats Stats) error {
	meta := map[string]any{
		"generatedAt": time.Now().UTC().Format(time.RFC3339),
		"traceId":     traceID,
		"source":      s.cfg.WorkbookPath,
		"sourceHash":  hash,
		"sheet":       stats.SheetName,
		"sections":    stats.Sections,
		"items":       stats.Items,
		"discarded":   stats.Discarded,
	}
	blob, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.cfg.OutputDir, "meta.json"), blob, 0o644)
}

func sourceHash(workbook []byte, promo string) string {
	h := sha256.New()
	h.Write(workbook)
	h.Write([]byte(promo))
	return hex.EncodeToString(h.Sum(nil))
}
