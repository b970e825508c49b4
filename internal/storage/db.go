package storage

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/my2582/fin-tips/internal"
)

type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS builds (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  traceId TEXT NOT NULL,
  sourcePath TEXT NOT NULL,
  sourceHash TEXT NOT NULL,
  sheetName TEXT NOT NULL,
  sections INTEGER NOT NULL,
  items INTEGER NOT NULL,
  discarded INTEGER NOT NULL,
  datasetJson TEXT NOT NULL,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_builds_sourceHash ON builds(sourceHash);

CREATE TABLE IF NOT EXISTS metadata (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updatedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

	_, err := d.conn.Exec(schema)
	return err
}

func (d *DB) InsertBuild(row internal.BuildRow) (int64, error) {
	result, err := d.conn.Exec(`
INSERT INTO builds (traceId, sourcePath, sourceHash, sheetName, sections, items, discarded, datasetJson)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`, row.TraceID, row.SourcePath, row.SourceHash, row.SheetName, row.Sections, row.Items, row.Discarded, row.DatasetJSON)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (d *DB) GetBuild(id int) (*internal.BuildRow, error) {
	var row internal.BuildRow
	err := d.conn.QueryRow(`
SELECT id, traceId, sourcePath, sourceHash, sheetName, sections, items, discarded, datasetJson, createdAt
FROM builds WHERE id = ?
`, id).Scan(
		&row.ID, &row.TraceID, &row.SourcePath, &row.SourceHash, &row.SheetName,
		&row.Sections, &row.Items, &row.Discarded, &row.DatasetJSON, &row.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (d *DB) LatestBuild() (*internal.BuildRow, error) {
	var row internal.BuildRow
	err := d.conn.QueryRow(`
SELECT id, traceId, sourcePath, sourceHash, sheetName, sections, items, discarded, datasetJson, createdAt
FROM builds ORDER BY id DESC LIMIT 1
`).Scan(
		&row.ID, &row.TraceID, &row.SourcePath, &row.SourceHash, &row.SheetName,
		&row.Sections, &row.Items, &row.Discarded, &row.DatasetJSON, &row.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (d *DB) ListBuilds(limit int) ([]internal.BuildRow, error) {
	rows, err := d.conn.Query(`
SELECT id, traceId, sourcePath, sourceHash, sheetName, sections, items, discarded, datasetJson, createdAt
FROM builds ORDER BY id DESC LIMIT ?
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.BuildRow
	for rows.Next() {
		var row internal.BuildRow
		if err := rows.Scan(
			&row.ID, &row.TraceID, &row.SourcePath, &row.SourceHash, &row.SheetName,
			&row.Sections, &row.Items, &row.Discarded, &row.DatasetJSON, &row.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (d *DB) SetMetadata(key, value string) error {
	_, err := d.conn.Exec(`
INSERT INTO metadata (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updatedAt = CURRENT_TIMESTAMP
`, key, value)
	return err
}

func (d *DB) GetMetadata(key string) (*string, error) {
	var value string
	err := d.conn.QueryRow(`SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &value, nil
}
