package main

import (
	"database/sql"
	"fmt"
	"formulaSheet/contracts"
	"github.com/google/uuid"
	"time"
	_ "modernc.org/sqlite"
)

const DefaultHistoryLimit = 20

// fixed width, so created_at sorts as text
const historyTimeFormat = "2006-01-02T15:04:05.000000000Z07:00"

const cellHistorySchema = `
CREATE TABLE IF NOT EXISTS cell_history (
	id          TEXT PRIMARY KEY,
	sheet_id    TEXT NOT NULL,
	cell_id     TEXT NOT NULL,
	formula     TEXT NOT NULL,
	result      TEXT NOT NULL,
	error_kind  TEXT NOT NULL,
	created_at  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS cell_history_cell ON cell_history (sheet_id, cell_id, created_at);
`

// CellHistoryStore keeps every evaluated state of a cell in SQLite
type CellHistoryStore struct {
	db *sql.DB
}

func NewCellHistoryStore(dbPath string) (*CellHistoryStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	// an in-memory database lives in a single connection
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(cellHistorySchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate history db: %w", err)
	}
	return &CellHistoryStore{db: db}, nil
}

func (s *CellHistoryStore) Close() error {
	return s.db.Close()
}

func (s *CellHistoryStore) Append(canonicalSheetId string, records []*contracts.CellRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	createdAt := time.Now().UTC().Format(historyTimeFormat)
	for _, record := range records {
		errorKind, err := record.Error.MarshalText()
		if err != nil {
			return err
		}

		_, err = tx.Exec(
			`INSERT INTO cell_history (id, sheet_id, cell_id, formula, result, error_kind, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			uuid.NewString(), canonicalSheetId, record.Label, record.Formula,
			record.Outcome().Display(), string(errorKind), createdAt,
		)
		if err != nil {
			return fmt.Errorf("insert history: %w", err)
		}
	}

	return tx.Commit()
}

// List returns the newest entries first
func (s *CellHistoryStore) List(canonicalSheetId string, canonicalCellId string, limit int) ([]contracts.CellHistoryEntry, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	rows, err := s.db.Query(
		`SELECT id, sheet_id, cell_id, formula, result, error_kind, created_at
		 FROM cell_history WHERE sheet_id = ? AND cell_id = ?
		 ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		canonicalSheetId, canonicalCellId, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	entries := make([]contracts.CellHistoryEntry, 0)
	for rows.Next() {
		var entry contracts.CellHistoryEntry
		var errorKind, createdAt string
		if err := rows.Scan(&entry.Id, &entry.SheetId, &entry.CellId, &entry.Formula, &entry.Result, &errorKind, &createdAt); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		if err := entry.Error.UnmarshalText([]byte(errorKind)); err != nil {
			return nil, err
		}
		entry.CreatedAt, err = time.Parse(historyTimeFormat, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
