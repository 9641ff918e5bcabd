package contracts

import "time"

type CellHistoryEntry struct {
	Id        string    `json:"id"`
	SheetId   string    `json:"sheet_id"`
	CellId    string    `json:"cell_id"`
	Formula   string    `json:"value"`
	Result    string    `json:"result"`
	Error     ErrorKind `json:"error"`
	CreatedAt time.Time `json:"created_at"`
}

type CellHistory interface {
	Append(canonicalSheetId string, records []*CellRecord) error
	List(canonicalSheetId string, canonicalCellId string, limit int) ([]CellHistoryEntry, error)
	Close() error
}
