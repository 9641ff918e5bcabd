package contracts

import (
	"errors"
	"math"
	"strings"
)

type Cell struct {
	CanonicalKey string   `json:"-"`
	Value        string   `json:"value"`
	Result       string   `json:"result"`
	Error        string   `json:"error,omitempty"`
	Number       *float64 `json:"number,omitempty"`
}

type CellList map[string]*Cell

// CellRecord is what the sheet storage keeps per cell: the formula text and the
// outcome of its last evaluation
type CellRecord struct {
	Label   string
	Formula string
	Value   float64
	Error   ErrorKind
}

// CellRecordGetter returns nil when it does not know the cell
type CellRecordGetter func(label string) *CellRecord

type CellSerializer interface {
	Marshal(record *CellRecord) []byte
	Unmarshal(data []byte) (*CellRecord, error)
}

var CellNotFoundError = errors.New("cell not found")

var CellIdInvalidError = errors.New("cell id should be a column letters followed by a row number (A1, BC12)")

var CircularReferenceError = errors.New("circular reference detected")

var FormulaSyntaxError = errors.New("formula syntax error")

func (r *CellRecord) FormulaIsEmpty() bool {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(r.Formula), "=")) == ""
}

func (r *CellRecord) Outcome() EvaluationOutcome {
	return EvaluationOutcome{Result: r.Value, Error: r.Error}
}

func (r *CellRecord) Snapshot() CellSnapshot {
	return CellSnapshot{
		FormulaIsEmpty: r.FormulaIsEmpty(),
		Error:          r.Error,
		Value:          r.Value,
	}
}

func (r *CellRecord) ToCell() *Cell {
	outcome := r.Outcome()
	cell := &Cell{
		CanonicalKey: r.Label,
		Value:        r.Formula,
		Result:       outcome.Display(),
		Error:        outcome.ErrorText(),
	}

	// JSON has no representation for Inf and NaN
	if !outcome.Failed() && !math.IsInf(r.Value, 0) && !math.IsNaN(r.Value) {
		number := r.Value
		cell.Number = &number
	}

	return cell
}
