package contracts

import (
	"math"
	"strconv"
)

type EvaluationOutcome struct {
	Result float64
	Error  ErrorKind
}

func (o EvaluationOutcome) Failed() bool {
	return o.Error != ErrorNone
}

func (o EvaluationOutcome) ErrorText() string {
	return o.Error.String()
}

// Display prefers the error text over the number
func (o EvaluationOutcome) Display() string {
	if o.Failed() {
		return o.ErrorText()
	}
	return formatNumber(o.Result)
}

type FormulaEvaluator interface {
	Evaluate(formula Formula) EvaluationOutcome
	Result() float64
	Error() string
}

// CellSnapshot is the state of a referenced cell at the instant it was looked up
type CellSnapshot struct {
	FormulaIsEmpty bool
	Error          ErrorKind
	Value          float64
}

type CellResolver interface {
	GetCellSnapshot(label string) CellSnapshot
}

type CellResolverFunc func(label string) CellSnapshot

func (f CellResolverFunc) GetCellSnapshot(label string) CellSnapshot {
	return f(label)
}

func formatNumber(value float64) string {
	switch {
	case math.IsInf(value, 1):
		return "Infinity"
	case math.IsInf(value, -1):
		return "-Infinity"
	case math.IsNaN(value):
		return "NaN"
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
