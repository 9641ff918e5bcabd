package main

import "formulaSheet/contracts"

// ResolveCell turns the snapshot of a referenced cell into an operand:
// an upstream error propagates as is, an empty cell is an invalid reference.
func ResolveCell(resolver contracts.CellResolver, label string) (float64, contracts.ErrorKind) {
	if resolver == nil {
		return 0, contracts.ErrorInvalidCell
	}

	snapshot := resolver.GetCellSnapshot(label)

	if snapshot.Error != contracts.ErrorNone && snapshot.Error != contracts.ErrorEmpty {
		return 0, snapshot.Error
	}

	if snapshot.FormulaIsEmpty {
		return 0, contracts.ErrorInvalidCell
	}

	return snapshot.Value, contracts.ErrorNone
}

// NewCellRecordResolver reports unknown cells as cells with an empty formula
func NewCellRecordResolver(getter contracts.CellRecordGetter) contracts.CellResolver {
	return contracts.CellResolverFunc(func(label string) contracts.CellSnapshot {
		var record *contracts.CellRecord
		if getter != nil {
			record = getter(label)
		}

		if record == nil {
			return contracts.CellSnapshot{FormulaIsEmpty: true}
		}

		return record.Snapshot()
	})
}
