package main

import "formulaSheet/contracts"

// NewCellRecordGetterChain asks the second getter only for cells the first one does not know
func NewCellRecordGetterChain(first contracts.CellRecordGetter, second contracts.CellRecordGetter) contracts.CellRecordGetter {
	if second == nil {
		return first
	}

	if first == nil {
		return second
	}

	return func(label string) *contracts.CellRecord {
		if record := first(label); record != nil {
			return record
		}

		return second(label)
	}
}
