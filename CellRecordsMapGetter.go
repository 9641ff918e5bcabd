package main

import "formulaSheet/contracts"

func NewCellRecordsMapGetter(records map[string]*contracts.CellRecord) contracts.CellRecordGetter {
	return func(label string) *contracts.CellRecord {
		if record, ok := records[label]; ok {
			return record
		}

		return nil
	}
}
