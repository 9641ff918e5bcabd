package contracts

import "go.etcd.io/bbolt"

type CellDependencyTree interface {
	// SetDependsOn
	/**
	 * Example, for formula `A1 = B1 + C1`:
	 * `dependantCellId` depends on `dependingOnCellIds`
	 *  SetDependsOn("A1", []string{"B1", "C1"})
	 */
	SetDependsOn(tx *bbolt.Tx, sheetId []byte, dependantCellId string, dependingOnCellIds []string) error

	// GetDependants
	/**
	 * For formulas
	 *    - `A1 = B1 + C1` => A1 is a dependant of B1 and C1;
	 *    - `E5 = A1 * C1` => E5 is a dependant of A1 and C1;
	 *      recursively, E5 is a dependant of B1 (via A1)
	 * GetDependants("B1") should return ["A1", "E5"]
	 */
	GetDependants(tx *bbolt.Tx, sheetId []byte, dependingOnCellId string) []string

	// GetDependingOn returns the direct references of the cell formula
	GetDependingOn(tx *bbolt.Tx, sheetId []byte, dependantCellId string) []string

	// SortByDependency orders cells so every cell comes after the cells of the list it depends on
	SortByDependency(tx *bbolt.Tx, sheetId []byte, cellIds []string) []string
}
