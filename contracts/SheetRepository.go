package contracts

import "errors"

type SheetRepository interface {
	SetCell(sheetId string, cellId string, value string) (*Cell, error)
	GetCell(sheetId string, cellId string) (*Cell, error)
	GetCellList(sheetId string) (*CellList, error)
	EvaluateFormula(sheetId string, formula string) (*Cell, error)
}

var SheetNotFoundError = errors.New("sheet not found")

var SheetIdInvalidError = errors.New("sheet id should not be empty or start with a reserved prefix")
