package contracts

type Canonicalizer interface {
	Canonicalize(cellId string) string
	CanonicalizeSheetId(sheetId string) string
	IsValidCellLabel(canonicalCellId string) bool
	IsValidSheetId(canonicalSheetId string) bool
}
