package main

import (
	"regexp"
	"strings"
)

type Canonicalizer struct {
	cellLabelRegex *regexp.Regexp
}

func NewCanonicalizer() *Canonicalizer {
	return &Canonicalizer{
		cellLabelRegex: regexp.MustCompile(`^[A-Z]{1,3}[1-9][0-9]{0,6}$`),
	}
}

// Canonicalize cell labels are upper case: a1 and A1 are the same cell
func (c *Canonicalizer) Canonicalize(cellId string) string {
	return strings.ToUpper(strings.TrimSpace(cellId))
}

// CanonicalizeSheetId sheet ids are case-insensitive and stored lower case
func (c *Canonicalizer) CanonicalizeSheetId(sheetId string) string {
	return strings.ToLower(strings.TrimSpace(sheetId))
}

func (c *Canonicalizer) IsValidCellLabel(canonicalCellId string) bool {
	return c.cellLabelRegex.MatchString(canonicalCellId)
}

// IsValidSheetId rejects ids that would share a bucket namespace with dependency indexes
func (c *Canonicalizer) IsValidSheetId(canonicalSheetId string) bool {
	return canonicalSheetId != "" && !strings.HasPrefix(canonicalSheetId, DependencyBucketPrefix)
}
