package main

import (
	"errors"
	"fmt"
	"formulaSheet/contracts"
	"go.etcd.io/bbolt"
	"log/slog"
)

type SheetRepository struct {
	db                *bbolt.DB
	tokenizer         contracts.FormulaTokenizer
	serializer        contracts.CellSerializer
	canonicalizer     contracts.Canonicalizer
	dependencyTree    contracts.CellDependencyTree
	webhookDispatcher contracts.WebhookDispatcher
	history           contracts.CellHistory
	logger            *slog.Logger
}

func NewSheetRepository(
	db *bbolt.DB, tokenizer contracts.FormulaTokenizer,
	serializer contracts.CellSerializer, canonicalizer contracts.Canonicalizer,
	webhookDispatcher contracts.WebhookDispatcher, history contracts.CellHistory,
	logger *slog.Logger,
) *SheetRepository {
	return &SheetRepository{
		db:                db,
		tokenizer:         tokenizer,
		serializer:        serializer,
		canonicalizer:     canonicalizer,
		dependencyTree:    &CellDependencyTree{},
		webhookDispatcher: webhookDispatcher,
		history:           history,
		logger:            logger,
	}
}

// SetCell stores the formula, evaluates it and recalculates every cell depending on it.
// Evaluation failures are part of the stored cell; only an invalid cell id, a circular
// reference or a storage failure is returned as error.
func (s *SheetRepository) SetCell(sheetId string, cellId string, value string) (cell *contracts.Cell, err error) {
	sheetId = s.canonicalizer.CanonicalizeSheetId(sheetId)
	sheetIdByte := []byte(sheetId)
	label := s.canonicalizer.Canonicalize(cellId)

	cell = &contracts.Cell{CanonicalKey: label, Value: value}

	if !s.canonicalizer.IsValidSheetId(sheetId) {
		err = fmt.Errorf("sheet_id `%s`: %w", sheetId, contracts.SheetIdInvalidError)
		return
	}

	if !s.canonicalizer.IsValidCellLabel(label) {
		err = fmt.Errorf("cell_id `%s`: %w", cellId, contracts.CellIdInvalidError)
		return
	}

	formula, tokenizeErr := s.tokenizer.Tokenize(value)
	dependingOnList := ReferencedCells(formula)

	var changedRecords []*contracts.CellRecord

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(sheetIdByte)
		if err != nil {
			return err
		}

		dependants := s.dependencyTree.GetDependants(tx, sheetIdByte, label)
		if err = s.checkCircularReference(label, dependingOnList, dependants); err != nil {
			return err
		}

		pending := map[string]*contracts.CellRecord{}
		getter := NewCellRecordGetterChain(NewCellRecordsMapGetter(pending), s.makeRecordGetter(bucket))
		evaluator := NewFormulaEvaluator(NewCellRecordResolver(getter))

		record := s.evaluateRecord(evaluator, label, value, formula, tokenizeErr)
		pending[label] = record
		changedRecords = append(changedRecords, record)

		for _, dependantCellId := range s.dependencyTree.SortByDependency(tx, sheetIdByte, dependants) {
			stored := s.getRecord(bucket, dependantCellId)
			if stored == nil {
				continue
			}

			dependantFormula, dependantTokenizeErr := s.tokenizer.Tokenize(stored.Formula)
			dependantRecord := s.evaluateRecord(evaluator, dependantCellId, stored.Formula, dependantFormula, dependantTokenizeErr)
			pending[dependantCellId] = dependantRecord
			changedRecords = append(changedRecords, dependantRecord)
		}

		err = s.dependencyTree.SetDependsOn(tx, sheetIdByte, label, dependingOnList)
		if err != nil {
			return err
		}

		for _, changedRecord := range changedRecords {
			err = bucket.Put([]byte(changedRecord.Label), s.serializer.Marshal(changedRecord))
			if err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return
	}

	cell = changedRecords[0].ToCell()
	s.afterCommit(sheetId, changedRecords)
	return
}

func (s *SheetRepository) GetCell(sheetId string, cellId string) (cell *contracts.Cell, err error) {
	sheetId = s.canonicalizer.CanonicalizeSheetId(sheetId)
	label := s.canonicalizer.Canonicalize(cellId)

	err = s.db.View(func(tx *bbolt.Tx) error {
		bucket := s.getSheetBucket(tx, sheetId)
		if bucket == nil {
			return fmt.Errorf("%s: %w", sheetId, contracts.SheetNotFoundError)
		}

		byteValue := bucket.Get([]byte(label))
		if byteValue == nil {
			return fmt.Errorf("%s: %w", cellId, contracts.CellNotFoundError)
		}

		record, err := s.serializer.Unmarshal(byteValue)
		if err != nil {
			return err
		}

		cell = record.ToCell()
		return nil
	})

	return
}

func (s *SheetRepository) GetCellList(sheetId string) (*contracts.CellList, error) {
	sheetId = s.canonicalizer.CanonicalizeSheetId(sheetId)

	cellList := contracts.CellList{}

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := s.getSheetBucket(tx, sheetId)
		if bucket == nil {
			return fmt.Errorf("%s: %w", sheetId, contracts.SheetNotFoundError)
		}

		c := bucket.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			record, err := s.serializer.Unmarshal(v)
			if err != nil {
				s.logger.Warn("skip unreadable cell", "sheet", sheetId, "cell", string(k), "error", err)
				continue
			}
			cellList[record.Label] = record.ToCell()
		}
		return nil
	})

	return &cellList, err
}

// EvaluateFormula evaluates a formula against the current sheet cells without storing it
func (s *SheetRepository) EvaluateFormula(sheetId string, value string) (cell *contracts.Cell, err error) {
	sheetId = s.canonicalizer.CanonicalizeSheetId(sheetId)
	formula, tokenizeErr := s.tokenizer.Tokenize(value)

	err = s.db.View(func(tx *bbolt.Tx) error {
		evaluator := NewFormulaEvaluator(NewCellRecordResolver(s.makeRecordGetter(s.getSheetBucket(tx, sheetId))))
		cell = s.evaluateRecord(evaluator, "", value, formula, tokenizeErr).ToCell()
		return nil
	})

	return
}

func (s *SheetRepository) evaluateRecord(
	evaluator contracts.FormulaEvaluator, label string, value string,
	formula contracts.Formula, tokenizeErr error,
) *contracts.CellRecord {
	record := &contracts.CellRecord{Label: label, Formula: value}

	if tokenizeErr != nil {
		record.Error = contracts.ErrorInvalidFormula
		var syntaxErr *FormulaSyntaxError
		if errors.As(tokenizeErr, &syntaxErr) {
			record.Error = syntaxErr.Kind
		}
		return record
	}

	outcome := evaluator.Evaluate(formula)
	record.Value = outcome.Result
	record.Error = outcome.Error
	return record
}

func (s *SheetRepository) checkCircularReference(label string, dependingOnList []string, dependants []string) error {
	isDependant := map[string]bool{label: true}
	for _, dependantCellId := range dependants {
		isDependant[dependantCellId] = true
	}

	for _, dependingOnCellId := range dependingOnList {
		if isDependant[dependingOnCellId] {
			return fmt.Errorf("%s -> %s: %w", label, dependingOnCellId, contracts.CircularReferenceError)
		}
	}

	return nil
}

func (s *SheetRepository) afterCommit(sheetId string, records []*contracts.CellRecord) {
	if s.webhookDispatcher != nil {
		cells := make([]*contracts.Cell, 0, len(records))
		for _, record := range records {
			cells = append(cells, record.ToCell())
		}
		s.webhookDispatcher.Notify(sheetId, cells)
	}

	if s.history != nil {
		if err := s.history.Append(sheetId, records); err != nil {
			s.logger.Error("append cell history", "sheet", sheetId, "error", err)
		}
	}
}

// getSheetBucket never exposes a reserved bucket as a sheet
func (s *SheetRepository) getSheetBucket(tx *bbolt.Tx, sheetId string) *bbolt.Bucket {
	if !s.canonicalizer.IsValidSheetId(sheetId) {
		return nil
	}
	return tx.Bucket([]byte(sheetId))
}

func (s *SheetRepository) makeRecordGetter(bucket *bbolt.Bucket) contracts.CellRecordGetter {
	return func(label string) *contracts.CellRecord {
		return s.getRecord(bucket, label)
	}
}

func (s *SheetRepository) getRecord(bucket *bbolt.Bucket, label string) *contracts.CellRecord {
	if bucket == nil {
		return nil
	}

	byteValue := bucket.Get([]byte(label))
	if byteValue == nil {
		return nil
	}

	record, err := s.serializer.Unmarshal(byteValue)
	if err != nil {
		s.logger.Warn("skip unreadable cell", "cell", label, "error", err)
		return nil
	}

	return record
}
