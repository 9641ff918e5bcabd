package main

import (
	"github.com/stretchr/testify/assert"
	"go.etcd.io/bbolt"
	"testing"
)

type TransactionCellDependencyTreeDecorator struct {
	t  *testing.T
	db *bbolt.DB
	CellDependencyTree
}

func (tree *TransactionCellDependencyTreeDecorator) SetDependsOn(sheetId []byte, dependantCellId string, dependingOnCellIds []string) (returnErr error) {
	tx, err := tree.db.Begin(true)
	assert.NoError(tree.t, err)

	returnErr = tree.CellDependencyTree.SetDependsOn(tx, sheetId, dependantCellId, dependingOnCellIds)
	assert.NoError(tree.t, tx.Commit())
	return
}

func (tree *TransactionCellDependencyTreeDecorator) read(fn func(tx *bbolt.Tx) []string) []string {
	tx, err := tree.db.Begin(false)
	assert.NoError(tree.t, err)
	defer func() {
		assert.NoError(tree.t, tx.Rollback())
	}()

	return fn(tx)
}

func (tree *TransactionCellDependencyTreeDecorator) GetDependants(sheetId []byte, dependingOnCellId string) []string {
	return tree.read(func(tx *bbolt.Tx) []string {
		return tree.CellDependencyTree.GetDependants(tx, sheetId, dependingOnCellId)
	})
}

func (tree *TransactionCellDependencyTreeDecorator) GetDependingOn(sheetId []byte, dependantCellId string) []string {
	return tree.read(func(tx *bbolt.Tx) []string {
		return tree.CellDependencyTree.GetDependingOn(tx, sheetId, dependantCellId)
	})
}

func (tree *TransactionCellDependencyTreeDecorator) SortByDependency(sheetId []byte, cellIds []string) []string {
	return tree.read(func(tx *bbolt.Tx) []string {
		return tree.CellDependencyTree.SortByDependency(tx, sheetId, cellIds)
	})
}

func NewTransactionCellDependencyTreeDecorator(t *testing.T, db *bbolt.DB) *TransactionCellDependencyTreeDecorator {
	return &TransactionCellDependencyTreeDecorator{t, db, CellDependencyTree{}}
}

func TestCellDependencyTree_GetDependants(t *testing.T) {
	db, closeDb := _createTmpDb()
	defer closeDb()

	t.Run("single-level-deep", func(t *testing.T) {
		tree := NewTransactionCellDependencyTreeDecorator(t, db)
		sheetId := []byte(t.Name())

		err := tree.SetDependsOn(sheetId, "A1", []string{"Z100", "B2", "C3"})
		assert.NoError(t, err)

		assert.Empty(t, tree.GetDependants(sheetId, "A1"))
		assert.Empty(t, tree.GetDependants(sheetId, "X1"))

		assert.Equal(t, []string{"A1"}, tree.GetDependants(sheetId, "B2"))
		assert.Equal(t, []string{"A1"}, tree.GetDependants(sheetId, "C3"))

		err = tree.SetDependsOn(sheetId, "A1", []string{"E5", "Y99", "Z100"})
		assert.NoError(t, err)

		assert.Equal(t, []string{"A1"}, tree.GetDependants(sheetId, "E5"))
		assert.Equal(t, []string{"A1"}, tree.GetDependants(sheetId, "Z100"))
		assert.Empty(t, tree.GetDependants(sheetId, "B2"))
		assert.Empty(t, tree.GetDependants(sheetId, "C3"))

		err = tree.SetDependsOn(sheetId, "A1", []string{})
		assert.NoError(t, err)

		assert.Empty(t, tree.GetDependants(sheetId, "E5"))
		assert.Empty(t, tree.GetDependingOn(sheetId, "A1"))
	})

	t.Run("multi-level-deep", func(t *testing.T) {
		tree := NewTransactionCellDependencyTreeDecorator(t, db)
		sheetId := []byte(t.Name())

		// B1 = A1 + 1; C1 = B1 * 2; D1 = A1 + C1
		assert.NoError(t, tree.SetDependsOn(sheetId, "B1", []string{"A1"}))
		assert.NoError(t, tree.SetDependsOn(sheetId, "C1", []string{"B1"}))
		assert.NoError(t, tree.SetDependsOn(sheetId, "D1", []string{"A1", "C1"}))

		assert.Equal(t, []string{"B1", "C1", "D1"}, tree.GetDependants(sheetId, "A1"))
		assert.Equal(t, []string{"C1", "D1"}, tree.GetDependants(sheetId, "B1"))
		assert.Equal(t, []string{"D1"}, tree.GetDependants(sheetId, "C1"))
		assert.Empty(t, tree.GetDependants(sheetId, "D1"))
	})

	t.Run("circular-reference", func(t *testing.T) {
		tree := NewTransactionCellDependencyTreeDecorator(t, db)
		sheetId := []byte(t.Name())

		err := tree.SetDependsOn(sheetId, "A1", []string{"C20", "C21"})
		assert.NoError(t, err)

		err = tree.SetDependsOn(sheetId, "C20", []string{"C40", "C41"})
		assert.NoError(t, err)

		err = tree.SetDependsOn(sheetId, "C40", []string{"A1"})
		assert.NoError(t, err)

		assert.Equal(t,
			[]string{"C40", "C20"},
			tree.GetDependants(sheetId, "A1"),
		)
	})

	t.Run("error-empty-bucket", func(t *testing.T) {
		tree := NewTransactionCellDependencyTreeDecorator(t, db)
		err := tree.SetDependsOn(nil, "A1", []string{"B2", "C3"})
		assert.Error(t, err)

		assert.Empty(t, tree.GetDependants(nil, "A1"))
		assert.Empty(t, tree.GetDependingOn(nil, "A1"))
	})

	t.Run("error-db-put", func(t *testing.T) {
		tree := NewTransactionCellDependencyTreeDecorator(t, db)
		sheetId := []byte(t.Name())
		bucketId := tree.makeBucketId(sheetId)

		err := db.Update(func(tx *bbolt.Tx) error {
			bucket, err := tx.CreateBucketIfNotExists(bucketId)
			if err != nil {
				return err
			}
			_, err = bucket.CreateBucket(tree.makeDependantKey("A1", "B2"))
			return err
		})
		assert.NoError(t, err)

		err = tree.SetDependsOn(sheetId, "A1", []string{"B2"})
		assert.Error(t, err)
	})
}

func TestCellDependencyTree_GetDependingOn(t *testing.T) {
	db, closeDb := _createTmpDb()
	defer closeDb()

	tree := NewTransactionCellDependencyTreeDecorator(t, db)
	sheetId := []byte(t.Name())

	assert.Empty(t, tree.GetDependingOn(sheetId, "A1"))

	assert.NoError(t, tree.SetDependsOn(sheetId, "A1", []string{"B2", "C3"}))
	assert.Equal(t, []string{"B2", "C3"}, tree.GetDependingOn(sheetId, "A1"))

	assert.NoError(t, tree.SetDependsOn(sheetId, "A1", []string{"C3", "D4"}))
	assert.Equal(t, []string{"C3", "D4"}, tree.GetDependingOn(sheetId, "A1"))
}

func TestCellDependencyTree_SortByDependency(t *testing.T) {
	db, closeDb := _createTmpDb()
	defer closeDb()

	tree := NewTransactionCellDependencyTreeDecorator(t, db)
	sheetId := []byte(t.Name())

	assert.NoError(t, tree.SetDependsOn(sheetId, "B1", []string{"A1"}))
	assert.NoError(t, tree.SetDependsOn(sheetId, "C1", []string{"B1"}))
	assert.NoError(t, tree.SetDependsOn(sheetId, "D1", []string{"A1", "C1"}))

	assert.Equal(t, []string{"B1", "C1", "D1"}, tree.SortByDependency(sheetId, []string{"D1", "C1", "B1"}))
	assert.Equal(t, []string{"B1", "C1", "D1"}, tree.SortByDependency(sheetId, []string{"B1", "D1", "C1"}))
	assert.Equal(t, []string{"D1", "B1"}, tree.SortByDependency(sheetId, []string{"D1", "B1"}))
	assert.Empty(t, tree.SortByDependency(sheetId, []string{}))

	t.Run("stored-cycle", func(t *testing.T) {
		cycleSheetId := []byte(t.Name())
		assert.NoError(t, tree.SetDependsOn(cycleSheetId, "A1", []string{"B1"}))
		assert.NoError(t, tree.SetDependsOn(cycleSheetId, "B1", []string{"A1"}))

		assert.ElementsMatch(t, []string{"A1", "B1"}, tree.SortByDependency(cycleSheetId, []string{"A1", "B1"}))
	})
}
