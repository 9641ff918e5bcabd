package main

import (
	"bytes"
	"go.etcd.io/bbolt"
)

// CellDependencyTree stores both directions of formula references in a bbolt bucket per sheet:
//   - `\0\0<dependant>` => `<dependingOn>\0<dependingOn>...` (what the formula refers to)
//   - `<dependingOn>\0<dependant>` => empty (so dependants are a prefix scan away)
type CellDependencyTree struct{}

const Delimiter = byte(0x00)

// DependencyBucketPrefix is reserved: sheet ids must not start with it
const DependencyBucketPrefix = "__d_"

func (t *CellDependencyTree) SetDependsOn(tx *bbolt.Tx, sheetId []byte, dependantCellId string, dependingOnCellIds []string) (err error) {
	cellDependingListKey := t.makeDependingListKey(dependantCellId)

	var bucket *bbolt.Bucket
	bucket, err = tx.CreateBucketIfNotExists(t.makeBucketId(sheetId))
	if err != nil {
		return err
	}

	previousDependingListToDelete := map[string]bool{}
	for _, previousDependingOnCellId := range t.splitDependingList(bucket.Get(cellDependingListKey)) {
		previousDependingListToDelete[previousDependingOnCellId] = true
	}

	addedRecords := false
	for _, dependingOnCellId := range dependingOnCellIds {
		if previousDependingListToDelete[dependingOnCellId] {
			// edge is already saved, keep it
			delete(previousDependingListToDelete, dependingOnCellId)
			continue
		}

		addedRecords = true
		err = bucket.Put(t.makeDependantKey(dependantCellId, dependingOnCellId), []byte{})
		if err != nil {
			return err
		}
	}

	if !addedRecords && len(previousDependingListToDelete) == 0 {
		return nil
	}

	for previousDependingOnCellId := range previousDependingListToDelete {
		err = bucket.Delete(t.makeDependantKey(dependantCellId, previousDependingOnCellId))
		if err != nil {
			return err
		}
	}

	if len(dependingOnCellIds) == 0 {
		return bucket.Delete(cellDependingListKey)
	}

	newDependingOnCellIds := make([][]byte, 0, len(dependingOnCellIds))
	for _, dependingOnCellId := range dependingOnCellIds {
		newDependingOnCellIds = append(newDependingOnCellIds, []byte(dependingOnCellId))
	}
	return bucket.Put(cellDependingListKey, bytes.Join(newDependingOnCellIds, []byte{Delimiter}))
}

func (t *CellDependencyTree) GetDependants(tx *bbolt.Tx, sheetId []byte, dependingOnCellId string) []string {
	bucket := t.getBucket(tx, sheetId)
	if bucket == nil {
		return []string{}
	}

	return t.fetchDependantsRecursive(bucket, dependingOnCellId, map[string]bool{
		dependingOnCellId: true,
	})
}

func (t *CellDependencyTree) GetDependingOn(tx *bbolt.Tx, sheetId []byte, dependantCellId string) []string {
	bucket := t.getBucket(tx, sheetId)
	if bucket == nil {
		return []string{}
	}

	return t.splitDependingList(bucket.Get(t.makeDependingListKey(dependantCellId)))
}

func (t *CellDependencyTree) SortByDependency(tx *bbolt.Tx, sheetId []byte, cellIds []string) []string {
	inList := make(map[string]bool, len(cellIds))
	for _, cellId := range cellIds {
		inList[cellId] = true
	}

	sorted := make([]string, 0, len(cellIds))
	visited := make(map[string]bool, len(cellIds))

	var visit func(cellId string)
	visit = func(cellId string) {
		if visited[cellId] {
			return
		}
		// marked before recursion, so a stored cycle cannot loop forever
		visited[cellId] = true

		for _, dependingOnCellId := range t.GetDependingOn(tx, sheetId, cellId) {
			if inList[dependingOnCellId] {
				visit(dependingOnCellId)
			}
		}
		sorted = append(sorted, cellId)
	}

	for _, cellId := range cellIds {
		visit(cellId)
	}

	return sorted
}

func (t *CellDependencyTree) getBucket(tx *bbolt.Tx, sheetId []byte) *bbolt.Bucket {
	bucketId := t.makeBucketId(sheetId)
	if bucketId == nil {
		return nil
	}

	return tx.Bucket(bucketId)
}

func (t *CellDependencyTree) makeBucketId(sheetId []byte) []byte {
	if len(sheetId) == 0 {
		return nil
	}

	return append([]byte(DependencyBucketPrefix), sheetId...)
}

func (t *CellDependencyTree) fetchDependantsRecursive(bucket *bbolt.Bucket, dependingOnCellId string, alreadyFetched map[string]bool) []string {
	dependants := make([]string, 0)

	for _, dependantCellId := range t.fetchCellDependants(bucket, dependingOnCellId) {
		if alreadyFetched[dependantCellId] {
			continue
		}

		alreadyFetched[dependantCellId] = true
		dependants = append(dependants, dependantCellId)
		dependants = append(dependants, t.fetchDependantsRecursive(bucket, dependantCellId, alreadyFetched)...)
	}

	return dependants
}

func (t *CellDependencyTree) fetchCellDependants(bucket *bbolt.Bucket, dependingOnCellId string) []string {
	dependantCellIds := make([]string, 0, 5)
	c := bucket.Cursor()

	prefix := t.makeDependingOnPrefixKey(dependingOnCellId)
	prefixLength := len(prefix)
	for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
		dependantCellIds = append(dependantCellIds, string(k[prefixLength:]))
	}

	return dependantCellIds
}

func (t *CellDependencyTree) splitDependingList(value []byte) []string {
	if len(value) == 0 {
		return []string{}
	}

	parts := bytes.Split(value, []byte{Delimiter})
	cellIds := make([]string, 0, len(parts))
	for _, part := range parts {
		cellIds = append(cellIds, string(part))
	}
	return cellIds
}

func (t *CellDependencyTree) makeDependingListKey(dependantCellId string) []byte {
	return append(
		[]byte{Delimiter, Delimiter},
		[]byte(dependantCellId)...,
	)
}

func (t *CellDependencyTree) makeDependingOnPrefixKey(dependingOnCellId string) []byte {
	return append([]byte(dependingOnCellId), Delimiter)
}

func (t *CellDependencyTree) makeDependantKey(dependantCellId string, dependingOnCellId string) []byte {
	return append(t.makeDependingOnPrefixKey(dependingOnCellId), []byte(dependantCellId)...)
}
