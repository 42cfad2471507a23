package wal

import "bytes"

import bolt "go.etcd.io/bbolt"


//=========================================== Write Ahead Log Prepare Bucket Ops


/*
	Append
		create a read-write transaction for the bucket to append a single prepare
			1.) get the prepare bucket
			2.) transform the entry and seqno to byte arrays
			3.) put the key and value in the bucket
*/

func (wal *WAL) Append(entry *PrepareEntry) error {
	transaction := func(tx *bolt.Tx) error {
		bucketName := []byte(PrepareBucket)
		bucket := tx.Bucket(bucketName)

		key := ConvertIntToBytes(entry.Seqno)

		value, transformErr := TransformPrepareEntryToBytes(entry)
		if transformErr != nil { return transformErr }

		putErr := bucket.Put(key, value)
		if putErr != nil { return putErr }

		return nil
	}

	appendErr := wal.DB.Update(transaction)
	if appendErr != nil { return appendErr }

	return nil
}

/*
	Range Append
		same as single Append for a batch of prepares under one transaction
*/

func (wal *WAL) RangeAppend(entries []*PrepareEntry) error {
	transaction := func(tx *bolt.Tx) error {
		bucketName := []byte(PrepareBucket)
		bucket := tx.Bucket(bucketName)

		for _, entry := range entries {
			key := ConvertIntToBytes(entry.Seqno)

			value, transformErr := TransformPrepareEntryToBytes(entry)
			if transformErr != nil { return transformErr }

			putErr := bucket.Put(key, value)
			if putErr != nil { return putErr }
		}

		return nil
	}

	rangeUpdateErr := wal.DB.Update(transaction)
	if rangeUpdateErr != nil { return rangeUpdateErr }

	return nil
}

/*
	Read
		create a read transaction for getting the prepare at a seqno
*/

func (wal *WAL) Read(seqno int64) (*PrepareEntry, error) {
	var entry *PrepareEntry

	transaction := func(tx *bolt.Tx) error {
		bucketName := []byte(PrepareBucket)
		bucket := tx.Bucket(bucketName)

		key := ConvertIntToBytes(seqno)

		val := bucket.Get(key)
		if val == nil { return nil }

		incoming, transformErr := TransformBytesToPrepareEntry(val)
		if transformErr != nil { return transformErr }

		entry = incoming

		return nil
	}

	readErr := wal.DB.View(transaction)
	if readErr != nil { return nil, readErr }

	return entry, nil
}

/*
	Get Range
		create a read transaction for a seqno range of prepares
			1.) create a cursor for the bucket
			2.) seek from the specified start seqno and iterate until end
			3.) for each value, transform from byte array to entry and append
*/

func (wal *WAL) GetRange(startSeqno int64, endSeqno int64) ([]*PrepareEntry, error) {
	var entries []*PrepareEntry

	transaction := func(tx *bolt.Tx) error {
		bucketName := []byte(PrepareBucket)
		bucket := tx.Bucket(bucketName)

		startKey := ConvertIntToBytes(startSeqno)
		endKey := ConvertIntToBytes(endSeqno)

		cursor := bucket.Cursor()

		for key, val := cursor.Seek(startKey); key != nil && bytes.Compare(key, endKey) <= 0; key, val = cursor.Next() {
			if val != nil {
				entry, transformErr := TransformBytesToPrepareEntry(val)
				if transformErr != nil { return transformErr }

				entries = append(entries, entry)
			}
		}

		return nil
	}

	readErr := wal.DB.View(transaction)
	if readErr != nil { return nil, readErr }

	return entries, nil
}

/*
	Get Latest
		point a cursor at the last element in the bucket to recover the highest
		persisted seqno on startup
*/

func (wal *WAL) GetLatest() (*PrepareEntry, error) {
	var latestEntry *PrepareEntry

	transaction := func(tx *bolt.Tx) error {
		bucketName := []byte(PrepareBucket)
		bucket := tx.Bucket(bucketName)

		cursor := bucket.Cursor()
		_, val := cursor.Last()

		if val != nil {
			entry, transformErr := TransformBytesToPrepareEntry(val)
			if transformErr != nil { return transformErr }

			latestEntry = entry
		} else { latestEntry = nil }

		return nil
	}

	readErr := wal.DB.View(transaction)
	if readErr != nil { return nil, readErr }

	return latestEntry, nil
}

/*
	Get Total
		total persisted prepares in the bucket
*/

func (wal *WAL) GetTotal() (int, error) {
	totalKeys := 0

	transaction := func(tx *bolt.Tx) error {
		bucketName := []byte(PrepareBucket)
		bucket := tx.Bucket(bucketName)

		cursor := bucket.Cursor()

		for key, _ := cursor.First(); key != nil; key, _ = cursor.Next() {
			totalKeys++
		}

		return nil
	}

	readErr := wal.DB.View(transaction)
	if readErr != nil { return 0, readErr }

	return totalKeys, nil
}
