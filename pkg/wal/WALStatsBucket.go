package wal

import bolt "go.etcd.io/bbolt"

import "github.com/sirgallo/durability/pkg/stats"


//=========================================== Write Ahead Log Stats Bucket Ops


/*
	Set Stat
		store the latest stats snapshot keyed by its timestamp
*/

func (wal *WAL) SetStat(statObj stats.Stats) error {
	transaction := func(tx *bolt.Tx) error {
		bucketName := []byte(StatsBucket)
		bucket := tx.Bucket(bucketName)

		value, encErr := stats.EncodeStatObjectToBytes(statObj)
		if encErr != nil { return encErr }

		putErr := bucket.Put([]byte(statObj.Timestamp), value)
		if putErr != nil { return putErr }

		return nil
	}

	setErr := wal.DB.Update(transaction)
	if setErr != nil { return setErr }

	return nil
}

/*
	Get Latest Stat
		point a cursor at the last stored snapshot
*/

func (wal *WAL) GetLatestStat() (*stats.Stats, error) {
	var latest *stats.Stats

	transaction := func(tx *bolt.Tx) error {
		bucketName := []byte(StatsBucket)
		bucket := tx.Bucket(bucketName)

		cursor := bucket.Cursor()
		_, val := cursor.Last()

		if val != nil {
			statObj, decErr := stats.DecodeBytesToStatObject(val)
			if decErr != nil { return decErr }

			latest = statObj
		}

		return nil
	}

	readErr := wal.DB.View(transaction)
	if readErr != nil { return nil, readErr }

	return latest, nil
}
