package wal

import "os"
import "path/filepath"

import bolt "go.etcd.io/bbolt"

import "github.com/sirgallo/durability/pkg/logger"


//=========================================== Write Ahead Log


var Log = clog.NewCustomLog(NAME)

/*
	Write Ahead Log
		destination of the vbucket flusher, holds every locally persisted prepare
			1.) open the db using the provided path
			2.) create the prepare and stats buckets if they do not already exist
*/

func NewWAL(path string) (*WAL, error) {
	db, openErr := bolt.Open(path, 0600, nil)
	if openErr != nil { return nil, openErr }

	initTransaction := func(tx *bolt.Tx) error {
		prepareName := []byte(PrepareBucket)
		_, createPrepareErr := tx.CreateBucketIfNotExists(prepareName)
		if createPrepareErr != nil { return createPrepareErr }

		statsName := []byte(StatsBucket)
		_, createStatsErr := tx.CreateBucketIfNotExists(statsName)
		if createStatsErr != nil { return createStatsErr }

		return nil
	}

	bucketErr := db.Update(initTransaction)
	if bucketErr != nil { return nil, bucketErr }

	return &WAL{
		DBFile: path,
		DB: db,
	}, nil
}

/*
	default location under the user home directory
*/

func DefaultPath() (string, error) {
	homedir, homeErr := os.UserHomeDir()
	if homeErr != nil { return "", homeErr }

	dbDir := filepath.Join(homedir, SubDirectory)

	mkErr := os.MkdirAll(dbDir, 0755)
	if mkErr != nil { return "", mkErr }

	return filepath.Join(dbDir, FileName), nil
}

func (wal *WAL) Close() error {
	return wal.DB.Close()
}
