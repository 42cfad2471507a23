package wal

import bolt "go.etcd.io/bbolt"

import "github.com/sirgallo/durability/pkg/tracked"


type WAL struct {
	DBFile string
	DB *bolt.DB
}

/*
	a prepare as flushed to disk by the vbucket flusher
*/

type PrepareEntry struct {
	Seqno int64
	Key string
	Value string
	Level tracked.Level
}

const NAME = "WAL"

const SubDirectory = ".durability"
const FileName = "durability.db"

const PrepareBucket = "prepare"
const StatsBucket = "stats"
