package vbucket

import "sync"

import "github.com/sirgallo/durability/pkg/logger"
import "github.com/sirgallo/durability/pkg/tracked"
import "github.com/sirgallo/durability/pkg/wal"


type ValueState string

const (
	StatePrepared ValueState = "prepared"
	StateCommitted ValueState = "committed"
	StateAborted ValueState = "aborted"
)

type StoredValue struct {
	Key string
	Value string
	PrepareSeqno int64
	CommitSeqno int64
	State ValueState
	Cookie string
	Requirements tracked.Requirements
}

/*
	a durable write request as submitted by a client, the request id doubles as
	the cookie notified on completion
*/

type DurabilityOperation struct {
	RequestID string
	RequestOrigin string
	Key string
	Value string
	Level tracked.Level
	TimeoutInMs int64
}

type DurabilityResponse struct {
	RequestID string
	Key string
	PrepareSeqno int64
	Outcome string
	Error string
}

/*
	the monitor surface the vbucket drives
*/

type DurabilityMonitor interface {
	AddSyncWrite(cookie string, prepare *tracked.Prepare) error
	NotifyLocalPersistence() error
	IsDurabilityPossible() bool
}

/*
	hash bucket: one lock shard of the in-memory table

	the shard lock is the outer lock of the system: the front end holds it
	across monitor registration, the monitor hooks re-acquire it only after the
	monitor state lock has been released
*/

type hashBucket struct {
	mutex sync.Mutex
	values map[string]*StoredValue
}

type VBucketOpts struct {
	Id int
	WAL *wal.WAL
}

type VBucket struct {
	Id int
	WAL *wal.WAL

	monitor DurabilityMonitor
	buckets []*hashBucket

	lastSeqno int64
	persistedSeqno int64

	FlushSignal chan *wal.PrepareEntry
	ClientResponseChannel chan *DurabilityResponse

	Log clog.CustomLog
}

const NAME = "VBucket"

const NumHashBuckets = 16
const FlushChannelSize = 100000
const ResponseChannelSize = 100000

const OutcomeCommitted = "committed"
const OutcomeAborted = "aborted"
