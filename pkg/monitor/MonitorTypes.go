package monitor

import "sync"

import "github.com/sirgallo/durability/pkg/chain"
import "github.com/sirgallo/durability/pkg/logger"
import "github.com/sirgallo/durability/pkg/monotonic"
import "github.com/sirgallo/durability/pkg/tracked"


/*
	the subset of the vbucket surface the monitor calls back into

	the commit and abort hooks acquire the vbucket hash-bucket lock internally,
	so the monitor must never invoke them while holding its own state lock
*/

type VBucket interface {
	Commit(key string, prepareSeqno int64, cookie string) error
	Abort(key string, prepareSeqno int64, cookie string) error
	PersistedSeqno() int64
}

type ActiveDurabilityMonitorOpts struct {
	VBucket VBucket
}

type ActiveDurabilityMonitor struct {
	vb VBucket

	// guards trackedWrites, firstChain and every position as one atomic domain
	mutex sync.RWMutex
	trackedWrites *tracked.TrackedList
	firstChain *chain.ReplicationChain
	lastTrackedSeqno monotonic.Strict[int64]

	Log clog.CustomLog
}

type NodeSeqnos struct {
	Memory int64
	Disk int64
}

type NodeStreamSeqnos struct {
	MemoryWriteSeqno int64
	MemoryAckSeqno int64
	DiskWriteSeqno int64
	DiskAckSeqno int64
}

/*
	read-only view over the monitor state for the stats surface
*/

type MonitorSnapshot struct {
	NumTracked int
	HighPreparedSeqno int64
	LastTrackedSeqno int64
	FirstChainSize int
	FirstChainMajority uint8
	Nodes map[string]NodeStreamSeqnos
}

const NAME = "DurabilityMonitor"
