package vbucket

import "sync/atomic"

import "github.com/sirgallo/durability/pkg/logger"
import "github.com/sirgallo/durability/pkg/wal"


//=========================================== VBucket


/*
	VBucket
		reference owner of the durability monitor: an in-memory table sharded
		into hash buckets, a flusher that persists prepares to the write ahead
		log, and the commit/abort hooks that finalize tracked writes and notify
		the client exactly once

		1.) initialize the hash buckets
		2.) recover the persisted seqno from the latest entry in the WAL, seqno
			assignment resumes above it
*/

func NewVBucket(opts *VBucketOpts) (*VBucket, error) {
	buckets := make([]*hashBucket, NumHashBuckets)
	for idx := range buckets {
		buckets[idx] = &hashBucket{ values: make(map[string]*StoredValue) }
	}

	vb := &VBucket{
		Id: opts.Id,
		WAL: opts.WAL,
		buckets: buckets,
		FlushSignal: make(chan *wal.PrepareEntry, FlushChannelSize),
		ClientResponseChannel: make(chan *DurabilityResponse, ResponseChannelSize),
		Log: *clog.NewCustomLog(NAME),
	}

	latest, latestErr := opts.WAL.GetLatest()
	if latestErr != nil { return nil, latestErr }

	if latest != nil {
		vb.lastSeqno = latest.Seqno
		vb.persistedSeqno = latest.Seqno

		vb.Log.Info("recovered persisted seqno from WAL:", latest.Seqno)
	}

	return vb, nil
}

/*
	the monitor is constructed against the vbucket, so it attaches after both
	exist
*/

func (vb *VBucket) AttachMonitor(monitor DurabilityMonitor) {
	vb.monitor = monitor
}

func (vb *VBucket) PersistedSeqno() int64 {
	return atomic.LoadInt64(&vb.persistedSeqno)
}

func (vb *VBucket) HighSeqno() int64 {
	return atomic.LoadInt64(&vb.lastSeqno)
}

/*
	Start Flusher
		drain prepares from the flush signal into the WAL
			1.) block on the first available entry, then opportunistically drain
				whatever else is queued into the same batch
			2.) persist the batch in one transaction
			3.) advance the persisted seqno to the batch tail
			4.) notify the monitor that local persistence moved, which can commit
				tracked writes waiting on the master disk ack
*/

func (vb *VBucket) StartFlusher() {
	for {
		entry :=<- vb.FlushSignal
		batch := []*wal.PrepareEntry{ entry }

		drained := false
		for ! drained {
			select {
				case next :=<- vb.FlushSignal:
					batch = append(batch, next)
				default:
					drained = true
			}
		}

		flushErr := vb.WAL.RangeAppend(batch)
		if flushErr != nil { vb.Log.Fatal("unable to flush prepares to WAL:", flushErr.Error()) }

		atomic.StoreInt64(&vb.persistedSeqno, batch[len(batch) - 1].Seqno)

		notifyErr := vb.monitor.NotifyLocalPersistence()
		if notifyErr != nil { vb.Log.Fatal("local persistence notification failed:", notifyErr.Error()) }
	}
}
