package vbucket

import "errors"
import "sync/atomic"

import "github.com/sirgallo/durability/pkg/tracked"
import "github.com/sirgallo/durability/pkg/wal"


//=========================================== VBucket Operations


/*
	Prepare Sync Write
		front-end write path for a durable operation
			1.) fail fast while the current topology cannot reach majority
			2.) under the hash bucket lock for the key: reject an overlapping
				in-flight prepare, assign the next seqno and insert the prepared
				value
			3.) register the prepare with the monitor while still holding the hash
				bucket lock. the monitor acquires its state lock under this one,
				which is why its hooks may never run the other way around
			4.) on a monitor rejection the prepared value is rolled back and the
				error surfaced to the caller
			5.) hand the prepare to the flusher last
*/

func (vb *VBucket) PrepareSyncWrite(op *DurabilityOperation) error {
	if vb.monitor == nil { return errors.New("no monitor attached") }

	if ! vb.monitor.IsDurabilityPossible() {
		return errors.New("durability requirements cannot be met by the current topology")
	}

	bucket := vb.bucketForKey(op.Key)

	bucket.mutex.Lock()
	defer bucket.mutex.Unlock()

	existing, exists := bucket.values[op.Key]
	if exists && existing.State == StatePrepared {
		return errors.New("sync write already in flight for key: " + op.Key)
	}

	seqno := atomic.AddInt64(&vb.lastSeqno, 1)

	storedValue := &StoredValue{
		Key: op.Key,
		Value: op.Value,
		PrepareSeqno: seqno,
		State: StatePrepared,
		Cookie: op.RequestID,
		Requirements: tracked.Requirements{ Level: op.Level, TimeoutInMs: op.TimeoutInMs },
	}

	bucket.values[op.Key] = storedValue

	prepare := &tracked.Prepare{
		Key: op.Key,
		Seqno: seqno,
		Requirements: storedValue.Requirements,
	}

	addErr := vb.monitor.AddSyncWrite(op.RequestID, prepare)
	if addErr != nil {
		if exists {
			bucket.values[op.Key] = existing
		} else { delete(bucket.values, op.Key) }

		return addErr
	}

	// enqueued only once tracked: the flusher notification for this seqno must
	// not be able to race ahead of monitor registration
	vb.FlushSignal <- &wal.PrepareEntry{
		Seqno: seqno,
		Key: op.Key,
		Value: op.Value,
		Level: op.Level,
	}

	return nil
}

/*
	Commit
		invoked by the monitor dispatch loop once durability requirements are
		met, never under the monitor state lock
			1.) under the hash bucket lock, locate the prepared value for the key
				and verify it matches the prepare seqno
			2.) assign the commit seqno and flip the value to committed
			3.) notify the client cookie exactly once
*/

func (vb *VBucket) Commit(key string, prepareSeqno int64, cookie string) error {
	bucket := vb.bucketForKey(key)

	bucket.mutex.Lock()

	storedValue, exists := bucket.values[key]
	if ! exists || storedValue.State != StatePrepared || storedValue.PrepareSeqno != prepareSeqno {
		bucket.mutex.Unlock()
		return errors.New("no matching prepare to commit for key: " + key)
	}

	storedValue.CommitSeqno = atomic.AddInt64(&vb.lastSeqno, 1)
	storedValue.State = StateCommitted

	bucket.mutex.Unlock()

	vb.ClientResponseChannel <- &DurabilityResponse{
		RequestID: cookie,
		Key: key,
		PrepareSeqno: prepareSeqno,
		Outcome: OutcomeCommitted,
	}

	return nil
}

/*
	Abort
		invoked by the monitor dispatch loop for a timed out prepare, never
		under the monitor state lock. the prepared value is dropped and the
		client cookie notified exactly once
*/

func (vb *VBucket) Abort(key string, prepareSeqno int64, cookie string) error {
	bucket := vb.bucketForKey(key)

	bucket.mutex.Lock()

	storedValue, exists := bucket.values[key]
	if ! exists || storedValue.State != StatePrepared || storedValue.PrepareSeqno != prepareSeqno {
		bucket.mutex.Unlock()
		return errors.New("no matching prepare to abort for key: " + key)
	}

	delete(bucket.values, key)

	bucket.mutex.Unlock()

	vb.ClientResponseChannel <- &DurabilityResponse{
		RequestID: cookie,
		Key: key,
		PrepareSeqno: prepareSeqno,
		Outcome: OutcomeAborted,
	}

	return nil
}

/*
	committed read surface, prepared values are invisible until commit
*/

func (vb *VBucket) Get(key string) (*StoredValue, bool) {
	bucket := vb.bucketForKey(key)

	bucket.mutex.Lock()
	defer bucket.mutex.Unlock()

	storedValue, exists := bucket.values[key]
	if ! exists || storedValue.State != StateCommitted { return nil, false }

	copied := *storedValue
	return &copied, true
}
