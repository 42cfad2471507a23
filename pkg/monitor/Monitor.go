package monitor

import "fmt"
import "time"

import "github.com/sirgallo/durability/pkg/chain"
import "github.com/sirgallo/durability/pkg/dmerror"
import "github.com/sirgallo/durability/pkg/logger"
import "github.com/sirgallo/durability/pkg/monotonic"
import "github.com/sirgallo/durability/pkg/tracked"


//=========================================== Active Durability Monitor


/*
	Active Durability Monitor
		tracks in-flight sync writes on the active node, consumes replica seqno
		acks and local persistence notifications along the current replication
		topology, and drives each tracked write to commit or abort

		every entry point follows the same shape: decide and splice a batch under
		the state lock, release the lock, then drain the batch through the
		vbucket hooks. the hooks re-enter the vbucket hash-bucket locks, holding
		the state lock across them would invert the front-end lock order
*/

func NewActiveDurabilityMonitor(opts *ActiveDurabilityMonitorOpts) *ActiveDurabilityMonitor {
	return &ActiveDurabilityMonitor{
		vb: opts.VBucket,
		trackedWrites: tracked.NewTrackedList(),
		lastTrackedSeqno: monotonic.NewStrict[int64](0),
		Log: *clog.NewCustomLog(NAME),
	}
}

/*
	Set Replication Topology
		1.) parse and validate the pushed topology, only the first chain is
			honoured
		2.) under the write lock, swap in a freshly constructed chain whose
			cursors all start at the before-first sentinel of the preserved
			tracked list
		3.) re-scope the ack tally of every tracked write to the new chain, then
			replay the last acked seqnos of every node retained across the change
			through the normal advance path
		4.) replay can complete writes (e.g. the majority shrank), so drain any
			extracted batch after releasing the lock
*/

func (adm *ActiveDurabilityMonitor) SetReplicationTopology(topologyJSON []byte) error {
	chains, parseErr := chain.ParseReplicationTopology(topologyJSON)
	if parseErr != nil { return parseErr }

	firstChain, chainErr := chain.NewReplicationChain(chains[0])
	if chainErr != nil { return chainErr }

	var toCommit []*tracked.SyncWrite

	applyErr := func() error {
		adm.mutex.Lock()
		defer adm.mutex.Unlock()

		retained := adm.retainedAckSeqnos(firstChain)
		adm.firstChain = firstChain

		for elem := adm.trackedWrites.Front(); elem != nil; elem = adm.trackedWrites.Next(elem) {
			elem.SyncWrite.ResetAcks(firstChain.Active, firstChain.Majority, firstChain.DefinedNodes())
		}

		for _, node := range firstChain.DefinedNodes() {
			seqnos, wasRetained := retained[node]
			if ! wasRetained { continue }

			memErr := adm.processSeqnoAck(node, tracked.StreamMemory, seqnos.Memory, &toCommit)
			if memErr != nil { return memErr }

			diskErr := adm.processSeqnoAck(node, tracked.StreamDisk, seqnos.Disk, &toCommit)
			if diskErr != nil { return diskErr }
		}

		return nil
	}()

	if applyErr != nil { return applyErr }

	return adm.dispatchCommits(sortBatchBySeqno(toCommit))
}

/*
	Add Sync Write
		preconditions: a tracked level other than none, and a chain that can
		still reach majority. the prepare seqno must strictly exceed the last
		tracked seqno

		under the write lock:
			1.) append the new sync write at the tail of the tracked list
			2.) the item is already enqueued in the checkpoint of the active, so
				its memory tracking has implicitly advanced: move the active memory
				cursor onto the new tail and mark the memory ack
			3.) record the active memory ack seqno
*/

func (adm *ActiveDurabilityMonitor) AddSyncWrite(cookie string, prepare *tracked.Prepare) error {
	if prepare.Requirements.Level == tracked.LevelNone {
		return dmerror.InvalidArgument("level none cannot be tracked")
	}

	if ! tracked.IsValidLevel(prepare.Requirements.Level) {
		return dmerror.InvalidArgument("unknown durability level: %s", prepare.Requirements.Level)
	}

	if prepare.Seqno <= 0 { return dmerror.InvalidArgument("non-positive prepare seqno: %d", prepare.Seqno) }

	if ! adm.IsDurabilityPossible() {
		return dmerror.Logic("durability not possible with current chain")
	}

	adm.mutex.Lock()
	defer adm.mutex.Unlock()

	if adm.firstChain == nil { return dmerror.Logic("replication topology not set") }

	if prepare.Seqno <= adm.lastTrackedSeqno.Get() {
		return fmt.Errorf("%w: prepare seqno %d not above last tracked %d", dmerror.ErrMonotonicViolation, prepare.Seqno, adm.lastTrackedSeqno.Get())
	}

	syncWrite := tracked.NewSyncWrite(cookie, prepare, adm.firstChain.Active, adm.firstChain.Majority, adm.firstChain.DefinedNodes())
	adm.trackedWrites.Append(syncWrite)

	active := adm.firstChain.Active

	advanced, advanceErr := adm.advanceNodePosition(active, tracked.StreamMemory)
	if advanceErr != nil { return advanceErr }

	if advanced.SyncWrite != syncWrite {
		return dmerror.Logic("active memory cursor not at new tail after add")
	}

	ackErr := adm.updateNodeAck(active, tracked.StreamMemory, prepare.Seqno)
	if ackErr != nil { return ackErr }

	return adm.lastTrackedSeqno.Set(prepare.Seqno)
}

/*
	Seqno Ack Received
		a replica reports the highest prepared seqno it has durably enqueued.
		the contract carries a single prepared seqno that advances the memory and
		disk cursors identically

		satisfied writes are spliced into a local batch under the write lock and
		committed after it is released
*/

func (adm *ActiveDurabilityMonitor) SeqnoAckReceived(node string, preparedSeqno int64) error {
	if preparedSeqno <= 0 { return dmerror.InvalidArgument("non-positive acked seqno: %d", preparedSeqno) }

	var toCommit []*tracked.SyncWrite

	ackErr := func() error {
		adm.mutex.Lock()
		defer adm.mutex.Unlock()

		if adm.firstChain == nil { return dmerror.Logic("replication topology not set") }

		if ! adm.firstChain.HasNode(node) {
			return dmerror.InvalidArgument("node not in first chain: %s", node)
		}

		memErr := adm.processSeqnoAck(node, tracked.StreamMemory, preparedSeqno, &toCommit)
		if memErr != nil { return memErr }

		diskErr := adm.processSeqnoAck(node, tracked.StreamDisk, preparedSeqno, &toCommit)
		if diskErr != nil { return diskErr }

		return nil
	}()

	if ackErr != nil { return ackErr }

	return adm.dispatchCommits(sortBatchBySeqno(toCommit))
}

/*
	Notify Local Persistence
		the flusher reports that the on-disk seqno of the vbucket advanced.
		everything up to the persisted seqno is durable on the active, so run the
		disk stream of the active against it
*/

func (adm *ActiveDurabilityMonitor) NotifyLocalPersistence() error {
	persistedSeqno := adm.vb.PersistedSeqno()

	var toCommit []*tracked.SyncWrite

	notifyErr := func() error {
		adm.mutex.Lock()
		defer adm.mutex.Unlock()

		if adm.firstChain == nil { return dmerror.Logic("replication topology not set") }

		return adm.processSeqnoAck(adm.firstChain.Active, tracked.StreamDisk, persistedSeqno, &toCommit)
	}()

	if notifyErr != nil { return notifyErr }

	return adm.dispatchCommits(sortBatchBySeqno(toCommit))
}

/*
	Process Timeout
		scan the whole tracked list, every write has an independent deadline.
		expired writes are spliced into a local batch under the write lock and
		aborted after it is released
*/

func (adm *ActiveDurabilityMonitor) ProcessTimeout(asOf time.Time) error {
	var toAbort []*tracked.SyncWrite

	expireErr := func() error {
		adm.mutex.Lock()
		defer adm.mutex.Unlock()

		return adm.removeExpired(asOf, &toAbort)
	}()

	if expireErr != nil { return expireErr }

	return adm.dispatchAborts(toAbort)
}

/*
	Wipe Tracked
		remove every tracked write, rewiring all cursors back to the before-first
		sentinel. no commit or abort is invoked, the caller owns client
		notification. returns the number of removed writes
*/

func (adm *ActiveDurabilityMonitor) WipeTracked() (int, error) {
	adm.mutex.Lock()
	defer adm.mutex.Unlock()

	removed := 0

	elem := adm.trackedWrites.Front()
	for elem != nil {
		next := adm.trackedWrites.Next(elem)

		_, removeErr := adm.removeSyncWrite(elem)
		if removeErr != nil { return removed, removeErr }

		removed++
		elem = next
	}

	return removed, nil
}

func (adm *ActiveDurabilityMonitor) IsDurabilityPossible() bool {
	adm.mutex.RLock()
	defer adm.mutex.RUnlock()

	return adm.firstChain != nil && adm.firstChain.IsDurabilityPossible()
}


//========================================== dispatch


/*
	drain a commit batch outside the state lock

	a non-success return from the vbucket commit hook is treated as a broken
	invariant and surfaced to the caller
*/

func (adm *ActiveDurabilityMonitor) dispatchCommits(batch []*tracked.SyncWrite) error {
	for _, syncWrite := range batch {
		commitErr := adm.vb.Commit(syncWrite.Key, syncWrite.Seqno, syncWrite.Cookie)
		if commitErr != nil {
			adm.Log.Error("commit hook failed for key:", syncWrite.Key, "seqno:", syncWrite.Seqno)
			return fmt.Errorf("%w: %s", dmerror.ErrCommitFailed, commitErr.Error())
		}
	}

	return nil
}

func (adm *ActiveDurabilityMonitor) dispatchAborts(batch []*tracked.SyncWrite) error {
	for _, syncWrite := range batch {
		abortErr := adm.vb.Abort(syncWrite.Key, syncWrite.Seqno, syncWrite.Cookie)
		if abortErr != nil {
			adm.Log.Error("abort hook failed for key:", syncWrite.Key, "seqno:", syncWrite.Seqno)
			return fmt.Errorf("%w: %s", dmerror.ErrAbortFailed, abortErr.Error())
		}
	}

	return nil
}
