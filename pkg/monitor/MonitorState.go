package monitor

import "time"

import "github.com/sirgallo/durability/pkg/chain"
import "github.com/sirgallo/durability/pkg/dmerror"
import "github.com/sirgallo/durability/pkg/tracked"


//=========================================== Monitor State Ops

// every method in this file expects the caller to hold the write lock


/*
	last acked seqnos per stream for every node present in both the current
	chain and the incoming chain. replayed after a topology swap so acks
	already reported by surviving nodes are not silently lost
*/

func (adm *ActiveDurabilityMonitor) retainedAckSeqnos(incoming *chain.ReplicationChain) map[string]NodeSeqnos {
	retained := make(map[string]NodeSeqnos)
	if adm.firstChain == nil { return retained }

	for node, nodePos := range adm.firstChain.Positions {
		if ! incoming.HasNode(node) { continue }

		retained[node] = NodeSeqnos{
			Memory: nodePos.Memory.LastAckSeqno.Get(),
			Disk: nodePos.Disk.LastAckSeqno.Get(),
		}
	}

	return retained
}

/*
	successor of the node cursor on a stream. the before-first sentinel
	precedes the head of the tracked list
*/

func (adm *ActiveDurabilityMonitor) getNodeNext(node string, stream tracked.Stream) (*tracked.Element, error) {
	position := adm.firstChain.Position(node, stream)
	if position == nil { return nil, dmerror.Logic("no position for node: %s", node) }

	return adm.trackedWrites.Next(position.Cursor), nil
}

/*
	advance the node cursor one step on a stream
		1.) move the cursor onto its successor, the caller guarantees one exists
		2.) pin lastWriteSeqno to the pointed sync write so the seqno survives a
			later removal of that write
		3.) record the node ack on the pointed sync write
*/

func (adm *ActiveDurabilityMonitor) advanceNodePosition(node string, stream tracked.Stream) (*tracked.Element, error) {
	position := adm.firstChain.Position(node, stream)
	if position == nil { return nil, dmerror.Logic("no position for node: %s", node) }

	next := adm.trackedWrites.Next(position.Cursor)
	if next == nil { return nil, dmerror.Logic("cursor advance past end of tracked list for node: %s", node) }

	position.Cursor = next

	writeSeqnoErr := position.LastWriteSeqno.Set(next.SyncWrite.Seqno)
	if writeSeqnoErr != nil { return nil, writeSeqnoErr }

	recordErr := next.SyncWrite.RecordAck(node, stream)
	if recordErr != nil { return nil, recordErr }

	return next, nil
}

/*
	pin the highest seqno a node has reported on a stream

	replicas may legally re-report an old seqno, the stored value never moves
	backward so a lower report is dropped here
*/

func (adm *ActiveDurabilityMonitor) updateNodeAck(node string, stream tracked.Stream, seqno int64) error {
	position := adm.firstChain.Position(node, stream)
	if position == nil { return dmerror.Logic("no position for node: %s", node) }

	if seqno < position.LastAckSeqno.Get() { return nil }

	return position.LastAckSeqno.Set(seqno)
}

/*
	splice one sync write out of the tracked list
		1.) removal at the sentinel is a broken invariant
		2.) every cursor pointing at the removed element, any node, any stream,
			is repositioned onto the in-list predecessor, or back to the sentinel
			when the element was the head
		3.) ownership of the sync write moves to the caller
*/

func (adm *ActiveDurabilityMonitor) removeSyncWrite(elem *tracked.Element) (*tracked.SyncWrite, error) {
	if elem == nil { return nil, dmerror.Logic("remove at before-first sentinel") }

	prev, removeErr := adm.trackedWrites.Remove(elem)
	if removeErr != nil { return nil, removeErr }

	if adm.firstChain != nil {
		for _, nodePos := range adm.firstChain.Positions {
			if nodePos.Memory.Cursor == elem { nodePos.Memory.Cursor = prev }
			if nodePos.Disk.Cursor == elem { nodePos.Disk.Cursor = prev }
		}
	}

	return elem.SyncWrite, nil
}

/*
	run one stream of one node up to an acked seqno
		1.) advance the cursor while the successor exists and its prepare seqno
			is within the ack
		2.) each advance marks the node ack on the pointed sync write. if the
			write is now satisfied it is spliced into the commit batch under this
			same lock acquisition
		3.) finally pin the reported ack seqno for the node
*/

func (adm *ActiveDurabilityMonitor) processSeqnoAck(node string, stream tracked.Stream, ackSeqno int64, toCommit *[]*tracked.SyncWrite) error {
	for {
		next, nextErr := adm.getNodeNext(node, stream)
		if nextErr != nil { return nextErr }

		if next == nil || next.SyncWrite.Seqno > ackSeqno { break }

		advanced, advanceErr := adm.advanceNodePosition(node, stream)
		if advanceErr != nil { return advanceErr }

		satisfied, satisfiedErr := advanced.SyncWrite.IsSatisfied()
		if satisfiedErr != nil { return satisfiedErr }

		if satisfied {
			removed, removeErr := adm.removeSyncWrite(advanced)
			if removeErr != nil { return removeErr }

			*toCommit = append(*toCommit, removed)
		}
	}

	return adm.updateNodeAck(node, stream, ackSeqno)
}

/*
	splice every tracked write whose deadline has passed into the abort batch.
	deadlines are independent per write, the scan covers the whole list
*/

func (adm *ActiveDurabilityMonitor) removeExpired(asOf time.Time, toAbort *[]*tracked.SyncWrite) error {
	elem := adm.trackedWrites.Front()

	for elem != nil {
		next := adm.trackedWrites.Next(elem)

		if elem.SyncWrite.IsExpired(asOf) {
			removed, removeErr := adm.removeSyncWrite(elem)
			if removeErr != nil { return removeErr }

			*toAbort = append(*toAbort, removed)
		}

		elem = next
	}

	return nil
}
