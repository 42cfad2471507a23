package chain

import "github.com/sirgallo/durability/pkg/monotonic"
import "github.com/sirgallo/durability/pkg/tracked"


// an empty string marks an unassigned replica slot in a chain
const UndefinedNode = ""

// one active plus at most three replicas
const MaxReplicas = 3

/*
	per node, per stream tracking state
		--> Cursor: the last sync write whose ack this node has consumed on this
			stream, nil is the before-first sentinel
		--> LastWriteSeqno: seqno of the sync write at the cursor, retained after
			that write is removed from the tracked list
		--> LastAckSeqno: highest seqno the node has ever reported on this stream
*/

type Position struct {
	Cursor *tracked.Element
	LastWriteSeqno monotonic.Weak[int64]
	LastAckSeqno monotonic.Weak[int64]
}

type NodePosition struct {
	Memory Position
	Disk Position
}

/*
	a replication chain in the topology-push format:
		{active, replica1, replica2, replica3}

	replica slots, but never the active, may be undefined. undefined slots count
	toward chain length for the majority arithmetic but hold no position
*/

type ReplicationChain struct {
	Active string
	Nodes []string
	Positions map[string]*NodePosition
	Majority uint8
}
