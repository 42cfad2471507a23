package chain

import "github.com/sirgallo/durability/pkg/dmerror"
import "github.com/sirgallo/durability/pkg/tracked"


//=========================================== Replication Chain


/*
	construct a chain from an ordered node list
		1.) the chain must be non empty and within the max size of one active
			plus max replicas
		2.) the first node is the active and can never be undefined
		3.) register a fresh position pair for every assigned node, cursors start
			at the before-first sentinel of the tracked list
		4.) duplicate assigned nodes are rejected
		5.) majority is the arithmetic majority over the full chain length,
			undefined slots included
*/

func NewReplicationChain(nodes []string) (*ReplicationChain, error) {
	if len(nodes) == 0 { return nil, dmerror.InvalidArgument("chain cannot be empty") }

	if len(nodes) > 1 + MaxReplicas {
		return nil, dmerror.InvalidArgument("too many nodes in chain: %d", len(nodes))
	}

	if nodes[0] == UndefinedNode {
		return nil, dmerror.InvalidArgument("active node cannot be undefined")
	}

	positions := make(map[string]*NodePosition)

	for _, node := range nodes {
		if node == UndefinedNode { continue }

		_, exists := positions[node]
		if exists { return nil, dmerror.InvalidArgument("duplicate node in chain: %s", node) }

		positions[node] = &NodePosition{}
	}

	return &ReplicationChain{
		Active: nodes[0],
		Nodes: nodes,
		Positions: positions,
		Majority: uint8(len(nodes) / 2 + 1),
	}, nil
}

/*
	number of assigned nodes in the chain
*/

func (rChain *ReplicationChain) Size() int {
	return len(rChain.Positions)
}

func (rChain *ReplicationChain) HasNode(node string) bool {
	_, ok := rChain.Positions[node]
	return ok
}

/*
	durability is possible while at least majority nodes are assigned
*/

func (rChain *ReplicationChain) IsDurabilityPossible() bool {
	return rChain.Size() >= int(rChain.Majority)
}

func (rChain *ReplicationChain) DefinedNodes() []string {
	var defined []string
	for _, node := range rChain.Nodes {
		if node != UndefinedNode { defined = append(defined, node) }
	}

	return defined
}

/*
	position for a node and stream pair, nil if the node is not in the chain
*/

func (rChain *ReplicationChain) Position(node string, stream tracked.Stream) *Position {
	nodePos, ok := rChain.Positions[node]
	if !ok { return nil }

	if stream == tracked.StreamMemory { return &nodePos.Memory }
	return &nodePos.Disk
}
