package stats

import "github.com/sirgallo/durability/pkg/monitor"


type Stats struct {
	NumTracked int
	HighPreparedSeqno int64
	LastTrackedSeqno int64
	FirstChainSize int
	FirstChainMajority uint8
	Nodes map[string]monitor.NodeStreamSeqnos
	PersistedSeqno int64
	Timestamp string
}

const NAME = "Stats"
