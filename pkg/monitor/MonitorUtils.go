package monitor

import "sort"

import "github.com/sirgallo/durability/pkg/tracked"


//=========================================== Monitor Utils


/*
	batches drain in prepare seqno order. extraction from multiple streams can
	interleave levels, so order is restored before dispatch
*/

func sortBatchBySeqno(batch []*tracked.SyncWrite) []*tracked.SyncWrite {
	sort.Slice(batch, func(i, j int) bool { return batch[i].Seqno < batch[j].Seqno })
	return batch
}
