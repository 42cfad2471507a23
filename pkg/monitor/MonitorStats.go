package monitor

import "github.com/sirgallo/durability/pkg/dmerror"


//=========================================== Monitor Stats

// read-only surface, all reads take the read lock


func (adm *ActiveDurabilityMonitor) GetNumTracked() int {
	adm.mutex.RLock()
	defer adm.mutex.RUnlock()

	return adm.trackedWrites.Size()
}

/*
	highest prepare seqno that is locally durable. reported as 0 until the
	exact definition lands upstream
*/

func (adm *ActiveDurabilityMonitor) GetHighPreparedSeqno() int64 {
	return 0
}

func (adm *ActiveDurabilityMonitor) GetLastTrackedSeqno() int64 {
	adm.mutex.RLock()
	defer adm.mutex.RUnlock()

	return adm.lastTrackedSeqno.Get()
}

func (adm *ActiveDurabilityMonitor) GetFirstChainSize() int {
	adm.mutex.RLock()
	defer adm.mutex.RUnlock()

	if adm.firstChain == nil { return 0 }
	return adm.firstChain.Size()
}

func (adm *ActiveDurabilityMonitor) GetFirstChainMajority() uint8 {
	adm.mutex.RLock()
	defer adm.mutex.RUnlock()

	if adm.firstChain == nil { return 0 }
	return adm.firstChain.Majority
}

func (adm *ActiveDurabilityMonitor) GetNodeWriteSeqnos(node string) (*NodeSeqnos, error) {
	adm.mutex.RLock()
	defer adm.mutex.RUnlock()

	if adm.firstChain == nil { return nil, dmerror.Logic("replication topology not set") }

	nodePos, ok := adm.firstChain.Positions[node]
	if !ok { return nil, dmerror.InvalidArgument("node not in first chain: %s", node) }

	return &NodeSeqnos{
		Memory: nodePos.Memory.LastWriteSeqno.Get(),
		Disk: nodePos.Disk.LastWriteSeqno.Get(),
	}, nil
}

func (adm *ActiveDurabilityMonitor) GetNodeAckSeqnos(node string) (*NodeSeqnos, error) {
	adm.mutex.RLock()
	defer adm.mutex.RUnlock()

	if adm.firstChain == nil { return nil, dmerror.Logic("replication topology not set") }

	nodePos, ok := adm.firstChain.Positions[node]
	if !ok { return nil, dmerror.InvalidArgument("node not in first chain: %s", node) }

	return &NodeSeqnos{
		Memory: nodePos.Memory.LastAckSeqno.Get(),
		Disk: nodePos.Disk.LastAckSeqno.Get(),
	}, nil
}

func (adm *ActiveDurabilityMonitor) GetTrackedSeqnos() []int64 {
	adm.mutex.RLock()
	defer adm.mutex.RUnlock()

	var seqnos []int64
	for elem := adm.trackedWrites.Front(); elem != nil; elem = adm.trackedWrites.Next(elem) {
		seqnos = append(seqnos, elem.SyncWrite.Seqno)
	}

	return seqnos
}

/*
	one consistent view of the whole monitor under a single read lock
	acquisition, for the stats surface
*/

func (adm *ActiveDurabilityMonitor) GetMonitorSnapshot() *MonitorSnapshot {
	adm.mutex.RLock()
	defer adm.mutex.RUnlock()

	snapshot := &MonitorSnapshot{
		NumTracked: adm.trackedWrites.Size(),
		HighPreparedSeqno: 0,
		LastTrackedSeqno: adm.lastTrackedSeqno.Get(),
		Nodes: make(map[string]NodeStreamSeqnos),
	}

	if adm.firstChain == nil { return snapshot }

	snapshot.FirstChainSize = adm.firstChain.Size()
	snapshot.FirstChainMajority = adm.firstChain.Majority

	for node, nodePos := range adm.firstChain.Positions {
		snapshot.Nodes[node] = NodeStreamSeqnos{
			MemoryWriteSeqno: nodePos.Memory.LastWriteSeqno.Get(),
			MemoryAckSeqno: nodePos.Memory.LastAckSeqno.Get(),
			DiskWriteSeqno: nodePos.Disk.LastWriteSeqno.Get(),
			DiskAckSeqno: nodePos.Disk.LastAckSeqno.Get(),
		}
	}

	return snapshot
}
