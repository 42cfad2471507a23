package stats

import "time"

import "github.com/sirgallo/durability/pkg/logger"
import "github.com/sirgallo/durability/pkg/monitor"


var Log = clog.NewCustomLog(NAME)


/*
	one consistent stats object from the monitor snapshot plus the vbucket
	persisted seqno
*/

func CalculateCurrentStats(adm *monitor.ActiveDurabilityMonitor, persistedSeqno int64) *Stats {
	snapshot := adm.GetMonitorSnapshot()

	currTime := time.Now()
	formattedTime := currTime.Format(time.RFC3339)

	return &Stats{
		NumTracked: snapshot.NumTracked,
		HighPreparedSeqno: snapshot.HighPreparedSeqno,
		LastTrackedSeqno: snapshot.LastTrackedSeqno,
		FirstChainSize: snapshot.FirstChainSize,
		FirstChainMajority: snapshot.FirstChainMajority,
		Nodes: snapshot.Nodes,
		PersistedSeqno: persistedSeqno,
		Timestamp: formattedTime,
	}
}
