package monitortests

import "github.com/sirgallo/durability/pkg/monitor"


/*
	mock of the vbucket surface the monitor calls back into

	records every commit and abort in dispatch order so tests can assert both
	membership and ordering
*/

type FinalizedOp struct {
	Key string
	PrepareSeqno int64
	Cookie string
}

type MockVBucket struct {
	Commits []FinalizedOp
	Aborts []FinalizedOp

	persistedSeqno int64
}

func NewMockVBucket() *MockVBucket {
	return &MockVBucket{}
}

func (vb *MockVBucket) Commit(key string, prepareSeqno int64, cookie string) error {
	vb.Commits = append(vb.Commits, FinalizedOp{ Key: key, PrepareSeqno: prepareSeqno, Cookie: cookie })
	return nil
}

func (vb *MockVBucket) Abort(key string, prepareSeqno int64, cookie string) error {
	vb.Aborts = append(vb.Aborts, FinalizedOp{ Key: key, PrepareSeqno: prepareSeqno, Cookie: cookie })
	return nil
}

func (vb *MockVBucket) PersistedSeqno() int64 {
	return vb.persistedSeqno
}

func (vb *MockVBucket) SetPersistedSeqno(seqno int64) {
	vb.persistedSeqno = seqno
}

func SetupMonitorWithoutTopology(mockVB *MockVBucket) *monitor.ActiveDurabilityMonitor {
	return monitor.NewActiveDurabilityMonitor(&monitor.ActiveDurabilityMonitorOpts{ VBucket: mockVB })
}

func SetupMonitor(topologyJSON string) (*monitor.ActiveDurabilityMonitor, *MockVBucket, error) {
	mockVB := NewMockVBucket()

	adm := monitor.NewActiveDurabilityMonitor(&monitor.ActiveDurabilityMonitorOpts{ VBucket: mockVB })

	topologyErr := adm.SetReplicationTopology([]byte(topologyJSON))
	if topologyErr != nil { return nil, nil, topologyErr }

	return adm, mockVB, nil
}
