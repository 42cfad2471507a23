package monitortests

import "errors"
import "testing"
import "time"

import "github.com/sirgallo/durability/pkg/dmerror"
import "github.com/sirgallo/durability/pkg/monitor"
import "github.com/sirgallo/durability/pkg/tracked"


func AddWrite(t *testing.T, adm *monitor.ActiveDurabilityMonitor, cookie string, seqno int64, level tracked.Level, timeoutInMs int64) {
	prepare := &tracked.Prepare{
		Key: "key-" + cookie,
		Seqno: seqno,
		Requirements: tracked.Requirements{ Level: level, TimeoutInMs: timeoutInMs },
	}

	addErr := adm.AddSyncWrite(cookie, prepare)
	if addErr != nil { t.Fatalf("unexpected error on add: %v", addErr) }
}

func TestAddAutoAcksActiveMemory(t *testing.T) {
	adm, _, setupErr := SetupMonitor(`[["A", "B", "C"]]`)
	if setupErr != nil { t.Fatalf("unexpected error on setup: %v", setupErr) }

	AddWrite(t, adm, "c1", 1, tracked.LevelMajority, 0)

	expectedTracked := 1

	t.Logf("actual tracked: %d, expected tracked: %d\n", adm.GetNumTracked(), expectedTracked)
	if adm.GetNumTracked() != expectedTracked {
		t.Errorf("actual tracked not equal to expected: actual(%d), expected(%d)\n", adm.GetNumTracked(), expectedTracked)
	}

	writeSeqnos, writeErr := adm.GetNodeWriteSeqnos("A")
	if writeErr != nil { t.Fatalf("unexpected error on write seqnos: %v", writeErr) }

	ackSeqnos, ackErr := adm.GetNodeAckSeqnos("A")
	if ackErr != nil { t.Fatalf("unexpected error on ack seqnos: %v", ackErr) }

	t.Logf("actual memory write seqno: %d, expected: %d\n", writeSeqnos.Memory, 1)
	if writeSeqnos.Memory != 1 {
		t.Errorf("active memory write seqno not at new entry: actual(%d), expected(%d)\n", writeSeqnos.Memory, 1)
	}

	t.Logf("actual memory ack seqno: %d, expected: %d\n", ackSeqnos.Memory, 1)
	if ackSeqnos.Memory != 1 {
		t.Errorf("active memory ack seqno not at new entry: actual(%d), expected(%d)\n", ackSeqnos.Memory, 1)
	}
}

func TestMajorityCommitOnSingleAck(t *testing.T) {
	adm, mockVB, setupErr := SetupMonitor(`[["A", "B", "C"]]`)
	if setupErr != nil { t.Fatalf("unexpected error on setup: %v", setupErr) }

	AddWrite(t, adm, "c1", 1, tracked.LevelMajority, 0)

	ackErr := adm.SeqnoAckReceived("B", 1)
	if ackErr != nil { t.Fatalf("unexpected error on ack: %v", ackErr) }

	expectedCommits := 1
	expectedTracked := 0

	t.Logf("actual commits: %d, expected commits: %d\n", len(mockVB.Commits), expectedCommits)
	if len(mockVB.Commits) != expectedCommits {
		t.Fatalf("actual commits not equal to expected: actual(%d), expected(%d)\n", len(mockVB.Commits), expectedCommits)
	}

	if mockVB.Commits[0].PrepareSeqno != 1 || mockVB.Commits[0].Cookie != "c1" {
		t.Errorf("committed wrong write: actual(%v)\n", mockVB.Commits[0])
	}

	t.Logf("actual tracked: %d, expected tracked: %d\n", adm.GetNumTracked(), expectedTracked)
	if adm.GetNumTracked() != expectedTracked {
		t.Errorf("actual tracked not equal to expected: actual(%d), expected(%d)\n", adm.GetNumTracked(), expectedTracked)
	}
}

func TestAckCoveringMultipleWritesCommitsInOrder(t *testing.T) {
	adm, mockVB, setupErr := SetupMonitor(`[["A", "B", "C"]]`)
	if setupErr != nil { t.Fatalf("unexpected error on setup: %v", setupErr) }

	AddWrite(t, adm, "c1", 1, tracked.LevelMajority, 0)
	AddWrite(t, adm, "c2", 2, tracked.LevelMajority, 0)

	ackErr := adm.SeqnoAckReceived("B", 2)
	if ackErr != nil { t.Fatalf("unexpected error on ack: %v", ackErr) }

	expectedCommits := 2

	t.Logf("actual commits: %d, expected commits: %d\n", len(mockVB.Commits), expectedCommits)
	if len(mockVB.Commits) != expectedCommits {
		t.Fatalf("actual commits not equal to expected: actual(%d), expected(%d)\n", len(mockVB.Commits), expectedCommits)
	}

	t.Logf("commits drain in prepare seqno order")

	if mockVB.Commits[0].PrepareSeqno != 1 || mockVB.Commits[1].PrepareSeqno != 2 {
		t.Errorf("commits out of order: actual(%v)\n", mockVB.Commits)
	}

	if adm.GetNumTracked() != 0 {
		t.Errorf("tracked should be empty: actual(%d)\n", adm.GetNumTracked())
	}

	t.Logf("the acking node position survives the removals")

	writeSeqnos, writeErr := adm.GetNodeWriteSeqnos("B")
	if writeErr != nil { t.Fatalf("unexpected error on write seqnos: %v", writeErr) }

	if writeSeqnos.Memory != 2 {
		t.Errorf("last write seqno should be retained after removal: actual(%d), expected(%d)\n", writeSeqnos.Memory, 2)
	}
}

func TestPersistToMajorityWaitsForLocalPersistence(t *testing.T) {
	adm, mockVB, setupErr := SetupMonitor(`[["A", "B"]]`)
	if setupErr != nil { t.Fatalf("unexpected error on setup: %v", setupErr) }

	AddWrite(t, adm, "c1", 1, tracked.LevelPersistToMajority, 0)

	ackErr := adm.SeqnoAckReceived("B", 1)
	if ackErr != nil { t.Fatalf("unexpected error on ack: %v", ackErr) }

	t.Logf("replica ack alone does not commit, the master disk ack is missing")

	if len(mockVB.Commits) != 0 {
		t.Fatalf("no commit expected before local persistence: actual(%d)\n", len(mockVB.Commits))
	}

	mockVB.SetPersistedSeqno(1)

	notifyErr := adm.NotifyLocalPersistence()
	if notifyErr != nil { t.Fatalf("unexpected error on notify: %v", notifyErr) }

	expectedCommits := 1

	t.Logf("actual commits: %d, expected commits: %d\n", len(mockVB.Commits), expectedCommits)
	if len(mockVB.Commits) != expectedCommits {
		t.Fatalf("actual commits not equal to expected: actual(%d), expected(%d)\n", len(mockVB.Commits), expectedCommits)
	}

	if adm.GetNumTracked() != 0 {
		t.Errorf("tracked should be empty: actual(%d)\n", adm.GetNumTracked())
	}
}

func TestMajorityAndPersistOnMaster(t *testing.T) {
	adm, mockVB, setupErr := SetupMonitor(`[["A", "B"]]`)
	if setupErr != nil { t.Fatalf("unexpected error on setup: %v", setupErr) }

	AddWrite(t, adm, "c1", 1, tracked.LevelMajorityAndPersistOnMaster, 0)

	ackErr := adm.SeqnoAckReceived("B", 1)
	if ackErr != nil { t.Fatalf("unexpected error on ack: %v", ackErr) }

	if len(mockVB.Commits) != 0 {
		t.Fatalf("memory majority without master disk ack should not commit")
	}

	mockVB.SetPersistedSeqno(1)

	notifyErr := adm.NotifyLocalPersistence()
	if notifyErr != nil { t.Fatalf("unexpected error on notify: %v", notifyErr) }

	if len(mockVB.Commits) != 1 {
		t.Fatalf("master disk ack should complete the write: actual(%d)\n", len(mockVB.Commits))
	}
}

func TestProcessTimeout(t *testing.T) {
	adm, mockVB, setupErr := SetupMonitor(`[["A", "B", "C"]]`)
	if setupErr != nil { t.Fatalf("unexpected error on setup: %v", setupErr) }

	start := time.Now()

	AddWrite(t, adm, "c1", 1, tracked.LevelMajority, 100)

	t.Logf("sweep before the deadline is a no-op")

	timeoutErr := adm.ProcessTimeout(start.Add(50 * time.Millisecond))
	if timeoutErr != nil { t.Fatalf("unexpected error on sweep: %v", timeoutErr) }

	if len(mockVB.Aborts) != 0 || adm.GetNumTracked() != 1 {
		t.Fatalf("nothing should expire before the deadline: aborts(%d), tracked(%d)\n", len(mockVB.Aborts), adm.GetNumTracked())
	}

	t.Logf("sweep past the deadline aborts the write")

	timeoutErr = adm.ProcessTimeout(start.Add(300 * time.Millisecond))
	if timeoutErr != nil { t.Fatalf("unexpected error on sweep: %v", timeoutErr) }

	expectedAborts := 1

	t.Logf("actual aborts: %d, expected aborts: %d\n", len(mockVB.Aborts), expectedAborts)
	if len(mockVB.Aborts) != expectedAborts {
		t.Fatalf("actual aborts not equal to expected: actual(%d), expected(%d)\n", len(mockVB.Aborts), expectedAborts)
	}

	if mockVB.Aborts[0].Cookie != "c1" {
		t.Errorf("aborted wrong cookie: actual(%s)\n", mockVB.Aborts[0].Cookie)
	}

	if adm.GetNumTracked() != 0 {
		t.Errorf("tracked should be empty after abort: actual(%d)\n", adm.GetNumTracked())
	}
}

func TestTimeoutSkipsWritesWithoutDeadline(t *testing.T) {
	adm, mockVB, setupErr := SetupMonitor(`[["A", "B", "C"]]`)
	if setupErr != nil { t.Fatalf("unexpected error on setup: %v", setupErr) }

	AddWrite(t, adm, "c1", 1, tracked.LevelMajority, 0)
	AddWrite(t, adm, "c2", 2, tracked.LevelMajority, 50)

	timeoutErr := adm.ProcessTimeout(time.Now().Add(time.Hour))
	if timeoutErr != nil { t.Fatalf("unexpected error on sweep: %v", timeoutErr) }

	t.Logf("only the write with a deadline expires, the scan covers interior entries")

	if len(mockVB.Aborts) != 1 || mockVB.Aborts[0].PrepareSeqno != 2 {
		t.Fatalf("expected only seqno 2 aborted: actual(%v)\n", mockVB.Aborts)
	}

	if adm.GetNumTracked() != 1 {
		t.Errorf("write without deadline should remain tracked: actual(%d)\n", adm.GetNumTracked())
	}
}

func TestTopologyChangeRetainsTrackedWrites(t *testing.T) {
	adm, mockVB, setupErr := SetupMonitor(`[["A", "B", "C"]]`)
	if setupErr != nil { t.Fatalf("unexpected error on setup: %v", setupErr) }

	AddWrite(t, adm, "c1", 1, tracked.LevelMajority, 0)
	AddWrite(t, adm, "c2", 2, tracked.LevelMajority, 0)

	ackErr := adm.SeqnoAckReceived("B", 1)
	if ackErr != nil { t.Fatalf("unexpected error on ack: %v", ackErr) }

	t.Logf("seqno 1 commits on the old chain before the topology change")

	if len(mockVB.Commits) != 1 || mockVB.Commits[0].PrepareSeqno != 1 {
		t.Fatalf("expected seqno 1 committed on old topology: actual(%v)\n", mockVB.Commits)
	}

	topologyErr := adm.SetReplicationTopology([]byte(`[["A", "X", "Y"]]`))
	if topologyErr != nil { t.Fatalf("unexpected error on topology change: %v", topologyErr) }

	t.Logf("in-flight writes survive the change with re-scoped ack state")

	if adm.GetNumTracked() != 1 {
		t.Fatalf("seqno 2 should still be tracked: actual(%d)\n", adm.GetNumTracked())
	}

	t.Logf("the active auto memory ack survives through replay")

	ackSeqnos, ackSeqnoErr := adm.GetNodeAckSeqnos("A")
	if ackSeqnoErr != nil { t.Fatalf("unexpected error on ack seqnos: %v", ackSeqnoErr) }

	if ackSeqnos.Memory != 2 {
		t.Errorf("active memory ack should be replayed: actual(%d), expected(%d)\n", ackSeqnos.Memory, 2)
	}

	t.Logf("an ack from a new chain node completes the write")

	ackErr = adm.SeqnoAckReceived("X", 2)
	if ackErr != nil { t.Fatalf("unexpected error on ack: %v", ackErr) }

	if len(mockVB.Commits) != 2 || mockVB.Commits[1].PrepareSeqno != 2 {
		t.Fatalf("expected seqno 2 committed on new topology: actual(%v)\n", mockVB.Commits)
	}

	if adm.GetNumTracked() != 0 {
		t.Errorf("tracked should be empty: actual(%d)\n", adm.GetNumTracked())
	}
}

func TestTopologyChangeDropsOldAcks(t *testing.T) {
	adm, mockVB, setupErr := SetupMonitor(`[["A", "B", "C"]]`)
	if setupErr != nil { t.Fatalf("unexpected error on setup: %v", setupErr) }

	AddWrite(t, adm, "c1", 1, tracked.LevelPersistToMajority, 0)

	ackErr := adm.SeqnoAckReceived("B", 1)
	if ackErr != nil { t.Fatalf("unexpected error on ack: %v", ackErr) }

	topologyErr := adm.SetReplicationTopology([]byte(`[["A", "X", "Y"]]`))
	if topologyErr != nil { t.Fatalf("unexpected error on topology change: %v", topologyErr) }

	t.Logf("acks from nodes dropped from the chain do not linger")

	ackErr = adm.SeqnoAckReceived("X", 1)
	if ackErr != nil { t.Fatalf("unexpected error on ack: %v", ackErr) }

	if len(mockVB.Commits) != 0 {
		t.Fatalf("disk majority should need two of the new chain, B's old ack must not count: actual(%v)\n", mockVB.Commits)
	}

	ackErr = adm.SeqnoAckReceived("Y", 1)
	if ackErr != nil { t.Fatalf("unexpected error on ack: %v", ackErr) }

	if len(mockVB.Commits) != 1 {
		t.Fatalf("two new chain disk acks should commit: actual(%d)\n", len(mockVB.Commits))
	}
}

func TestTopologySetIsIdempotent(t *testing.T) {
	adm, mockVB, setupErr := SetupMonitor(`[["A", "B", "C"]]`)
	if setupErr != nil { t.Fatalf("unexpected error on setup: %v", setupErr) }

	AddWrite(t, adm, "c1", 1, tracked.LevelPersistToMajority, 0)

	ackErr := adm.SeqnoAckReceived("B", 1)
	if ackErr != nil { t.Fatalf("unexpected error on ack: %v", ackErr) }

	topologyErr := adm.SetReplicationTopology([]byte(`[["A", "B", "C"]]`))
	if topologyErr != nil { t.Fatalf("unexpected error on topology re-set: %v", topologyErr) }

	t.Logf("re-setting the same topology replays node state back to equivalence")

	if adm.GetNumTracked() != 1 {
		t.Errorf("tracked should be unchanged: actual(%d)\n", adm.GetNumTracked())
	}

	if len(mockVB.Commits) != 0 {
		t.Errorf("no commits expected from an identical re-set: actual(%d)\n", len(mockVB.Commits))
	}

	ackSeqnos, ackSeqnoErr := adm.GetNodeAckSeqnos("B")
	if ackSeqnoErr != nil { t.Fatalf("unexpected error on ack seqnos: %v", ackSeqnoErr) }

	if ackSeqnos.Memory != 1 || ackSeqnos.Disk != 1 {
		t.Errorf("replayed ack seqnos not equal to expected: actual(%d, %d), expected(1, 1)\n", ackSeqnos.Memory, ackSeqnos.Disk)
	}
}

func TestAckReplayAndRegressionAreBenign(t *testing.T) {
	adm, mockVB, setupErr := SetupMonitor(`[["A", "B", "C"]]`)
	if setupErr != nil { t.Fatalf("unexpected error on setup: %v", setupErr) }

	AddWrite(t, adm, "c1", 1, tracked.LevelPersistToMajority, 0)
	AddWrite(t, adm, "c2", 2, tracked.LevelPersistToMajority, 0)

	ackErr := adm.SeqnoAckReceived("B", 2)
	if ackErr != nil { t.Fatalf("unexpected error on ack: %v", ackErr) }

	t.Logf("the same ack replayed is equivalent to the first alone")

	ackErr = adm.SeqnoAckReceived("B", 2)
	if ackErr != nil { t.Fatalf("replayed ack should be benign: %v", ackErr) }

	t.Logf("a strictly lower ack is a no-op and does not regress state")

	ackErr = adm.SeqnoAckReceived("B", 1)
	if ackErr != nil { t.Fatalf("lower ack should be benign: %v", ackErr) }

	ackSeqnos, ackSeqnoErr := adm.GetNodeAckSeqnos("B")
	if ackSeqnoErr != nil { t.Fatalf("unexpected error on ack seqnos: %v", ackSeqnoErr) }

	if ackSeqnos.Memory != 2 || ackSeqnos.Disk != 2 {
		t.Errorf("ack seqnos should not regress: actual(%d, %d), expected(2, 2)\n", ackSeqnos.Memory, ackSeqnos.Disk)
	}

	if len(mockVB.Commits) != 0 || adm.GetNumTracked() != 2 {
		t.Errorf("no commits expected, both writes still tracked: commits(%d), tracked(%d)\n", len(mockVB.Commits), adm.GetNumTracked())
	}
}

func TestAckFromUnknownNode(t *testing.T) {
	adm, _, setupErr := SetupMonitor(`[["A", "B", "C"]]`)
	if setupErr != nil { t.Fatalf("unexpected error on setup: %v", setupErr) }

	ackErr := adm.SeqnoAckReceived("Z", 1)
	if ackErr == nil { t.Fatalf("expected error for unknown node, got nil") }

	if ! errors.Is(ackErr, dmerror.ErrInvalidArgument) {
		t.Errorf("expected invalid argument error, got: %v", ackErr)
	}
}

func TestOperationsWithoutTopology(t *testing.T) {
	mockVB := NewMockVBucket()
	adm := SetupMonitorWithoutTopology(mockVB)

	prepare := &tracked.Prepare{
		Key: "key",
		Seqno: 1,
		Requirements: tracked.Requirements{ Level: tracked.LevelMajority },
	}

	addErr := adm.AddSyncWrite("c1", prepare)
	if addErr == nil { t.Fatalf("expected error on add without topology, got nil") }

	if ! errors.Is(addErr, dmerror.ErrLogic) {
		t.Errorf("expected logic error, got: %v", addErr)
	}

	ackErr := adm.SeqnoAckReceived("B", 1)
	if ackErr == nil { t.Fatalf("expected error on ack without topology, got nil") }

	if ! errors.Is(ackErr, dmerror.ErrLogic) {
		t.Errorf("expected logic error, got: %v", ackErr)
	}
}

func TestAddValidation(t *testing.T) {
	adm, _, setupErr := SetupMonitor(`[["A", "B", "C"]]`)
	if setupErr != nil { t.Fatalf("unexpected error on setup: %v", setupErr) }

	t.Logf("level none is rejected")

	noneErr := adm.AddSyncWrite("c1", &tracked.Prepare{
		Key: "key",
		Seqno: 1,
		Requirements: tracked.Requirements{ Level: tracked.LevelNone },
	})

	if ! errors.Is(noneErr, dmerror.ErrInvalidArgument) {
		t.Errorf("expected invalid argument error for level none, got: %v", noneErr)
	}

	t.Logf("prepare seqnos must strictly increase")

	AddWrite(t, adm, "c2", 5, tracked.LevelMajority, 0)

	regressErr := adm.AddSyncWrite("c3", &tracked.Prepare{
		Key: "key",
		Seqno: 5,
		Requirements: tracked.Requirements{ Level: tracked.LevelMajority },
	})

	if ! errors.Is(regressErr, dmerror.ErrMonotonicViolation) {
		t.Errorf("expected monotonic violation for repeated seqno, got: %v", regressErr)
	}
}

func TestAddWhileDurabilityImpossible(t *testing.T) {
	adm, _, setupErr := SetupMonitor(`[["A", null, null]]`)
	if setupErr != nil { t.Fatalf("unexpected error on setup: %v", setupErr) }

	t.Logf("one assigned node out of three cannot reach the majority of 2")

	if adm.IsDurabilityPossible() {
		t.Fatalf("durability should not be possible")
	}

	addErr := adm.AddSyncWrite("c1", &tracked.Prepare{
		Key: "key",
		Seqno: 1,
		Requirements: tracked.Requirements{ Level: tracked.LevelMajority },
	})

	if ! errors.Is(addErr, dmerror.ErrLogic) {
		t.Errorf("expected logic error, got: %v", addErr)
	}
}

func TestSingleNodeChainCommitsOnPersistence(t *testing.T) {
	adm, mockVB, setupErr := SetupMonitor(`[["A"]]`)
	if setupErr != nil { t.Fatalf("unexpected error on setup: %v", setupErr) }

	AddWrite(t, adm, "c1", 1, tracked.LevelMajority, 0)

	t.Logf("majority of 1 is satisfied at add, the next trigger completes it")

	mockVB.SetPersistedSeqno(1)

	notifyErr := adm.NotifyLocalPersistence()
	if notifyErr != nil { t.Fatalf("unexpected error on notify: %v", notifyErr) }

	if len(mockVB.Commits) != 1 || mockVB.Commits[0].PrepareSeqno != 1 {
		t.Fatalf("expected commit on the persistence trigger: actual(%v)\n", mockVB.Commits)
	}
}

func TestWipeTracked(t *testing.T) {
	adm, mockVB, setupErr := SetupMonitor(`[["A", "B", "C"]]`)
	if setupErr != nil { t.Fatalf("unexpected error on setup: %v", setupErr) }

	AddWrite(t, adm, "c1", 1, tracked.LevelMajority, 0)
	AddWrite(t, adm, "c2", 2, tracked.LevelMajority, 0)
	AddWrite(t, adm, "c3", 3, tracked.LevelMajority, 0)

	removed, wipeErr := adm.WipeTracked()
	if wipeErr != nil { t.Fatalf("unexpected error on wipe: %v", wipeErr) }

	expectedRemoved := 3

	t.Logf("actual removed: %d, expected removed: %d\n", removed, expectedRemoved)
	if removed != expectedRemoved {
		t.Errorf("actual removed not equal to expected: actual(%d), expected(%d)\n", removed, expectedRemoved)
	}

	if adm.GetNumTracked() != 0 {
		t.Errorf("tracked should be empty after wipe: actual(%d)\n", adm.GetNumTracked())
	}

	t.Logf("wipe notifies nobody, commit and abort stay with the caller")

	if len(mockVB.Commits) != 0 || len(mockVB.Aborts) != 0 {
		t.Errorf("no hooks expected on wipe: commits(%d), aborts(%d)\n", len(mockVB.Commits), len(mockVB.Aborts))
	}

	t.Logf("a later ack against the wiped log is a no-op")

	ackErr := adm.SeqnoAckReceived("B", 3)
	if ackErr != nil { t.Fatalf("unexpected error on ack after wipe: %v", ackErr) }

	if len(mockVB.Commits) != 0 {
		t.Errorf("no commits expected after wipe: actual(%d)\n", len(mockVB.Commits))
	}
}

func TestMonitorSnapshot(t *testing.T) {
	adm, _, setupErr := SetupMonitor(`[["A", "B", null]]`)
	if setupErr != nil { t.Fatalf("unexpected error on setup: %v", setupErr) }

	AddWrite(t, adm, "c1", 1, tracked.LevelPersistToMajority, 0)
	AddWrite(t, adm, "c2", 2, tracked.LevelPersistToMajority, 0)

	ackErr := adm.SeqnoAckReceived("B", 1)
	if ackErr != nil { t.Fatalf("unexpected error on ack: %v", ackErr) }

	snapshot := adm.GetMonitorSnapshot()

	if snapshot.NumTracked != 2 {
		t.Errorf("actual tracked not equal to expected: actual(%d), expected(%d)\n", snapshot.NumTracked, 2)
	}

	if snapshot.LastTrackedSeqno != 2 {
		t.Errorf("actual last tracked not equal to expected: actual(%d), expected(%d)\n", snapshot.LastTrackedSeqno, 2)
	}

	if snapshot.HighPreparedSeqno != 0 {
		t.Errorf("high prepared seqno is reported as 0: actual(%d)\n", snapshot.HighPreparedSeqno)
	}

	if snapshot.FirstChainSize != 2 || snapshot.FirstChainMajority != 2 {
		t.Errorf("chain stats not equal to expected: size(%d), majority(%d)\n", snapshot.FirstChainSize, snapshot.FirstChainMajority)
	}

	nodeB, ok := snapshot.Nodes["B"]
	if !ok { t.Fatalf("snapshot should carry per-node seqnos for B") }

	if nodeB.MemoryWriteSeqno != 1 || nodeB.MemoryAckSeqno != 1 {
		t.Errorf("node B memory seqnos not equal to expected: actual(%d, %d), expected(1, 1)\n", nodeB.MemoryWriteSeqno, nodeB.MemoryAckSeqno)
	}

	t.Logf("ack seqno is always at or above write seqno per node and stream")

	for node, seqnos := range snapshot.Nodes {
		if seqnos.MemoryAckSeqno < seqnos.MemoryWriteSeqno || seqnos.DiskAckSeqno < seqnos.DiskWriteSeqno {
			t.Errorf("ack below write seqno for node %s: %v\n", node, seqnos)
		}
	}
}

func TestTrackedSeqnosAscending(t *testing.T) {
	adm, _, setupErr := SetupMonitor(`[["A", "B", "C"]]`)
	if setupErr != nil { t.Fatalf("unexpected error on setup: %v", setupErr) }

	AddWrite(t, adm, "c1", 2, tracked.LevelMajority, 0)
	AddWrite(t, adm, "c2", 4, tracked.LevelMajority, 0)
	AddWrite(t, adm, "c3", 9, tracked.LevelMajority, 0)

	seqnos := adm.GetTrackedSeqnos()

	expected := []int64{ 2, 4, 9 }

	t.Logf("actual seqnos: %v, expected seqnos: %v\n", seqnos, expected)

	if len(seqnos) != len(expected) {
		t.Fatalf("actual total not equal to expected: actual(%d), expected(%d)\n", len(seqnos), len(expected))
	}

	for idx, seqno := range seqnos {
		if seqno != expected[idx] {
			t.Errorf("tracked seqnos not in prepare order: actual(%v), expected(%v)\n", seqnos, expected)
		}
	}
}
