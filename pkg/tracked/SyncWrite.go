package tracked

import "fmt"
import "time"

import "github.com/sirgallo/durability/pkg/dmerror"


//=========================================== Sync Write


/*
	create a new sync write for tracking
		1.) compute the expiry deadline from the requirement timeout, zero timeout
			means the write never expires
		2.) initialize the ack tally with an empty ack pair for every assigned node
			in the chain
*/

func NewSyncWrite(cookie string, prepare *Prepare, active string, majority uint8, nodes []string) *SyncWrite {
	var deadline *time.Time
	if prepare.Requirements.TimeoutInMs > 0 {
		expiry := time.Now().Add(time.Duration(prepare.Requirements.TimeoutInMs) * time.Millisecond)
		deadline = &expiry
	}

	acks := make(map[string]*Ack)
	for _, node := range nodes {
		acks[node] = &Ack{}
	}

	return &SyncWrite{
		Cookie: cookie,
		Key: prepare.Key,
		Seqno: prepare.Seqno,
		Requirements: prepare.Requirements,
		ExpiryDeadline: deadline,
		active: active,
		majority: majority,
		acks: acks,
	}
}

/*
	record an ack from a node on one of the two streams
		--> the flag for a node and stream pair flips false to true at most once
			over the sync write lifetime, a second attempt is a duplicate ack
*/

func (sw *SyncWrite) RecordAck(node string, stream Stream) error {
	ack, ok := sw.acks[node]
	if !ok { return dmerror.Logic("ack from node not in tally: %s", node) }

	switch stream {
		case StreamMemory:
			if ack.Memory {
				return fmt.Errorf("%w: node %s stream %s seqno %d", dmerror.ErrDuplicateAck, node, stream, sw.Seqno)
			}

			ack.Memory = true
			sw.ackCount.Memory++
		case StreamDisk:
			if ack.Disk {
				return fmt.Errorf("%w: node %s stream %s seqno %d", dmerror.ErrDuplicateAck, node, stream, sw.Seqno)
			}

			ack.Disk = true
			sw.ackCount.Disk++
		default:
			return dmerror.Logic("unknown stream: %s", stream)
	}

	return nil
}

/*
	check the durability requirement against the current ack tally
		--> Majority: memory acks reached majority
		--> MajorityAndPersistOnMaster: memory acks reached majority and the
			active node has acked disk
		--> PersistToMajority: disk acks reached majority
*/

func (sw *SyncWrite) IsSatisfied() (bool, error) {
	switch sw.Requirements.Level {
		case LevelMajority:
			return sw.ackCount.Memory >= sw.majority, nil
		case LevelMajorityAndPersistOnMaster:
			activeAck, ok := sw.acks[sw.active]
			if !ok { return false, dmerror.Logic("active node missing from ack tally: %s", sw.active) }

			return sw.ackCount.Memory >= sw.majority && activeAck.Disk, nil
		case LevelPersistToMajority:
			return sw.ackCount.Disk >= sw.majority, nil
		default:
			return false, dmerror.Logic("satisfaction check at level: %s", sw.Requirements.Level)
	}
}

/*
	a sync write with no deadline never expires
*/

func (sw *SyncWrite) IsExpired(asOf time.Time) bool {
	if sw.ExpiryDeadline == nil { return false }
	return ! sw.ExpiryDeadline.After(asOf)
}

/*
	re-scope the ack tally to a new replication chain
		--> bits for nodes absent from the new chain are discarded, counts reset,
			the caller replays retained node acks through the normal advance path
*/

func (sw *SyncWrite) ResetAcks(active string, majority uint8, nodes []string) {
	acks := make(map[string]*Ack)
	for _, node := range nodes {
		acks[node] = &Ack{}
	}

	sw.active = active
	sw.majority = majority
	sw.acks = acks
	sw.ackCount = AckCount{}
}

func (sw *SyncWrite) HasAcked(node string, stream Stream) bool {
	ack, ok := sw.acks[node]
	if !ok { return false }

	if stream == StreamMemory { return ack.Memory }
	return ack.Disk
}

func (sw *SyncWrite) AckCounts() AckCount {
	return sw.ackCount
}

func IsValidLevel(level Level) bool {
	switch level {
		case LevelMajority, LevelMajorityAndPersistOnMaster, LevelPersistToMajority:
			return true
		default:
			return false
	}
}
