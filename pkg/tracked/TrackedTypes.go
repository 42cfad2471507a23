package tracked

import "time"


type Level string

const (
	LevelNone Level = "none"
	LevelMajority Level = "majority"
	LevelMajorityAndPersistOnMaster Level = "majorityAndPersistOnMaster"
	LevelPersistToMajority Level = "persistToMajority"
)

type Stream string

const (
	StreamMemory Stream = "memory"
	StreamDisk Stream = "disk"
)

type Requirements struct {
	Level Level
	TimeoutInMs int64
}

/*
	the payload registered for tracking, assigned by the vbucket at enqueue time
*/

type Prepare struct {
	Key string
	Seqno int64
	Requirements Requirements
}

type Ack struct {
	Memory bool
	Disk bool
}

type AckCount struct {
	Memory uint8
	Disk uint8
}

/*
	a pending durable write awaiting commit or abort

	identity fields are set once at creation, the ack tally mutates under the
	monitor state lock only
*/

type SyncWrite struct {
	Cookie string
	Key string
	Seqno int64
	Requirements Requirements
	ExpiryDeadline *time.Time

	active string
	majority uint8
	acks map[string]*Ack
	ackCount AckCount
}

/*
	Element wraps a SyncWrite as a node of the tracked list

	elements are heap stable: removing one element never moves another, so a
	cursor holding an element pointer stays valid across arbitrary removals.
	a nil element is the before-first sentinel
*/

type Element struct {
	prev *Element
	next *Element
	SyncWrite *SyncWrite
}

type TrackedList struct {
	head *Element
	tail *Element
	size int
}
