package sweeper

import "time"

import "github.com/sirgallo/durability/pkg/logger"


/*
	the monitor surface the sweeper drives
*/

type DurabilityMonitor interface {
	ProcessTimeout(asOf time.Time) error
}

type SweeperOpts struct {
	Monitor DurabilityMonitor
	IntervalInMs int
}

type TimeoutSweeper struct {
	Monitor DurabilityMonitor
	Interval time.Duration

	SweepTimer *time.Timer
	ForceSweepSignal chan bool

	Log clog.CustomLog
}

const NAME = "TimeoutSweeper"

const DefaultIntervalInMs = 25
