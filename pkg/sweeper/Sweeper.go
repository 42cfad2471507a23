package sweeper

import "time"

import "github.com/sirgallo/durability/pkg/logger"


//=========================================== Timeout Sweeper


/*
	Timeout Sweeper
		periodically walks the monitor tracked list so sync writes whose
		deadline has passed are aborted and their clients unblocked
*/

func NewTimeoutSweeper(opts *SweeperOpts) *TimeoutSweeper {
	interval := opts.IntervalInMs
	if interval <= 0 { interval = DefaultIntervalInMs }

	return &TimeoutSweeper{
		Monitor: opts.Monitor,
		Interval: time.Duration(interval) * time.Millisecond,
		ForceSweepSignal: make(chan bool),
		Log: *clog.NewCustomLog(NAME),
	}
}

/*
	Start Sweeper Service
		1.) on each interval tick, run a sweep against the current time
		2.) a value sent on the force signal runs a sweep immediately and restarts
			the interval timer
*/

func (sweep *TimeoutSweeper) StartSweeperService() {
	sweep.SweepTimer = time.NewTimer(sweep.Interval)

	for {
		select {
			case <- sweep.SweepTimer.C:
				sweep.runSweep()
				sweep.SweepTimer.Reset(sweep.Interval)
			case <- sweep.ForceSweepSignal:
				sweep.runSweep()
				sweep.resetTimer()
		}
	}
}

func (sweep *TimeoutSweeper) runSweep() {
	sweepErr := sweep.Monitor.ProcessTimeout(time.Now())
	if sweepErr != nil { sweep.Log.Fatal("timeout sweep failed:", sweepErr.Error()) }
}

/*
	Reset Timer:
		--> if unable to stop the timer, drain the timer
		--> reset the timer with the sweep interval
*/

func (sweep *TimeoutSweeper) resetTimer() {
	if ! sweep.SweepTimer.Stop() {
		select {
			case <- sweep.SweepTimer.C:
			default:
		}
	}

	sweep.SweepTimer.Reset(sweep.Interval)
}
