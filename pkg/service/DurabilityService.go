package service

import "os"

import "github.com/sirgallo/durability/pkg/httpservice"
import "github.com/sirgallo/durability/pkg/logger"
import "github.com/sirgallo/durability/pkg/monitor"
import "github.com/sirgallo/durability/pkg/sweeper"
import "github.com/sirgallo/durability/pkg/vbucket"
import "github.com/sirgallo/durability/pkg/wal"


//=========================================== Durability Service


var Log = clog.NewCustomLog(NAME)


/*
	initialize sub modules under the same durability service and link together
		1.) write ahead log, destination of the vbucket flusher
		2.) vbucket, the in-memory table owning the hash bucket locks
		3.) active durability monitor, constructed against the vbucket and
			attached back to it
		4.) timeout sweeper over the monitor
		5.) http service as the client command and stats surface
*/

func NewDurabilityService(opts *DurabilityServiceOpts) *DurabilityService {
	hostname, hostErr := os.Hostname()
	if hostErr != nil { Log.Fatal("unable to get hostname") }

	walPath := opts.WALPath
	if walPath == "" {
		defaultPath, pathErr := wal.DefaultPath()
		if pathErr != nil { Log.Fatal("unable to resolve default WAL path") }

		walPath = defaultPath
	}

	durabilityWAL, walErr := wal.NewWAL(walPath)
	if walErr != nil { Log.Fatal("unable to create or open WAL") }

	vb, vbErr := vbucket.NewVBucket(&vbucket.VBucketOpts{ Id: opts.VBucketId, WAL: durabilityWAL })
	if vbErr != nil { Log.Fatal("unable to create vbucket:", vbErr.Error()) }

	adm := monitor.NewActiveDurabilityMonitor(&monitor.ActiveDurabilityMonitorOpts{ VBucket: vb })
	vb.AttachMonitor(adm)

	if opts.TopologyJSON != nil {
		topologyErr := adm.SetReplicationTopology(opts.TopologyJSON)
		if topologyErr != nil { Log.Fatal("invalid replication topology:", topologyErr.Error()) }
	}

	sweepService := sweeper.NewTimeoutSweeper(&sweeper.SweeperOpts{
		Monitor: adm,
		IntervalInMs: opts.SweepIntervalInMs,
	})

	httpOpts := &httpservice.HTTPServiceOpts{
		Port: opts.Ports.HTTPService,
		Host: hostname,
		Monitor: adm,
		VBucket: vb,
	}

	httpService := httpservice.NewHTTPService(httpOpts)

	return &DurabilityService{
		Host: hostname,
		WAL: durabilityWAL,
		VBucket: vb,
		Monitor: adm,
		Sweeper: sweepService,
		HTTPService: httpService,
	}
}

/*
	Start Durability Service:
		1.) persist an initial stats snapshot
		2.) start the flusher, the timeout sweeper and the http surface
		3.) start module pass throughs
*/

func (durability *DurabilityService) StartDurabilityService() {
	initErr := durability.InitStats()
	if initErr != nil { Log.Error("error persisting initial stats:", initErr.Error()) }

	go durability.VBucket.StartFlusher()
	go durability.Sweeper.StartSweeperService()

	durability.HTTPService.StartHTTPService()
	durability.StartModulePassThroughs()

	select {}
}

/*
	Start Module Pass Throughs
		go routine 1:
			on client commands from the http service, run the front-end prepare
			path. a rejected prepare is answered immediately through the response
			channel, an accepted one is answered by the commit/abort hooks
		go routine 2:
			on completion responses from the vbucket, pass to the http response
			channel to be sent to the client
*/

func (durability *DurabilityService) StartModulePassThroughs() {
	go func() {
		for {
			op :=<- durability.HTTPService.RequestChannel

			go func(op vbucket.DurabilityOperation) {
				prepareErr := durability.VBucket.PrepareSyncWrite(&op)
				if prepareErr != nil {
					durability.HTTPService.ResponseChannel <- vbucket.DurabilityResponse{
						RequestID: op.RequestID,
						Key: op.Key,
						Error: prepareErr.Error(),
					}
				}
			}(op)
		}
	}()

	go func() {
		for {
			response :=<- durability.VBucket.ClientResponseChannel
			durability.HTTPService.ResponseChannel <- *response
		}
	}()
}
