package service

import "github.com/sirgallo/durability/pkg/httpservice"
import "github.com/sirgallo/durability/pkg/monitor"
import "github.com/sirgallo/durability/pkg/sweeper"
import "github.com/sirgallo/durability/pkg/vbucket"
import "github.com/sirgallo/durability/pkg/wal"


type DurabilityPortOpts struct {
	HTTPService int
}

type DurabilityServiceOpts struct {
	Ports DurabilityPortOpts
	VBucketId int
	WALPath string
	TopologyJSON []byte
	SweepIntervalInMs int
}

type DurabilityService struct {
	Host string

	WAL *wal.WAL
	VBucket *vbucket.VBucket
	Monitor *monitor.ActiveDurabilityMonitor
	Sweeper *sweeper.TimeoutSweeper
	HTTPService *httpservice.HTTPService
}

const NAME = "Durability"
