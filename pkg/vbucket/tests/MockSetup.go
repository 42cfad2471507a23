package vbuckettests

import "path/filepath"

import "github.com/sirgallo/durability/pkg/monitor"
import "github.com/sirgallo/durability/pkg/vbucket"
import "github.com/sirgallo/durability/pkg/wal"


func SetupVBucketWithMonitor(dir string, topologyJSON string) (*vbucket.VBucket, *monitor.ActiveDurabilityMonitor, error) {
	testWAL, walErr := wal.NewWAL(filepath.Join(dir, "durability.db"))
	if walErr != nil { return nil, nil, walErr }

	vb, vbErr := vbucket.NewVBucket(&vbucket.VBucketOpts{ Id: 0, WAL: testWAL })
	if vbErr != nil { return nil, nil, vbErr }

	adm := monitor.NewActiveDurabilityMonitor(&monitor.ActiveDurabilityMonitorOpts{ VBucket: vb })
	vb.AttachMonitor(adm)

	topologyErr := adm.SetReplicationTopology([]byte(topologyJSON))
	if topologyErr != nil { return nil, nil, topologyErr }

	return vb, adm, nil
}
