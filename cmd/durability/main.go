package main

import "log"
import "os"
import "time"

import "github.com/sirgallo/durability/pkg/logger"
import "github.com/sirgallo/durability/pkg/service"
import "github.com/sirgallo/durability/pkg/utils"


const NAME = "Main"
var Log = clog.NewCustomLog(NAME)


func main() {
	hostname, hostErr := os.Hostname()
	if hostErr != nil { log.Fatal("unable to get hostname") }

	replicas := []string{ "durabilitysrv1", "durabilitysrv2" }

	chainNodes := append([]string{ hostname }, replicas...)

	topology, topologyErr := utils.EncodeStructToBytes[[][]string]([][]string{ chainNodes })
	if topologyErr != nil { log.Fatal("unable to encode topology") }

	durabilityOpts := &service.DurabilityServiceOpts{
		Ports: service.DurabilityPortOpts{
			HTTPService: 8080,
		},
		VBucketId: 0,
		TopologyJSON: topology,
		SweepIntervalInMs: 25,
	}

	durability := service.NewDurabilityService(durabilityOpts)

	go durability.StartDurabilityService()

	// stand-in for the DCP transport: each replica periodically acks the
	// highest seqno assigned on the vbucket (prepare or commit), which covers
	// every prepare issued so far
	for _, replica := range replicas {
		go func(replica string) {
			for {
				time.Sleep(10 * time.Millisecond)

				highSeqno := durability.VBucket.HighSeqno()
				if highSeqno == 0 { continue }

				ackErr := durability.Monitor.SeqnoAckReceived(replica, highSeqno)
				if ackErr != nil { Log.Fatal("seqno ack failed for replica:", replica, ackErr.Error()) }
			}
		}(replica)
	}

	select {}
}
