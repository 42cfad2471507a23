package httpservice

import "net/http"
import "sync"
import "time"

import "github.com/sirgallo/durability/pkg/logger"
import "github.com/sirgallo/durability/pkg/monitor"
import "github.com/sirgallo/durability/pkg/vbucket"


type HTTPServiceOpts struct {
	Port int
	Host string
	Monitor *monitor.ActiveDurabilityMonitor
	VBucket *vbucket.VBucket
}

type HTTPService struct {
	Mutex sync.Mutex
	Mux *http.ServeMux
	Port string
	Host string

	Monitor *monitor.ActiveDurabilityMonitor
	VBucket *vbucket.VBucket

	RequestChannel chan vbucket.DurabilityOperation
	ResponseChannel chan vbucket.DurabilityResponse
	ClientMappedResponseChannel map[string]*chan vbucket.DurabilityResponse

	Log clog.CustomLog
}

const NAME = "HTTP Service"

const CommandRoute = "/command"
const StatsRoute = "/stats"

const RequestChannelSize = 100000
const ResponseChannelSize = 100000

const HTTPTimeout = 10 * time.Second
