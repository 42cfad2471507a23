package httpservice

import "context"
import "encoding/json"
import "net/http"

import "github.com/sirgallo/durability/pkg/stats"
import "github.com/sirgallo/durability/pkg/vbucket"


func (httpService *HTTPService) RegisterCommandRoute() {
	handler := func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			var requestData *vbucket.DurabilityOperation

			decodeErr := json.NewDecoder(r.Body).Decode(&requestData)
			if decodeErr != nil {
				http.Error(w, "failed to parse JSON request body", http.StatusBadRequest)
				return
			}

			requestData.RequestID = httpService.GenerateRequestUUID()
			requestData.RequestOrigin = httpService.Host

			clientResponseChannel := make(chan vbucket.DurabilityResponse)

			httpService.Mutex.Lock()
			httpService.ClientMappedResponseChannel[requestData.RequestID] = &clientResponseChannel
			httpService.Mutex.Unlock()

			removeClientChannel := func() {
				httpService.Mutex.Lock()
				delete(httpService.ClientMappedResponseChannel, requestData.RequestID)
				httpService.Mutex.Unlock()
			}

			ctx, cancel := context.WithTimeout(context.Background(), HTTPTimeout)
			defer cancel()

			httpService.RequestChannel <- *requestData

			select {
				case <- ctx.Done():
					removeClientChannel()

					http.Error(w, "request timed out", http.StatusGatewayTimeout)
					return
				case responseData :=<- clientResponseChannel:
					removeClientChannel()

					if responseData.Error != "" {
						http.Error(w, responseData.Error, http.StatusConflict)
						return
					}

					responseJSON, encErr := json.Marshal(&responseData)
					if encErr != nil {
						http.Error(w, "failed to encode JSON response", http.StatusInternalServerError)
						return
					}

					w.Header().Set("Content-Type", "application/json")
					w.Write(responseJSON)
			}
		} else { http.Error(w, "method not allowed", http.StatusMethodNotAllowed) }
	}

	httpService.Mux.HandleFunc(CommandRoute, handler)
}

/*
	read-only telemetry surface over the monitor and the vbucket persisted
	seqno
*/

func (httpService *HTTPService) RegisterStatsRoute() {
	handler := func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			statObj := stats.CalculateCurrentStats(httpService.Monitor, httpService.VBucket.PersistedSeqno())

			responseJSON, encErr := json.Marshal(statObj)
			if encErr != nil {
				http.Error(w, "failed to encode JSON response", http.StatusInternalServerError)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			w.Write(responseJSON)
		} else { http.Error(w, "method not allowed", http.StatusMethodNotAllowed) }
	}

	httpService.Mux.HandleFunc(StatsRoute, handler)
}
