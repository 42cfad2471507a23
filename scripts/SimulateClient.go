package main

import "bytes"
import "encoding/json"
import "fmt"
import "net/http"
import "sync"


const Srv = "http://localhost:8080"
const TotalRequests = 1000
const ConcurrentClients = 10


type command struct {
	Key string `json:"Key"`
	Value string `json:"Value"`
	Level string `json:"Level"`
	TimeoutInMs int64 `json:"TimeoutInMs"`
}


func main() {
	var clientWG sync.WaitGroup

	for client := 0; client < ConcurrentClients; client++ {
		clientWG.Add(1)

		go func(client int) {
			defer clientWG.Done()

			for req := 0; req < TotalRequests / ConcurrentClients; req++ {
				cmd := command{
					Key: fmt.Sprintf("key-%d-%d", client, req),
					Value: fmt.Sprintf("value-%d-%d", client, req),
					Level: "majority",
					TimeoutInMs: 5000,
				}

				payload, encErr := json.Marshal(cmd)
				if encErr != nil {
					fmt.Println("error encoding command:", encErr.Error())
					return
				}

				resp, postErr := http.Post(Srv + "/command", "application/json", bytes.NewBuffer(payload))
				if postErr != nil {
					fmt.Println("error posting command:", postErr.Error())
					return
				}

				resp.Body.Close()
			}
		}(client)
	}

	clientWG.Wait()

	statsResp, statsErr := http.Get(Srv + "/stats")
	if statsErr != nil {
		fmt.Println("error getting stats:", statsErr.Error())
		return
	}

	defer statsResp.Body.Close()

	var statObj map[string]interface{}
	decodeErr := json.NewDecoder(statsResp.Body).Decode(&statObj)
	if decodeErr != nil {
		fmt.Println("error decoding stats:", decodeErr.Error())
		return
	}

	fmt.Println("stats after load -->", statObj)
}
