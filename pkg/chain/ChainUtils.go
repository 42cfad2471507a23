package chain

import "encoding/json"

import "github.com/sirgallo/durability/pkg/dmerror"


//=========================================== Chain Utils


/*
	parse a replication topology from its wire form
		--> a json array of chains, each chain a json array where an element is
			either a string node id or the null literal for an undefined slot
		--> example: [["active", "replica1", null, "replica3"]]

		1.) the topology must decode as an array of arrays and be non empty
		2.) null slots map to the undefined node marker
*/

func ParseReplicationTopology(topologyJSON []byte) ([][]string, error) {
	var rawChains [][]*string

	decodeErr := json.Unmarshal(topologyJSON, &rawChains)
	if decodeErr != nil {
		return nil, dmerror.InvalidArgument("topology is not an array of chains: %s", decodeErr.Error())
	}

	if len(rawChains) == 0 { return nil, dmerror.InvalidArgument("topology is empty") }

	var chains [][]string

	for _, rawChain := range rawChains {
		var nodes []string
		for _, node := range rawChain {
			if node == nil {
				nodes = append(nodes, UndefinedNode)
			} else { nodes = append(nodes, *node) }
		}

		chains = append(chains, nodes)
	}

	return chains, nil
}
