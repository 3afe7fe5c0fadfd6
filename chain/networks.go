package chain

import (
	"fmt"
	"os"

	ethgo "github.com/umbracle/ethgo"
	"gopkg.in/yaml.v3"

	"github.com/chronologic/eac-go/scheduling"
)

// DAppAddress is the base URL of the companion web application.
const DAppAddress = "https://app.chronologic.network"

// Network is one deployment of the EAC contracts. Adding a network means
// adding another Network value; nothing else changes.
type Network struct {
	Name               string
	BlockScheduler     ethgo.Address
	TimestampScheduler ethgo.Address
	RequestFactory     ethgo.Address
}

// Kovan is the test network deployment.
var Kovan = Network{
	Name:               "kovan",
	BlockScheduler:     ethgo.HexToAddress("0x394cE9fE06C72f2dDc10393c4D2fC1611b2cEDcd"),
	TimestampScheduler: ethgo.HexToAddress("0x31bBbf5180f2bD9C213e2E1D91a439677243268A"),
	RequestFactory:     ethgo.HexToAddress("0x496e2B6089DDE05c7fA3e6e731201e85985e44cd"),
}

// DefaultNetwork is used when the caller does not name one.
var DefaultNetwork = Kovan

// SchedulerAddress resolves the scheduling method to a scheduler contract.
// "time" selects the timestamp scheduler; anything else, the empty string
// included, falls back to the block scheduler.
func (n Network) SchedulerAddress(method string) ethgo.Address {
	if method == scheduling.MethodTime {
		return n.TimestampScheduler
	}

	return n.BlockScheduler
}

// TxDetailsCheckURL returns the DApp status page for a scheduling
// transaction. The hash is interpolated in its natural hex form.
func TxDetailsCheckURL(txHash string) string {
	return fmt.Sprintf("%s/awaiting/scheduler/%s", DAppAddress, txHash)
}

type networkYAML struct {
	BlockScheduler     string `yaml:"blockScheduler"`
	TimestampScheduler string `yaml:"timestampScheduler"`
	RequestFactory     string `yaml:"requestFactory"`
}

type networksFileYAML struct {
	Networks map[string]networkYAML `yaml:"networks"`
}

// LoadNetworks reads additional network address sets from a YAML file:
//
//	networks:
//	  ropsten:
//	    blockScheduler: "0x..."
//	    timestampScheduler: "0x..."
//	    requestFactory: "0x..."
func LoadNetworks(path string) (map[string]Network, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read networks file: %w", err)
	}

	var file networksFileYAML
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse networks file %s: %w", path, err)
	}

	networks := make(map[string]Network, len(file.Networks))

	for name, n := range file.Networks {
		networks[name] = Network{
			Name:               name,
			BlockScheduler:     ethgo.HexToAddress(n.BlockScheduler),
			TimestampScheduler: ethgo.HexToAddress(n.TimestampScheduler),
			RequestFactory:     ethgo.HexToAddress(n.RequestFactory),
		}
	}

	return networks, nil
}
