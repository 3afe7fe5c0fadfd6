package helper

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/chronologic/eac-go/chain"
	"github.com/chronologic/eac-go/command"
)

// ParseBigInt parses a decimal or 0x-hex flag value. An empty string maps to
// nil so commands can tell "absent" from zero.
func ParseBigInt(name, value string) (*big.Int, error) {
	if value == "" {
		return nil, nil
	}

	parsed, ok := new(big.Int).SetString(value, 0)
	if !ok {
		return nil, fmt.Errorf("invalid value for --%s: %q", name, value)
	}

	return parsed, nil
}

// RegisterRPCFlag registers the --rpc flag.
func RegisterRPCFlag(cmd *cobra.Command) {
	cmd.Flags().String(
		command.RPCFlag,
		command.DefaultRPCAddress,
		"the JSON-RPC interface",
	)
}

// RegisterNetworkFlags registers --network and --networks-file.
func RegisterNetworkFlags(cmd *cobra.Command) {
	cmd.Flags().String(
		command.NetworkFlag,
		chain.DefaultNetwork.Name,
		"the named EAC contract deployment to target",
	)

	cmd.Flags().String(
		command.NetworksFile,
		"",
		"YAML file with additional network address sets",
	)
}

// ResolveNetwork resolves --network against the bundled deployments plus an
// optional --networks-file.
func ResolveNetwork(cmd *cobra.Command) (chain.Network, error) {
	name, _ := cmd.Flags().GetString(command.NetworkFlag)

	networks := map[string]chain.Network{
		chain.Kovan.Name: chain.Kovan,
	}

	if path, _ := cmd.Flags().GetString(command.NetworksFile); path != "" {
		extra, err := chain.LoadNetworks(path)
		if err != nil {
			return chain.Network{}, err
		}

		for extraName, network := range extra {
			networks[extraName] = network
		}
	}

	network, ok := networks[name]
	if !ok {
		return chain.Network{}, fmt.Errorf("unknown network: %s", name)
	}

	return network, nil
}
