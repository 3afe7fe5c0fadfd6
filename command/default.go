package command

const (
	JSONOutputFlag = "json"
	RPCFlag        = "rpc"
	NetworkFlag    = "network"
	NetworksFile   = "networks-file"
)

const (
	DefaultRPCAddress = "http://127.0.0.1:8545"
)
