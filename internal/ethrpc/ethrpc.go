package ethrpc

import (
	"context"
	"encoding/hex"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	ethgo "github.com/umbracle/ethgo"
)

// EthCall performs an eth_call against the latest block with a background
// context.
func EthCall(ethRPC string, to ethgo.Address, data []byte) ([]byte, error) {
	return EthCallCtx(context.Background(), ethRPC, to, data)
}

// EthCallCtx performs an eth_call against the latest block with a
// controllable context.
func EthCallCtx(ctx context.Context, ethRPC string, to ethgo.Address, data []byte) ([]byte, error) {
	cl, err := rpc.DialContext(ctx, ethRPC)
	if err != nil {
		return nil, err
	}
	defer cl.Close()

	msg := map[string]string{
		"to":   to.String(),
		"data": "0x" + hex.EncodeToString(data),
	}

	var out hexutil.Bytes
	if err := cl.CallContext(ctx, &out, "eth_call", msg, "latest"); err != nil {
		return nil, err
	}

	return out, nil
}
