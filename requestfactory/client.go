package requestfactory

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/sethvargo/go-retry"

	"github.com/chronologic/eac-go/chain"
	"github.com/chronologic/eac-go/internal/ethrpc"
	"github.com/chronologic/eac-go/scheduling"
)

const wordSize = 32

// Client talks to a deployed request factory over JSON-RPC.
type Client struct {
	rpcURL  string
	network chain.Network
	config  *scheduling.Config
	logger  hclog.Logger

	maxRetries uint64
	backoff    time.Duration
}

type Option func(*Client)

// WithLogger replaces the default named logger.
func WithLogger(logger hclog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithConfig replaces the default scheduling constant table.
func WithConfig(config *scheduling.Config) Option {
	return func(c *Client) {
		c.config = config
	}
}

// WithRetry overrides the eth_call retry policy.
func WithRetry(maxRetries uint64, backoff time.Duration) Option {
	return func(c *Client) {
		c.maxRetries = maxRetries
		c.backoff = backoff
	}
}

func NewClient(rpcURL string, network chain.Network, opts ...Option) *Client {
	c := &Client{
		rpcURL:     rpcURL,
		network:    network,
		config:     scheduling.DefaultConfig(),
		logger:     hclog.New(&hclog.LoggerOptions{Name: "requestfactory"}),
		maxRetries: 3,
		backoff:    500 * time.Millisecond,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ValidateRequestParams asks the on-chain request factory to validate the
// given scheduling request and returns the names of the checks that failed.
// An empty slice means the request is schedulable as-is.
func (c *Client) ValidateRequestParams(ctx context.Context, params *scheduling.RequestParams) ([]string, error) {
	payload, err := c.config.EncodeValidateRequestParams(params)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request params: %w", err)
	}

	c.logger.Debug("validating request params",
		"network", c.network.Name,
		"factory", c.network.RequestFactory.String(),
		"payload", len(payload),
	)

	var raw []byte

	backoff := retry.WithMaxRetries(c.maxRetries, retry.NewConstant(c.backoff))

	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		var callErr error

		raw, callErr = ethrpc.EthCallCtx(ctx, c.rpcURL, c.network.RequestFactory, payload)
		if callErr != nil {
			c.logger.Warn("eth_call failed, retrying", "err", callErr)

			return retry.RetryableError(callErr)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("validateRequestParams call failed: %w", err)
	}

	flags, err := decodeValidityFlags(raw)
	if err != nil {
		return nil, err
	}

	return scheduling.ParseRequestValidity(flags)
}

// decodeValidityFlags unpacks the factory's bool[6] return value. A static
// bool array encodes as six 32-byte words, one boolean each.
func decodeValidityFlags(raw []byte) ([]bool, error) {
	expected := scheduling.RequestValidityFlagCount * wordSize
	if len(raw) != expected {
		return nil, fmt.Errorf("unexpected validity payload length: got %d, want %d", len(raw), expected)
	}

	flags := make([]bool, scheduling.RequestValidityFlagCount)

	for i := range flags {
		word := raw[i*wordSize : (i+1)*wordSize]
		for _, b := range word {
			if b != 0 {
				flags[i] = true

				break
			}
		}
	}

	return flags, nil
}
