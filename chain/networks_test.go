package chain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ethgo "github.com/umbracle/ethgo"
)

func TestSchedulerAddress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		method   string
		expected ethgo.Address
	}{
		{name: "time", method: "time", expected: Kovan.TimestampScheduler},
		{name: "block", method: "block", expected: Kovan.BlockScheduler},
		{name: "empty defaults to block", method: "", expected: Kovan.BlockScheduler},
		{name: "unknown defaults to block", method: "sundial", expected: Kovan.BlockScheduler},
	}

	for _, test := range tests {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, test.expected, Kovan.SchedulerAddress(test.method))
		})
	}
}

func TestTxDetailsCheckURL(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		"https://app.chronologic.network/awaiting/scheduler/0xABC",
		TxDetailsCheckURL("0xABC"),
	)
}

func TestLoadNetworks(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "networks.yaml")

	raw := `
networks:
  ropsten:
    blockScheduler: "0x1111111111111111111111111111111111111111"
    timestampScheduler: "0x2222222222222222222222222222222222222222"
    requestFactory: "0x3333333333333333333333333333333333333333"
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	networks, err := LoadNetworks(path)
	require.NoError(t, err)
	require.Len(t, networks, 1)

	ropsten, ok := networks["ropsten"]
	require.True(t, ok)

	assert.Equal(t, "ropsten", ropsten.Name)
	assert.Equal(t, ethgo.HexToAddress("0x1111111111111111111111111111111111111111"), ropsten.BlockScheduler)
	assert.Equal(t, ethgo.HexToAddress("0x2222222222222222222222222222222222222222"), ropsten.TimestampScheduler)
	assert.Equal(t, ethgo.HexToAddress("0x3333333333333333333333333333333333333333"), ropsten.RequestFactory)

	// scheduler resolution works the same for loaded networks
	assert.Equal(t, ropsten.TimestampScheduler, ropsten.SchedulerAddress("time"))
	assert.Equal(t, ropsten.BlockScheduler, ropsten.SchedulerAddress(""))
}

func TestLoadNetworks_Errors(t *testing.T) {
	t.Parallel()

	_, err := LoadNetworks(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("networks: ["), 0o600))

	_, err = LoadNetworks(path)
	require.Error(t, err)
}
