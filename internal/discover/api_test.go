package discover

import (
	"testing"

	"github.com/3dpass/bridge-core/bridge"
	"github.com/3dpass/bridge-core/chains"
	"github.com/3dpass/bridge-core/eventstore"
	"github.com/3dpass/bridge-core/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventEndpointsWithoutStore(t *testing.T) {
	Init(chains.NewEVMCaller(), params.NewMemSettings(), nil, 0)

	err := AddTransferEvent(&eventstore.Record{TxHash: "0x01"})
	assert.Equal(t, ErrNoEventStore, err)
	err = AddClaimEvent(&eventstore.Record{TxHash: "0x01"})
	assert.Equal(t, ErrNoEventStore, err)

	// reads degrade to an empty snapshot instead of failing
	snapshot, err := GetEventSnapshot()
	require.NoError(t, err)
	assert.Empty(t, snapshot.Transfers)
}

func TestEventEndpointsWithStore(t *testing.T) {
	store, err := eventstore.Open(t.TempDir())
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	Init(chains.NewEVMCaller(), params.NewMemSettings(), store, 0)

	require.NoError(t, AddTransferEvent(&eventstore.Record{TxHash: "0x01", Amount: "1.5"}))
	require.NoError(t, AddClaimEvent(&eventstore.Record{TxHash: "0x02", Status: "pending"}))

	snapshot, err := GetEventSnapshot()
	require.NoError(t, err)
	require.Len(t, snapshot.Transfers, 1)
	require.Len(t, snapshot.Claims, 1)
	assert.Equal(t, "1.5", snapshot.Transfers[0].Amount)
}

func TestFindClaimBridgeUsesKnownSet(t *testing.T) {
	Init(chains.NewEVMCaller(), params.NewMemSettings(), nil, 0)

	_, err := FindClaimBridge("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	assert.Equal(t, bridge.ErrBridgeNotFound, err)

	KnownBridges().Put(&bridge.Descriptor{
		Address:      "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		Variant:      bridge.VariantExport,
		ForeignToken: bridge.TokenRef{Address: "0xcccccccccccccccccccccccccccccccccccccccc", Symbol: "ETH"},
		PairingID:    "0x01",
	})
	KnownBridges().Put(&bridge.Descriptor{
		Address:      "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
		Variant:      bridge.VariantImport,
		ForeignToken: bridge.TokenRef{Address: "0xcccccccccccccccccccccccccccccccccccccccc", Symbol: "ETH"},
		PairingID:    "0x01",
	})

	target, err := FindClaimBridge("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	require.NoError(t, err)
	assert.Equal(t, "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", target.Address)
}

func TestGetServerInfo(t *testing.T) {
	params.SetConfig(&params.ClientConfig{
		Identifier: "testclient",
		Networks: []*params.NetworkConfig{
			{Key: "3dpass", Name: "3DPass", NativeSymbol: "P3D", NativeDecimals: 12},
			{Key: "ethereum", Name: "Ethereum", NativeSymbol: "ETH", NativeDecimals: 18},
		},
	})

	info, err := GetServerInfo()
	require.NoError(t, err)
	assert.Equal(t, "testclient", info.Identifier)
	assert.Equal(t, []string{"3dpass", "ethereum"}, info.Networks)
	assert.Equal(t, params.VersionWithMeta, info.Version)
}
