package bridge

import (
	"testing"

	"github.com/3dpass/bridge-core/chains"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	goodBridgeAddr   = "0x1111111111111111111111111111111111111111"
	brokenBridgeAddr = "0x3333333333333333333333333333333333333333"
	assistantAddr    = "0x4444444444444444444444444444444444444444"
)

func TestWalkIsolatesFailures(t *testing.T) {
	setupTestConfig()
	c := newScriptedCaller()
	c.answerAddressSlice(registryAddr, chains.SelGetAllBridges, goodBridgeAddr, brokenBridgeAddr)
	c.answerAddressSlice(registryAddr, chains.SelGetAllAssistants, assistantAddr)
	scriptExportBridge(c, goodBridgeAddr)
	// brokenBridgeAddr stays unscripted and fails detection
	c.answerAddress(assistantAddr, chains.SelBridgeAddress, goodBridgeAddr)
	c.answerString(assistantAddr, chains.SelSymbol, "ETHA")

	report, err := NewWalker(c, newTestAggregator(c), 2).Walk("3dpass")
	require.NoError(t, err)

	assert.Equal(t, 2, report.TotalBridges)
	assert.Equal(t, 1, report.SuccessBridges)
	assert.Equal(t, 1, report.FailedBridges)
	assert.Contains(t, report.BridgeErrors, brokenBridgeAddr)
	require.Contains(t, report.Bridges, "export/ETH")
	assert.Equal(t, goodBridgeAddr, report.Bridges["export/ETH"].Address)

	assert.Equal(t, 1, report.TotalAssistants)
	assert.Equal(t, 1, report.SuccessAssistant)
	require.Contains(t, report.Assistants, "assistant/ETHA")
	assert.Equal(t, goodBridgeAddr, report.Assistants["assistant/ETHA"].BridgeAddress)
}

func TestWalkKeyRemapAndCollision(t *testing.T) {
	setupTestConfig()

	descriptors := map[string]*Descriptor{}
	first := &Descriptor{
		Address:      "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		Variant:      VariantExport,
		ForeignToken: TokenRef{Symbol: "WETH"},
	}
	key := deriveKey(descriptors, first)
	assert.Equal(t, "export/ETH", key)
	descriptors[key] = first

	// a second route of the same symbol stays distinct
	second := &Descriptor{
		Address:      "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
		Variant:      VariantExport,
		ForeignToken: TokenRef{Symbol: "weth"},
	}
	assert.Equal(t, "export/ETH@bbbbbbbb", deriveKey(descriptors, second))
}

func TestWalkNoRegistry(t *testing.T) {
	setupTestConfig()
	c := newScriptedCaller()

	_, err := NewWalker(c, newTestAggregator(c), 0).Walk("ethereum")
	assert.ErrorIs(t, err, ErrNoRegistry)

	_, err = NewWalker(c, newTestAggregator(c), 0).Walk("nosuchnetwork")
	assert.ErrorIs(t, err, chains.ErrUnknownNetwork)
}

func TestWalkRegistryReadFailure(t *testing.T) {
	setupTestConfig()
	c := newScriptedCaller()
	c.fail(registryAddr, chains.SelGetAllBridges)

	_, err := NewWalker(c, newTestAggregator(c), 0).Walk("3dpass")
	assert.Error(t, err)
}

func TestWalkAssistantsDegrade(t *testing.T) {
	// an unreadable assistant list degrades to bridges only
	setupTestConfig()
	c := newScriptedCaller()
	c.answerAddressSlice(registryAddr, chains.SelGetAllBridges, goodBridgeAddr)
	c.fail(registryAddr, chains.SelGetAllAssistants)
	scriptExportBridge(c, goodBridgeAddr)

	report, err := NewWalker(c, newTestAggregator(c), 0).Walk("3dpass")
	require.NoError(t, err)
	assert.Equal(t, 1, report.SuccessBridges)
	assert.Equal(t, 0, report.TotalAssistants)
}

func TestDescriptorSet(t *testing.T) {
	set := NewSet()
	assert.Equal(t, 0, set.Len())
	assert.Nil(t, set.Get(goodBridgeAddr))

	set.Put(&Descriptor{Address: goodBridgeAddr, Variant: VariantExport})
	set.Put(&Descriptor{Address: "0x1111111111111111111111111111111111111111", Variant: VariantImport})

	// same address supersedes, case insensitively
	assert.Equal(t, 1, set.Len())
	assert.Equal(t, VariantImport, set.Get("0x1111111111111111111111111111111111111111").Variant)
	assert.Len(t, set.All(), 1)
}
