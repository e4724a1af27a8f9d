package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pairedDescriptors() []*Descriptor {
	return []*Descriptor{
		{
			Address:      "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
			Variant:      VariantExport,
			ForeignToken: TokenRef{Address: "0xcccccccccccccccccccccccccccccccccccccccc", Symbol: "ETH"},
			PairingID:    "0x01",
		},
		{
			Address:      "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
			Variant:      VariantImport,
			ForeignToken: TokenRef{Address: "0xCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCC", Symbol: "ETH"},
			PairingID:    "0x01",
		},
		{
			Address:      "0xdddddddddddddddddddddddddddddddddddddddd",
			Variant:      VariantExport,
			ForeignToken: TokenRef{Address: "0xeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee", Symbol: "USDT"},
			PairingID:    "0x02",
		},
	}
}

func TestFindClaimBridge(t *testing.T) {
	known := pairedDescriptors()

	// export to import direction
	target, err := FindClaimBridge("0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA", known)
	assert.NoError(t, err)
	assert.Equal(t, known[1], target)

	// and back
	target, err = FindClaimBridge(known[1].Address, known)
	assert.NoError(t, err)
	assert.Equal(t, known[0], target)
}

func TestFindClaimBridgeNotFound(t *testing.T) {
	_, err := FindClaimBridge("0x9999999999999999999999999999999999999999", pairedDescriptors())
	assert.Equal(t, ErrBridgeNotFound, err)

	_, err = FindClaimBridge("0x9999999999999999999999999999999999999999", nil)
	assert.Equal(t, ErrBridgeNotFound, err)
}

func TestFindClaimBridgeNoForeignToken(t *testing.T) {
	known := pairedDescriptors()
	known[0].ForeignToken.Address = ""
	_, err := FindClaimBridge(known[0].Address, known)
	assert.Equal(t, ErrNoForeignToken, err)
}

func TestFindClaimBridgeNoPair(t *testing.T) {
	known := pairedDescriptors()
	_, err := FindClaimBridge(known[2].Address, known)
	assert.Equal(t, ErrNoPairedBridge, err)
}

func TestFindClaimBridgePairingMismatch(t *testing.T) {
	known := pairedDescriptors()
	known[1].PairingID = "0x0f"
	_, err := FindClaimBridge(known[0].Address, known)
	assert.Equal(t, ErrPairingMismatch, err)
}

func TestFindClaimBridgeDirectionMismatch(t *testing.T) {
	known := pairedDescriptors()
	known[1].Variant = VariantExport
	_, err := FindClaimBridge(known[0].Address, known)
	assert.Equal(t, ErrDirectionMismatch, err)
}
