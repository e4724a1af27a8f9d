package bridge

import (
	"testing"

	"github.com/3dpass/bridge-core/chains"
	"github.com/stretchr/testify/assert"
)

const (
	testNetwork    = "3dpass"
	testBridgeAddr = "0x1111111111111111111111111111111111111111"
	testPrecompile = "0xfBFBfbFA000000000000000000000000000000a5"
)

func TestDetectVariantExport(t *testing.T) {
	c := newScriptedCaller()
	c.answerString(testBridgeAddr, chains.SelForeignNetwork, "Ethereum")

	variant, err := DetectVariant(c, testNetwork, testBridgeAddr)
	assert.NoError(t, err)
	assert.Equal(t, VariantExport, variant)

	// export short-circuits, no import family probe is issued
	assert.Equal(t, 0, c.callCount(testBridgeAddr, chains.SelHomeNetwork))
}

func TestDetectVariantImport(t *testing.T) {
	c := newScriptedCaller()
	c.answerString(testBridgeAddr, chains.SelHomeNetwork, "3DPass")
	c.answerString(testBridgeAddr, chains.SelName, "Wrapped P3D")

	variant, err := DetectVariant(c, testNetwork, testBridgeAddr)
	assert.NoError(t, err)
	assert.Equal(t, VariantImport, variant)
}

func TestDetectVariantImportWrapperByPrecompileAddress(t *testing.T) {
	c := newScriptedCaller()
	c.answerString(testBridgeAddr, chains.SelHomeNetwork, "3DPass")
	c.answerAddress(testBridgeAddr, chains.SelPrecompileAddress, testPrecompile)

	variant, err := DetectVariant(c, testNetwork, testBridgeAddr)
	assert.NoError(t, err)
	assert.Equal(t, VariantImportWrapper, variant)

	// the first wrapper probe is decisive
	assert.Equal(t, 0, c.callCount(testBridgeAddr, chains.SelP3DPrecompile))
	assert.Equal(t, 0, c.callCount(testBridgeAddr, chains.SelName))
}

func TestDetectVariantImportWrapperByP3DPrecompile(t *testing.T) {
	c := newScriptedCaller()
	c.answerString(testBridgeAddr, chains.SelHomeNetwork, "3DPass")
	c.answerAddress(testBridgeAddr, chains.SelP3DPrecompile, "0x0000000000000000000000000000000000000802")

	variant, err := DetectVariant(c, testNetwork, testBridgeAddr)
	assert.NoError(t, err)
	assert.Equal(t, VariantImportWrapper, variant)
}

func TestDetectVariantImportWrapperByMissingName(t *testing.T) {
	// every wrapper probe rejected and no token ledger either
	c := newScriptedCaller()
	c.answerString(testBridgeAddr, chains.SelHomeNetwork, "3DPass")

	variant, err := DetectVariant(c, testNetwork, testBridgeAddr)
	assert.NoError(t, err)
	assert.Equal(t, VariantImportWrapper, variant)
}

func TestDetectVariantZeroPrecompileFallsThrough(t *testing.T) {
	// an answered probe returning the zero address does not count as a
	// wrapper capability
	c := newScriptedCaller()
	c.answerString(testBridgeAddr, chains.SelHomeNetwork, "3DPass")
	c.answerAddress(testBridgeAddr, chains.SelPrecompileAddress, "0x0000000000000000000000000000000000000000")
	c.answerString(testBridgeAddr, chains.SelName, "Imported ETH")

	variant, err := DetectVariant(c, testNetwork, testBridgeAddr)
	assert.NoError(t, err)
	assert.Equal(t, VariantImport, variant)
}

func TestDetectVariantUnknown(t *testing.T) {
	// both family probes rejected means not a bridge at all
	c := newScriptedCaller()

	variant, err := DetectVariant(c, testNetwork, testBridgeAddr)
	assert.Equal(t, ErrDetectBridgeType, err)
	assert.Equal(t, VariantUnknown, variant)
}

func TestDetectVariantTransportErrorsPropagate(t *testing.T) {
	// a transport failure is never reinterpreted as "wrong type"
	c := newScriptedCaller()
	c.fail(testBridgeAddr, chains.SelForeignNetwork)

	_, err := DetectVariant(c, testNetwork, testBridgeAddr)
	assert.Equal(t, errTransport, err)

	c = newScriptedCaller()
	c.fail(testBridgeAddr, chains.SelHomeNetwork)

	_, err = DetectVariant(c, testNetwork, testBridgeAddr)
	assert.Equal(t, errTransport, err)

	c = newScriptedCaller()
	c.answerString(testBridgeAddr, chains.SelHomeNetwork, "3DPass")
	c.fail(testBridgeAddr, chains.SelName)

	_, err = DetectVariant(c, testNetwork, testBridgeAddr)
	assert.Equal(t, errTransport, err)
}
