package bridge

import (
	"github.com/3dpass/bridge-core/chains"
	"github.com/3dpass/bridge-core/log"
)

// DetectVariant classifies a bridge address into one of the protocol
// variants by ordered trial invocation. The probe sequence is strictly
// sequential: each probe's interpretation depends on the previous one
// having failed with a contract-level rejection. A transport failure on
// any probe propagates as a detection failure and is never reinterpreted
// as "wrong type".
func DetectVariant(caller chains.Caller, networkKey, address string) (Variant, error) {
	// probe 1: the export-only foreign network query.
	// success means export, no import family probes are issued.
	_, err := chains.CallGetString(caller, networkKey, address, chains.SelForeignNetwork)
	if err == nil {
		log.Debug("detected export bridge", "network", networkKey, "address", address)
		return VariantExport, nil
	}
	if !chains.IsCallRejected(err) {
		return VariantUnknown, err
	}

	// probe 2: the shared import family home network query.
	// failure here is fatal: every remaining variant depends on it.
	_, err = chains.CallGetString(caller, networkKey, address, chains.SelHomeNetwork)
	if err != nil {
		if chains.IsCallRejected(err) {
			return VariantUnknown, ErrDetectBridgeType
		}
		return VariantUnknown, err
	}

	return disambiguateImport(caller, networkKey, address)
}

// disambiguateImport tells import from import-wrapper on a confirmed
// import family contract, probing wrapper capabilities in priority order.
func disambiguateImport(caller chains.Caller, networkKey, address string) (Variant, error) {
	// wrapper probe a: explicit precompile address query
	addr, err := chains.CallGetAddress(caller, networkKey, address, chains.SelPrecompileAddress)
	if err == nil && !addr.IsZero() {
		log.Debug("detected import-wrapper bridge", "network", networkKey, "address", address, "precompile", addr.LowerHex())
		return VariantImportWrapper, nil
	}
	if err != nil && !chains.IsCallRejected(err) {
		return VariantUnknown, err
	}

	// wrapper probe b: fixed native precompile constant
	addr, err = chains.CallGetAddress(caller, networkKey, address, chains.SelP3DPrecompile)
	if err == nil && !addr.IsZero() {
		log.Debug("detected import-wrapper bridge", "network", networkKey, "address", address, "precompile", addr.LowerHex())
		return VariantImportWrapper, nil
	}
	if err != nil && !chains.IsCallRejected(err) {
		return VariantUnknown, err
	}

	// last resort: a contract holding its own token ledger answers the
	// fungible name query, a wrapper delegates balances to an external
	// precompiled ledger and does not. This is a soft heuristic, kept
	// because the contracts expose no stronger signal.
	_, err = chains.CallGetString(caller, networkKey, address, chains.SelName)
	if err == nil {
		log.Debug("detected import bridge", "network", networkKey, "address", address)
		return VariantImport, nil
	}
	if chains.IsCallRejected(err) {
		log.Debug("detected import-wrapper bridge (no token ledger)", "network", networkKey, "address", address)
		return VariantImportWrapper, nil
	}
	return VariantUnknown, err
}
