package bridge

import (
	"github.com/3dpass/bridge-core/common"
)

// FindClaimBridge locates the single paired bridge the inbound claim for
// a completed outbound transfer must be filed on. Pure function over the
// set of known descriptors, no chain access.
//
// Matching is by foreign token address: the bridge deployment process
// guarantees at most one other descriptor shares it. The match is then
// validated for pairing identity and direction consistency; a mismatch
// is data corruption and fails rather than guessing.
func FindClaimBridge(sourceAddress string, known []*Descriptor) (*Descriptor, error) {
	var source *Descriptor
	for _, d := range known {
		if common.SameAddress(d.Address, sourceAddress) {
			source = d
			break
		}
	}
	if source == nil {
		return nil, ErrBridgeNotFound
	}
	if source.ForeignToken.Address == "" {
		return nil, ErrNoForeignToken
	}

	var target *Descriptor
	for _, d := range known {
		if common.SameAddress(d.Address, source.Address) {
			continue
		}
		if common.SameAddress(d.ForeignToken.Address, source.ForeignToken.Address) {
			target = d
			break
		}
	}
	if target == nil {
		return nil, ErrNoPairedBridge
	}

	if target.PairingID != source.PairingID {
		return nil, ErrPairingMismatch
	}
	switch {
	case source.Variant.IsImportFamily() && target.Variant == VariantExport:
	case source.Variant == VariantExport && target.Variant.IsImportFamily():
	default:
		return nil, ErrDirectionMismatch
	}
	return target, nil
}
