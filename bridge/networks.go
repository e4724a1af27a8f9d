package bridge

import (
	"strings"
)

// canonicalNetworkNames maps known alternate spellings reported by
// bridge contracts to canonical display names. The table is fixed and
// total: unknown names pass through unchanged, never inferred.
var canonicalNetworkNames = map[string]string{
	"3dpass":               "3DPass",
	"the ledger of things": "3DPass",
	"p3d":                  "3DPass",
	"ethereum":             "Ethereum",
	"eth":                  "Ethereum",
	"bsc":                  "BNB Chain",
	"binance":              "BNB Chain",
	"binance smart chain":  "BNB Chain",
	"bnb chain":            "BNB Chain",
	"polygon":              "Polygon",
	"matic":                "Polygon",
}

// networkKeysByName maps canonical display names to configuration keys.
var networkKeysByName = map[string]string{
	"3DPass":    "3dpass",
	"Ethereum":  "ethereum",
	"BNB Chain": "bsc",
	"Polygon":   "polygon",
}

// NormalizeNetworkName maps a network name reported on chain to its
// canonical display name.
func NormalizeNetworkName(name string) string {
	if canonical, exist := canonicalNetworkNames[strings.ToLower(strings.TrimSpace(name))]; exist {
		return canonical
	}
	return name
}

// NetworkKeyFromName returns the configuration key of a canonical
// network name, or the lowercased name if no mapping exists.
func NetworkKeyFromName(name string) string {
	canonical := NormalizeNetworkName(name)
	if key, exist := networkKeysByName[canonical]; exist {
		return key
	}
	return strings.ToLower(canonical)
}
