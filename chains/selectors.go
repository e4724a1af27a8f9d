package chains

import (
	"github.com/3dpass/bridge-core/common"
)

// 4-byte selectors of the probed capabilities. Bridge contracts expose
// their wiring through public-variable getters in counterstake naming.
var (
	// export side
	SelForeignNetwork = common.FuncSelector("foreign_network()")
	SelForeignAsset   = common.FuncSelector("foreign_asset()")

	// import family
	SelHomeNetwork   = common.FuncSelector("home_network()")
	SelHomeAsset     = common.FuncSelector("home_asset()")
	SelOracleAddress = common.FuncSelector("oracleAddress()")

	// wrapper disambiguation
	SelPrecompileAddress = common.FuncSelector("precompileAddress()")
	SelP3DPrecompile     = common.FuncSelector("P3D_PRECOMPILE()")

	// shared
	SelSettings   = common.FuncSelector("settings()")
	SelPairingID  = common.FuncSelector("pairing_id()")
	SelCreationTS = common.FuncSelector("creation_ts()")

	// fungible token
	SelName        = common.FuncSelector("name()")
	SelSymbol      = common.FuncSelector("symbol()")
	SelDecimals    = common.FuncSelector("decimals()")
	SelTotalSupply = common.FuncSelector("totalSupply()")

	// oracle
	SelGetPrice = common.FuncSelector("getPrice(string,string)")

	// registry
	SelGetAllBridges    = common.FuncSelector("getAllBridges()")
	SelGetAllAssistants = common.FuncSelector("getAllAssistants()")

	// assistant
	SelBridgeAddress = common.FuncSelector("bridgeAddress()")
)
