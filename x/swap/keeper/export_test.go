package keeper

import (
	"cosmossdk.io/math"
)

// AssertMaxSpreadForTest exposes the slippage bound check for white-box tests.
func AssertMaxSpreadForTest(
	beliefPrice, maxSpread *math.LegacyDec,
	offerAmount, returnAmount, spreadAmount math.Int,
	offerDecimals, askDecimals uint8,
) error {
	return assertMaxSpread(beliefPrice, maxSpread, offerAmount, returnAmount, spreadAmount, offerDecimals, askDecimals)
}
