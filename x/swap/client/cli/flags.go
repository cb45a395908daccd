package cli

import (
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/meridian-chain/meridian/x/swap/types"
)

const (
	FlagOwner       = "owner"
	FlagPairCodeID  = "pair-code-id"
	FlagTokenCodeID = "token-code-id"
	FlagCodeID      = "code-id"
	FlagReceiver    = "receiver"
	FlagDeadline    = "deadline"
	FlagBeliefPrice = "belief-price"
	FlagMaxSpread   = "max-spread"
	FlagTo          = "to"
	FlagStartAfter  = "start-after"
	FlagLimit       = "limit"
)

// tokenPrefix marks a CLI asset argument as a token contract address rather
// than a native denom.
const tokenPrefix = "token:"

// parseAssetInfo turns a CLI argument into an AssetInfo: "token:<addr>" is a
// token contract, anything else a native denom.
func parseAssetInfo(arg string) types.AssetInfo {
	if addr, ok := strings.CutPrefix(arg, tokenPrefix); ok {
		return types.TokenAsset{ContractAddr: addr}
	}
	return types.NativeToken{Denom: arg}
}

// FlagSetMigratePair returns the flag set of the migrate-pair command.
func FlagSetMigratePair() *flag.FlagSet {
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.Uint64(FlagCodeID, 0, "Target code id; defaults to the registry's pair code id")
	return fs
}
