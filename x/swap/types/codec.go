package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterCodec registers the necessary interfaces and concrete types
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterInterface((*AssetInfo)(nil), nil)
	cdc.RegisterConcrete(NativeToken{}, "swap/NativeToken", nil)
	cdc.RegisterConcrete(TokenAsset{}, "swap/TokenAsset", nil)

	cdc.RegisterConcrete(&MsgUpdateConfig{}, "swap/MsgUpdateConfig", nil)
	cdc.RegisterConcrete(&MsgCreatePair{}, "swap/MsgCreatePair", nil)
	cdc.RegisterConcrete(&MsgAddNativeTokenDecimals{}, "swap/MsgAddNativeTokenDecimals", nil)
	cdc.RegisterConcrete(&MsgMigratePair{}, "swap/MsgMigratePair", nil)
	cdc.RegisterConcrete(&MsgProvideLiquidity{}, "swap/MsgProvideLiquidity", nil)
	cdc.RegisterConcrete(&MsgSwap{}, "swap/MsgSwap", nil)
}

// RegisterInterfaces registers the module's interfaces with the interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgUpdateConfig{},
		&MsgCreatePair{},
		&MsgAddNativeTokenDecimals{},
		&MsgMigratePair{},
		&MsgProvideLiquidity{},
		&MsgSwap{},
	)
}

// ModuleCdc is the module's amino codec. The store and sign bytes both use
// amino JSON so that AssetInfo interface values round-trip with their
// concrete type tags.
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterCodec(ModuleCdc)
	ModuleCdc.Seal()
}
