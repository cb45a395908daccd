package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgAddNativeTokenDecimals{}

// MsgAddNativeTokenDecimals declares a native denomination supported by
// recording its decimal precision. Owner only; the registry account must hold
// a nonzero balance of the denomination as a liveness signal. Re-adding with a
// new value overwrites.
type MsgAddNativeTokenDecimals struct {
	Sender   string `json:"sender"`
	Denom    string `json:"denom"`
	Decimals uint8  `json:"decimals"`
}

func NewMsgAddNativeTokenDecimals(sender, denom string, decimals uint8) *MsgAddNativeTokenDecimals {
	return &MsgAddNativeTokenDecimals{
		Sender:   sender,
		Denom:    denom,
		Decimals: decimals,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgAddNativeTokenDecimals) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgAddNativeTokenDecimals) Type() string { return "add_native_token_decimals" }

// GetSigners implements the sdk.Msg interface
func (msg MsgAddNativeTokenDecimals) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgAddNativeTokenDecimals) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgAddNativeTokenDecimals) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid sender address: %s", err)
	}
	if err := sdk.ValidateDenom(msg.Denom); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid denom: %s", err)
	}
	return nil
}
