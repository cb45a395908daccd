package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgCreatePair{}

// MsgCreatePair asks the registry to provision a pool for two distinct assets.
// Nonzero amounts are staged and deposited into the new pool on the sender's
// behalf once the creation reply arrives.
type MsgCreatePair struct {
	Sender string   `json:"sender"`
	Assets [2]Asset `json:"assets"`
}

func NewMsgCreatePair(sender string, assets [2]Asset) *MsgCreatePair {
	return &MsgCreatePair{
		Sender: sender,
		Assets: assets,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgCreatePair) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgCreatePair) Type() string { return "create_pair" }

// GetSigners implements the sdk.Msg interface
func (msg MsgCreatePair) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgCreatePair) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgCreatePair) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid sender address: %s", err)
	}
	for _, asset := range msg.Assets {
		if err := asset.Validate(); err != nil {
			return sdkerrors.Wrap(ErrInvalidInput, err.Error())
		}
	}
	if msg.Assets[0].Info.Equal(msg.Assets[1].Info) {
		return ErrSameAsset
	}
	return nil
}
