package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgProvideLiquidity{}

// MsgProvideLiquidity deposits both of a pool's assets and mints pool shares
// to the receiver (default: the sender). Declared native amounts are drawn
// from the sender in full; surplus on the non-binding side is refunded.
type MsgProvideLiquidity struct {
	Sender   string   `json:"sender"`
	Assets   [2]Asset `json:"assets"`
	Receiver string   `json:"receiver,omitempty"`
	Deadline int64    `json:"deadline,omitempty"`
}

func NewMsgProvideLiquidity(sender string, assets [2]Asset, receiver string, deadline int64) *MsgProvideLiquidity {
	return &MsgProvideLiquidity{
		Sender:   sender,
		Assets:   assets,
		Receiver: receiver,
		Deadline: deadline,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgProvideLiquidity) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgProvideLiquidity) Type() string { return "provide_liquidity" }

// GetSigners implements the sdk.Msg interface
func (msg MsgProvideLiquidity) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgProvideLiquidity) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgProvideLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid sender address: %s", err)
	}
	if msg.Receiver != "" {
		if _, err := sdk.AccAddressFromBech32(msg.Receiver); err != nil {
			return sdkerrors.Wrapf(ErrInvalidAddress, "invalid receiver address: %s", err)
		}
	}
	for _, asset := range msg.Assets {
		if err := asset.Validate(); err != nil {
			return sdkerrors.Wrap(ErrInvalidInput, err.Error())
		}
		if asset.Amount.IsZero() {
			return ErrInvalidZeroAmount
		}
	}
	if msg.Assets[0].Info.Equal(msg.Assets[1].Info) {
		return ErrSameAsset
	}
	return nil
}
