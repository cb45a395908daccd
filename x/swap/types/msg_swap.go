package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgSwap{}

// MsgSwap trades a native offer asset against a pool for its counterpart
// asset. Token offers cannot be swapped through this message; they enter
// through the token receive hook, which settles the transfer first.
type MsgSwap struct {
	Sender      string          `json:"sender"`
	OfferAsset  Asset           `json:"offer_asset"`
	AskAssetInfo AssetInfo      `json:"ask_asset_info"`
	BeliefPrice *math.LegacyDec `json:"belief_price,omitempty"`
	MaxSpread   *math.LegacyDec `json:"max_spread,omitempty"`
	To          string          `json:"to,omitempty"`
	Deadline    int64           `json:"deadline,omitempty"`
}

func NewMsgSwap(sender string, offerAsset Asset, askAssetInfo AssetInfo, beliefPrice, maxSpread *math.LegacyDec, to string, deadline int64) *MsgSwap {
	return &MsgSwap{
		Sender:      sender,
		OfferAsset:  offerAsset,
		AskAssetInfo: askAssetInfo,
		BeliefPrice: beliefPrice,
		MaxSpread:   maxSpread,
		To:          to,
		Deadline:    deadline,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSwap) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSwap) Type() string { return "swap" }

// GetSigners implements the sdk.Msg interface
func (msg MsgSwap) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSwap) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSwap) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid sender address: %s", err)
	}
	if msg.To != "" {
		if _, err := sdk.AccAddressFromBech32(msg.To); err != nil {
			return sdkerrors.Wrapf(ErrInvalidAddress, "invalid recipient address: %s", err)
		}
	}
	if err := msg.OfferAsset.Validate(); err != nil {
		return sdkerrors.Wrap(ErrInvalidInput, err.Error())
	}
	if msg.OfferAsset.Amount.IsZero() {
		return ErrInvalidZeroAmount
	}
	if msg.AskAssetInfo == nil {
		return sdkerrors.Wrap(ErrInvalidInput, "ask_asset_info cannot be empty")
	}
	if err := msg.AskAssetInfo.Validate(); err != nil {
		return sdkerrors.Wrap(ErrInvalidInput, err.Error())
	}
	if msg.AskAssetInfo.Equal(msg.OfferAsset.Info) {
		return ErrSameAsset
	}
	if msg.MaxSpread != nil && (msg.MaxSpread.IsNegative() || msg.MaxSpread.GT(math.LegacyOneDec())) {
		return sdkerrors.Wrap(ErrInvalidInput, "max_spread must be within [0, 1]")
	}
	if msg.BeliefPrice != nil && !msg.BeliefPrice.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidInput, "belief_price must be positive")
	}
	return nil
}
