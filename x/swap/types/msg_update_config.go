package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgUpdateConfig{}

// MsgUpdateConfig overwrites the provided registry config fields. Only the
// current owner may execute it; absent fields are untouched.
type MsgUpdateConfig struct {
	Sender      string  `json:"sender"`
	Owner       string  `json:"owner,omitempty"`
	PairCodeID  *uint64 `json:"pair_code_id,omitempty"`
	TokenCodeID *uint64 `json:"token_code_id,omitempty"`
}

func NewMsgUpdateConfig(sender, owner string, pairCodeID, tokenCodeID *uint64) *MsgUpdateConfig {
	return &MsgUpdateConfig{
		Sender:      sender,
		Owner:       owner,
		PairCodeID:  pairCodeID,
		TokenCodeID: tokenCodeID,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgUpdateConfig) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgUpdateConfig) Type() string { return "update_config" }

// GetSigners implements the sdk.Msg interface
func (msg MsgUpdateConfig) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgUpdateConfig) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgUpdateConfig) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid sender address: %s", err)
	}
	if msg.Owner != "" {
		if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
			return sdkerrors.Wrapf(ErrInvalidAddress, "invalid new owner address: %s", err)
		}
	}
	return nil
}
