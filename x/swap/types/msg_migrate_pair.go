package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgMigratePair{}

// MsgMigratePair migrates the named pool instance to a new code id, defaulting
// to the registry's configured pair code id when none is given. Owner only.
type MsgMigratePair struct {
	Sender   string  `json:"sender"`
	Contract string  `json:"contract"`
	CodeID   *uint64 `json:"code_id,omitempty"`
}

func NewMsgMigratePair(sender, contract string, codeID *uint64) *MsgMigratePair {
	return &MsgMigratePair{
		Sender:   sender,
		Contract: contract,
		CodeID:   codeID,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgMigratePair) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgMigratePair) Type() string { return "migrate_pair" }

// GetSigners implements the sdk.Msg interface
func (msg MsgMigratePair) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgMigratePair) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgMigratePair) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid sender address: %s", err)
	}
	if msg.Contract == "" {
		return sdkerrors.Wrap(ErrInvalidInput, "contract address cannot be empty")
	}
	return nil
}
