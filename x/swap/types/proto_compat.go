package types

import "fmt"

// The module's messages are hand-written rather than generated, so each one
// carries the minimal proto.Message surface the sdk.Msg interface requires.

func (msg *MsgUpdateConfig) Reset()         { *msg = MsgUpdateConfig{} }
func (msg *MsgUpdateConfig) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgUpdateConfig) ProtoMessage()  {}

func (msg *MsgCreatePair) Reset()         { *msg = MsgCreatePair{} }
func (msg *MsgCreatePair) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgCreatePair) ProtoMessage()  {}

func (msg *MsgAddNativeTokenDecimals) Reset()         { *msg = MsgAddNativeTokenDecimals{} }
func (msg *MsgAddNativeTokenDecimals) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgAddNativeTokenDecimals) ProtoMessage()  {}

func (msg *MsgMigratePair) Reset()         { *msg = MsgMigratePair{} }
func (msg *MsgMigratePair) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgMigratePair) ProtoMessage()  {}

func (msg *MsgProvideLiquidity) Reset()         { *msg = MsgProvideLiquidity{} }
func (msg *MsgProvideLiquidity) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgProvideLiquidity) ProtoMessage()  {}

func (msg *MsgSwap) Reset()         { *msg = MsgSwap{} }
func (msg *MsgSwap) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgSwap) ProtoMessage()  {}
