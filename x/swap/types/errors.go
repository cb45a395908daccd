package types

import (
	"cosmossdk.io/errors"
)

// swap module sentinel errors
var (
	ErrUnauthorized         = errors.Register(ModuleName, 1, "unauthorized")
	ErrSameAsset            = errors.Register(ModuleName, 2, "same asset")
	ErrPairAlreadyExists    = errors.Register(ModuleName, 3, "pair already exists")
	ErrPairNotFound         = errors.Register(ModuleName, 4, "pair not found")
	ErrPoolNotFound         = errors.Register(ModuleName, 5, "pool not found")
	ErrDecimalsNotFound     = errors.Register(ModuleName, 6, "asset decimals not resolvable")
	ErrBalanceRequired      = errors.Register(ModuleName, 7, "a balance greater than zero is required by the registry for verification")
	ErrInvalidReply         = errors.Register(ModuleName, 8, "invalid reply msg")
	ErrNoStagedCreation     = errors.Register(ModuleName, 9, "no staged pair creation")
	ErrInvalidZeroAmount    = errors.Register(ModuleName, 10, "invalid zero amount")
	ErrAssetMismatch        = errors.Register(ModuleName, 11, "asset mismatch")
	ErrNativeAmountMismatch = errors.Register(ModuleName, 12, "native token balance mismatch between the argument and the transferred")
	ErrExpiredDeadline      = errors.Register(ModuleName, 13, "expired deadline")
	ErrMaxSpreadAssertion   = errors.Register(ModuleName, 14, "max spread assertion")
	ErrMinAmountAssertion   = errors.Register(ModuleName, 15, "min amount assertion")
	ErrOverflow             = errors.Register(ModuleName, 16, "arithmetic overflow")
	ErrInvalidAddress       = errors.Register(ModuleName, 17, "invalid address")
	ErrInvalidInput         = errors.Register(ModuleName, 18, "invalid input")
	ErrConfigNotFound       = errors.Register(ModuleName, 19, "registry config not found")
)
