package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/swap/types"
)

// GetConfig returns the registry config singleton.
func (k Keeper) GetConfig(ctx context.Context) (types.Config, error) {
	store := k.getStore(ctx)
	bz := store.Get(ConfigKey)
	if bz == nil {
		return types.Config{}, types.ErrConfigNotFound
	}

	var config types.Config
	if err := k.cdc.UnmarshalJSON(bz, &config); err != nil {
		return types.Config{}, err
	}
	return config, nil
}

// SetConfig stores the registry config singleton.
func (k Keeper) SetConfig(ctx context.Context, config types.Config) error {
	bz, err := k.cdc.MarshalJSON(config)
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(ConfigKey, bz)
	return nil
}

// UpdateConfig applies an owner-authorized partial update. Unset fields keep
// their current values; ownership transfer takes effect immediately.
func (k Keeper) UpdateConfig(ctx context.Context, sender string, newOwner string, pairCodeID, tokenCodeID *uint64) (types.Config, error) {
	config, err := k.GetConfig(ctx)
	if err != nil {
		return types.Config{}, err
	}
	if sender != config.Owner {
		return types.Config{}, types.ErrUnauthorized
	}

	if newOwner != "" {
		if _, err := sdk.AccAddressFromBech32(newOwner); err != nil {
			return types.Config{}, types.ErrInvalidAddress.Wrapf("invalid owner address: %s", err)
		}
		config.Owner = newOwner
	}
	if pairCodeID != nil {
		config.PairCodeID = *pairCodeID
	}
	if tokenCodeID != nil {
		config.TokenCodeID = *tokenCodeID
	}

	if err := k.SetConfig(ctx, config); err != nil {
		return types.Config{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeUpdateConfig,
			sdk.NewAttribute(types.AttributeKeyOwner, config.Owner),
		),
	)
	return config, nil
}
