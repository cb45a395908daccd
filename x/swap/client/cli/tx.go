package cli

import (
	"fmt"

	"cosmossdk.io/math"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/meridian-chain/meridian/x/swap/types"
)

// GetTxCmd returns the transaction commands for the swap module
func GetTxCmd() *cobra.Command {
	swapTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Swap transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	swapTxCmd.AddCommand(
		CmdUpdateConfig(),
		CmdCreatePair(),
		CmdAddNativeTokenDecimals(),
		CmdMigratePair(),
		CmdProvideLiquidity(),
		CmdSwap(),
	)

	return swapTxCmd
}

func parseAssetArg(infoArg, amountArg string) (types.Asset, error) {
	amount, ok := math.NewIntFromString(amountArg)
	if !ok {
		return types.Asset{}, fmt.Errorf("invalid amount: %s (must be integer)", amountArg)
	}
	return types.Asset{Info: parseAssetInfo(infoArg), Amount: amount}, nil
}

// CmdUpdateConfig returns a CLI command handler for updating the registry config
func CmdUpdateConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-config",
		Short: "Update the registry owner or code ids (owner only)",
		Long: `Update the registry config. Unset flags keep their current values.

Example:
  $ meridiand tx swap update-config --owner meridian1... --from owner
  $ meridiand tx swap update-config --pair-code-id 7 --token-code-id 8 --from owner`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			owner, err := cmd.Flags().GetString(FlagOwner)
			if err != nil {
				return err
			}

			msg := &types.MsgUpdateConfig{
				Sender: clientCtx.GetFromAddress().String(),
				Owner:  owner,
			}
			if cmd.Flags().Changed(FlagPairCodeID) {
				raw, err := cmd.Flags().GetUint64(FlagPairCodeID)
				if err != nil {
					return err
				}
				msg.PairCodeID = &raw
			}
			if cmd.Flags().Changed(FlagTokenCodeID) {
				raw, err := cmd.Flags().GetUint64(FlagTokenCodeID)
				if err != nil {
					return err
				}
				msg.TokenCodeID = &raw
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagOwner, "", "New registry owner address")
	cmd.Flags().Uint64(FlagPairCodeID, 0, "New pair code id")
	cmd.Flags().Uint64(FlagTokenCodeID, 0, "New token code id")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCreatePair returns a CLI command handler for creating a pair
func CmdCreatePair() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-pair [asset-a] [amount-a] [asset-b] [amount-b]",
		Short: "Create a pair and seed its pool",
		Long: `Create a pair for two distinct assets with an initial deposit. Token
assets are written as token:<contract-addr>, native assets as their denom.

Example:
  $ meridiand tx swap create-pair uusd 1000000 token:meridian1... 1000000 --from mykey`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			assetA, err := parseAssetArg(args[0], args[1])
			if err != nil {
				return err
			}
			assetB, err := parseAssetArg(args[2], args[3])
			if err != nil {
				return err
			}

			msg := &types.MsgCreatePair{
				Sender: clientCtx.GetFromAddress().String(),
				Assets: [2]types.Asset{assetA, assetB},
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdAddNativeTokenDecimals returns a CLI command handler for registering
// native denom decimals
func CmdAddNativeTokenDecimals() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-native-token-decimals [denom] [decimals]",
		Short: "Register the decimal precision of a native denom (owner only)",
		Long: `Register the decimal precision of a native denom so pairs can be
created for it. The registry account must hold a non-zero balance of the denom.

Example:
  $ meridiand tx swap add-native-token-decimals uusd 6 --from owner`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			decimals, err := cast.ToUint8E(args[1])
			if err != nil {
				return fmt.Errorf("invalid decimals: %w", err)
			}

			msg := &types.MsgAddNativeTokenDecimals{
				Sender:   clientCtx.GetFromAddress().String(),
				Denom:    args[0],
				Decimals: decimals,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdMigratePair returns a CLI command handler for migrating a pool instance
func CmdMigratePair() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate-pair [contract]",
		Short: "Migrate a pool instance to a new code id (owner only)",
		Long: `Migrate a pool instance. Without --code-id the registry's current
pair code id is used.

Example:
  $ meridiand tx swap migrate-pair meridian1... --code-id 9 --from owner`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgMigratePair{
				Sender:   clientCtx.GetFromAddress().String(),
				Contract: args[0],
			}
			if cmd.Flags().Changed(FlagCodeID) {
				raw, err := cmd.Flags().GetUint64(FlagCodeID)
				if err != nil {
					return err
				}
				msg.CodeID = &raw
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().AddFlagSet(FlagSetMigratePair())
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdProvideLiquidity returns a CLI command handler for depositing into a pool
func CmdProvideLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "provide-liquidity [asset-a] [amount-a] [asset-b] [amount-b]",
		Short: "Deposit both pool assets and mint shares",
		Long: `Deposit both assets of an existing pair. The non-binding side's
surplus is refunded. Token deposits require a prior allowance to the pool.

Example:
  $ meridiand tx swap provide-liquidity uusd 1000000 token:meridian1... 1000000 --from mykey
  $ meridiand tx swap provide-liquidity uusd 1000000 uatom 500000 --receiver meridian1... --deadline 1700000000 --from mykey`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			assetA, err := parseAssetArg(args[0], args[1])
			if err != nil {
				return err
			}
			assetB, err := parseAssetArg(args[2], args[3])
			if err != nil {
				return err
			}
			receiver, err := cmd.Flags().GetString(FlagReceiver)
			if err != nil {
				return err
			}
			deadline, err := cmd.Flags().GetInt64(FlagDeadline)
			if err != nil {
				return err
			}

			msg := &types.MsgProvideLiquidity{
				Sender:   clientCtx.GetFromAddress().String(),
				Assets:   [2]types.Asset{assetA, assetB},
				Receiver: receiver,
				Deadline: deadline,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagReceiver, "", "Share receiver; defaults to the sender")
	cmd.Flags().Int64(FlagDeadline, 0, "Unix time after which the deposit fails")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSwap returns a CLI command handler for swapping a native offer asset
func CmdSwap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap [offer-denom] [offer-amount] [ask-asset]",
		Short: "Swap a native offer asset against its pool",
		Long: `Swap a native offer asset for the pair's other asset. Token offers
cannot be swapped directly; send them to the pool through the token contract.

Example:
  $ meridiand tx swap swap uusd 1000000 token:meridian1... --max-spread 0.01 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			offer, err := parseAssetArg(args[0], args[1])
			if err != nil {
				return err
			}

			msg := &types.MsgSwap{
				Sender:       clientCtx.GetFromAddress().String(),
				OfferAsset:   offer,
				AskAssetInfo: parseAssetInfo(args[2]),
			}

			if raw, err := cmd.Flags().GetString(FlagBeliefPrice); err != nil {
				return err
			} else if raw != "" {
				price, err := math.LegacyNewDecFromStr(raw)
				if err != nil {
					return fmt.Errorf("invalid belief price: %w", err)
				}
				msg.BeliefPrice = &price
			}
			if raw, err := cmd.Flags().GetString(FlagMaxSpread); err != nil {
				return err
			} else if raw != "" {
				spread, err := math.LegacyNewDecFromStr(raw)
				if err != nil {
					return fmt.Errorf("invalid max spread: %w", err)
				}
				msg.MaxSpread = &spread
			}
			if msg.To, err = cmd.Flags().GetString(FlagTo); err != nil {
				return err
			}
			if msg.Deadline, err = cmd.Flags().GetInt64(FlagDeadline); err != nil {
				return err
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagBeliefPrice, "", "Expected price as offer/ask; spread is measured against it")
	cmd.Flags().String(FlagMaxSpread, "", "Maximum tolerated spread ratio, e.g. 0.01")
	cmd.Flags().String(FlagTo, "", "Return asset receiver; defaults to the sender")
	cmd.Flags().Int64(FlagDeadline, 0, "Unix time after which the swap fails")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
