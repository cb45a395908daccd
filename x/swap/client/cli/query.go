package cli

import (
	"fmt"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/meridian-chain/meridian/x/swap/types"
)

// GetQueryCmd returns the query commands for the swap module
func GetQueryCmd() *cobra.Command {
	swapQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the swap module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	swapQueryCmd.AddCommand(
		CmdQueryConfig(),
		CmdQueryPair(),
		CmdQueryPairs(),
		CmdQueryPairInfo(),
		CmdQueryPool(),
		CmdQuerySimulation(),
		CmdQueryReverseSimulation(),
		CmdQueryNativeTokenDecimals(),
	)

	return swapQueryCmd
}

// printResponse renders a query response as sorted JSON. The swap responses
// carry the AssetInfo interface union, so they go through the module codec
// rather than PrintProto.
func printResponse(clientCtx client.Context, res interface{}) error {
	out, err := types.ModuleCdc.MarshalJSON(res)
	if err != nil {
		return err
	}
	return clientCtx.PrintRaw(out)
}

// CmdQueryConfig returns a CLI command handler for the registry config
func CmdQueryConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Query the registry config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			queryClient := types.NewQueryClient(clientCtx)

			res, err := queryClient.Config(cmd.Context(), &types.QueryConfigRequest{})
			if err != nil {
				return err
			}

			return printResponse(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryPair returns a CLI command handler for looking up a pair by assets
func CmdQueryPair() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pair [asset-a] [asset-b]",
		Short: "Query a pair record by its two assets",
		Long: `Query a pair record. The asset order does not matter. Token assets
are written as token:<contract-addr>, native assets as their denom.

Example:
  $ meridiand query swap pair uusd token:meridian1...`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			queryClient := types.NewQueryClient(clientCtx)

			res, err := queryClient.Pair(cmd.Context(), &types.QueryPairRequest{
				AssetInfos: [2]types.AssetInfo{
					parseAssetInfo(args[0]),
					parseAssetInfo(args[1]),
				},
			})
			if err != nil {
				return err
			}

			return printResponse(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryPairs returns a CLI command handler for listing pair records
func CmdQueryPairs() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pairs",
		Short: "List pair records",
		Long: `List pair records in key order. Use --start-after with the two
assets of the last seen pair to fetch the next page.

Example:
  $ meridiand query swap pairs --limit 30
  $ meridiand query swap pairs --start-after uusd --start-after token:meridian1...`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			queryClient := types.NewQueryClient(clientCtx)

			startAfter, err := cmd.Flags().GetStringArray(FlagStartAfter)
			if err != nil {
				return err
			}
			if len(startAfter) != 0 && len(startAfter) != 2 {
				return fmt.Errorf("--start-after takes exactly two assets, got %d", len(startAfter))
			}

			req := &types.QueryPairsRequest{}
			for _, arg := range startAfter {
				req.StartAfter = append(req.StartAfter, parseAssetInfo(arg))
			}
			if cmd.Flags().Changed(FlagLimit) {
				limit, err := cmd.Flags().GetUint32(FlagLimit)
				if err != nil {
					return err
				}
				req.Limit = &limit
			}

			res, err := queryClient.Pairs(cmd.Context(), req)
			if err != nil {
				return err
			}

			return printResponse(clientCtx, res)
		},
	}

	cmd.Flags().StringArray(FlagStartAfter, nil, "Assets of the pair to resume after (give twice)")
	cmd.Flags().Uint32(FlagLimit, types.DefaultPairsLimit, "Maximum number of pairs to return")
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryPairInfo returns a CLI command handler for looking up a pair by
// its pool address
func CmdQueryPairInfo() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pair-info [contract]",
		Short: "Query a pair record by its pool address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			queryClient := types.NewQueryClient(clientCtx)

			res, err := queryClient.PairInfo(cmd.Context(), &types.QueryPairInfoRequest{
				PairContractAddr: args[0],
			})
			if err != nil {
				return err
			}

			return printResponse(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryPool returns a CLI command handler for a pool's reserves and share
func CmdQueryPool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool [contract]",
		Short: "Query a pool's reserves and total share",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			queryClient := types.NewQueryClient(clientCtx)

			res, err := queryClient.Pool(cmd.Context(), &types.QueryPoolRequest{
				PairContractAddr: args[0],
			})
			if err != nil {
				return err
			}

			return printResponse(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQuerySimulation returns a CLI command handler for pricing a swap
func CmdQuerySimulation() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulation [contract] [offer-asset] [offer-amount]",
		Short: "Simulate a swap against current reserves",
		Long: `Price an offer against the pool's current reserves without
executing it.

Example:
  $ meridiand query swap simulation meridian1... uusd 1000000`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			queryClient := types.NewQueryClient(clientCtx)

			amount, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid amount: %s (must be integer)", args[2])
			}

			res, err := queryClient.Simulation(cmd.Context(), &types.QuerySimulationRequest{
				PairContractAddr: args[0],
				OfferAsset: types.Asset{
					Info:   parseAssetInfo(args[1]),
					Amount: amount,
				},
			})
			if err != nil {
				return err
			}

			return printResponse(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryReverseSimulation returns a CLI command handler for pricing a swap
// by its desired return
func CmdQueryReverseSimulation() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reverse-simulation [contract] [ask-asset] [ask-amount]",
		Short: "Compute the offer needed for a desired return",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			queryClient := types.NewQueryClient(clientCtx)

			amount, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid amount: %s (must be integer)", args[2])
			}

			res, err := queryClient.ReverseSimulation(cmd.Context(), &types.QueryReverseSimulationRequest{
				PairContractAddr: args[0],
				AskAsset: types.Asset{
					Info:   parseAssetInfo(args[1]),
					Amount: amount,
				},
			})
			if err != nil {
				return err
			}

			return printResponse(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryNativeTokenDecimals returns a CLI command handler for a native
// denom's registered decimals
func CmdQueryNativeTokenDecimals() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "native-token-decimals [denom]",
		Short: "Query the registered decimals of a native denom",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			queryClient := types.NewQueryClient(clientCtx)

			res, err := queryClient.NativeTokenDecimals(cmd.Context(), &types.QueryNativeTokenDecimalsRequest{
				Denom: args[0],
			})
			if err != nil {
				return err
			}

			return printResponse(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
