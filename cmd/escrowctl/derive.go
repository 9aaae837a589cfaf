package main

import (
	"eventEscrow/internal/escrow"
	"eventEscrow/internal/ledger"
	"eventEscrow/internal/lib/address"
	"github.com/spf13/cobra"
)

var deriveCmd = &cobra.Command{
	Use:   "derive",
	Short: "Compute derived account addresses",
}

var deriveEventCmd = &cobra.Command{
	Use:     "event <organizer>",
	Short:   "Show the event owned by an organizer and its sub-accounts",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireProgram,
	RunE: func(cmd *cobra.Command, args []string) error {
		organizer, err := address.Parse(args[0])
		if err != nil {
			return err
		}

		accounts, err := escrow.DeriveAccounts(address.NewDeriver(program), organizer)
		if err != nil {
			return err
		}
		return printJSON(accounts)
	},
}

var deriveHoldingCmd = &cobra.Command{
	Use:     "holding <owner> <asset>",
	Short:   "Show the canonical holding of an asset",
	Args:    cobra.ExactArgs(2),
	PreRunE: requireProgram,
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, err := address.Parse(args[0])
		if err != nil {
			return err
		}
		asset, err := address.Parse(args[1])
		if err != nil {
			return err
		}

		holding, err := ledger.HoldingAddress(address.NewDeriver(program), owner, asset)
		if err != nil {
			return err
		}
		return printJSON(map[string]address.Address{"holding": holding})
	},
}

var deriveAssetCmd = &cobra.Command{
	Use:     "asset <authority> <symbol>",
	Short:   "Show the mint address of an asset",
	Args:    cobra.ExactArgs(2),
	PreRunE: requireProgram,
	RunE: func(cmd *cobra.Command, args []string) error {
		authority, err := address.Parse(args[0])
		if err != nil {
			return err
		}

		asset, err := ledger.AssetAddress(address.NewDeriver(program), authority, args[1])
		if err != nil {
			return err
		}
		return printJSON(map[string]address.Address{"asset": asset})
	},
}

func init() {
	deriveCmd.AddCommand(deriveEventCmd, deriveHoldingCmd, deriveAssetCmd)
}
