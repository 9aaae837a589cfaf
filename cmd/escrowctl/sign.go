package main

import (
	"crypto/ed25519"
	"eventEscrow/internal/lib/api/signed"
	"eventEscrow/internal/lib/signing"
	"fmt"
	"github.com/spf13/cobra"
	"strings"
)

var signCmd = &cobra.Command{
	Use:   "sign <operation> [field=value...]",
	Short: "Sign an operation and print the signatures object for the request body",
	Long: `Sign an operation for the HTTP API.

The fields must be exactly the ones the endpoint signs, for example:

  escrowctl sign buy_tickets event=<addr> buyer=<addr> quantity=3 --key buyer.key`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: requireProgram,
	RunE: func(cmd *cobra.Command, args []string) error {
		keyFiles, _ := cmd.Flags().GetStringSlice("key")
		if len(keyFiles) == 0 {
			return fmt.Errorf("at least one --key is required")
		}

		fields, err := parseFields(args[1:])
		if err != nil {
			return err
		}

		keys := make([]ed25519.PrivateKey, 0, len(keyFiles))
		for _, path := range keyFiles {
			key, err := loadKey(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			keys = append(keys, key)
		}

		sigs, err := signed.Sign(program, args[0], fields, keys...)
		if err != nil {
			return err
		}
		return printJSON(sigs)
	},
}

func init() {
	signCmd.Flags().StringSlice("key", nil, "file holding a base58 ed25519 seed (repeatable)")
}

func parseFields(args []string) (signing.Fields, error) {
	fields := make(signing.Fields, len(args))
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid field %q: want key=value", arg)
		}
		if _, dup := fields[k]; dup {
			return nil, fmt.Errorf("duplicate field %q", k)
		}
		fields[k] = v
	}
	return fields, nil
}
