package main

import (
	"crypto/ed25519"
	"eventEscrow/internal/lib/signing"
	"fmt"
	"github.com/mr-tron/base58"
	"github.com/spf13/cobra"
	"os"
	"strings"
)

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate an ed25519 identity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")

		_, key, err := ed25519.GenerateKey(nil)
		if err != nil {
			return err
		}

		seed := base58.Encode(key.Seed())
		if out != "" {
			if err := os.WriteFile(out, []byte(seed+"\n"), 0o600); err != nil {
				return fmt.Errorf("writing key: %w", err)
			}
		}

		return printJSON(map[string]string{
			"identity": signing.Identity(key).String(),
			"seed":     seed,
		})
	},
}

func init() {
	keygenCmd.Flags().String("out", "", "write the base58 seed to this file")
}

// loadKey reads a base58 ed25519 seed from path.
func loadKey(path string) (ed25519.PrivateKey, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading key: %w", err)
	}
	return parseSeed(strings.TrimSpace(string(raw)))
}

func parseSeed(s string) (ed25519.PrivateKey, error) {
	seed, err := base58.Decode(s)
	if err != nil || len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("key is not a base58 %d-byte seed", ed25519.SeedSize)
	}
	return ed25519.NewKeyFromSeed(seed), nil
}
