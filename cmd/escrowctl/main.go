package main

import (
	"encoding/json"
	"eventEscrow/internal/lib/address"
	"fmt"
	"github.com/spf13/cobra"
	"os"
)

var (
	programID string
	natsURL   string

	program address.Address
)

func defaultProgram() string {
	return os.Getenv("PROGRAM_ID")
}

func defaultNATS() string {
	if s := os.Getenv("NATS_URL"); s != "" {
		return s
	}
	return "nats://127.0.0.1:4222"
}

var rootCmd = &cobra.Command{
	Use:           "escrowctl <command>",
	Short:         "Client tooling for the event escrow service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// requireProgram resolves --program for commands that derive addresses or
// build signing messages.
func requireProgram(cmd *cobra.Command, args []string) error {
	if programID == "" {
		return fmt.Errorf("--program (or PROGRAM_ID) is required")
	}
	p, err := address.Parse(programID)
	if err != nil {
		return fmt.Errorf("invalid program id: %w", err)
	}
	program = p
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&programID, "program", defaultProgram(), "program id (base58)")
	rootCmd.PersistentFlags().StringVar(&natsURL, "nats", defaultNATS(), "NATS server URL")

	rootCmd.AddCommand(keygenCmd, deriveCmd, signCmd, watchCmd)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
