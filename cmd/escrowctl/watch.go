package main

import (
	"context"
	"encoding/json"
	"eventEscrow/internal/escrow"
	"eventEscrow/internal/events"
	"fmt"
	"github.com/spf13/cobra"
	"os"
	"os/signal"
)

var watchCmd = &cobra.Command{
	Use:   "watch [topic]",
	Short: "Stream committed escrow receipts from NATS",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := events.TopicAll
		if len(args) == 1 {
			topic = args[0]
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		sub, err := events.NewNATSSubscriber(natsURL)
		if err != nil {
			return err
		}
		defer sub.Close()

		ch, err := sub.Subscribe(ctx, topic)
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "Watching %s on %s (Ctrl+C to stop)\n", topic, natsURL)

		for msg := range ch {
			printReceipt(msg)
		}
		return nil
	},
}

func printReceipt(msg events.Message) {
	var r escrow.Receipt
	if err := json.Unmarshal(msg.Data, &r); err != nil {
		fmt.Fprintf(os.Stderr, "skipping malformed receipt on %s: %v\n", msg.Topic, err)
		return
	}
	fmt.Printf("%s  %-18s event=%s actor=%s amount=%d quantity=%d  %s\n",
		r.At.Format("2006-01-02T15:04:05Z07:00"), r.Operation, r.Event, r.Actor, r.Amount, r.Quantity, r.ID)
}
