// Package events publishes escrow receipts after their unit of work has
// committed.
package events

import "context"

const (
	TopicEventCreated      = "escrow.event.created"
	TopicEventSponsored    = "escrow.event.sponsored"
	TopicTicketsBought     = "escrow.tickets.bought"
	TopicEarningsWithdrawn = "escrow.earnings.withdrawn"
	TopicFundsWithdrawn    = "escrow.funds.withdrawn"
	TopicEventClosed       = "escrow.event.closed"

	// TopicAll matches every escrow topic.
	TopicAll = "escrow.>"
)

// Publisher is the interface for emitting events.
type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
	Close() error
}
