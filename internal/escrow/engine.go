// Package escrow is the event escrow engine: event registration,
// sponsorship, ticket sales, withdrawals and closure over custody
// sub-accounts that only the engine can spend from.
//
// Every entry point runs as one ledger unit of work. It re-validates the
// event (existence, derived addresses, ownership, authority, active flag)
// before any write, and any failure discards all of its writes.
package escrow

import (
	"context"
	"eventEscrow/internal/events"
	"eventEscrow/internal/ledger"
	"eventEscrow/internal/lib/address"
	"eventEscrow/internal/lib/clock"
	"eventEscrow/internal/lib/idgen"
	"eventEscrow/internal/lib/logger/sl"
	"fmt"
	"log/slog"
	"time"
)

// Operation names an entry point. The same names are used in signed
// request messages.
type Operation string

const (
	OpCreateEvent      Operation = "create_event"
	OpSponsor          Operation = "sponsor_event"
	OpBuyTickets       Operation = "buy_tickets"
	OpWithdrawEarnings Operation = "withdraw_earnings"
	OpWithdrawFunds    Operation = "withdraw_funds"
	OpCloseEvent       Operation = "close_event"
)

var topics = map[Operation]string{
	OpCreateEvent:      events.TopicEventCreated,
	OpSponsor:          events.TopicEventSponsored,
	OpBuyTickets:       events.TopicTicketsBought,
	OpWithdrawEarnings: events.TopicEarningsWithdrawn,
	OpWithdrawFunds:    events.TopicFundsWithdrawn,
	OpCloseEvent:       events.TopicEventClosed,
}

// Receipt describes one committed operation.
type Receipt struct {
	ID        string          `json:"id"`
	Operation Operation       `json:"operation"`
	Event     address.Address `json:"event"`
	Actor     address.Address `json:"actor"`
	Amount    uint64          `json:"amount"`
	Quantity  uint64          `json:"quantity"`
	At        time.Time       `json:"at"`
}

type Engine struct {
	log       *slog.Logger
	ledger    ledger.Ledger
	deriver   address.Deriver
	policy    Policy
	publisher events.Publisher
	clock     clock.Clock
}

type Option func(*Engine)

func WithPublisher(p events.Publisher) Option {
	return func(e *Engine) {
		e.publisher = p
	}
}

func WithClock(c clock.Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

func New(log *slog.Logger, l ledger.Ledger, d address.Deriver, policy Policy, opts ...Option) *Engine {
	e := &Engine{
		log:       log,
		ledger:    l,
		deriver:   d,
		policy:    policy,
		publisher: &events.NoopPublisher{},
		clock:     clock.NewSystem(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Deriver() address.Deriver {
	return e.deriver
}

// execute runs fn as one unit of work and, once it has committed, stamps
// and publishes the receipt.
func (e *Engine) execute(ctx context.Context, op Operation, fn func(ctx context.Context, tx ledger.Tx, r *Receipt) error) (Receipt, error) {
	log := e.log.With(slog.String("op", "escrow."+string(op)))

	id, err := idgen.Receipt()
	if err != nil {
		log.Error("failed to generate receipt id", sl.Err(err))
		return Receipt{}, fmt.Errorf("%s: %w", op, err)
	}

	var r Receipt
	err = e.ledger.WithTx(ctx, func(ctx context.Context, tx ledger.Tx) error {
		r = Receipt{Operation: op}
		return fn(ctx, tx, &r)
	})
	if err != nil {
		log.Info("operation rejected", sl.Err(err), slog.String("code", Classify(err).Code))
		return Receipt{}, fmt.Errorf("%s: %w", op, named(err))
	}

	r.ID = id
	r.At = e.clock.Now()

	log.Info("operation committed",
		slog.String("receipt", r.ID),
		slog.String("event", r.Event.String()),
		slog.String("actor", r.Actor.String()),
		slog.Uint64("amount", r.Amount),
		slog.Uint64("quantity", r.Quantity),
	)

	if err := e.publisher.Publish(ctx, topics[op], r); err != nil {
		log.Error("failed to publish receipt", sl.Err(err), slog.String("receipt", r.ID))
	}

	return r, nil
}
