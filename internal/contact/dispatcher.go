package contact

import (
	"context"
	"fmt"
	"log"
)

// Dispatcher stores messages and pushes them through a Sink.
type Dispatcher struct {
	store *Store
	sink  Sink
}

// NewDispatcher creates a Dispatcher. A nil sink falls back to LogSink.
func NewDispatcher(store *Store, sink Sink) *Dispatcher {
	if sink == nil {
		sink = LogSink{}
	}
	return &Dispatcher{store: store, sink: sink}
}

// Store returns the underlying message store.
func (d *Dispatcher) Store() *Store { return d.store }

// Dispatch persists m as pending and attempts delivery once. A delivery
// failure is recorded on the message, not returned: the message is safe in
// the store and can be redelivered later.
func (d *Dispatcher) Dispatch(ctx context.Context, m Message) (*Message, error) {
	stored, err := d.store.Create(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("storing message: %w", err)
	}
	if err := d.deliver(ctx, stored); err != nil {
		return nil, err
	}
	return stored, nil
}

// Redeliver retries every pending or failed message once and reports how
// many went through.
func (d *Dispatcher) Redeliver(ctx context.Context) (delivered, failed int, err error) {
	msgs, err := d.store.GetUndelivered(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("listing undelivered messages: %w", err)
	}

	for i := range msgs {
		if err := ctx.Err(); err != nil {
			return delivered, failed, err
		}
		if err := d.deliver(ctx, &msgs[i]); err != nil {
			return delivered, failed, err
		}
		if msgs[i].Status == StatusDelivered {
			delivered++
		} else {
			failed++
		}
	}
	return delivered, failed, nil
}

// deliver sends m and records the outcome on both the row and m itself.
// Only storage errors are returned.
func (d *Dispatcher) deliver(ctx context.Context, m *Message) error {
	var err error
	if sendErr := d.sink.Deliver(ctx, *m); sendErr != nil {
		log.Printf("contact: delivering %s: %v", m.ID, sendErr)
		err = d.store.MarkFailed(ctx, m.ID, sendErr.Error())
	} else {
		err = d.store.MarkDelivered(ctx, m.ID)
	}
	if err != nil {
		return err
	}

	updated, err := d.store.GetByID(ctx, m.ID)
	if err != nil {
		return err
	}
	*m = *updated
	return nil
}
