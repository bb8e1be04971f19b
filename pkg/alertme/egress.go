package alertme

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Egress wraps a Modem and the node registry bookkeeping every outbound
// send performs (C8).
type Egress struct {
	modem    Modem
	registry *Registry
	log      zerolog.Logger
	now      func() int64
}

// NewEgress returns an Egress over modem and registry.
func NewEgress(modem Modem, registry *Registry, log zerolog.Logger, now func() int64) *Egress {
	return &Egress{modem: modem, registry: registry, log: log, now: now}
}

// Send delegates msg to the modem and, when a matching node exists,
// increments its messages_sent counter. The modem's error is wrapped in
// ErrModem so callers can errors.Is against a single sentinel.
func (e *Egress) Send(ctx context.Context, msg Message, destLong AddrLong, destShort AddrShort) error {
	if err := e.modem.Send(ctx, msg.Clone(), destLong, destShort); err != nil {
		e.log.Error().Err(err).Str("dest", destLong.String()).Msg("modem send failed")
		return fmt.Errorf("%w: %v", ErrModem, err)
	}
	e.registry.RecordSent(destLong)
	return nil
}

// SendNamed looks name up in catalog, materializes it with params, and
// sends it to the given destination.
func (e *Egress) SendNamed(ctx context.Context, catalog *Catalog, name string, params map[string]any, destLong AddrLong, destShort AddrShort) error {
	msg, err := catalog.GetMessage(name, params)
	if err != nil {
		return err
	}
	return e.Send(ctx, msg, destLong, destShort)
}
