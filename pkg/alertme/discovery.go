package alertme

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

const (
	discoveryWindow = 60 * time.Second
	discoveryTick   = 3 * time.Second
)

// Discovery runs the time-bounded periodic broadcast of routing-table
// requests (C7). At most one pass may be active at a time.
type Discovery struct {
	egress  *Egress
	catalog *Catalog
	log     zerolog.Logger

	// Window/Tick default to the spec's 60s/3s and are only overridden in
	// tests, which cannot afford to block for a full real pass.
	Window time.Duration
	Tick   time.Duration

	running atomic.Bool
}

// NewDiscovery returns a Discovery wired to egress/catalog, with the
// standard 60-second window and 3-second tick.
func NewDiscovery(egress *Egress, catalog *Catalog, log zerolog.Logger) *Discovery {
	return &Discovery{egress: egress, catalog: catalog, log: log, Window: discoveryWindow, Tick: discoveryTick}
}

// Start begins a bounded, periodic broadcast pass and blocks until it
// completes or ctx is canceled. A second call while one is already running
// is a no-op that logs at debug level and returns immediately, per the
// implementer's-choice clause in §4.7.
func (d *Discovery) Start(ctx context.Context) {
	if !d.running.CompareAndSwap(false, true) {
		d.log.Debug().Msg("discovery already running, ignoring start request")
		return
	}
	defer d.running.Store(false)

	ctx, cancel := context.WithTimeout(ctx, d.Window)
	defer cancel()

	ticker := time.NewTicker(d.Tick)
	defer ticker.Stop()

	d.broadcast(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.broadcast(ctx)
		}
	}
}

// IsRunning reports whether a discovery pass is currently active.
func (d *Discovery) IsRunning() bool {
	return d.running.Load()
}

func (d *Discovery) broadcast(ctx context.Context) {
	if err := d.egress.SendNamed(ctx, d.catalog, "routing_table_request", nil, BroadcastLong, BroadcastShort); err != nil {
		d.log.Error().Err(err).Msg("discovery broadcast failed")
	}
}
