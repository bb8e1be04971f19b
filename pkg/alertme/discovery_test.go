package alertme

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// TestDiscoveryBroadcastsOnFixedCadence exercises the same 20:1
// window-to-tick ratio as the spec's 60s/3s real pass, scaled down so the
// test completes in well under a second.
func TestDiscoveryBroadcastsOnFixedCadence(t *testing.T) {
	modem := newFakeModem()
	registry := NewRegistry()
	egress := NewEgress(modem, registry, zerolog.Nop(), func() int64 { return 1 })
	catalog := NewCatalog()
	d := NewDiscovery(egress, catalog, zerolog.Nop())
	d.Window = 200 * time.Millisecond
	d.Tick = 10 * time.Millisecond

	d.Start(context.Background())

	modem.mu.Lock()
	n := len(modem.sent)
	modem.mu.Unlock()

	// One immediate broadcast plus ticks until the window closes: expect
	// roughly Window/Tick, with slack for scheduler jitter.
	if n < 15 || n > 25 {
		t.Errorf("got %d broadcasts, want roughly 20", n)
	}
	for _, s := range modem.sent {
		if s.DestLong != BroadcastLong || s.DestShort != BroadcastShort {
			t.Errorf("broadcast sent to non-broadcast address: %+v", s)
		}
	}
}

func TestDiscoverySecondStartIsNoOp(t *testing.T) {
	modem := newFakeModem()
	registry := NewRegistry()
	egress := NewEgress(modem, registry, zerolog.Nop(), func() int64 { return 1 })
	catalog := NewCatalog()
	d := NewDiscovery(egress, catalog, zerolog.Nop())
	d.Window = 50 * time.Millisecond
	d.Tick = 10 * time.Millisecond

	done := make(chan struct{})
	go func() {
		d.Start(context.Background())
		close(done)
	}()

	time.Sleep(5 * time.Millisecond)
	if !d.IsRunning() {
		t.Fatal("expected discovery to be running")
	}
	d.Start(context.Background()) // should return immediately, no-op

	<-done
	if d.IsRunning() {
		t.Fatal("expected discovery to have stopped")
	}
}

func TestDiscoveryStopsOnContextCancel(t *testing.T) {
	modem := newFakeModem()
	registry := NewRegistry()
	egress := NewEgress(modem, registry, zerolog.Nop(), func() int64 { return 1 })
	catalog := NewCatalog()
	d := NewDiscovery(egress, catalog, zerolog.Nop())
	d.Window = 10 * time.Second
	d.Tick = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		d.Start(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("discovery did not stop after context cancellation")
	}
}
