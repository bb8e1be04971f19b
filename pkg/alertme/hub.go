package alertme

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Hub wires the registry, dispatcher, association state machine, egress,
// and discovery driver into the single entry point a transport adapter
// (e.g. pkg/serialmodem) or CLI daemon drives.
type Hub struct {
	Registry   *Registry
	Catalog    *Catalog
	Egress     *Egress
	Assoc      *Assoc
	Dispatcher *Dispatcher
	Discovery  *Discovery

	modem Modem
	log   zerolog.Logger
}

// NewHub constructs a fully-wired Hub over modem.
func NewHub(modem Modem, log zerolog.Logger) *Hub {
	now := func() int64 { return time.Now().Unix() }

	registry := NewRegistry()
	catalog := NewCatalog()
	egress := NewEgress(modem, registry, log, now)
	assoc := NewAssoc(registry, catalog, egress, log)
	dispatcher := NewDispatcher(registry, assoc, egress, catalog, log, now)
	discovery := NewDiscovery(egress, catalog, log)

	return &Hub{
		Registry:   registry,
		Catalog:    catalog,
		Egress:     egress,
		Assoc:      assoc,
		Dispatcher: dispatcher,
		Discovery:  discovery,
		modem:      modem,
		log:        log,
	}
}

// Run consumes inbound frames from the modem until the channel closes or
// ctx is canceled. This is the single long-lived ingress task (§5).
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case f, ok := <-h.modem.Frames():
			if !ok {
				return
			}
			if err := h.Dispatcher.Handle(ctx, f); err != nil {
				h.log.Error().Err(err).Msg("dispatch produced an outbound error")
			}
		}
	}
}

// StartDiscovery kicks off a discovery pass in its own goroutine, returning
// immediately. It is independent of the ingress task (§5).
func (h *Hub) StartDiscovery(ctx context.Context) {
	go h.Discovery.Start(ctx)
}
