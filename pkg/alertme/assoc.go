package alertme

import (
	"context"

	"github.com/rs/zerolog"
)

// Assoc drives newly-seen devices through the join handshake (C6). It is
// re-entrant by design: a duplicate Match Descriptor Request simply repeats
// the handshake, tolerating device retransmits.
type Assoc struct {
	registry *Registry
	catalog  *Catalog
	egress   *Egress
	log      zerolog.Logger
}

// NewAssoc returns an Assoc wired to registry/catalog/egress.
func NewAssoc(registry *Registry, catalog *Catalog, egress *Egress, log zerolog.Logger) *Assoc {
	return &Assoc{registry: registry, catalog: catalog, egress: egress, log: log}
}

// OnAnnounce records a Device Announce. Per §4.6 it leaves the node in
// ANNOUNCED with no reply — the device is not yet timing-ready.
func (a *Assoc) OnAnnounce(addrLong AddrLong) {
	_ = a.registry.SetAssocState(addrLong, StateAnnounced)
}

// OnMatchDescriptorRequest runs the full join handshake: Active Endpoints
// Request, Match Descriptor Response, the two hardware-join frames, then
// marks the node ASSOCIATED.
func (a *Assoc) OnMatchDescriptorRequest(ctx context.Context, addrLong AddrLong, addrShort AddrShort) error {
	_ = a.registry.SetAssocState(addrLong, StateMatching)

	params := map[string]any{"net_addr": addrShort}

	if err := a.egress.SendNamed(ctx, a.catalog, "active_endpoints_request", params, addrLong, addrShort); err != nil {
		return err
	}
	_ = a.registry.SetAssocState(addrLong, StateEndpointsRequested)

	if err := a.egress.SendNamed(ctx, a.catalog, "match_descriptor_response", params, addrLong, addrShort); err != nil {
		return err
	}

	if err := a.egress.SendNamed(ctx, a.catalog, "hardware_join_1", nil, addrLong, addrShort); err != nil {
		return err
	}
	if err := a.egress.SendNamed(ctx, a.catalog, "hardware_join_2", nil, addrLong, addrShort); err != nil {
		return err
	}
	_ = a.registry.SetAssocState(addrLong, StateHardwareJoining)

	return a.registry.SetAssocState(addrLong, StateAssociated)
}

// OnVersionInfo marks a node ASSOCIATED regardless of prior state: a
// Version Information Response is itself proof of a working device.
func (a *Assoc) OnVersionInfo(addrLong AddrLong) {
	_ = a.registry.SetAssocState(addrLong, StateAssociated)
}

// OnSecurityEvent replies with security_init if rfData carries the magic
// trigger signature at bytes 3:7, per §4.6. It never changes assoc state.
func (a *Assoc) OnSecurityEvent(ctx context.Context, addrLong AddrLong, addrShort AddrShort, rfData []byte) error {
	if !IsSecurityInitSignature(rfData) {
		return nil
	}
	return a.egress.SendNamed(ctx, a.catalog, "security_init", nil, addrLong, addrShort)
}
