package alertme

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
)

func newTestDispatcher() (*Dispatcher, *Registry, *Catalog, *fakeModem) {
	registry := NewRegistry()
	catalog := NewCatalog()
	modem := newFakeModem()
	egress := NewEgress(modem, registry, zerolog.Nop(), func() int64 { return 1 })
	assoc := NewAssoc(registry, catalog, egress, zerolog.Nop())
	d := NewDispatcher(registry, assoc, egress, catalog, zerolog.Nop(), func() int64 { return 1 })
	return d, registry, catalog, modem
}

func TestDispatcherIgnoresNonExplicitRX(t *testing.T) {
	d, registry, _, _ := newTestDispatcher()
	addr := AddrLong{1}
	f := Frame{ID: "rx_data", Profile: ProfileAlertMe, SourceAddrLong: addr}
	if err := d.Handle(context.Background(), f); err != nil {
		t.Fatal(err)
	}
	if _, ok := registry.Get(addr); ok {
		t.Fatal("non explicit-RX frame should not create a node")
	}
}

func TestDispatcherSwitchStateUpdateMergesAttributes(t *testing.T) {
	d, registry, _, _ := newTestDispatcher()
	addr := AddrLong{1, 1}
	f := Frame{
		ID: "rx_explicit", Profile: ProfileAlertMe, Cluster: ClusterAMSwitch,
		SourceAddrLong: addr, SourceAddrShort: AddrShort{0, 1},
		RFData: []byte{0x09, 0x68, 0x80, 0x07, 0x01},
	}
	if err := d.Handle(context.Background(), f); err != nil {
		t.Fatal(err)
	}
	n, ok := registry.Get(addr)
	if !ok {
		t.Fatal("node not created")
	}
	if n.Attributes[AttrState].String != "ON" {
		t.Errorf("got %q, want ON", n.Attributes[AttrState].String)
	}
	if n.MessagesReceived != 1 {
		t.Errorf("messages_received = %d, want 1", n.MessagesReceived)
	}
}

func TestDispatcherSendsVersionRequestWhenModelMissing(t *testing.T) {
	d, _, catalog, modem := newTestDispatcher()
	addr := AddrLong{2, 2}
	f := Frame{
		ID: "rx_explicit", Profile: ProfileAlertMe, Cluster: ClusterAMSwitch,
		SourceAddrLong: addr, SourceAddrShort: AddrShort{0, 1},
		RFData: []byte{0x09, 0x68, 0x80, 0x07, 0x01},
	}
	if err := d.Handle(context.Background(), f); err != nil {
		t.Fatal(err)
	}
	names := modem.sentNames(catalog)
	found := false
	for _, n := range names {
		if n == "version_info_request" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected version_info_request among sent messages, got %v", names)
	}
}

func TestDispatcherNoVersionRequestOnceModelKnown(t *testing.T) {
	d, registry, _, modem := newTestDispatcher()
	addr := AddrLong{3, 3}
	registry.EnsureNode(addr, AddrShort{0, 1}, 1)
	registry.SetAttributes(addr, Attributes{AttrModel: {Kind: KindModel, String: "Smart Plug"}}, 1)

	f := Frame{
		ID: "rx_explicit", Profile: ProfileAlertMe, Cluster: ClusterAMSwitch,
		SourceAddrLong: addr, SourceAddrShort: AddrShort{0, 1},
		RFData: []byte{0x09, 0x68, 0x80, 0x07, 0x01},
	}
	if err := d.Handle(context.Background(), f); err != nil {
		t.Fatal(err)
	}
	if len(modem.sent) != 0 {
		t.Errorf("expected no sends, got %d", len(modem.sent))
	}
}

func TestDispatcherMatchDescriptorRequestRunsHandshake(t *testing.T) {
	d, _, catalog, modem := newTestDispatcher()
	addr := AddrLong{4, 4}
	f := Frame{
		ID: "rx_explicit", Profile: ProfileZDP, Cluster: ClusterZDPMatchDescriptorReq,
		SourceAddrLong: addr, SourceAddrShort: AddrShort{0, 1},
		RFData: []byte{0x01},
	}
	if err := d.Handle(context.Background(), f); err != nil {
		t.Fatal(err)
	}
	names := modem.sentNames(catalog)
	if len(names) != 4 {
		t.Fatalf("got %d sends, want 4: %v", len(names), names)
	}
}

func TestDispatcherUnknownProfileIsLoggedNotFatal(t *testing.T) {
	d, registry, _, _ := newTestDispatcher()
	addr := AddrLong{5, 5}
	f := Frame{ID: "rx_explicit", Profile: 0xBEEF, SourceAddrLong: addr, SourceAddrShort: AddrShort{0, 1}}
	if err := d.Handle(context.Background(), f); err != nil {
		t.Fatal(err)
	}
	n, ok := registry.Get(addr)
	if !ok || n.MessagesReceived != 1 {
		t.Errorf("node should still be tracked: %+v ok=%v", n, ok)
	}
}
