package alertme

import "testing"

func TestEnsureNodeIdempotent(t *testing.T) {
	r := NewRegistry()
	addr := AddrLong{1, 2, 3, 4, 5, 6, 7, 8}

	n1 := r.EnsureNode(addr, AddrShort{0, 1}, 100)
	n2 := r.EnsureNode(addr, AddrShort{0, 2}, 101)

	if n1 != n2 {
		t.Fatal("ensure_node created two different records for the same addr_long")
	}
	if n2.AddrShort != (AddrShort{0, 2}) {
		t.Errorf("addr_short not updated: got %v", n2.AddrShort)
	}
}

func TestMessagesReceivedCounter(t *testing.T) {
	r := NewRegistry()
	addr := AddrLong{9, 9, 9, 9, 9, 9, 9, 9}

	r.EnsureNode(addr, AddrShort{0, 1}, 1)
	for i := 0; i < 5; i++ {
		r.EnsureNode(addr, AddrShort{0, 1}, int64(i+2))
		r.Touch(addr, int64(i+2))
	}

	n, ok := r.Get(addr)
	if !ok {
		t.Fatal("node not found")
	}
	if n.MessagesReceived != 5 {
		t.Errorf("messages_received = %d, want 5", n.MessagesReceived)
	}
}

func TestLastSeenMonotonic(t *testing.T) {
	r := NewRegistry()
	addr := AddrLong{1, 1, 1, 1, 1, 1, 1, 1}

	r.EnsureNode(addr, AddrShort{0, 1}, 10)
	r.EnsureNode(addr, AddrShort{0, 1}, 20)

	n, _ := r.Get(addr)
	if n.LastSeen != 20 {
		t.Errorf("last_seen = %d, want 20", n.LastSeen)
	}
}

func TestSetAttributesAtomicWithTimestamp(t *testing.T) {
	r := NewRegistry()
	addr := AddrLong{2, 2, 2, 2, 2, 2, 2, 2}
	r.EnsureNode(addr, AddrShort{0, 1}, 1)

	err := r.SetAttributes(addr, Attributes{
		AttrState: {Kind: KindSwitchState, String: "ON"},
	}, 42)
	if err != nil {
		t.Fatal(err)
	}

	n, _ := r.Get(addr)
	v, ok := n.Attributes[AttrState]
	if !ok {
		t.Fatal("attribute not recorded")
	}
	if v.String != "ON" {
		t.Errorf("value = %q", v.String)
	}
	if v.ReportReceivedTime != 42 {
		t.Errorf("report_received_time = %d, want 42", v.ReportReceivedTime)
	}
}

func TestSnapshotIsIndependentCopy(t *testing.T) {
	r := NewRegistry()
	addr := AddrLong{3, 3, 3, 3, 3, 3, 3, 3}
	r.EnsureNode(addr, AddrShort{0, 1}, 1)
	r.SetAttributes(addr, Attributes{AttrState: {Kind: KindSwitchState, String: "ON"}}, 1)

	snap, _ := r.Get(addr)
	snap.Attributes[AttrState] = AttributeValue{Kind: KindSwitchState, String: "OFF"}

	n2, _ := r.Get(addr)
	if n2.Attributes[AttrState].String != "ON" {
		t.Fatal("mutating a snapshot leaked into the registry")
	}
}

func TestGetUnknownNode(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Get(AddrLong{}); ok {
		t.Fatal("expected not found")
	}
}

func TestRenameUnknownNodeFails(t *testing.T) {
	r := NewRegistry()
	if err := r.Rename(AddrLong{9}, "x"); err == nil {
		t.Fatal("expected ErrNodeNotFound")
	}
}
