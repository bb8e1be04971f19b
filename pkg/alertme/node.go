package alertme

import "fmt"

// AddrLong is an 8-byte IEEE MAC address, globally unique and stable across
// a node's lifetime. It is the registry's key.
type AddrLong [8]byte

// String renders the address as colon-separated lowercase hex pairs, the
// canonical node ID form used throughout the registry.
func (a AddrLong) String() string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x:%02x:%02x",
		a[0], a[1], a[2], a[3], a[4], a[5], a[6], a[7])
}

// AddrShort is a 2-byte network address. The mesh may reassign it at any
// time; it is metadata, never identity.
type AddrShort [2]byte

// AssocState is the per-node association progress, per spec.md §4.6.
type AssocState int

const (
	StateUnknown AssocState = iota
	StateAnnounced
	StateMatching
	StateEndpointsRequested
	StateHardwareJoining
	StateAssociated
)

func (s AssocState) String() string {
	switch s {
	case StateUnknown:
		return "UNKNOWN"
	case StateAnnounced:
		return "ANNOUNCED"
	case StateMatching:
		return "MATCHING"
	case StateEndpointsRequested:
		return "ENDPOINTS_REQUESTED"
	case StateHardwareJoining:
		return "HARDWARE_JOINING"
	case StateAssociated:
		return "ASSOCIATED"
	default:
		return "UNKNOWN"
	}
}

// Node is one record per known device, keyed by AddrLong.
type Node struct {
	ID        string // canonical string form of AddrLong
	AddrLong  AddrLong
	AddrShort AddrShort

	Associated bool
	AssocState AssocState

	Name string

	CreatedOn int64 // UNIX epoch seconds
	LastSeen  int64

	MessagesReceived uint64
	MessagesSent     uint64

	Attributes Attributes
}

// snapshot returns a deep-enough copy safe to hand to a caller outside the
// registry's lock.
func (n *Node) snapshot() Node {
	return Node{
		ID:               n.ID,
		AddrLong:         n.AddrLong,
		AddrShort:        n.AddrShort,
		Associated:       n.Associated,
		AssocState:       n.AssocState,
		Name:             n.Name,
		CreatedOn:        n.CreatedOn,
		LastSeen:         n.LastSeen,
		MessagesReceived: n.MessagesReceived,
		MessagesSent:     n.MessagesSent,
		Attributes:       n.Attributes.Clone(),
	}
}
