package alertme

import (
	"context"
	"sync"
)

// fakeModem is an in-memory Modem double recording every Send call, used
// across the dispatcher/assoc/discovery tests.
type fakeModem struct {
	mu    sync.Mutex
	sent  []sentMsg
	frame chan Frame
}

type sentMsg struct {
	Msg       Message
	DestLong  AddrLong
	DestShort AddrShort
}

func newFakeModem() *fakeModem {
	return &fakeModem{frame: make(chan Frame, 16)}
}

func (f *fakeModem) Send(ctx context.Context, msg Message, destLong AddrLong, destShort AddrShort) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMsg{Msg: msg, DestLong: destLong, DestShort: destShort})
	return nil
}

func (f *fakeModem) Frames() <-chan Frame {
	return f.frame
}

func (f *fakeModem) sentNames(c *Catalog) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	names := make([]string, 0, len(f.sent))
	for _, s := range f.sent {
		names = append(names, catalogNameFor(c, s.Msg))
	}
	return names
}

// catalogNameFor is a test-only helper matching a sent frame back to its
// catalog name by cluster+cmd, since Egress only ever sees materialized
// bytes, not the name that produced them.
func catalogNameFor(c *Catalog, msg Message) string {
	for name, t := range c.templates {
		if t.Profile == msg.Profile && t.Cluster == msg.Cluster {
			if t.data != nil && string(t.data) == string(msg.Data) {
				return name
			}
		}
	}
	// Fall back to matching the fixed-length generator outputs used in
	// tests by cluster command byte.
	if len(msg.Data) >= 3 {
		switch {
		case msg.Profile == ProfileZDP && msg.Cluster == ClusterZDPActiveEndpointsReq:
			return "active_endpoints_request"
		case msg.Profile == ProfileZDP && msg.Cluster == ClusterZDPMatchDescriptorResp:
			return "match_descriptor_response"
		case msg.Profile == ProfileAlertMe && msg.Cluster == ClusterAMDiscovery && msg.Data[2] == CmdVersionInfoRequest:
			return "version_info_request"
		case msg.Profile == ProfileAlertMe && msg.Cluster == ClusterAMSecurity:
			return "security_init"
		case msg.Profile == ProfileZDP && msg.Cluster == ClusterZDPManagementRoutingReq:
			return "routing_table_request"
		}
	}
	return "?"
}
