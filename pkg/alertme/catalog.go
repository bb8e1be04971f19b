package alertme

import "fmt"

// Template is a process-lifetime frame description: fixed addressing plus
// either static data or a generator keyed off caller-supplied params. Per
// §9 Design Notes the generator is a function reference, never stored code.
type Template struct {
	Profile      uint16
	Cluster      uint16
	SrcEndpoint  uint8
	DestEndpoint uint8

	data      []byte
	generator func(params map[string]any) ([]byte, error)
}

// Catalog is the symbolic-name → Template registry (C3).
type Catalog struct {
	templates map[string]Template
}

// NewCatalog returns a catalog pre-populated with every message this engine
// knows how to build.
func NewCatalog() *Catalog {
	c := &Catalog{templates: make(map[string]Template)}
	c.register()
	return c
}

func (c *Catalog) add(name string, t Template) {
	c.templates[name] = t
}

// GetMessage returns a freshly-owned frame for name: a value copy of the
// template's fixed data, or the generator's output. Callers may mutate the
// returned Message without affecting future lookups.
func (c *Catalog) GetMessage(name string, params map[string]any) (Message, error) {
	t, ok := c.templates[name]
	if !ok {
		return Message{}, fmt.Errorf("%w: %q", ErrUnknownMessage, name)
	}

	var data []byte
	switch {
	case t.generator != nil:
		d, err := t.generator(params)
		if err != nil {
			return Message{}, err
		}
		data = d
	default:
		data = make([]byte, len(t.data))
		copy(data, t.data)
	}

	return Message{
		Profile:      t.Profile,
		Cluster:      t.Cluster,
		SrcEndpoint:  t.SrcEndpoint,
		DestEndpoint: t.DestEndpoint,
		Data:         data,
	}, nil
}

func paramMode(params map[string]any) Mode {
	if m, ok := params["mode"].(Mode); ok {
		return m
	}
	if s, ok := params["mode"].(string); ok {
		return Mode(s)
	}
	return ""
}

func paramBool(params map[string]any, key string) bool {
	b, _ := params[key].(bool)
	return b
}

func paramVersionInfo(params map[string]any) VersionInfo {
	v, _ := params["version_info"].(VersionInfo)
	return v
}

func (c *Catalog) register() {
	// Fixed-data entries, §4.2.
	c.add("routing_table_request", Template{
		Profile: ProfileZDP, Cluster: ClusterZDPManagementRoutingReq,
		SrcEndpoint: EndpointZDO, DestEndpoint: EndpointZDO,
		data: []byte{0x12, 0x01},
	})
	c.add("permit_join_request", Template{
		Profile: ProfileZDP, Cluster: ClusterZDPPermitJoinReq,
		SrcEndpoint: EndpointZDO, DestEndpoint: EndpointZDO,
		data: []byte{0xFF, 0x00},
	})

	// AlertMe application-layer generators, §4.1.
	c.add("version_info_request", Template{
		Profile: ProfileAlertMe, Cluster: ClusterAMDiscovery,
		SrcEndpoint: EndpointAlertMe, DestEndpoint: EndpointAlertMe,
		generator: func(params map[string]any) ([]byte, error) {
			return EncodeVersionInfoRequest(), nil
		},
	})
	c.add("version_info_update", Template{
		Profile: ProfileAlertMe, Cluster: ClusterAMDiscovery,
		SrcEndpoint: EndpointAlertMe, DestEndpoint: EndpointAlertMe,
		generator: func(params map[string]any) ([]byte, error) {
			return EncodeVersionInfoUpdate(paramVersionInfo(params))
		},
	})
	c.add("range_info_update", Template{
		Profile: ProfileAlertMe, Cluster: ClusterAMDiscovery,
		SrcEndpoint: EndpointAlertMe, DestEndpoint: EndpointAlertMe,
		generator: func(params map[string]any) ([]byte, error) {
			rssi, _ := params["rssi"].(uint8)
			return EncodeRangeUpdate(rssi), nil
		},
	})
	c.add("switch_state_request", Template{
		Profile: ProfileAlertMe, Cluster: ClusterAMSwitch,
		SrcEndpoint: EndpointAlertMe, DestEndpoint: EndpointAlertMe,
		generator: func(params map[string]any) ([]byte, error) {
			if _, setting := params["on"]; setting {
				return EncodeSwitchStateSet(paramBool(params, "on")), nil
			}
			return EncodeSwitchStateQuery(), nil
		},
	})
	c.add("switch_state_update", Template{
		Profile: ProfileAlertMe, Cluster: ClusterAMSwitch,
		SrcEndpoint: EndpointAlertMe, DestEndpoint: EndpointAlertMe,
		generator: func(params map[string]any) ([]byte, error) {
			return EncodeSwitchStateUpdate(paramBool(params, "on")), nil
		},
	})
	c.add("mode_change_request", Template{
		Profile: ProfileAlertMe, Cluster: ClusterAMDiscovery,
		SrcEndpoint: EndpointAlertMe, DestEndpoint: EndpointAlertMe,
		generator: func(params map[string]any) ([]byte, error) {
			return EncodeModeChangeRequest(paramMode(params))
		},
	})
	c.add("security_init", Template{
		Profile: ProfileAlertMe, Cluster: ClusterAMSecurity,
		SrcEndpoint: EndpointAlertMe, DestEndpoint: EndpointAlertMe,
		generator: func(params map[string]any) ([]byte, error) {
			return EncodeSecurityInit(), nil
		},
	})

	// ZDP association-handshake templates, §4.6/§6. NetAddr/endpoint list
	// fields are filled in by the association state machine, which knows
	// the destination short address; these carry the fixed structural
	// parts (sequence number, profile/endpoint lists) found in
	// original_source's handshake, whose exact literal byte templates were
	// not present in the retrieval pack (see DESIGN.md).
	c.add("active_endpoints_request", Template{
		Profile: ProfileZDP, Cluster: ClusterZDPActiveEndpointsReq,
		SrcEndpoint: EndpointZDO, DestEndpoint: EndpointZDO,
		generator: func(params map[string]any) ([]byte, error) {
			netAddr, _ := params["net_addr"].(AddrShort)
			return []byte{0x01, netAddr[1], netAddr[0]}, nil
		},
	})
	c.add("match_descriptor_response", Template{
		Profile: ProfileZDP, Cluster: ClusterZDPMatchDescriptorResp,
		SrcEndpoint: EndpointZDO, DestEndpoint: EndpointZDO,
		generator: func(params map[string]any) ([]byte, error) {
			netAddr, _ := params["net_addr"].(AddrShort)
			return []byte{0x01, 0x00, netAddr[1], netAddr[0], 0x01, EndpointAlertMe}, nil
		},
	})
	c.add("hardware_join_1", Template{
		Profile: ProfileAlertMe, Cluster: ClusterAMDiscovery,
		SrcEndpoint: EndpointAlertMe, DestEndpoint: EndpointAlertMe,
		data: []byte{0x11, 0x00, 0xFA, 0x00, 0x01},
	})
	c.add("hardware_join_2", Template{
		Profile: ProfileAlertMe, Cluster: ClusterAMDiscovery,
		SrcEndpoint: EndpointAlertMe, DestEndpoint: EndpointAlertMe,
		data: []byte{0x11, 0x01, 0xFC},
	})
}
