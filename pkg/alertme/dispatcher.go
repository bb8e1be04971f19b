package alertme

import (
	"context"

	"github.com/rs/zerolog"
)

// Dispatcher classifies inbound explicit-RX frames by (profile, cluster,
// cmd) and routes them to the registry, the codec, and the association
// state machine (C5).
type Dispatcher struct {
	registry *Registry
	assoc    *Assoc
	egress   *Egress
	catalog  *Catalog
	log      zerolog.Logger
	now      func() int64
}

// NewDispatcher returns a Dispatcher wired to its collaborators. now
// supplies the current UNIX-epoch-seconds clock, injectable for tests.
func NewDispatcher(registry *Registry, assoc *Assoc, egress *Egress, catalog *Catalog, log zerolog.Logger, now func() int64) *Dispatcher {
	return &Dispatcher{registry: registry, assoc: assoc, egress: egress, catalog: catalog, log: log, now: now}
}

// Handle processes one inbound frame. Parsing/dispatch errors are logged
// and the frame is discarded; they are never returned to the caller, per
// §7's propagation policy. The only errors returned are from outbound
// sends made in response to the frame (e.g. the association handshake),
// which the caller may want to observe.
func (d *Dispatcher) Handle(ctx context.Context, f Frame) error {
	if !f.IsExplicitRX() {
		return nil
	}

	now := d.now()
	node := d.registry.EnsureNode(f.SourceAddrLong, f.SourceAddrShort, now)
	d.registry.Touch(f.SourceAddrLong, now)

	switch f.Profile {
	case ProfileZDP:
		return d.handleZDP(ctx, f, node)
	case ProfileAlertMe:
		return d.handleAlertMe(ctx, f, node)
	default:
		d.log.Error().Err(ErrUnknownProfile).Uint16("profile", f.Profile).Msg("dropping frame")
		return nil
	}
}

func (d *Dispatcher) handleZDP(ctx context.Context, f Frame, node *Node) error {
	switch f.Cluster {
	case ClusterZDPDeviceAnnounce:
		d.log.Info().Str("node", node.ID).Msg("device announce")
		d.assoc.OnAnnounce(f.SourceAddrLong)
	case ClusterZDPNetworkAddressResp:
		d.log.Info().Str("node", node.ID).Msg("network address response")
	case ClusterZDPNodeDescriptorResp:
		d.log.Info().Str("node", node.ID).Msg("node descriptor response")
	case ClusterZDPActiveEndpointsResp:
		d.log.Info().Str("node", node.ID).Msg("active endpoints response")
	case ClusterZDPMatchDescriptorReq:
		d.log.Info().Str("node", node.ID).Msg("match descriptor request")
		return d.assoc.OnMatchDescriptorRequest(ctx, f.SourceAddrLong, f.SourceAddrShort)
	default:
		d.log.Error().Err(ErrUnknownCluster).Uint16("cluster", f.Cluster).Msg("dropping frame")
	}
	return nil
}

func (d *Dispatcher) handleAlertMe(ctx context.Context, f Frame, node *Node) error {
	if len(f.RFData) < 3 {
		d.log.Error().Str("node", node.ID).Msg("malformed payload: too short for cluster command")
		return nil
	}
	cmd := f.RFData[2]

	var attrs Attributes
	var err error
	becomesAssociated := false

	switch {
	case f.Cluster == ClusterAMSwitch && cmd == CmdSwitchStateUpdate:
		attrs, err = DecodeSwitchStateUpdate(f.RFData)
	case f.Cluster == ClusterAMPower && cmd == CmdPowerDemand:
		attrs, err = DecodePowerDemandUpdate(f.RFData)
	case f.Cluster == ClusterAMPower && cmd == CmdPowerConsumption:
		attrs, err = DecodePowerConsumptionUpdate(f.RFData)
	case f.Cluster == ClusterAMStatus && cmd == CmdStatusUpdate:
		attrs, err = DecodeStatusUpdate(f.RFData)
	case f.Cluster == ClusterAMTamper:
		attrs, err = DecodeTamperState(f.RFData)
	case f.Cluster == ClusterAMButton:
		attrs, err = DecodeButtonPress(f.RFData)
	case f.Cluster == ClusterAMDiscovery && cmd == CmdRangeInfo:
		attrs, err = DecodeRangeInfoUpdate(f.RFData)
	case f.Cluster == ClusterAMDiscovery && cmd == CmdVersionInfoUpdate:
		var v VersionInfo
		v, err = DecodeVersionInfoUpdate(f.RFData)
		if err == nil {
			attrs = Attributes{
				AttrManufacturer:    {Kind: KindManufacturer, String: v.Manufacturer},
				AttrModel:           {Kind: KindModel, String: v.Type},
				AttrManufactureDate: {Kind: KindManufactureDate, String: v.ManufactureDate},
			}
			becomesAssociated = true
		}
	case f.Cluster == ClusterAMSecurity:
		attrs, err = DecodeSecurityDeviceState(f.RFData)
		if secErr := d.assoc.OnSecurityEvent(ctx, f.SourceAddrLong, f.SourceAddrShort, f.RFData); secErr != nil {
			return secErr
		}
	default:
		d.log.Error().Err(ErrUnknownClusterCommand).Uint16("cluster", f.Cluster).Uint8("cmd", cmd).Msg("dropping frame")
		return nil
	}

	if err != nil {
		d.log.Error().Err(err).Str("node", node.ID).Msg("payload decode failed")
		return nil
	}
	if attrs != nil {
		if err := d.registry.SetAttributes(f.SourceAddrLong, attrs, d.now()); err != nil {
			d.log.Error().Err(err).Msg("failed to record attributes")
		}
	}
	if becomesAssociated {
		d.assoc.OnVersionInfo(f.SourceAddrLong)
	}

	if !d.registry.HasAttribute(f.SourceAddrLong, AttrModel) {
		return d.egress.SendNamed(ctx, d.catalog, "version_info_request", nil, f.SourceAddrLong, f.SourceAddrShort)
	}
	return nil
}
